package listing

import (
	"context"
	"fmt"
	"time"

	listingRepo "wanderstay/database/repository/listing"
	"wanderstay/models"
	"wanderstay/services/geocode"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultListingService is the production ListingService implementation.
type DefaultListingService struct {
	Repo     listingRepo.ListingRepository
	Geocoder geocode.Geocoder
	Logger   *zap.Logger
}

func (s *DefaultListingService) GetAll(ctx context.Context) ([]models.Listing, error) {
	return s.Repo.GetAll()
}

func (s *DefaultListingService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultListingService) Create(ctx context.Context, l *models.Listing) error {
	point, err := s.Geocoder.Forward(ctx, l.Location)
	if err != nil {
		return fmt.Errorf("failed to geocode %q: %w", l.Location, err)
	}
	l.Geometry = *point

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	l.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(l); err != nil {
		return err
	}
	s.Logger.Info("listing created", zap.String("id", l.ID), zap.String("title", l.Title))
	return nil
}

func (s *DefaultListingService) Update(ctx context.Context, id string, l models.Listing) (*models.Listing, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	point, err := s.Geocoder.Forward(ctx, fmt.Sprintf("%s,%s", l.Location, l.Country))
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", l.Location, err)
	}
	l.Geometry = *point

	l.ID = existing.ID
	l.CreatedAt = existing.CreatedAt
	if l.Image.URL == "" {
		l.Image = existing.Image
	}
	if l.Owner.Email == "" {
		l.Owner = existing.Owner
	}

	if err := s.Repo.Update(&l); err != nil {
		return nil, err
	}
	s.Logger.Info("listing updated", zap.String("id", id))
	return &l, nil
}

func (s *DefaultListingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Logger.Info("listing deleted", zap.String("id", id))
	return nil
}

func (s *DefaultListingService) FilterByCategory(ctx context.Context, category string) ([]models.Listing, error) {
	return s.Repo.FindByCategory(category)
}
