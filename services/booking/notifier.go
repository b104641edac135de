package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	listingRepo "wanderstay/database/repository/listing"
	"wanderstay/models"
	"wanderstay/services/mail"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const checkInDateLayout = "2006-01-02"

// DefaultBookingNotifier is the production BookingNotifier implementation.
// Reminders is optional; when unset no check-in reminder is scheduled.
type DefaultBookingNotifier struct {
	Repo      listingRepo.ListingRepository
	Mailer    mail.Mailer
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

func (s *DefaultBookingNotifier) Notify(ctx context.Context, listingID, bookerEmail string, details models.BookingDetails) (*models.BookingReceipt, error) {
	listing, err := s.Repo.GetByID(listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, &ListingNotFoundError{ID: listingID}
		}
		return nil, fmt.Errorf("failed to load listing %s: %w", listingID, err)
	}

	if details.PaymentMethod != models.PayAtHotel && details.OnlinePaymentOption == "" {
		return nil, &InvalidBookingError{Reason: "online payment method requires a payment option"}
	}

	bookerMsg, err := renderBookerEmail(listing, bookerEmail, details)
	if err != nil {
		return nil, err
	}
	ownerMsg, err := renderOwnerEmail(listing, bookerEmail, details)
	if err != nil {
		return nil, err
	}

	// The two sends are independent: a failure is logged and recorded for that
	// recipient only, and never blocks the sibling send or the booking.
	receipt := &models.BookingReceipt{
		Booker: s.attempt(ctx, bookerEmail, bookerMsg),
		Owner:  s.attempt(ctx, listing.Owner.Email, ownerMsg),
	}

	s.scheduleReminder(listing, bookerEmail, details)

	return receipt, nil
}

func (s *DefaultBookingNotifier) attempt(ctx context.Context, to string, msg renderedEmail) models.NotificationOutcome {
	if err := s.Mailer.Send(ctx, to, msg.Subject, msg.TextBody, msg.HTMLBody); err != nil {
		s.Logger.Warn("booking email send failed",
			zap.String("recipient", to),
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return models.NotificationOutcome{Recipient: to, Delivered: false, Reason: err.Error()}
	}
	return models.NotificationOutcome{Recipient: to, Delivered: true}
}

// scheduleReminder enqueues a check-in reminder a day ahead. Best effort:
// a malformed date or enqueue failure is logged and never surfaces.
func (s *DefaultBookingNotifier) scheduleReminder(listing *models.Listing, bookerEmail string, details models.BookingDetails) {
	if s.Reminders == nil {
		return
	}
	checkIn, err := time.Parse(checkInDateLayout, details.CheckInDate)
	if err != nil {
		s.Logger.Debug("skipping check-in reminder, unparseable date",
			zap.String("checkInDate", details.CheckInDate))
		return
	}
	fireAt := checkIn.Add(-24 * time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID:    uuid.New().String(),
		Email:        bookerEmail,
		ListingTitle: listing.Title,
		CheckInDate:  details.CheckInDate,
	}
	if err := s.Reminders.ScheduleCheckInReminder(payload, fireAt); err != nil {
		s.Logger.Warn("failed to schedule check-in reminder",
			zap.String("recipient", bookerEmail),
			zap.Error(err))
	}
}
