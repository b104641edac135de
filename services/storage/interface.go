package storage

import "context"

// UploadedFile is the hosted asset reference returned after an upload.
type UploadedFile struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// StorageService defines the interface for listing image storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (*UploadedFile, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}
