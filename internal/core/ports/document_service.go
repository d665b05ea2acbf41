package ports

import (
	"context"

	"github.com/powerme/portal-api/internal/core/domain"
)

// UploadInput carries the metadata of an uploaded file. Only size and
// emptiness are validated here; content handling is Salesforce's problem.
type UploadInput struct {
	Name        string
	ContentType string
	Size        int64
}

type DocumentService interface {
	List(ctx context.Context, customerID string) ([]domain.Document, error)
	Upload(ctx context.Context, customerID string, input UploadInput) (*domain.Document, error)
	// ResolveDownload returns the download URL for a customer's document.
	// Returns domain.ErrDocumentNotFound when the id does not belong to them.
	ResolveDownload(ctx context.Context, customerID, documentID string) (string, error)
}
