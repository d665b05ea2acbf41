package ports

import (
	"context"

	"github.com/powerme/portal-api/internal/core/domain"
)

// CustomerDataStore is the Salesforce-shaped persistence contract for
// customer-visible records: read all records for a customer, append one.
// The portal never updates or deletes through this interface.
type CustomerDataStore interface {
	ListDocuments(ctx context.Context, customerID string) ([]domain.Document, error)
	AppendDocument(ctx context.Context, customerID string, doc domain.Document) error
	ListCases(ctx context.Context, customerID string) ([]domain.Case, error)
	AppendCase(ctx context.Context, customerID string, c domain.Case) error
}
