package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/powerme/portal-api/internal/api/metrics"
	"github.com/powerme/portal-api/internal/core/domain"
	"github.com/powerme/portal-api/internal/core/ports"
)

// Uploads are metadata-only from the portal's point of view; anything beyond
// this limit belongs in a proper file pipeline.
const maxUploadBytes = 10 << 20

type DocumentService struct {
	store  ports.CustomerDataStore
	logger zerolog.Logger
}

func NewDocumentService(store ports.CustomerDataStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{store: store, logger: logger}
}

func (s *DocumentService) List(ctx context.Context, customerID string) ([]domain.Document, error) {
	metrics.SalesforceRequestsTotal.WithLabelValues("documents", "list").Inc()
	return s.store.ListDocuments(ctx, customerID)
}

func (s *DocumentService) Upload(ctx context.Context, customerID string, input ports.UploadInput) (*domain.Document, error) {
	if input.Size <= 0 {
		return nil, domain.ErrEmptyUpload
	}
	if input.Size > maxUploadBytes {
		return nil, domain.ErrUploadTooLarge
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "upload"
	}

	now := time.Now().UTC()
	doc := domain.Document{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Name:        name,
		Type:        input.ContentType,
		CreatedDate: &now,
	}
	doc.DownloadURL = fmt.Sprintf("/customer/%s/documents/%s/download", customerID, doc.ID)

	metrics.SalesforceRequestsTotal.WithLabelValues("documents", "create").Inc()
	if err := s.store.AppendDocument(ctx, customerID, doc); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to store document")
		return nil, err
	}

	s.logger.Info().Str("customer_id", customerID).Str("document_id", doc.ID).Int64("size", input.Size).Msg("document uploaded")
	return &doc, nil
}

func (s *DocumentService) ResolveDownload(ctx context.Context, customerID, documentID string) (string, error) {
	docs, err := s.store.ListDocuments(ctx, customerID)
	if err != nil {
		return "", err
	}
	for _, d := range docs {
		if d.ID == documentID {
			return d.DownloadURL, nil
		}
	}
	return "", domain.ErrDocumentNotFound
}
