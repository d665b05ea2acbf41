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

type CaseService struct {
	store  ports.CustomerDataStore
	logger zerolog.Logger
}

func NewCaseService(store ports.CustomerDataStore, logger zerolog.Logger) *CaseService {
	return &CaseService{store: store, logger: logger}
}

func (s *CaseService) List(ctx context.Context, customerID string) ([]domain.Case, error) {
	metrics.SalesforceRequestsTotal.WithLabelValues("cases", "list").Inc()
	return s.store.ListCases(ctx, customerID)
}

func (s *CaseService) Create(ctx context.Context, customerID, subject, description string) (*domain.Case, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, domain.ErrBlankSubject
	}

	c := domain.Case{
		ID:          generateCaseID(),
		CustomerID:  customerID,
		Subject:     subject,
		Description: description,
		Type:        domain.CaseTypeCustomerRequest,
		Status:      domain.CaseStatusNew,
		CreatedDate: time.Now().UTC(),
	}

	metrics.SalesforceRequestsTotal.WithLabelValues("cases", "create").Inc()
	if err := s.store.AppendCase(ctx, customerID, c); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to create case")
		return nil, err
	}

	s.logger.Info().Str("customer_id", customerID).Str("case_id", c.ID).Msg("case created")
	return &c, nil
}

// generateCaseID mimics Salesforce case ids: the "500" key prefix followed by
// fifteen hex characters.
func generateCaseID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("500%s", raw[:15])
}
