package ports

import (
	"context"

	"github.com/powerme/portal-api/internal/core/domain"
)

type CaseService interface {
	List(ctx context.Context, customerID string) ([]domain.Case, error)
	Create(ctx context.Context, customerID, subject, description string) (*domain.Case, error)
}
