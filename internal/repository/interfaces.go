package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
)

// ReconciliationRepo stores audited chat rounds and their per-level counts.
type ReconciliationRepo interface {
	Create(ctx context.Context, r *domain.Reconciliation) error
	GetByID(ctx context.Context, id string) (*domain.Reconciliation, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Reconciliation, error)
	ListByRequest(ctx context.Context, requestID string) ([]*domain.Reconciliation, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
