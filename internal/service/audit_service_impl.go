package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/db"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/repository"
)

type auditService struct {
	rounds repository.ReconciliationRepo
	uow    db.UnitOfWork
	clock  clock.Clock
}

func NewAuditService(rounds repository.ReconciliationRepo, uow db.UnitOfWork, clk clock.Clock) AuditService {
	return &auditService{rounds: rounds, uow: uow, clock: clk}
}

// Record stores rec and its level rows in one transaction. A zero CreatedAt
// is stamped from the service clock.
func (s *auditService) Record(ctx context.Context, rec *domain.Reconciliation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.clock.Now()
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteReconciliationRepo(tx).Create(ctx, rec); err != nil {
			return fmt.Errorf("recording reconciliation: %w", err)
		}
		return nil
	})
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]*domain.Reconciliation, error) {
	return s.rounds.ListRecent(ctx, limit)
}

// Prune deletes rounds older than olderThan, measured from the service clock.
func (s *auditService) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("prune window must be positive, got %s", olderThan)
	}
	return s.rounds.DeleteBefore(ctx, s.clock.Now().Add(-olderThan))
}
