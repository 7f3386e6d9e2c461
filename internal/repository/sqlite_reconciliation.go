package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/db"
	"github.com/alexanderramin/workplan/internal/domain"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// SQLiteReconciliationRepo implements ReconciliationRepo using a SQLite database.
// Create writes several rows; run it inside a UnitOfWork for atomicity.
type SQLiteReconciliationRepo struct {
	db db.DBTX
}

// NewSQLiteReconciliationRepo creates a new SQLiteReconciliationRepo.
func NewSQLiteReconciliationRepo(conn db.DBTX) *SQLiteReconciliationRepo {
	return &SQLiteReconciliationRepo{db: conn}
}

func (r *SQLiteReconciliationRepo) Create(ctx context.Context, rec *domain.Reconciliation) error {
	query := `INSERT INTO reconciliations (id, request_id, created_at, active_step, outcome, failure_code, tasks_suppressed)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.RequestID,
		rec.CreatedAt.UTC().Format(timeLayout),
		int(rec.ActiveStep),
		string(rec.Outcome),
		rec.FailureCode,
		rec.TasksSuppressed,
	)
	if err != nil {
		return fmt.Errorf("inserting reconciliation: %w", err)
	}

	levelQuery := `INSERT INTO reconciliation_levels (reconciliation_id, level, absent, proposed, kept, dropped, new_items)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, lo := range rec.Levels {
		_, err := r.db.ExecContext(ctx, levelQuery,
			rec.ID,
			string(lo.Level),
			lo.Absent,
			lo.Proposed,
			lo.Kept,
			lo.Dropped,
			lo.New,
		)
		if err != nil {
			return fmt.Errorf("inserting %s level for reconciliation %s: %w", lo.Level, rec.ID, err)
		}
	}
	return nil
}

func (r *SQLiteReconciliationRepo) GetByID(ctx context.Context, id string) (*domain.Reconciliation, error) {
	query := `SELECT id, request_id, created_at, active_step, outcome, failure_code, tasks_suppressed
		FROM reconciliations WHERE id = ?`
	rec, err := scanReconciliation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reconciliation: %w", ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadLevels(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteReconciliationRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Reconciliation, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, request_id, created_at, active_step, outcome, failure_code, tasks_suppressed
		FROM reconciliations ORDER BY created_at DESC, id DESC LIMIT ?`
	return r.list(ctx, query, limit)
}

func (r *SQLiteReconciliationRepo) ListByRequest(ctx context.Context, requestID string) ([]*domain.Reconciliation, error) {
	query := `SELECT id, request_id, created_at, active_step, outcome, failure_code, tasks_suppressed
		FROM reconciliations WHERE request_id = ? ORDER BY created_at`
	return r.list(ctx, query, requestID)
}

// DeleteBefore removes rounds older than cutoff; their levels cascade.
func (r *SQLiteReconciliationRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reconciliations WHERE created_at < ?`,
		cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("pruning reconciliations: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteReconciliationRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Reconciliation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reconciliations: %w", err)
	}

	var out []*domain.Reconciliation
	for rows.Next() {
		rec, err := scanReconciliation(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating reconciliations: %w", err)
	}
	// Close before issuing level queries; a single-connection pool would
	// otherwise block.
	rows.Close()

	for _, rec := range out {
		if err := r.loadLevels(ctx, rec); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteReconciliationRepo) loadLevels(ctx context.Context, rec *domain.Reconciliation) error {
	query := `SELECT level, absent, proposed, kept, dropped, new_items
		FROM reconciliation_levels WHERE reconciliation_id = ?
		ORDER BY CASE level WHEN 'workstreams' THEN 0 WHEN 'milestones' THEN 1 ELSE 2 END`
	rows, err := r.db.QueryContext(ctx, query, rec.ID)
	if err != nil {
		return fmt.Errorf("loading levels for reconciliation %s: %w", rec.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			lo    domain.LevelOutcome
			level string
		)
		if err := rows.Scan(&level, &lo.Absent, &lo.Proposed, &lo.Kept, &lo.Dropped, &lo.New); err != nil {
			return fmt.Errorf("scanning reconciliation level: %w", err)
		}
		lo.Level = domain.Level(level)
		rec.Levels = append(rec.Levels, lo)
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReconciliation(s scanner) (*domain.Reconciliation, error) {
	var (
		rec       domain.Reconciliation
		createdAt string
		step      int
		outcome   string
	)
	err := s.Scan(&rec.ID, &rec.RequestID, &createdAt, &step, &outcome, &rec.FailureCode, &rec.TasksSuppressed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning reconciliation: %w", err)
	}

	rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	rec.ActiveStep = domain.ActiveStep(step)
	rec.Outcome = domain.Outcome(outcome)
	return &rec, nil
}
