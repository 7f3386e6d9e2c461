package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/domain"
)

// ChatService runs one conversational edit round. It never returns an
// error: every generator failure becomes the fixed apology response.
type ChatService interface {
	Chat(ctx context.Context, req contract.ChatRequest) contract.ChatResponse
}

// SuggestService produces deterministic placeholder structure.
type SuggestService interface {
	Milestones(ctx context.Context, req contract.GenerateMilestonesRequest) []domain.Milestone
	Tasks(ctx context.Context, req contract.GenerateTasksRequest) []domain.Task
}

// ExportResult is a rendered spreadsheet ready to stream.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportService interface {
	Export(ctx context.Context, plan domain.Plan) (*ExportResult, error)
}

// AuditService records reconciliation outcomes. Plans are never stored.
type AuditService interface {
	Record(ctx context.Context, rec *domain.Reconciliation) error
	Recent(ctx context.Context, limit int) ([]*domain.Reconciliation, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
