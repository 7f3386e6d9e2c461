package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/export"
)

type exportService struct {
	clock    clock.Clock
	observer UseCaseObserver
}

func NewExportService(clk clock.Clock, observers ...UseCaseObserver) ExportService {
	return &exportService{clock: clk, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, plan domain.Plan) (*ExportResult, error) {
	start := time.Now()

	var buf bytes.Buffer
	err := export.Write(&buf, plan)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "export_excel",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"workstreams": len(plan.Workstreams),
			"milestones":  len(plan.Milestones),
			"tasks":       len(plan.Tasks),
			"bytes":       buf.Len(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("exporting plan: %w", err)
	}

	return &ExportResult{
		Filename:    export.Filename(s.clock.Now()),
		ContentType: export.ContentType,
		Data:        buf.Bytes(),
	}, nil
}
