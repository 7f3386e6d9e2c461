package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scope"
)

const (
	milestonesPerWorkstream = 2
	tasksPerMilestone       = 3
)

type suggestService struct {
	observer UseCaseObserver
}

// NewSuggestService creates the deterministic suggestion generator.
func NewSuggestService(observers ...UseCaseObserver) SuggestService {
	return &suggestService{observer: useCaseObserverOrNoop(observers)}
}

// Milestones returns two placeholder milestones for every targeted
// workstream, numbered from 1 across the whole batch. An empty selection
// targets every workstream.
func (s *suggestService) Milestones(ctx context.Context, req contract.GenerateMilestonesRequest) []domain.Milestone {
	start := time.Now()
	target := targetIDs(req.SelectedWorkstreamIDs, len(req.Workstreams), func(i int) int { return req.Workstreams[i].ID })

	out := []domain.Milestone{}
	nextID := 1
	for _, ws := range req.Workstreams {
		if !target.Has(ws.ID) {
			continue
		}
		for n := 1; n <= milestonesPerWorkstream; n++ {
			out = append(out, domain.Milestone{
				ID:           nextID,
				WorkstreamID: ws.ID,
				Name:         fmt.Sprintf("%s – Milestone %d", ws.Name, n),
				Description:  fmt.Sprintf("Auto-suggested milestone %d for %s.", n, ws.Name),
			})
			nextID++
		}
	}

	s.observe(ctx, "suggest_milestones", start, len(out))
	return out
}

// Tasks returns three placeholder tasks for every targeted milestone.
func (s *suggestService) Tasks(ctx context.Context, req contract.GenerateTasksRequest) []domain.Task {
	start := time.Now()
	target := targetIDs(req.SelectedMilestoneIDs, len(req.Milestones), func(i int) int { return req.Milestones[i].ID })

	out := []domain.Task{}
	nextID := 1
	for _, ms := range req.Milestones {
		if !target.Has(ms.ID) {
			continue
		}
		for n := 1; n <= tasksPerMilestone; n++ {
			out = append(out, domain.Task{
				ID:          nextID,
				MilestoneID: ms.ID,
				Name:        fmt.Sprintf("%s – Task %d", ms.Name, n),
				Description: fmt.Sprintf("Auto-suggested task %d for milestone %s.", n, ms.Name),
				Owner:       domain.StrPtr(""),
			})
			nextID++
		}
	}

	s.observe(ctx, "suggest_tasks", start, len(out))
	return out
}

func (s *suggestService) observe(ctx context.Context, name string, start time.Time, n int) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   true,
		StartedAt: start,
		Fields:    map[string]any{"generated": n},
	})
}

func targetIDs(selected []int, n int, idAt func(int) int) scope.IDSet {
	if len(selected) > 0 {
		return scope.NewIDSet(selected...)
	}
	all := make(scope.IDSet, n)
	for i := 0; i < n; i++ {
		all.Add(idAt(i))
	}
	return all
}
