package testutil

import (
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/google/uuid"
)

// SamplePlan returns a small two-workstream plan used across packages:
//
//	ws 1 Legal  -> ms 10 Contracts (tasks 100, 101), ms 11 Entities (task 110)
//	ws 2 IT     -> ms 20 Cutover (task 200)
func SamplePlan() domain.Plan {
	return domain.Plan{
		Workstreams: []domain.Workstream{
			{ID: 1, Name: "Legal", Description: "Legal entity integration"},
			{ID: 2, Name: "IT", Description: "Systems cutover"},
		},
		Milestones: []domain.Milestone{
			NewTestMilestone(10, 1, "Contracts", WithDates("2025-01-15", "2025-02-28")),
			NewTestMilestone(11, 1, "Entities"),
			NewTestMilestone(20, 2, "Cutover", WithDates("2025-04-01", "2025-06-30")),
		},
		Tasks: []domain.Task{
			NewTestTask(100, 10, "Inventory contracts"),
			NewTestTask(101, 10, "Assign contracts", WithOwner("Dana")),
			NewTestTask(110, 11, "Merge entities"),
			NewTestTask(200, 20, "Switch ERP"),
		},
	}
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithDates(start, end string) MilestoneOption {
	return func(m *domain.Milestone) {
		m.StartDate = optional(start)
		m.EndDate = optional(end)
	}
}

func WithMilestoneDescription(d string) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Description = d
	}
}

func NewTestMilestone(id, wsID int, name string, opts ...MilestoneOption) domain.Milestone {
	m := domain.Milestone{
		ID:           id,
		WorkstreamID: wsID,
		Name:         name,
		Description:  name + " milestone",
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Task options
type TaskOption func(*domain.Task)

func WithOwner(owner string) TaskOption {
	return func(t *domain.Task) {
		t.Owner = &owner
	}
}

func WithTaskDates(start, end string) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = optional(start)
		t.EndDate = optional(end)
	}
}

func WithTaskDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(id, msID int, name string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:          id,
		MilestoneID: msID,
		Name:        name,
		Description: name + " task",
	}
	for _, o := range opts {
		o(&t)
	}
	return t
}

// Reconciliation options
type ReconciliationOption func(*domain.Reconciliation)

func WithOutcome(o domain.Outcome) ReconciliationOption {
	return func(r *domain.Reconciliation) {
		r.Outcome = o
	}
}

func WithCreatedAt(t time.Time) ReconciliationOption {
	return func(r *domain.Reconciliation) {
		r.CreatedAt = t
	}
}

func WithRequestID(id string) ReconciliationOption {
	return func(r *domain.Reconciliation) {
		r.RequestID = id
	}
}

func WithLevel(lo domain.LevelOutcome) ReconciliationOption {
	return func(r *domain.Reconciliation) {
		r.Levels = append(r.Levels, lo)
	}
}

// NewTestReconciliation builds an applied milestones-step round created now.
func NewTestReconciliation(opts ...ReconciliationOption) *domain.Reconciliation {
	r := &domain.Reconciliation{
		ID:         uuid.New().String(),
		RequestID:  uuid.New().String(),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
		ActiveStep: domain.StepMilestones,
		Outcome:    domain.OutcomeApplied,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
