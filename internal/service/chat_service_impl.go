package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/intelligence"
	"github.com/alexanderramin/workplan/internal/llm"
	"github.com/alexanderramin/workplan/internal/scope"
	"github.com/google/uuid"
)

type chatService struct {
	generator intelligence.PlanChatService
	reference clock.Clock
	audit     AuditService
	observer  UseCaseObserver
}

// NewChatService wires the generator, the reconciler and an optional audit
// trail. reference supplies the date the generator reasons about; audit rows
// are stamped by the audit service's own clock. audit may be nil.
func NewChatService(
	generator intelligence.PlanChatService,
	reference clock.Clock,
	audit AuditService,
	observers ...UseCaseObserver,
) ChatService {
	return &chatService{
		generator: generator,
		reference: reference,
		audit:     audit,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *chatService) Chat(ctx context.Context, req contract.ChatRequest) contract.ChatResponse {
	start := time.Now()
	plan := req.Plan()
	sel := scope.Selection{
		Workstreams: req.SelectedWorkstreamIDs,
		Milestones:  req.SelectedMilestoneIDs,
		Tasks:       req.SelectedTaskIDs,
	}

	res := s.generator.Propose(ctx, intelligence.PlanChatInput{
		Message:   req.Message,
		Plan:      plan,
		Selection: sel,
		Step:      req.ActiveStep,
		Now:       s.reference.Now(),
	})

	if res.Failed() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "chat",
			Duration:  time.Since(start),
			Success:   false,
			Err:       res.Failure,
			StartedAt: start,
			Fields:    map[string]any{"active_step": req.ActiveStep.Label()},
		})
		s.record(ctx, &domain.Reconciliation{
			ActiveStep:  req.ActiveStep,
			Outcome:     domain.OutcomeFailed,
			FailureCode: llm.ErrorCode(res.Failure),
		})
		return contract.FailureResponse()
	}

	sc := scope.Resolve(plan, sel)
	out, rep := scope.ReconcileProposal(sc, res.Proposal, req.ActiveStep)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "chat",
		Duration:  time.Since(start),
		Success:   true,
		StartedAt: start,
		Fields: map[string]any{
			"active_step":          req.ActiveStep.Label(),
			"milestone_sel_source": string(req.MilestoneSelectionSource),
			"task_sel_source":      string(req.TaskSelectionSource),
			"unrestricted":         sc.Unrestricted(),
			"workstreams_kept":     rep.Workstreams.Kept,
			"milestones_kept":      rep.Milestones.Kept,
			"tasks_kept":           rep.Tasks.Kept,
			"dropped":              rep.Dropped(),
			"tasks_suppressed":     rep.TasksSuppressed,
		},
	})
	s.record(ctx, &domain.Reconciliation{
		ActiveStep:      req.ActiveStep,
		Outcome:         outcomeOf(out),
		TasksSuppressed: rep.TasksSuppressed,
		Levels:          levelOutcomes(rep),
	})

	return contract.NewChatResponse(res.Message, out)
}

// record appends rec to the audit trail. Audit failures are logged and
// never change the chat reply.
func (s *chatService) record(ctx context.Context, rec *domain.Reconciliation) {
	if s.audit == nil {
		return
	}
	rec.ID = uuid.New().String()
	rec.RequestID = RequestID(ctx)
	if rec.RequestID == "" {
		rec.RequestID = rec.ID
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "audit_record",
			Success:   false,
			Err:       err,
			StartedAt: time.Now(),
		})
	}
}

func outcomeOf(p domain.Proposal) domain.Outcome {
	if p.Workstreams == nil && p.Milestones == nil && p.Tasks == nil {
		return domain.OutcomeNoChange
	}
	return domain.OutcomeApplied
}

func levelOutcomes(rep scope.Report) []domain.LevelOutcome {
	level := func(l domain.Level, r scope.LevelReport) domain.LevelOutcome {
		return domain.LevelOutcome{
			Level:    l,
			Absent:   r.Absent,
			Proposed: r.Proposed,
			Kept:     r.Kept,
			Dropped:  r.Dropped,
			New:      r.New,
		}
	}
	return []domain.LevelOutcome{
		level(domain.LevelWorkstreams, rep.Workstreams),
		level(domain.LevelMilestones, rep.Milestones),
		level(domain.LevelTasks, rep.Tasks),
	}
}
