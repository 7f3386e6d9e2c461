package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/llm"
	"github.com/alexanderramin/workplan/internal/scope"
)

// PlanChatInput is everything one generator round needs.
type PlanChatInput struct {
	Message   string
	Plan      domain.Plan
	Selection scope.Selection
	Step      domain.ActiveStep
	Now       time.Time
}

// GenerationResult is either a proposal with the model's message or a
// failure reason. Failures are values, not errors: callers map every one
// of them to the same user-facing reply.
type GenerationResult struct {
	Message  string
	Proposal domain.Proposal
	Failure  error
}

// Failed reports whether the round produced no usable proposal.
func (r GenerationResult) Failed() bool { return r.Failure != nil }

func failed(err error) GenerationResult { return GenerationResult{Failure: err} }

// PlanChatService asks the model for candidate plan updates.
type PlanChatService interface {
	Propose(ctx context.Context, in PlanChatInput) GenerationResult
}

type planChatService struct {
	client llm.LLMClient
}

// NewPlanChatService creates a PlanChatService backed by client. A nil
// client yields a service whose every round fails with llm.ErrDisabled.
func NewPlanChatService(client llm.LLMClient) PlanChatService {
	return &planChatService{client: client}
}

func (s *planChatService) Propose(ctx context.Context, in PlanChatInput) GenerationResult {
	if s.client == nil {
		return failed(llm.ErrDisabled)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlanChat,
		SystemPrompt: ToASCII(SystemPrompt(in.Now)),
		UserPrompt:   ToASCII(UserPrompt(in)),
		JSONMode:     true,
	})
	if err != nil {
		return failed(fmt.Errorf("llm plan chat failed: %w", err))
	}

	payload, err := llm.ExtractJSON(resp.Text, validatePlanChatPayload)
	if err != nil {
		return failed(fmt.Errorf("failed to extract plan updates: %w", err))
	}

	return GenerationResult{
		Message:  *payload.Message,
		Proposal: payload.proposal(),
	}
}
