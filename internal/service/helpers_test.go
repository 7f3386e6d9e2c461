package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/intelligence"
	"github.com/alexanderramin/workplan/internal/llm"
)

var testNow = time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

func testClock() *clock.FakeClock { return clock.NewFakeClock(testNow) }

// stubGenerator returns a canned result and remembers its input.
type stubGenerator struct {
	result intelligence.GenerationResult
	last   intelligence.PlanChatInput
}

func (g *stubGenerator) Propose(_ context.Context, in intelligence.PlanChatInput) intelligence.GenerationResult {
	g.last = in
	return g.result
}

// mockLLM is an llm.LLMClient serving a fixed response.
type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test"}, nil
}

func (m *mockLLM) Available(context.Context) bool { return m.err == nil }

// captureObserver records use-case events.
type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
}

func (o *captureObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
