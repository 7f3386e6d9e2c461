package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
)

// FormatAudit renders recent reconciliation rounds, newest first.
func FormatAudit(recs []*domain.Reconciliation, now time.Time) string {
	if len(recs) == 0 {
		return Dim("No reconciliations recorded.") + "\n"
	}

	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			shortID(r.RequestID),
			AgoFrom(r.CreatedAt, now),
			r.ActiveStep.Label(),
			OutcomeIndicator(r.Outcome),
			levelCell(r, domain.LevelWorkstreams),
			levelCell(r, domain.LevelMilestones),
			levelCell(r, domain.LevelTasks),
			notes(r),
		}
	}
	return RenderTable(
		[]string{"REQUEST", "WHEN", "STEP", "OUTCOME", "WORKSTREAMS", "MILESTONES", "TASKS", "NOTES"},
		rows,
	)
}

func levelCell(r *domain.Reconciliation, l domain.Level) string {
	lo, ok := r.Level(l)
	if !ok || lo.Absent {
		return Dim("-")
	}
	return RenderKeptBar(lo.Kept, lo.Proposed, 4)
}

func notes(r *domain.Reconciliation) string {
	var parts []string
	if r.FailureCode != "" {
		parts = append(parts, r.FailureCode)
	}
	if r.TasksSuppressed {
		parts = append(parts, "tasks suppressed")
	}
	return strings.Join(parts, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
