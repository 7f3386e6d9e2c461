package domain

import "time"

// Outcome classifies how a chat round ended.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"   // at least one level returned updates
	OutcomeNoChange Outcome = "no_change" // every level was absent
	OutcomeFailed   Outcome = "failed"    // generator failure, fixed apology sent
)

// Level names a plan level in audit records.
type Level string

const (
	LevelWorkstreams Level = "workstreams"
	LevelMilestones  Level = "milestones"
	LevelTasks       Level = "tasks"
)

// LevelOutcome records what reconciliation did to one level's candidates.
type LevelOutcome struct {
	Level    Level
	Absent   bool
	Proposed int
	Kept     int
	Dropped  int
	New      int
}

// Reconciliation is one audited chat round. It stores counts only, never
// plan content.
type Reconciliation struct {
	ID              string
	RequestID       string
	CreatedAt       time.Time
	ActiveStep      ActiveStep
	Outcome         Outcome
	FailureCode     string
	TasksSuppressed bool
	Levels          []LevelOutcome
}

// Level returns the outcome recorded for l, if any.
func (r *Reconciliation) Level(l Level) (LevelOutcome, bool) {
	for _, lo := range r.Levels {
		if lo.Level == l {
			return lo, true
		}
	}
	return LevelOutcome{}, false
}

// TotalDropped sums dropped candidates across levels.
func (r *Reconciliation) TotalDropped() int {
	n := 0
	for _, lo := range r.Levels {
		n += lo.Dropped
	}
	return n
}
