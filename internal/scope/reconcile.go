package scope

import "github.com/alexanderramin/workplan/internal/domain"

// Candidate is a proposed item whose id and parent id may be missing.
type Candidate interface {
	ItemID() (int, bool)
	ParentID() (int, bool)
}

// LevelReport counts what reconciliation did at one level.
type LevelReport struct {
	Absent   bool // generator proposed no change
	Proposed int
	Kept     int
	Dropped  int
	New      int // kept items whose id is not on the current plan
}

// Report summarises one ReconcileProposal pass.
type Report struct {
	Workstreams LevelReport
	Milestones  LevelReport
	Tasks       LevelReport

	// TasksSuppressed is set when the context guard discarded task updates.
	TasksSuppressed bool
}

// Dropped returns the number of candidates filtered out across all levels.
func (r Report) Dropped() int {
	return r.Workstreams.Dropped + r.Milestones.Dropped + r.Tasks.Dropped
}

// Reconcile keeps the candidates a pass is allowed to apply.
//
// A nil batch stays nil. With both allowed and allowedParents empty every
// candidate passes. Otherwise a candidate is kept when its id is in allowed
// or its parent is in allowedParents; the parent comes from the candidate
// itself, falling back to parentOf keyed by the candidate id. Everything else
// is dropped without error, including brand-new items (ids absent from
// existing) whose parent is not authorised.
func Reconcile[T Candidate](candidates []T, allowed, existing, allowedParents IDSet, parentOf map[int]int) ([]T, LevelReport) {
	if candidates == nil {
		return nil, LevelReport{Absent: true}
	}

	rep := LevelReport{Proposed: len(candidates)}

	if allowed.Empty() && allowedParents.Empty() {
		rep.Kept = len(candidates)
		rep.New = countNew(candidates, existing)
		return candidates, rep
	}

	kept := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if !permitted(c, allowed, allowedParents, parentOf) {
			continue
		}
		kept = append(kept, c)
	}

	rep.Kept = len(kept)
	rep.Dropped = rep.Proposed - rep.Kept
	rep.New = countNew(kept, existing)
	return kept, rep
}

func permitted[T Candidate](c T, allowed, allowedParents IDSet, parentOf map[int]int) bool {
	id, hasID := c.ItemID()
	if hasID && allowed.Has(id) {
		return true
	}
	parent, ok := resolveParent(c, id, hasID, parentOf)
	return ok && allowedParents.Has(parent)
}

func resolveParent[T Candidate](c T, id int, hasID bool, parentOf map[int]int) (int, bool) {
	if parent, ok := c.ParentID(); ok {
		return parent, true
	}
	if !hasID || parentOf == nil {
		return 0, false
	}
	parent, ok := parentOf[id]
	return parent, ok
}

func countNew[T Candidate](items []T, existing IDSet) int {
	n := 0
	for _, c := range items {
		if id, ok := c.ItemID(); !ok || !existing.Has(id) {
			n++
		}
	}
	return n
}

// ReconcileProposal filters every level of p against sc and applies the
// context guard: while the user works on milestones, task updates are
// discarded regardless of scope.
func ReconcileProposal(sc Scope, p domain.Proposal, step domain.ActiveStep) (domain.Proposal, Report) {
	var (
		out domain.Proposal
		rep Report
	)

	out.Workstreams, rep.Workstreams = Reconcile(p.Workstreams,
		sc.Workstreams, keys(sc.Index.Workstreams), nil, nil)

	out.Milestones, rep.Milestones = Reconcile(p.Milestones,
		sc.Milestones, keys(sc.Index.Milestones), sc.MilestoneParents, sc.Index.MilestoneParents)

	out.Tasks, rep.Tasks = Reconcile(p.Tasks,
		sc.Tasks, keys(sc.Index.Tasks), sc.TaskParents, sc.Index.TaskParents)

	if step == domain.StepMilestones {
		rep.TasksSuppressed = out.Tasks != nil
		out.Tasks = nil
	}

	return out, rep
}

func keys[V any](m map[int]V) IDSet {
	s := make(IDSet, len(m))
	for id := range m {
		s[id] = struct{}{}
	}
	return s
}
