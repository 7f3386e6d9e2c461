package scope

import "github.com/alexanderramin/workplan/internal/domain"

// Selection is the user's raw, per-level selection. A nil or empty slice
// leaves that level unrestricted.
type Selection struct {
	Workstreams []int
	Milestones  []int
	Tasks       []int
}

// Scope is the resolved edit scope for one reconciliation pass.
type Scope struct {
	// Workstreams is the selected workstream ids verbatim.
	Workstreams IDSet

	// Milestones is the editable milestone ids.
	Milestones IDSet
	// MilestoneParents is the workstreams whose milestones are editable.
	MilestoneParents IDSet

	// Tasks is the editable task ids.
	Tasks IDSet
	// TaskParents is the milestones whose tasks are editable.
	TaskParents IDSet

	Index domain.PlanIndex
}

// Resolve expands sel against plan. Authorization cascades downward (a
// workstream implies its milestones and their tasks) and an explicit
// lower-level pick authorizes its own parent, so callers never need to
// select every level.
func Resolve(plan domain.Plan, sel Selection) Scope {
	idx := plan.Index()

	sc := Scope{
		Workstreams: NewIDSet(sel.Workstreams...),
		Milestones:  NewIDSet(sel.Milestones...),
		Tasks:       NewIDSet(sel.Tasks...),
		Index:       idx,
	}

	// Workstreams whose milestones are fair game: the selected ones plus the
	// parent of every selected milestone. Dangling parents are not added.
	sc.MilestoneParents = sc.Workstreams.Clone()
	for _, msID := range sel.Milestones {
		if ws, ok := idx.ParentWorkstream(msID); ok {
			sc.MilestoneParents.Add(ws.ID)
		}
	}

	// A workstream pick with no milestone pick covers all its milestones.
	if sc.Milestones.Empty() && !sc.MilestoneParents.Empty() {
		for _, ms := range plan.Milestones {
			if sc.MilestoneParents.Has(ms.WorkstreamID) {
				sc.Milestones.Add(ms.ID)
			}
		}
	}

	sc.TaskParents = NewIDSet(sel.Milestones...)
	for _, taskID := range sel.Tasks {
		if ms, ok := idx.ParentMilestone(taskID); ok {
			sc.TaskParents.Add(ms.ID)
		}
	}

	if sc.TaskParents.Empty() && !sc.MilestoneParents.Empty() {
		for msID, wsID := range idx.MilestoneParents {
			if sc.MilestoneParents.Has(wsID) {
				sc.TaskParents.Add(msID)
			}
		}
	}

	if sc.TaskParents.Empty() {
		sc.TaskParents = sc.Milestones.Clone()
	}

	return sc
}

// Unrestricted reports whether no level carries any restriction.
func (s Scope) Unrestricted() bool {
	return s.Workstreams.Empty() &&
		s.Milestones.Empty() && s.MilestoneParents.Empty() &&
		s.Tasks.Empty() && s.TaskParents.Empty()
}

// MilestonesRestricted reports whether milestone updates are filtered.
func (s Scope) MilestonesRestricted() bool {
	return !s.Milestones.Empty() || !s.MilestoneParents.Empty()
}

// TasksRestricted reports whether task updates are filtered.
func (s Scope) TasksRestricted() bool {
	return !s.Tasks.Empty() || !s.TaskParents.Empty()
}

// EditableMilestones returns the ids among milestones that a pass may edit,
// by the same rule Reconcile applies.
func (s Scope) EditableMilestones(milestones []domain.Milestone) IDSet {
	out := make(IDSet)
	for _, ms := range milestones {
		if s.Milestones.Has(ms.ID) || s.MilestoneParents.Has(ms.WorkstreamID) {
			out.Add(ms.ID)
		}
	}
	return out
}

// EditableTasks returns the ids among tasks that a pass may edit.
func (s Scope) EditableTasks(tasks []domain.Task) IDSet {
	out := make(IDSet)
	for _, t := range tasks {
		if s.Tasks.Has(t.ID) || s.TaskParents.Has(t.MilestoneID) {
			out.Add(t.ID)
		}
	}
	return out
}
