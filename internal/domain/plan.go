package domain

// Workstream is a top-level plan entry. It has no parent.
type Workstream struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Milestone belongs to a workstream. WorkstreamID may dangle; callers treat
// a reference to a missing workstream as having no resolvable parent.
type Milestone struct {
	ID           int     `json:"id" yaml:"id"`
	WorkstreamID int     `json:"workstreamId" yaml:"workstreamId"`
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	StartDate    *string `json:"startDate" yaml:"startDate,omitempty"` // ISO-8601 date
	EndDate      *string `json:"endDate" yaml:"endDate,omitempty"`
}

// Task belongs to a milestone, with the same dangling-reference tolerance.
type Task struct {
	ID          int     `json:"id" yaml:"id"`
	MilestoneID int     `json:"milestoneId" yaml:"milestoneId"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Owner       *string `json:"owner" yaml:"owner,omitempty"`
	StartDate   *string `json:"startDate" yaml:"startDate,omitempty"`
	EndDate     *string `json:"endDate" yaml:"endDate,omitempty"`
}

// Plan is the full three-level hierarchy as supplied by the caller.
// It is never edited in place; changes are produced as new lists.
type Plan struct {
	Workstreams []Workstream `json:"workstreams" yaml:"workstreams"`
	Milestones  []Milestone  `json:"milestones" yaml:"milestones"`
	Tasks       []Task       `json:"tasks" yaml:"tasks"`
}

// PlanIndex holds the per-call lookup tables derived from a Plan.
// Parent links are plain id maps rather than pointers so the model stays a tree.
type PlanIndex struct {
	Workstreams map[int]Workstream
	Milestones  map[int]Milestone
	Tasks       map[int]Task

	// MilestoneParents maps milestone id -> workstream id.
	MilestoneParents map[int]int
	// TaskParents maps task id -> milestone id.
	TaskParents map[int]int
}

// Index builds the lookup tables for p. When ids repeat within a level the
// last entry wins.
func (p Plan) Index() PlanIndex {
	idx := PlanIndex{
		Workstreams:      make(map[int]Workstream, len(p.Workstreams)),
		Milestones:       make(map[int]Milestone, len(p.Milestones)),
		Tasks:            make(map[int]Task, len(p.Tasks)),
		MilestoneParents: make(map[int]int, len(p.Milestones)),
		TaskParents:      make(map[int]int, len(p.Tasks)),
	}
	for _, ws := range p.Workstreams {
		idx.Workstreams[ws.ID] = ws
	}
	for _, ms := range p.Milestones {
		idx.Milestones[ms.ID] = ms
		idx.MilestoneParents[ms.ID] = ms.WorkstreamID
	}
	for _, t := range p.Tasks {
		idx.Tasks[t.ID] = t
		idx.TaskParents[t.ID] = t.MilestoneID
	}
	return idx
}

// Workstream looks up a workstream by id.
func (x PlanIndex) Workstream(id int) (Workstream, bool) {
	ws, ok := x.Workstreams[id]
	return ws, ok
}

// Milestone looks up a milestone by id.
func (x PlanIndex) Milestone(id int) (Milestone, bool) {
	ms, ok := x.Milestones[id]
	return ms, ok
}

// Task looks up a task by id.
func (x PlanIndex) Task(id int) (Task, bool) {
	t, ok := x.Tasks[id]
	return t, ok
}

// MilestoneParent returns the workstream id recorded on milestone id.
// The workstream itself may not exist.
func (x PlanIndex) MilestoneParent(id int) (int, bool) {
	ws, ok := x.MilestoneParents[id]
	return ws, ok
}

// TaskParent returns the milestone id recorded on task id.
func (x PlanIndex) TaskParent(id int) (int, bool) {
	ms, ok := x.TaskParents[id]
	return ms, ok
}

// ParentWorkstream resolves the workstream owning milestone id, reporting
// false when the milestone is unknown or its workstream reference dangles.
func (x PlanIndex) ParentWorkstream(id int) (Workstream, bool) {
	wsID, ok := x.MilestoneParents[id]
	if !ok {
		return Workstream{}, false
	}
	return x.Workstream(wsID)
}

// ParentMilestone resolves the milestone owning task id.
func (x PlanIndex) ParentMilestone(id int) (Milestone, bool) {
	msID, ok := x.TaskParents[id]
	if !ok {
		return Milestone{}, false
	}
	return x.Milestone(msID)
}
