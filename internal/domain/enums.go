package domain

// ActiveStep identifies which level the user is currently working on.
type ActiveStep int

const (
	StepUnknown     ActiveStep = 0
	StepWorkstreams ActiveStep = 1
	StepMilestones  ActiveStep = 2
	StepTasks       ActiveStep = 3
)

// Label returns the display name used in generator context.
func (s ActiveStep) Label() string {
	switch s {
	case StepWorkstreams:
		return "Workstreams"
	case StepMilestones:
		return "Milestones"
	case StepTasks:
		return "Tasks"
	default:
		return "Unknown"
	}
}

// SelectionSource records where the client derived a selection from.
// It is informational only.
type SelectionSource string

const (
	SourceAll        SelectionSource = "all"
	SourceWorkstream SelectionSource = "workstream"
	SourceMilestone  SelectionSource = "milestone"
	SourceTask       SelectionSource = "task"
)
