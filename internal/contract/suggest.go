package contract

import "github.com/alexanderramin/workplan/internal/domain"

// GenerateMilestonesRequest asks for placeholder milestones under the
// given (optionally filtered) workstreams.
type GenerateMilestonesRequest struct {
	Overview              string              `json:"overview"`
	Workstreams           []domain.Workstream `json:"workstreams"`
	SelectedWorkstreamIDs []int               `json:"selected_workstream_ids,omitempty"`
}

// GenerateTasksRequest asks for placeholder tasks under the given
// (optionally filtered) milestones.
type GenerateTasksRequest struct {
	Milestones           []domain.Milestone `json:"milestones"`
	SelectedMilestoneIDs []int              `json:"selected_milestone_ids,omitempty"`
}

// ExportRequest carries the plan to be written as a spreadsheet.
type ExportRequest struct {
	Workstreams []domain.Workstream `json:"workstreams"`
	Milestones  []domain.Milestone  `json:"milestones"`
	Tasks       []domain.Task       `json:"tasks"`
}

// Plan assembles the request's entities into a domain.Plan.
func (r ExportRequest) Plan() domain.Plan {
	return domain.Plan{Workstreams: r.Workstreams, Milestones: r.Milestones, Tasks: r.Tasks}
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse carries a single informational message.
type MessageResponse struct {
	Message string `json:"message"`
}
