package intelligence

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/domain"
)

// planChatPayload is the JSON object the model must return. Typed decoding
// rejects non-array levels and non-object items; a null or missing level
// decodes to nil, meaning "no change".
type planChatPayload struct {
	Message            *string                   `json:"message"`
	UpdatedWorkstreams []domain.WorkstreamUpdate `json:"updatedWorkstreams"`
	UpdatedMilestones  []domain.MilestoneUpdate  `json:"updatedMilestones"`
	UpdatedTasks       []domain.TaskUpdate       `json:"updatedTasks"`
}

func validatePlanChatPayload(p planChatPayload) error {
	if p.Message == nil {
		return fmt.Errorf("message field is required")
	}
	return nil
}

func (p planChatPayload) proposal() domain.Proposal {
	return domain.Proposal{
		Workstreams: p.UpdatedWorkstreams,
		Milestones:  p.UpdatedMilestones,
		Tasks:       p.UpdatedTasks,
	}
}
