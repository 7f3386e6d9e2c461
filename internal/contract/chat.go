package contract

import (
	"encoding/json"
	"errors"

	"github.com/alexanderramin/workplan/internal/domain"
)

// ChatRequest is one conversational edit round: the whole plan, the
// user's selection, the UI step and a free-text message.
type ChatRequest struct {
	Message                  string
	Workstreams              []domain.Workstream
	Milestones               []domain.Milestone
	Tasks                    []domain.Task
	SelectedWorkstreamIDs    []int
	SelectedMilestoneIDs     []int
	SelectedTaskIDs          []int
	ActiveStep               domain.ActiveStep
	MilestoneSelectionSource domain.SelectionSource
	TaskSelectionSource      domain.SelectionSource

	present fieldPresence
}

type fieldPresence struct {
	message, workstreams, milestones, tasks bool
}

// chatRequestWire accepts both the camelCase names the browser client
// sends and the snake_case field names.
type chatRequestWire struct {
	Message     *string             `json:"message"`
	Workstreams []domain.Workstream `json:"workstreams"`
	Milestones  []domain.Milestone  `json:"milestones"`
	Tasks       []domain.Task       `json:"tasks"`

	SelectedWorkstreamIDs []int `json:"selectedWorkstreamIds"`
	SelectedMilestoneIDs  []int `json:"selectedMilestoneIds"`
	SelectedTaskIDs       []int `json:"selectedTaskIds"`
	ActiveStep            *int  `json:"activeStep"`

	SelectedWorkstreamIDsSnake []int `json:"selected_workstream_ids"`
	SelectedMilestoneIDsSnake  []int `json:"selected_milestone_ids"`
	SelectedTaskIDsSnake       []int `json:"selected_task_ids"`
	ActiveStepSnake            *int  `json:"active_step"`

	MilestoneSelectionSource      *string `json:"milestoneSelectionSource"`
	TaskSelectionSource           *string `json:"taskSelectionSource"`
	MilestoneSelectionSourceSnake *string `json:"milestone_selection_source"`
	TaskSelectionSourceSnake      *string `json:"task_selection_source"`
}

// UnmarshalJSON decodes either naming convention. When both spellings of
// a field are present the camelCase one wins.
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	var w chatRequestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = ChatRequest{
		Message:               domain.StrOrEmpty(w.Message),
		Workstreams:           w.Workstreams,
		Milestones:            w.Milestones,
		Tasks:                 w.Tasks,
		SelectedWorkstreamIDs: firstIDs(w.SelectedWorkstreamIDs, w.SelectedWorkstreamIDsSnake),
		SelectedMilestoneIDs:  firstIDs(w.SelectedMilestoneIDs, w.SelectedMilestoneIDsSnake),
		SelectedTaskIDs:       firstIDs(w.SelectedTaskIDs, w.SelectedTaskIDsSnake),
		MilestoneSelectionSource: selectionSource(
			w.MilestoneSelectionSource, w.MilestoneSelectionSourceSnake),
		TaskSelectionSource: selectionSource(
			w.TaskSelectionSource, w.TaskSelectionSourceSnake),
		present: fieldPresence{
			message:     w.Message != nil,
			workstreams: w.Workstreams != nil,
			milestones:  w.Milestones != nil,
			tasks:       w.Tasks != nil,
		},
	}

	switch {
	case w.ActiveStep != nil:
		r.ActiveStep = domain.ActiveStep(*w.ActiveStep)
	case w.ActiveStepSnake != nil:
		r.ActiveStep = domain.ActiveStep(*w.ActiveStepSnake)
	}
	return nil
}

// ErrMissingField reports a required request field that was absent.
var ErrMissingField = errors.New("missing required field")

// NewChatRequest builds a request for plan with an empty selection.
func NewChatRequest(message string, plan domain.Plan) ChatRequest {
	return ChatRequest{
		Message:                  message,
		Workstreams:              plan.Workstreams,
		Milestones:               plan.Milestones,
		Tasks:                    plan.Tasks,
		MilestoneSelectionSource: domain.SourceAll,
		TaskSelectionSource:      domain.SourceAll,
		present:                  fieldPresence{true, true, true, true},
	}
}

// Validate checks that the required fields were present in the body.
func (r ChatRequest) Validate() error {
	missing := ""
	switch {
	case !r.present.message:
		missing = "message"
	case !r.present.workstreams:
		missing = "workstreams"
	case !r.present.milestones:
		missing = "milestones"
	case !r.present.tasks:
		missing = "tasks"
	}
	if missing != "" {
		return &FieldError{Field: missing}
	}
	return nil
}

// Plan assembles the request's entities into a domain.Plan.
func (r ChatRequest) Plan() domain.Plan {
	return domain.Plan{
		Workstreams: r.Workstreams,
		Milestones:  r.Milestones,
		Tasks:       r.Tasks,
	}
}

// ChatResponse is returned for every chat round, including failures.
// A nil Updated* list means "no change" and serialises as null.
type ChatResponse struct {
	Role               string                    `json:"role"`
	Text               string                    `json:"text"`
	UpdatedWorkstreams []domain.WorkstreamUpdate `json:"updatedWorkstreams"`
	UpdatedMilestones  []domain.MilestoneUpdate  `json:"updatedMilestones"`
	UpdatedTasks       []domain.TaskUpdate       `json:"updatedTasks"`
}

// RoleAssistant is the only role the service produces.
const RoleAssistant = "assistant"

// FailureText is shown whenever the generator cannot produce a usable answer.
const FailureText = "Sorry, something went wrong talking to the AI. Please try again."

// NewChatResponse builds a successful response from a reconciled proposal.
func NewChatResponse(text string, p domain.Proposal) ChatResponse {
	return ChatResponse{
		Role:               RoleAssistant,
		Text:               text,
		UpdatedWorkstreams: p.Workstreams,
		UpdatedMilestones:  p.Milestones,
		UpdatedTasks:       p.Tasks,
	}
}

// FailureResponse is the fixed reply for any generator failure.
func FailureResponse() ChatResponse {
	return ChatResponse{Role: RoleAssistant, Text: FailureText}
}

func firstIDs(camel, snake []int) []int {
	if camel != nil {
		return camel
	}
	return snake
}

func selectionSource(camel, snake *string) domain.SelectionSource {
	switch {
	case camel != nil && *camel != "":
		return domain.SelectionSource(*camel)
	case snake != nil && *snake != "":
		return domain.SelectionSource(*snake)
	default:
		return domain.SourceAll
	}
}
