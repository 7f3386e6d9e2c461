package contract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequest_CamelCase(t *testing.T) {
	body := `{
		"message": "add a task",
		"workstreams": [{"id": 1, "name": "Legal", "description": ""}],
		"milestones": [],
		"tasks": [],
		"selectedWorkstreamIds": [1],
		"selectedMilestoneIds": [],
		"activeStep": 2,
		"milestoneSelectionSource": "workstream"
	}`

	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, req.Validate())

	assert.Equal(t, "add a task", req.Message)
	assert.Equal(t, []int{1}, req.SelectedWorkstreamIDs)
	assert.Equal(t, []int{}, req.SelectedMilestoneIDs)
	assert.Nil(t, req.SelectedTaskIDs)
	assert.Equal(t, domain.StepMilestones, req.ActiveStep)
	assert.Equal(t, domain.SourceWorkstream, req.MilestoneSelectionSource)
	assert.Equal(t, domain.SourceAll, req.TaskSelectionSource)
}

func TestChatRequest_SnakeCase(t *testing.T) {
	body := `{
		"message": "x",
		"workstreams": [], "milestones": [], "tasks": [],
		"selected_milestone_ids": [10, 11],
		"selected_task_ids": [100],
		"active_step": 3,
		"task_selection_source": "milestone"
	}`

	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, []int{10, 11}, req.SelectedMilestoneIDs)
	assert.Equal(t, []int{100}, req.SelectedTaskIDs)
	assert.Equal(t, domain.StepTasks, req.ActiveStep)
	assert.Equal(t, domain.SourceMilestone, req.TaskSelectionSource)
}

func TestChatRequest_CamelWinsOverSnake(t *testing.T) {
	body := `{"message":"x","workstreams":[],"milestones":[],"tasks":[],
		"selectedWorkstreamIds":[1],"selected_workstream_ids":[2],
		"activeStep":1,"active_step":3}`

	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, []int{1}, req.SelectedWorkstreamIDs)
	assert.Equal(t, domain.StepWorkstreams, req.ActiveStep)
}

func TestChatRequest_NoStep(t *testing.T) {
	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"message":"x","workstreams":[],"milestones":[],"tasks":[]}`), &req))
	assert.Equal(t, domain.StepUnknown, req.ActiveStep)
}

func TestChatRequest_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"message", `{"workstreams":[],"milestones":[],"tasks":[]}`, "message"},
		{"workstreams", `{"message":"x","milestones":[],"tasks":[]}`, "workstreams"},
		{"milestones", `{"message":"x","workstreams":[],"tasks":[]}`, "milestones"},
		{"tasks", `{"message":"x","workstreams":[],"milestones":[]}`, "tasks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ChatRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestNewChatRequest_Valid(t *testing.T) {
	req := NewChatRequest("hello", domain.Plan{})
	assert.NoError(t, req.Validate())
	assert.Equal(t, domain.SourceAll, req.MilestoneSelectionSource)
}

func TestChatResponse_NullMeansNoChange(t *testing.T) {
	data, err := json.Marshal(FailureResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"role": "assistant",
		"text": "Sorry, something went wrong talking to the AI. Please try again.",
		"updatedWorkstreams": null,
		"updatedMilestones": null,
		"updatedTasks": null
	}`, string(data))
}

func TestChatResponse_EmptyListIsRemoval(t *testing.T) {
	resp := NewChatResponse("cleared", domain.Proposal{Tasks: []domain.TaskUpdate{}})
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"role": "assistant",
		"text": "cleared",
		"updatedWorkstreams": null,
		"updatedMilestones": null,
		"updatedTasks": []
	}`, string(data))
}
