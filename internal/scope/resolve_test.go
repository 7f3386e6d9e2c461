package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_EmptySelectionIsUnrestricted(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{})

	assert.True(t, sc.Unrestricted())
	assert.False(t, sc.MilestonesRestricted())
	assert.False(t, sc.TasksRestricted())
}

func TestResolve_WorkstreamCascadesToMilestones(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Workstreams: []int{1}})

	assert.Equal(t, []int{1}, sc.Workstreams.Sorted())
	assert.Equal(t, []int{1}, sc.MilestoneParents.Sorted())
	assert.Equal(t, []int{10, 11}, sc.Milestones.Sorted(),
		"milestone scope is exactly the milestones of the selected workstream")
	assert.Equal(t, []int{10, 11}, sc.TaskParents.Sorted())
	assert.True(t, sc.Tasks.Empty())
}

func TestResolve_MilestoneAuthorizesItsWorkstream(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Milestones: []int{20}})

	assert.True(t, sc.Workstreams.Empty())
	assert.Equal(t, []int{2}, sc.MilestoneParents.Sorted())
	assert.Equal(t, []int{20}, sc.Milestones.Sorted(), "explicit milestone pick is not back-filled")
	assert.Equal(t, []int{20}, sc.TaskParents.Sorted())
}

func TestResolve_TaskAuthorizesItsMilestone(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Tasks: []int{110}})

	assert.Equal(t, []int{110}, sc.Tasks.Sorted())
	assert.Equal(t, []int{11}, sc.TaskParents.Sorted())
	assert.False(t, sc.MilestonesRestricted(), "task selection leaves milestones open")
}

func TestResolve_TaskParentsAddToSelectedMilestones(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Milestones: []int{10}, Tasks: []int{200}})

	assert.Equal(t, []int{10, 20}, sc.TaskParents.Sorted())
	assert.Equal(t, []int{10}, sc.Milestones.Sorted())
	assert.Equal(t, []int{1}, sc.MilestoneParents.Sorted())
}

func TestResolve_TaskParentsMatchMilestoneScopeWhenNothingElseApplies(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Workstreams: []int{2}})

	assert.Equal(t, sc.Milestones.Sorted(), sc.TaskParents.Sorted())
	assert.Equal(t, []int{20}, sc.TaskParents.Sorted())
}

func TestResolve_DanglingParentsAreNotAdded(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Milestones: []int{30}, Tasks: []int{300}})

	assert.True(t, sc.MilestoneParents.Empty(), "ms 30 points at a missing workstream")
	assert.Equal(t, []int{30}, sc.TaskParents.Sorted(), "task 300 points at a missing milestone")
	assert.Equal(t, []int{30}, sc.Milestones.Sorted())
}

func TestResolve_UnknownSelectedIDsKeptVerbatim(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Workstreams: []int{42}})

	assert.Equal(t, []int{42}, sc.Workstreams.Sorted())
	assert.Equal(t, []int{42}, sc.MilestoneParents.Sorted())
	assert.True(t, sc.Milestones.Empty(), "no milestone belongs to workstream 42")
	assert.True(t, sc.TaskParents.Empty())
}

func TestScope_EditableSets(t *testing.T) {
	plan := samplePlan()
	sc := Resolve(plan, Selection{Tasks: []int{200}, Milestones: []int{11}})

	assert.Equal(t, []int{10, 11}, sc.EditableMilestones(plan.Milestones).Sorted(),
		"milestone 11 authorizes workstream 1, which covers milestone 10 too")
	assert.Equal(t, []int{110, 200}, sc.EditableTasks(plan.Tasks).Sorted())
}
