package scope

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_AbsentBatchStaysAbsent(t *testing.T) {
	got, rep := Reconcile[domain.MilestoneUpdate](nil, NewIDSet(10), NewIDSet(10), NewIDSet(1), nil)
	assert.Nil(t, got)
	assert.True(t, rep.Absent)

	got, rep = Reconcile[domain.MilestoneUpdate](nil, nil, nil, nil, nil)
	assert.Nil(t, got)
	assert.True(t, rep.Absent)
}

func TestReconcile_UnrestrictedPassesEverything(t *testing.T) {
	candidates := []domain.MilestoneUpdate{
		msUpdate(10, 1, "Contracts v2"),
		msUpdate(77, 5, "Brand new"),
		{Name: domain.StrPtr("No id at all")},
	}

	got, rep := Reconcile(candidates, nil, NewIDSet(10, 11), nil, map[int]int{10: 1})

	assert.Equal(t, candidates, got)
	assert.Equal(t, 3, rep.Kept)
	assert.Equal(t, 0, rep.Dropped)
	assert.Equal(t, 2, rep.New)
}

func TestReconcile_DropsLockedItems(t *testing.T) {
	candidates := []domain.TaskUpdate{
		taskUpdate(100, 10, "in by id"),
		taskUpdate(110, 11, "in by parent"),
		taskUpdate(200, 20, "locked"),
		{ID: domain.IntPtr(201), Name: domain.StrPtr("locked, parent from lookup")},
	}
	parentOf := map[int]int{100: 10, 110: 11, 200: 20, 201: 20}

	got, rep := Reconcile(candidates, NewIDSet(100), NewIDSet(100, 110, 200, 201), NewIDSet(11), parentOf)

	require.Len(t, got, 2)
	assert.Equal(t, "in by id", *got[0].Name)
	assert.Equal(t, "in by parent", *got[1].Name)
	assert.Equal(t, 2, rep.Dropped)
}

func TestReconcile_PartialItemResolvesParentFromLookup(t *testing.T) {
	candidates := []domain.MilestoneUpdate{
		{ID: domain.IntPtr(11), Name: domain.StrPtr("renamed")},
	}

	got, _ := Reconcile(candidates, NewIDSet(99), NewIDSet(10, 11), NewIDSet(1), map[int]int{11: 1})

	require.Len(t, got, 1)
	assert.Equal(t, "renamed", *got[0].Name)
}

func TestReconcile_ItemParentFieldWinsOverLookup(t *testing.T) {
	candidates := []domain.MilestoneUpdate{msUpdate(20, 1, "moved")}

	got, _ := Reconcile(candidates, NewIDSet(10), NewIDSet(10, 20), NewIDSet(1), map[int]int{20: 2})

	assert.Len(t, got, 1)
}

func TestReconcile_NewItemsUnderRestrictedScope(t *testing.T) {
	candidates := []domain.MilestoneUpdate{
		msUpdate(500, 1, "new under selected workstream"),
		msUpdate(501, 2, "new under locked workstream"),
		{ID: domain.IntPtr(502), Name: domain.StrPtr("new without parent")},
	}

	got, rep := Reconcile(candidates, NewIDSet(10), NewIDSet(10, 11, 20), NewIDSet(1), map[int]int{10: 1})

	require.Len(t, got, 1)
	assert.Equal(t, 500, *got[0].ID)
	assert.Equal(t, 1, rep.New)
}

func TestReconcile_EverythingDroppedIsEmptyNotAbsent(t *testing.T) {
	candidates := []domain.WorkstreamUpdate{wsUpdate(2, "IT renamed")}

	got, rep := Reconcile(candidates, NewIDSet(1), NewIDSet(1, 2), nil, nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, rep.Absent)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReconcile_LockInvariant(t *testing.T) {
	plan := samplePlan()
	selections := []Selection{
		{Workstreams: []int{1}},
		{Milestones: []int{20}},
		{Tasks: []int{110}},
		{Workstreams: []int{2}, Tasks: []int{100}},
		{Milestones: []int{10, 30}},
	}
	var candidates []domain.TaskUpdate
	for _, task := range plan.Tasks {
		candidates = append(candidates, domain.TaskUpdate{ID: domain.IntPtr(task.ID)})
		candidates = append(candidates, taskUpdate(task.ID+1000, task.MilestoneID, "new"))
	}

	for _, sel := range selections {
		sc := Resolve(plan, sel)
		got, _ := Reconcile(candidates, sc.Tasks, keys(sc.Index.Tasks), sc.TaskParents, sc.Index.TaskParents)
		for _, c := range got {
			id, _ := c.ItemID()
			parent, ok := c.ParentID()
			if !ok {
				parent = sc.Index.TaskParents[id]
			}
			assert.True(t, sc.Tasks.Has(id) || sc.TaskParents.Has(parent),
				"selection %+v let task %d (milestone %d) through", sel, id, parent)
		}
	}
}

func TestReconcileProposal_ScenarioA_SelectedWorkstreamMilestonesPass(t *testing.T) {
	plan := domain.Plan{Workstreams: []domain.Workstream{{ID: 1, Name: "Legal"}}}
	sc := Resolve(plan, Selection{Workstreams: []int{1}})

	out, rep := ReconcileProposal(sc, domain.Proposal{
		Milestones: []domain.MilestoneUpdate{
			msUpdate(1, 1, "Due diligence"),
			msUpdate(2, 1, "Signing"),
		},
	}, domain.StepMilestones)

	assert.Len(t, out.Milestones, 2)
	assert.Nil(t, out.Workstreams)
	assert.Nil(t, out.Tasks)
	assert.Equal(t, 2, rep.Milestones.New)
}

func TestReconcileProposal_ScenarioB_UnselectedWorkstreamDropped(t *testing.T) {
	plan := domain.Plan{Workstreams: []domain.Workstream{{ID: 1, Name: "Legal"}}}
	sc := Resolve(plan, Selection{Workstreams: []int{1}})

	out, rep := ReconcileProposal(sc, domain.Proposal{
		Milestones: []domain.MilestoneUpdate{
			msUpdate(1, 1, "Due diligence"),
			msUpdate(2, 1, "Signing"),
			msUpdate(3, 2, "Elsewhere"),
		},
	}, domain.StepMilestones)

	require.Len(t, out.Milestones, 2)
	for _, ms := range out.Milestones {
		assert.Equal(t, 1, *ms.WorkstreamID)
	}
	assert.Equal(t, 1, rep.Milestones.Dropped)
	assert.Equal(t, 1, rep.Dropped())
}

func TestReconcileProposal_MilestoneStepDiscardsTasks(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{})

	out, rep := ReconcileProposal(sc, domain.Proposal{
		Tasks: []domain.TaskUpdate{taskUpdate(100, 10, "edited")},
	}, domain.StepMilestones)

	assert.Nil(t, out.Tasks)
	assert.True(t, rep.TasksSuppressed)
}

func TestReconcileProposal_TaskStepKeepsTasks(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Milestones: []int{10}})

	out, rep := ReconcileProposal(sc, domain.Proposal{
		Tasks: []domain.TaskUpdate{
			taskUpdate(100, 10, "edited"),
			taskUpdate(200, 20, "locked"),
		},
	}, domain.StepTasks)

	require.Len(t, out.Tasks, 1)
	assert.Equal(t, 100, *out.Tasks[0].ID)
	assert.False(t, rep.TasksSuppressed)
}

func TestReconcileProposal_WorkstreamsHaveNoParentRule(t *testing.T) {
	sc := Resolve(samplePlan(), Selection{Workstreams: []int{1}})

	out, _ := ReconcileProposal(sc, domain.Proposal{
		Workstreams: []domain.WorkstreamUpdate{
			wsUpdate(1, "Legal & Compliance"),
			wsUpdate(2, "IT renamed"),
			wsUpdate(3, "Brand new"),
		},
	}, domain.StepWorkstreams)

	require.Len(t, out.Workstreams, 1)
	assert.Equal(t, "Legal & Compliance", *out.Workstreams[0].Name)
}
