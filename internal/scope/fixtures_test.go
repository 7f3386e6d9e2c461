package scope

import "github.com/alexanderramin/workplan/internal/domain"

// samplePlan:
//
//	ws 1 Legal  -> ms 10 Contracts (tasks 100, 101), ms 11 Entities (task 110)
//	ws 2 IT     -> ms 20 Cutover (task 200)
//	ws 9 (missing) <- ms 30 Orphan
//	ms 99 (missing) <- task 300
func samplePlan() domain.Plan {
	return domain.Plan{
		Workstreams: []domain.Workstream{
			{ID: 1, Name: "Legal"},
			{ID: 2, Name: "IT"},
		},
		Milestones: []domain.Milestone{
			{ID: 10, WorkstreamID: 1, Name: "Contracts"},
			{ID: 11, WorkstreamID: 1, Name: "Entities"},
			{ID: 20, WorkstreamID: 2, Name: "Cutover"},
			{ID: 30, WorkstreamID: 9, Name: "Orphan"},
		},
		Tasks: []domain.Task{
			{ID: 100, MilestoneID: 10, Name: "Draft NDA"},
			{ID: 101, MilestoneID: 10, Name: "Sign NDA"},
			{ID: 110, MilestoneID: 11, Name: "Register entity"},
			{ID: 200, MilestoneID: 20, Name: "Freeze changes"},
			{ID: 300, MilestoneID: 99, Name: "Stray"},
		},
	}
}

func msUpdate(id, wsID int, name string) domain.MilestoneUpdate {
	return domain.MilestoneUpdate{ID: domain.IntPtr(id), WorkstreamID: domain.IntPtr(wsID), Name: domain.StrPtr(name)}
}

func taskUpdate(id, msID int, name string) domain.TaskUpdate {
	return domain.TaskUpdate{ID: domain.IntPtr(id), MilestoneID: domain.IntPtr(msID), Name: domain.StrPtr(name)}
}

func wsUpdate(id int, name string) domain.WorkstreamUpdate {
	return domain.WorkstreamUpdate{ID: domain.IntPtr(id), Name: domain.StrPtr(name)}
}
