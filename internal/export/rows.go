package export

import (
	"strconv"

	"github.com/alexanderramin/workplan/internal/domain"
)

// Headers is the fixed first row of the sheet.
var Headers = []string{
	"ID",
	"Activity Title",
	"Activity Description",
	"Milestone",
	"Owner",
	"Start Date",
	"End Date",
}

// RowKind distinguishes the three plan levels in the flattened sheet.
type RowKind int

const (
	KindWorkstream RowKind = iota
	KindMilestone
	KindTask
)

// Row is one sheet line. IDs are positional ("1", "1.2", "1.2.3"), not the
// plan's own ids.
type Row struct {
	Kind        RowKind
	ID          string
	Title       string
	Description string
	Owner       string
	StartDate   string
	EndDate     string
}

// Cells returns the row's values in Headers order. The Milestone column is
// blank for workstreams, true for milestones and false for tasks.
func (r Row) Cells() []any {
	var flag any = ""
	switch r.Kind {
	case KindMilestone:
		flag = true
	case KindTask:
		flag = false
	}
	return []any{r.ID, r.Title, r.Description, flag, r.Owner, r.StartDate, r.EndDate}
}

// Rows flattens plan depth-first in input order. Milestones and tasks whose
// parent is missing from the plan are not exported.
func Rows(plan domain.Plan) []Row {
	msByWS := make(map[int][]domain.Milestone)
	for _, ms := range plan.Milestones {
		msByWS[ms.WorkstreamID] = append(msByWS[ms.WorkstreamID], ms)
	}
	tasksByMS := make(map[int][]domain.Task)
	for _, t := range plan.Tasks {
		tasksByMS[t.MilestoneID] = append(tasksByMS[t.MilestoneID], t)
	}

	var rows []Row
	for wi, ws := range plan.Workstreams {
		wsID := strconv.Itoa(wi + 1)
		rows = append(rows, Row{
			Kind:        KindWorkstream,
			ID:          wsID,
			Title:       Sanitize(ws.Name),
			Description: Sanitize(ws.Description),
		})

		for mi, ms := range msByWS[ws.ID] {
			msID := wsID + "." + strconv.Itoa(mi+1)
			rows = append(rows, Row{
				Kind:        KindMilestone,
				ID:          msID,
				Title:       Sanitize(ms.Name),
				Description: Sanitize(ms.Description),
				StartDate:   sanitizePtr(ms.StartDate),
				EndDate:     sanitizePtr(ms.EndDate),
			})

			for ti, t := range tasksByMS[ms.ID] {
				rows = append(rows, Row{
					Kind:        KindTask,
					ID:          msID + "." + strconv.Itoa(ti+1),
					Title:       Sanitize(t.Name),
					Description: Sanitize(t.Description),
					Owner:       sanitizePtr(t.Owner),
					StartDate:   sanitizePtr(t.StartDate),
					EndDate:     sanitizePtr(t.EndDate),
				})
			}
		}
	}
	return rows
}
