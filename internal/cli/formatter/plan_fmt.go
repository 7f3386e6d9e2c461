package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/export"
)

// FormatPlan renders the plan as a workstream → milestone → task tree using
// the same positional ids as the spreadsheet export.
func FormatPlan(plan domain.Plan) string {
	rows := export.Rows(plan)
	if len(rows) == 0 {
		return Header("Plan") + "\n" + Dim("(empty plan)") + "\n"
	}

	items := make([]TreeItem, len(rows))
	for i, r := range rows {
		items[i] = TreeItem{
			Label:  r.ID,
			Title:  r.Title,
			Level:  int(r.Kind),
			Detail: rowDetail(r),
		}
	}
	MarkLast(items)

	return Header("Plan") + "\n" + RenderTree(items)
}

func rowDetail(r export.Row) string {
	var parts []string
	if r.Owner != "" {
		parts = append(parts, r.Owner)
	}
	if span := DateSpan(r.StartDate, r.EndDate); span != "" {
		parts = append(parts, span)
	}
	return strings.Join(parts, " · ")
}

// FormatMilestones renders suggested or updated milestones as a table.
func FormatMilestones(items []domain.Milestone) string {
	rows := make([][]string, len(items))
	for i, ms := range items {
		rows[i] = []string{
			fmt.Sprint(ms.ID),
			fmt.Sprint(ms.WorkstreamID),
			ms.Name,
			OrDash(domain.StrOrEmpty(ms.StartDate)),
			OrDash(domain.StrOrEmpty(ms.EndDate)),
		}
	}
	return RenderTable([]string{"ID", "WORKSTREAM", "NAME", "START", "END"}, rows)
}

// FormatTasks renders suggested or updated tasks as a table.
func FormatTasks(items []domain.Task) string {
	rows := make([][]string, len(items))
	for i, t := range items {
		rows[i] = []string{
			fmt.Sprint(t.ID),
			fmt.Sprint(t.MilestoneID),
			t.Name,
			OrDash(domain.StrOrEmpty(t.Owner)),
		}
	}
	return RenderTable([]string{"ID", "MILESTONE", "NAME", "OWNER"}, rows)
}
