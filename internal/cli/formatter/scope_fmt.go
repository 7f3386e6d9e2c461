package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scope"
	"github.com/gosuri/uitable"
)

// FormatScope renders, per item, whether a reconciliation pass with sc may
// edit it.
func FormatScope(plan domain.Plan, sc scope.Scope) string {
	table := uitable.New()
	table.MaxColWidth = 48
	table.Wrap = true
	table.AddRow("LEVEL", "ID", "NAME", "PARENT", "EDITABLE")

	wsEditable := func(id int) bool {
		return sc.Workstreams.Empty() || sc.Workstreams.Has(id)
	}
	for _, ws := range plan.Workstreams {
		table.AddRow("workstream", ws.ID, ws.Name, "-", editableCell(wsEditable(ws.ID)))
	}

	msEditable := sc.EditableMilestones(plan.Milestones)
	for _, ms := range plan.Milestones {
		ok := !sc.MilestonesRestricted() || msEditable.Has(ms.ID)
		table.AddRow("milestone", ms.ID, ms.Name, ms.WorkstreamID, editableCell(ok))
	}

	taskEditable := sc.EditableTasks(plan.Tasks)
	for _, t := range plan.Tasks {
		ok := !sc.TasksRestricted() || taskEditable.Has(t.ID)
		table.AddRow("task", t.ID, t.Name, t.MilestoneID, editableCell(ok))
	}

	var b strings.Builder
	b.WriteString(Header("Scope"))
	b.WriteString("\n")
	if sc.Unrestricted() {
		b.WriteString(Dim("No selection: every item is editable.") + "\n")
	}
	fmt.Fprintln(&b, table)
	return b.String()
}

func editableCell(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

// FormatHints renders the timeline context a chat round would send.
func FormatHints(hints, window, today string) string {
	var b strings.Builder
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	if hints == "" {
		hints = "None provided."
	}
	rows := [][]string{
		{"Hints", hints},
		{"Window", window},
		{"Today", today},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-8s%s\n", r[0], r[1])
	}
	return b.String()
}
