package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/domain"
)

// FormatChatResponse renders the assistant reply followed by the surviving
// updates per level. A nil level prints as "no change".
func FormatChatResponse(resp contract.ChatResponse) string {
	var b strings.Builder
	b.WriteString(RenderBox("Assistant", resp.Text))
	b.WriteString("\n\n")

	ws := make([][]string, len(resp.UpdatedWorkstreams))
	for i, u := range resp.UpdatedWorkstreams {
		ws[i] = []string{idCell(u.ID), "", optCell(u.Name), ""}
	}
	writeLevel(&b, "Workstreams", resp.UpdatedWorkstreams == nil, ws)

	ms := make([][]string, len(resp.UpdatedMilestones))
	for i, u := range resp.UpdatedMilestones {
		ms[i] = []string{idCell(u.ID), idCell(u.WorkstreamID), optCell(u.Name),
			DateSpan(domain.StrOrEmpty(u.StartDate), domain.StrOrEmpty(u.EndDate))}
	}
	writeLevel(&b, "Milestones", resp.UpdatedMilestones == nil, ms)

	ts := make([][]string, len(resp.UpdatedTasks))
	for i, u := range resp.UpdatedTasks {
		ts[i] = []string{idCell(u.ID), idCell(u.MilestoneID), optCell(u.Name),
			DateSpan(domain.StrOrEmpty(u.StartDate), domain.StrOrEmpty(u.EndDate))}
	}
	writeLevel(&b, "Tasks", resp.UpdatedTasks == nil, ts)

	return b.String()
}

func writeLevel(b *strings.Builder, label string, absent bool, rows [][]string) {
	switch {
	case absent:
		fmt.Fprintf(b, "%s %s\n", Bold(label+":"), Dim("no change"))
	case len(rows) == 0:
		fmt.Fprintf(b, "%s %s\n", Bold(label+":"), StyleYellow.Render("nothing in scope"))
	default:
		fmt.Fprintf(b, "%s %d update(s)\n", Bold(label+":"), len(rows))
		b.WriteString(RenderTable([]string{"ID", "PARENT", "NAME", "DATES"}, rows))
	}
}

func idCell(id *int) string {
	if id == nil {
		return StyleGreen.Render("new")
	}
	return fmt.Sprint(*id)
}

func optCell(s *string) string {
	return OrDash(domain.StrOrEmpty(s))
}
