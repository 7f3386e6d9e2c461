package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scope"
	"github.com/alexanderramin/workplan/internal/timeline"
)

// planChatRules is the fixed body of the plan-chat system prompt. It is
// prefixed with the "today" sentence at build time.
const planChatRules = `IMPORTANT RULES:
- If a selection list is provided for a level, you MUST only edit, delete, or create entries tied to those IDs. Leave every unselected item untouched.
- Treat items not in the selection as locked. If the user requests changes to them, respond with a clarifying question asking them to select the right items and make no changes.
- If a list is empty (meaning ALL), you may modify the entire set for that level. However, do not add or remove items unless the user explicitly asks for that change.
- When workstreams are selected and no milestone selection is provided, you may edit milestones that belong to those workstreams (and only those milestones).
- Default to editing the selected milestones/workstreams; add or delete milestones only when the user explicitly requests it.
- When removing a selected item, omit it from the returned list instead of describing the deletion.
- If no selection is provided but you cannot find the referenced item (by id or name), ask the user for clarification instead of pretending the change happened.
- Obey all timeline hints. Align start/end dates with the provided window (e.g., 'starts today' or 'ends in late January'). If you cannot meet the timeframe with available information, ask the user for clarification instead of inventing dates.
- Compare any new milestone dates with the existing milestone window summary. Keep new dates within (or immediately adjacent to) the current plan unless the user explicitly expands the schedule.
- Respect the current UI context reported below. For example, if the context is "Milestones", do not add or mention tasks.

Return ONLY a JSON object with this shape:
{
  "message": string,
  "updatedWorkstreams": null or [ { "id": int, "name": string, "description": string } ],
  "updatedMilestones": null or [
      { "id": int, "workstreamId": int, "name": string,
        "description": string, "startDate": string, "endDate": string }
  ],
  "updatedTasks": null or [
      { "id": int, "milestoneId": int, "name": string,
        "description": string, "startDate": string, "endDate": string }
  ]
}
If you do not want to change a level, set that field to null.
When creating tasks from milestones, use the milestone ids from the list below for the milestoneId field.
Dates should be in YYYY-MM-DD format.
`

// SystemPrompt returns the plan-chat system prompt anchored at now.
func SystemPrompt(now time.Time) string {
	var b strings.Builder
	b.WriteString("You are an expert M&A integration consultant. ")
	b.WriteString("You refine workstreams, milestones, and tasks.\n\n")
	fmt.Fprintf(&b, "Treat today's date as %s.\n\n", timeline.Today(now))
	b.WriteString(planChatRules)
	return b.String()
}

// UserPrompt renders the message, timeline context, selection summary and
// the full current plan.
func UserPrompt(in PlanChatInput) string {
	var b strings.Builder

	b.WriteString("User message:\n")
	b.WriteString(in.Message)
	b.WriteString("\n\n")

	hints := timeline.ExtractHints(in.Message)
	if hints == "" {
		hints = "None provided."
	}
	b.WriteString("Timeline hints:\n")
	b.WriteString(hints)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Today's date: %s\n", timeline.Today(in.Now))
	b.WriteString("Existing milestone window:\n")
	b.WriteString(timeline.SummarizeWindow(in.Plan.Milestones).String())
	b.WriteString("\n\n")

	b.WriteString(scope.Summary(in.Plan, in.Selection, in.Step))
	b.WriteString("\n")

	b.WriteString("Current workstreams:\n")
	b.WriteString(orNone(workstreamLines(in.Plan.Workstreams)))
	b.WriteString("\n\nCurrent milestones:\n")
	b.WriteString(orNone(milestoneLines(in.Plan.Milestones)))
	b.WriteString("\n\nCurrent tasks:\n")
	b.WriteString(orNone(taskLines(in.Plan.Tasks)))
	b.WriteString("\n")

	return b.String()
}

func workstreamLines(items []domain.Workstream) []string {
	lines := make([]string, len(items))
	for i, w := range items {
		lines[i] = fmt.Sprintf("- (id=%d) %s: %s", w.ID, w.Name, w.Description)
	}
	return lines
}

func milestoneLines(items []domain.Milestone) []string {
	lines := make([]string, len(items))
	for i, m := range items {
		lines[i] = fmt.Sprintf("- (id=%d, ws=%d) %s: %s", m.ID, m.WorkstreamID, m.Name, m.Description)
	}
	return lines
}

func taskLines(items []domain.Task) []string {
	lines := make([]string, len(items))
	for i, t := range items {
		lines[i] = fmt.Sprintf("- (id=%d, ms=%d) %s: %s", t.ID, t.MilestoneID, t.Name, t.Description)
	}
	return lines
}

func orNone(lines []string) string {
	if len(lines) == 0 {
		return "None"
	}
	return strings.Join(lines, "\n")
}
