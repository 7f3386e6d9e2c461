package scope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/workplan/internal/domain"
)

// Named is the id/name pair a describer lists.
type Named struct {
	ID   int
	Name string
}

// FormatSelection renders raw selected ids, or "ALL" when there are none.
func FormatSelection(ids []int) string {
	if len(ids) == 0 {
		return "ALL"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

// Describe partitions items into selected and locked lists for label,
// using the raw selected ids. It is explanation only; Reconcile enforces the
// locks independently.
func Describe(label string, items []Named, selected []int) string {
	return describeLevel(label, items, NewIDSet(selected...), len(selected) > 0)
}

func describeLevel(label string, items []Named, editable IDSet, restricted bool) string {
	if len(items) == 0 {
		return label + ": none defined."
	}

	if !restricted {
		return fmt.Sprintf("%s (all editable): %s", label, listing(items))
	}

	var picked, locked []Named
	for _, it := range items {
		if editable.Has(it.ID) {
			picked = append(picked, it)
		} else {
			locked = append(locked, it)
		}
	}

	return fmt.Sprintf("%s selected: %s\n%s locked (do NOT change): %s",
		label, listingOrNone(picked), label, listingOrNone(locked))
}

// Summary renders the selection block given to the generator: the raw
// selection per level, then each level partitioned by what the resolved
// scope lets a pass edit, then the current UI context.
func Summary(plan domain.Plan, sel Selection, step domain.ActiveStep) string {
	sc := Resolve(plan, sel)

	var b strings.Builder
	b.WriteString("Selection focus:\n")
	fmt.Fprintf(&b, "- Workstreams: %s\n", FormatSelection(sel.Workstreams))
	fmt.Fprintf(&b, "- Milestones: %s\n", FormatSelection(sel.Milestones))
	fmt.Fprintf(&b, "- Tasks: %s\n\n", FormatSelection(sel.Tasks))

	b.WriteString(describeLevel("Workstreams", WorkstreamNames(plan.Workstreams),
		sc.Workstreams, !sc.Workstreams.Empty()))
	b.WriteString("\n\n")
	b.WriteString(describeLevel("Milestones", MilestoneNames(plan.Milestones),
		sc.EditableMilestones(plan.Milestones), sc.MilestonesRestricted()))
	b.WriteString("\n\n")
	b.WriteString(describeLevel("Tasks", TaskNames(plan.Tasks),
		sc.EditableTasks(plan.Tasks), sc.TasksRestricted()))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Current UI context: %s\n", step.Label())
	b.WriteString("Only modify entities relevant to this context.")
	return b.String()
}

func WorkstreamNames(items []domain.Workstream) []Named {
	out := make([]Named, len(items))
	for i, it := range items {
		out[i] = Named{ID: it.ID, Name: it.Name}
	}
	return out
}

func MilestoneNames(items []domain.Milestone) []Named {
	out := make([]Named, len(items))
	for i, it := range items {
		out[i] = Named{ID: it.ID, Name: it.Name}
	}
	return out
}

func TaskNames(items []domain.Task) []Named {
	out := make([]Named, len(items))
	for i, it := range items {
		out[i] = Named{ID: it.ID, Name: it.Name}
	}
	return out
}

func listing(items []Named) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("(id=%d) %s", it.ID, it.Name)
	}
	return strings.Join(parts, ", ")
}

func listingOrNone(items []Named) string {
	if len(items) == 0 {
		return "none"
	}
	return listing(items)
}
