package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
)

const dateLayout = "2006-01-02"

// isoLayouts are tried in order when reading milestone dates.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	dateLayout,
}

// Window is the earliest-to-latest span of the dates already on a plan.
type Window struct {
	Earliest time.Time
	Latest   time.Time
	Defined  bool
}

// SummarizeWindow scans every milestone start and end date. Strings that do
// not parse as ISO dates are skipped.
func SummarizeWindow(milestones []domain.Milestone) Window {
	var w Window
	for _, ms := range milestones {
		for _, raw := range []*string{ms.StartDate, ms.EndDate} {
			t, ok := ParseISO(domain.StrOrEmpty(raw))
			if !ok {
				continue
			}
			if !w.Defined || t.Before(w.Earliest) {
				w.Earliest = t
			}
			if !w.Defined || t.After(w.Latest) {
				w.Latest = t
			}
			w.Defined = true
		}
	}
	return w
}

// String renders the one-line window summary given to the generator.
func (w Window) String() string {
	if !w.Defined {
		return "No milestone dates currently defined."
	}
	return fmt.Sprintf("Current milestone timeline spans from %s to %s.",
		w.Earliest.Format(dateLayout), w.Latest.Format(dateLayout))
}

// ParseISO parses s as an ISO-8601 date or date-time.
func ParseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Today renders now as the explicit "today" reference, e.g.
// "March 04, 2025 (2025-03-04)".
func Today(now time.Time) string {
	return fmt.Sprintf("%s (%s)", now.Format("January 02, 2006"), now.Format(dateLayout))
}
