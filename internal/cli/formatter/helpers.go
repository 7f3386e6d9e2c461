package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// AgoFrom returns a compact age such as "just now", "5m ago" or "3d ago".
func AgoFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

// DateSpan renders a start/end pair, omitting whichever side is empty.
func DateSpan(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " → " + end
	case start != "":
		return "from " + start
	case end != "":
		return "until " + end
	default:
		return ""
	}
}

// OrDash returns s, or a dimmed dash when s is empty.
func OrDash(s string) string {
	if s == "" {
		return Dim("-")
	}
	return s
}
