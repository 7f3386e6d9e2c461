package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one node in a tree display.
type TreeItem struct {
	Label  string // positional id such as "1.2"; dimmed
	Title  string
	Level  int
	IsLast bool // last child of its parent
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items as an indented tree using box-drawing connectors.
// Items must be in depth-first order. Detail badges are aligned after the
// widest line.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type line struct {
		content string
		badge   string
	}

	lines := make([]line, len(items))
	lastAt := map[int]bool{}
	maxWidth := 0

	for idx, item := range items {
		var prefix strings.Builder
		for lvl := 1; lvl < item.Level; lvl++ {
			if lastAt[lvl] {
				prefix.WriteString(treeBlank)
			} else {
				prefix.WriteString(treePipe)
			}
		}
		if item.Level > 0 {
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		lastAt[item.Level] = item.IsLast

		title := item.Title
		if item.Label != "" {
			title = Dim(item.Label) + " " + title
		}
		content := title
		if prefix.Len() > 0 {
			content = StyleDim.Render(prefix.String()) + title
		}
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		maxWidth = max(maxWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.content)
		if l.badge != "" {
			b.WriteString(strings.Repeat(" ", maxWidth-lipgloss.Width(l.content)+colGap))
			b.WriteString(l.badge)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MarkLast sets IsLast on every item that has no later sibling.
func MarkLast(items []TreeItem) {
	for i := range items {
		items[i].IsLast = true
		for j := i + 1; j < len(items); j++ {
			if items[j].Level < items[i].Level {
				break
			}
			if items[j].Level == items[i].Level {
				items[i].IsLast = false
				break
			}
		}
	}
}
