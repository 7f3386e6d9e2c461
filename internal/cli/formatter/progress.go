package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderKeptBar renders the share of proposed items that survived
// reconciliation, like "███░ 3/4". Nothing proposed renders as a dash.
func RenderKeptBar(kept, proposed, width int) string {
	if proposed <= 0 {
		return Dim("-")
	}
	if width < 2 {
		width = 2
	}
	kept = min(max(kept, 0), proposed)
	filled := kept * width / proposed
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case kept == 0:
		style = StyleRed
	case kept < proposed:
		style = StyleYellow
	}
	return fmt.Sprintf("%s %d/%d", style.Render(bar), kept, proposed)
}
