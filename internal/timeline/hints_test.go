package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHints(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "no temporal cues",
			text: "The team is small.",
			want: "",
		},
		{
			name: "keyword sentence with explicit date",
			text: "We start today and must finish by 3/15.",
			want: "We start today and must finish by 3/15. Explicit dates mentioned: 3/15",
		},
		{
			name: "keeps only matching sentences",
			text: "Phase one starts soon.  The team is small.\nDeadline is Friday?",
			want: "Phase one starts soon. Deadline is Friday?",
		},
		{
			name: "substring match inside longer word",
			text: "We are nearly there.",
			want: "We are nearly there.",
		},
		{
			name: "case insensitive month and quarter tokens",
			text: "Target is JAN. Then Q3 planning.",
			want: "Target is JAN. Then Q3 planning.",
		},
		{
			name: "dates only",
			text: "Kick off 1/2/2025 and wrap 12-31.",
			want: "Explicit dates mentioned: 1/2/2025, 12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHints(tt.text))
		})
	}
}

func TestExplicitDates(t *testing.T) {
	assert.Equal(t, []string{"3/15", "04-01-24", "7/4/2026"}, ExplicitDates("3/15, 04-01-24 or 7/4/2026"))
	assert.Empty(t, ExplicitDates("version 2.0 ships in 2026"))
}

func TestSplitSentences_KeepsPunctuation(t *testing.T) {
	got := splitSentences("One. Two!  Three? Four")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Four"}, got)
}
