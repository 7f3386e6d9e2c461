package timeline

import (
	"regexp"
	"strings"
)

// Keywords are matched as case-insensitive substrings, so "early" also
// matches inside "nearly". The false positives only add context for the
// generator.
var Keywords = []string{
	"today", "tomorrow", "next",
	"start", "begin", "end", "finish", "close",
	"deadline", "due", "mid", "late", "early",
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
	"q1", "q2", "q3", "q4",
}

const explicitDatesPrefix = "Explicit dates mentioned: "

var (
	sentenceBreak = regexp.MustCompile(`[.!?]\s+`)
	explicitDate  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?\b`)
)

// ExtractHints returns the sentences of text that carry a temporal keyword,
// followed by a synthetic sentence listing any date-shaped tokens, joined
// with single spaces. It returns "" when nothing matched.
func ExtractHints(text string) string {
	if text == "" {
		return ""
	}

	var hints []string
	for _, sentence := range splitSentences(text) {
		if hasKeyword(sentence) {
			hints = append(hints, strings.TrimSpace(sentence))
		}
	}

	if dates := ExplicitDates(text); len(dates) > 0 {
		hints = append(hints, explicitDatesPrefix+strings.Join(dates, ", "))
	}

	return strings.TrimSpace(strings.Join(hints, " "))
}

// ExplicitDates returns every date-shaped token in text, in order:
// d/m, d-m, d/m/yy, d/m/yyyy and so on.
func ExplicitDates(text string) []string {
	return explicitDate.FindAllString(text, -1)
}

// splitSentences splits after sentence-ending punctuation that is followed
// by whitespace. The punctuation stays with its sentence.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceBreak.FindAllStringIndex(text, -1) {
		out = append(out, text[start:loc[0]+1])
		start = loc[1]
	}
	return append(out, text[start:])
}

func hasKeyword(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
