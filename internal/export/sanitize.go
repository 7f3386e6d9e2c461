package export

import (
	"html"
	"regexp"
	"strings"
)

var htmlTag = regexp.MustCompile(`<[^>]+>`)

// Sanitize turns rich-text editor output into plain cell text: entities are
// decoded, tags removed, non-breaking spaces normalised and the result
// trimmed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(s)
	text = htmlTag.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.TrimSpace(text)
}

func sanitizePtr(s *string) string {
	if s == nil {
		return ""
	}
	return Sanitize(*s)
}
