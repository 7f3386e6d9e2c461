package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw model output.
// Fenced blocks are preferred over surrounding prose. Comments and
// leading-decimal numbers such as ".5" are repaired before decoding.
// If validator is non-nil, the extracted value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	obj, ok := scanObject(fencedBody(raw))
	if !ok {
		obj, ok = scanObject(raw)
	}
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(obj), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// fencedBody returns the contents of the first ``` fenced block, or "".
func fencedBody(s string) string {
	open := strings.Index(s, "```")
	if open == -1 {
		return ""
	}
	rest := s[open+3:]
	// Skip the info string ("json") up to the end of the fence line.
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[nl+1:]
	} else {
		return ""
	}
	if end := strings.Index(rest, "```"); end != -1 {
		return rest[:end]
	}
	return rest
}

// scanObject copies the first balanced {...} block out of s in one pass,
// dropping // and /* */ comments and writing ".5" as "0.5" outside strings.
func scanObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(s) - start)

	var (
		depth    int
		inString bool
		escaped  bool
		prev     byte // last significant byte written outside strings
	)

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				prev = c
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				return "", false
			}
			i += end + 3
			continue
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prev):
			b.WriteByte('0')
		case c == '{':
			depth++
		case c == '}':
			depth--
		}

		b.WriteByte(c)
		if !isSpace(c) {
			prev = c
		}
		if depth == 0 {
			return b.String(), true
		}
	}

	return "", false
}

// startsNumber reports whether a value may begin after prev.
func startsNumber(prev byte) bool {
	switch prev {
	case ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
