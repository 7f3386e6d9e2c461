// Package planfile reads and writes plans as JSON or YAML documents, chosen
// by file extension.
package planfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/workplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is a plan document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for extensions other than .json, .yaml, .yml.
var ErrUnknownFormat = errors.New("unknown plan file format")

// FormatOf picks the encoding from path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads the plan stored at path.
func Load(path string) (domain.Plan, error) {
	format, err := FormatOf(path)
	if err != nil {
		return domain.Plan{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	plan, err := Decode(data, format)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return plan, nil
}

// Decode parses data in the given format. Unknown fields are rejected so a
// misspelt key does not silently drop part of the plan.
func Decode(data []byte, format Format) (domain.Plan, error) {
	var plan domain.Plan
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&plan); err != nil {
			return domain.Plan{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
			return domain.Plan{}, err
		}
	default:
		return domain.Plan{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := Check(plan); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

// Check reports every duplicate id within a level, joined into one error.
// Dangling parents and malformed dates are allowed; reconciliation treats
// them as unresolvable.
func Check(plan domain.Plan) error {
	var errs []error
	errs = append(errs, duplicates("workstream", plan.Workstreams, func(w domain.Workstream) int { return w.ID })...)
	errs = append(errs, duplicates("milestone", plan.Milestones, func(m domain.Milestone) int { return m.ID })...)
	errs = append(errs, duplicates("task", plan.Tasks, func(t domain.Task) int { return t.ID })...)
	return errors.Join(errs...)
}

func duplicates[T any](level string, items []T, id func(T) int) []error {
	var errs []error
	seen := make(map[int]int, len(items))
	for _, it := range items {
		k := id(it)
		seen[k]++
		if seen[k] == 2 {
			errs = append(errs, fmt.Errorf("duplicate %s id %d", level, k))
		}
	}
	return errs
}

// Encode writes v (a plan, a list of entities or a chat response) in format.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes plan to path in the format implied by its extension.
func Save(path string, plan domain.Plan) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, plan, format); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}
