// Package export renders a plan as a hierarchical spreadsheet.
package export
