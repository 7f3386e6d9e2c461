package export

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the single worksheet in every export.
	SheetName = "Workplan"

	// ContentType is the MIME type of the generated file.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var columnWidths = map[string]float64{
	"A": 10, "B": 40, "C": 60, "D": 12, "E": 20, "F": 14, "G": 14,
}

// Filename returns "workplan_YYYYMMDD_HHMMSS.xlsx" for now.
func Filename(now time.Time) string {
	return "workplan_" + now.Format("20060102_150405") + ".xlsx"
}

// Write renders plan as an xlsx workbook to w.
func Write(w io.Writer, plan domain.Plan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, row := range Rows(plan) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := row.Cells()
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("writing row %s: %w", row.ID, err)
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
