package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"descstats/domain/descriptive"
)

const (
	summarySheet   = "Summary"
	frequencySheet = "Frequency"
)

// ExcelExporter writes the analysis report as an XLSX workbook with a
// Summary sheet and a Frequency sheet.
type ExcelExporter struct{}

// NewExcelExporter creates an XLSX exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExtension() string {
	return "xlsx"
}

// Export writes the workbook to w
func (e *ExcelExporter) Export(w io.Writer, analysis descriptive.Analysis) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(frequencySheet); err != nil {
		return fmt.Errorf("failed to create frequency sheet: %w", err)
	}

	s := analysis.Summary
	summaryRows := [][]interface{}{
		{"statistic", "value"},
		{"n", s.N},
		{"sum", s.Sum},
		{"min", s.Min},
		{"max", s.Max},
		{"mean", roundFloat(s.Mean)},
		{"median", roundFloat(s.Median)},
		{"mode", formatModes(s.Mode)},
		{"mode_kind", string(s.Mode.Kind)},
		{"range", s.Range},
		{"variance", roundFloat(s.Variance)},
		{"std_dev", roundFloat(s.StdDev)},
	}
	for i, row := range summaryRows {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	header := []interface{}{"value", "fa", "fr", "Fa", "Fr", "percentage"}
	if err := setRow(f, frequencySheet, 1, header); err != nil {
		return err
	}
	for i, row := range analysis.FrequencyTable {
		record := []interface{}{
			row.Value,
			row.AbsoluteFreq,
			row.RelativeFreq,
			row.CumulativeAbsolute,
			row.CumulativeRelative,
			row.Percentage,
		}
		if err := setRow(f, frequencySheet, i+2, record); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to address cell (%d,%d): %w", col+1, row, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
