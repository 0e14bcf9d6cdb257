package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"

	"descstats/domain/descriptive"
)

// Exports are a presentation boundary: summary floats are display-rounded
// here, matching the 4-decimal policy of the frequency columns.
const summaryPlaces = 4

// CSVExporter writes the analysis report as a two-block CSV: the summary
// statistics, a blank row, then the frequency table.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

func (e *CSVExporter) FileExtension() string {
	return "csv"
}

// Export writes the full report to w
func (e *CSVExporter) Export(w io.Writer, analysis descriptive.Analysis) error {
	cw := csv.NewWriter(w)
	s := analysis.Summary

	summaryRows := [][]string{
		{"statistic", "value"},
		{"n", strconv.Itoa(s.N)},
		{"sum", strconv.FormatInt(s.Sum, 10)},
		{"min", strconv.FormatInt(s.Min, 10)},
		{"max", strconv.FormatInt(s.Max, 10)},
		{"mean", formatFloat(s.Mean)},
		{"median", formatFloat(s.Median)},
		{"mode", formatModes(s.Mode)},
		{"mode_kind", string(s.Mode.Kind)},
		{"range", strconv.FormatInt(s.Range, 10)},
		{"variance", formatFloat(s.Variance)},
		{"std_dev", formatFloat(s.StdDev)},
	}
	for _, row := range summaryRows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return fmt.Errorf("failed to write separator row: %w", err)
	}

	if err := cw.Write([]string{"value", "fa", "fr", "Fa", "Fr", "percentage"}); err != nil {
		return fmt.Errorf("failed to write frequency header: %w", err)
	}
	for _, row := range analysis.FrequencyTable {
		record := []string{
			strconv.FormatInt(row.Value, 10),
			strconv.Itoa(row.AbsoluteFreq),
			formatFloat(row.RelativeFreq),
			strconv.Itoa(row.CumulativeAbsolute),
			formatFloat(row.CumulativeRelative),
			fmt.Sprintf("%.2f", row.Percentage),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write frequency row for value %d: %w", row.Value, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(roundFloat(v), 'f', -1, 64)
}

func roundFloat(v float64) float64 {
	rounded, _ := stats.Round(v, summaryPlaces)
	return rounded
}

func formatModes(m descriptive.ModeDescriptor) string {
	if m.Kind == descriptive.ModeNone {
		return ""
	}
	out := ""
	for i, v := range m.Modes {
		if i > 0 {
			out += " "
		}
		out += strconv.FormatInt(v, 10)
	}
	return out
}
