package descriptive

import (
	"fmt"
	"math"
	"strings"
)

// Conclusions is the narrative companion to an Analysis. It is derived only
// from the summary and the frequency table, never from raw input, and is
// rendered downstream (markdown to HTML, terminal, export).
type Conclusions struct {
	Lines    []string `json:"lines"`
	Markdown string   `json:"markdown"`
}

// Dispersion thresholds on the coefficient of variation
const (
	lowDispersionCV      = 0.15
	moderateDispersionCV = 0.30
)

// BuildConclusions generates the human-readable reading of an analysis
func BuildConclusions(a Analysis) Conclusions {
	s := a.Summary
	lines := []string{
		fmt.Sprintf("The dataset contains %d observations between %d and %d (range %d).",
			s.N, s.Min, s.Max, s.Range),
		centralTendencyLine(s),
		modeLine(s.Mode),
		dispersionLine(s),
	}
	if top := dominantValueLine(a.FrequencyTable); top != "" {
		lines = append(lines, top)
	}

	var md strings.Builder
	md.WriteString("## Conclusions\n\n")
	for _, line := range lines {
		md.WriteString("- ")
		md.WriteString(line)
		md.WriteString("\n")
	}

	return Conclusions{Lines: lines, Markdown: md.String()}
}

func centralTendencyLine(s StatisticsSummary) string {
	base := fmt.Sprintf("The mean is %.2f and the median is %.2f", s.Mean, s.Median)
	diff := s.Mean - s.Median
	switch {
	case math.Abs(diff) < 1e-9:
		return base + "; the distribution is balanced around its center."
	case diff > 0:
		return base + "; the mean sits above the median, suggesting a pull toward higher values."
	default:
		return base + "; the mean sits below the median, suggesting a pull toward lower values."
	}
}

func modeLine(m ModeDescriptor) string {
	switch m.Kind {
	case ModeNone:
		return "No value repeats, so the sample has no mode."
	case ModeUnimodal:
		return fmt.Sprintf("The sample is unimodal: %d is the most frequent value, appearing %d times.",
			m.Modes[0], m.Frequency)
	case ModeBimodal:
		return fmt.Sprintf("The sample is bimodal: %d and %d both appear %d times.",
			m.Modes[0], m.Modes[1], m.Frequency)
	default:
		parts := make([]string, len(m.Modes))
		for i, v := range m.Modes {
			parts[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("The sample is multimodal: %s each appear %d times.",
			strings.Join(parts, ", "), m.Frequency)
	}
}

func dispersionLine(s StatisticsSummary) string {
	base := fmt.Sprintf("The standard deviation is %.2f (variance %.2f)", s.StdDev, s.Variance)
	if s.Mean == 0 {
		return base + "."
	}
	cv := s.StdDev / math.Abs(s.Mean)
	switch {
	case cv < lowDispersionCV:
		return base + fmt.Sprintf("; relative dispersion is low (CV %.0f%%), the data cluster tightly around the mean.", cv*100)
	case cv < moderateDispersionCV:
		return base + fmt.Sprintf("; relative dispersion is moderate (CV %.0f%%).", cv*100)
	default:
		return base + fmt.Sprintf("; relative dispersion is high (CV %.0f%%), the data spread widely around the mean.", cv*100)
	}
}

// dominantValueLine highlights the single heaviest row when it carries a
// meaningful share of the sample.
func dominantValueLine(rows []FrequencyRow) string {
	if len(rows) < 2 {
		return ""
	}
	top := rows[0]
	for _, row := range rows[1:] {
		if row.AbsoluteFreq > top.AbsoluteFreq {
			top = row
		}
	}
	if top.Percentage < 20 {
		return ""
	}
	return fmt.Sprintf("The value %d alone accounts for %.2f%% of all observations.",
		top.Value, top.Percentage)
}
