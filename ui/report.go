package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"descstats/app"
	"descstats/domain/core"
	apperrors "descstats/internal/errors"
)

func (s *Server) handleReport(c *gin.Context) {
	result, ok := s.cachedResult(core.AnalysisID(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":  apperrors.CodeNotFound,
			"error": "analysis not found",
		})
		return
	}

	md := buildReportMarkdown(result)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	page := markdown.ToHTML([]byte(md), p, renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// buildReportMarkdown assembles the full report: summary table, frequency
// table and conclusions, all read-only over the analysis output.
func buildReportMarkdown(result *app.AnalysisResult) string {
	var b strings.Builder
	s := result.Analysis.Summary

	title := "Descriptive statistics report"
	if result.Label != "" {
		title += ": " + result.Label
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Analysis `%s`, computed at %s.\n\n",
		result.ID, result.ComputedAt.Time().Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Statistic | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| n | %d |\n", s.N)
	fmt.Fprintf(&b, "| Sum | %d |\n", s.Sum)
	fmt.Fprintf(&b, "| Min | %d |\n", s.Min)
	fmt.Fprintf(&b, "| Max | %d |\n", s.Max)
	fmt.Fprintf(&b, "| Mean | %.4f |\n", s.Mean)
	fmt.Fprintf(&b, "| Median | %.4f |\n", s.Median)
	fmt.Fprintf(&b, "| Mode | %s (%s) |\n", modeCell(s.Mode.Modes), s.Mode.Kind)
	fmt.Fprintf(&b, "| Range | %d |\n", s.Range)
	fmt.Fprintf(&b, "| Variance | %.4f |\n", s.Variance)
	fmt.Fprintf(&b, "| Std. deviation | %.4f |\n\n", s.StdDev)

	b.WriteString("## Frequency table\n\n")
	b.WriteString("| Value | fa | fr | Fa | Fr | % |\n|---|---|---|---|---|---|\n")
	for _, row := range result.Analysis.FrequencyTable {
		fmt.Fprintf(&b, "| %d | %d | %.4f | %d | %.4f | %.2f |\n",
			row.Value, row.AbsoluteFreq, row.RelativeFreq,
			row.CumulativeAbsolute, row.CumulativeRelative, row.Percentage)
	}
	b.WriteString("\n")

	b.WriteString(result.Conclusions.Markdown)
	return b.String()
}

func modeCell(modes []int64) string {
	if len(modes) == 0 {
		return "none"
	}
	parts := make([]string, len(modes))
	for i, v := range modes {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
