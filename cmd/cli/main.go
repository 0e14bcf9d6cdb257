package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"descstats/adapters/export"
	"descstats/app"
	"descstats/domain/descriptive"
	"descstats/internal"
	"descstats/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "descstats",
		Short: "Descriptive statistics for discrete ungrouped datasets",
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var files []string
	var allowNegative bool
	var sampleVariance bool
	var asJSON bool
	var csvPath string
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "analyze [values...]",
		Short: "Parse a dataset and print its statistics and frequency table",
		Long: `Parse a discrete dataset and compute its descriptive statistics.

Values can be passed inline (comma, semicolon or space separated) or read
from files with --file; multiple files are analyzed concurrently.

Example: descstats analyze "13,9,14,11,8,11,10,8,4,11"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := buildRequests(args, files, allowNegative, sampleVariance)
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				return fmt.Errorf("no input: pass values inline or use --file")
			}

			defaults := config.StatsConfig{
				AllowNegative:      allowNegative,
				PopulationVariance: !sampleVariance,
				BatchLimit:         4,
			}
			service := app.NewAnalysisService(defaults, internal.NewLogger(internal.LogLevelError))

			results, err := service.AnalyzeBatch(context.Background(), reqs)
			if err != nil {
				return err
			}

			for _, result := range results {
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if err := enc.Encode(result); err != nil {
						return err
					}
					continue
				}
				printResult(cmd, result)
			}

			if len(results) == 1 {
				if err := writeExports(results[0], csvPath, xlsxPath); err != nil {
					return err
				}
			} else if csvPath != "" || xlsxPath != "" {
				return fmt.Errorf("--csv/--xlsx require a single dataset")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&files, "file", nil, "Dataset file to analyze (repeatable)")
	cmd.Flags().BoolVar(&allowNegative, "allow-negative", true, "Accept negative integers")
	cmd.Flags().BoolVar(&sampleVariance, "sample-variance", false, "Use the unbiased n-1 variance divisor")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the report as CSV to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the report as XLSX to this path")

	return cmd
}

func buildRequests(args, files []string, allowNegative, sampleVariance bool) ([]app.AnalysisRequest, error) {
	population := !sampleVariance
	var reqs []app.AnalysisRequest

	if len(args) > 0 {
		reqs = append(reqs, app.AnalysisRequest{
			Label:              "inline",
			Data:               strings.Join(args, " "),
			AllowNegative:      &allowNegative,
			PopulationVariance: &population,
		})
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		reqs = append(reqs, app.AnalysisRequest{
			Label:              filepath.Base(file),
			Data:               string(data),
			AllowNegative:      &allowNegative,
			PopulationVariance: &population,
		})
	}
	return reqs, nil
}

func printResult(cmd *cobra.Command, result *app.AnalysisResult) {
	out := cmd.OutOrStdout()
	s := result.Analysis.Summary

	fmt.Fprintf(out, "\nDataset %s (n=%d)\n", result.Label, s.N)
	fmt.Fprintf(out, "  sum=%d  min=%d  max=%d  range=%d\n", s.Sum, s.Min, s.Max, s.Range)
	fmt.Fprintf(out, "  mean=%.4f  median=%.4f  variance=%.4f  stddev=%.4f\n",
		s.Mean, s.Median, s.Variance, s.StdDev)
	fmt.Fprintf(out, "  mode: %s %v (frequency %d)\n\n", s.Mode.Kind, s.Mode.Modes, s.Mode.Frequency)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "value\tfa\tfr\tFa\tFr\t%")
	for _, row := range result.Analysis.FrequencyTable {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%d\t%.4f\t%.2f\n",
			row.Value, row.AbsoluteFreq, row.RelativeFreq,
			row.CumulativeAbsolute, row.CumulativeRelative, row.Percentage)
	}
	w.Flush()

	fmt.Fprintln(out)
	for _, line := range result.Conclusions.Lines {
		fmt.Fprintf(out, "  - %s\n", line)
	}
}

func writeExports(result *app.AnalysisResult, csvPath, xlsxPath string) error {
	if csvPath != "" {
		if err := writeFile(csvPath, result, export.NewCSVExporter().Export); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}
	if xlsxPath != "" {
		if err := writeFile(xlsxPath, result, export.NewExcelExporter().Export); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}
	return nil
}

func writeFile(path string, result *app.AnalysisResult, exportFn func(w io.Writer, a descriptive.Analysis) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return exportFn(f, result.Analysis)
}
