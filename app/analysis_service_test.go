package app

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"descstats/domain/descriptive"
	"descstats/domain/sample"
	"descstats/internal"
	"descstats/internal/config"
)

func newTestService() *AnalysisService {
	defaults := config.StatsConfig{
		AllowNegative:      true,
		PopulationVariance: true,
		BatchLimit:         3,
	}
	return NewAnalysisService(defaults, internal.NewLogger(internal.LogLevelError))
}

func TestAnalyze_FullRequest(t *testing.T) {
	service := newTestService()

	result, err := service.Analyze(context.Background(), AnalysisRequest{
		Label: "reference",
		Data:  "13,9,14,11,8,11,10,8,4,11",
	})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if result.ID.String() == "" {
		t.Error("result must carry an analysis ID")
	}
	if result.ComputedAt.IsZero() {
		t.Error("result must carry a timestamp")
	}
	if want := []int64{13, 9, 14, 11, 8, 11, 10, 8, 4, 11}; !reflect.DeepEqual(result.Sample, want) {
		t.Errorf("sample order not preserved: %v", result.Sample)
	}
	if result.Analysis.Summary.N != 10 {
		t.Errorf("n = %d, want 10", result.Analysis.Summary.N)
	}
	if len(result.Conclusions.Lines) == 0 {
		t.Error("result must carry conclusions")
	}
}

func TestAnalyze_OptionOverrides(t *testing.T) {
	service := newTestService()
	samplePolicy := false

	result, err := service.Analyze(context.Background(), AnalysisRequest{
		Data:               "13,9,14,11,8,11,10,8,4,11",
		PopulationVariance: &samplePolicy,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Analysis.Summary.Variance; got < 8.09 || got > 8.11 {
		t.Errorf("variance = %v, want 8.1 with n-1 divisor", got)
	}

	noNegatives := false
	result, err = service.Analyze(context.Background(), AnalysisRequest{
		Data:          "-5, 3, -2, 7",
		AllowNegative: &noNegatives,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result.Sample, []int64{3, 7}) {
		t.Errorf("sample = %v, want negatives filtered", result.Sample)
	}
}

func TestAnalyze_NoPartialResultOnError(t *testing.T) {
	service := newTestService()

	result, err := service.Analyze(context.Background(), AnalysisRequest{Data: "3, a, 5"})
	if result != nil {
		t.Error("no partial result may be returned on validation failure")
	}
	if !errors.Is(err, sample.ErrInvalidTokens) {
		t.Errorf("error = %v, want invalid tokens", err)
	}
}

func TestAnalyzeBatch_IndependentRequests(t *testing.T) {
	service := newTestService()

	reqs := []AnalysisRequest{
		{Label: "a", Data: "1,2,3"},
		{Label: "b", Data: "5;5;5"},
		{Label: "c", Data: "13 9 14 11 8 11 10 8 4 11"},
		{Label: "d", Data: "-4, -4, 0"},
	}
	results, err := service.AnalyzeBatch(context.Background(), reqs)
	if err != nil {
		t.Fatalf("AnalyzeBatch returned error: %v", err)
	}
	if len(results) != len(reqs) {
		t.Fatalf("got %d results, want %d", len(results), len(reqs))
	}

	// Results align with request order regardless of scheduling.
	for i, req := range reqs {
		if results[i].Label != req.Label {
			t.Errorf("results[%d].Label = %q, want %q", i, results[i].Label, req.Label)
		}
	}
	if results[1].Analysis.Summary.Mode.Kind != descriptive.ModeUnimodal {
		t.Errorf("dataset b should be unimodal")
	}
	if results[2].Analysis.Summary.N != 10 {
		t.Errorf("dataset c n = %d, want 10", results[2].Analysis.Summary.N)
	}
}

func TestAnalyzeBatch_FailureNamesTheDataset(t *testing.T) {
	service := newTestService()

	_, err := service.AnalyzeBatch(context.Background(), []AnalysisRequest{
		{Label: "good", Data: "1,2"},
		{Label: "bad", Data: "nope"},
	})
	if err == nil {
		t.Fatal("expected batch failure")
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error should name the failing dataset: %v", err)
	}
	if !errors.Is(err, sample.ErrInvalidTokens) {
		t.Errorf("error should preserve the taxonomy: %v", err)
	}
}
