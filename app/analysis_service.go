package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"descstats/domain/core"
	"descstats/domain/descriptive"
	"descstats/domain/sample"
	"descstats/internal"
	"descstats/internal/config"
)

// AnalysisRequest is one self-contained processing request: raw text in,
// full result or error out. The option pointers override the configured
// defaults when set.
type AnalysisRequest struct {
	Label              string `json:"label"`
	Data               string `json:"data"`
	AllowNegative      *bool  `json:"allow_negative,omitempty"`
	PopulationVariance *bool  `json:"population_variance,omitempty"`
}

// AnalysisResult is the atomic output of one request. Either the whole
// record exists, or the request failed and nothing is exposed.
type AnalysisResult struct {
	ID          core.AnalysisID         `json:"id"`
	Label       string                  `json:"label,omitempty"`
	ComputedAt  core.Timestamp          `json:"computed_at"`
	Sample      []int64                 `json:"sample"`
	Analysis    descriptive.Analysis    `json:"analysis"`
	Conclusions descriptive.Conclusions `json:"conclusions"`
}

// AnalysisService orchestrates parse -> summary -> frequency table ->
// conclusions. It holds no per-request state; concurrent requests need no
// synchronization.
type AnalysisService struct {
	defaults   config.StatsConfig
	logger     *internal.Logger
	batchLimit int
}

// NewAnalysisService creates the service with configured default policies
func NewAnalysisService(defaults config.StatsConfig, logger *internal.Logger) *AnalysisService {
	limit := defaults.BatchLimit
	if limit < 1 {
		limit = 1
	}
	return &AnalysisService{
		defaults:   defaults,
		logger:     logger,
		batchLimit: limit,
	}
}

// Analyze runs one full processing request
func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	parseOpts := sample.ParseOptions{AllowNegative: s.defaults.AllowNegative}
	if req.AllowNegative != nil {
		parseOpts.AllowNegative = *req.AllowNegative
	}

	validated, err := sample.Parse(req.Data, parseOpts)
	if err != nil {
		s.logger.Debug("analysis rejected for %q: %v", req.Label, err)
		return nil, err
	}

	analyzeOpts := descriptive.AnalyzeOptions{PopulationVariance: s.defaults.PopulationVariance}
	if req.PopulationVariance != nil {
		analyzeOpts.PopulationVariance = *req.PopulationVariance
	}

	analysis := descriptive.Analyze(validated, analyzeOpts)
	result := &AnalysisResult{
		ID:          core.NewAnalysisID(),
		Label:       req.Label,
		ComputedAt:  core.Now(),
		Sample:      validated.Values(),
		Analysis:    analysis,
		Conclusions: descriptive.BuildConclusions(analysis),
	}

	s.logger.Info("analysis %s completed: n=%d distinct=%d",
		result.ID, analysis.Summary.N, len(analysis.FrequencyTable))
	return result, nil
}

// AnalyzeBatch processes independent requests concurrently. Requests share
// no state; the first failure cancels the batch and nothing partial is
// returned.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, reqs []AnalysisRequest) ([]*AnalysisResult, error) {
	results := make([]*AnalysisResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.Analyze(ctx, req)
			if err != nil {
				return fmt.Errorf("dataset %q: %w", req.Label, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
