package descriptive

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"descstats/domain/sample"
)

// Display rounding applied at row construction only; running sums stay
// exact until then.
const (
	relativePlaces   = 4
	percentagePlaces = 2
)

// ComputeSummary derives the full statistics record from a sample. It is a
// pure pass over the input; the sample's order is never mutated (the median
// sorts an internal copy). The montanaflynn calls can only fail on empty
// input, which ValidatedSample excludes by construction.
func ComputeSummary(s sample.ValidatedSample, populationMode bool) StatisticsSummary {
	values := s.Values()
	n := len(values)

	data := make([]float64, n)
	var sum int64
	min, max := values[0], values[0]
	for i, v := range values {
		data[i] = float64(v)
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)

	// n == 1 has zero variance regardless of mode; this also keeps the
	// sample estimator away from its n-1 divisor.
	variance := 0.0
	if n > 1 {
		if populationMode {
			variance, _ = stats.PopulationVariance(data)
		} else {
			variance, _ = stats.SampleVariance(data)
		}
	}

	return StatisticsSummary{
		N:        n,
		Sum:      sum,
		Min:      min,
		Max:      max,
		Mean:     mean,
		Median:   median,
		Mode:     computeMode(values),
		Range:    max - min,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}
}

// computeMode counts absolute frequency per distinct value with an explicit
// int-keyed mapping and classifies the result by mode cardinality.
func computeMode(values []int64) ModeDescriptor {
	counts := make(map[int64]int, len(values))
	maxFreq := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > maxFreq {
			maxFreq = counts[v]
		}
	}

	if maxFreq <= 1 {
		// No value repeats, so no value is more frequent than another.
		return ModeDescriptor{Modes: []int64{}, Frequency: 1, Kind: ModeNone}
	}

	modes := make([]int64, 0, 2)
	for v, c := range counts {
		if c == maxFreq {
			modes = append(modes, v)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })

	kind := ModeMultimodal
	switch len(modes) {
	case 1:
		kind = ModeUnimodal
	case 2:
		kind = ModeBimodal
	}

	return ModeDescriptor{Modes: modes, Frequency: maxFreq, Kind: kind}
}

// ComputeFrequencyTable groups the sample by distinct value, ascending, and
// accumulates the cumulative measures in that sorted order. The running
// sums use exact integer arithmetic; rounding happens only on the values
// placed into each row.
func ComputeFrequencyTable(s sample.ValidatedSample) []FrequencyRow {
	values := s.Values()
	n := len(values)

	counts := make(map[int64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	distinct := make([]int64, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	rows := make([]FrequencyRow, 0, len(distinct))
	cumulative := 0
	for _, v := range distinct {
		fa := counts[v]
		cumulative += fa
		fr := float64(fa) / float64(n)
		cumFr := float64(cumulative) / float64(n)

		roundedFr, _ := stats.Round(fr, relativePlaces)
		roundedCumFr, _ := stats.Round(cumFr, relativePlaces)
		percentage, _ := stats.Round(fr*100, percentagePlaces)

		rows = append(rows, FrequencyRow{
			Value:              v,
			AbsoluteFreq:       fa,
			RelativeFreq:       roundedFr,
			CumulativeAbsolute: cumulative,
			CumulativeRelative: roundedCumFr,
			Percentage:         percentage,
		})
	}

	return rows
}

// Analyze runs the full engine over a sample: summary plus frequency table,
// as one deterministic batch computation.
func Analyze(s sample.ValidatedSample, opts AnalyzeOptions) Analysis {
	return Analysis{
		Summary:        ComputeSummary(s, opts.PopulationVariance),
		FrequencyTable: ComputeFrequencyTable(s),
	}
}
