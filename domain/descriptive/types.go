package descriptive

// ModeKind classifies the mode cardinality of a sample
type ModeKind string

const (
	ModeNone       ModeKind = "none"       // every value occurs exactly once
	ModeUnimodal   ModeKind = "unimodal"   // a single most frequent value
	ModeBimodal    ModeKind = "bimodal"    // two values tie for most frequent
	ModeMultimodal ModeKind = "multimodal" // three or more values tie
)

// ModeDescriptor captures the mode of a sample.
// INVARIANTS:
// - Kind == ModeNone iff Frequency == 1; Modes is empty in that case
// - Kind == ModeUnimodal iff len(Modes) == 1 and Frequency > 1
// - Kind == ModeBimodal iff len(Modes) == 2
// - Kind == ModeMultimodal iff len(Modes) >= 3
// - Modes is sorted ascending
type ModeDescriptor struct {
	Modes     []int64  `json:"modes"`
	Frequency int      `json:"frequency"`
	Kind      ModeKind `json:"kind"`
}

// StatisticsSummary holds the descriptive statistics of one sample.
// All fields derive solely from the ValidatedSample and are recomputed in
// full on every invocation.
type StatisticsSummary struct {
	N        int            `json:"n"`
	Sum      int64          `json:"sum"`
	Min      int64          `json:"min"`
	Max      int64          `json:"max"`
	Mean     float64        `json:"mean"`
	Median   float64        `json:"median"`
	Mode     ModeDescriptor `json:"mode"`
	Range    int64          `json:"range"`
	Variance float64        `json:"variance"`
	StdDev   float64        `json:"std_dev"`
}

// FrequencyRow is one row of the frequency table, one per distinct value.
// Rows are ordered strictly ascending by Value; the last row's
// CumulativeAbsolute equals n and its CumulativeRelative equals 1 within
// rounding tolerance.
type FrequencyRow struct {
	Value              int64   `json:"value"`
	AbsoluteFreq       int     `json:"fa"`
	RelativeFreq       float64 `json:"fr"`
	CumulativeAbsolute int     `json:"cum_fa"`
	CumulativeRelative float64 `json:"cum_fr"`
	Percentage         float64 `json:"percentage"`
}

// Analysis bundles the two output structures consumers read
type Analysis struct {
	Summary        StatisticsSummary `json:"summary"`
	FrequencyTable []FrequencyRow    `json:"frequency_table"`
}

// AnalyzeOptions selects the variance divisor policy
type AnalyzeOptions struct {
	// PopulationVariance divides by n; false selects the unbiased sample
	// estimator dividing by n-1.
	PopulationVariance bool
}

// DefaultAnalyzeOptions returns population-mode analysis
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{PopulationVariance: true}
}
