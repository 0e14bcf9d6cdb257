package sample

// ValidatedSample is an ordered sequence of signed integers, length >= 1.
// Insertion order from the raw input is preserved; duplicates are expected
// and meaningful. The sequence is immutable once constructed: the
// constructor and the accessors copy, so no caller can alias the backing
// slice.
type ValidatedSample struct {
	values []int64
}

// New constructs a ValidatedSample from already-validated integers.
// An empty slice is rejected; the normal construction path is Parse.
func New(values []int64) (ValidatedSample, error) {
	if len(values) == 0 {
		return ValidatedSample{}, ErrNoValidTokens
	}
	copied := make([]int64, len(values))
	copy(copied, values)
	return ValidatedSample{values: copied}, nil
}

// Len returns the sample size n.
func (s ValidatedSample) Len() int {
	return len(s.values)
}

// Values returns a copy of the sample in original input order.
func (s ValidatedSample) Values() []int64 {
	out := make([]int64, len(s.values))
	copy(out, s.values)
	return out
}
