// Package qoi holds the sample-table data model shared by the Saltelli
// analysis pipeline: evaluation vectors keyed by quantity of interest,
// plus the moment and confidence-interval value types carried in results.
package qoi

import (
	"fmt"
	"sort"

	"sobolkit/domain/core"
)

// Evaluation is one simulation run's value for a single quantity of
// interest. Scalar QoIs have width 1; vector QoIs (e.g. a time series)
// have a fixed width shared by every run.
type Evaluation []float64

// Scalar wraps a single value as a width-1 evaluation.
func Scalar(v float64) Evaluation {
	return Evaluation{v}
}

// SampleTable maps a QoI name to its evaluations ordered by ascending
// run index. For a Saltelli design the sequence length per QoI is
// n_mc * (n_params + 2).
type SampleTable map[string][]Evaluation

// IsEmpty reports whether the table holds no evaluations at all.
func (t SampleTable) IsEmpty() bool {
	for _, evals := range t {
		if len(evals) > 0 {
			return false
		}
	}
	return true
}

// QoIs returns the table's QoI names in sorted order.
func (t SampleTable) QoIs() []string {
	names := make([]string, 0, len(t))
	for k := range t {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Width returns the common evaluation width for the given sequence.
// Every evaluation must share the same width.
func Width(evals []Evaluation) (int, error) {
	if len(evals) == 0 {
		return 0, core.ErrEmptySequence
	}
	w := len(evals[0])
	if w == 0 {
		return 0, core.NewShapeError("zero-width evaluation")
	}
	for i, e := range evals {
		if len(e) != w {
			return 0, fmt.Errorf("%w: run %d has width %d, expected %d",
				core.ErrUnevenWidths, i+1, len(e), w)
		}
	}
	return w, nil
}

// MergeTables concatenates per-QoI evaluation lists across tables in
// input order. All tables must carry the same QoI set, and widths must
// agree across tables. The result is equivalent to a single larger
// sample set; whether that set is Saltelli-consistent is the caller's
// responsibility.
func MergeTables(tables []SampleTable) (SampleTable, error) {
	if len(tables) == 0 {
		return nil, core.ErrEmptyInput
	}
	merged := SampleTable{}
	for _, k := range tables[0].QoIs() {
		for i, t := range tables {
			evals, ok := t[k]
			if !ok {
				return nil, fmt.Errorf("%w: %q absent from table %d",
					core.ErrMissingQoIValue, k, i)
			}
			merged[k] = append(merged[k], evals...)
		}
		if _, err := Width(merged[k]); err != nil {
			return nil, fmt.Errorf("merging %q: %w", k, err)
		}
	}
	return merged, nil
}

// Moments are elementwise population moments over all evaluations of a
// QoI: one entry per output element.
type Moments struct {
	Mean []float64 `json:"mean"`
	Var  []float64 `json:"var"`
	Std  []float64 `json:"std"`
}

// Percentiles are elementwise empirical percentiles of a QoI's
// evaluation distribution.
type Percentiles struct {
	P10 []float64 `json:"p10"`
	P90 []float64 `json:"p90"`
}

// Interval is an elementwise confidence interval.
type Interval struct {
	Low  []float64 `json:"low"`
	High []float64 `json:"high"`
}
