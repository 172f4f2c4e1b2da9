// Package table adapts raw run output into the normalized SampleTable
// consumed by the analysis pipeline. Two source shapes are supported:
// ordered tabular records (one row per run) and run-label maps keyed
// "Run_<n>". The shape is resolved here, once, at the boundary.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"sobolkit/domain/core"
	"sobolkit/domain/qoi"
)

// Options configures extraction for either source variant.
type Options struct {
	// OutputIndex, when set, restricts each vector-valued evaluation to the
	// single scalar at that position.
	OutputIndex *int
}

// OutputIndex builds Options selecting a single element of vector QoIs.
func OutputIndex(i int) Options {
	return Options{OutputIndex: &i}
}

func (o Options) project(e qoi.Evaluation) (qoi.Evaluation, error) {
	if o.OutputIndex == nil {
		return e, nil
	}
	i := *o.OutputIndex
	if i < 0 || i >= len(e) {
		return nil, core.NewOutputIndexError(i, len(e))
	}
	return qoi.Evaluation{e[i]}, nil
}

// Record is one tabular row: a run identifier plus one value per QoI
// column.
type Record struct {
	RunID  string
	Values map[string]qoi.Evaluation
}

// RecordSource extracts samples from ordered tabular rows. Rows are
// consumed in storage order, which must already be ascending run order.
type RecordSource struct {
	rows []Record
	opts Options
}

// NewRecordSource creates a tabular sample source.
func NewRecordSource(rows []Record, opts Options) *RecordSource {
	return &RecordSource{rows: rows, opts: opts}
}

// Samples implements ports.SampleSourcePort.
func (s *RecordSource) Samples(qoiCols []string) (qoi.SampleTable, error) {
	if len(s.rows) == 0 {
		return nil, core.ErrEmptyInput
	}
	out := qoi.SampleTable{}
	for _, k := range qoiCols {
		evals := make([]qoi.Evaluation, 0, len(s.rows))
		for _, row := range s.rows {
			val, ok := row.Values[k]
			if !ok {
				return nil, fmt.Errorf("%w: %q in run %s",
					core.ErrMissingQoIValue, k, row.RunID)
			}
			proj, err := s.opts.project(val)
			if err != nil {
				return nil, fmt.Errorf("run %s, QoI %q: %w", row.RunID, k, err)
			}
			evals = append(evals, proj)
		}
		out[k] = evals
	}
	return out, nil
}

// RunMap extracts samples from a map keyed by QoI name, then by a run
// label of the form "Run_<positive integer>". Runs are emitted in
// strictly ascending numeric order starting at 1, regardless of map
// iteration order; a missing index in 1..max is an input error.
type RunMap struct {
	data map[string]map[string]qoi.Evaluation
	opts Options
}

// NewRunMap creates a run-label-map sample source.
func NewRunMap(data map[string]map[string]qoi.Evaluation, opts Options) *RunMap {
	return &RunMap{data: data, opts: opts}
}

const runLabelPrefix = "Run_"

func parseRunLabel(label string) (int, error) {
	rest, ok := strings.CutPrefix(label, runLabelPrefix)
	if !ok {
		return 0, core.NewRunLabelError(label)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, core.NewRunLabelError(label)
	}
	return n, nil
}

// Samples implements ports.SampleSourcePort.
func (m *RunMap) Samples(qoiCols []string) (qoi.SampleTable, error) {
	if len(m.data) == 0 {
		return nil, core.ErrEmptyInput
	}
	out := qoi.SampleTable{}
	for _, k := range qoiCols {
		runs, ok := m.data[k]
		if !ok || len(runs) == 0 {
			return nil, fmt.Errorf("%w: %q", core.ErrMissingQoIValue, k)
		}

		byIndex := make(map[int]qoi.Evaluation, len(runs))
		maxRun := 0
		for label, val := range runs {
			n, err := parseRunLabel(label)
			if err != nil {
				return nil, fmt.Errorf("QoI %q: %w", k, err)
			}
			byIndex[n] = val
			if n > maxRun {
				maxRun = n
			}
		}
		if len(byIndex) != maxRun {
			return nil, fmt.Errorf("%w: QoI %q has %d runs but max index %d",
				core.ErrRunGap, k, len(byIndex), maxRun)
		}

		evals := make([]qoi.Evaluation, 0, maxRun)
		for n := 1; n <= maxRun; n++ {
			proj, err := m.opts.project(byIndex[n])
			if err != nil {
				return nil, fmt.Errorf("run %d, QoI %q: %w", n, k, err)
			}
			evals = append(evals, proj)
		}
		out[k] = evals
	}
	return out, nil
}
