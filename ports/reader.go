package ports

import (
	"sobolkit/domain/qoi"
)

// SampleSourcePort normalizes heterogeneous run output into a SampleTable.
// Implementations resolve their input shape (tabular records, run-label
// maps) once at this boundary; the analysis pipeline only ever sees the
// normalized table.
type SampleSourcePort interface {
	// Samples extracts the evaluations for the given QoI names, ordered by
	// ascending run index.
	Samples(qoiCols []string) (qoi.SampleTable, error)
}
