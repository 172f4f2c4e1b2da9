package ports

import (
	"gonum.org/v1/gonum/mat"

	"sobolkit/domain/saltelli"
)

// ResamplingStrategy recomputes Sobol estimates on bootstrap-resampled
// evaluation matrices. indices holds one row per bootstrap trial, each
// row naming the n_mc sample rows (with replacement) to draw.
//
// Implementations differ only in peak transient memory; given the same
// decomposition and index matrix they must produce bit-identical
// replicate matrices.
type ResamplingStrategy interface {
	// Name identifies the strategy for logging.
	Name() string

	// Replicates returns the first- and total-order replicate estimates for
	// one parameter as n_bootstrap x width matrices.
	Replicates(dec *saltelli.Decomposition, param int, indices [][]int) (first, total *mat.Dense)
}
