// Package resample computes bootstrap confidence intervals for Sobol
// sensitivity estimates. Run indices are resampled with replacement,
// the estimators are recomputed on each resampled set, and pivotal
// intervals are derived from the replicate distributions.
package resample

import (
	"log"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"sobolkit/domain/core"
	"sobolkit/domain/qoi"
	"sobolkit/domain/saltelli"
)

// ParamEstimate carries one parameter's point estimates and confidence
// intervals, elementwise over the QoI.
type ParamEstimate struct {
	First   []float64
	Total   []float64
	FirstCI qoi.Interval
	TotalCI qoi.Interval
}

// DrawIndices draws the shared bootstrap index matrix: one row per
// trial, each row holding n_mc indices drawn uniformly with replacement
// from [0, n_mc). A single matrix serves all parameters and both index
// types so replicates stay internally consistent within a trial.
func DrawIndices(rng *rand.Rand, nMC, nBootstrap int) [][]int {
	indices := make([][]int, nBootstrap)
	for i := range indices {
		trial := make([]int, nMC)
		for r := range trial {
			trial[r] = rng.Intn(nMC)
		}
		indices[i] = trial
	}
	return indices
}

// Bootstrap computes first- and total-order Sobol indices with pivotal
// bootstrap confidence intervals for every parameter. samples is one
// QoI's Saltelli-ordered evaluation stream of length n_mc*(n_params+2).
// The returned slice is ordered by parameter index.
func Bootstrap(samples []qoi.Evaluation, nParams int, cfg Config, rng *rand.Rand) ([]ParamEstimate, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, core.NewConfigError("samples", "must not be empty")
	}

	dec, err := saltelli.Decompose(samples, nParams)
	if err != nil {
		return nil, err
	}

	indices := DrawIndices(rng, dec.NMC, cfg.NBootstrap)
	strategy := ChooseStrategy(dec.NMC, cfg.NBootstrap, dec.Width, cfg.MemThreshold)
	log.Printf("resample: %s bootstrapping (n_mc=%d, n_bootstrap=%d, n_elements=%d)",
		strategy.Name(), dec.NMC, cfg.NBootstrap, dec.Width)

	out := make([]ParamEstimate, nParams)
	for j := 0; j < nParams; j++ {
		first := saltelli.FirstOrder(dec.FM2, dec.FM1, dec.FNi[j])
		total := saltelli.TotalOrder(dec.FM2, dec.FM1, dec.FNi[j])

		repFirst, repTotal := strategy.Replicates(dec, j, indices)

		out[j] = ParamEstimate{
			First:   first,
			Total:   total,
			FirstCI: PivotalInterval(first, repFirst, cfg.Alpha),
			TotalCI: PivotalInterval(total, repTotal, cfg.Alpha),
		}
	}
	return out, nil
}

// PivotalInterval reflects the replicate percentiles around the point
// estimate, elementwise:
//
//	low  = 2*point - Percentile(replicates, 100*(1-alpha/2))
//	high = 2*point - Percentile(replicates, 100*alpha/2)
//
// which centers the interval on the point estimate under resampling
// skew, unlike a naive percentile interval.
func PivotalInterval(point []float64, replicates *mat.Dense, alpha float64) qoi.Interval {
	nB, width := replicates.Dims()
	low := make([]float64, width)
	high := make([]float64, width)
	col := make([]float64, nB)
	for j := 0; j < width; j++ {
		mat.Col(col, j, replicates)
		low[j] = 2*point[j] - Percentile(col, 100*(1-alpha/2))
		high[j] = 2*point[j] - Percentile(col, 100*(alpha/2))
	}
	return qoi.Interval{Low: low, High: high}
}
