package resample

import (
	"gonum.org/v1/gonum/mat"

	"sobolkit/domain/saltelli"
	"sobolkit/ports"
)

// ChooseStrategy selects the resampling strategy from the problem size.
// Vectorized resampling materializes every trial's gathered matrices at
// once, so it is only used while n_mc * n_bootstrap * n_elements stays
// at or below the threshold. The choice affects peak memory only, never
// the resampled estimates.
func ChooseStrategy(nMC, nBootstrap, nElements, threshold int) ports.ResamplingStrategy {
	if int64(nMC)*int64(nBootstrap)*int64(nElements) <= int64(threshold) {
		return Vectorized{}
	}
	return Sequential{}
}

// Vectorized gathers the resampled evaluation matrices for all
// bootstrap trials into single allocations before estimating. Peak
// transient memory is O(n_mc * n_bootstrap * n_elements).
type Vectorized struct{}

// Name implements ports.ResamplingStrategy.
func (Vectorized) Name() string { return "vectorized" }

// Replicates implements ports.ResamplingStrategy.
func (Vectorized) Replicates(dec *saltelli.Decomposition, param int, indices [][]int) (first, total *mat.Dense) {
	nB := len(indices)
	nMC, width := dec.NMC, dec.Width

	gM2 := mat.NewDense(nB*nMC, width, nil)
	gM1 := mat.NewDense(nB*nMC, width, nil)
	gNi := mat.NewDense(nB*nMC, width, nil)
	for i, trial := range indices {
		for r, src := range trial {
			row := i*nMC + r
			gM2.SetRow(row, dec.FM2.RawRowView(src))
			gM1.SetRow(row, dec.FM1.RawRowView(src))
			gNi.SetRow(row, dec.FNi[param].RawRowView(src))
		}
	}

	first = mat.NewDense(nB, width, nil)
	total = mat.NewDense(nB, width, nil)
	for i := 0; i < nB; i++ {
		fM2 := gM2.Slice(i*nMC, (i+1)*nMC, 0, width)
		fM1 := gM1.Slice(i*nMC, (i+1)*nMC, 0, width)
		fNi := gNi.Slice(i*nMC, (i+1)*nMC, 0, width)
		first.SetRow(i, saltelli.FirstOrder(fM2, fM1, fNi))
		total.SetRow(i, saltelli.TotalOrder(fM2, fM1, fNi))
	}
	return first, total
}

// Sequential gathers one trial at a time into reused scratch matrices,
// bounding peak transient memory at O(n_mc * n_elements). Estimates are
// bit-identical to Vectorized for the same index matrix since both feed
// the same estimator kernel per trial.
type Sequential struct{}

// Name implements ports.ResamplingStrategy.
func (Sequential) Name() string { return "sequential" }

// Replicates implements ports.ResamplingStrategy.
func (Sequential) Replicates(dec *saltelli.Decomposition, param int, indices [][]int) (first, total *mat.Dense) {
	nB := len(indices)
	nMC, width := dec.NMC, dec.Width

	sM2 := mat.NewDense(nMC, width, nil)
	sM1 := mat.NewDense(nMC, width, nil)
	sNi := mat.NewDense(nMC, width, nil)

	first = mat.NewDense(nB, width, nil)
	total = mat.NewDense(nB, width, nil)
	for i, trial := range indices {
		for r, src := range trial {
			sM2.SetRow(r, dec.FM2.RawRowView(src))
			sM1.SetRow(r, dec.FM1.RawRowView(src))
			sNi.SetRow(r, dec.FNi[param].RawRowView(src))
		}
		first.SetRow(i, saltelli.FirstOrder(sM2, sM1, sNi))
		total.SetRow(i, saltelli.TotalOrder(sM2, sM1, sNi))
	}
	return first, total
}
