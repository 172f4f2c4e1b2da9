// Package saltelli implements the variance-based sensitivity core: the
// decomposition of a Saltelli-ordered evaluation stream into its input
// matrix contributions, and the first- and total-order Sobol index
// estimators computed from them.
//
// Reference: A. Saltelli, Making best use of model evaluations to
// compute sensitivity indices, Computer Physics Communications, 2002.
package saltelli

import (
	"gonum.org/v1/gonum/mat"

	"sobolkit/domain/core"
	"sobolkit/domain/qoi"
)

// Decomposition holds the code evaluations of the Saltelli input
// matrices. Rows are Monte Carlo samples, columns are QoI elements.
type Decomposition struct {
	FM2 *mat.Dense   // evaluations of base matrix M2
	FM1 *mat.Dense   // evaluations of base matrix M1
	FNi []*mat.Dense // evaluations of radial matrices N_i, one per parameter

	NMC   int // rows per matrix
	Width int // QoI elements per evaluation
}

// Decompose splits an ordered evaluation stream into the contributions
// of the n_params+2 Saltelli input matrices. The stream is stored in
// the order:
//
//	[sample from M2, sample from N1, ..., sample from N_n_params,
//	 sample from M1, repeat]
//
// so within each block of n_params+2 runs, position 0 belongs to M2,
// position n_params+1 to M1 and positions 1..n_params to the radial
// matrices. The transform is pure and order-preserving.
func Decompose(samples []qoi.Evaluation, nParams int) (*Decomposition, error) {
	if nParams <= 0 {
		return nil, core.NewConfigError("n_params", "must be positive")
	}
	width, err := qoi.Width(samples)
	if err != nil {
		return nil, err
	}
	step := nParams + 2
	if len(samples)%step != 0 {
		return nil, core.NewBlockSizeError(len(samples), step)
	}
	nMC := len(samples) / step

	d := &Decomposition{
		FM2:   mat.NewDense(nMC, width, nil),
		FM1:   mat.NewDense(nMC, width, nil),
		FNi:   make([]*mat.Dense, nParams),
		NMC:   nMC,
		Width: width,
	}
	for j := range d.FNi {
		d.FNi[j] = mat.NewDense(nMC, width, nil)
	}

	for b := 0; b < nMC; b++ {
		base := b * step
		d.FM2.SetRow(b, samples[base])
		d.FM1.SetRow(b, samples[base+step-1])
		for j := 0; j < nParams; j++ {
			d.FNi[j].SetRow(b, samples[base+1+j])
		}
	}
	return d, nil
}

// NParams returns the number of radial matrices in the decomposition.
func (d *Decomposition) NParams() int {
	return len(d.FNi)
}
