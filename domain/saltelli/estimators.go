package saltelli

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FirstOrder computes first-order Sobol sensitivity indices from the
// evaluations of M2, M1 and one radial matrix N_i. All three matrices
// must share the same n_mc x width shape; the result has one index per
// QoI element.
//
// Elements whose normalizing variance is zero get an index of exactly
// 0 rather than NaN: a constant output is insensitive by definition.
//
// Inputs are read-only, so concurrent calls on shared matrices are safe.
func FirstOrder(fM2, fM1, fNi mat.Matrix) []float64 {
	n, width := fM2.Dims()
	out := make([]float64, width)

	colM2 := make([]float64, n)
	colM1 := make([]float64, n)
	colNi := make([]float64, n)
	combined := make([]float64, 2*n)
	scratch := make([]float64, n)

	for j := 0; j < width; j++ {
		mat.Col(colM2, j, fM2)
		mat.Col(colM1, j, fM1)
		mat.Col(colNi, j, fNi)

		copy(combined[:n], colM2)
		copy(combined[n:], colM1)
		v, _ := stats.PopulationVariance(combined)
		if v == 0 {
			out[j] = 0
			continue
		}

		// mean(f_M1 * (f_Ni - f_M2)) / V
		floats.SubTo(scratch, colNi, colM2)
		floats.Mul(scratch, colM1)
		m, _ := stats.Mean(scratch)
		out[j] = m / v
	}
	return out
}

// TotalOrder computes total-order Sobol sensitivity indices from the
// evaluations of M2, M1 and one radial matrix N_i. See also:
//
// A. Saltelli et al, Variance based sensitivity analysis of model
// output. Design and estimator for the total sensitivity index, 2009,
// where M2, M1 and N_i play the roles of matrices A, B and A_B.
//
// The zero-variance policy matches FirstOrder: masked to 0 per element.
func TotalOrder(fM2, fM1, fNi mat.Matrix) []float64 {
	n, width := fM2.Dims()
	out := make([]float64, width)

	colM2 := make([]float64, n)
	colM1 := make([]float64, n)
	colNi := make([]float64, n)
	combined := make([]float64, 2*n)
	scratch := make([]float64, n)

	for j := 0; j < width; j++ {
		mat.Col(colM2, j, fM2)
		mat.Col(colM1, j, fM1)
		mat.Col(colNi, j, fNi)

		copy(combined[:n], colM2)
		copy(combined[n:], colM1)
		v, _ := stats.PopulationVariance(combined)
		if v == 0 {
			out[j] = 0
			continue
		}

		// 0.5 * mean((f_M2 - f_Ni)^2) / V
		floats.SubTo(scratch, colM2, colNi)
		floats.Mul(scratch, scratch)
		m, _ := stats.Mean(scratch)
		out[j] = 0.5 * m / v
	}
	return out
}
