package saltelli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sobolkit/domain/qoi"
)

func TestEstimators_KnownValues(t *testing.T) {
	// n_params=1, n_mc=2: stream [M2_0, N1_0, M1_0, M2_1, N1_1, M1_1].
	// f_M2=[1,5], f_N1=[2,6], f_M1=[3,7].
	// V = popvar([1,5,3,7]) = 5
	// first = mean([3*(2-1), 7*(6-5)]) / 5 = 5/5 = 1
	// total = 0.5*mean([(1-2)^2, (5-6)^2]) / 5 = 0.5/5 = 0.1
	samples := []qoi.Evaluation{{1}, {2}, {3}, {5}, {6}, {7}}
	dec, err := Decompose(samples, 1)
	require.NoError(t, err)

	first := FirstOrder(dec.FM2, dec.FM1, dec.FNi[0])
	total := TotalOrder(dec.FM2, dec.FM1, dec.FNi[0])

	require.Len(t, first, 1)
	require.Len(t, total, 1)
	assert.InDelta(t, 1.0, first[0], 1e-12)
	assert.InDelta(t, 0.1, total[0], 1e-12)
}

func TestEstimators_DegenerateVarianceIsZero(t *testing.T) {
	// Constant output: every matrix row identical, V = 0. The indices
	// must be exactly 0, never NaN or Inf.
	samples := make([]qoi.Evaluation, 12)
	for i := range samples {
		samples[i] = qoi.Evaluation{4.5, 4.5}
	}
	dec, err := Decompose(samples, 2)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		first := FirstOrder(dec.FM2, dec.FM1, dec.FNi[j])
		total := TotalOrder(dec.FM2, dec.FM1, dec.FNi[j])
		for e := 0; e < dec.Width; e++ {
			assert.Zero(t, first[e])
			assert.Zero(t, total[e])
			assert.False(t, math.IsNaN(first[e]))
			assert.False(t, math.IsNaN(total[e]))
		}
	}
}

func TestEstimators_DegenerateVarianceIsMaskedPerElement(t *testing.T) {
	// Width-2 QoI where element 0 is constant and element 1 varies:
	// masking must apply to element 0 only.
	samples := []qoi.Evaluation{
		{7, 1}, {7, 2}, {7, 3},
		{7, 5}, {7, 6}, {7, 7},
	}
	dec, err := Decompose(samples, 1)
	require.NoError(t, err)

	first := FirstOrder(dec.FM2, dec.FM1, dec.FNi[0])
	total := TotalOrder(dec.FM2, dec.FM1, dec.FNi[0])

	assert.Zero(t, first[0])
	assert.Zero(t, total[0])
	// Element 1 repeats the scalar known-values fixture.
	assert.InDelta(t, 1.0, first[1], 1e-12)
	assert.InDelta(t, 0.1, total[1], 1e-12)
}

func TestEstimators_DoNotMutateInputs(t *testing.T) {
	samples := []qoi.Evaluation{{1}, {2}, {3}, {5}, {6}, {7}}
	dec, err := Decompose(samples, 1)
	require.NoError(t, err)

	before := append([]float64(nil), dec.FM1.RawMatrix().Data...)
	FirstOrder(dec.FM2, dec.FM1, dec.FNi[0])
	TotalOrder(dec.FM2, dec.FM1, dec.FNi[0])
	assert.Equal(t, before, dec.FM1.RawMatrix().Data)
}
