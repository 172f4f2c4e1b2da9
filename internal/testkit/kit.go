// Package testkit provides fixtures shared by the analysis tests:
// synthetic Saltelli-ordered sample streams and a plain seeded RNG
// adapter.
package testkit

import (
	"math/rand"

	"sobolkit/domain/qoi"
)

// RNGAdapter implements the RNGPort interface for testing
type RNGAdapter struct{}

// SeededStream creates a deterministic random number generator for a named operation
func (RNGAdapter) SeededStream(name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed)), nil
}

// SequentialSamples builds a width-1 Saltelli-ordered stream whose run
// values are 0, 1, 2, ... in run order. With nParams=2, nMC=3 the block
// size is 4 and the decomposition must recover
// f_M2=[0,4,8], f_M1=[3,7,11], f_N1=[1,5,9], f_N2=[2,6,10].
func SequentialSamples(nParams, nMC int) []qoi.Evaluation {
	n := nMC * (nParams + 2)
	samples := make([]qoi.Evaluation, n)
	for i := range samples {
		samples[i] = qoi.Scalar(float64(i))
	}
	return samples
}

// ConstantSamples builds a stream where every run evaluates to the same
// vector, i.e. every output element has zero variance.
func ConstantSamples(nParams, nMC, width int, value float64) []qoi.Evaluation {
	n := nMC * (nParams + 2)
	samples := make([]qoi.Evaluation, n)
	for i := range samples {
		e := make(qoi.Evaluation, width)
		for j := range e {
			e[j] = value
		}
		samples[i] = e
	}
	return samples
}

// RandomSamples builds a stream of uniform random evaluations.
func RandomSamples(rng *rand.Rand, nParams, nMC, width int) []qoi.Evaluation {
	n := nMC * (nParams + 2)
	samples := make([]qoi.Evaluation, n)
	for i := range samples {
		e := make(qoi.Evaluation, width)
		for j := range e {
			e[j] = rng.Float64()
		}
		samples[i] = e
	}
	return samples
}

// Table wraps one QoI's samples as a sample table.
func Table(name string, samples []qoi.Evaluation) qoi.SampleTable {
	return qoi.SampleTable{name: samples}
}
