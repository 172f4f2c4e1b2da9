package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		p    float64
		want float64
	}{
		{"median of odd count", []float64{3, 1, 2}, 50, 2},
		{"median interpolates", []float64{1, 2, 3, 4}, 50, 2.5},
		{"quartile interpolates", []float64{1, 2, 3, 4}, 25, 1.75},
		{"lower edge", []float64{1, 2, 3, 4}, 0, 1},
		{"upper edge", []float64{1, 2, 3, 4}, 100, 4},
		{"single element", []float64{42}, 97.5, 42},
		{"unsorted input", []float64{9, 1, 5}, 100, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(tt.xs, tt.p), 1e-12)
		})
	}
}

func TestPercentile_EmptyIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Percentile(nil, 50)))
}

func TestPercentile_DoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Percentile(xs, 50)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}
