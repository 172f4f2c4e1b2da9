package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sobolkit/domain/core"
	"sobolkit/domain/qoi"
)

func TestRunMap_OrdersRunsNumerically(t *testing.T) {
	// Storage order must not matter: run 1 comes before run 2.
	src := NewRunMap(map[string]map[string]qoi.Evaluation{
		"te": {
			"Run_2": qoi.Scalar(5),
			"Run_1": qoi.Scalar(3),
		},
	}, Options{})

	table, err := src.Samples([]string{"te"})
	require.NoError(t, err)
	assert.Equal(t, []qoi.Evaluation{{3}, {5}}, table["te"])
}

func TestRunMap_NoNaturalStringOrder(t *testing.T) {
	// "Run_10" sorts before "Run_2" lexically; numeric order must win.
	data := map[string]map[string]qoi.Evaluation{"f": {}}
	for i := 1; i <= 12; i++ {
		data["f"]["Run_"+strconv.Itoa(i)] = qoi.Scalar(float64(i * 10))
	}
	src := NewRunMap(data, Options{})

	table, err := src.Samples([]string{"f"})
	require.NoError(t, err)
	require.Len(t, table["f"], 12)
	for i, e := range table["f"] {
		assert.Equal(t, float64((i+1)*10), e[0])
	}
}

func TestRunMap_GapDetection(t *testing.T) {
	src := NewRunMap(map[string]map[string]qoi.Evaluation{
		"te": {
			"Run_1": qoi.Scalar(1),
			"Run_3": qoi.Scalar(3),
		},
	}, Options{})

	_, err := src.Samples([]string{"te"})
	require.ErrorIs(t, err, core.ErrRunGap)
}

func TestRunMap_BadLabels(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"missing prefix", "run_1"},
		{"non-numeric suffix", "Run_one"},
		{"zero index", "Run_0"},
		{"negative index", "Run_-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewRunMap(map[string]map[string]qoi.Evaluation{
				"te": {tt.label: qoi.Scalar(1)},
			}, Options{})
			_, err := src.Samples([]string{"te"})
			require.ErrorIs(t, err, core.ErrRunLabel)
		})
	}
}

func TestRunMap_OutputIndexSelection(t *testing.T) {
	src := NewRunMap(map[string]map[string]qoi.Evaluation{
		"ts": {
			"Run_1": {10, 11, 12},
			"Run_2": {20, 21, 22},
		},
	}, OutputIndex(2))

	table, err := src.Samples([]string{"ts"})
	require.NoError(t, err)
	assert.Equal(t, []qoi.Evaluation{{12}, {22}}, table["ts"])
}

func TestRunMap_OutputIndexOutOfRange(t *testing.T) {
	src := NewRunMap(map[string]map[string]qoi.Evaluation{
		"ts": {"Run_1": {10, 11}},
	}, OutputIndex(5))

	_, err := src.Samples([]string{"ts"})
	require.ErrorIs(t, err, core.ErrOutputIndex)
}

func TestRunMap_EmptyAndMissing(t *testing.T) {
	_, err := NewRunMap(nil, Options{}).Samples([]string{"te"})
	require.ErrorIs(t, err, core.ErrEmptyInput)

	src := NewRunMap(map[string]map[string]qoi.Evaluation{
		"other": {"Run_1": qoi.Scalar(1)},
	}, Options{})
	_, err = src.Samples([]string{"te"})
	require.ErrorIs(t, err, core.ErrMissingQoIValue)
}

func TestRecordSource_RowOrderAndColumns(t *testing.T) {
	src := NewRecordSource([]Record{
		{RunID: "Run_1", Values: map[string]qoi.Evaluation{"a": {1}, "b": {10}}},
		{RunID: "Run_2", Values: map[string]qoi.Evaluation{"a": {2}, "b": {20}}},
		{RunID: "Run_3", Values: map[string]qoi.Evaluation{"a": {3}, "b": {30}}},
	}, Options{})

	table, err := src.Samples([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []qoi.Evaluation{{1}, {2}, {3}}, table["a"])
	assert.Equal(t, []qoi.Evaluation{{10}, {20}, {30}}, table["b"])
}

func TestRecordSource_Errors(t *testing.T) {
	_, err := NewRecordSource(nil, Options{}).Samples([]string{"a"})
	require.ErrorIs(t, err, core.ErrEmptyInput)

	src := NewRecordSource([]Record{
		{RunID: "Run_1", Values: map[string]qoi.Evaluation{"a": {1}}},
	}, Options{})
	_, err = src.Samples([]string{"missing"})
	require.ErrorIs(t, err, core.ErrMissingQoIValue)

	src = NewRecordSource([]Record{
		{RunID: "Run_1", Values: map[string]qoi.Evaluation{"a": {1, 2}}},
	}, OutputIndex(9))
	_, err = src.Samples([]string{"a"})
	require.ErrorIs(t, err, core.ErrOutputIndex)
}
