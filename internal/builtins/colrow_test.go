package builtins

import (
	"testing"

	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
	"github.com/stretchr/testify/assert"
)

func matrix(t *testing.T, v data.Value, dims ...int) data.Value {
	m, err := data.WithDimensions(v, dims...)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return m
}

func TestColRow(t *testing.T) {
	// 1 3
	// 2 4
	square := data.NewDoubleVector(1, 2, 3, 4)

	testCases := []struct {
		name     string
		builtin  *core.Builtin
		argNames []string
		args     []data.Value
		result   string
	}{
		{"colSums", ColSums, []string{""}, []data.Value{matrix(t, square, 2, 2)}, "[1] 3 7"},
		{"colMeans", ColMeans, []string{""}, []data.Value{matrix(t, square, 2, 2)}, "[1] 1.5 3.5"},
		{"rowSums", RowSums, []string{""}, []data.Value{matrix(t, square, 2, 2)}, "[1] 4 6"},
		{"rowMeans", RowMeans, []string{""}, []data.Value{matrix(t, square, 2, 2)}, "[1] 2 3"},
		{
			"integer matrix", ColSums, []string{""},
			[]data.Value{matrix(t, data.NewIntVector(1, 2, 3, 4, 5, 6), 3, 2)},
			"[1] 6 15",
		},
		{
			"logical matrix", RowSums, []string{""},
			[]data.Value{matrix(t, data.NewLogicalVector(data.True, data.False, data.True, data.True), 2, 2)},
			"[1] 2 1",
		},
		{
			"NA", ColSums, []string{""},
			[]data.Value{matrix(t, data.NewDoubleVector(1, data.DoubleNA, 3, 4), 2, 2)},
			"[1] NA 7",
		},
		{
			"na.rm", ColMeans, []string{"", "na.rm"},
			[]data.Value{matrix(t, data.NewDoubleVector(1, data.DoubleNA, 3, 4), 2, 2), data.LogicalTrue},
			"[1] 1 3.5",
		},
		{
			"na.rm of a column of NAs", ColMeans, []string{"", "na.rm"},
			[]data.Value{matrix(t, data.NewDoubleVector(data.DoubleNA, data.DoubleNA, 3, 4), 2, 2), data.LogicalTrue},
			"[1] NaN 3.5",
		},
		{
			"dims", ColSums, []string{"", "dims"},
			[]data.Value{matrix(t, data.NewDoubleVector(1, 2, 3, 4, 5, 6, 7, 8), 2, 2, 2), data.NewIntScalar(2)},
			"[1] 10 26",
		},
		{
			"row dims kept", RowSums, []string{"dims", "x"},
			[]data.Value{data.NewIntScalar(2), matrix(t, data.NewDoubleVector(1, 2, 3, 4, 5, 6, 7, 8), 2, 2, 2)},
			"[1] 6 8 10 12",
		},
		{
			"zero columns", ColSums, []string{""},
			[]data.Value{matrix(t, data.NewDoubleVector(), 2, 0)},
			"",
		},
		{
			"zero rows", ColMeans, []string{""},
			[]data.Value{matrix(t, data.NewDoubleVector(), 0, 2)},
			"[1] NaN NaN",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			v, err := callBuiltin(core.NewTestContext(), testCase.builtin, testCase.argNames, testCase.args...)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, testCase.result, v.String())
		})
	}

	t.Run("kept dimensions", func(t *testing.T) {
		x := matrix(t, data.NewDoubleVector(1, 2, 3, 4, 5, 6, 7, 8), 2, 2, 2)
		v, err := callBuiltin(core.NewTestContext(), RowSums, []string{""}, x)
		if !assert.NoError(t, err) {
			return
		}
		assert.Nil(t, v.Dimensions())

		v, err = callBuiltin(core.NewTestContext(), ColSums, []string{""}, x)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, []int{2, 2}, v.Dimensions())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := callBuiltin(core.NewTestContext(), ColSums, []string{""}, square)
		assert.ErrorIs(t, err, core.ErrNotArray)

		_, err = callBuiltin(core.NewTestContext(), ColSums, []string{})
		assert.ErrorIs(t, err, core.ErrMissingArgument)

		_, err = callBuiltin(core.NewTestContext(), ColSums, []string{"", "dims"}, matrix(t, square, 2, 2), data.NewIntScalar(2))
		assert.ErrorIs(t, err, core.ErrInvalidDims)

		_, err = callBuiltin(core.NewTestContext(), ColSums, []string{"", "na.rm"}, matrix(t, square, 2, 2), data.LogicalNA)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)

		x := matrix(t, data.NewIntVector(1, 2, 3, 4), 2, 2)
		_, err = callBuiltin(core.NewTestContext(), ColSums, []string{"", "", "", ""}, x, data.LogicalTrue, data.NewIntScalar(1), data.LogicalTrue)
		assert.ErrorIs(t, err, core.ErrUnusedArguments)
	})
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"colMeans", "colSums", "rowMeans", "rowSums", "scan"}, Names())

	b, ok := Lookup("scan")
	assert.True(t, ok)
	assert.Same(t, Scan, b)

	_, ok = Lookup("cat")
	assert.False(t, ok)
}
