package builtins

import (
	"fmt"
	"math"

	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	COLROW_X_PARAM = iota
	COLROW_NA_RM_PARAM
	COLROW_DIMS_PARAM
)

var (
	ColSums  = newColRowBuiltin("colSums", false, false)
	ColMeans = newColRowBuiltin("colMeans", false, true)
	RowSums  = newColRowBuiltin("rowSums", true, false)
	RowMeans = newColRowBuiltin("rowMeans", true, true)
)

func init() {
	register(ColSums, ColMeans, RowSums, RowMeans)
}

// newColRowBuiltin creates one of the colSums family, x is seen as a matrix whose rows are the
// first 'dims' dimensions and whose columns are the remaining ones.
func newColRowBuiltin(name string, byRow bool, mean bool) *core.Builtin {
	return &core.Builtin{
		Name:    name,
		Formals: core.NewFormals("x", "na.rm", "dims"),
		Fn: func(ctx *core.Context, args *core.CallArgs) (data.Value, error) {
			x, err := args.Require(COLROW_X_PARAM)
			if err != nil {
				return nil, err
			}
			sourceDims := x.Dimensions()
			if len(sourceDims) < 2 {
				return nil, fmt.Errorf("%s: %w", name, core.ErrNotArray)
			}

			naRM := false
			if args.Provided(COLROW_NA_RM_PARAM) {
				l, err := core.ExtractLogical(ctx, args.Arg(COLROW_NA_RM_PARAM), core.ConditionPolicy)
				if err != nil || l == data.NA {
					return nil, args.InvalidArgument(COLROW_NA_RM_PARAM)
				}
				naRM = l == data.True
			}

			dims := 1
			if args.Provided(COLROW_DIMS_PARAM) {
				d, err := data.AsInt(args.Arg(COLROW_DIMS_PARAM), &data.ConversionStatus{})
				if err != nil || d.Len() != 1 || d.IsNA(0) || d.At(0) < 1 || int(d.At(0)) >= len(sourceDims) {
					return nil, fmt.Errorf("%s: %w", name, core.ErrInvalidDims)
				}
				dims = int(d.At(0))
			}

			var values *data.DoubleVector
			switch x.Kind() {
			case data.LogicalKind, data.IntKind, data.DoubleKind:
				values, _ = data.AsDouble(x, &data.ConversionStatus{})
			default:
				return nil, fmt.Errorf("%s: %w: 'x' must be numeric", name, core.ErrUnsupportedType)
			}

			m := product(sourceDims[:dims])
			n := product(sourceDims[dims:])
			if byRow {
				return reshape(rowStat(values.Elements(), m, n, naRM, mean), sourceDims[:dims])
			}
			return reshape(colStat(values.Elements(), m, n, naRM, mean), sourceDims[dims:])
		},
	}
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// reshape keeps the dimensions of the result only if there are more than one.
func reshape(result []float64, dims []int) (data.Value, error) {
	vec := data.NewDoubleVector(result...)
	if len(dims) <= 1 {
		return vec, nil
	}
	return vec.WithDimensions(dims...)
}

// colStat computes the sum or mean of each column of the column-major m x n matrix x.
func colStat(x []float64, m, n int, naRM bool, mean bool) []float64 {
	//row i of the (n x m) row-major dense matrix is the i-th column of x.
	var columns *mat.Dense
	if m > 0 && n > 0 {
		columns = mat.NewDense(n, m, x)
	}

	result := make([]float64, n)
	for j := 0; j < n; j++ {
		var column []float64
		if columns != nil {
			column = columns.RawRowView(j)
		}
		result[j] = stat(column, naRM, mean)
	}
	return result
}

// rowStat computes the sum or mean of each row of the column-major m x n matrix x.
func rowStat(x []float64, m, n int, naRM bool, mean bool) []float64 {
	result := make([]float64, m)
	if m == 0 || n == 0 {
		for i := range result {
			result[i] = stat(nil, naRM, mean)
		}
		return result
	}

	columns := mat.NewDense(n, m, x)
	row := make([]float64, n)
	for i := 0; i < m; i++ {
		mat.Col(row, i, columns)
		result[i] = stat(row, naRM, mean)
	}
	return result
}

func stat(values []float64, naRM bool, mean bool) float64 {
	count := len(values)

	if naRM {
		kept := make([]float64, 0, len(values))
		for _, v := range values {
			if !math.IsNaN(v) {
				kept = append(kept, v)
			}
		}
		values = kept
		count = len(kept)
	} else {
		for _, v := range values {
			if data.IsDoubleNA(v) {
				return data.DoubleNA
			}
		}
	}

	sum := floats.Sum(values)
	if !mean {
		return sum
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
