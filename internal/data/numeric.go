package data

import (
	"math"
	"strconv"
)

const (
	IntNA = math.MinInt32

	// low word of the NaN payload marking a missing double
	doubleNALowWord = 1954
)

// DoubleNA is the missing double, a NaN with a recognizable payload.
var DoubleNA = math.Float64frombits(0x7FF00000_00000000 | doubleNALowWord)

// IsDoubleNA reports whether d is the missing double (and not any other NaN).
func IsDoubleNA(d float64) bool {
	return math.IsNaN(d) && uint32(math.Float64bits(d)) == doubleNALowWord
}

// IntVector implements Value.
type IntVector struct {
	attributes
	elements []int32
}

func NewIntVector(elements ...int32) *IntVector {
	return &IntVector{elements: elements}
}

func NewIntScalar(i int32) *IntVector {
	return &IntVector{elements: []int32{i}}
}

func (v *IntVector) Kind() Kind {
	return IntKind
}

func (v *IntVector) Len() int {
	return len(v.elements)
}

func (v *IntVector) At(i int) int32 {
	return v.elements[i]
}

func (v *IntVector) IsNA(i int) bool {
	return v.elements[i] == IntNA
}

func (v *IntVector) WithNames(names *Names) *IntVector {
	clone := *v
	clone.names = names
	return &clone
}

func (v *IntVector) WithDimensions(dims ...int) (*IntVector, error) {
	attrs, err := v.withDimensions(len(v.elements), dims)
	if err != nil {
		return nil, err
	}
	return &IntVector{attributes: attrs, elements: v.elements}, nil
}

func (v *IntVector) String() string {
	return formatElements(len(v.elements), func(i int) string {
		if v.elements[i] == IntNA {
			return "NA"
		}
		return strconv.FormatInt(int64(v.elements[i]), 10)
	})
}

// DoubleVector implements Value.
type DoubleVector struct {
	attributes
	elements []float64
}

// EmptyDouble is the zero-length double vector.
var EmptyDouble = NewDoubleVector()

func NewDoubleVector(elements ...float64) *DoubleVector {
	return &DoubleVector{elements: elements}
}

func NewDoubleScalar(d float64) *DoubleVector {
	return &DoubleVector{elements: []float64{d}}
}

func (v *DoubleVector) Kind() Kind {
	return DoubleKind
}

func (v *DoubleVector) Len() int {
	return len(v.elements)
}

func (v *DoubleVector) At(i int) float64 {
	return v.elements[i]
}

func (v *DoubleVector) IsNA(i int) bool {
	return math.IsNaN(v.elements[i])
}

// Elements returns the underlying slice, it must not be modified.
func (v *DoubleVector) Elements() []float64 {
	return v.elements
}

func (v *DoubleVector) WithNames(names *Names) *DoubleVector {
	clone := *v
	clone.names = names
	return &clone
}

func (v *DoubleVector) WithDimensions(dims ...int) (*DoubleVector, error) {
	attrs, err := v.withDimensions(len(v.elements), dims)
	if err != nil {
		return nil, err
	}
	return &DoubleVector{attributes: attrs, elements: v.elements}, nil
}

func (v *DoubleVector) String() string {
	return formatElements(len(v.elements), func(i int) string {
		return formatDouble(v.elements[i])
	})
}

func formatDouble(d float64) string {
	switch {
	case IsDoubleNA(d):
		return "NA"
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "Inf"
	case math.IsInf(d, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(d, 'g', 7, 64)
}
