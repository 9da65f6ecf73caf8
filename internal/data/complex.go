package data

import (
	"math"
	"strconv"
)

// ComplexNA is the missing complex number.
var ComplexNA = complex(DoubleNA, 0)

// ComplexVector implements Value.
type ComplexVector struct {
	attributes
	elements []complex128
}

func NewComplexVector(elements ...complex128) *ComplexVector {
	return &ComplexVector{elements: elements}
}

func (v *ComplexVector) Kind() Kind {
	return ComplexKind
}

func (v *ComplexVector) Len() int {
	return len(v.elements)
}

func (v *ComplexVector) At(i int) complex128 {
	return v.elements[i]
}

func (v *ComplexVector) IsNA(i int) bool {
	c := v.elements[i]
	return math.IsNaN(real(c)) || math.IsNaN(imag(c))
}

func (v *ComplexVector) WithDimensions(dims ...int) (*ComplexVector, error) {
	attrs, err := v.withDimensions(len(v.elements), dims)
	if err != nil {
		return nil, err
	}
	return &ComplexVector{attributes: attrs, elements: v.elements}, nil
}

func (v *ComplexVector) String() string {
	return formatElements(len(v.elements), func(i int) string {
		c := v.elements[i]
		if IsDoubleNA(real(c)) {
			return "NA"
		}
		return strconv.FormatComplex(c, 'g', 7, 128)
	})
}
