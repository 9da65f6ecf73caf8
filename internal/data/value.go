package data

import (
	"errors"
	"strings"
)

// Kind identifies the family of a Value.
type Kind int

const (
	NullKind Kind = iota
	LogicalKind
	IntKind
	DoubleKind
	ComplexKind
	RawKind
	StringKind
	ListKind
)

var kindNames = [...]string{
	NullKind:    "NULL",
	LogicalKind: "logical",
	IntKind:     "integer",
	DoubleKind:  "double",
	ComplexKind: "complex",
	RawKind:     "raw",
	StringKind:  "character",
	ListKind:    "list",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsAtomic reports whether values of the kind are atomic vectors.
func (k Kind) IsAtomic() bool {
	return k >= LogicalKind && k <= StringKind
}

var (
	ErrUncoercible      = errors.New("value cannot be coerced to the requested type")
	ErrInvalidDimension = errors.New("dimensions do not match the length of the vector")
)

// A Value is any runtime value. Vectors are never mutated after creation,
// attribute setters return shallow copies.
type Value interface {
	Kind() Kind
	Len() int

	// IsNA reports whether the i-th element is missing (NaN counts as missing for doubles).
	IsNA(i int) bool

	Names() *Names

	// Dimensions returns nil when the value has no dim attribute, the slice must not be modified.
	Dimensions() []int

	String() string
}

type attributes struct {
	names *Names
	dims  []int
}

func (a attributes) Names() *Names {
	return a.names
}

func (a attributes) Dimensions() []int {
	return a.dims
}

func (a attributes) hasAttributes() bool {
	return a.names != nil || a.dims != nil
}

func (a attributes) withDimensions(length int, dims []int) (attributes, error) {
	if dims != nil {
		size := 1
		for _, d := range dims {
			size *= d
		}
		if size != length {
			return a, ErrInvalidDimension
		}
	}
	a.dims = dims
	return a, nil
}

// IsScalar reports whether v is a plain vector of exactly one element without any attribute.
func IsScalar(v Value) bool {
	if v.Len() != 1 {
		return false
	}
	switch vec := v.(type) {
	case *LogicalVector:
		return !vec.hasAttributes()
	case *IntVector:
		return !vec.hasAttributes()
	case *DoubleVector:
		return !vec.hasAttributes()
	case *ComplexVector:
		return !vec.hasAttributes()
	case *RawVector:
		return !vec.hasAttributes()
	case *StringVector:
		return !vec.hasAttributes()
	}
	return false
}

func formatElements(n int, format func(i int) string) string {
	if n == 0 {
		return ""
	}
	buf := strings.Builder{}
	buf.WriteString("[1]")
	for i := 0; i < n; i++ {
		buf.WriteByte(' ')
		buf.WriteString(format(i))
	}
	return buf.String()
}

// WithDimensions returns a copy of the atomic vector v with the dim attribute set to dims.
func WithDimensions(v Value, dims ...int) (Value, error) {
	switch vec := v.(type) {
	case *LogicalVector:
		return vec.WithDimensions(dims...)
	case *IntVector:
		return vec.WithDimensions(dims...)
	case *DoubleVector:
		return vec.WithDimensions(dims...)
	case *ComplexVector:
		return vec.WithDimensions(dims...)
	}
	return nil, ErrUncoercible
}
