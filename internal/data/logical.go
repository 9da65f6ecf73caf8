package data

import "math"

// Logical is a three-valued boolean element.
type Logical int32

const (
	False Logical = 0
	True  Logical = 1
	NA    Logical = math.MinInt32
)

func LogicalOf(b bool) Logical {
	if b {
		return True
	}
	return False
}

func (l Logical) String() string {
	switch l {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "NA"
	}
}

var (
	LogicalTrue  = &LogicalVector{elements: []Logical{True}}
	LogicalFalse = &LogicalVector{elements: []Logical{False}}
	LogicalNA    = &LogicalVector{elements: []Logical{NA}}
)

// LogicalVector implements Value.
type LogicalVector struct {
	attributes
	elements []Logical
}

func NewLogicalVector(elements ...Logical) *LogicalVector {
	return &LogicalVector{elements: elements}
}

// NewLogicalScalar returns a length-1 logical vector, the shared TRUE/FALSE/NA instances are returned when possible.
func NewLogicalScalar(l Logical) *LogicalVector {
	switch l {
	case True:
		return LogicalTrue
	case False:
		return LogicalFalse
	case NA:
		return LogicalNA
	}
	return &LogicalVector{elements: []Logical{l}}
}

func (v *LogicalVector) Kind() Kind {
	return LogicalKind
}

func (v *LogicalVector) Len() int {
	return len(v.elements)
}

func (v *LogicalVector) At(i int) Logical {
	return v.elements[i]
}

func (v *LogicalVector) IsNA(i int) bool {
	return v.elements[i] == NA
}

func (v *LogicalVector) WithNames(names *Names) *LogicalVector {
	clone := *v
	clone.names = names
	return &clone
}

func (v *LogicalVector) WithDimensions(dims ...int) (*LogicalVector, error) {
	attrs, err := v.withDimensions(len(v.elements), dims)
	if err != nil {
		return nil, err
	}
	return &LogicalVector{attributes: attrs, elements: v.elements}, nil
}

func (v *LogicalVector) String() string {
	return formatElements(len(v.elements), func(i int) string {
		return v.elements[i].String()
	})
}
