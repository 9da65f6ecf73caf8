package core

import (
	"fmt"

	"github.com/macressler/fastr/internal/data"
)

// A CastLevel is a rung of the ladder of cast nodes extracting a single logical from a value,
// higher levels accept more shapes.
type CastLevel int8

const (
	NoCastLevel      CastLevel = -1
	ScalarCastLevel  CastLevel = 0 //a single int or double without attributes
	VectorCastLevel  CastLevel = 1 //any logical, int or double vector
	GenericCastLevel CastLevel = 2 //terminal, every value
)

func (l CastLevel) String() string {
	switch l {
	case ScalarCastLevel:
		return "scalar"
	case VectorCastLevel:
		return "vector"
	case GenericCastLevel:
		return "generic"
	}
	return "none"
}

// CastPolicy selects how the terminal cast reports values that are not plain numbers.
type CastPolicy int

const (
	// operands of || and &&: strings, lists and NULL are rejected.
	OperandPolicy CastPolicy = iota
	// conditions of if/while and plain coercions: strings are parsed, NULL has length zero.
	ConditionPolicy
)

func (p CastPolicy) String() string {
	if p == ConditionPolicy {
		return "condition"
	}
	return "logical operation"
}

// A LogicalCast extracts the logical a value represents in a scalar-boolean context.
type LogicalCast interface {
	Level() CastLevel

	// Extract returns ok == false without error if v does not have the shape the cast is
	// specialized for, the caller should then install a more general cast.
	Extract(ctx *Context, v data.Value) (result data.Logical, ok bool, err error)
}

// SelectCast returns the least general cast above installed that accepts v, the function is pure.
func SelectCast(installed CastLevel, v data.Value, policy CastPolicy) LogicalCast {
	if installed < ScalarCastLevel && data.IsScalar(v) {
		switch v.(type) {
		case *data.IntVector:
			return scalarIntCast{}
		case *data.DoubleVector:
			return scalarDoubleCast{}
		}
	}
	if installed < VectorCastLevel {
		switch v.(type) {
		case *data.LogicalVector:
			return logicalVectorCast{}
		case *data.IntVector:
			return intVectorCast{}
		case *data.DoubleVector:
			return doubleVectorCast{}
		}
	}
	return genericCast{policy: policy}
}

// ExtractLogical returns the single logical v represents, it never specializes.
func ExtractLogical(ctx *Context, v data.Value, policy CastPolicy) (data.Logical, error) {
	l, _, err := genericCast{policy: policy}.Extract(ctx, v)
	return l, err
}

type scalarIntCast struct{}

func (scalarIntCast) Level() CastLevel {
	return ScalarCastLevel
}

func (scalarIntCast) Extract(ctx *Context, v data.Value) (data.Logical, bool, error) {
	vec, ok := v.(*data.IntVector)
	if !ok || !data.IsScalar(vec) {
		return data.NA, false, nil
	}
	return data.Int2Logical(vec.At(0)), true, nil
}

type scalarDoubleCast struct{}

func (scalarDoubleCast) Level() CastLevel {
	return ScalarCastLevel
}

func (scalarDoubleCast) Extract(ctx *Context, v data.Value) (data.Logical, bool, error) {
	vec, ok := v.(*data.DoubleVector)
	if !ok || !data.IsScalar(vec) {
		return data.NA, false, nil
	}
	return data.Double2Logical(vec.At(0)), true, nil
}

type logicalVectorCast struct{}

func (logicalVectorCast) Level() CastLevel {
	return VectorCastLevel
}

func (logicalVectorCast) Extract(ctx *Context, v data.Value) (data.Logical, bool, error) {
	vec, ok := v.(*data.LogicalVector)
	if !ok {
		return data.NA, false, nil
	}
	if err := checkSingleElement(ctx, vec.Len()); err != nil {
		return data.NA, true, err
	}
	return vec.At(0), true, nil
}

type intVectorCast struct{}

func (intVectorCast) Level() CastLevel {
	return VectorCastLevel
}

func (intVectorCast) Extract(ctx *Context, v data.Value) (data.Logical, bool, error) {
	vec, ok := v.(*data.IntVector)
	if !ok {
		return data.NA, false, nil
	}
	if err := checkSingleElement(ctx, vec.Len()); err != nil {
		return data.NA, true, err
	}
	return data.Int2Logical(vec.At(0)), true, nil
}

type doubleVectorCast struct{}

func (doubleVectorCast) Level() CastLevel {
	return VectorCastLevel
}

func (doubleVectorCast) Extract(ctx *Context, v data.Value) (data.Logical, bool, error) {
	vec, ok := v.(*data.DoubleVector)
	if !ok {
		return data.NA, false, nil
	}
	if err := checkSingleElement(ctx, vec.Len()); err != nil {
		return data.NA, true, err
	}
	return data.Double2Logical(vec.At(0)), true, nil
}

// genericCast is the terminal cast, its guard never fails.
type genericCast struct {
	policy CastPolicy
}

func (genericCast) Level() CastLevel {
	return GenericCastLevel
}

func (c genericCast) Extract(ctx *Context, v data.Value) (data.Logical, bool, error) {
	switch v.Kind() {
	case data.ListKind:
		return data.NA, true, fmtInvalidOperandType(c.policy, v.Kind())
	case data.NullKind:
		if c.policy == OperandPolicy {
			return data.NA, true, fmtInvalidOperandType(c.policy, v.Kind())
		}
		return data.NA, true, ErrLengthZero
	case data.StringKind:
		if c.policy == OperandPolicy {
			return data.NA, true, fmtInvalidOperandType(c.policy, v.Kind())
		}
	}

	if err := checkSingleElement(ctx, v.Len()); err != nil {
		return data.NA, true, err
	}

	status := data.ConversionStatus{}
	l, err := data.LogicalAt(v, 0, &status)
	if err != nil {
		return data.NA, true, fmtInvalidOperandType(c.policy, v.Kind())
	}
	if status.NAIntroduced {
		return data.NA, true, ErrNotInterpretableAsLogical
	}
	return l, true, nil
}

// checkSingleElement fails if there is no element and warns if there are more than one.
func checkSingleElement(ctx *Context, length int) error {
	switch {
	case length == 1:
		return nil
	case length == 0:
		return ErrLengthZero
	}
	ctx.Warn(AdvisoryTruncation, "the value has length %d > 1 and only the first element will be used", length)
	return nil
}

func describeCast(c LogicalCast) string {
	return fmt.Sprintf("%T", c)
}
