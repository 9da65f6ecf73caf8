package core

import (
	"errors"
	"fmt"

	"github.com/macressler/fastr/internal/data"
)

var (
	//arity
	ErrLengthZero = errors.New("argument is of length zero")

	//unrepresentable conversion
	ErrNotInterpretableAsLogical = errors.New("argument is not interpretable as logical")

	//unsupported shape
	ErrInvalidOperandType = errors.New("invalid argument type")

	ErrMissingCondition = errors.New("missing value where TRUE/FALSE needed")
	ErrUnboundVariable  = errors.New("object not found")

	//calls
	ErrUnusedArguments = errors.New("unused argument(s)")
	ErrMissingArgument = errors.New("argument is missing, with no default")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrScanUnexpected  = errors.New("scan() got an unexpected item")
	ErrNotArray        = errors.New("'x' must be an array of at least two dimensions")
	ErrInvalidDims     = errors.New("invalid 'dims'")
)

// ErrorKind classifies the fatal errors of an evaluation.
type ErrorKind int

const (
	NoError ErrorKind = iota
	ArityError
	UnrepresentableConversion
	UnsupportedShape
	CallError
	OtherError
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "none"
	case ArityError:
		return "arity"
	case UnrepresentableConversion:
		return "unrepresentable-conversion"
	case UnsupportedShape:
		return "unsupported-shape"
	case CallError:
		return "call"
	}
	return "other"
}

func ErrorKindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrLengthZero):
		return ArityError
	case errors.Is(err, ErrNotInterpretableAsLogical):
		return UnrepresentableConversion
	case errors.Is(err, ErrInvalidOperandType), errors.Is(err, data.ErrUncoercible):
		return UnsupportedShape
	case errors.Is(err, ErrUnusedArguments), errors.Is(err, ErrMissingArgument), errors.Is(err, ErrInvalidArgument):
		return CallError
	}
	return OtherError
}

// WarningKind classifies the non-fatal conditions reported during an evaluation.
type WarningKind int

const (
	AdvisoryTruncation WarningKind = iota + 1
	NAsIntroducedByCoercion
)

func (k WarningKind) String() string {
	switch k {
	case AdvisoryTruncation:
		return "length-gt-1"
	case NAsIntroducedByCoercion:
		return "na-introduced"
	}
	return "unknown"
}

type Warning struct {
	Kind    WarningKind
	Message string
}

func fmtInvalidOperandType(policy CastPolicy, kind data.Kind) error {
	return fmt.Errorf("%w '%s' in %s", ErrInvalidOperandType, kind, policy)
}
