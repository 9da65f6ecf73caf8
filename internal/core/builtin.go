package core

import (
	"fmt"
	"strings"

	"github.com/macressler/fastr/internal/data"
)

type BuiltinFn func(ctx *Context, args *CallArgs) (data.Value, error)

// A Builtin is a function implemented in Go.
type Builtin struct {
	Name    string
	Formals Formals
	Fn      BuiltinFn
}

// Call is a call site of a builtin. The arguments are bound to the parameters when the node is
// created, the binding is then shared by all evaluations.
type Call struct {
	callee   *Builtin
	argNames []*data.Symbol
	argExprs []Node //nil elements are empty arguments
	bound    *BoundArguments
}

// NewCall creates a call node, argNames[i] is nil for positional arguments and argExprs[i]
// is nil for empty arguments.
func NewCall(callee *Builtin, argNames []*data.Symbol, argExprs []Node) *Call {
	if len(argNames) != len(argExprs) {
		panic(fmt.Errorf("%d argument names for %d arguments", len(argNames), len(argExprs)))
	}
	hasExpr := make([]bool, len(argExprs))
	for i, e := range argExprs {
		hasExpr[i] = e != nil
	}

	return &Call{
		callee:   callee,
		argNames: argNames,
		argExprs: argExprs,
		bound:    BindArguments(callee.Formals.Names, argNames, hasExpr),
	}
}

func (c *Call) Callee() *Builtin {
	return c.callee
}

func (c *Call) Bound() *BoundArguments {
	return c.bound
}

func (c *Call) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	if len(c.bound.Overflow) > 0 && !c.callee.Formals.Variadic {
		return nil, fmt.Errorf("%s: %w (%s)", c.callee.Name, ErrUnusedArguments, c.describeOverflow())
	}

	args := &CallArgs{
		callee: c.callee,
		params: make([]data.Value, c.callee.Formals.NamedCount()),
	}

	for i, expr := range c.argExprs {
		if expr == nil {
			continue
		}
		v, err := expr.Eval(ctx, frame)
		if err != nil {
			return nil, err
		}
		if pos := c.bound.ArgPositions[i]; pos >= 0 {
			args.params[pos] = v
		} else {
			args.Rest = append(args.Rest, v)
			args.RestNames = append(args.RestNames, c.argNames[i])
		}
	}

	return c.callee.Fn(ctx, args)
}

func (c *Call) describeOverflow() string {
	var parts []string
	for _, i := range c.bound.Overflow {
		if c.argNames[i] != nil {
			parts = append(parts, c.argNames[i].Name()+" = ...")
		} else {
			parts = append(parts, fmt.Sprintf("argument %d", i+1))
		}
	}
	return strings.Join(parts, ", ")
}

// CallArgs holds the evaluated arguments of a call, indexed by parameter.
type CallArgs struct {
	callee *Builtin
	params []data.Value

	// arguments collected by "...", with their names (nil for positional ones).
	Rest      []data.Value
	RestNames []*data.Symbol
}

// Provided reports whether an argument was passed for the i-th parameter.
func (a *CallArgs) Provided(i int) bool {
	return a.params[i] != nil
}

// Arg returns the argument of the i-th parameter or nil.
func (a *CallArgs) Arg(i int) data.Value {
	return a.params[i]
}

// ArgOr returns the argument of the i-th parameter or defaultValue if it was not provided.
func (a *CallArgs) ArgOr(i int, defaultValue data.Value) data.Value {
	if a.params[i] == nil {
		return defaultValue
	}
	return a.params[i]
}

// Require returns the argument of the i-th parameter or ErrMissingArgument.
func (a *CallArgs) Require(i int) (data.Value, error) {
	if a.params[i] == nil {
		return nil, fmt.Errorf("%s: %w: '%s'", a.callee.Name, ErrMissingArgument, a.callee.Formals.Names[i].Name())
	}
	return a.params[i], nil
}

// InvalidArgument returns an ErrInvalidArgument error about the i-th parameter.
func (a *CallArgs) InvalidArgument(i int) error {
	return fmt.Errorf("%s: %w '%s'", a.callee.Name, ErrInvalidArgument, a.callee.Formals.Names[i].Name())
}

func (a *CallArgs) Callee() *Builtin {
	return a.callee
}
