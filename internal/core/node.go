package core

import (
	"fmt"

	"github.com/macressler/fastr/internal/data"
)

// A Node is an expression of the tree built by the parser. Nodes are shared by every
// evaluation of the tree, the only state they mutate is the cast node installed in
// their CastSlots.
type Node interface {
	Eval(ctx *Context, frame *Frame) (data.Value, error)
}

// A LogicalNode is a node able to produce a single logical element without boxing it.
type LogicalNode interface {
	Node
	EvalLogical(ctx *Context, frame *Frame) (data.Logical, error)
}

// A Frame holds the variables of a single evaluation.
type Frame struct {
	parent *Frame
	vars   map[*data.Symbol]data.Value
}

func NewFrame(parent *Frame) *Frame {
	return &Frame{parent: parent, vars: map[*data.Symbol]data.Value{}}
}

func (f *Frame) Set(name *data.Symbol, value data.Value) {
	f.vars[name] = value
}

func (f *Frame) Get(name *data.Symbol) (data.Value, bool) {
	for frame := f; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Constant evaluates to a fixed value.
type Constant struct {
	Value data.Value
}

func NewConstant(v data.Value) *Constant {
	return &Constant{Value: v}
}

func (c *Constant) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	return c.Value, nil
}

// Var evaluates to the value of a variable of the frame.
type Var struct {
	Name *data.Symbol
}

func NewVar(name string) *Var {
	return &Var{Name: data.Sym(name)}
}

func (v *Var) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	if frame != nil {
		if val, ok := frame.Get(v.Name); ok {
			return val, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnboundVariable, v.Name.Name())
}

var (
	_ LogicalNode = (*Or)(nil)
	_ LogicalNode = (*And)(nil)
	_ LogicalNode = (*LogicalOne)(nil)
)
