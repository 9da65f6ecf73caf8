package core

import "github.com/macressler/fastr/internal/data"

// Or is the short-circuit || operation, the right operand is only evaluated if the left one is not TRUE.
type Or struct {
	left  *CastSlot
	right *CastSlot
}

func NewOr(left, right Node) *Or {
	return &Or{
		left:  NewCastSlot(left, OperandPolicy),
		right: NewCastSlot(right, OperandPolicy),
	}
}

func (n *Or) Left() *CastSlot {
	return n.left
}

func (n *Or) Right() *CastSlot {
	return n.right
}

func (n *Or) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	l, err := n.EvalLogical(ctx, frame)
	if err != nil {
		return nil, err
	}
	return data.NewLogicalScalar(l), nil
}

func (n *Or) EvalLogical(ctx *Context, frame *Frame) (data.Logical, error) {
	left, err := n.left.Eval(ctx, frame)
	if err != nil {
		return data.NA, err
	}
	if left == data.True {
		return data.True, nil
	}

	right, err := n.right.Eval(ctx, frame)
	if err != nil {
		return data.NA, err
	}
	if right == data.True {
		return data.True, nil
	}
	if left == data.NA || right == data.NA {
		return data.NA, nil
	}
	return data.False, nil
}

// And is the short-circuit && operation, the right operand is only evaluated if the left one is not FALSE.
type And struct {
	left  *CastSlot
	right *CastSlot
}

func NewAnd(left, right Node) *And {
	return &And{
		left:  NewCastSlot(left, OperandPolicy),
		right: NewCastSlot(right, OperandPolicy),
	}
}

func (n *And) Left() *CastSlot {
	return n.left
}

func (n *And) Right() *CastSlot {
	return n.right
}

func (n *And) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	l, err := n.EvalLogical(ctx, frame)
	if err != nil {
		return nil, err
	}
	return data.NewLogicalScalar(l), nil
}

func (n *And) EvalLogical(ctx *Context, frame *Frame) (data.Logical, error) {
	left, err := n.left.Eval(ctx, frame)
	if err != nil {
		return data.NA, err
	}
	if left == data.False {
		return data.False, nil
	}

	right, err := n.right.Eval(ctx, frame)
	if err != nil {
		return data.NA, err
	}
	if left == data.True {
		return right, nil
	}

	//left is NA
	if right == data.False {
		return data.False, nil
	}
	return data.NA, nil
}
