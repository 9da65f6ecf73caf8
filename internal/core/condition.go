package core

import "github.com/macressler/fastr/internal/data"

// If evaluates its condition as a single logical and then one of its branches.
type If struct {
	condition  *CastSlot
	consequent Node
	alternate  Node //nil if there is no else branch
}

func NewIf(condition, consequent, alternate Node) *If {
	return &If{
		condition:  NewCastSlot(condition, ConditionPolicy),
		consequent: consequent,
		alternate:  alternate,
	}
}

func (n *If) Condition() *CastSlot {
	return n.condition
}

func (n *If) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	cond, err := n.condition.Eval(ctx, frame)
	if err != nil {
		return nil, err
	}

	switch cond {
	case data.True:
		return n.consequent.Eval(ctx, frame)
	case data.NA:
		return nil, ErrMissingCondition
	}
	if n.alternate == nil {
		return data.Null, nil
	}
	return n.alternate.Eval(ctx, frame)
}

// LogicalOne coerces the value of its child to a single logical, NA is a valid result.
type LogicalOne struct {
	slot *CastSlot
}

func NewLogicalOne(child Node) *LogicalOne {
	return &LogicalOne{slot: NewCastSlot(child, ConditionPolicy)}
}

func (n *LogicalOne) Slot() *CastSlot {
	return n.slot
}

func (n *LogicalOne) Eval(ctx *Context, frame *Frame) (data.Value, error) {
	l, err := n.EvalLogical(ctx, frame)
	if err != nil {
		return nil, err
	}
	return data.NewLogicalScalar(l), nil
}

func (n *LogicalOne) EvalLogical(ctx *Context, frame *Frame) (data.Logical, error) {
	return n.slot.Eval(ctx, frame)
}
