package core

import (
	"sync/atomic"

	"github.com/macressler/fastr/internal/data"
)

// A CastSlot is a position of the tree where a child expression must produce a single logical.
// The cast node installed in the slot specializes itself on the shapes the child produces:
// when the installed cast does not accept a value a more general one replaces it.
//
// Slots are shared by concurrent evaluations. The installed cast is published with a single
// atomic pointer swap and is only ever replaced by a strictly more general cast, so at most
// one cast per level (3 in total) is installed during the lifetime of a slot.
type CastSlot struct {
	child  Node
	policy CastPolicy

	installed atomic.Pointer[installedCast]
	installs  atomic.Int32
}

type installedCast struct {
	cast LogicalCast
}

func (c *installedCast) level() CastLevel {
	if c == nil {
		return NoCastLevel
	}
	return c.cast.Level()
}

func NewCastSlot(child Node, policy CastPolicy) *CastSlot {
	return &CastSlot{child: child, policy: policy}
}

func (s *CastSlot) Child() Node {
	return s.child
}

func (s *CastSlot) Policy() CastPolicy {
	return s.policy
}

// Level returns the level of the installed cast or NoCastLevel if the slot was never evaluated.
func (s *CastSlot) Level() CastLevel {
	return s.installed.Load().level()
}

// Installs returns the number of casts installed in the slot so far.
func (s *CastSlot) Installs() int {
	return int(s.installs.Load())
}

// Eval evaluates the child and extracts a single logical from its value. Children producing
// logicals directly (Or, And, LogicalOne) are evaluated without boxing and no cast is installed.
func (s *CastSlot) Eval(ctx *Context, frame *Frame) (data.Logical, error) {
	if logicalChild, ok := s.child.(LogicalNode); ok {
		return logicalChild.EvalLogical(ctx, frame)
	}

	v, err := s.child.Eval(ctx, frame)
	if err != nil {
		return data.NA, err
	}
	return s.Extract(ctx, v)
}

// Extract extracts a single logical from v using the installed cast, the cast is replaced by a more
// general one if it does not accept v.
func (s *CastSlot) Extract(ctx *Context, v data.Value) (data.Logical, error) {
	current := s.installed.Load()
	for {
		if current != nil {
			result, ok, err := current.cast.Extract(ctx, v)
			if ok {
				return result, err
			}
		}
		next := SelectCast(current.level(), v, s.policy)
		current = s.install(ctx, current, next, v)
	}
}

// install replaces expected by cast unless a cast of the same level or a more general one
// has been installed in the meantime, it returns the cast that is now installed.
func (s *CastSlot) install(ctx *Context, expected *installedCast, cast LogicalCast, v data.Value) *installedCast {
	replacement := &installedCast{cast: cast}
	for {
		if s.installed.CompareAndSwap(expected, replacement) {
			s.installs.Add(1)
			if ctx.debugCasts {
				ctx.logger.Debug().
					Str(CAST_LEVEL_LOG_FIELD, cast.Level().String()).
					Str(VALUE_KIND_LOG_FIELD, v.Kind().String()).
					Msgf("installed %s", describeCast(cast))
			}
			return replacement
		}
		expected = s.installed.Load()
		if expected.level() >= cast.Level() {
			return expected
		}
	}
}
