package core

import (
	"testing"

	"github.com/macressler/fastr/internal/data"
	"github.com/stretchr/testify/assert"
)

func TestIf(t *testing.T) {
	one := data.NewIntScalar(1)
	two := data.NewIntScalar(2)

	t.Run("branches", func(t *testing.T) {
		testCases := []struct {
			name      string
			condition data.Value
			result    data.Value
		}{
			{"TRUE", data.LogicalTrue, one},
			{"FALSE", data.LogicalFalse, two},
			{"nonzero double", data.NewDoubleScalar(0.1), one},
			{"string", data.NewStringVector("false"), two},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				consequent := &countingNode{value: one}
				alternate := &countingNode{value: two}
				node := NewIf(NewConstant(testCase.condition), consequent, alternate)

				result, err := node.Eval(NewTestContext(), NewFrame(nil))
				if !assert.NoError(t, err) {
					return
				}
				assert.Same(t, testCase.result, result)
				assert.EqualValues(t, 1, consequent.count.Load()+alternate.count.Load())
			})
		}
	})

	t.Run("no else branch", func(t *testing.T) {
		result, err := NewIf(NewConstant(data.LogicalFalse), NewConstant(one), nil).Eval(NewTestContext(), NewFrame(nil))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, data.Null, result)
	})

	t.Run("NA condition", func(t *testing.T) {
		_, err := NewIf(NewConstant(data.LogicalNA), NewConstant(one), NewConstant(two)).Eval(NewTestContext(), NewFrame(nil))
		assert.ErrorIs(t, err, ErrMissingCondition)
	})

	t.Run("uninterpretable condition", func(t *testing.T) {
		_, err := NewIf(NewConstant(data.NewStringVector("maybe")), NewConstant(one), nil).Eval(NewTestContext(), NewFrame(nil))
		assert.ErrorIs(t, err, ErrNotInterpretableAsLogical)
		assert.Equal(t, UnrepresentableConversion, ErrorKindOf(err))
	})

	t.Run("NULL condition", func(t *testing.T) {
		node := NewIf(NewConstant(data.Null), NewConstant(one), nil)
		_, err := node.Eval(NewTestContext(), NewFrame(nil))
		assert.ErrorIs(t, err, ErrLengthZero)
		assert.Equal(t, GenericCastLevel, node.Condition().Level())
	})
}

func TestLogicalOne(t *testing.T) {
	t.Run("NA is a valid result", func(t *testing.T) {
		v, err := NewLogicalOne(NewConstant(data.NewIntScalar(data.IntNA))).Eval(NewTestContext(), NewFrame(nil))
		if !assert.NoError(t, err) {
			return
		}
		assert.Same(t, data.LogicalNA, v)
	})

	t.Run("vector", func(t *testing.T) {
		ctx := NewTestContext()
		node := NewLogicalOne(NewConstant(data.NewDoubleVector(0, 1)))
		l, err := node.EvalLogical(ctx, NewFrame(nil))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, data.False, l)
		assert.Len(t, ctx.Warnings(), 1)
		assert.Equal(t, VectorCastLevel, node.Slot().Level())
	})
}
