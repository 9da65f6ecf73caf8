package core

import (
	"sync"
	"testing"

	"github.com/macressler/fastr/internal/data"
	"github.com/stretchr/testify/assert"
)

func TestSelectCast(t *testing.T) {
	testCases := []struct {
		name      string
		installed CastLevel
		value     data.Value
		level     CastLevel
	}{
		{"integer scalar", NoCastLevel, data.NewIntScalar(1), ScalarCastLevel},
		{"double scalar", NoCastLevel, data.NewDoubleScalar(1), ScalarCastLevel},
		{"logical scalar", NoCastLevel, data.LogicalTrue, VectorCastLevel},
		{"integer vector", NoCastLevel, data.NewIntVector(1, 2), VectorCastLevel},
		{"double scalar above scalar level", ScalarCastLevel, data.NewDoubleScalar(1), VectorCastLevel},
		{"string", NoCastLevel, data.NewStringVector("a"), GenericCastLevel},
		{"list", VectorCastLevel, data.NewList(), GenericCastLevel},
		{"integer vector above vector level", VectorCastLevel, data.NewIntVector(1, 2), GenericCastLevel},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cast := SelectCast(testCase.installed, testCase.value, OperandPolicy)
			assert.Equal(t, testCase.level, cast.Level())

			_, ok, _ := cast.Extract(NewTestContext(), testCase.value)
			assert.True(t, ok)
		})
	}

	t.Run("named integer scalar is not a scalar", func(t *testing.T) {
		v := data.NewIntScalar(1).WithNames(data.NewNames(data.Syms("a")))
		assert.Equal(t, VectorCastLevel, SelectCast(NoCastLevel, v, OperandPolicy).Level())
	})
}

func TestCastSlot(t *testing.T) {

	t.Run("not evaluated", func(t *testing.T) {
		slot := NewCastSlot(NewConstant(data.LogicalTrue), OperandPolicy)
		assert.Equal(t, NoCastLevel, slot.Level())
		assert.Zero(t, slot.Installs())
	})

	t.Run("same shape does not install a cast again", func(t *testing.T) {
		ctx := NewTestContext()
		slot := NewCastSlot(NewConstant(data.NewIntScalar(3)), OperandPolicy)

		for i := 0; i < 3; i++ {
			result, err := slot.Eval(ctx, NewFrame(nil))
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, data.True, result)
		}
		assert.Equal(t, ScalarCastLevel, slot.Level())
		assert.Equal(t, 1, slot.Installs())
	})

	t.Run("monotonic replacement", func(t *testing.T) {
		ctx := NewTestContext()
		x := data.Sym("x")
		frame := NewFrame(nil)
		slot := NewCastSlot(NewVar("x"), ConditionPolicy)

		steps := []struct {
			value  data.Value
			result data.Logical
			err    error
			level  CastLevel
		}{
			{data.NewIntScalar(0), data.False, nil, ScalarCastLevel},
			{data.NewDoubleScalar(2.5), data.True, nil, VectorCastLevel},
			{data.NewList(data.LogicalTrue), data.NA, ErrInvalidOperandType, GenericCastLevel},
			{data.NewStringVector("abc"), data.NA, ErrNotInterpretableAsLogical, GenericCastLevel},
			{data.NewIntScalar(1), data.True, nil, GenericCastLevel},
			{data.NewStringVector("T"), data.True, nil, GenericCastLevel},
		}

		previous := NoCastLevel
		for _, step := range steps {
			frame.Set(x, step.value)
			result, err := slot.Eval(ctx, frame)

			if step.err == nil {
				assert.NoError(t, err)
				assert.Equal(t, step.result, result)
			} else {
				assert.ErrorIs(t, err, step.err)
			}
			assert.Equal(t, step.level, slot.Level())
			assert.GreaterOrEqual(t, slot.Level(), previous)
			previous = slot.Level()
		}

		assert.Equal(t, 3, slot.Installs())
	})

	t.Run("errors of the child are returned", func(t *testing.T) {
		ctx := NewTestContext()
		slot := NewCastSlot(NewVar("undefined"), OperandPolicy)
		_, err := slot.Eval(ctx, NewFrame(nil))
		assert.ErrorIs(t, err, ErrUnboundVariable)
		assert.Equal(t, NoCastLevel, slot.Level())
	})

	t.Run("concurrent evaluations", func(t *testing.T) {
		values := []data.Value{
			data.NewIntScalar(1),
			data.NewDoubleScalar(0),
			data.NewLogicalVector(data.True, data.False),
			data.NewIntVector(0, 1),
			data.NewComplexVector(1i),
		}

		x := data.Sym("x")
		slot := NewCastSlot(NewVar("x"), OperandPolicy)

		wg := sync.WaitGroup{}
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ctx := NewTestContext()
				frame := NewFrame(nil)

				previous := NoCastLevel
				for j := 0; j < 50; j++ {
					frame.Set(x, values[(i+j)%len(values)])
					_, err := slot.Eval(ctx, frame)
					assert.NoError(t, err)

					level := slot.Level()
					assert.GreaterOrEqual(t, level, previous)
					previous = level
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, GenericCastLevel, slot.Level())
		assert.LessOrEqual(t, slot.Installs(), 3)
	})
}
