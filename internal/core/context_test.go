package core

import (
	"bytes"
	"testing"

	"github.com/macressler/fastr/internal/data"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContextWarnings(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, zerolog.DebugLevel)
	ctx := NewContext(ContextConfig{Logger: &logger})

	ctx.Warn(AdvisoryTruncation, "length %d", 3)
	ctx.Warn(NAsIntroducedByCoercion, "NAs introduced by coercion")

	warnings := ctx.Warnings()
	assert.Equal(t, []Warning{
		{Kind: AdvisoryTruncation, Message: "length 3"},
		{Kind: NAsIntroducedByCoercion, Message: "NAs introduced by coercion"},
	}, warnings)

	//the returned slice is a copy
	warnings[0].Message = ""
	assert.Equal(t, "length 3", ctx.Warnings()[0].Message)

	assert.Contains(t, buf.String(), `"msg":"length 3"`)
	assert.Contains(t, buf.String(), `"`+CTX_ID_LOG_FIELD_NAME+`":"`+ctx.Id().String()+`"`)

	ctx.ClearWarnings()
	assert.Empty(t, ctx.Warnings())
}

func TestCastInstallLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, zerolog.DebugLevel)
	ctx := NewContext(ContextConfig{Logger: &logger, DebugCasts: true})

	slot := NewCastSlot(NewConstant(data.LogicalFalse), OperandPolicy)
	_, err := slot.Eval(ctx, NewFrame(nil))
	if !assert.NoError(t, err) {
		return
	}
	assert.Contains(t, buf.String(), `"`+CAST_LEVEL_LOG_FIELD+`":"vector"`)
}
