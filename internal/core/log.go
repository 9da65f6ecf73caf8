package core

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	CTX_ID_LOG_FIELD_NAME    = "ctx"
	CAST_LEVEL_LOG_FIELD     = "castLevel"
	VALUE_KIND_LOG_FIELD     = "kind"
	WARNING_KIND_LOG_FIELD   = "warning"
	DEFAULT_LOG_LEVEL        = zerolog.InfoLevel
	DEFAULT_DEBUG_LOG_LEVEL  = zerolog.DebugLevel
	DEFAULT_LOG_TIME_PRECISE = false
)

func init() {
	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

// NewLogger creates a logger writing JSON lines to w, a nil writer yields a no-op logger.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// childLoggerForContext returns a copy of logger that tags every event with the id of the context.
func childLoggerForContext(logger zerolog.Logger, ctxId string) zerolog.Logger {
	return logger.With().Str(CTX_ID_LOG_FIELD_NAME, ctxId).Logger()
}
