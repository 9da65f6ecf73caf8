package core

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/macressler/fastr/internal/afs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

type ContextConfig struct {
	//if nil the context logs nothing.
	Logger *zerolog.Logger

	Out io.Writer //defaults to io.Discard
	In  io.Reader //defaults to os.Stdin

	//filesystem used to open connections, defaults to the OS filesystem.
	Filesystem afs.Filesystem

	//if true the installation of every cast node is logged at the debug level.
	DebugCasts bool
}

// A Context holds the state of a single evaluation: its output, its filesystem and the
// warnings emitted so far. Tree nodes are shared between contexts, contexts are not shared
// between goroutines.
type Context struct {
	id         ulid.ULID
	logger     zerolog.Logger
	out        io.Writer
	in         io.Reader
	filesystem afs.Filesystem
	debugCasts bool

	warningsLock sync.Mutex
	warnings     []Warning
}

func NewContext(config ContextConfig) *Context {
	ctx := &Context{
		id:         ulid.Make(),
		out:        config.Out,
		in:         config.In,
		filesystem: config.Filesystem,
		debugCasts: config.DebugCasts,
	}

	if config.Logger == nil {
		ctx.logger = zerolog.Nop()
	} else {
		ctx.logger = childLoggerForContext(*config.Logger, ctx.id.String())
	}

	if ctx.out == nil {
		ctx.out = io.Discard
	}
	if ctx.in == nil {
		ctx.in = os.Stdin
	}
	if ctx.filesystem == nil {
		ctx.filesystem = afs.OS()
	}
	return ctx
}

// NewTestContext returns a context with no logging, no output and an in-memory filesystem.
func NewTestContext() *Context {
	return NewContext(ContextConfig{Filesystem: afs.Memory()})
}

func (ctx *Context) Id() ulid.ULID {
	return ctx.id
}

func (ctx *Context) Logger() *zerolog.Logger {
	return &ctx.logger
}

func (ctx *Context) Out() io.Writer {
	return ctx.out
}

func (ctx *Context) In() io.Reader {
	return ctx.in
}

func (ctx *Context) Filesystem() afs.Filesystem {
	return ctx.filesystem
}

// Warn records a non-fatal warning, evaluation continues.
func (ctx *Context) Warn(kind WarningKind, format string, args ...any) {
	w := Warning{Kind: kind, Message: fmt.Sprintf(format, args...)}

	ctx.warningsLock.Lock()
	ctx.warnings = append(ctx.warnings, w)
	ctx.warningsLock.Unlock()

	ctx.logger.Debug().Str(WARNING_KIND_LOG_FIELD, kind.String()).Msg(w.Message)
}

// Warnings returns the warnings recorded since the creation of the context or the last call to ClearWarnings.
func (ctx *Context) Warnings() []Warning {
	ctx.warningsLock.Lock()
	defer ctx.warningsLock.Unlock()
	return slices.Clone(ctx.warnings)
}

func (ctx *Context) ClearWarnings() {
	ctx.warningsLock.Lock()
	defer ctx.warningsLock.Unlock()
	ctx.warnings = nil
}
