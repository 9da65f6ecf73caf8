package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/macressler/fastr/internal/afs"
	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
	"github.com/stretchr/testify/assert"
)

// callBuiltin calls b with constant arguments, argNames[i] is the name of args[i] or "" for a positional argument.
func callBuiltin(ctx *core.Context, b *core.Builtin, argNames []string, args ...data.Value) (data.Value, error) {
	exprs := make([]core.Node, len(args))
	for i, arg := range args {
		exprs[i] = core.NewConstant(arg)
	}
	return core.NewCall(b, data.Syms(argNames...), exprs).Eval(ctx, core.NewFrame(nil))
}

func newScanContext(t *testing.T, files map[string]string, stdin string) (*core.Context, *bytes.Buffer) {
	fls := afs.Memory()
	for path, content := range files {
		if !assert.NoError(t, afs.WriteFile(fls, path, []byte(content))) {
			t.FailNow()
		}
	}

	out := &bytes.Buffer{}
	ctx := core.NewContext(core.ContextConfig{
		Out:        out,
		In:         strings.NewReader(stdin),
		Filesystem: fls,
	})
	return ctx, out
}

func file(path string) data.Value {
	return data.NewStringVector(path)
}

func TestScan(t *testing.T) {

	t.Run("doubles", func(t *testing.T) {
		ctx, out := newScanContext(t, map[string]string{"/data.txt": "1 2\n NA 4.5e1"}, "")

		v, err := callBuiltin(ctx, Scan, []string{""}, file("/data.txt"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "[1] 1 2 NA 45", v.String())
		assert.Equal(t, "Read 4 items\n", out.String())
	})

	t.Run("single item", func(t *testing.T) {
		ctx, out := newScanContext(t, map[string]string{"/data.txt": "7"}, "")

		_, err := callBuiltin(ctx, Scan, []string{""}, file("/data.txt"))
		if assert.NoError(t, err) {
			assert.Equal(t, "Read 1 item\n", out.String())
		}
	})

	t.Run("integers", func(t *testing.T) {
		ctx, _ := newScanContext(t, map[string]string{"/data.txt": "1 NA 3"}, "")

		v, err := callBuiltin(ctx, Scan, []string{"", "what"}, file("/data.txt"), data.NewIntVector())
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, data.IntKind, v.Kind())
		assert.Equal(t, "[1] 1 NA 3", v.String())
	})

	t.Run("unexpected item", func(t *testing.T) {
		ctx, _ := newScanContext(t, map[string]string{"/data.txt": "1 a"}, "")

		_, err := callBuiltin(ctx, Scan, []string{"", "what"}, file("/data.txt"), data.NewIntVector())
		assert.ErrorIs(t, err, core.ErrScanUnexpected)
		assert.ErrorContains(t, err, "expected an integer, got 'a'")
	})

	t.Run("unexpected real", func(t *testing.T) {
		ctx, _ := newScanContext(t, map[string]string{"/data.txt": "1 x"}, "")

		_, err := callBuiltin(ctx, Scan, []string{""}, file("/data.txt"))
		assert.ErrorContains(t, err, "expected a real, got 'x'")
	})

	t.Run("strings", func(t *testing.T) {
		ctx, _ := newScanContext(t, map[string]string{"/data.txt": "a NA b"}, "")

		v, err := callBuiltin(ctx, Scan, []string{"what", "file"}, data.NewStringVector(), file("/data.txt"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, `[1] "a" NA "b"`, v.String())
	})

	t.Run("logicals", func(t *testing.T) {
		ctx, _ := newScanContext(t, map[string]string{"/data.txt": "T false NA"}, "")

		v, err := callBuiltin(ctx, Scan, []string{"", "what"}, file("/data.txt"), data.NewLogicalVector())
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "[1] TRUE FALSE NA", v.String())
	})

	t.Run("nmax and quiet", func(t *testing.T) {
		ctx, out := newScanContext(t, map[string]string{"/data.txt": "1 2 3 4"}, "")

		v, err := callBuiltin(ctx, Scan, []string{"", "nmax", "quiet"}, file("/data.txt"), data.NewIntScalar(2), data.LogicalTrue)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "[1] 1 2", v.String())
		assert.Empty(t, out.String())
	})

	t.Run("NA nmax", func(t *testing.T) {
		ctx, _ := newScanContext(t, map[string]string{"/data.txt": "1 2 3"}, "")

		v, err := callBuiltin(ctx, Scan, []string{"", "nmax", "quiet"}, file("/data.txt"), data.NewStringVector("x"), data.LogicalTrue)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 3, v.Len())

		warnings := ctx.Warnings()
		if assert.Len(t, warnings, 1) {
			assert.Equal(t, core.NAsIntroducedByCoercion, warnings[0].Kind)
		}
	})

	t.Run("gzip file", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := gzip.NewWriter(buf)
		w.Write([]byte("1.5 2.5"))
		w.Close()

		ctx, _ := newScanContext(t, map[string]string{"/data.txt.gz": buf.String()}, "")

		v, err := callBuiltin(ctx, Scan, []string{""}, file("/data.txt.gz"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "[1] 1.5 2.5", v.String())
	})

	t.Run("standard input", func(t *testing.T) {
		ctx, _ := newScanContext(t, nil, "3\n4\n")

		v, err := callBuiltin(ctx, Scan, []string{"quiet"}, data.LogicalTrue)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "[1] 3 4", v.String())
	})

	t.Run("missing file", func(t *testing.T) {
		ctx, _ := newScanContext(t, nil, "")

		_, err := callBuiltin(ctx, Scan, []string{""}, file("/missing.txt"))
		assert.ErrorContains(t, err, "cannot open file '/missing.txt'")
	})

	t.Run("invalid what", func(t *testing.T) {
		ctx, _ := newScanContext(t, nil, "")

		_, err := callBuiltin(ctx, Scan, []string{"what"}, data.Null)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)

		_, err = callBuiltin(ctx, Scan, []string{"what"}, data.NewList())
		assert.ErrorIs(t, err, core.ErrUnsupportedType)
	})

	t.Run("unused argument", func(t *testing.T) {
		ctx, _ := newScanContext(t, nil, "")

		_, err := callBuiltin(ctx, Scan, []string{"", "", "", "", ""},
			file("/a"), data.EmptyDouble, data.NewIntScalar(1), data.LogicalTrue, data.NewStringVector(","))
		assert.ErrorIs(t, err, core.ErrUnusedArguments)
	})
}
