package main

import (
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
	"github.com/muesli/termenv"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	WARNING_COLOR = "3" //ANSI yellow
	ERROR_COLOR   = "1" //ANSI red
)

func (env *commandEnv) termOutput(w io.Writer) *termenv.Output {
	if env.config.ShouldColorize() {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
	}
	return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
}

// printResult prints v as text or JSON depending on the configuration.
func (env *commandEnv) printResult(v any) error {
	if env.config.JSONOutput {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(env.out, "%s\n", b)
		return err
	}
	_, err := fmt.Fprintln(env.out, v)
	return err
}

func (env *commandEnv) printValue(v data.Value) error {
	if env.config.JSONOutput {
		return env.printResult(valueToJSON(v))
	}
	return env.printResult(v.String())
}

func (env *commandEnv) printWarnings(ctx *core.Context) {
	output := env.termOutput(env.errOut)
	for _, w := range ctx.Warnings() {
		msg := output.String("Warning: " + w.Message).Foreground(output.Color(WARNING_COLOR))
		fmt.Fprintln(env.errOut, msg)
	}
}

func (env *commandEnv) printError(err error) int {
	output := env.termOutput(env.errOut)
	msg := fmt.Sprintf("Error (%s): %s", core.ErrorKindOf(err), err)
	fmt.Fprintln(env.errOut, output.String(msg).Foreground(output.Color(ERROR_COLOR)))
	return ERROR_STATUS_CODE
}

// valueToJSON returns a JSON-friendly representation of v, missing elements are nulls.
func valueToJSON(v data.Value) map[string]any {
	result := map[string]any{"type": v.Kind().String()}

	elements := make([]any, v.Len())
	for i := range elements {
		if v.IsNA(i) && v.Kind() != data.ListKind {
			continue
		}
		switch vec := v.(type) {
		case *data.LogicalVector:
			elements[i] = vec.At(i) == data.True
		case *data.IntVector:
			elements[i] = vec.At(i)
		case *data.DoubleVector:
			d := vec.At(i)
			if math.IsInf(d, 0) {
				elements[i] = data.NewDoubleScalar(d).String()
			} else {
				elements[i] = d
			}
		case *data.ComplexVector:
			elements[i] = []float64{real(vec.At(i)), imag(vec.At(i))}
		case *data.RawVector:
			elements[i] = vec.At(i)
		case *data.StringVector:
			elements[i] = vec.At(i)
		case *data.List:
			elements[i] = valueToJSON(vec.At(i))
		}
	}
	result["values"] = elements

	if names := v.Names(); names != nil {
		result["names"] = names.Strings()
	}
	if dims := v.Dimensions(); dims != nil {
		result["dim"] = dims
	}
	return result
}
