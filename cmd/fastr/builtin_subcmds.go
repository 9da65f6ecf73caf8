package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macressler/fastr/internal/builtins"
	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
)

var (
	COLROW_BUILTIN_NAMES = map[string]string{
		COLSUMS_SUBCMD:  "colSums",
		COLMEANS_SUBCMD: "colMeans",
		ROWSUMS_SUBCMD:  "rowSums",
		ROWMEANS_SUBCMD: "rowMeans",
	}

	SCAN_WHAT_PROTOTYPES = map[string]data.Value{
		"logical":   data.NewLogicalVector(),
		"integer":   data.NewIntVector(),
		"double":    data.EmptyDouble,
		"complex":   data.NewComplexVector(),
		"character": data.NewStringVector(),
		"raw":       data.NewRawVector(),
	}
)

// RunScan calls the scan builtin, the flags are passed as named arguments.
func RunScan(env *commandEnv, args []string) int {
	flags := newFlagSet(SCAN_SUBCMD, env.errOut)
	var what string
	var nmax int
	var quiet bool

	flags.StringVar(&what, "what", "double", "type of the items: "+strings.Join(SCAN_WHAT_VALUES, ", "))
	flags.IntVar(&nmax, "nmax", -1, "maximum number of items to read, negative values mean no limit")
	flags.BoolVar(&quiet, "quiet", false, "do not print the number of read items")

	if showHelp(flags, args, env.out) {
		return 0
	}
	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	prototype, ok := SCAN_WHAT_PROTOTYPES[what]
	if !ok {
		fmt.Fprintf(env.errOut, "invalid -what value '%s'\n", what)
		return ERROR_STATUS_CODE
	}

	var argNames []*data.Symbol
	var argExprs []core.Node

	addArg := func(name string, v data.Value) {
		argNames = append(argNames, data.Sym(name))
		argExprs = append(argExprs, core.NewConstant(v))
	}

	switch flags.NArg() {
	case 0:
	case 1:
		addArg("file", data.NewStringVector(flags.Arg(0)))
	default:
		fmt.Fprintln(env.errOut, "usage: fastr scan [options] [FILE]")
		return ERROR_STATUS_CODE
	}
	addArg("what", prototype)
	addArg("nmax", data.NewIntScalar(int32(nmax)))
	addArg("quiet", data.NewLogicalScalar(data.LogicalOf(quiet)))

	return env.callBuiltin(builtins.Scan, argNames, argExprs)
}

// RunColRow calls one of the colSums family on the matrix built from the positional arguments.
func RunColRow(env *commandEnv, subcmd string, args []string) int {
	flags := newFlagSet(subcmd, env.errOut)
	var dim string
	var naRM bool
	var dims int

	flags.StringVar(&dim, "dim", "", "dimensions of the array, for example 2x3")
	flags.BoolVar(&naRM, "na-rm", false, "ignore missing values")
	flags.IntVar(&dims, "dims", 1, "number of dimensions regarded as rows")

	if showHelp(flags, args, env.out) {
		return 0
	}
	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	builtin, ok := builtins.Lookup(COLROW_BUILTIN_NAMES[subcmd])
	if !ok {
		fmt.Fprintf(env.errOut, "unknown command '%s'\n", subcmd)
		return ERROR_STATUS_CODE
	}

	dimensions, err := parseDimensions(dim)
	if err != nil {
		fmt.Fprintln(env.errOut, err)
		return ERROR_STATUS_CODE
	}

	values, err := data.ParseLiteral("c(" + strings.Join(flags.Args(), ",") + ")")
	if err != nil {
		return env.printError(err)
	}
	if values.Kind() == data.NullKind {
		values = data.EmptyDouble
	}

	x, err := data.WithDimensions(values, dimensions...)
	if err != nil {
		return env.printError(err)
	}

	argNames := data.Syms("", "na.rm", "dims")
	argExprs := []core.Node{
		core.NewConstant(x),
		core.NewConstant(data.NewLogicalScalar(data.LogicalOf(naRM))),
		core.NewConstant(data.NewIntScalar(int32(dims))),
	}
	return env.callBuiltin(builtin, argNames, argExprs)
}

func (env *commandEnv) callBuiltin(builtin *core.Builtin, argNames []*data.Symbol, argExprs []core.Node) int {
	ctx := env.newContext()
	call := core.NewCall(builtin, argNames, argExprs)

	result, err := call.Eval(ctx, core.NewFrame(nil))
	env.printWarnings(ctx)
	if err != nil {
		return env.printError(err)
	}
	if err := env.printValue(result); err != nil {
		return env.printError(err)
	}
	return 0
}

// parseDimensions parses dimensions such as 2x3 or 2x2x2.
func parseDimensions(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("missing -dim flag")
	}
	var dims []int
	for _, part := range strings.Split(s, "x") {
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid dimensions '%s'", s)
		}
		dims = append(dims, d)
	}
	return dims, nil
}
