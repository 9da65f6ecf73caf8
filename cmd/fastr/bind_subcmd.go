package main

import (
	"fmt"
	"strings"

	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
)

const EMPTY_ARGUMENT = "_"

type bindingOutput struct {
	Params    []string `json:"params"`
	Arguments []string `json:"arguments"`
	Positions []int    `json:"positions"`
	Provided  []string `json:"provided"`
	Overflow  []int    `json:"overflow"`
}

// BindArguments runs the argument binder on the parameters given with -params and on the
// arguments given on the command line.
func BindArguments(env *commandEnv, args []string) int {
	flags := newFlagSet(BIND_SUBCMD, env.errOut)
	var params string
	flags.StringVar(&params, "params", "", "comma-separated parameter names, '...' makes the callable variadic")

	if showHelp(flags, args, env.out) {
		return 0
	}
	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	formals := core.NewFormals(splitList(params)...)

	callArgs := flags.Args()
	argNames := make([]*data.Symbol, len(callArgs))
	hasExpr := make([]bool, len(callArgs))

	for i, arg := range callArgs {
		hasExpr[i] = arg != EMPTY_ARGUMENT
		if name, _, ok := strings.Cut(arg, "="); ok && name != "" {
			argNames[i] = data.Sym(name)
		}
	}

	bound := core.BindArguments(formals.Names, argNames, hasExpr)

	out := bindingOutput{
		Params:    data.NewNames(formals.Names).Strings(),
		Arguments: callArgs,
		Positions: bound.ArgPositions,
		Overflow:  bound.Overflow,
	}
	for i, ok := bound.Provided.NextSet(0); ok; i, ok = bound.Provided.NextSet(i + 1) {
		out.Provided = append(out.Provided, formals.Names[i].Name())
	}

	if env.config.JSONOutput {
		if err := env.printResult(out); err != nil {
			return env.printError(err)
		}
		return 0
	}

	for i, pos := range bound.ArgPositions {
		target := "unbound"
		if pos >= 0 {
			target = formals.Names[pos].Name()
		}
		fmt.Fprintf(env.out, "argument %d (%s) -> %s\n", i+1, callArgs[i], target)
	}
	fmt.Fprintf(env.out, "provided: %s\n", strings.Join(out.Provided, " "))
	if len(bound.Overflow) > 0 {
		fmt.Fprintf(env.out, "overflow: %v\n", bound.Overflow)
		if !formals.Variadic {
			fmt.Fprintln(env.out, "(the callee is not variadic, a call would fail with unused arguments)")
		}
	}
	return 0
}
