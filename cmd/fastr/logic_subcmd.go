package main

import (
	"fmt"

	"github.com/macressler/fastr/internal/core"
	"github.com/macressler/fastr/internal/data"
)

// EvalLogic evaluates 'or' or 'and' on two constants, for example: fastr logic or NA TRUE.
func EvalLogic(env *commandEnv, args []string) int {
	flags := newFlagSet(LOGIC_SUBCMD, env.errOut)
	if showHelp(flags, args, env.out) {
		return 0
	}
	if err := flags.Parse(args); err != nil {
		return ERROR_STATUS_CODE
	}

	if flags.NArg() != 3 {
		fmt.Fprintln(env.errOut, "usage: fastr logic or|and LEFT RIGHT")
		return ERROR_STATUS_CODE
	}

	operands := make([]core.Node, 2)
	for i, text := range flags.Args()[1:] {
		v, err := data.ParseLiteral(text)
		if err != nil {
			return env.printError(err)
		}
		operands[i] = core.NewConstant(v)
	}

	var node core.Node
	switch flags.Arg(0) {
	case "or", "||":
		node = core.NewOr(operands[0], operands[1])
	case "and", "&&":
		node = core.NewAnd(operands[0], operands[1])
	default:
		fmt.Fprintf(env.errOut, "unknown operator '%s', 'or' or 'and' expected\n", flags.Arg(0))
		return ERROR_STATUS_CODE
	}

	ctx := env.newContext()
	result, err := node.Eval(ctx, core.NewFrame(nil))
	env.printWarnings(ctx)
	if err != nil {
		return env.printError(err)
	}
	if err := env.printValue(result); err != nil {
		return env.printError(err)
	}
	return 0
}
