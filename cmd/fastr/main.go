package main

import (
	"fmt"
	"io"
	"os"
	"golang.org/x/exp/slices"
	"unicode"

	"github.com/macressler/fastr/internal/config"
	"github.com/macressler/fastr/internal/core"
	"github.com/posener/complete/v2/install"
	"github.com/rs/zerolog"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "fastr"
)

func main() {
	//handle completions
	cmd.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) < 2 {
		fmt.Fprint(outW, FASTR_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	mainSubCommand := args[1]
	mainSubCommandArgs := args[2:]

	//if the command has the shape help <subcommand> ... we modify the arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" && unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	switch mainSubCommand {
	case HELP_SUBCMD, "--help", "-h":
		fmt.Fprint(outW, FASTR_CMD_HELP)
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		if err := install.Install(COMMAND_NAME); err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		if err := install.Uninstall(COMMAND_NAME); err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	}

	if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'\n", mainSubCommand)
		fmt.Fprint(errW, FASTR_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	env, err := newCommandEnv(cfg, inR, outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case BIND_SUBCMD:
		return BindArguments(env, mainSubCommandArgs)
	case LOGIC_SUBCMD:
		return EvalLogic(env, mainSubCommandArgs)
	case SCAN_SUBCMD:
		return RunScan(env, mainSubCommandArgs)
	default:
		return RunColRow(env, mainSubCommand, mainSubCommandArgs)
	}
}

// commandEnv holds what sub-commands need to create evaluation contexts and print results.
type commandEnv struct {
	config config.Config
	logger zerolog.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newCommandEnv(cfg config.Config, inR io.Reader, outW, errW io.Writer) (*commandEnv, error) {
	level, err := cfg.ZerologLevel()
	if err != nil {
		return nil, err
	}

	consoleWriter := zerolog.ConsoleWriter{Out: errW, NoColor: !cfg.ShouldColorize()}
	logger := core.NewLogger(consoleWriter, level)

	return &commandEnv{
		config: cfg,
		logger: logger,
		in:     inR,
		out:    outW,
		errOut: errW,
	}, nil
}

func (env *commandEnv) newContext() *core.Context {
	return core.NewContext(core.ContextConfig{
		Logger:     &env.logger,
		Out:        env.out,
		In:         env.in,
		DebugCasts: env.config.DebugCasts,
	})
}
