package main

import (
	"flag"
	"fmt"
	"io"
	"golang.org/x/exp/slices"
	"strings"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const (
	BIND_SUBCMD                  = "bind"
	LOGIC_SUBCMD                 = "logic"
	SCAN_SUBCMD                  = "scan"
	COLSUMS_SUBCMD               = "colsums"
	COLMEANS_SUBCMD              = "colmeans"
	ROWSUMS_SUBCMD               = "rowsums"
	ROWMEANS_SUBCMD              = "rowmeans"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		BIND_SUBCMD, LOGIC_SUBCMD, SCAN_SUBCMD,
		COLSUMS_SUBCMD, COLMEANS_SUBCMD, ROWSUMS_SUBCMD, ROWMEANS_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{BIND_SUBCMD, "match call arguments (name=value, value or _ for an empty argument) against parameters"},
		{LOGIC_SUBCMD, "evaluate 'or' or 'and' on two constants with short-circuit three-valued logic"},
		{SCAN_SUBCMD, "read whitespace-separated items from a file or from the standard input"},
		{COLSUMS_SUBCMD, "sum the columns of a matrix"},
		{COLMEANS_SUBCMD, "average the columns of a matrix"},
		{ROWSUMS_SUBCMD, "sum the rows of a matrix"},
		{ROWMEANS_SUBCMD, "average the rows of a matrix"},
		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions in the detected rc file (bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	FASTR_CMD_HELP = "commands:\n"

	SCAN_WHAT_VALUES = []string{"logical", "integer", "double", "complex", "character", "raw"}

	colRowFlags = map[string]complete.Predictor{
		"dim":   predict.Set{"2x2", "2x3", "3x2"},
		"dims":  predict.Nothing,
		"na-rm": predict.Nothing,
	}

	cmd = &complete.Command{
		Sub: map[string]*complete.Command{
			BIND_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"params": predict.Nothing,
				},
			},
			LOGIC_SUBCMD: {
				Args: predict.Set{"or", "and", "TRUE", "FALSE", "NA"},
			},
			SCAN_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"what":  predict.Set(SCAN_WHAT_VALUES),
					"nmax":  predict.Nothing,
					"quiet": predict.Nothing,
				},
				Args: predict.Files("*"),
			},
			COLSUMS_SUBCMD:               {Flags: colRowFlags},
			COLMEANS_SUBCMD:              {Flags: colRowFlags},
			ROWSUMS_SUBCMD:               {Flags: colRowFlags},
			ROWMEANS_SUBCMD:              {Flags: colRowFlags},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD:                  {},
		},
	}
)

func init() {
	for _, entry := range SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		FASTR_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	FASTR_CMD_HELP += "\nType `fastr help <command>` to get command-specific help.\n"
}

func newFlagSet(subcommand string, errW io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(subcommand, flag.ContinueOnError)
	flags.SetOutput(errW)
	return flags
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
