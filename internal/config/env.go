package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// isEnvFlagSet reports whether the variable is set to something else than "", "false" or "0".
func isEnvFlagSet(name string) bool {
	s, ok := os.LookupEnv(name)
	return ok && len(s) != 0 && s != "false" && s != "0"
}

func detectColorSupport() {
	if home, err := os.UserHomeDir(); err == nil {
		if !strings.HasSuffix(home, "/") {
			home += "/"
		}
		USER_HOME = home
	}

	FORCE_COLOR = isEnvFlagSet("FORCE_COLOR")
	NO_COLOR = isEnvFlagSet("NO_COLOR")
	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"
	TERM_256COLOR_CAPABLE = strings.Contains(os.Getenv("TERM"), "256color")

	switch {
	case NO_COLOR:
		SHOULD_COLORIZE = false
	case FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE:
		SHOULD_COLORIZE = true
	default:
		//warnings and errors are written to stderr.
		SHOULD_COLORIZE = termenv.NewOutput(os.Stderr).ColorProfile() != termenv.Ascii
	}
}
