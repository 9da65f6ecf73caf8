package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

const (
	APP_NAME = "fastr"

	CONFIG_FILE_RELPATH = APP_NAME + "/config.yaml"
	CONFIG_PATH_ENV_VAR = "FASTR_CONFIG"

	DEFAULT_LOG_LEVEL = "warn"
)

var (
	USER_HOME             string
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	NO_COLOR              bool
	TERM_256COLOR_CAPABLE bool
	SHOULD_COLORIZE       bool

	ErrInvalidLogLevel = errors.New("invalid log level")
)

func init() {
	detectColorSupport()
}

// Config is the runtime configuration read from a YAML file.
type Config struct {
	LogLevel   string `yaml:"log-level"`
	DebugCasts bool   `yaml:"debug-casts"`

	//if not set colors are enabled depending on the terminal.
	Color *bool `yaml:"color"`

	JSONOutput bool `yaml:"json-output"`
}

func Default() Config {
	return Config{LogLevel: DEFAULT_LOG_LEVEL}
}

// Load reads the configuration file at path. If path is empty the file named by $FASTR_CONFIG is read,
// otherwise the file is searched in the XDG config directories. The default configuration is returned
// if no file is found.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(CONFIG_PATH_ENV_VAR)
	}
	if path == "" {
		found, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}
	return Parse(content)
}

// Parse parses a YAML configuration, missing fields keep their default value.
func Parse(content []byte) (Config, error) {
	config := Default()
	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := config.ZerologLevel(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) ZerologLevel() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

func (c Config) ShouldColorize() bool {
	if c.Color != nil {
		return *c.Color
	}
	return SHOULD_COLORIZE
}
