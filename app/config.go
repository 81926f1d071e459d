package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/titanous/json5"

	"github.com/arvens/logpane/app/logging"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	ConfigPath string
	Verbose    bool
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{}

	flag.StringVar(&args.ConfigPath, "config", "logpane.json5", "Path to the JSON5 configuration file.")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose (trace) logging regardless of the configured level.")
	flag.Parse()

	return args
}

// Config holds the runtime configuration. The backend log level and
// the UI display threshold are separate knobs: the former gates what
// the logger accepts, the latter only filters what is shown.
type Config struct {
	MaxLogLen int    `json:"maxLogLen"`
	LogLevel  string `json:"logLevel"`
	UILevel   string `json:"uiLevel"`
	LogFile   string `json:"logFile"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		MaxLogLen: logging.DefaultMaxLen,
		LogLevel:  "info",
		UILevel:   "trace",
		LogFile:   "logpane.log",
	}
}

// LoadConfig reads a JSON5 configuration file, filling unset fields
// with defaults. A missing file is not an error; defaults are used.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json5.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.MaxLogLen <= 0 {
		cfg.MaxLogLen = logging.DefaultMaxLen
	}
	return cfg, nil
}

// Levels resolves the configured level names.
func (c *Config) Levels() (backend, ui logging.LogLevel, err error) {
	backend, err = logging.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid logLevel: %w", err)
	}
	ui, err = logging.ParseLevel(c.UILevel)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid uiLevel: %w", err)
	}
	return backend, ui, nil
}
