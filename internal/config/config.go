// Package config holds the command-line run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

const (
	EnvLogLevel  = "PAGESIM_LOG_LEVEL"
	EnvTraceDB   = "PAGESIM_TRACE_DB"
	EnvOutputDir = "PAGESIM_OUTPUT_DIR"
	EnvQuiet     = "PAGESIM_QUIET"
)

// Config is everything one invocation needs.
type Config struct {
	Policy    buffer.Policy
	Frames    int
	Input     string
	Output    string // empty: derived from Input
	OutputDir string // overrides the directory of a derived Output
	LogLevel  string
	TraceDB   string // empty: no trace
	Quiet     bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Policy:   buffer.PolicyFIFO,
		LogLevel: "INFO",
	}
}

// LoadEnv loads the optional dotenv files then applies PAGESIM_* variables.
func (c *Config) LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToUpper(v)
	}
	if v, ok := os.LookupEnv(EnvTraceDB); ok {
		c.TraceDB = v
	}
	if v, ok := os.LookupEnv(EnvOutputDir); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv(EnvQuiet); ok && v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvQuiet, v, err)
		}
		c.Quiet = quiet
	}
	return nil
}

// Validate checks the simulation parameters.
func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return util.Classify("config", fmt.Errorf("memory size %d: %w", c.Frames, util.ErrInvalidCapacity))
	}
	if !c.Policy.Valid() {
		return util.Classify("config", fmt.Errorf("%w: %v", util.ErrInvalidPolicy, c.Policy))
	}
	if c.Input == "" {
		return errors.New("input file is required")
	}
	return nil
}

// ParseFrames parses the memory size argument.
func ParseFrames(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, util.Classify("config",
			fmt.Errorf("invalid memory size %q, use a positive integer: %w", s, util.ErrInvalidCapacity))
	}
	return n, nil
}
