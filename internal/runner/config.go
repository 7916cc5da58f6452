// Package runner wires the puzzle registry to the command line: it picks the
// problems to run, loads their inputs and prints the answers.
package runner

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/advent/internal/config"
)

var (
	// ErrInvalidFlag reports a flag value outside its allowed range.
	ErrInvalidFlag = errors.New("runner: invalid flag")

	// ErrNoProblems is returned when the selected year has nothing registered.
	ErrNoProblems = errors.New("runner: no problems registered")

	// ErrFailed summarises a run in which at least one problem failed.
	ErrFailed = errors.New("runner: some problems failed")
)

// StdinPath selects standard input as the puzzle input.
const StdinPath = "-"

// envConfig holds the environment defaults the flags may override.
type envConfig struct {
	InputDir string `env:"AOC_INPUT_DIR" envDefault:"inputs"`
	Year     int    `env:"AOC_YEAR" envDefault:"2025"`
	LogLevel string `env:"AOC_LOG_LEVEL" envDefault:"info"`
}

// Config holds runner configuration.
type Config struct {
	Year     int
	Day      int // 0 runs every registered day
	Part     int // 0 runs both parts
	Input    string
	InputDir string
	JSON     bool
	Timeout  time.Duration
	LogLevel string

	// Stdin is read when Input is StdinPath.
	Stdin io.Reader
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var ec envConfig
	if err := config.ParseEnv(&ec); err != nil {
		return Config{}, err
	}
	return parseFlags(fs, args, ec)
}

func parseFlags(fs *flag.FlagSet, args []string, ec envConfig) (Config, error) {
	cfg := Config{}
	fs.IntVar(&cfg.Year, "year", ec.Year, "event year (env AOC_YEAR)")
	fs.IntVar(&cfg.Day, "day", 0, "day to run, 1-25 (default: all registered days)")
	fs.IntVar(&cfg.Part, "part", 0, "part to run, 1 or 2 (default: both)")
	fs.StringVar(&cfg.Input, "input", "", "input file for a single day, - for stdin")
	fs.StringVar(&cfg.InputDir, "input-dir", ec.InputDir, "directory holding <year>/dayNN.txt (env AOC_INPUT_DIR)")
	fs.BoolVar(&cfg.JSON, "json", false, "print results as JSON lines")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "stop starting new problems after this long (0 = no limit)")
	fs.StringVar(&cfg.LogLevel, "log-level", ec.LogLevel, "debug, info, warn or error (env AOC_LOG_LEVEL)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Day < 0 || c.Day > 25:
		return fmt.Errorf("%w: -day %d outside 0-25", ErrInvalidFlag, c.Day)
	case c.Part < 0 || c.Part > 2:
		return fmt.Errorf("%w: -part %d must be 0, 1 or 2", ErrInvalidFlag, c.Part)
	case c.Input != "" && c.Day == 0:
		return fmt.Errorf("%w: -input needs -day", ErrInvalidFlag)
	case c.Timeout < 0:
		return fmt.Errorf("%w: -timeout %s is negative", ErrInvalidFlag, c.Timeout)
	}
	return nil
}
