package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/puzzle"
)

// Result is one solved problem as printed by Run.
type Result struct {
	Year    int           `json:"year"`
	Day     int           `json:"day"`
	Name    string        `json:"name"`
	PartOne *int64        `json:"part_one,omitempty"`
	PartTwo *int64        `json:"part_two,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// String renders r as "2025 day 01 (Secret Entrance): part one = 3, part two = 6".
func (r Result) String() string {
	var parts []string
	if r.PartOne != nil {
		parts = append(parts, "part one = "+strconv.FormatInt(*r.PartOne, 10))
	}
	if r.PartTwo != nil {
		parts = append(parts, "part two = "+strconv.FormatInt(*r.PartTwo, 10))
	}
	if len(parts) == 0 {
		parts = append(parts, "no answers")
	}
	return fmt.Sprintf("%d day %02d (%s): %s", r.Year, r.Day, r.Name, strings.Join(parts, ", "))
}

// Run executes the configured problems, writing results to out and logs to errOut.
// When every day runs, a failing day is logged and the run moves on; the
// returned error then wraps ErrFailed. A single selected day returns its error.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	log, err := config.NewLogger(cfg.LogLevel, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	r := &runner{cfg: cfg, out: out, log: log}
	return r.run(ctx)
}

type runner struct {
	cfg Config
	out io.Writer
	log *zap.SugaredLogger
}

func (r *runner) run(ctx context.Context) error {
	problems, err := r.selectProblems()
	if err != nil {
		return err
	}
	var failed error
	for _, p := range problems {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.solve(p)
		if err != nil {
			err = fmt.Errorf("%d day %02d: %w", p.Year, p.Day, err)
			if r.cfg.Day != 0 {
				return err
			}
			r.log.Warnw("problem failed", "year", p.Year, "day", p.Day, "error", err)
			failed = multierr.Append(failed, err)
			continue
		}
		if err := r.print(res); err != nil {
			return err
		}
	}
	if failed != nil {
		return fmt.Errorf("%w (%d): %w", ErrFailed, len(multierr.Errors(failed)), failed)
	}
	return nil
}

func (r *runner) selectProblems() ([]puzzle.Problem, error) {
	if r.cfg.Day != 0 {
		p, err := puzzle.Lookup(r.cfg.Year, r.cfg.Day)
		if err != nil {
			return nil, err
		}
		return []puzzle.Problem{p}, nil
	}
	problems := puzzle.Problems(r.cfg.Year)
	if len(problems) == 0 {
		return nil, fmt.Errorf("%w for %d", ErrNoProblems, r.cfg.Year)
	}
	return problems, nil
}

func (r *runner) solve(p puzzle.Problem) (Result, error) {
	input, err := r.readInput(p)
	if err != nil {
		return Result{}, err
	}
	res := Result{Year: p.Year, Day: p.Day, Name: p.Name}
	start := time.Now()

	if r.cfg.Part != 2 {
		v, err := p.Solver.PartOne(input)
		if err != nil {
			return Result{}, fmt.Errorf("part one: %w", err)
		}
		res.PartOne = &v
	}
	if r.cfg.Part != 1 {
		v, err := p.Solver.PartTwo(input)
		switch {
		case errors.Is(err, puzzle.ErrNoSecondPart):
			r.log.Debugw("no second part", "year", p.Year, "day", p.Day)
		case err != nil:
			return Result{}, fmt.Errorf("part two: %w", err)
		default:
			res.PartTwo = &v
		}
	}

	res.Elapsed = time.Since(start)
	r.log.Debugw("solved", "year", p.Year, "day", p.Day, "elapsed", res.Elapsed)
	return res, nil
}

// InputPath returns <dir>/<year>/dayNN.txt.
func InputPath(dir string, year, day int) string {
	return filepath.Join(dir, strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))
}

func (r *runner) readInput(p puzzle.Problem) (string, error) {
	if r.cfg.Input == StdinPath {
		in := r.cfg.Stdin
		if in == nil {
			in = os.Stdin
		}
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	path := r.cfg.Input
	if path == "" {
		path = InputPath(r.cfg.InputDir, p.Year, p.Day)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func (r *runner) print(res Result) error {
	if r.cfg.JSON {
		return json.NewEncoder(r.out).Encode(res)
	}
	_, err := fmt.Fprintln(r.out, res.String())
	return err
}
