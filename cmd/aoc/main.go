// Package main runs the registered puzzle solvers from the command line.
//
//	aoc -day 7              solve inputs/2025/day07.txt
//	aoc -day 7 -input -     read the input from stdin
//	aoc -json               solve every registered day, one JSON line each
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/internal/runner"
	_ "github.com/katalvlaran/advent/y2025"
)

func main() {
	cfg, err := runner.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg.Stdin = os.Stdin

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := runner.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
