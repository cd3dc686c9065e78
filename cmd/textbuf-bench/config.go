// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blairtcg/textbuf/internal/report"
)

const (
	modeBench = "bench"
	modeCheck = "check"
)

// config holds the harness settings. Environment variables provide the
// defaults and command-line flags override them.
type config struct {
	Mode       string
	Iterations int
	Payload    string
	Level      report.Level
	Format     report.Formatter
	Async      bool
}

// loadConfig reads TEXTBUF_* variables through getenv and then parses args.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (*config, error) {
	iterations, err := envInt(getenv, "TEXTBUF_ITERATIONS", 100000)
	if err != nil {
		return nil, err
	}

	async, err := envBool(getenv, "TEXTBUF_ASYNC", false)
	if err != nil {
		return nil, err
	}

	var (
		cfg    config
		level  string
		format string
	)
	fs := flag.NewFlagSet("textbuf-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Mode, "mode", getEnv(getenv, "TEXTBUF_MODE", modeBench), "run mode: bench or check")
	fs.IntVar(&cfg.Iterations, "iterations", iterations, "insert/remove rounds in bench mode")
	fs.StringVar(&cfg.Payload, "payload", getEnv(getenv, "TEXTBUF_PAYLOAD", "the quick brown fox "), "text inserted and removed each round")
	fs.StringVar(&level, "level", getEnv(getenv, "TEXTBUF_LEVEL", "info"), "minimum report level")
	fs.StringVar(&format, "format", getEnv(getenv, "TEXTBUF_FORMAT", "text"), "report format: text or json")
	fs.BoolVar(&cfg.Async, "async", async, "write report lines from a background goroutine")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Level, err = report.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("-level: %w", err)
	}
	if cfg.Format, err = parseFormat(format); err != nil {
		return nil, fmt.Errorf("-format: %w", err)
	}

	switch cfg.Mode {
	case modeBench, modeCheck:
	default:
		return nil, fmt.Errorf("-mode: unknown mode %q", cfg.Mode)
	}
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("-iterations: must be positive, got %d", cfg.Iterations)
	}
	if cfg.Payload == "" {
		return nil, errors.New("-payload: must not be empty")
	}
	return &cfg, nil
}

func parseFormat(s string) (report.Formatter, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return report.TextFormatter, nil
	case "json":
		return report.JSONFormatter, nil
	default:
		return report.TextFormatter, fmt.Errorf("unknown format %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(getenv func(string) string, key, defaultValue string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(getenv func(string) string, key string, defaultValue int) (int, error) {
	v := getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(getenv func(string) string, key string, defaultValue bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
