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

// Command textbuf-bench exercises the textbuf package.
//
// In check mode it runs the behavioral self-checks and exits non-zero on any
// failure. In bench mode it times an Insert plus RemoveAll loop on a single
// buffer. Both modes finish by reporting the instance counters collected
// through OpenTelemetry.
//
// Settings come from flags, TEXTBUF_* environment variables and an optional
// .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/blairtcg/textbuf"
	"github.com/blairtcg/textbuf/internal/report"
)

const (
	meterName = "github.com/blairtcg/textbuf"
	benchBase = "Lorem ipsum dolor sit amet"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, getenv, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	rep := report.New(stdout, report.Options{
		Level:     cfg.Level,
		Formatter: cfg.Format,
		Prefix:    cfg.Mode,
		Async:     cfg.Async,
		Fields:    []any{"run", uuid.NewString()},
	})
	defer rep.Close()

	tr := textbuf.NewTracker()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		if err := provider.Shutdown(ctx); err != nil {
			rep.Warn("meter provider shutdown", "err", err)
		}
	}()

	reg, err := tr.RegisterMetrics(provider.Meter(meterName))
	if err != nil {
		rep.Error("register metrics", "err", err)
		return 1
	}
	defer reg.Unregister()

	code := 0
	switch cfg.Mode {
	case modeCheck:
		if failed := runChecks(rep, tr); failed > 0 {
			rep.Error("checks failed", "failed", failed)
			code = 1
		}
	case modeBench:
		res := runBench(tr, benchBase, cfg.Payload, cfg.Iterations)
		rep.Info("bench finished",
			"iterations", res.Iterations,
			"elapsed", res.Elapsed,
			"ns/op", res.nsPerOp(),
			"len", res.Len,
			"cap", res.Capacity,
			"grows", res.Reallocs,
		)
	}

	if err := reportMetrics(ctx, rep, reader); err != nil {
		rep.Error("collect metrics", "err", err)
		code = 1
	}
	if live := tr.Live(); live != 0 {
		rep.Error("buffers leaked", "live", live)
		code = 1
	}
	return code
}

// reportMetrics collects once from reader and logs every int64 sum.
func reportMetrics(ctx context.Context, rep *report.Reporter, reader *sdkmetric.ManualReader) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				rep.Info("metric", "name", m.Name, "value", dp.Value)
			}
		}
	}
	return nil
}
