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

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/blairtcg/textbuf"
)

func newTestReporter(t *testing.T, o Options) (*Reporter, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := New(&out, o)
	t.Cleanup(func() {
		r.Close()
		if live := r.tracker.Live(); live != 0 {
			t.Errorf("reporter live buffers=%d after Close, want 0", live)
		}
	})
	return r, &out
}

func TestReporter_Text(t *testing.T) {
	r, out := newTestReporter(t, Options{Prefix: "check"})

	r.Info("scenario passed", "name", "pad-insert", "len", 20, "text", "00000Hallo Welt00000")

	got := out.String()
	for _, want := range []string{
		"INFO ",
		"check: ",
		"scenario passed",
		" name=pad-insert",
		" len=20",
		" text=00000Hallo Welt00000",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("line=%q, missing %q", got, want)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("line=%q, want trailing newline", got)
	}
}

func TestReporter_TextQuotesValues(t *testing.T) {
	r, out := newTestReporter(t, Options{})

	r.Warn("odd", "msg", "two words", "eq", "a=b", "float", 0.25)

	got := out.String()
	for _, want := range []string{`msg="two words"`, `eq="a=b"`, "float=0.25"} {
		if !strings.Contains(got, want) {
			t.Fatalf("line=%q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(got, "WARN") {
		t.Fatalf("line=%q, want WARN prefix", got)
	}
}

func TestReporter_LevelFilter(t *testing.T) {
	r, out := newTestReporter(t, Options{Level: WarnLevel})

	r.Debug("hidden")
	r.Info("hidden")
	if out.Len() != 0 {
		t.Fatalf("output=%q, want nothing below warn", out.String())
	}

	r.Error("shown")
	if !strings.Contains(out.String(), "ERRO") {
		t.Fatalf("output=%q, want error line", out.String())
	}
	if r.Enabled(InfoLevel) || !r.Enabled(ErrorLevel) {
		t.Fatalf("Enabled mismatch")
	}
}

func TestReporter_JSON(t *testing.T) {
	r, out := newTestReporter(t, Options{
		Formatter: JSONFormatter,
		Prefix:    "bench",
		Fields:    []any{"run", "r-1"},
	})
	buf := textbuf.NewWithOptions(textbuf.Options{Text: "x\ty", Tracker: textbuf.NewTracker()})
	defer buf.Free()

	r.Info("done \"quoted\"\n", "iterations", 1000, "ok", true, "ratio", 1.5,
		"nan", math.NaN(), "err", errors.New("bad\x01"), "buf", buf)

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	want := map[string]any{
		"level":      "info",
		"prefix":     "bench",
		"msg":        "done \"quoted\"\n",
		"run":        "r-1",
		"iterations": float64(1000),
		"ok":         true,
		"ratio":      1.5,
		"nan":        "NaN",
		"err":        "bad\x01",
		"buf":        "x\ty",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s=%#v, want %#v (line %q)", k, got[k], v, out.String())
		}
	}
}

func TestReporter_OddKeyvalsIgnored(t *testing.T) {
	r, out := newTestReporter(t, Options{})

	r.Info("msg", "dangling")
	if strings.Contains(out.String(), "dangling") {
		t.Fatalf("line=%q, dangling key must be dropped", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"Warn", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"loud", InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}

	text, _ := WarnLevel.MarshalText()
	if string(text) != "warn" {
		t.Fatalf("MarshalText=%q, want warn", text)
	}
	if got := Level(9).String(); got != "Level(9)" {
		t.Fatalf("String=%q, want Level(9)", got)
	}
}

func TestReporter_AsyncKeepsEveryLineInOrder(t *testing.T) {
	tests := []struct {
		name     string
		strategy OverflowStrategy
	}{
		{"sync", OverflowSync},
		{"block", OverflowBlock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A one-line queue overflows on nearly every call.
			r, out := newTestReporter(t, Options{Async: true, BufferSize: 1, OverflowStrategy: tt.strategy})

			const n = 2000
			for i := 0; i < n; i++ {
				r.Info("line", "i", i)
			}
			if err := r.Sync(); err != nil {
				t.Fatalf("Sync: %v", err)
			}
			r.Close()

			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if got := len(lines); got != n {
				t.Fatalf("lines=%d, want %d", got, n)
			}
			for i, line := range lines {
				if want := fmt.Sprintf("i=%d", i); !strings.HasSuffix(line, want) {
					t.Fatalf("line %d=%q, want suffix %q", i, line, want)
				}
			}
			if got := r.Dropped(); got != 0 {
				t.Fatalf("dropped=%d, want 0", got)
			}
			if live := r.tracker.Live(); live != 0 {
				t.Fatalf("live=%d after Close, want 0", live)
			}
		})
	}
}

func TestReporter_AsyncDropCountsLines(t *testing.T) {
	r, out := newTestReporter(t, Options{Async: true, BufferSize: 1, OverflowStrategy: OverflowDrop})

	const n = 100
	for i := 0; i < n; i++ {
		r.Info("line", "i", i)
	}
	r.Close()

	written := int64(strings.Count(out.String(), "\n"))
	if written < 1 {
		t.Fatalf("written=%d, want at least the first line", written)
	}
	if got := written + r.Dropped(); got != n {
		t.Fatalf("written+dropped=%d, want %d", got, n)
	}
}

func TestReporter_SyncWithoutWorker(t *testing.T) {
	r, _ := newTestReporter(t, Options{})

	if err := r.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := r.Dropped(); got != 0 {
		t.Fatalf("dropped=%d, want 0", got)
	}
}
