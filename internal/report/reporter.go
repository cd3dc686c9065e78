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

// Package report writes leveled, structured result lines for the textbuf
// command-line tools.
package report

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/blairtcg/textbuf"
)

// Options configures a new Reporter.
type Options struct {
	// Level sets the minimum priority. Lines below it are discarded.
	Level Level

	// Formatter selects text or JSON output. It defaults to TextFormatter.
	Formatter Formatter

	// Prefix is written in front of every message.
	Prefix string

	// Fields attaches key-value pairs to every line.
	Fields []any

	// Styles overrides the default text styling.
	Styles *Styles

	// Async hands finished lines to a background goroutine instead of
	// writing them on the caller's goroutine. Call Close to flush.
	Async bool

	// BufferSize sets the async queue length in lines. It defaults to 1024.
	BufferSize int

	// OverflowStrategy dictates behavior when the async queue fills up. It
	// defaults to OverflowSync.
	OverflowStrategy OverflowStrategy
}

// Reporter writes one line per call. All methods are safe for concurrent use.
type Reporter struct {
	mu        sync.Mutex
	out       io.Writer
	level     Level
	formatter Formatter
	prefix    string
	fields    []any
	styles    *Styles
	worker    *worker
	closed    bool

	// line and val are reused across calls. They report to a private tracker
	// so the Reporter never shows up in a caller's leak accounting.
	tracker *textbuf.Tracker
	line    *textbuf.TextBuffer
	val     *textbuf.TextBuffer
}

// New constructs a Reporter writing to w. A nil w defaults to standard error.
func New(w io.Writer, o Options) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	if o.Styles == nil {
		o.Styles = DefaultStyles(lipgloss.NewRenderer(w))
	}

	tr := textbuf.NewTracker()
	r := &Reporter{
		out:       w,
		level:     o.Level,
		formatter: o.Formatter,
		prefix:    o.Prefix,
		fields:    o.Fields,
		styles:    o.Styles,
		tracker:   tr,
		line:      textbuf.NewWithOptions(textbuf.Options{Capacity: 256, Tracker: tr}),
		val:       textbuf.NewWithOptions(textbuf.Options{Capacity: 64, Tracker: tr}),
	}
	if o.Async {
		size := o.BufferSize
		if size <= 0 {
			size = 1024
		}
		r.worker = newWorker(w, size, o.OverflowStrategy)
	}
	return r
}

// Enabled reports whether lines at level would be written.
func (r *Reporter) Enabled(level Level) bool {
	return level >= r.level
}

// Log writes msg with loosely typed key-value pairs at level.
func (r *Reporter) Log(level Level, msg string, keyvals ...any) {
	if !r.Enabled(level) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kv := keyvals
	if len(r.fields) > 0 {
		kv = make([]any, 0, len(r.fields)+len(keyvals))
		kv = append(kv, r.fields...)
		kv = append(kv, keyvals...)
	}

	r.line.Reset()
	switch r.formatter {
	case JSONFormatter:
		formatJSON(r.line, r.val, level, r.prefix, msg, kv)
	default:
		formatText(r.line, r.val, r.styles, level, r.prefix, msg, kv)
	}
	if r.worker != nil {
		r.worker.submit(r.line.Clone())
		return
	}
	r.out.Write(r.line.Bytes())
}

// Debug writes msg at DebugLevel.
func (r *Reporter) Debug(msg string, keyvals ...any) { r.Log(DebugLevel, msg, keyvals...) }

// Info writes msg at InfoLevel.
func (r *Reporter) Info(msg string, keyvals ...any) { r.Log(InfoLevel, msg, keyvals...) }

// Warn writes msg at WarnLevel.
func (r *Reporter) Warn(msg string, keyvals ...any) { r.Log(WarnLevel, msg, keyvals...) }

// Error writes msg at ErrorLevel.
func (r *Reporter) Error(msg string, keyvals ...any) { r.Log(ErrorLevel, msg, keyvals...) }

// Sync blocks until every line logged so far reached the output. It is a
// no-op for synchronous Reporters.
func (r *Reporter) Sync() error {
	if r.worker == nil {
		return nil
	}
	return r.worker.flush()
}

// Dropped returns how many lines an async Reporter with OverflowDrop
// discarded because its queue was full.
func (r *Reporter) Dropped() int64 {
	if r.worker == nil {
		return 0
	}
	return r.worker.dropped.Load()
}

// Close flushes pending lines and releases the Reporter's line buffers. The
// Reporter must not be used afterwards. Calling Close twice is safe.
func (r *Reporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	if r.worker != nil {
		r.worker.stop()
	}
	r.line.Free()
	r.val.Free()
}
