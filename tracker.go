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

package textbuf

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sys/cpu"
)

var _defaultTracker = NewTracker()

// Default returns the process-wide Tracker.
//
// Buffers constructed without an explicit Options.Tracker report here. Tests
// that assert exact counts should inject their own Tracker instead.
func Default() *Tracker {
	return _defaultTracker
}

// Tracker counts TextBuffer lifecycle events for leak diagnostics.
//
// Every constructor increments the total and live counts, and Free decrements
// live. Storage swaps inside a buffer only bump the realloc count, so once
// every instance has been freed Live reads zero. Counting is atomic, which
// keeps trackers shared between goroutines consistent, but that does not make
// the buffers themselves safe for concurrent use.
type Tracker struct {
	total atomic.Int64
	_     cpu.CacheLinePad

	live atomic.Int64
	_    cpu.CacheLinePad

	reallocs atomic.Int64
}

// NewTracker returns an isolated Tracker with all counts at zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Stats is a point-in-time snapshot of a Tracker.
type Stats struct {
	Total    int64
	Live     int64
	Reallocs int64
}

// Total returns the number of instances ever constructed.
func (t *Tracker) Total() int64 { return t.total.Load() }

// Live returns the number of instances constructed but not yet freed.
func (t *Tracker) Live() int64 { return t.live.Load() }

// Reallocs returns the number of storage reallocations performed by
// EnsureCapacity and ShrinkToFit.
func (t *Tracker) Reallocs() int64 { return t.reallocs.Load() }

// Stats returns a snapshot of all counts.
func (t *Tracker) Stats() Stats {
	return Stats{
		Total:    t.total.Load(),
		Live:     t.live.Load(),
		Reallocs: t.reallocs.Load(),
	}
}

func (t *Tracker) constructed() {
	t.total.Add(1)
	t.live.Add(1)
}

func (t *Tracker) released() {
	t.live.Add(-1)
}

func (t *Tracker) reallocated() {
	t.reallocs.Add(1)
}

// RegisterMetrics publishes the Tracker's counts as observable instruments on
// meter:
//
//	textbuf.instances.total  counter
//	textbuf.instances.live   up-down counter
//	textbuf.storage.reallocs counter
//
// Unregister the returned Registration to stop reporting.
func (t *Tracker) RegisterMetrics(meter metric.Meter) (metric.Registration, error) {
	total, err := meter.Int64ObservableCounter("textbuf.instances.total",
		metric.WithDescription("TextBuffer instances ever constructed."),
		metric.WithUnit("{instance}"))
	if err != nil {
		return nil, err
	}
	live, err := meter.Int64ObservableUpDownCounter("textbuf.instances.live",
		metric.WithDescription("TextBuffer instances constructed but not yet freed."),
		metric.WithUnit("{instance}"))
	if err != nil {
		return nil, err
	}
	reallocs, err := meter.Int64ObservableCounter("textbuf.storage.reallocs",
		metric.WithDescription("Storage reallocations performed by TextBuffer instances."),
		metric.WithUnit("{realloc}"))
	if err != nil {
		return nil, err
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := t.Stats()
		o.ObserveInt64(total, s.Total)
		o.ObserveInt64(live, s.Live)
		o.ObserveInt64(reallocs, s.Reallocs)
		return nil
	}, total, live, reallocs)
}
