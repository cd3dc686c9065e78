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
	"time"

	"github.com/blairtcg/textbuf"
)

type benchResult struct {
	Iterations int
	Elapsed    time.Duration
	Len        int
	Capacity   int
	Reallocs   int64
}

func (r benchResult) nsPerOp() int64 {
	return r.Elapsed.Nanoseconds() / int64(r.Iterations)
}

// runBench inserts payload at the front of a single buffer and removes every
// occurrence again, iterations times. Growth stops once the capacity covers
// base plus one payload, so the steady state does not reallocate.
func runBench(tr *textbuf.Tracker, base, payload string, iterations int) benchResult {
	b := textbuf.NewWithOptions(textbuf.Options{Text: base, Tracker: tr})
	defer b.Free()

	reallocs := tr.Reallocs()
	start := time.Now()
	for i := 0; i < iterations; i++ {
		b.Insert(0, payload)
		b.RemoveAll(payload)
	}
	elapsed := time.Since(start)

	return benchResult{
		Iterations: iterations,
		Elapsed:    elapsed,
		Len:        b.Len(),
		Capacity:   b.Capacity(),
		Reallocs:   tr.Reallocs() - reallocs,
	}
}
