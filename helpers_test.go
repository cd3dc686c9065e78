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

import "testing"

// newTestTracker returns an isolated Tracker that fails the test if any
// instance it counted is still live once the test's cleanups have run.
func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := NewTracker()
	t.Cleanup(func() {
		if live := tr.Live(); live != 0 {
			t.Errorf("live=%d after cleanup, want 0", live)
		}
	})
	return tr
}

func newTestBuffer(t *testing.T, tr *Tracker, s string) *TextBuffer {
	t.Helper()
	b := NewWithOptions(Options{Text: s, Tracker: tr})
	t.Cleanup(b.Free)
	return b
}

// free registers b for release at the end of the test.
func free(t *testing.T, bufs ...*TextBuffer) {
	t.Helper()
	for _, b := range bufs {
		t.Cleanup(b.Free)
	}
}

// checkBuffer asserts payload, length and terminator, plus capacity when
// wantCap is not negative.
func checkBuffer(t *testing.T, b *TextBuffer, wantText string, wantCap int) {
	t.Helper()
	if got := b.String(); got != wantText {
		t.Fatalf("text=%q, want %q", got, wantText)
	}
	if got, want := b.Len(), len(wantText); got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if wantCap >= 0 {
		if got := b.Capacity(); got != wantCap {
			t.Fatalf("capacity=%d, want %d", got, wantCap)
		}
	}
	if b.Capacity() < b.Len() {
		t.Fatalf("capacity=%d below len=%d", b.Capacity(), b.Len())
	}
	if got := b.primary.B[b.Len()]; got != 0 {
		t.Fatalf("terminator=%#x, want 0", got)
	}
	if got, want := len(b.scratch.B), len(b.primary.B); got != want {
		t.Fatalf("scratch size=%d, want %d", got, want)
	}
}
