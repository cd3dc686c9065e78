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

// Package textbuf provides TextBuffer, a growable, mutable byte string with
// explicit capacity control.
//
// A TextBuffer owns two storages of identical size: the primary storage that
// holds the payload, and a scratch storage that length-changing edits stage
// their result in before committing it back. Growth follows a fixed law
// (2*capacity + requested), so capacity is predictable from the sequence of
// edits alone.
//
// Out-of-range indexes never panic. They are clamped or turn the call into a
// no-op, and failed searches return -1. An empty search needle never matches.
//
// A TextBuffer is not safe for concurrent use.
package textbuf

import (
	"errors"
	"fmt"
)

// TextBuffer is a growable byte string.
//
// The zero value is not usable; construct instances with New or one of its
// siblings and release them with Free.
type TextBuffer struct {
	primary  storage
	scratch  storage
	length   int
	capacity int
	tracker  *Tracker
	freed    bool
}

// NewWithOptions constructs a TextBuffer using the specified Options.
//
// Every other constructor delegates here or to alloc, so each instance is
// counted exactly once by its Tracker.
func NewWithOptions(o Options) *TextBuffer {
	b := alloc(o.capacity(), o.tracker())
	b.length = copy(b.primary.B, o.Text)
	return b
}

// alloc constructs an empty TextBuffer with room for capacity payload bytes.
func alloc(capacity int, tr *Tracker) *TextBuffer {
	if capacity < 0 {
		capacity = 0
	}
	b := &TextBuffer{
		primary:  newStorage(capacity),
		scratch:  newStorage(capacity),
		capacity: capacity,
		tracker:  tr,
	}
	tr.constructed()
	return b
}

// New constructs an empty TextBuffer with zero capacity.
func New() *TextBuffer {
	return NewWithOptions(Options{})
}

// NewCapacity constructs an empty TextBuffer with room for n payload bytes.
func NewCapacity(n int) *TextBuffer {
	return NewWithOptions(Options{Capacity: n})
}

// NewString constructs a TextBuffer holding a copy of s, with no spare
// capacity.
func NewString(s string) *TextBuffer {
	return NewWithOptions(Options{Text: s})
}

// NewBytes constructs a TextBuffer holding a copy of p, with no spare
// capacity.
func NewBytes(p []byte) *TextBuffer {
	return fromText(Default(), p)
}

// NewByte constructs a TextBuffer holding the single byte c.
func NewByte(c byte) *TextBuffer {
	return Repeat(c, 1)
}

// Repeat constructs a TextBuffer holding n copies of c. A negative n yields
// an empty buffer.
func Repeat(c byte, n int) *TextBuffer {
	b := alloc(n, Default())
	b.Fill(n, c)
	return b
}

func fromText[T Text](tr *Tracker, s T) *TextBuffer {
	b := alloc(len(s), tr)
	b.length = copy(b.primary.B, s)
	return b
}

// Clone returns a deep copy of b with the same capacity. The copy reports to
// the same Tracker.
func (b *TextBuffer) Clone() *TextBuffer {
	c := alloc(b.capacity, b.tracker)
	c.length = copy(c.primary.B, b.view())
	return c
}

// Free releases both storages and marks the instance dead on its Tracker.
//
// Calling Free more than once has no further effect. A freed buffer must not
// be used again.
func (b *TextBuffer) Free() {
	if b == nil || b.freed {
		return
	}
	b.freed = true
	b.primary.release()
	b.scratch.release()
	b.length = 0
	b.capacity = 0
	b.tracker.released()
}

// Tracker returns the Tracker this instance reports to.
func (b *TextBuffer) Tracker() *Tracker { return b.tracker }

// Set replaces the payload with a copy of s.
func (b *TextBuffer) Set(s string) { assign(b, s) }

// SetBytes replaces the payload with a copy of p.
func (b *TextBuffer) SetBytes(p []byte) { assign(b, p) }

// SetByte replaces the payload with the single byte c.
func (b *TextBuffer) SetByte(c byte) { b.Fill(1, c) }

// SetBuffer replaces the payload with a copy of o's payload. Storage is never
// shared between the two buffers.
func (b *TextBuffer) SetBuffer(o *TextBuffer) {
	if o == b {
		return
	}
	assign(b, o.view())
}

func assign[T Text](b *TextBuffer, s T) {
	b.EnsureCapacity(len(s))
	n := copy(b.primary.B, s)
	b.primary.B[n] = 0
	b.length = n
}

// Bytes returns a read-only view of the payload.
//
// The slice aliases primary storage and is only valid until the next
// mutation. Callers must not modify it.
func (b *TextBuffer) Bytes() []byte {
	return b.view()
}

// String returns a copy of the payload.
func (b *TextBuffer) String() string {
	return string(b.view())
}

// Write appends p. It always succeeds.
func (b *TextBuffer) Write(p []byte) (int, error) {
	appendText(b, p)
	return len(p), nil
}

// WriteString appends s. It always succeeds.
func (b *TextBuffer) WriteString(s string) (int, error) {
	appendText(b, s)
	return len(s), nil
}

// WriteByte appends c. It always succeeds.
func (b *TextBuffer) WriteByte(c byte) error {
	b.AppendByte(c)
	return nil
}

// MarshalText returns a copy of the payload.
func (b *TextBuffer) MarshalText() ([]byte, error) {
	return append([]byte(nil), b.view()...), nil
}

// UnmarshalText replaces the payload with a copy of text.
//
// Decoders allocate zero TextBuffers for nil fields; those are initialized
// against the Default tracker first and must be freed like any other.
func (b *TextBuffer) UnmarshalText(text []byte) error {
	if b == nil {
		return errors.New("can't unmarshal into a nil *TextBuffer")
	}
	if b.tracker == nil {
		*b = *fromText(Default(), text)
		return nil
	}
	b.SetBytes(text)
	return nil
}

// Format implements fmt.Formatter.
//
// %s and %v print the payload, %q prints it quoted, and %+v also reports
// length and capacity.
func (b *TextBuffer) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			fmt.Fprintf(f, "TextBuffer{len:%d cap:%d text:%q}", b.length, b.capacity, b.view())
			return
		}
		f.Write(b.view())
	case 's':
		f.Write(b.view())
	case 'q':
		fmt.Fprintf(f, "%q", b.view())
	default:
		fmt.Fprintf(f, "%%!%c(*textbuf.TextBuffer=%s)", verb, b.view())
	}
}
