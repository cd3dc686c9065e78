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

// EnsureCapacity makes room for a payload of requested bytes.
//
// It does nothing when the payload already fits. Otherwise the new capacity
// is 2*Capacity()+requested, which keeps runs of small edits amortized. Both
// storages are reallocated together and the current payload is carried over.
// Every mutating method calls EnsureCapacity before writing.
//
// Allocation failure is fatal: the runtime aborts the process.
func (b *TextBuffer) EnsureCapacity(requested int) {
	if requested <= b.capacity {
		return
	}
	b.realloc(2*b.capacity + requested)
}

// ShrinkToFit reallocates both storages so that Capacity() == Len().
//
// It always reallocates, even when the buffer is already tight.
func (b *TextBuffer) ShrinkToFit() {
	b.realloc(b.length)
}

func (b *TextBuffer) realloc(capacity int) {
	primary := newStorage(capacity)
	scratch := newStorage(capacity)
	copy(primary.B, b.primary.B[:b.length])

	b.primary.release()
	b.scratch.release()
	b.primary = primary
	b.scratch = scratch
	b.capacity = capacity

	b.tracker.reallocated()
}

// Capacity returns the number of payload bytes the buffer can hold before the
// next write reallocates.
func (b *TextBuffer) Capacity() int { return b.capacity }

// Footprint returns the number of bytes owned by the primary storage,
// including the terminator slot.
func (b *TextBuffer) Footprint() int { return len(b.primary.B) }

// Len returns the payload length in bytes.
func (b *TextBuffer) Len() int { return b.length }

// Reset empties the buffer without releasing its storage.
func (b *TextBuffer) Reset() {
	b.length = 0
	if len(b.primary.B) > 0 {
		b.primary.B[0] = 0
	}
}

func (b *TextBuffer) view() []byte {
	return b.primary.B[:b.length]
}
