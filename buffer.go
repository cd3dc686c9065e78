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

// storage is an owned byte block holding a payload plus its terminator slot.
//
// The primary and scratch storages of a TextBuffer are always the same size.
// Callers never allocate one without the other.
type storage struct {
	B []byte
}

func newStorage(capacity int) storage {
	return storage{B: make([]byte, capacity+1)}
}

func (s *storage) release() {
	s.B = nil
}

// stager assembles the post-mutation content of a TextBuffer in its scratch
// storage. Parts are written in order, prefix first, and the assembled span
// is committed back into primary storage in one pass.
type stager struct {
	dst []byte
	n   int
}

func (s *stager) put(p []byte) {
	s.n += copy(s.dst[s.n:], p)
}

func (s *stager) putString(p string) {
	s.n += copy(s.dst[s.n:], p)
}

func putText[T Text](s *stager, p T) {
	s.n += copy(s.dst[s.n:], p)
}

func (s *stager) putRepeat(c byte, count int) {
	end := s.n + count
	for i := s.n; i < end; i++ {
		s.dst[i] = c
	}
	s.n = end
}

// stage hands out a stager over the scratch storage. Capacity must already
// cover the staged length.
//
// Content read from primary storage stays valid while staging: a
// reallocation swaps in fresh storages and never writes to the old ones, so
// a buffer may be staged from its own payload.
func (b *TextBuffer) stage() stager {
	return stager{dst: b.scratch.B}
}

// commit copies the first n staged bytes back into primary storage and
// terminates the payload.
func (b *TextBuffer) commit(st stager) {
	n := copy(b.primary.B, st.dst[:st.n])
	b.primary.B[n] = 0
	b.length = n
}
