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

// searchable reports whether a needle of length n can match inside
// [begin, end) of a payload of the given length. Empty needles never match.
func searchable(length, n, begin, end int) bool {
	return n > 0 &&
		begin >= 0 &&
		begin < length &&
		end <= length &&
		begin <= end &&
		n <= end-begin
}

func matchAt[T Text](hay []byte, needle T, at int) bool {
	for j := 0; j < len(needle); j++ {
		if hay[at+j] != needle[j] {
			return false
		}
	}
	return true
}

func indexIn[T Text](hay []byte, needle T, begin, end int) int {
	n := len(needle)
	if !searchable(len(hay), n, begin, end) {
		return -1
	}
	first := needle[0]
	for i := begin; i <= end-n; i++ {
		if hay[i] == first && matchAt(hay, needle, i) {
			return i
		}
	}
	return -1
}

func lastIndexIn[T Text](hay []byte, needle T, begin, end int) int {
	n := len(needle)
	if !searchable(len(hay), n, begin, end) {
		return -1
	}
	first := needle[0]
	for i := end - n; i >= begin; i-- {
		if hay[i] == first && matchAt(hay, needle, i) {
			return i
		}
	}
	return -1
}

// countIn counts non-overlapping matches. The cursor resumes right after
// each match.
func countIn[T Text](hay []byte, needle T, begin, end int) int {
	if len(needle) == 0 {
		return 0
	}
	count := 0
	cursor := begin
	for {
		at := indexIn(hay, needle, cursor, end)
		if at < 0 {
			return count
		}
		count++
		cursor = at + len(needle)
	}
}

func indexByteIn(hay []byte, c byte, begin, end int) int {
	if !searchable(len(hay), 1, begin, end) {
		return -1
	}
	for i := begin; i < end; i++ {
		if hay[i] == c {
			return i
		}
	}
	return -1
}

func lastIndexByteIn(hay []byte, c byte, begin, end int) int {
	if !searchable(len(hay), 1, begin, end) {
		return -1
	}
	for i := end - 1; i >= begin; i-- {
		if hay[i] == c {
			return i
		}
	}
	return -1
}

func countByteIn(hay []byte, c byte, begin, end int) int {
	if !searchable(len(hay), 1, begin, end) {
		return 0
	}
	count := 0
	for i := begin; i < end; i++ {
		if hay[i] == c {
			count++
		}
	}
	return count
}

// Index returns the offset of the first occurrence of needle, or -1.
func (b *TextBuffer) Index(needle string) int {
	return indexIn(b.view(), needle, 0, b.length)
}

// IndexIn returns the offset of the first occurrence of needle that lies
// entirely inside [begin, end), or -1.
//
// It returns -1 when the range is invalid (begin outside [0, Len()), end past
// Len(), begin after end), when needle is longer than the range, and when
// needle is empty.
func (b *TextBuffer) IndexIn(needle string, begin, end int) int {
	return indexIn(b.view(), needle, begin, end)
}

// IndexBuffer returns the offset of the first occurrence of o's payload, or -1.
func (b *TextBuffer) IndexBuffer(o *TextBuffer) int {
	return indexIn(b.view(), o.view(), 0, b.length)
}

// IndexBufferIn returns the offset of the first occurrence of o's payload
// inside [begin, end), or -1. Range rules match IndexIn.
func (b *TextBuffer) IndexBufferIn(o *TextBuffer, begin, end int) int {
	return indexIn(b.view(), o.view(), begin, end)
}

// IndexByte returns the offset of the first c, or -1.
func (b *TextBuffer) IndexByte(c byte) int {
	return indexByteIn(b.view(), c, 0, b.length)
}

// IndexByteIn returns the offset of the first c inside [begin, end), or -1.
func (b *TextBuffer) IndexByteIn(c byte, begin, end int) int {
	return indexByteIn(b.view(), c, begin, end)
}

// LastIndex returns the offset of the last occurrence of needle, or -1.
func (b *TextBuffer) LastIndex(needle string) int {
	return lastIndexIn(b.view(), needle, 0, b.length)
}

// LastIndexIn returns the offset of the last occurrence of needle that lies
// entirely inside [begin, end), or -1. Range rules match IndexIn.
func (b *TextBuffer) LastIndexIn(needle string, begin, end int) int {
	return lastIndexIn(b.view(), needle, begin, end)
}

// LastIndexBuffer returns the offset of the last occurrence of o's payload,
// or -1.
func (b *TextBuffer) LastIndexBuffer(o *TextBuffer) int {
	return lastIndexIn(b.view(), o.view(), 0, b.length)
}

// LastIndexBufferIn returns the offset of the last occurrence of o's payload
// inside [begin, end), or -1.
func (b *TextBuffer) LastIndexBufferIn(o *TextBuffer, begin, end int) int {
	return lastIndexIn(b.view(), o.view(), begin, end)
}

// LastIndexByte returns the offset of the last c, or -1.
func (b *TextBuffer) LastIndexByte(c byte) int {
	return lastIndexByteIn(b.view(), c, 0, b.length)
}

// LastIndexByteIn returns the offset of the last c inside [begin, end), or -1.
func (b *TextBuffer) LastIndexByteIn(c byte, begin, end int) int {
	return lastIndexByteIn(b.view(), c, begin, end)
}

// Contains reports whether needle occurs in the payload.
func (b *TextBuffer) Contains(needle string) bool {
	return b.Index(needle) != -1
}

// ContainsIn reports whether needle occurs entirely inside [begin, end).
func (b *TextBuffer) ContainsIn(needle string, begin, end int) bool {
	return b.IndexIn(needle, begin, end) != -1
}

// ContainsBuffer reports whether o's payload occurs in the payload.
func (b *TextBuffer) ContainsBuffer(o *TextBuffer) bool {
	return b.IndexBuffer(o) != -1
}

// ContainsBufferIn reports whether o's payload occurs inside [begin, end).
func (b *TextBuffer) ContainsBufferIn(o *TextBuffer, begin, end int) bool {
	return b.IndexBufferIn(o, begin, end) != -1
}

// ContainsByte reports whether c occurs in the payload.
func (b *TextBuffer) ContainsByte(c byte) bool {
	return b.IndexByte(c) != -1
}

// ContainsByteIn reports whether c occurs inside [begin, end).
func (b *TextBuffer) ContainsByteIn(c byte, begin, end int) bool {
	return b.IndexByteIn(c, begin, end) != -1
}

// Count returns the number of non-overlapping occurrences of needle.
// An empty needle yields 0.
func (b *TextBuffer) Count(needle string) int {
	return countIn(b.view(), needle, 0, b.length)
}

// CountIn counts non-overlapping occurrences of needle inside [begin, end).
func (b *TextBuffer) CountIn(needle string, begin, end int) int {
	return countIn(b.view(), needle, begin, end)
}

// CountBuffer returns the number of non-overlapping occurrences of o's
// payload.
func (b *TextBuffer) CountBuffer(o *TextBuffer) int {
	return countIn(b.view(), o.view(), 0, b.length)
}

// CountBufferIn counts non-overlapping occurrences of o's payload inside
// [begin, end).
func (b *TextBuffer) CountBufferIn(o *TextBuffer, begin, end int) int {
	return countIn(b.view(), o.view(), begin, end)
}

// CountByte returns the number of occurrences of c.
func (b *TextBuffer) CountByte(c byte) int {
	return countByteIn(b.view(), c, 0, b.length)
}

// CountByteIn returns the number of occurrences of c inside [begin, end).
func (b *TextBuffer) CountByteIn(c byte, begin, end int) int {
	return countByteIn(b.view(), c, begin, end)
}
