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
	"bytes"
	"strings"
)

// Equal reports whether b and o hold the same payload. Capacity is ignored.
func (b *TextBuffer) Equal(o *TextBuffer) bool {
	return bytes.Equal(b.view(), o.view())
}

// EqualString reports whether the payload equals s.
func (b *TextBuffer) EqualString(s string) bool {
	return string(b.view()) == s
}

// EqualByte reports whether the payload is exactly the single byte c.
func (b *TextBuffer) EqualByte(c byte) bool {
	return b.length == 1 && b.primary.B[0] == c
}

// Compare orders the payload against s byte-wise. The result is 0 if they are
// equal, -1 if the payload sorts first, and +1 otherwise.
func (b *TextBuffer) Compare(s string) int {
	return strings.Compare(string(b.view()), s)
}
