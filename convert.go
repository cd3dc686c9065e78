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
	"encoding"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Text is the set of operand types accepted by Concat.
type Text interface {
	~string | ~[]byte
}

// Worst-case textual widths: sign plus every digit of a 64-bit magnitude, and
// a six-significant-digit %g float such as "-1.23457e-308".
const (
	maxIntegerWidth = 20
	maxFloatWidth   = 24
)

func appendInteger[T constraints.Integer](dst []byte, v T) []byte {
	if v < 0 {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	return strconv.AppendUint(dst, uint64(v), 10)
}

// appendFloat formats v like C's %g: six significant digits, trailing zeros
// dropped, exponent form below 1e-4 and from 1e6 upwards.
func appendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', 6, 64)
}

// FromInteger constructs a tight TextBuffer holding the decimal form of v.
func FromInteger[T constraints.Integer](v T) *TextBuffer {
	var tmp [maxIntegerWidth]byte
	return fromText(Default(), appendInteger(tmp[:0], v))
}

// FromFloat constructs a tight TextBuffer holding v in %g form with six
// significant digits.
func FromFloat[T constraints.Float](v T) *TextBuffer {
	var tmp [maxFloatWidth]byte
	return fromText(Default(), appendFloat(tmp[:0], float64(v)))
}

// FromBool constructs a tight TextBuffer holding "true" or "false".
func FromBool(v bool) *TextBuffer {
	return NewString(strconv.FormatBool(v))
}

// Format constructs a TextBuffer holding the textual form of v.
//
// Common types are converted without going through fmt. Floats use the %g
// convention of FromFloat; anything unrecognized falls back to %+v.
func Format(v any) *TextBuffer {
	return New().AppendAny(v)
}

// Concat constructs a TextBuffer holding a followed by b.
//
// The result is allocated tight: its capacity equals the combined length. Use
// Merge to concatenate buffers, and MergeInt, MergeUint, MergeFloat or
// MergeBool to append a number without a temporary buffer.
func Concat[A, B Text](a A, b B) *TextBuffer {
	return concat(Default(), a, b)
}

func concat[A, B Text](tr *Tracker, a A, b B) *TextBuffer {
	out := alloc(len(a)+len(b), tr)
	n := copy(out.primary.B, a)
	n += copy(out.primary.B[n:], b)
	out.length = n
	return out
}

// Merge returns a new, tight TextBuffer holding b followed by o. Neither
// operand is modified.
func (b *TextBuffer) Merge(o *TextBuffer) *TextBuffer {
	return concat(b.tracker, b.view(), o.view())
}

// MergeString returns a new, tight TextBuffer holding b followed by s.
func (b *TextBuffer) MergeString(s string) *TextBuffer {
	return concat(b.tracker, b.view(), s)
}

// MergeByte returns a new, tight TextBuffer holding b followed by c.
func (b *TextBuffer) MergeByte(c byte) *TextBuffer {
	return concat(b.tracker, b.view(), []byte{c})
}

// MergeInt returns a new, tight TextBuffer holding b followed by the decimal
// form of v.
func (b *TextBuffer) MergeInt(v int64) *TextBuffer {
	var tmp [maxIntegerWidth]byte
	return concat(b.tracker, b.view(), appendInteger(tmp[:0], v))
}

// MergeUint returns a new, tight TextBuffer holding b followed by the decimal
// form of v.
func (b *TextBuffer) MergeUint(v uint64) *TextBuffer {
	var tmp [maxIntegerWidth]byte
	return concat(b.tracker, b.view(), appendInteger(tmp[:0], v))
}

// MergeFloat returns a new, tight TextBuffer holding b followed by v in %g
// form with six significant digits.
func (b *TextBuffer) MergeFloat(v float64) *TextBuffer {
	var tmp [maxFloatWidth]byte
	return concat(b.tracker, b.view(), appendFloat(tmp[:0], v))
}

// MergeBool returns a new, tight TextBuffer holding b followed by "true" or
// "false".
func (b *TextBuffer) MergeBool(v bool) *TextBuffer {
	return concat(b.tracker, b.view(), strconv.FormatBool(v))
}

func appendText[T Text](b *TextBuffer, s T) {
	n := b.length + len(s)
	b.EnsureCapacity(n)
	copy(b.primary.B[b.length:], s)
	b.primary.B[n] = 0
	b.length = n
}

// Concatenate appends o's payload in place. o may be b itself.
func (b *TextBuffer) Concatenate(o *TextBuffer) {
	appendText(b, o.view())
}

// ConcatenateAfter prepends o's payload in place, staging the result like an
// Insert at offset zero. o may be b itself.
func (b *TextBuffer) ConcatenateAfter(o *TextBuffer) {
	insert(b, 0, o.view())
}

// Prepend inserts s at offset zero.
func (b *TextBuffer) Prepend(s string) {
	insert(b, 0, s)
}

// Append appends s and returns b, so appends can be chained:
//
//	b.Append("x=").AppendInt(42).AppendByte('\n')
//
// Each call completes before the next one starts.
func (b *TextBuffer) Append(s string) *TextBuffer {
	appendText(b, s)
	return b
}

// AppendBytes appends p and returns b.
func (b *TextBuffer) AppendBytes(p []byte) *TextBuffer {
	appendText(b, p)
	return b
}

// AppendByte appends c and returns b.
func (b *TextBuffer) AppendByte(c byte) *TextBuffer {
	b.EnsureCapacity(b.length + 1)
	b.primary.B[b.length] = c
	b.length++
	b.primary.B[b.length] = 0
	return b
}

// AppendBuffer appends o's payload and returns b.
func (b *TextBuffer) AppendBuffer(o *TextBuffer) *TextBuffer {
	b.Concatenate(o)
	return b
}

// AppendInt appends the decimal form of v and returns b.
func (b *TextBuffer) AppendInt(v int64) *TextBuffer {
	var tmp [maxIntegerWidth]byte
	appendText(b, appendInteger(tmp[:0], v))
	return b
}

// AppendUint appends the decimal form of v and returns b.
func (b *TextBuffer) AppendUint(v uint64) *TextBuffer {
	var tmp [maxIntegerWidth]byte
	appendText(b, appendInteger(tmp[:0], v))
	return b
}

// AppendFloat appends v in %g form with six significant digits and returns b.
func (b *TextBuffer) AppendFloat(v float64) *TextBuffer {
	var tmp [maxFloatWidth]byte
	appendText(b, appendFloat(tmp[:0], v))
	return b
}

// AppendBool appends "true" or "false" and returns b.
func (b *TextBuffer) AppendBool(v bool) *TextBuffer {
	return b.Append(strconv.FormatBool(v))
}

// AppendAny appends the textual form of v and returns b.
//
// It bypasses fmt for common types.
func (b *TextBuffer) AppendAny(v any) *TextBuffer {
	switch val := v.(type) {
	case nil:
		return b.Append("<nil>")
	case string:
		return b.Append(val)
	case []byte:
		return b.AppendBytes(val)
	case *TextBuffer:
		if val == nil {
			return b.Append("<nil>")
		}
		return b.AppendBuffer(val)
	case byte:
		return b.AppendUint(uint64(val))
	case int:
		return b.AppendInt(int64(val))
	case int8:
		return b.AppendInt(int64(val))
	case int16:
		return b.AppendInt(int64(val))
	case int32:
		return b.AppendInt(int64(val))
	case int64:
		return b.AppendInt(val)
	case uint:
		return b.AppendUint(uint64(val))
	case uint16:
		return b.AppendUint(uint64(val))
	case uint32:
		return b.AppendUint(uint64(val))
	case uint64:
		return b.AppendUint(val)
	case float32:
		return b.AppendFloat(float64(val))
	case float64:
		return b.AppendFloat(val)
	case bool:
		return b.AppendBool(val)
	case error:
		return b.Append(val.Error())
	case fmt.Stringer:
		return b.Append(val.String())
	case encoding.TextMarshaler:
		if text, err := val.MarshalText(); err == nil {
			return b.AppendBytes(text)
		}
		return b.Append(fmt.Sprintf("%+v", val))
	default:
		return b.Append(fmt.Sprintf("%+v", val))
	}
}
