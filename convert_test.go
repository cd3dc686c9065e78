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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

func TestFromInteger(t *testing.T) {
	tests := []struct {
		got  *TextBuffer
		want string
	}{
		{FromInteger(0), "0"},
		{FromInteger(-42), "-42"},
		{FromInteger(int8(-128)), "-128"},
		{FromInteger(uint8(255)), "255"},
		{FromInteger(int64(math.MinInt64)), "-9223372036854775808"},
		{FromInteger(int64(math.MaxInt64)), "9223372036854775807"},
		{FromInteger(uint64(math.MaxUint64)), "18446744073709551615"},
	}
	for _, tt := range tests {
		free(t, tt.got)
		checkBuffer(t, tt.got, tt.want, len(tt.want))
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		got  *TextBuffer
		want string
	}{
		{FromFloat(0.0), "0"},
		{FromFloat(2.5), "2.5"},
		{FromFloat(-0.5), "-0.5"},
		{FromFloat(3.14159265), "3.14159"},
		{FromFloat(123456.0), "123456"},
		{FromFloat(1234567.0), "1.23457e+06"},
		{FromFloat(1e6), "1e+06"},
		{FromFloat(0.0001), "0.0001"},
		{FromFloat(0.00001), "1e-05"},
		{FromFloat(float32(0.1)), "0.1"},
		{FromFloat(-1.5e300), "-1.5e+300"},
	}
	for _, tt := range tests {
		free(t, tt.got)
		checkBuffer(t, tt.got, tt.want, len(tt.want))
	}
}

func TestFromBool(t *testing.T) {
	b := FromBool(true)
	free(t, b)
	checkBuffer(t, b, "true", 4)
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1fC", float64(c)) }

type token struct{ id int }

func (tk token) MarshalText() ([]byte, error) { return []byte(fmt.Sprintf("tok-%d", tk.id)), nil }

func TestFormat(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{[]byte("raw"), "raw"},
		{42, "42"},
		{int8(-8), "-8"},
		{uint16(65535), "65535"},
		{byte(7), "7"},
		{1.0 / 3.0, "0.333333"},
		{float32(1.5), "1.5"},
		{false, "false"},
		{errors.New("boom"), "boom"},
		{celsius(21.5), "21.5C"},
		{token{id: 3}, "tok-3"},
		{time.Duration(1500) * time.Millisecond, "1.5s"},
		{nil, "<nil>"},
		{struct{ A int }{A: 1}, "{A:1}"},
	}
	for _, tt := range tests {
		got := Format(tt.in)
		free(t, got)
		if got.String() != tt.want {
			t.Fatalf("Format(%#v)=%q, want %q", tt.in, got.String(), tt.want)
		}
	}
}

func TestConcat_Tight(t *testing.T) {
	b := Concat("Hello, ", []byte("World"))
	free(t, b)
	checkBuffer(t, b, "Hello, World", 12)

	n := FromInteger(4)
	free(t, n)
	c := Concat(n.Bytes(), "2")
	free(t, c)
	checkBuffer(t, c, "42", 2)

	e := Concat("", "")
	free(t, e)
	checkBuffer(t, e, "", 0)
}

func TestMerge(t *testing.T) {
	tr := newTestTracker(t)
	a := newTestBuffer(t, tr, "foo")
	a.EnsureCapacity(50)
	o := newTestBuffer(t, tr, "bar")

	m := a.Merge(o)
	free(t, m)
	checkBuffer(t, m, "foobar", 6)
	checkBuffer(t, a, "foo", 56) // 2*3 + 50
	checkBuffer(t, o, "bar", 3)
	if m.Tracker() != tr {
		t.Fatalf("merged buffer reports to a different tracker")
	}

	ms := a.MergeString("!")
	free(t, ms)
	checkBuffer(t, ms, "foo!", 4)

	mb := a.MergeByte('?')
	free(t, mb)
	checkBuffer(t, mb, "foo?", 4)
}

func TestMerge_Numbers(t *testing.T) {
	tr := newTestTracker(t)
	a := newTestBuffer(t, tr, "n=")
	a.EnsureCapacity(30)

	tests := []struct {
		name  string
		merge func() *TextBuffer
		want  string
	}{
		{"int", func() *TextBuffer { return a.MergeInt(-42) }, "n=-42"},
		{"uint", func() *TextBuffer { return a.MergeUint(18446744073709551615) }, "n=18446744073709551615"},
		{"float", func() *TextBuffer { return a.MergeFloat(1e6) }, "n=1e+06"},
		{"float precision", func() *TextBuffer { return a.MergeFloat(3.14159265) }, "n=3.14159"},
		{"bool", func() *TextBuffer { return a.MergeBool(true) }, "n=true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.merge()
			checkBuffer(t, m, tt.want, len(tt.want))
			if got, want := m.Footprint(), len(tt.want)+1; got != want {
				t.Fatalf("footprint=%d, want %d", got, want)
			}
			if got := tr.Live(); got != 2 {
				t.Fatalf("live=%d, want 2 (operand and result only)", got)
			}
			m.Free()
		})
	}
	checkBuffer(t, a, "n=", 34) // 2*2 + 30
	if got := tr.Live(); got != 1 {
		t.Fatalf("live=%d, want 1", got)
	}
}

func TestAppendAny_NilBuffer(t *testing.T) {
	tr := newTestTracker(t)
	b := newTestBuffer(t, tr, "v=")

	var nilBuf *TextBuffer
	b.AppendAny(nilBuf)
	checkBuffer(t, b, "v=<nil>", -1)
}

func TestConcatenate_Additive(t *testing.T) {
	tr := newTestTracker(t)
	a := newTestBuffer(t, tr, "abc")
	o := newTestBuffer(t, tr, "defg")

	before := a.Len()
	a.Concatenate(o)
	checkBuffer(t, a, "abcdefg", 13) // 2*3 + 7
	if got, want := a.Len()-before, o.Len(); got != want {
		t.Fatalf("grew by %d, want %d", got, want)
	}

	a.Concatenate(a)
	checkBuffer(t, a, "abcdefgabcdefg", 40) // 2*13 + 14
}

func TestConcatenateAfter(t *testing.T) {
	tr := newTestTracker(t)
	a := newTestBuffer(t, tr, "World")
	o := newTestBuffer(t, tr, "Hello ")

	a.ConcatenateAfter(o)
	checkBuffer(t, a, "Hello World", 21) // 2*5 + 11

	a.Prepend(">> ")
	checkBuffer(t, a, ">> Hello World", 21)

	s := newTestBuffer(t, tr, "ab")
	s.ConcatenateAfter(s)
	checkBuffer(t, s, "abab", 8)
}

func TestAppend_Chained(t *testing.T) {
	tr := newTestTracker(t)
	b := newTestBuffer(t, tr, "")
	o := newTestBuffer(t, tr, "|buf")

	b.Append("x=").
		AppendInt(-42).
		AppendByte(' ').
		AppendFloat(0.5).
		AppendByte(' ').
		AppendBool(true).
		AppendUint(7).
		AppendBytes([]byte("!")).
		AppendBuffer(o).
		AppendAny(2.0)

	checkBuffer(t, b, "x=-42 0.5 true7!|buf2", -1)
}

func TestWriters(t *testing.T) {
	tr := newTestTracker(t)
	b := newTestBuffer(t, tr, "")

	fmt.Fprintf(b, "%d-%s", 7, "x")
	if _, err := b.WriteString("/y"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := b.WriteByte('!'); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	checkBuffer(t, b, "7-x/y!", -1)
}

func TestFormatter_Verbs(t *testing.T) {
	tr := newTestTracker(t)
	b := newTestBuffer(t, tr, "hi")

	got := fmt.Sprintf("%s|%v|%q|%+v|%d", b, b, b, b, b)
	want := `hi|hi|"hi"|TextBuffer{len:2 cap:2 text:"hi"}|%!d(*textbuf.TextBuffer=hi)`
	if got != want {
		t.Fatalf("Sprintf=%q, want %q", got, want)
	}
}

func TestTextMarshaling(t *testing.T) {
	tr := newTestTracker(t)
	type doc struct {
		Name *TextBuffer `json:"name"`
	}

	in := doc{Name: newTestBuffer(t, tr, `say "hi"`)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(data), `{"name":"say \"hi\""}`; got != want {
		t.Fatalf("json=%s, want %s", got, want)
	}

	out := doc{Name: newTestBuffer(t, tr, "")}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.Name.Equal(in.Name) {
		t.Fatalf("round trip=%q, want %q", out.Name, in.Name)
	}

	var fresh doc
	if err := json.Unmarshal(data, &fresh); err != nil {
		t.Fatalf("Unmarshal into nil field: %v", err)
	}
	free(t, fresh.Name)
	checkBuffer(t, fresh.Name, `say "hi"`, 8)

	var nilBuf *TextBuffer
	if err := nilBuf.UnmarshalText([]byte("x")); err == nil {
		t.Fatalf("UnmarshalText on nil receiver: want error")
	}
}

func TestCompare(t *testing.T) {
	tr := newTestTracker(t)
	b := newTestBuffer(t, tr, "abc")

	tests := []struct {
		s    string
		want int
	}{
		{"abc", 0},
		{"abd", -1},
		{"abb", 1},
		{"ab", 1},
		{"abcd", -1},
		{"", 1},
		{"b", -1},
		{"\xff", -1},
	}
	for _, tt := range tests {
		if got := b.Compare(tt.s); got != tt.want {
			t.Fatalf("Compare(%q)=%d, want %d", tt.s, got, tt.want)
		}
	}

	if !b.EqualString("abc") || b.EqualString("ab") {
		t.Fatalf("EqualString mismatch")
	}
	o := newTestBuffer(t, tr, "abc")
	o.EnsureCapacity(40)
	if !b.Equal(o) {
		t.Fatalf("Equal ignores capacity: got false")
	}
	if b.EqualByte('a') {
		t.Fatalf("EqualByte on three bytes: got true")
	}
}
