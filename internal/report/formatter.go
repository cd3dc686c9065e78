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

package report

import (
	"github.com/blairtcg/textbuf"
)

// Formatter selects how a Reporter serializes lines.
type Formatter int

const (
	// TextFormatter writes human readable, styled lines.
	TextFormatter Formatter = iota
	// JSONFormatter writes one JSON object per line.
	JSONFormatter
)

// formatText writes `LEVEL prefix: message key=value ...` into line. val is
// scratch space for rendering single values.
func formatText(line, val *textbuf.TextBuffer, st *Styles, level Level, prefix, msg string, keyvals []any) {
	if lvl, ok := st.level(level); ok {
		line.Append(lvl).AppendByte(' ')
	}
	if prefix != "" {
		line.Append(st.Prefix.Render(prefix + ":")).AppendByte(' ')
	}
	line.Append(st.Message.Render(msg))

	sep := st.Separator.Render("=")
	for i := 0; i+1 < len(keyvals); i += 2 {
		val.Reset()
		val.AppendAny(keyvals[i])
		if val.Len() == 0 {
			continue
		}
		line.AppendByte(' ').Append(st.Key.Render(val.String())).Append(sep)

		val.Reset()
		val.AppendAny(keyvals[i+1])
		if val.ContainsByte(' ') || val.ContainsByte('=') {
			val.Prepend(`"`)
			val.AppendByte('"')
		}
		line.Append(st.Value.Render(val.String()))
	}
	line.AppendByte('\n')
}

// formatJSON writes one JSON object into line.
func formatJSON(line, val *textbuf.TextBuffer, level Level, prefix, msg string, keyvals []any) {
	line.Append(`{"level":`)
	appendJSONString(line, level.String())
	if prefix != "" {
		line.Append(`,"prefix":`)
		appendJSONString(line, prefix)
	}
	line.Append(`,"msg":`)
	appendJSONString(line, msg)

	for i := 0; i+1 < len(keyvals); i += 2 {
		val.Reset()
		val.AppendAny(keyvals[i])
		if val.Len() == 0 {
			continue
		}
		line.AppendByte(',')
		appendJSONBytes(line, val.Bytes())
		line.AppendByte(':')
		appendJSONValue(line, val, keyvals[i+1])
	}
	line.Append("}\n")
}

func appendJSONValue(line, val *textbuf.TextBuffer, v any) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
		line.AppendAny(v)
	case float32, float64:
		val.Reset()
		val.AppendAny(v)
		if val.ContainsByte('N') || val.ContainsByte('I') {
			// NaN and Inf have no JSON literal.
			appendJSONBytes(line, val.Bytes())
			return
		}
		line.AppendBuffer(val)
	default:
		val.Reset()
		val.AppendAny(v)
		appendJSONBytes(line, val.Bytes())
	}
}

var _noEscape [256]bool

func init() {
	for i := 0; i <= 0x1f; i++ {
		_noEscape[i] = true
	}
	_noEscape['"'] = true
	_noEscape['\\'] = true
}

var _hex = "0123456789abcdef"

func appendJSONString(line *textbuf.TextBuffer, s string) {
	line.AppendByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		if !_noEscape[s[i]] {
			continue
		}
		line.Append(s[start:i])
		appendJSONEscape(line, s[i])
		start = i + 1
	}
	line.Append(s[start:])
	line.AppendByte('"')
}

func appendJSONBytes(line *textbuf.TextBuffer, p []byte) {
	line.AppendByte('"')
	start := 0
	for i := 0; i < len(p); i++ {
		if !_noEscape[p[i]] {
			continue
		}
		line.AppendBytes(p[start:i])
		appendJSONEscape(line, p[i])
		start = i + 1
	}
	line.AppendBytes(p[start:])
	line.AppendByte('"')
}

func appendJSONEscape(line *textbuf.TextBuffer, c byte) {
	switch c {
	case '"':
		line.Append(`\"`)
	case '\\':
		line.Append(`\\`)
	case '\n':
		line.Append(`\n`)
	case '\r':
		line.Append(`\r`)
	case '\t':
		line.Append(`\t`)
	case '\b':
		line.Append(`\b`)
	case '\f':
		line.Append(`\f`)
	default:
		line.Append(`\u00`).AppendByte(_hex[c>>4]).AppendByte(_hex[c&0xF])
	}
}
