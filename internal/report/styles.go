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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual appearance of lines written by the TextFormatter.
//
// Styles are bound to a lipgloss.Renderer, so a Reporter writing to a pipe or
// a file gets plain text while one writing to a terminal gets color.
type Styles struct {
	Prefix    lipgloss.Style
	Message   lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Separator lipgloss.Style
	Levels    map[Level]lipgloss.Style

	// levelStrings caches the rendered level labels.
	levelStrings map[Level]string
}

// DefaultStyles returns the standard styling for r.
func DefaultStyles(r *lipgloss.Renderer) *Styles {
	s := &Styles{
		Prefix:    r.NewStyle().Bold(true).Faint(true),
		Message:   r.NewStyle(),
		Key:       r.NewStyle().Faint(true),
		Value:     r.NewStyle(),
		Separator: r.NewStyle().Faint(true),
		Levels: map[Level]lipgloss.Style{
			DebugLevel: levelStyle(r, DebugLevel, "63"),
			InfoLevel:  levelStyle(r, InfoLevel, "86"),
			WarnLevel:  levelStyle(r, WarnLevel, "192"),
			ErrorLevel: levelStyle(r, ErrorLevel, "204"),
		},
	}
	s.cacheLevels()
	return s
}

func levelStyle(r *lipgloss.Renderer, l Level, color string) lipgloss.Style {
	return r.NewStyle().
		SetString(strings.ToUpper(l.String())).
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color(color))
}

func (s *Styles) cacheLevels() {
	s.levelStrings = make(map[Level]string, len(s.Levels))
	for l, style := range s.Levels {
		s.levelStrings[l] = style.String()
	}
}

func (s *Styles) level(l Level) (string, bool) {
	if s.levelStrings == nil {
		s.cacheLevels()
	}
	str, ok := s.levelStrings[l]
	return str, ok
}
