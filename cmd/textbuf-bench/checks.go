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

package main

import (
	"fmt"

	"github.com/blairtcg/textbuf"
	"github.com/blairtcg/textbuf/internal/report"
)

type check struct {
	name string
	run  func(tr *textbuf.Tracker) error
}

var checks = []check{
	{"pad-insert", checkPadInsert},
	{"search", checkSearch},
	{"shrink-to-fit", checkShrinkToFit},
	{"count", checkCount},
	{"growth-law", checkGrowthLaw},
	{"shrink-idempotent", checkShrinkIdempotent},
	{"round-trip", checkRoundTrip},
	{"remove-all", checkRemoveAll},
	{"concatenate", checkConcatenate},
}

// runChecks runs every check against tr and then verifies that all
// instances were released. It returns the number of failures.
func runChecks(rep *report.Reporter, tr *textbuf.Tracker) int {
	failed := 0
	for _, c := range checks {
		if err := c.run(tr); err != nil {
			failed++
			rep.Error("check failed", "name", c.name, "err", err)
			continue
		}
		rep.Debug("check passed", "name", c.name)
	}

	if err := checkReleased(tr); err != nil {
		failed++
		rep.Error("check failed", "name", "released", "err", err)
	} else {
		rep.Debug("check passed", "name", "released")
	}

	if failed == 0 {
		rep.Info("all checks passed", "checks", len(checks)+1)
	}
	return failed
}

func newBuffer(tr *textbuf.Tracker, s string) *textbuf.TextBuffer {
	return textbuf.NewWithOptions(textbuf.Options{Text: s, Tracker: tr})
}

func expectText(b *textbuf.TextBuffer, want string) error {
	if !b.EqualString(want) {
		return fmt.Errorf("text=%q, want %q", b, want)
	}
	if b.Len() != len(want) {
		return fmt.Errorf("len=%d, want %d", b.Len(), len(want))
	}
	return nil
}

func expectInt(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s=%d, want %d", what, got, want)
	}
	return nil
}

func checkPadInsert(tr *textbuf.Tracker) error {
	b := newBuffer(tr, "Hallo")
	defer b.Free()

	steps := []struct {
		op   func()
		want string
	}{
		{func() { b.PadLeft(10, '0') }, "00000Hallo"},
		{func() { b.PadRight(15, '0') }, "00000Hallo00000"},
		{func() { b.Insert(10, " Welt") }, "00000Hallo Welt00000"},
	}
	for _, s := range steps {
		s.op()
		if err := expectText(b, s.want); err != nil {
			return err
		}
	}
	return nil
}

func checkSearch(tr *textbuf.Tracker) error {
	b := newBuffer(tr, "Hallo World World!")
	defer b.Free()

	for _, e := range []struct {
		what      string
		got, want int
	}{
		{"Index(World)", b.Index("World"), 6},
		{"LastIndex(World)", b.LastIndex("World"), 12},
		{"IndexByte(o)", b.IndexByte('o'), 4},
		{"LastIndexByte(o)", b.LastIndexByte('o'), 13},
		{"Index()", b.Index(""), -1},
	} {
		if err := expectInt(e.what, e.got, e.want); err != nil {
			return err
		}
	}
	return nil
}

func checkShrinkToFit(tr *textbuf.Tracker) error {
	b := textbuf.NewWithOptions(textbuf.Options{Capacity: 999, Tracker: tr})
	defer b.Free()

	b.Set("shrink to fit")
	if err := expectInt("capacity", b.Capacity(), 999); err != nil {
		return err
	}
	if err := expectInt("footprint", b.Footprint(), 1000); err != nil {
		return err
	}
	b.ShrinkToFit()
	if err := expectInt("capacity after shrink", b.Capacity(), 13); err != nil {
		return err
	}
	return expectInt("footprint after shrink", b.Footprint(), 14)
}

func checkCount(tr *textbuf.Tracker) error {
	text := "...this string has stuff to be counted..."
	b := newBuffer(tr, text)
	defer b.Free()

	return expectInt("CountIn(s s)", b.CountIn("s s", 0, len(text)), 2)
}

func checkGrowthLaw(tr *textbuf.Tracker) error {
	b := newBuffer(tr, "abc")
	defer b.Free()

	for _, s := range []string{"defgh", "i", "jklmnopqrstuvwxyz0123456789"} {
		old := b.Capacity()
		requested := b.Len() + len(s)
		b.Append(s)
		want := old
		if requested > old {
			want = 2*old + requested
		}
		if err := expectInt("capacity after Append("+s+")", b.Capacity(), want); err != nil {
			return err
		}
	}
	return nil
}

func checkShrinkIdempotent(tr *textbuf.Tracker) error {
	b := textbuf.NewWithOptions(textbuf.Options{Capacity: 64, Text: "tight", Tracker: tr})
	defer b.Free()

	b.ShrinkToFit()
	first := b.Capacity()
	b.ShrinkToFit()
	if err := expectInt("capacity", b.Capacity(), first); err != nil {
		return err
	}
	return expectInt("capacity", b.Capacity(), b.Len())
}

func checkRoundTrip(tr *textbuf.Tracker) error {
	const text = "round trip"
	b := newBuffer(tr, text)
	defer b.Free()

	for i := 0; i <= len(text); i++ {
		b.Insert(i, "<ins>")
		b.Remove(i, len("<ins>"))
		if err := expectText(b, text); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

func checkRemoveAll(tr *textbuf.Tracker) error {
	b := newBuffer(tr, "the cat sat on the mat")
	defer b.Free()

	if err := expectInt("RemoveAll(at)", b.RemoveAll("at"), 3); err != nil {
		return err
	}
	if err := expectInt("Count(at)", b.Count("at"), 0); err != nil {
		return err
	}
	return expectText(b, "the c s on the m")
}

func checkConcatenate(tr *textbuf.Tracker) error {
	b := newBuffer(tr, "left")
	defer b.Free()
	o := newBuffer(tr, "+right")
	defer o.Free()

	b.Concatenate(o)
	if err := expectText(b, "left+right"); err != nil {
		return err
	}
	return expectText(o, "+right")
}

func checkReleased(tr *textbuf.Tracker) error {
	st := tr.Stats()
	if st.Live != 0 {
		return fmt.Errorf("live=%d, want 0", st.Live)
	}
	if st.Total == 0 {
		return fmt.Errorf("total=0, want >0")
	}
	return nil
}
