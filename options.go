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

// Options configures a new TextBuffer.
type Options struct {
	// Capacity reserves room for this many payload bytes. It is raised to
	// len(Text) when smaller. It defaults to len(Text).
	Capacity int

	// Text is the initial payload. It is copied.
	Text string

	// Tracker receives the instance's lifecycle events.
	// It defaults to the process-wide tracker returned by Default.
	Tracker *Tracker
}

func (o Options) capacity() int {
	if o.Capacity < len(o.Text) {
		return len(o.Text)
	}
	return o.Capacity
}

func (o Options) tracker() *Tracker {
	if o.Tracker == nil {
		return Default()
	}
	return o.Tracker
}
