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
	"bufio"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/blairtcg/textbuf"
)

// OverflowStrategy dictates how an asynchronous Reporter behaves when its
// queue fills up.
type OverflowStrategy int

const (
	// OverflowSync makes the caller wait until the queue is written out and
	// then writes its line directly. No lines are lost and order is kept.
	OverflowSync OverflowStrategy = iota
	// OverflowDrop discards new lines until the queue has room. Reporter.Dropped
	// counts them.
	OverflowDrop
	// OverflowBlock waits until the worker frees a queue slot.
	OverflowBlock
)

// worker writes queued lines to the output on its own goroutine. Each queued
// line is a TextBuffer clone owned by the worker, which frees it once written.
//
// submit must not be called concurrently; the Reporter serializes it under
// its mutex.
type worker struct {
	lines    chan *textbuf.TextBuffer
	flushReq chan chan error
	quit     chan struct{}
	done     chan struct{}
	out      io.Writer
	bw       *bufio.Writer
	strategy OverflowStrategy
	dropped  atomic.Int64
	lastErr  error
}

func newWorker(out io.Writer, size int, strategy OverflowStrategy) *worker {
	w := &worker{
		lines:    make(chan *textbuf.TextBuffer, size),
		flushReq: make(chan chan error),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		out:      out,
		bw:       bufio.NewWriterSize(out, 64*1024),
		strategy: strategy,
	}
	go w.loop()
	return w
}

func (w *worker) submit(line *textbuf.TextBuffer) {
	select {
	case w.lines <- line:
		return
	default:
	}

	switch w.strategy {
	case OverflowDrop:
		w.dropped.Add(1)
		line.Free()
	case OverflowBlock:
		w.lines <- line
	default:
		// Once flush returns the queue is empty and the worker is idle, and
		// no other submit can run, so the output is ours until the next send.
		w.flush()
		if _, err := w.out.Write(line.Bytes()); err != nil {
			w.report(err)
		}
		line.Free()
	}
}

// flush blocks until every queued line reached the output.
func (w *worker) flush() error {
	reply := make(chan error, 1)
	select {
	case w.flushReq <- reply:
		return <-reply
	case <-w.done:
		return nil
	}
}

// stop writes out the queue and waits for the goroutine to exit.
func (w *worker) stop() {
	close(w.quit)
	<-w.done
}

func (w *worker) loop() {
	defer close(w.done)

	for {
		select {
		case <-w.quit:
			w.drain()
			w.flushWriter()
			return
		case reply := <-w.flushReq:
			w.drain()
			reply <- w.flushWriter()
		case line := <-w.lines:
			w.write(line)
			w.drain()
			w.flushWriter()
		}
	}
}

// drain writes whatever is queued without waiting for more.
func (w *worker) drain() {
	for {
		select {
		case line := <-w.lines:
			w.write(line)
		default:
			return
		}
	}
}

func (w *worker) write(line *textbuf.TextBuffer) {
	if _, err := w.bw.Write(line.Bytes()); err != nil {
		w.report(err)
	}
	line.Free()
}

func (w *worker) flushWriter() error {
	err := w.bw.Flush()
	if err != nil {
		w.report(err)
	}
	return err
}

// report prints a write error once per distinct error.
func (w *worker) report(err error) {
	if w.lastErr != err {
		w.lastErr = err
		fmt.Fprintf(os.Stderr, "report: write error: %v\n", err)
	}
}
