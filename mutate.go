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

// Length-changing edits never shift bytes inside primary storage. They
// assemble the whole result in scratch storage (prefix, new content, suffix)
// and commit it back in one copy, so overlapping source and destination
// ranges cannot corrupt unread data.

func insert[T Text](b *TextBuffer, index int, content T) {
	if index < 0 || index > b.length {
		return
	}
	b.EnsureCapacity(b.length + len(content))

	hay := b.view()
	st := b.stage()
	st.put(hay[:index])
	putText(&st, content)
	st.put(hay[index:])
	b.commit(st)
}

// Insert inserts s before offset index. An index outside [0, Len()] is a
// no-op.
func (b *TextBuffer) Insert(index int, s string) {
	insert(b, index, s)
}

// InsertBytes inserts p before offset index.
func (b *TextBuffer) InsertBytes(index int, p []byte) {
	insert(b, index, p)
}

// InsertByte inserts c before offset index.
func (b *TextBuffer) InsertByte(index int, c byte) {
	if index < 0 || index > b.length {
		return
	}
	b.EnsureCapacity(b.length + 1)

	hay := b.view()
	st := b.stage()
	st.put(hay[:index])
	st.putRepeat(c, 1)
	st.put(hay[index:])
	b.commit(st)
}

// InsertBuffer inserts a copy of o's payload before offset index. o may be b
// itself.
func (b *TextBuffer) InsertBuffer(index int, o *TextBuffer) {
	insert(b, index, o.view())
}

// Remove deletes up to count bytes starting at index. count is clamped to the
// end of the payload; an index outside [0, Len()) or a non-positive count is
// a no-op.
func (b *TextBuffer) Remove(index, count int) {
	if index < 0 || index >= b.length || count <= 0 {
		return
	}
	if count > b.length-index {
		count = b.length - index
	}

	hay := b.view()
	st := b.stage()
	st.put(hay[:index])
	st.put(hay[index+count:])
	b.commit(st)
}

// RemoveFrom deletes everything from index to the end.
func (b *TextBuffer) RemoveFrom(index int) {
	b.Remove(index, b.length-index)
}

func removeAll[T Text](b *TextBuffer, needle T) int {
	hay := b.view()
	found := countIn(hay, needle, 0, b.length)
	if found == 0 {
		return 0
	}

	n := len(needle)
	st := b.stage()
	cursor := 0
	for {
		at := indexIn(hay, needle, cursor, b.length)
		if at < 0 {
			break
		}
		st.put(hay[cursor:at])
		cursor = at + n
	}
	st.put(hay[cursor:])
	b.commit(st)
	return found
}

// RemoveAll deletes every non-overlapping occurrence of needle and returns
// how many were removed. An empty needle removes nothing.
func (b *TextBuffer) RemoveAll(needle string) int {
	return removeAll(b, needle)
}

// RemoveAllBuffer deletes every non-overlapping occurrence of o's payload.
func (b *TextBuffer) RemoveAllBuffer(o *TextBuffer) int {
	return removeAll(b, o.view())
}

// RemoveAllByte deletes every occurrence of c.
func (b *TextBuffer) RemoveAllByte(c byte) int {
	hay := b.view()
	found := countByteIn(hay, c, 0, b.length)
	if found == 0 {
		return 0
	}

	st := b.stage()
	for _, x := range hay {
		if x != c {
			st.dst[st.n] = x
			st.n++
		}
	}
	b.commit(st)
	return found
}

func replace[T Text](b *TextBuffer, index, count int, content T) {
	if index < 0 || index >= b.length {
		return
	}
	if count < 0 {
		count = 0
	}
	if count > b.length-index {
		count = b.length - index
	}
	b.EnsureCapacity(b.length - count + len(content))

	hay := b.view()
	st := b.stage()
	st.put(hay[:index])
	putText(&st, content)
	st.put(hay[index+count:])
	b.commit(st)
}

// Replace swaps up to count bytes starting at index for s, in one staged
// pass. count is clamped to the end of the payload; an index outside
// [0, Len()) is a no-op.
func (b *TextBuffer) Replace(index, count int, s string) {
	replace(b, index, count, s)
}

// ReplaceBuffer swaps up to count bytes starting at index for a copy of o's
// payload. o may be b itself.
func (b *TextBuffer) ReplaceBuffer(index, count int, o *TextBuffer) {
	replace(b, index, count, o.view())
}

// ReplaceAll swaps every non-overlapping occurrence of old for new and
// returns the number of replacements. An empty old replaces nothing.
func (b *TextBuffer) ReplaceAll(old, new string) int {
	found := countIn(b.view(), old, 0, b.length)
	if found == 0 {
		return 0
	}
	b.EnsureCapacity(b.length + found*(len(new)-len(old)))

	hay := b.view()
	st := b.stage()
	cursor := 0
	for {
		at := indexIn(hay, old, cursor, b.length)
		if at < 0 {
			break
		}
		st.put(hay[cursor:at])
		st.putString(new)
		cursor = at + len(old)
	}
	st.put(hay[cursor:])
	b.commit(st)
	return found
}

// ReplaceAt overwrites bytes starting at index with s without changing the
// length. s must end strictly before the last byte of the payload; otherwise
// the call is a no-op.
func (b *TextBuffer) ReplaceAt(index int, s string) {
	if index < 0 || index+len(s) >= b.length {
		return
	}
	copy(b.primary.B[index:], s)
}

// PadLeft prepends c until the payload is target bytes long. It does nothing
// when the payload is already that long.
func (b *TextBuffer) PadLeft(target int, c byte) {
	if b.length >= target {
		return
	}
	b.EnsureCapacity(target)

	hay := b.view()
	st := b.stage()
	st.putRepeat(c, target-b.length)
	st.put(hay)
	b.commit(st)
}

// PadRight appends c until the payload is target bytes long. It does nothing
// when the payload is already that long.
func (b *TextBuffer) PadRight(target int, c byte) {
	if b.length >= target {
		return
	}
	b.EnsureCapacity(target)

	hay := b.view()
	st := b.stage()
	st.put(hay)
	st.putRepeat(c, target-b.length)
	b.commit(st)
}

var asciiSpace = [256]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}

func isSpace(c byte) bool { return asciiSpace[c] }

func inCutset(cutset string) func(byte) bool {
	return func(c byte) bool {
		for i := 0; i < len(cutset); i++ {
			if cutset[i] == c {
				return true
			}
		}
		return false
	}
}

func (b *TextBuffer) trim(drop func(byte) bool, left, right bool) {
	hay := b.view()
	start, end := 0, b.length
	if left {
		for start < end && drop(hay[start]) {
			start++
		}
	}
	if right {
		for end > start && drop(hay[end-1]) {
			end--
		}
	}
	if start == 0 && end == b.length {
		return
	}

	st := b.stage()
	st.put(hay[start:end])
	b.commit(st)
}

// TrimSpace removes leading and trailing ASCII whitespace.
func (b *TextBuffer) TrimSpace() { b.trim(isSpace, true, true) }

// Trim removes leading and trailing bytes contained in cutset.
func (b *TextBuffer) Trim(cutset string) { b.trim(inCutset(cutset), true, true) }

// TrimLeft removes leading bytes contained in cutset.
func (b *TextBuffer) TrimLeft(cutset string) { b.trim(inCutset(cutset), true, false) }

// TrimRight removes trailing bytes contained in cutset.
func (b *TextBuffer) TrimRight(cutset string) { b.trim(inCutset(cutset), false, true) }

// Fill overwrites the payload with n copies of c, growing as needed.
// A negative n is a no-op.
func (b *TextBuffer) Fill(n int, c byte) {
	if n < 0 {
		return
	}
	b.EnsureCapacity(n)
	for i := 0; i < n; i++ {
		b.primary.B[i] = c
	}
	b.primary.B[n] = 0
	b.length = n
}

// SplitAt returns two new buffers holding [0, index) and [index, Len()).
// index is clamped to [0, Len()]. b is left untouched and shares no storage
// with the results, which report to b's Tracker.
func (b *TextBuffer) SplitAt(index int) (left, right *TextBuffer) {
	if index < 0 {
		index = 0
	}
	if index > b.length {
		index = b.length
	}
	hay := b.view()
	return fromText(b.tracker, hay[:index]), fromText(b.tracker, hay[index:])
}

// ToUpper maps ASCII lowercase letters to uppercase in place.
func (b *TextBuffer) ToUpper() {
	for i, c := range b.view() {
		if 'a' <= c && c <= 'z' {
			b.primary.B[i] = c - ('a' - 'A')
		}
	}
}

// ToLower maps ASCII uppercase letters to lowercase in place.
func (b *TextBuffer) ToLower() {
	for i, c := range b.view() {
		if 'A' <= c && c <= 'Z' {
			b.primary.B[i] = c + ('a' - 'A')
		}
	}
}
