/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package buffer

import "sync/atomic"

// Builder accumulates bytes and hands out zero-copy SharedString views
// into its backing Buffer. Append either writes into the current Buffer's
// spare capacity or allocates a fresh Buffer at least
// max(new_len, 2*cap, 512) bytes, copies the existing content plus the
// new bytes, and atomically swaps the backing pointer. Views taken before
// the swap keep pointing at the old Buffer, which the view's own
// reference keeps alive; they are never invalidated by a later Append.
type Builder struct {
	cur atomic.Pointer[Buffer]
	len int
}

// NewBuilder returns an empty Builder with no backing allocation yet; the
// first Append allocates one sized by growTo(0, n).
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.len
}

// Append writes p to the builder, growing the backing Buffer if needed,
// and returns a SharedString view over exactly the bytes just written.
// The returned view holds a reference on the backing Buffer; callers that
// keep it past the Builder's own lifetime must eventually call Release.
func (b *Builder) Append(p []byte) SharedString {
	if len(p) == 0 {
		cur := b.cur.Load()
		if cur != nil {
			cur.Share()
			return fromOwned(cur.data[b.len:b.len], cur)
		}
		return SharedString{}
	}

	cur := b.cur.Load()
	newLen := b.len + len(p)

	if cur == nil || cap(cur.data) < newLen {
		oldCap := 0
		if cur != nil {
			oldCap = cap(cur.data)
		}
		grown := newBufferCap(newLen, growTo(oldCap, newLen))
		if cur != nil {
			copy(grown.data, cur.data[:b.len])
		}
		copy(grown.data[b.len:newLen], p)
		grown.data = grown.data[:newLen]
		b.cur.Store(grown)
		cur = grown
	} else {
		cur.data = cur.data[:newLen]
		copy(cur.data[b.len:newLen], p)
	}

	start := b.len
	b.len = newLen

	cur.Share()
	return fromOwned(cur.data[start:newLen], cur)
}

// AppendString is a convenience wrapper around Append for string input.
func (b *Builder) AppendString(s string) SharedString {
	return b.Append([]byte(s))
}

// Bytes returns the live bytes written to the builder so far. The
// returned slice shares storage with the builder's current Buffer and
// must not be retained past further Appends that might reallocate.
func (b *Builder) Bytes() []byte {
	cur := b.cur.Load()
	if cur == nil {
		return nil
	}
	return cur.data[:b.len]
}

// Build finalizes the builder into a single SharedString view over
// everything written so far, taking a reference on the backing Buffer.
func (b *Builder) Build() SharedString {
	cur := b.cur.Load()
	if cur == nil {
		return SharedString{}
	}
	cur.Share()
	return fromOwned(cur.data[:b.len], cur)
}

// Reset clears the builder back to empty, dropping its reference on the
// current backing Buffer (if the builder itself held one beyond the
// implicit constructor reference; in practice the Buffer is freed once
// every view taken from it is also released).
func (b *Builder) Reset() {
	b.cur.Store(nil)
	b.len = 0
}
