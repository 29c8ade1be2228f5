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

// Package buffer implements the owning byte buffer and zero-copy view types
// that every other package in this module borrows from: Buffer (an owning,
// share-counted byte region), SharedString (a pointer+length view into a
// Buffer, a static literal, or no owner at all), Packet (an ordered sequence
// of SharedString fragments suitable for a gather-write), and Builder (the
// append-with-growth primitive that produces new Buffers).
package buffer

import "sync/atomic"

// minGrowth is the floor a Builder's backing Buffer grows to, per the
// append contract: max(new_len, 2*cap, 512).
const minGrowth = 512

// Buffer is an owning, heap-allocated byte region with a reference count.
// A Buffer is freed (becomes eligible for GC) once its last reference
// drops; there is no explicit free call, Go's GC reclaims it. The
// share-count is bookkeeping only: a Builder does not consult it before
// appending into a Buffer's storage.
type Buffer struct {
	data  []byte
	share atomic.Int32
}

// NewBuffer allocates a new owning Buffer that copies b. The returned
// Buffer carries a single reference, held implicitly by the caller.
func NewBuffer(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{data: data}
}

// newBufferCap allocates an owning Buffer with the given length and
// capacity, both zeroed beyond length.
func newBufferCap(length, capacity int) *Buffer {
	if capacity < length {
		capacity = length
	}
	return &Buffer{data: make([]byte, length, capacity)}
}

// Bytes returns the live byte slice backing this Buffer. Callers must not
// retain the slice past the Buffer's own lifetime guarantees (i.e. past
// whatever SharedString or Builder keeps the Buffer referenced).
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of live bytes in the Buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Share increments the reference count and returns the same Buffer
// pointer; it never copies bytes. Pair with Release when the reference is
// dropped.
func (b *Buffer) Share() *Buffer {
	if b == nil {
		return nil
	}
	b.share.Add(1)
	return b
}

// Release decrements the reference count. It reports the count remaining
// after the decrement.
func (b *Buffer) Release() int32 {
	if b == nil {
		return 0
	}
	return b.share.Add(-1)
}

// RefCount reports the current reference count. A freshly constructed
// Buffer starts at zero: the count only turns positive once something
// calls Share, mirroring the convention that the constructor's own
// pointer is an implicit, uncounted reference.
func (b *Buffer) RefCount() int32 {
	if b == nil {
		return 0
	}
	return b.share.Load()
}

// sole reports whether this Buffer has no outstanding shared references
// beyond the implicit owning one, i.e. whether it is safe to mutate the
// backing array in place.
func (b *Buffer) sole() bool {
	return b.share.Load() == 0
}

// growTo returns the capacity a Buffer with oldCap bytes of capacity must
// grow to in order to hold newLen bytes, per the append contract:
// max(new_len, 2*cap, 512).
func growTo(oldCap, newLen int) int {
	g := newLen
	if 2*oldCap > g {
		g = 2 * oldCap
	}
	if minGrowth > g {
		g = minGrowth
	}
	return g
}
