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

package reusable

// Handle wraps an acquired T and returns it to its owning Pool on
// Release. A Handle is not safe to move across core slots: releasing one
// from a goroutine other than its owning slot's is undefined behavior,
// matching spec semantics, since nothing here synchronizes the
// underlying Pool's free-list.
type Handle[T Reusable] struct {
	pool     *Pool[T]
	value    T
	slot     int
	released bool
}

// Value returns the wrapped object.
func (h *Handle[T]) Value() T {
	return h.value
}

// Slot returns the core slot id this handle was acquired on.
func (h *Handle[T]) Slot() int {
	return h.slot
}

// Release invokes FreeResources on the wrapped object and returns it to
// the pool's free-list (or lets it be discarded if the pool is at
// capacity). Calling Release more than once is a no-op after the first
// call.
func (h *Handle[T]) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.pool.release(h.value)
}
