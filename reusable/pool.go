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

import "context"

// DefaultCapacity is the default per-type free-list capacity, matching
// the spec's own example figure of roughly 28000 recyclable objects
// before a released object is truly discarded instead of recycled.
const DefaultCapacity = 28000

// Pool is a per-core slot's free-list for one Reusable type T. It is
// owned by exactly one goroutine (the slot's own) and carries no
// internal locking.
type Pool[T Reusable] struct {
	slot int
	cap  int
	new  NewFunc[T]
	free []T
}

// NewPool returns a Pool bound to the given slot id (stored and reported
// by Slot only; it is not checked on acquire or release), with capacity
// free slots before a released
// object is discarded instead of recycled, and newFn to construct a
// fresh T when the free-list is empty.
func NewPool[T Reusable](slot, capacity int, newFn NewFunc[T]) *Pool[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool[T]{
		slot: slot,
		cap:  capacity,
		new:  newFn,
		free: make([]T, 0, capacity),
	}
}

// Slot returns the core slot id this pool belongs to.
func (p *Pool[T]) Slot() int {
	return p.slot
}

// Len returns the number of objects currently sitting in the free-list.
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Acquire returns a Handle wrapping either a recycled object (with Reset
// applied) or a freshly allocated one. ctx is checked once up front for
// cancellation; Reset itself is not cancellable (per spec, it is a pure
// state-reset operation, not an I/O suspension point).
func (p *Pool[T]) Acquire(ctx context.Context, args ...any) (*Handle[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var v T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		v = p.new()
	}

	if err := v.Reset(args...); err != nil {
		return nil, err
	}

	return &Handle[T]{pool: p, value: v, slot: p.slot}, nil
}

// release is called by Handle.Release; it clears the object's internal
// references via FreeResources and either returns it to the free-list or
// lets it be discarded, depending on current capacity.
func (p *Pool[T]) release(v T) {
	v.FreeResources()
	if len(p.free) < p.cap {
		p.free = append(p.free, v)
	}
}
