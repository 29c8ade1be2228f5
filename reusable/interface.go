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

// Package reusable implements the per-core object pool discipline: heavy
// objects (requests, responses, streams) are acquired from a thread-local
// free-list instead of allocated fresh on every request, and returned to
// the free-list on release after their internal references are cleared.
//
// Pools are not safe for concurrent use by design — a core slot is only
// ever touched by the single goroutine that owns it — so none of the
// types here take a lock.
package reusable

import "context"

// Reusable is implemented by every type a Pool can manage. Reset must
// leave the object in the exact state a freshly-constructed one would be
// in; FreeResources clears internal references (so they don't keep
// unrelated objects alive between uses) without tearing the object down.
type Reusable interface {
	Reset(args ...any) error
	FreeResources()
}

// NewFunc allocates a brand-new T, used by a Pool the first time its
// free-list is empty.
type NewFunc[T Reusable] func() T

// Acquirer is satisfied by Pool[T]; it exists so callers that only need
// to acquire (not configure) a pool can depend on an interface instead of
// the concrete generic type.
type Acquirer[T Reusable] interface {
	Acquire(ctx context.Context, args ...any) (*Handle[T], error)
}
