/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package context backs pipeline.Context's per-request key/value store: a
// context.Context that also holds a concurrent-safe map, so a handler that
// hands its pipeline.Context to a worker goroutine can still Get/Set and the
// goroutine can still select on cancellation via the same value.
package context

import (
	"context"

	libatm "github.com/cpv-project/cpv-framework-sub001/atomic"
)

// Config is a context.Context plus a concurrent-safe key/value store keyed
// by T, scoped to one request's lifetime.
type Config[T comparable] interface {
	context.Context

	// Load loads the value stored for key, if any.
	Load(key T) (val interface{}, ok bool)
	// Store stores val for key, overwriting any previous value. A nil
	// val is ignored, and so is every Store once the context is done.
	Store(key T, val interface{})

	// GetContext returns the underlying context.Context, or
	// context.Background if none was supplied.
	GetContext() context.Context
}

// New returns a Config wrapping ctx (or context.Background if ctx is nil)
// with an empty store.
func New[T comparable](ctx context.Context) Config[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	return &ccx[T]{
		m: libatm.NewMapAny[T](),
		x: ctx,
	}
}
