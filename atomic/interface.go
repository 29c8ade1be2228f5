/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

// Package atomic wraps sync.Map behind two generic, concurrent-safe map
// views: Map, keyed but untyped-value (the form context.Config needs, since
// a request's stored values are heterogeneous), and MapTyped, keyed and
// typed-value (the form errors/pool needs, since every stored value is an
// error).
package atomic

import (
	"sync"
)

// Map is a concurrent-safe map from K to an untyped value.
type Map[K comparable] interface {
	Load(key K) (value any, ok bool)
	Store(key K, value any)
	Delete(key K)

	// Range calls f for each key/value pair in an unspecified order,
	// stopping early if f returns false. An entry whose key does not
	// type-assert to K (shouldn't happen via this package's own Store,
	// but guards against a misused raw sync.Map), or whose key is K's
	// zero value, is deleted rather than passed to f.
	Range(f func(key K, value any) bool)
}

// MapTyped is a concurrent-safe map from K to a value of type V.
type MapTyped[K comparable, V any] interface {
	Load(key K) (value V, ok bool)
	Store(key K, value V)

	// Range calls f for each key/value pair in an unspecified order,
	// stopping early if f returns false.
	Range(f func(key K, value V) bool)
}

// NewMapAny returns an empty Map keyed by K, backed by a sync.Map.
func NewMapAny[K comparable]() Map[K] {
	return &ma[K]{
		m: sync.Map{},
	}
}

// NewMapTyped returns an empty MapTyped keyed by K with values of type V,
// backed by a sync.Map.
func NewMapTyped[K comparable, V any]() MapTyped[K, V] {
	return &mt[K, V]{
		m: NewMapAny[K](),
	}
}
