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

import "container/list"

// LRU is a small, bounded least-recently-used cache. It is not used by
// the request/response lazy-parse cache (that cache is a single-slot,
// pointer-identity-invalidated cache per request, by design) — it backs
// cold-path fallback bookkeeping such as a header-name table's overflow
// cache, where a bounded multi-entry LRU is the right shape.
type LRU[K comparable, V any] struct {
	cap   int
	items map[K]*list.Element
	order *list.List
}

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

// NewLRU returns an LRU bounded to capacity entries. A non-positive
// capacity is treated as 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		cap:   capacity,
		items: make(map[K]*list.Element, capacity),
		order: list.New(),
	}
}

// Get returns the value for key and marks it most-recently-used.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	var zero V
	el, ok := l.items[key]
	if !ok {
		return zero, false
	}
	l.order.MoveToFront(el)
	return el.Value.(*lruEntry[K, V]).val, true
}

// Put inserts or updates key's value, evicting the least-recently-used
// entry if the cache is over capacity.
func (l *LRU[K, V]) Put(key K, val V) {
	if el, ok := l.items[key]; ok {
		el.Value.(*lruEntry[K, V]).val = val
		l.order.MoveToFront(el)
		return
	}

	el := l.order.PushFront(&lruEntry[K, V]{key: key, val: val})
	l.items[key] = el

	if l.order.Len() > l.cap {
		back := l.order.Back()
		if back != nil {
			l.order.Remove(back)
			delete(l.items, back.Value.(*lruEntry[K, V]).key)
		}
	}
}

// Len returns the number of entries currently cached.
func (l *LRU[K, V]) Len() int {
	return l.order.Len()
}

// Remove evicts key, reporting whether it was present.
func (l *LRU[K, V]) Remove(key K) bool {
	el, ok := l.items[key]
	if !ok {
		return false
	}
	l.order.Remove(el)
	delete(l.items, key)
	return true
}
