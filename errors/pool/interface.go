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

// Package pool collects errors gathered from several concurrent operations
// (e.g. every connection still draining at shutdown) into one combined
// error, so a caller like httpserver.Server.drain can report every failure
// instead of only the first or last one observed.
package pool

import (
	"sync/atomic"

	libatm "github.com/cpv-project/cpv-framework-sub001/atomic"
)

// Pool collects errors from concurrent goroutines under one sequential
// index and combines them into a single error.
type Pool interface {
	// Add appends each error in e to the pool under the next sequential
	// index, one index per non-nil error. Nil errors are ignored.
	Add(e ...error)

	// Error returns every error added so far combined into one, or nil if
	// none were added.
	Error() error
}

// New returns an empty Pool ready for concurrent use.
func New() Pool {
	return &mod{
		s: new(atomic.Uint64),
		l: libatm.NewMapTyped[uint64, error](),
	}
}
