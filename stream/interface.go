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

// Package stream implements the InputStream/OutputStream abstractions
// bodies and responses flow through. Both interfaces are suspension
// points: a concrete implementation backed by a socket returns to the Go
// scheduler's netpoller on every Read/Write call, which is this
// runtime's equivalent of the reactor yielding at an I/O boundary.
package stream

import (
	"context"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
)

// SizeHint describes what a stream knows about its own remaining size.
// Exact is true when Value is precise (e.g. a Content-Length-framed
// body); otherwise Value is an approximation or zero when nothing is
// known.
type SizeHint struct {
	Value int64
	Exact bool
}

// InputStream yields SharedString fragments until exhausted. Reading
// past the end yields an empty fragment with done=true on every
// subsequent call; it is not an error to read an already-exhausted
// stream.
type InputStream interface {
	// Read returns the next fragment and whether the stream has ended.
	// A zero-length fragment with done=false is valid (nothing was
	// available yet without blocking past the suspension point) but
	// concrete implementations here always either block until data is
	// available or report done=true.
	Read(ctx context.Context) (buffer.SharedString, bool, error)

	// SizeHint reports what is known about the remaining size.
	SizeHint() SizeHint
}

// OutputStream consumes packets. Semantics are best-effort append: the
// sink decides framing (a socket stream writes verbatim, a buffer-backed
// stream appends to its builder).
type OutputStream interface {
	Write(ctx context.Context, p *buffer.Packet) error
}
