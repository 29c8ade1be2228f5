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

package stream

import (
	"context"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
)

// BufferInputStream yields one SharedString already held in memory, then
// reports end-of-stream on every subsequent call.
type BufferInputStream struct {
	data buffer.SharedString
	done bool
}

// NewBufferInputStream wraps an in-memory SharedString as a one-shot
// input stream.
func NewBufferInputStream(data buffer.SharedString) *BufferInputStream {
	return &BufferInputStream{data: data}
}

func (b *BufferInputStream) Read(ctx context.Context) (buffer.SharedString, bool, error) {
	if err := ctx.Err(); err != nil {
		return buffer.SharedString{}, false, err
	}
	if b.done {
		return buffer.SharedString{}, true, nil
	}
	b.done = true
	return b.data, b.data.Empty(), nil
}

func (b *BufferInputStream) SizeHint() SizeHint {
	if b.done {
		return SizeHint{Value: 0, Exact: true}
	}
	return SizeHint{Value: int64(b.data.Len()), Exact: true}
}

// BufferOutputStream appends every written packet's bytes into an
// internal Builder, exposing the accumulated result as a single
// SharedString.
type BufferOutputStream struct {
	b *buffer.Builder
}

// NewBufferOutputStream returns an empty buffer-backed output sink.
func NewBufferOutputStream() *BufferOutputStream {
	return &BufferOutputStream{b: buffer.NewBuilder()}
}

func (b *BufferOutputStream) Write(ctx context.Context, p *buffer.Packet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, frag := range p.Fragments() {
		b.b.Append(frag.Bytes())
	}
	return nil
}

// Bytes returns everything written so far.
func (b *BufferOutputStream) Bytes() buffer.SharedString {
	return b.b.Build()
}
