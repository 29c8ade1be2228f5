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

// StringInputStream is a one-shot stream over a static Go string,
// allocating no owning Buffer (it uses buffer.FromString, a no-owner
// view) — the cheapest input stream for handler-generated literal
// bodies.
type StringInputStream struct {
	data buffer.SharedString
	done bool
}

// NewStringInputStream wraps s as a one-shot input stream.
func NewStringInputStream(s string) *StringInputStream {
	return &StringInputStream{data: buffer.FromString(s)}
}

func (s *StringInputStream) Read(ctx context.Context) (buffer.SharedString, bool, error) {
	if err := ctx.Err(); err != nil {
		return buffer.SharedString{}, false, err
	}
	if s.done {
		return buffer.SharedString{}, true, nil
	}
	s.done = true
	return s.data, s.data.Empty(), nil
}

func (s *StringInputStream) SizeHint() SizeHint {
	if s.done {
		return SizeHint{Value: 0, Exact: true}
	}
	return SizeHint{Value: int64(s.data.Len()), Exact: true}
}
