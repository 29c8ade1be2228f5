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

// MultiInputStream concatenates several SharedString fragments,
// delivered one at a time, ending when all are exhausted. It backs
// bodies assembled from more than one rolling-buffer fill.
type MultiInputStream struct {
	frags []buffer.SharedString
	pos   int
}

// NewMultiInputStream wraps an ordered set of fragments as a single
// input stream.
func NewMultiInputStream(frags ...buffer.SharedString) *MultiInputStream {
	return &MultiInputStream{frags: frags}
}

func (m *MultiInputStream) Read(ctx context.Context) (buffer.SharedString, bool, error) {
	if err := ctx.Err(); err != nil {
		return buffer.SharedString{}, false, err
	}
	if m.pos >= len(m.frags) {
		return buffer.SharedString{}, true, nil
	}
	f := m.frags[m.pos]
	m.pos++
	return f, m.pos >= len(m.frags), nil
}

func (m *MultiInputStream) SizeHint() SizeHint {
	total := int64(0)
	for i := m.pos; i < len(m.frags); i++ {
		total += int64(m.frags[i].Len())
	}
	return SizeHint{Value: total, Exact: true}
}
