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
	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
)

// WriteToNullMessage is the exact text attached to the LogicError
// returned when writing to a nil OutputStream.
const WriteToNullMessage = "write to null stream"

// Write is a nil-safe helper around OutputStream.Write: writing through
// a nil OutputStream value fails with a LogicError instead of panicking,
// matching the spec's documented behavior for a null output sink.
func Write(ctx context.Context, out OutputStream, p *buffer.Packet) error {
	if out == nil {
		return liberr.New(liberr.LogicError.Uint16(), WriteToNullMessage)
	}
	return out.Write(ctx, p)
}
