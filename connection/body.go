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

package connection

import (
	"context"
	"net"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/httpparser"
	"github.com/cpv-project/cpv-framework-sub001/stream"
)

// bodyStream is the request body InputStream step 3 of the per-connection
// loop constructs: it starts from whatever bytes the head-section read
// already buffered past the blank line, then (lazily, on further Read
// calls) pulls more bytes straight off the socket, honoring whichever
// framing the parser decided (none, Content-Length, or chunked).
type bodyStream struct {
	conn    net.Conn
	framing httpparser.BodyFraming

	leftover []byte

	remaining int64 // Content-Length mode only

	chunk   *httpparser.ChunkDecoder
	chunkIn []byte // undecoded bytes read from the socket, chunked mode only

	readChunk int
	done      bool
}

func newBodyStream(conn net.Conn, framing httpparser.BodyFraming, contentLength int64, leftover []byte, readChunk int) *bodyStream {
	b := &bodyStream{
		conn:      conn,
		framing:   framing,
		leftover:  leftover,
		remaining: contentLength,
		readChunk: readChunk,
	}
	if framing == httpparser.BodyFramingChunked {
		b.chunk = httpparser.NewChunkDecoder()
	}
	if framing == httpparser.BodyFramingNone {
		b.done = true
	}
	return b
}

func (b *bodyStream) SizeHint() stream.SizeHint {
	switch b.framing {
	case httpparser.BodyFramingContentLength:
		return stream.SizeHint{Value: b.remaining, Exact: true}
	default:
		return stream.SizeHint{}
	}
}

func (b *bodyStream) Read(ctx context.Context) (buffer.SharedString, bool, error) {
	if b.done {
		return buffer.SharedString{}, true, nil
	}
	if err := ctx.Err(); err != nil {
		return buffer.SharedString{}, false, err
	}

	switch b.framing {
	case httpparser.BodyFramingContentLength:
		return b.readContentLength(ctx)
	case httpparser.BodyFramingChunked:
		return b.readChunked(ctx)
	default:
		b.done = true
		return buffer.SharedString{}, true, nil
	}
}

func (b *bodyStream) readContentLength(ctx context.Context) (buffer.SharedString, bool, error) {
	if b.remaining == 0 {
		b.done = true
		return buffer.SharedString{}, true, nil
	}

	if len(b.leftover) > 0 {
		n := int64(len(b.leftover))
		if n > b.remaining {
			n = b.remaining
		}
		chunk := b.leftover[:n]
		b.leftover = b.leftover[n:]
		b.remaining -= n
		view := buffer.FromBytes(chunk)
		if b.remaining == 0 {
			b.done = true
		}
		return view, false, nil
	}

	if dl, ok := ctx.Deadline(); ok {
		_ = b.conn.SetReadDeadline(dl)
	}

	want := int64(b.readChunk)
	if want > b.remaining {
		want = b.remaining
	}
	buf := make([]byte, want)
	n, err := b.conn.Read(buf)
	if n > 0 {
		b.remaining -= int64(n)
		if b.remaining == 0 {
			b.done = true
		}
		return buffer.FromBytes(buf[:n]), b.done, nil
	}
	b.done = true
	if err != nil {
		return buffer.SharedString{}, true, err
	}
	return buffer.SharedString{}, true, nil
}

func (b *bodyStream) readChunked(ctx context.Context) (buffer.SharedString, bool, error) {
	for {
		if len(b.chunkIn) > 0 {
			var emitted []byte
			consumed, done, err := b.chunk.Decode(b.chunkIn, func(p []byte) {
				emitted = append(emitted, p...)
			})
			b.chunkIn = b.chunkIn[consumed:]
			if err != nil {
				b.done = true
				return buffer.SharedString{}, true, err
			}
			if done {
				b.done = true
			}
			if len(emitted) > 0 {
				return buffer.FromBytes(emitted), b.done, nil
			}
			if b.done {
				return buffer.SharedString{}, true, nil
			}
			continue
		}

		if len(b.leftover) > 0 {
			b.chunkIn = b.leftover
			b.leftover = nil
			continue
		}

		if dl, ok := ctx.Deadline(); ok {
			_ = b.conn.SetReadDeadline(dl)
		}
		buf := make([]byte, b.readChunk)
		n, err := b.conn.Read(buf)
		if n > 0 {
			b.chunkIn = buf[:n]
			continue
		}
		b.done = true
		if err != nil {
			return buffer.SharedString{}, true, err
		}
		return buffer.SharedString{}, true, nil
	}
}
