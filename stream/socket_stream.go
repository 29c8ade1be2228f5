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
	"errors"
	"io"
	"net"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
)

// readChunk is the size of one socket read; it is also the size of the
// owning Buffer each read allocates, since the returned SharedString
// view must keep bytes alive independent of further reads.
const readChunk = 16 * 1024

// SocketInputStream reads from a net.Conn. Every Read call is the actual
// suspension point: net.Conn.Read blocks the calling goroutine on the Go
// runtime's netpoller, which is this runtime's equivalent of returning
// control to the reactor until the socket is readable. ctx cancellation
// is honored via the connection's deadline, set from ctx when it carries
// one, and polled between reads.
type SocketInputStream struct {
	conn net.Conn
	done bool
}

// NewSocketInputStream wraps conn as a streaming input source.
func NewSocketInputStream(conn net.Conn) *SocketInputStream {
	return &SocketInputStream{conn: conn}
}

func (s *SocketInputStream) Read(ctx context.Context) (buffer.SharedString, bool, error) {
	if s.done {
		return buffer.SharedString{}, true, nil
	}
	if err := ctx.Err(); err != nil {
		return buffer.SharedString{}, false, err
	}

	if dl, ok := ctx.Deadline(); ok {
		_ = s.conn.SetReadDeadline(dl)
	}

	buf := make([]byte, readChunk)
	n, err := s.conn.Read(buf)
	if n > 0 {
		view := buffer.FromBytes(buf[:n])
		if err != nil {
			s.done = true
			if errors.Is(err, io.EOF) {
				return view, true, nil
			}
			return view, true, err
		}
		return view, false, nil
	}

	s.done = true
	if err != nil && !errors.Is(err, io.EOF) {
		return buffer.SharedString{}, true, err
	}
	return buffer.SharedString{}, true, nil
}

func (s *SocketInputStream) SizeHint() SizeHint {
	return SizeHint{}
}

// SocketOutputStream writes packets to a net.Conn using a gather-write
// (net.Buffers), the zero-copy path for flushing a response.
type SocketOutputStream struct {
	conn net.Conn
}

// NewSocketOutputStream wraps conn as a streaming output sink.
func NewSocketOutputStream(conn net.Conn) *SocketOutputStream {
	return &SocketOutputStream{conn: conn}
}

func (s *SocketOutputStream) Write(ctx context.Context, p *buffer.Packet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || p.Empty() {
		return nil
	}

	if dl, ok := ctx.Deadline(); ok {
		_ = s.conn.SetWriteDeadline(dl)
	}

	nb := net.Buffers(p.NetBuffers())
	_, err := nb.WriteTo(s.conn)
	return err
}
