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

// PacketInputStream replays a Packet's fragments one at a time, the
// stream form of an already-assembled gather-write payload (used when a
// handler wants to re-read a response body it built as a Packet).
type PacketInputStream struct {
	p   *buffer.Packet
	pos int
}

// NewPacketInputStream wraps p's fragments as an input stream.
func NewPacketInputStream(p *buffer.Packet) *PacketInputStream {
	return &PacketInputStream{p: p}
}

func (p *PacketInputStream) Read(ctx context.Context) (buffer.SharedString, bool, error) {
	if err := ctx.Err(); err != nil {
		return buffer.SharedString{}, false, err
	}
	frags := p.p.Fragments()
	if p.pos >= len(frags) {
		return buffer.SharedString{}, true, nil
	}
	f := frags[p.pos]
	p.pos++
	return f, p.pos >= len(frags), nil
}

func (p *PacketInputStream) SizeHint() SizeHint {
	total := int64(0)
	frags := p.p.Fragments()
	for i := p.pos; i < len(frags); i++ {
		total += int64(frags[i].Len())
	}
	return SizeHint{Value: total, Exact: true}
}

// PacketOutputStream accumulates written packets' fragments into one
// growing Packet, used to build up a response body piecemeal before it
// is handed to the connection's writer.
type PacketOutputStream struct {
	p *buffer.Packet
}

// NewPacketOutputStream returns an empty packet-backed output sink.
func NewPacketOutputStream() *PacketOutputStream {
	return &PacketOutputStream{p: buffer.NewPacket()}
}

func (p *PacketOutputStream) Write(ctx context.Context, pkt *buffer.Packet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.p.AddPacket(pkt)
	return nil
}

// Packet returns the accumulated packet.
func (p *PacketOutputStream) Packet() *buffer.Packet {
	return p.p
}
