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

// Packet is an ordered sequence of SharedString fragments, written to a
// connection as a single gather-write (net.Buffers). Appending another
// Packet concatenates fragments without copying bytes.
type Packet struct {
	frags []SharedString
}

// NewPacket returns an empty Packet ready to accept fragments.
func NewPacket() *Packet {
	return &Packet{}
}

// Add appends one fragment to the packet. Empty fragments are kept as-is
// (an empty SharedString is a valid, zero-length gather-write entry).
func (p *Packet) Add(s SharedString) *Packet {
	p.frags = append(p.frags, s)
	return p
}

// AddPacket concatenates another packet's fragments onto this one.
func (p *Packet) AddPacket(o *Packet) *Packet {
	if o == nil {
		return p
	}
	p.frags = append(p.frags, o.frags...)
	return p
}

// Fragments returns the ordered fragment list. The caller must not mutate
// the returned slice's contents.
func (p *Packet) Fragments() []SharedString {
	if p == nil {
		return nil
	}
	return p.frags
}

// Len returns the total byte length across all fragments.
func (p *Packet) Len() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, f := range p.frags {
		n += f.Len()
	}
	return n
}

// Empty reports whether the packet carries no bytes at all.
func (p *Packet) Empty() bool {
	return p.Len() == 0
}

// NetBuffers renders the packet as a [][]byte suitable for net.Buffers'
// gather-write (net.Buffers is defined as type net.Buffers [][]byte; this
// package does not import net to stay decoupled from the transport, so
// callers wrap the returned slice themselves: net.Buffers(p.NetBuffers())).
func (p *Packet) NetBuffers() [][]byte {
	if p == nil {
		return nil
	}
	out := make([][]byte, len(p.frags))
	for i, f := range p.frags {
		out[i] = f.Bytes()
	}
	return out
}

// Release drops every fragment's reference on its owner, if any. Call
// once the packet has been fully written and will not be reused.
func (p *Packet) Release() {
	if p == nil {
		return
	}
	for _, f := range p.frags {
		f.Release()
	}
}
