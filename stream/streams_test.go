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

package stream_test

import (
	"context"
	"net"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/stream"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BufferInputStream", func() {
	It("yields its data once then reports end-of-stream", func() {
		s := stream.NewBufferInputStream(buffer.FromString("payload"))

		v, done, err := s.Read(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(v.String()).To(Equal("payload"))
		Expect(done).To(BeTrue())

		v2, done2, err2 := s.Read(context.Background())
		Expect(err2).ToNot(HaveOccurred())
		Expect(v2.Empty()).To(BeTrue())
		Expect(done2).To(BeTrue())
	})
})

var _ = Describe("MultiInputStream", func() {
	It("delivers each fragment in order", func() {
		s := stream.NewMultiInputStream(
			buffer.FromString("a"),
			buffer.FromString("b"),
			buffer.FromString("c"),
		)

		var got []string
		for {
			v, done, err := s.Read(context.Background())
			Expect(err).ToNot(HaveOccurred())
			if !v.Empty() {
				got = append(got, v.String())
			}
			if done {
				break
			}
		}
		Expect(got).To(Equal([]string{"a", "b", "c"}))
	})
})

var _ = Describe("BufferOutputStream", func() {
	It("accumulates written packets", func() {
		out := stream.NewBufferOutputStream()
		p := buffer.NewPacket().Add(buffer.FromString("hello ")).Add(buffer.FromString("world"))

		Expect(out.Write(context.Background(), p)).To(Succeed())
		Expect(out.Bytes().String()).To(Equal("hello world"))
	})
})

var _ = Describe("PacketOutputStream", func() {
	It("concatenates written packets into one accumulated packet", func() {
		out := stream.NewPacketOutputStream()
		p1 := buffer.NewPacket().Add(buffer.FromString("x"))
		p2 := buffer.NewPacket().Add(buffer.FromString("y"))

		Expect(out.Write(context.Background(), p1)).To(Succeed())
		Expect(out.Write(context.Background(), p2)).To(Succeed())
		Expect(out.Packet().Len()).To(Equal(2))
	})
})

var _ = Describe("StringInputStream", func() {
	It("wraps a static literal with no owner", func() {
		s := stream.NewStringInputStream("literal")
		v, done, err := s.Read(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(v.String()).To(Equal("literal"))
		Expect(v.Owner()).To(BeNil())
		Expect(done).To(BeTrue())
	})
})

var _ = Describe("stream.Write nil-safety", func() {
	It("fails with a LogicError when the OutputStream is nil", func() {
		err := stream.Write(context.Background(), nil, buffer.NewPacket())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("write to null stream"))
	})
})

var _ = Describe("Socket streams", func() {
	It("round-trips bytes over a real connection pair", func() {
		server, client := net.Pipe()
		defer server.Close()
		defer client.Close()

		out := stream.NewSocketOutputStream(client)
		in := stream.NewSocketInputStream(server)

		done := make(chan error, 1)
		go func() {
			p := buffer.NewPacket().Add(buffer.FromString("ping"))
			done <- out.Write(context.Background(), p)
		}()

		v, _, err := in.Read(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(v.String()).To(Equal("ping"))
		Expect(<-done).ToNot(HaveOccurred())
	})
})
