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

package buffer_test

import (
	"github.com/cpv-project/cpv-framework-sub001/buffer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SharedString", func() {
	It("wraps a static literal with no owner", func() {
		s := buffer.FromString("hello")
		Expect(s.String()).To(Equal("hello"))
		Expect(s.Owner()).To(BeNil())
	})

	It("allocates an owning buffer from bytes", func() {
		s := buffer.FromBytes([]byte("world"))
		Expect(s.String()).To(Equal("world"))
		Expect(s.Owner()).ToNot(BeNil())
		Expect(s.Owner().RefCount()).To(BeNumerically(">=", int32(1)))
	})

	It("compares by bytes regardless of owner", func() {
		a := buffer.FromString("same")
		b := buffer.FromBytes([]byte("same"))
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("clones without copying bytes and shares the owner", func() {
		a := buffer.FromBytes([]byte("clone-me"))
		before := a.Owner().RefCount()
		b := a.Clone()
		Expect(a.Owner().RefCount()).To(Equal(before + 1))
		Expect(&a.Bytes()[0]).To(Equal(&b.Bytes()[0]))
	})

	It("slices over the same owner", func() {
		a := buffer.FromBytes([]byte("0123456789"))
		s := a.Slice(2, 5)
		Expect(s.String()).To(Equal("234"))
		Expect(s.Owner()).To(Equal(a.Owner()))
	})

	It("fails to parse non-numeric input with a ParseError", func() {
		s := buffer.FromString("not-a-number")
		_, err := s.ParseInt()
		Expect(err).To(HaveOccurred())
	})

	It("parses valid numeric input", func() {
		i, err := buffer.FromString("42").ParseInt()
		Expect(err).ToNot(HaveOccurred())
		Expect(i).To(Equal(int64(42)))

		u, err := buffer.FromString("42").ParseUint()
		Expect(err).ToNot(HaveOccurred())
		Expect(u).To(Equal(uint64(42)))

		f, err := buffer.FromString("4.2").ParseFloat()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(BeNumerically("~", 4.2, 0.0001))
	})

	It("invalidates pointer-identity caches when the backing array changes", func() {
		a := buffer.FromString("abc")
		b := buffer.FromString("abc")
		Expect(a.PointerIdentity()).ToNot(Equal(b.PointerIdentity()))
	})
})
