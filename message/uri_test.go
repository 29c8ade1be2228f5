package message_test

import (
	"github.com/cpv-project/cpv-framework-sub001/message"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseURI", func() {
	It("splits path and query on the first '?'", func() {
		u := message.ParseURI("/a/b?x=1&y=2")
		Expect(u.Path).To(Equal("/a/b"))
		Expect(u.Get("x")).To(Equal("1"))
		Expect(u.Get("y")).To(Equal("2"))
	})

	It("handles a path with no query string", func() {
		u := message.ParseURI("/a/b")
		Expect(u.Path).To(Equal("/a/b"))
		Expect(u.Query).To(BeEmpty())
	})

	It("ignores a trailing '&' instead of producing an empty key", func() {
		u := message.ParseURI("/p?x=1&")
		Expect(u.Query).To(HaveLen(1))
		Expect(u.Get("x")).To(Equal("1"))
	})

	It("stores a bare key with an empty value instead of dropping it", func() {
		u := message.ParseURI("/p?flag&x=1")
		Expect(u.Query).To(HaveKey("flag"))
		Expect(u.Get("flag")).To(Equal(""))
		Expect(u.Get("x")).To(Equal("1"))
	})

	It("decodes percent escapes and '+' as space", func() {
		u := message.ParseURI("/p?q=a+b%20c")
		Expect(u.Get("q")).To(Equal("a b c"))
	})

	It("returns empty for a missing key and is nil-safe", func() {
		var u *message.URI
		Expect(u.Get("x")).To(Equal(""))
	})
})
