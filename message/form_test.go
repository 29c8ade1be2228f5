package message_test

import (
	"github.com/cpv-project/cpv-framework-sub001/message"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Form", func() {
	It("resolves a name from an urlencoded body", func() {
		Expect(message.Form("a=1&b=2", "b")).To(Equal("2"))
	})

	It("returns empty for a missing name", func() {
		Expect(message.Form("a=1", "missing")).To(Equal(""))
	})

	It("applies the same trailing-'&'/bare-key leniency as query parsing", func() {
		Expect(message.Form("flag&a=1&", "flag")).To(Equal(""))
		Expect(message.Form("flag&a=1&", "a")).To(Equal("1"))
	})

	It("decodes percent-escapes and '+' in form bodies", func() {
		Expect(message.Form("name=a+b%20c", "name")).To(Equal("a b c"))
	})
})
