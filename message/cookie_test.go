package message_test

import (
	"time"

	"github.com/cpv-project/cpv-framework-sub001/message"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseCookieHeader", func() {
	It("splits 'a=1; b=2' into name/value pairs", func() {
		cookies := message.ParseCookieHeader("a=1; b=2")
		Expect(cookies).To(Equal([]message.Cookie{
			{Name: "a", Value: "1"},
			{Name: "b", Value: "2"},
		}))
	})

	It("keeps a bare name with an empty value", func() {
		cookies := message.ParseCookieHeader("flag; a=1")
		Expect(cookies).To(ContainElement(message.Cookie{Name: "flag", Value: ""}))
	})

	It("returns nil for an empty header", func() {
		Expect(message.ParseCookieHeader("")).To(BeNil())
	})
})

var _ = Describe("Response cookies", func() {
	It("renders SetCookie attributes in order", func() {
		r := message.NewResponse()
		r.SetCookie("sid", "abc123", message.CookieAttributes{
			Path:     "/",
			HTTPOnly: true,
			Secure:   true,
			SameSite: message.SameSiteStrict,
		})
		v := r.Headers.SetCookies()
		Expect(v).To(HaveLen(1))
		Expect(v[0].String()).To(Equal("sid=abc123; Path=/; HttpOnly; Secure; SameSite=Strict"))
	})

	It("RemoveCookie expires at the Unix epoch", func() {
		r := message.NewResponse()
		r.RemoveCookie("sid", message.CookieAttributes{Path: "/"})
		v := r.Headers.SetCookies()
		Expect(v).To(HaveLen(1))
		Expect(v[0].String()).To(ContainSubstring("sid="))
		Expect(v[0].String()).To(ContainSubstring("Expires=" + message.FormatHTTPDate(time.Unix(0, 0).UTC())))
	})
})
