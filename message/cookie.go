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

package message

import (
	"strings"
	"time"
)

// Cookie is one name/value pair parsed out of a request's Cookie header.
type Cookie struct {
	Name  string
	Value string
}

// ParseCookieHeader splits a "Cookie: a=1; b=2" header value into its
// individual name/value pairs. Pairs are separated by "; " (a bare ";"
// is also accepted, matching real-world laxness); a pair with no '='
// is kept as a name with an empty value, the same leniency
// parseURLEncoded applies to bare keys.
func ParseCookieHeader(raw string) []Cookie {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ";")
	out := make([]Cookie, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		name, value := p, ""
		if i := strings.IndexByte(p, '='); i >= 0 {
			name = p[:i]
			value = p[i+1:]
		}
		out = append(out, Cookie{Name: strings.TrimSpace(name), Value: value})
	}
	return out
}

// SameSite mirrors net/http's cookie attribute enumeration, kept local so
// this package does not need to import net/http for one constant set.
type SameSite int

const (
	SameSiteDefault SameSite = iota
	SameSiteLax
	SameSiteStrict
	SameSiteNone
)

// CookieAttributes carries the optional Set-Cookie attributes accepted
// by Response.SetCookie.
type CookieAttributes struct {
	Path     string
	Domain   string
	Expires  time.Time
	HTTPOnly bool
	Secure   bool
	SameSite SameSite
}

// formatSetCookie renders one Set-Cookie header value from name, value,
// and attrs. An Expires zero value omits the Expires attribute.
func formatSetCookie(name, value string, attrs CookieAttributes) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	if attrs.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(attrs.Path)
	}
	if attrs.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(attrs.Domain)
	}
	if !attrs.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(FormatHTTPDate(attrs.Expires))
	}
	if attrs.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if attrs.Secure {
		b.WriteString("; Secure")
	}
	switch attrs.SameSite {
	case SameSiteLax:
		b.WriteString("; SameSite=Lax")
	case SameSiteStrict:
		b.WriteString("; SameSite=Strict")
	case SameSiteNone:
		b.WriteString("; SameSite=None")
	}

	return b.String()
}
