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

import "strings"

// parseURLEncoded decodes an application/x-www-form-urlencoded byte
// sequence (also used for the request URL's query string) into a
// name->values multimap.
//
// Quirk preserved intentionally: a trailing '&' with nothing after it is
// silently ignored rather than producing an empty-key entry, while a bare
// key with no '=' is stored with an empty string value instead of being
// dropped. This mirrors the original lenient parser's behavior and is
// kept for compatibility rather than "fixed" here.
func parseURLEncoded(raw string) map[string][]string {
	out := make(map[string][]string)
	if raw == "" {
		return out
	}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			// Trailing '&' or a doubled '&': ignored, not an
			// empty-key entry.
			continue
		}

		var key, val string
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
			val = pair[i+1:]
		} else {
			// Bare key, no '=': stored with an empty value rather
			// than dropped.
			key = pair
			val = ""
		}

		key = decodeURLComponent(key)
		val = decodeURLComponent(val)
		out[key] = append(out[key], val)
	}

	return out
}

// decodeURLComponent decodes '+' as space and %XX percent-escapes,
// passing through anything it cannot decode unchanged rather than
// failing the whole parse (matching the original's lenient stance).
func decodeURLComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if hi, ok := hexVal(s[i+1]); ok {
					if lo, ok := hexVal(s[i+2]); ok {
						b.WriteByte(byte(hi<<4 | lo))
						i += 2
						continue
					}
				}
			}
			b.WriteByte('%')
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Form resolves a Form(name) parameter descriptor against a request's
// application/x-www-form-urlencoded body. The body must already have
// been fully read into body; it is parsed afresh on every call, and the
// first value for name is returned ("" when name is absent).
func Form(body string, name string) string {
	values := parseURLEncoded(body)
	if v, ok := values[name]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}
