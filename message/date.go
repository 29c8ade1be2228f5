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
	"time"

	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
)

// httpDateLayout is the fixed 29-byte RFC 7231 IMF-fixdate format used for
// the Date and Expires headers: "Mon, 02 Jan 2006 15:04:05 GMT".
const httpDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// httpDateEpoch is the Unix epoch, used as the Expires value when a
// cookie is being removed.
var httpDateEpoch = time.Unix(0, 0).UTC()

// FormatHTTPDate renders t in the fixed-width RFC 7231 format, always in
// GMT regardless of t's own location.
func FormatHTTPDate(t time.Time) string {
	return t.UTC().Format(httpDateLayout)
}

// ParseHTTPDate parses a Date/Expires header value formatted per
// FormatHTTPDate. Round-tripping FormatHTTPDate(ParseHTTPDate(s)) must
// reproduce s for any s FormatHTTPDate could have produced.
func ParseHTTPDate(s string) (time.Time, error) {
	t, err := time.Parse(httpDateLayout, s)
	if err != nil {
		return time.Time{}, liberr.ParseError.Error(err)
	}
	return t, nil
}
