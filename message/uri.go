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

// URI is the lazily-parsed decomposition of a request's raw URL into a
// path and a query parameter multimap.
type URI struct {
	Path  string
	Query map[string][]string
}

// ParseURI splits raw into path and query, decoding percent-escapes and
// '+' the same lenient way parseURLEncoded does: the request URL's query
// string and an application/x-www-form-urlencoded body share one decoder.
func ParseURI(raw string) *URI {
	path := raw
	query := ""
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		path = raw[:i]
		query = raw[i+1:]
	}
	return &URI{Path: path, Query: parseURLEncoded(query)}
}

// Get returns the first query value for key, or empty if absent.
func (u *URI) Get(key string) string {
	if u == nil {
		return ""
	}
	if v, ok := u.Query[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}
