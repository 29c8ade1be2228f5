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

// Package message implements the Request/Response envelope model: typed
// fields for well-known ("fast-path") headers plus a remainder map for
// everything else, lazily-parsed URI and cookie caches, and the
// mutually-exclusive response body modes.
package message

import (
	"strings"
	"sync"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
)

// lowerNameCache memoizes the lower-cased form of header names that miss
// the fixed-field fast path in classify, shared across every Headers
// instance (and so every connection) since the same non-standard header
// name (e.g. "X-Request-Id") recurs across unrelated requests. Bounded so
// a client sending many distinct one-off header names cannot grow it
// without limit.
var (
	lowerNameCache   = buffer.NewLRU[string, string](256)
	lowerNameCacheMu sync.Mutex
)

// lowerName returns name's lower-cased form, consulting and populating
// lowerNameCache for names classify routes to the remainder map.
func lowerName(name string) string {
	lowerNameCacheMu.Lock()
	defer lowerNameCacheMu.Unlock()

	if v, ok := lowerNameCache.Get(name); ok {
		return v
	}
	v := strings.ToLower(name)
	lowerNameCache.Put(name, v)
	return v
}

// Headers holds the fast-path fixed fields plus a remainder map for
// every other header. Lookup always checks the fixed table first.
type Headers struct {
	host          buffer.SharedString
	contentType   buffer.SharedString
	contentLength buffer.SharedString
	connection    buffer.SharedString
	cookie        buffer.SharedString

	// setCookie holds every Set-Cookie addition header; unlike the
	// fixed fields, multiple values are permitted.
	setCookie []buffer.SharedString

	remainder map[string][]buffer.SharedString
	// order preserves first-seen insertion order for remainder keys,
	// used when serializing headers back onto the wire.
	order []string
}

// fixedName identifies which fast-path field, if any, a header name maps
// to. Matching is case-insensitive per RFC 7230.
type fixedName int

const (
	fixedNone fixedName = iota
	fixedHost
	fixedContentType
	fixedContentLength
	fixedConnection
	fixedCookie
	fixedSetCookie
)

func classify(name string) fixedName {
	switch {
	case strings.EqualFold(name, "Host"):
		return fixedHost
	case strings.EqualFold(name, "Content-Type"):
		return fixedContentType
	case strings.EqualFold(name, "Content-Length"):
		return fixedContentLength
	case strings.EqualFold(name, "Connection"):
		return fixedConnection
	case strings.EqualFold(name, "Cookie"):
		return fixedCookie
	case strings.EqualFold(name, "Set-Cookie"):
		return fixedSetCookie
	default:
		return fixedNone
	}
}

// NewHeaders returns an empty Headers ready to accept fields.
func NewHeaders() *Headers {
	return &Headers{remainder: make(map[string][]buffer.SharedString)}
}

// Reset clears every field back to empty, for pool reuse.
func (h *Headers) Reset() {
	h.host = buffer.SharedString{}
	h.contentType = buffer.SharedString{}
	h.contentLength = buffer.SharedString{}
	h.connection = buffer.SharedString{}
	h.cookie = buffer.SharedString{}
	h.setCookie = h.setCookie[:0]
	for k := range h.remainder {
		delete(h.remainder, k)
	}
	h.order = h.order[:0]
}

// Set stores name/value, routing to the fixed field if name matches one,
// otherwise into the remainder map (appending, since a header name may
// repeat).
func (h *Headers) Set(name string, value buffer.SharedString) {
	switch classify(name) {
	case fixedHost:
		h.host = value
	case fixedContentType:
		h.contentType = value
	case fixedContentLength:
		h.contentLength = value
	case fixedConnection:
		h.connection = value
	case fixedCookie:
		h.cookie = value
	case fixedSetCookie:
		h.setCookie = append(h.setCookie, value)
	default:
		key := lowerName(name)
		if _, ok := h.remainder[key]; !ok {
			h.order = append(h.order, key)
		}
		h.remainder[key] = append(h.remainder[key], value)
	}
}

// Get returns the first value stored for name, or an empty SharedString
// if absent.
func (h *Headers) Get(name string) buffer.SharedString {
	switch classify(name) {
	case fixedHost:
		return h.host
	case fixedContentType:
		return h.contentType
	case fixedContentLength:
		return h.contentLength
	case fixedConnection:
		return h.connection
	case fixedCookie:
		return h.cookie
	case fixedSetCookie:
		if len(h.setCookie) > 0 {
			return h.setCookie[0]
		}
		return buffer.SharedString{}
	default:
		if v, ok := h.remainder[lowerName(name)]; ok && len(v) > 0 {
			return v[0]
		}
		return buffer.SharedString{}
	}
}

// Has reports whether name has a non-empty value. For Set-Cookie, any
// addition counts, even an empty one.
func (h *Headers) Has(name string) bool {
	return !h.Get(name).Empty() || h.hasEmptySet(name)
}

func (h *Headers) hasEmptySet(name string) bool {
	if classify(name) == fixedSetCookie {
		return len(h.setCookie) > 0
	}
	return false
}

// SetCookies returns every Set-Cookie addition header value, in
// insertion order.
func (h *Headers) SetCookies() []buffer.SharedString {
	return h.setCookie
}

// AddSetCookie appends one more Set-Cookie value without replacing
// previous ones.
func (h *Headers) AddSetCookie(value buffer.SharedString) {
	h.setCookie = append(h.setCookie, value)
}

// Remainder returns the ordered list of remainder header names and a
// lookup function, used when serializing a full header block.
func (h *Headers) Remainder() (names []string, values map[string][]buffer.SharedString) {
	return h.order, h.remainder
}

// canonicalName maps a fixedName back to the header name it should be
// serialized with on the wire.
func (n fixedName) canonicalName() string {
	switch n {
	case fixedHost:
		return "Host"
	case fixedContentType:
		return "Content-Type"
	case fixedContentLength:
		return "Content-Length"
	case fixedConnection:
		return "Connection"
	case fixedCookie:
		return "Cookie"
	case fixedSetCookie:
		return "Set-Cookie"
	default:
		return ""
	}
}

// ForEach visits every header name/value pair this Headers holds — the
// fixed fields first (in a stable order), every Set-Cookie addition, then
// the remainder map in first-seen order — calling fn once per value
// (a repeated header, including every Set-Cookie, visits fn once per
// occurrence). Used when serializing a full header block onto the wire.
func (h *Headers) ForEach(fn func(name string, value buffer.SharedString)) {
	if !h.host.Empty() {
		fn(fixedHost.canonicalName(), h.host)
	}
	if !h.contentType.Empty() {
		fn(fixedContentType.canonicalName(), h.contentType)
	}
	if !h.contentLength.Empty() {
		fn(fixedContentLength.canonicalName(), h.contentLength)
	}
	if !h.connection.Empty() {
		fn(fixedConnection.canonicalName(), h.connection)
	}
	if !h.cookie.Empty() {
		fn(fixedCookie.canonicalName(), h.cookie)
	}
	for _, v := range h.setCookie {
		fn(fixedSetCookie.canonicalName(), v)
	}
	for _, name := range h.order {
		for _, v := range h.remainder[name] {
			fn(name, v)
		}
	}
}
