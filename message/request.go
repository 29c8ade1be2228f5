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
	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/stream"
)

// Request is the per-request envelope: method, URL, version, headers,
// and a body input stream. It is owned and recycled by a reusable.Pool;
// Reset/FreeResources implement reusable.Reusable.
type Request struct {
	Method  buffer.SharedString
	URL     buffer.SharedString
	Version buffer.SharedString
	Headers *Headers
	Body    stream.InputStream

	// owningBuffers keeps alive every Buffer this request's views were
	// carved from: the envelope owns the buffers, views reference the
	// envelope's owner, not each other.
	owningBuffers []*buffer.Buffer

	uriCache    *URI
	uriSrc      uintptr
	cookieCache []Cookie
	cookieSrc   uintptr
}

// NewRequest returns an empty Request, the object a reusable.Pool[*Request]
// constructs via its NewFunc.
func NewRequest() *Request {
	return &Request{Headers: NewHeaders()}
}

// AddUnderlyingBuffer registers b as owned by this request, keeping it
// alive for as long as the request lives. Setters that accept a borrowed
// SharedString require its owner to already be registered this way (or
// for the view to be a static literal with no owner at all).
func (r *Request) AddUnderlyingBuffer(b *buffer.Buffer) {
	if b == nil {
		return
	}
	b.Share()
	r.owningBuffers = append(r.owningBuffers, b)
}

// Reset clears the request back to the state of a freshly constructed
// one, implementing reusable.Reusable.
func (r *Request) Reset(args ...any) error {
	r.Method = buffer.SharedString{}
	r.URL = buffer.SharedString{}
	r.Version = buffer.SharedString{}
	r.Headers.Reset()
	r.Body = nil
	r.owningBuffers = r.owningBuffers[:0]
	r.uriCache = nil
	r.uriSrc = 0
	r.cookieCache = nil
	r.cookieSrc = 0
	return nil
}

// FreeResources releases every owning buffer reference and drops the
// body stream, implementing reusable.Reusable. It does not zero the
// fast-path fields; Reset (called on next Acquire) does that.
func (r *Request) FreeResources() {
	for _, b := range r.owningBuffers {
		b.Release()
	}
	r.owningBuffers = r.owningBuffers[:0]
	r.Body = nil
	r.uriCache = nil
	r.cookieCache = nil
}

// ParsedURI returns the lazily-parsed URI, reparsing if the underlying
// URL SharedString's backing array identity has changed since the last
// parse (a pointer-identity cache).
func (r *Request) ParsedURI() *URI {
	id := r.URL.PointerIdentity()
	if r.uriCache == nil || id != r.uriSrc {
		u := ParseURI(r.URL.String())
		r.uriCache = u
		r.uriSrc = id
	}
	return r.uriCache
}

// ParsedCookies returns the lazily-parsed Cookie header, reparsing on
// pointer-identity change of the underlying Cookie SharedString.
func (r *Request) ParsedCookies() []Cookie {
	raw := r.Headers.Get("Cookie")
	id := raw.PointerIdentity()
	if r.cookieCache == nil || id != r.cookieSrc {
		r.cookieCache = ParseCookieHeader(raw.String())
		r.cookieSrc = id
	}
	return r.cookieCache
}
