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
	"context"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/stream"
)

// bodyMode identifies which of the three mutually-exclusive body modes
// a Response currently holds. Setting one clears the other two; the
// last setter called wins.
type bodyMode int

const (
	bodyModeNone bodyMode = iota
	bodyModeLiteral
	bodyModeAppender
	bodyModeStream
)

// Appender is called repeatedly until it returns an empty string, each
// non-empty return appended to the response body in order.
type Appender func() string

// Response is the per-response envelope: status line, headers, and a
// body held in exactly one of three mutually-exclusive modes. Reset/
// FreeResources implement reusable.Reusable so a Response can be pooled
// the same way a Request is.
type Response struct {
	Version       buffer.SharedString
	StatusCode    int
	StatusMessage buffer.SharedString
	Headers       *Headers

	mode     bodyMode
	literal  buffer.SharedString
	appender Appender
	stream   stream.InputStream

	owningBuffers []*buffer.Buffer
}

// NewResponse returns an empty Response, the object a
// reusable.Pool[*Response] constructs via its NewFunc.
func NewResponse() *Response {
	return &Response{Headers: NewHeaders()}
}

// AddUnderlyingBuffer registers b as owned by this response, keeping it
// alive for as long as the response lives.
func (r *Response) AddUnderlyingBuffer(b *buffer.Buffer) {
	if b == nil {
		return
	}
	b.Share()
	r.owningBuffers = append(r.owningBuffers, b)
}

// SetBodyLiteral sets the body to a single fixed byte sequence, clearing
// any previously set appender or output stream.
func (r *Response) SetBodyLiteral(body buffer.SharedString) {
	r.mode = bodyModeLiteral
	r.literal = body
	r.appender = nil
	r.stream = nil
}

// SetBodyAppender sets the body to be produced by repeatedly calling fn
// until it returns "", clearing any previously set literal or output
// stream.
func (r *Response) SetBodyAppender(fn Appender) {
	r.mode = bodyModeAppender
	r.appender = fn
	r.literal = buffer.SharedString{}
	r.stream = nil
}

// SetBodyStream sets the body to be drained fragment-by-fragment from in
// at write time (e.g. a file or a piped handler-generated source), rather
// than buffered up front, clearing any previously set literal or
// appender.
func (r *Response) SetBodyStream(in stream.InputStream) {
	r.mode = bodyModeStream
	r.stream = in
	r.literal = buffer.SharedString{}
	r.appender = nil
}

// HasBody reports whether any body mode has been set.
func (r *Response) HasBody() bool {
	return r.mode != bodyModeNone
}

// IsStreaming reports whether the body was set via SetBodyStream, meaning
// the handler is writing directly to a downstream output stream rather
// than producing bytes this Response can measure or buffer up front.
func (r *Response) IsStreaming() bool {
	return r.mode == bodyModeStream
}

// WriteBody drains whichever body mode is set to out. For the appender
// mode this calls fn repeatedly until it returns "", writing each
// non-empty chunk as its own packet; for the stream mode it reads
// fragments from the source InputStream until it reports done, writing
// each one through in turn.
func (r *Response) WriteBody(ctx context.Context, out stream.OutputStream) error {
	switch r.mode {
	case bodyModeLiteral:
		if r.literal.Empty() {
			return nil
		}
		p := buffer.NewPacket()
		p.Add(r.literal)
		return stream.Write(ctx, out, p)
	case bodyModeAppender:
		if r.appender == nil {
			return nil
		}
		for {
			chunk := r.appender()
			if chunk == "" {
				return nil
			}
			p := buffer.NewPacket()
			p.Add(buffer.FromString(chunk))
			if err := stream.Write(ctx, out, p); err != nil {
				return err
			}
		}
	case bodyModeStream:
		if r.stream == nil {
			return nil
		}
		for {
			frag, done, err := r.stream.Read(ctx)
			if err != nil {
				return err
			}
			if !frag.Empty() {
				p := buffer.NewPacket()
				p.Add(frag)
				if err := stream.Write(ctx, out, p); err != nil {
					return err
				}
			}
			if done {
				return nil
			}
		}
	default:
		return nil
	}
}

// SetCookie appends a Set-Cookie addition header built from name, value,
// and attrs.
func (r *Response) SetCookie(name, value string, attrs CookieAttributes) {
	r.Headers.AddSetCookie(buffer.FromString(formatSetCookie(name, value, attrs)))
}

// RemoveCookie appends a Set-Cookie addition header that expires name
// immediately, the conventional way to ask a client to drop a cookie.
func (r *Response) RemoveCookie(name string, attrs CookieAttributes) {
	attrs.Expires = httpDateEpoch
	r.SetCookie(name, "", attrs)
}

// Reset clears the response back to the state of a freshly constructed
// one, implementing reusable.Reusable.
func (r *Response) Reset(args ...any) error {
	r.Version = buffer.SharedString{}
	r.StatusCode = 0
	r.StatusMessage = buffer.SharedString{}
	r.Headers.Reset()
	r.mode = bodyModeNone
	r.literal = buffer.SharedString{}
	r.appender = nil
	r.stream = nil
	r.owningBuffers = r.owningBuffers[:0]
	return nil
}

// FreeResources releases every owning buffer reference and drops body
// references, implementing reusable.Reusable.
func (r *Response) FreeResources() {
	for _, b := range r.owningBuffers {
		b.Release()
	}
	r.owningBuffers = r.owningBuffers[:0]
	r.appender = nil
	r.stream = nil
}
