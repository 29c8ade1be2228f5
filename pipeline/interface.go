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

// Package pipeline implements the ordered handler chain every request
// passes through: a fixed exception-filter handler at position 0, a
// fixed not-found handler at the tail, and whatever intermediate
// handlers modules register in between.
package pipeline

import (
	"context"
	"net"

	libctx "github.com/cpv-project/cpv-framework-sub001/context"
	"github.com/cpv-project/cpv-framework-sub001/message"
)

// Next invokes the remainder of the pipeline from the current handler's
// position onward. Calling it zero times terminates the chain at the
// current handler.
type Next func(pc *Context) error

// Handler is one link in the pipeline. It may terminate the chain by
// producing a response and not invoking next, delegate by returning
// next(pc) (optionally wrapped with pre/post logic), or transform the
// request/response before or after delegating.
type Handler interface {
	Handle(pc *Context, next Next) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(pc *Context, next Next) error

func (f HandlerFunc) Handle(pc *Context, next Next) error {
	return f(pc, next)
}

// Context bundles everything a handler needs: the request/response pair,
// the per-connection container, per-request storage, and the client
// address. It is constructed fresh per request and discarded (not
// pooled) once the response has been written, since it holds no heavy
// resources of its own — the request and response it wraps are what get
// pooled.
type Context struct {
	store      libctx.Config[string]
	Request    *message.Request
	Response   *message.Response
	ClientAddr net.Addr
	Container  any

	closeAfter bool
}

// NewContext returns a Context wrapping req/resp for one request/response
// cycle on the connection identified by addr, with container available
// for handlers that resolve per-connection or per-request services from
// it. Per-request storage is backed by a concurrent-safe key/value map so
// handlers that hand pc to a worker goroutine (e.g. to stream a response)
// may still Get/Set safely.
func NewContext(ctx context.Context, req *message.Request, resp *message.Response, addr net.Addr, container any) *Context {
	return &Context{
		store:      libctx.New[string](ctx),
		Request:    req,
		Response:   resp,
		ClientAddr: addr,
		Container:  container,
	}
}

// Context returns the cancellation/deadline context for this request,
// the concrete realization of "the next suspension resolves with a
// cancellation indicator" at every handler-declared await.
func (c *Context) Context() context.Context {
	return c.store
}

// Get returns per-request storage previously set with Set, or nil.
func (c *Context) Get(key string) any {
	v, _ := c.store.Load(key)
	return v
}

// Set stores a value in per-request storage, scoped to this request and
// discarded with the Context.
func (c *Context) Set(key string, value any) {
	c.store.Store(key, value)
}

// RequestClose marks that the connection must close after this response
// regardless of the keep-alive negotiation.
func (c *Context) RequestClose() {
	c.closeAfter = true
}

// CloseRequested reports whether RequestClose has been called.
func (c *Context) CloseRequested() bool {
	return c.closeAfter
}
