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

package pipeline

import (
	"github.com/cpv-project/cpv-framework-sub001/logger"
)

// Pipeline is the ordered handler chain for one server. Position 0 is
// always the exception-filter (500) handler and the final position is
// always the not-found (404) handler; intermediates sit in between in
// registration order.
type Pipeline struct {
	handlers []Handler
}

// New builds a Pipeline from intermediates, registered in the order
// given (ties between modules are broken by registration order, per
// spec). log and idGen configure the exception filter; idGen may be nil
// to use the default UUID generator.
func New(log logger.Logger, idGen func() string, intermediates ...Handler) *Pipeline {
	handlers := make([]Handler, 0, len(intermediates)+2)
	handlers = append(handlers, newExceptionFilter(log, idGen))
	handlers = append(handlers, intermediates...)
	handlers = append(handlers, notFoundHandler{})
	return &Pipeline{handlers: handlers}
}

// Len returns the total handler count, including the fixed 500/404
// handlers.
func (p *Pipeline) Len() int {
	return len(p.handlers)
}

// Dispatch runs the full chain from position 0 against pc.
func (p *Pipeline) Dispatch(pc *Context) error {
	return p.invoke(0, pc)
}

func (p *Pipeline) invoke(i int, pc *Context) error {
	if i >= len(p.handlers) {
		return nil
	}
	h := p.handlers[i]
	return h.Handle(pc, func(pc *Context) error {
		return p.invoke(i+1, pc)
	})
}
