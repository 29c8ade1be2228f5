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
	"fmt"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/logger"
	"github.com/google/uuid"
)

// exceptionFilter is always position 0: it invokes the rest of the
// chain, catches any failure (returned error or recovered panic),
// assigns a fresh error ID, logs it, and writes a 500 response in its
// place. This is always safe to do: the connection layer renders and
// writes pc.Response only after the whole pipeline (this filter
// included) has returned, so no byte of a prior response can already be
// on the wire when this runs.
type exceptionFilter struct {
	log   logger.Logger
	idGen func() string
}

func newExceptionFilter(log logger.Logger, idGen func() string) *exceptionFilter {
	if idGen == nil {
		idGen = uuid.NewString
	}
	return &exceptionFilter{log: log, idGen: idGen}
}

func (f *exceptionFilter) Handle(pc *Context, next Next) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
		if err == nil {
			return
		}

		id := f.idGen()
		if f.log != nil {
			f.log.Entry(logger.ErrorLevel, "unhandled error in request pipeline").
				FieldAdd("error_id", id).
				ErrorAdd(true, err).
				Log()
		}

		pc.Response.Reset()
		pc.Response.StatusCode = 500
		pc.Response.StatusMessage = buffer.FromString("Internal Server Error")
		pc.Response.SetBodyLiteral(buffer.FromString(fmt.Sprintf("Internal Server Error\nID: %s", id)))

		err = nil
	}()

	return next(pc)
}

// notFoundHandler is always the final position: reaching it means no
// intermediate handler produced a response, so it writes a plain-text
// 404.
type notFoundHandler struct{}

func (notFoundHandler) Handle(pc *Context, _ Next) error {
	pc.Response.StatusCode = 404
	pc.Response.StatusMessage = buffer.FromString("Not Found")
	pc.Response.SetBodyLiteral(buffer.FromString("Not Found"))
	return nil
}
