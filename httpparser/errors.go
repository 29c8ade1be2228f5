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

package httpparser

import (
	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
)

// ParseError is a fatal-to-the-connection parse failure: it carries both
// the taxonomy error (for logging) and the HTTP status the connection
// should reply with before closing.
type ParseError struct {
	liberr.Error
	Status int
}

func newParseError(code liberr.CodeError, status int, message string) *ParseError {
	return &ParseError{Error: liberr.New(code.Uint16(), message), Status: status}
}

func errBadRequestLine() *ParseError {
	return newParseError(liberr.ProtocolError, 400, "bad request line")
}

func errBadHeader() *ParseError {
	return newParseError(liberr.ProtocolError, 400, "bad header")
}

func errHeaderTooLarge() *ParseError {
	return newParseError(liberr.LengthError, 431, "header field too large")
}

func errHeadTooLarge() *ParseError {
	return newParseError(liberr.LengthError, 413, "request head too large")
}

func errInvalidChunkSize() *ParseError {
	return newParseError(liberr.ProtocolError, 400, "invalid chunk size")
}
