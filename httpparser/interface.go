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

// Package httpparser implements the incremental HTTP/1.x request-line and
// header parser: a byte-driven state machine that resumes across partial
// reads, publishes zero-copy SharedString views into its own rolling
// buffer, and decides body framing (chunked, Content-Length, or none)
// once headers are complete. Chunked body decoding is a separate,
// independently resumable decoder since it runs after framing is known
// and over bytes a connection reads well after HeadersDone.
package httpparser

// State is the parser's current stage in the per-request state machine:
// RequestLine -> HeaderLine* -> HeadersDone -> Body -> Done.
type State int

const (
	StateRequestLine State = iota
	StateHeaderLine
	StateHeadersDone
	StateBody
	StateDone
)

func (s State) String() string {
	switch s {
	case StateRequestLine:
		return "RequestLine"
	case StateHeaderLine:
		return "HeaderLine"
	case StateHeadersDone:
		return "HeadersDone"
	case StateBody:
		return "Body"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// BodyFraming identifies how a request's body length was determined,
// per the precedence order: chunked, then Content-Length, then none.
type BodyFraming int

const (
	BodyFramingNone BodyFraming = iota
	BodyFramingContentLength
	BodyFramingChunked
)

// Limits bounds the sizes the parser accepts before failing the
// connection rather than continuing to buffer attacker-controlled input.
type Limits struct {
	// MaxLineSize bounds a single request-line or header-line's length
	// (excluding the terminating CRLF/LF).
	MaxLineSize int
	// MaxHeadSize bounds the combined size of the request line plus all
	// header lines.
	MaxHeadSize int
}

// DefaultLimits returns the limits used when a caller does not configure
// its own: an 8 KiB single line and a 64 KiB combined head section, the
// same order of magnitude most production HTTP servers default to.
func DefaultLimits() Limits {
	return Limits{
		MaxLineSize: 8 * 1024,
		MaxHeadSize: 64 * 1024,
	}
}
