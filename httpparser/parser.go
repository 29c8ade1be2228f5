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
	"bytes"
	"strconv"
	"strings"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	"github.com/cpv-project/cpv-framework-sub001/message"
)

// Result is the parsed request-line and header section, available once
// Feed reports state has reached StateHeadersDone or later.
type Result struct {
	Method  buffer.SharedString
	URL     buffer.SharedString
	Version buffer.SharedString

	Headers *message.Headers

	Framing       BodyFraming
	ContentLength int64
	KeepAlive     bool
}

// Parser incrementally decodes a request line and header block from a
// byte stream that may arrive in arbitrarily small pieces across
// multiple Feed calls. It owns a private buffer.Builder, so every
// SharedString it publishes is a zero-copy view into bytes the parser
// itself accumulated; the caller does not need to keep its own copy of
// fed data alive.
type Parser struct {
	limits Limits
	state  State

	raw     *buffer.Builder
	scanPos int // offset into raw.Bytes() already scanned without finding a line end

	result Result
}

// NewParser returns a Parser ready to read a request line, using limits
// to bound line and head-section sizes.
func NewParser(limits Limits) *Parser {
	return &Parser{
		limits: limits,
		state:  StateRequestLine,
		raw:    buffer.NewBuilder(),
		result: Result{Headers: message.NewHeaders()},
	}
}

// State returns the parser's current stage.
func (p *Parser) State() State {
	return p.state
}

// Result returns the request line and headers parsed so far. It is only
// complete once State() is StateHeadersDone or later.
func (p *Parser) Result() *Result {
	return &p.result
}

// Leftover returns whatever bytes past the head section's terminating
// blank line were already fed into the parser (e.g. because a read
// delivered the request line, headers, and the start of the body in one
// chunk). Valid once State() has reached StateHeadersDone; the returned
// slice aliases the parser's own backing buffer and must be copied by the
// caller before the next Feed or Reset call.
func (p *Parser) Leftover() []byte {
	return p.raw.Bytes()[p.scanPos:]
}

// Reset returns the parser to its initial state so it can be reused for
// the next request on a keep-alive connection (per the per-connection
// loop's "reset parser to RequestLine" step).
func (p *Parser) Reset() {
	p.state = StateRequestLine
	p.raw.Reset()
	p.scanPos = 0
	p.result = Result{Headers: message.NewHeaders()}
}

// Feed appends newly read bytes and advances the state machine as far as
// it can. It returns true once HeadersDone is reached (the caller should
// stop calling Feed and move on to constructing the body stream); it
// returns a *ParseError on any fatal framing violation.
func (p *Parser) Feed(data []byte) (bool, error) {
	if p.state == StateHeadersDone || p.state == StateBody || p.state == StateDone {
		return true, nil
	}

	p.raw.Append(data)

	for {
		full := p.raw.Bytes()
		rest := full[p.scanPos:]

		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			if len(full) > p.limits.MaxHeadSize {
				return false, errHeadTooLarge()
			}
			return false, nil
		}

		lineStart := p.scanPos
		lineEnd := p.scanPos + nl // exclusive, before the '\n'
		nextScan := lineEnd + 1
		if lineEnd > lineStart && full[lineEnd-1] == '\r' {
			lineEnd--
		}

		if lineEnd-lineStart > p.limits.MaxLineSize {
			if p.state == StateRequestLine {
				return false, errBadRequestLine()
			}
			return false, errHeaderTooLarge()
		}
		if nextScan > p.limits.MaxHeadSize {
			return false, errHeadTooLarge()
		}

		switch p.state {
		case StateRequestLine:
			if lineEnd == lineStart {
				// Tolerate a leading blank line before the request
				// line, a documented quirk of some HTTP/1.1 clients.
				p.scanPos = nextScan
				continue
			}
			if err := p.parseRequestLine(lineStart, lineEnd); err != nil {
				return false, err
			}
			p.state = StateHeaderLine
			p.scanPos = nextScan

		case StateHeaderLine:
			if lineEnd == lineStart {
				if err := p.finishHeaders(); err != nil {
					return false, err
				}
				p.scanPos = nextScan
				p.state = StateHeadersDone
				return true, nil
			}
			if err := p.parseHeaderLine(lineStart, lineEnd); err != nil {
				return false, err
			}
			p.scanPos = nextScan
		}
	}
}

func (p *Parser) parseRequestLine(start, end int) error {
	full := p.raw.Bytes()
	line := full[start:end]

	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return errBadRequestLine()
	}
	rest := line[sp1+1:]
	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		return errBadRequestLine()
	}

	methodEnd := start + sp1
	urlStart := methodEnd + 1
	urlEnd := urlStart + sp2
	versionStart := urlEnd + 1
	versionEnd := end

	if methodEnd == start || urlEnd == urlStart || versionEnd == versionStart {
		return errBadRequestLine()
	}
	if !isValidVersion(full[versionStart:versionEnd]) {
		return errBadRequestLine()
	}

	view := p.raw.Build()
	p.result.Method = view.Slice(start, methodEnd)
	p.result.URL = view.Slice(urlStart, urlEnd)
	p.result.Version = view.Slice(versionStart, versionEnd)
	return nil
}

func isValidVersion(v []byte) bool {
	return bytes.Equal(v, []byte("HTTP/1.0")) || bytes.Equal(v, []byte("HTTP/1.1"))
}

func (p *Parser) parseHeaderLine(start, end int) error {
	full := p.raw.Bytes()
	line := full[start:end]

	colon := bytes.IndexByte(line, ':')
	if colon <= 0 {
		return errBadHeader()
	}

	nameEnd := start + colon
	valStart := nameEnd + 1
	valEnd := end

	for valStart < valEnd && (full[valStart] == ' ' || full[valStart] == '\t') {
		valStart++
	}
	for valEnd > valStart && (full[valEnd-1] == ' ' || full[valEnd-1] == '\t') {
		valEnd--
	}

	name := strings.TrimRight(string(full[start:nameEnd]), " \t")

	view := p.raw.Build()
	value := view.Slice(valStart, valEnd)
	p.result.Headers.Set(name, value)
	return nil
}

func (p *Parser) finishHeaders() error {
	version := p.result.Version.String()
	httpOneOne := version == "HTTP/1.1"

	keepAlive := httpOneOne
	if conn := p.result.Headers.Get("Connection"); !conn.Empty() {
		switch strings.ToLower(strings.TrimSpace(conn.String())) {
		case "close":
			keepAlive = false
		case "keep-alive":
			keepAlive = true
		}
	}
	p.result.KeepAlive = keepAlive

	if te := p.result.Headers.Get("Transfer-Encoding"); !te.Empty() &&
		strings.Contains(strings.ToLower(te.String()), "chunked") {
		p.result.Framing = BodyFramingChunked
		return nil
	}

	if cl := p.result.Headers.Get("Content-Length"); !cl.Empty() {
		n, err := strconv.ParseInt(strings.TrimSpace(cl.String()), 10, 64)
		if err != nil || n < 0 {
			return errBadHeader()
		}
		p.result.Framing = BodyFramingContentLength
		p.result.ContentLength = n
		return nil
	}

	p.result.Framing = BodyFramingNone
	p.result.ContentLength = 0
	return nil
}
