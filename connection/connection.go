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

package connection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/cpv-project/cpv-framework-sub001/buffer"
	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
	"github.com/cpv-project/cpv-framework-sub001/httpparser"
	"github.com/cpv-project/cpv-framework-sub001/message"
	"github.com/cpv-project/cpv-framework-sub001/pipeline"
	"github.com/cpv-project/cpv-framework-sub001/reusable"
	"github.com/cpv-project/cpv-framework-sub001/stream"
)

// Per-connection sentinel codes, registered at this package's MinPkgConnection
// offset so they show up alongside every other package's codes under the
// same CodeError taxonomy instead of as bare stdlib errors.
const (
	silentCloseCode liberr.CodeError = liberr.MinPkgConnection + iota
	headerTimeoutCode
)

func init() {
	liberr.RegisterIdFctMessage(silentCloseCode, func(code liberr.CodeError) string {
		switch code {
		case silentCloseCode:
			return "connection: silent close on idle eof"
		case headerTimeoutCode:
			return "connection: header read timeout"
		default:
			return liberr.UnknownMessage
		}
	})
}

// errSilentClose marks the cases where the connection closes with no
// error response: an EOF that arrived before a new request's head section
// finished (or even started), or ctx being cancelled before any byte of a
// new head section was read.
var errSilentClose = silentCloseCode.Error()

// errHeaderTimeout marks a header-read timeout; the connection replies
// 408 before closing.
var errHeaderTimeout = headerTimeoutCode.Error()

// Connection drives one accepted socket through the per-request loop:
// read a head section, dispatch the parsed request through pl, and
// write its response back before either looping (keep-alive) or
// closing.
type Connection struct {
	conn net.Conn
	cfg  Config

	pl       *pipeline.Pipeline
	reqPool  reusable.Acquirer[*message.Request]
	respPool reusable.Acquirer[*message.Response]

	metrics   Metrics
	container any
}

// New returns a Connection ready to Serve conn. metrics may be nil (a
// no-op implementation is substituted); container is handed to every
// request's pipeline.Context unchanged, the per-connection service
// resolution root for handlers to look services up against.
func New(conn net.Conn, cfg Config, pl *pipeline.Pipeline, reqPool reusable.Acquirer[*message.Request], respPool reusable.Acquirer[*message.Response], metrics Metrics, container any) *Connection {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Connection{
		conn:      conn,
		cfg:       cfg,
		pl:        pl,
		reqPool:   reqPool,
		respPool:  respPool,
		metrics:   metrics,
		container: container,
	}
}

// Serve runs the per-connection loop until the connection closes, either
// because the client did, because of a protocol or I/O error, because
// keep-alive was not in effect after a response, or because ctx was
// cancelled (server stop or listener shutdown). It always closes conn
// before returning.
func (c *Connection) Serve(ctx context.Context) {
	c.metrics.ConnectionOpened()
	defer func() {
		_ = c.conn.Close()
		c.metrics.ConnectionClosed()
	}()

	parser := httpparser.NewParser(httpparser.DefaultLimits())

	for {
		if ctx.Err() != nil {
			return
		}

		leftover, err := c.readHead(ctx, parser)
		if err != nil {
			switch {
			case errors.Is(err, errSilentClose):
				return
			case errors.Is(err, errHeaderTimeout):
				_ = c.writeErrorResponse(ctx, 408, "Request Timeout")
				return
			default:
				var pe *httpparser.ParseError
				if errors.As(err, &pe) {
					_ = c.writeErrorResponse(ctx, pe.Status, reasonPhrase(pe.Status))
				}
				return
			}
		}

		keepAlive, fatal := c.dispatchOne(ctx, parser, leftover)
		if fatal || !keepAlive {
			return
		}

		parser.Reset()
	}
}

// readHead implements step 2 of the per-connection loop: read from the
// socket into the parser's rolling buffer until HeadersDone, bounded by
// the configured header-read timeout.
func (c *Connection) readHead(ctx context.Context, parser *httpparser.Parser) ([]byte, error) {
	headCtx := ctx
	var cancel context.CancelFunc
	if c.cfg.HeaderTimeout > 0 {
		headCtx, cancel = context.WithTimeout(ctx, c.cfg.HeaderTimeout)
		defer cancel()
	}

	totalFed := 0
	buf := make([]byte, c.cfg.ReadChunk)

	for {
		if err := headCtx.Err(); err != nil {
			if totalFed == 0 && errors.Is(ctx.Err(), context.Canceled) {
				return nil, errSilentClose
			}
			return nil, errHeaderTimeout
		}

		if dl, ok := headCtx.Deadline(); ok {
			_ = c.conn.SetReadDeadline(dl)
		}

		n, err := c.conn.Read(buf)
		if n > 0 {
			totalFed += n
			done, perr := parser.Feed(buf[:n])
			if perr != nil {
				return nil, perr
			}
			if done {
				leftover := parser.Leftover()
				cp := make([]byte, len(leftover))
				copy(cp, leftover)
				return cp, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Whether the peer went away before sending anything or
				// mid-head-section, there is no one left to write a
				// response to; close without one either way.
				return nil, errSilentClose
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				return nil, errHeaderTimeout
			}
			c.metrics.ReadError()
			return nil, err
		}
	}
}

// dispatchOne implements steps 3 through 7: build the request, run it
// through the pipeline, finalize and flush the response, and report
// whether the connection should loop for another request. fatal is true
// for any read/write error severe enough that the caller must close
// regardless of the keep-alive decision.
func (c *Connection) dispatchOne(ctx context.Context, parser *httpparser.Parser, leftover []byte) (keepAlive bool, fatal bool) {
	result := parser.Result()

	reqHandle, err := c.reqPool.Acquire(ctx)
	if err != nil {
		return false, true
	}
	defer reqHandle.Release()
	req := reqHandle.Value()

	req.Method = result.Method
	req.URL = result.URL
	req.Version = result.Version
	req.Headers = result.Headers
	req.Body = newBodyStream(c.conn, result.Framing, result.ContentLength, leftover, c.cfg.ReadChunk)

	respHandle, err := c.respPool.Acquire(ctx)
	if err != nil {
		return false, true
	}
	defer respHandle.Release()
	resp := respHandle.Value()
	resp.Version = req.Version
	resp.StatusCode = 200
	resp.StatusMessage = buffer.FromString("OK")

	pc := pipeline.NewContext(ctx, req, resp, c.conn.RemoteAddr(), c.container)

	if derr := c.pl.Dispatch(pc); derr != nil {
		c.metrics.ReadError()
		return false, true
	}
	c.metrics.RequestServed()

	keepAlive = result.KeepAlive && !pc.CloseRequested()

	// A handler is not required to read the whole body; whatever it left
	// unread must still be drained off the wire before the next request
	// line can be parsed, or the leftover body bytes would be
	// misinterpreted as the start of the next request.
	if keepAlive {
		if err := drainBody(ctx, req.Body); err != nil {
			keepAlive = false
		}
	}

	keepAlive = c.finalizeResponse(ctx, resp, keepAlive)

	if werr := c.writeResponse(ctx, resp); werr != nil {
		c.metrics.WriteError()
		return false, true
	}

	return keepAlive, false
}

// drainBody reads in to exhaustion, discarding everything, so that
// whatever a handler left unread does not get mistaken for the start of
// the next request on a keep-alive connection.
func drainBody(ctx context.Context, in stream.InputStream) error {
	if in == nil {
		return nil
	}
	for {
		_, done, err := in.Read(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// finalizeResponse implements the header-finalization half of step 5: it
// computes Content-Length from the accumulated body when the handler
// never set one and is not streaming, sets Date/Server if absent, and
// sets Connection to reflect the final keep-alive decision, returning
// the (possibly downgraded) keep-alive outcome.
func (c *Connection) finalizeResponse(ctx context.Context, resp *message.Response, keepAlive bool) bool {
	if resp.Headers.Get("Content-Length").Empty() {
		if resp.IsStreaming() {
			// Body length cannot be known up front and this response was
			// produced by a handler writing its own body directly; with
			// no Content-Length and no chunked response encoding wired
			// here yet, the only framing-safe option is to close after
			// this response, the same fallback HTTP/1.1 uses for any
			// unknown-length, non-chunked body.
			keepAlive = false
		} else {
			buf := stream.NewBufferOutputStream()
			_ = resp.WriteBody(ctx, buf)
			body := buf.Bytes()
			resp.Headers.Set("Content-Length", buffer.FromString(buffer.FormatInt(body.Len())))
			resp.SetBodyLiteral(body)
		}
	}

	if resp.Headers.Get("Date").Empty() {
		resp.Headers.Set("Date", buffer.FromString(message.FormatHTTPDate(time.Now())))
	}
	if resp.Headers.Get("Server").Empty() && c.cfg.ServerName != "" {
		resp.Headers.Set("Server", buffer.FromString(c.cfg.ServerName))
	}

	if keepAlive {
		resp.Headers.Set("Connection", buffer.FromString("keep-alive"))
	} else {
		resp.Headers.Set("Connection", buffer.FromString("close"))
	}

	return keepAlive
}

// writeResponse implements steps 4 and 6: bind the response to a
// socket-gather-writer and flush the status line, headers, and body as
// packets without an intermediate copy.
func (c *Connection) writeResponse(ctx context.Context, resp *message.Response) error {
	writeCtx := ctx
	var cancel context.CancelFunc
	if c.cfg.WriteTimeout > 0 {
		writeCtx, cancel = context.WithTimeout(ctx, c.cfg.WriteTimeout)
		defer cancel()
	}

	out := stream.NewSocketOutputStream(c.conn)

	head := renderHead(resp)
	p := buffer.NewPacket()
	p.Add(buffer.FromBytes(head))
	if err := stream.Write(writeCtx, out, p); err != nil {
		return err
	}

	return resp.WriteBody(writeCtx, out)
}

// renderHead serializes the status line and every header into one byte
// slice terminated by the blank line that separates headers from body.
func renderHead(resp *message.Response) []byte {
	var buf bytes.Buffer
	version := resp.Version.String()
	if version == "" {
		version = "HTTP/1.1"
	}
	statusMsg := resp.StatusMessage.String()
	fmt.Fprintf(&buf, "%s %d %s\r\n", version, resp.StatusCode, statusMsg)
	resp.Headers.ForEach(func(name string, value buffer.SharedString) {
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.Write(value.Bytes())
		buf.WriteString("\r\n")
	})
	buf.WriteString("\r\n")
	return buf.Bytes()
}

// writeErrorResponse writes a minimal status/body pair directly, used for
// the 408 and parser-failure replies that happen before a pooled Response
// has been acquired (or makes sense to acquire).
func (c *Connection) writeErrorResponse(ctx context.Context, status int, reason string) error {
	resp := message.NewResponse()
	resp.Version = buffer.FromString("HTTP/1.1")
	resp.StatusCode = status
	resp.StatusMessage = buffer.FromString(reason)
	resp.Headers.Set("Connection", buffer.FromString("close"))
	resp.SetBodyLiteral(buffer.FromString(reason))
	resp.Headers.Set("Content-Length", buffer.FromString(buffer.FormatInt(len(reason))))
	return c.writeResponse(ctx, resp)
}

// reasonPhrase maps an httpparser parse-error status to its canonical HTTP
// reason phrase, used for both the status line and the error body instead
// of the parser's internal diagnostic message (e.g. "bad request line"),
// which is meant for logs, not clients.
func reasonPhrase(status int) string {
	switch status {
	case 400:
		return "Bad Request"
	case 408:
		return "Request Timeout"
	case 413:
		return "Payload Too Large"
	case 431:
		return "Request Header Fields Too Large"
	default:
		return "Internal Server Error"
	}
}
