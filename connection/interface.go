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

// Package connection implements the per-connection state machine: the
// Idle -> Reading -> Dispatching -> Writing -> (Idle | Closing) loop that
// reads a request off the wire, hands it to the handler pipeline, and
// writes the response back, looping while keep-alive holds and closing
// otherwise. It is the glue between the parser (httpparser), the request/
// response envelopes (message), and the handler chain (pipeline).
package connection

import "time"

// State is a connection's current stage in the per-request loop.
type State int

const (
	StateIdle State = iota
	StateReading
	StateDispatching
	StateWriting
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReading:
		return "Reading"
	case StateDispatching:
		return "Dispatching"
	case StateWriting:
		return "Writing"
	case StateClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Metrics is the narrow counter/gauge surface a Connection reports
// through. Defined here (rather than depended on from package metrics) so
// this package has no dependency on a Prometheus client; package metrics
// implements this interface against the real counters.
type Metrics interface {
	ConnectionOpened()
	ConnectionClosed()
	RequestServed()
	ReadError()
	WriteError()
}

// noopMetrics discards every observation; used when a Connection is built
// with a nil Metrics so call sites never need a nil check.
type noopMetrics struct{}

func (noopMetrics) ConnectionOpened() {}
func (noopMetrics) ConnectionClosed() {}
func (noopMetrics) RequestServed()    {}
func (noopMetrics) ReadError()        {}
func (noopMetrics) WriteError()       {}

// Config bounds a connection's resource usage and timeouts.
type Config struct {
	// ReadChunk is the size of one socket read while waiting for more of
	// a request's head section or body.
	ReadChunk int
	// HighWaterMark is not consulted by Connection: response output is
	// not bounded by it, and a response body with no Content-Length set
	// is accumulated in full before it is written.
	HighWaterMark int
	// IdleTimeout is not consulted by Connection: the wait for the next
	// request on a keep-alive connection is bounded by HeaderTimeout
	// alone, and when that expires a 408 is sent before closing.
	IdleTimeout time.Duration
	// HeaderTimeout closes a connection (after a 408 response) if no
	// full head section (request line + headers) arrives within this
	// duration of starting to read it.
	HeaderTimeout time.Duration
	// WriteTimeout bounds how long a single response write may take.
	WriteTimeout time.Duration
	// ServerName is written as the Server header when a handler did not
	// set one itself.
	ServerName string
}

// DefaultConfig returns reasonable defaults: 16KiB read chunks, a 4MiB
// high-water mark, a 75s idle timeout, a 10s header-read timeout, a 30s
// write timeout, and "cpv-framework" as the Server header.
func DefaultConfig() Config {
	return Config{
		ReadChunk:     16 * 1024,
		HighWaterMark: 4 * 1024 * 1024,
		IdleTimeout:   75 * time.Second,
		HeaderTimeout: 10 * time.Second,
		WriteTimeout:  30 * time.Second,
		ServerName:    "cpv-framework",
	}
}
