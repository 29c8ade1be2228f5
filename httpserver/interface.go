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

// Package httpserver owns the listener and per-connection accept loop: it
// binds a TCP listener (optionally with SO_REUSEPORT so several core
// slots can each hold their own clone of the same address), accepts
// sockets, and hands each one to its own connection.Connection, running
// until Stop is called.
package httpserver

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cpv-project/cpv-framework-sub001/connection"
)

var validate = validator.New()

// Config describes one listener: where it binds, how its backlog and
// socket options are set, and the per-connection defaults every accepted
// socket is served with.
type Config struct {
	// ListenHost is the address to bind, "" meaning all interfaces.
	ListenHost string `validate:"omitempty,hostname_rfc1123|ip"`
	// ListenPort is the TCP port to bind; 0 asks the OS for an ephemeral
	// port (useful for tests), retrievable afterwards via Server.Addr.
	ListenPort int `validate:"gte=0,lte=65535"`
	// Backlog is validated but not applied to the listening socket,
	// which gets the default accept backlog of Go's net package.
	Backlog int `validate:"gte=0"`
	// ReusePort sets SO_REUSEPORT in addition to SO_REUSEADDR, letting
	// more than one process/slot bind the same address and have the
	// kernel load-balance accepted connections across them.
	ReusePort bool
	// ShutdownTimeout bounds how long Stop waits for in-flight
	// connections to finish on their own before it gives up waiting.
	ShutdownTimeout time.Duration `validate:"gte=0"`
	// PoolCapacity is the free-list capacity of the per-connection
	// request/response object pools (see server.go's goroutine-ownership
	// note on why pools are per-connection rather than per-listener).
	PoolCapacity int `validate:"gte=0"`
	// Conn carries the per-connection timeouts and limits every accepted
	// socket is served with.
	Conn connection.Config
}

// DefaultConfig returns a listener bound to all interfaces on port 8080,
// backlog 65535, SO_REUSEPORT off, a 10s graceful shutdown window, and
// connection.DefaultConfig() for every accepted socket.
func DefaultConfig() Config {
	return Config{
		ListenHost:      "",
		ListenPort:      8080,
		Backlog:         65535,
		ReusePort:       false,
		ShutdownTimeout: 10 * time.Second,
		PoolCapacity:    32,
		Conn:            connection.DefaultConfig(),
	}
}

// Validate reports whether cfg's exported fields satisfy their `validate`
// tags, the same go-playground/validator pattern this module uses for
// its other externally-supplied config structs.
func (cfg Config) Validate() error {
	return validate.Struct(cfg)
}

// Addr renders ListenHost/ListenPort as a net.Listen-ready address string.
func (cfg Config) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.ListenHost, cfg.ListenPort)
}
