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

package httpserver

import (
	"context"
	"net"
	"sync"

	goerrors "errors"

	"github.com/cpv-project/cpv-framework-sub001/connection"
	liberr "github.com/cpv-project/cpv-framework-sub001/errors"
	"github.com/cpv-project/cpv-framework-sub001/errors/pool"
	"github.com/cpv-project/cpv-framework-sub001/logger"
	"github.com/cpv-project/cpv-framework-sub001/message"
	"github.com/cpv-project/cpv-framework-sub001/pipeline"
	"github.com/cpv-project/cpv-framework-sub001/reusable"
	"github.com/cpv-project/cpv-framework-sub001/runner/startStop"
)

// AlreadyListeningCode is the Listen-time error raised when the accept
// loop is already running. ShutdownTimeoutCode is added to drain's error
// pool when connections are still in flight past cfg.ShutdownTimeout.
const (
	AlreadyListeningCode liberr.CodeError = liberr.MinPkgHttpServer + iota
	ShutdownTimeoutCode
)

func init() {
	liberr.RegisterIdFctMessage(AlreadyListeningCode, func(code liberr.CodeError) string {
		switch code {
		case AlreadyListeningCode:
			return "httpserver: already listening"
		case ShutdownTimeoutCode:
			return "httpserver: shutdown timed out waiting for connections to drain"
		default:
			return liberr.UnknownMessage
		}
	})
}

// Server owns one bound listener and the accept loop feeding it.
// Multiple Servers (one per core slot) can share a ReusePort address;
// each one is otherwise fully independent. The accept loop's own
// lifecycle (start once, stop once, wait for drain) is supervised by a
// startStop.StartStop rather than hand-rolled bookkeeping.
type Server struct {
	cfg       Config
	pl        *pipeline.Pipeline
	log       logger.Logger
	metrics   connection.Metrics
	container any

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup

	rs startStop.StartStop
}

// New returns a Server ready to Listen. log and metrics may be nil (a
// discarding logger.New()/connection noop Metrics are substituted);
// container is handed unchanged to every connection accepted by this
// server, exactly as connection.New documents.
func New(cfg Config, pl *pipeline.Pipeline, log logger.Logger, metrics connection.Metrics, container any) *Server {
	if log == nil {
		log = logger.New()
	}
	s := &Server{
		cfg:       cfg,
		pl:        pl,
		log:       log,
		metrics:   metrics,
		container: container,
	}
	s.rs = startStop.New(s.run, s.drain)
	return s
}

// IsRunning reports whether the accept loop is currently active.
func (s *Server) IsRunning() bool {
	return s.rs.IsRunning()
}

// Addr returns the bound listener's local address, or nil before Listen
// succeeds or after Stop.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Listen validates cfg, binds the listener, and starts the accept loop in
// its own goroutine. It returns once the listener is bound; accept
// failures after that point are logged rather than returned.
func (s *Server) Listen(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.rs.IsRunning() {
		s.mu.Unlock()
		return AlreadyListeningCode.Error()
	}

	ln, err := listen(ctx, s.cfg)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.ln = ln
	s.mu.Unlock()

	s.log.Info("listening", nil, "addr=%s", ln.Addr().String())

	return s.rs.Start(ctx)
}

// run is the startStop.StartFunc driving the accept loop: it accepts
// sockets, handing each one to its own connection.Connection running in
// its own goroutine, until ctx is cancelled or Accept fails outright. A
// watcher goroutine closes the listener on cancellation (best-effort,
// just to unblock Accept), since Accept has no way to observe ctx
// directly; drain is the authoritative closer and reports the outcome.
func (s *Server) run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.mu.Lock()
		ln := s.ln
		s.mu.Unlock()
		if ln != nil {
			_ = ln.Close()
		}
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Error("accept failed", err)
			return err
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(ctx, conn)
		}()
	}
}

// drain is the startStop.StopFunc: it closes the listener (idempotent
// with run's watcher goroutine, which may already have closed it to
// unblock Accept) and waits up to cfg.ShutdownTimeout for connections
// already in flight to finish on their own.
func (s *Server) drain(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	s.ln = nil
	s.mu.Unlock()

	errs := pool.New()
	if ln != nil {
		if err := ln.Close(); err != nil && !goerrors.Is(err, net.ErrClosed) {
			errs.Add(err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	waitCtx := ctx
	var cancel context.CancelFunc
	if s.cfg.ShutdownTimeout > 0 {
		waitCtx, cancel = context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
	}

	select {
	case <-done:
	case <-waitCtx.Done():
		s.log.Warning("shutdown timed out waiting for connections to drain", nil)
		errs.Add(ShutdownTimeoutCode.Error())
	}

	return errs.Error()
}

// serveConn builds a fresh, connection-private pair of request/response
// pools and serves one accepted socket to completion. Pools are
// per-connection rather than shared per-listener because reusable.Pool is
// documented as owned by exactly one goroutine; a pool shared by every
// concurrently-served connection on this listener would violate that.
func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	reqPool := reusable.NewPool[*message.Request](0, s.cfg.PoolCapacity, message.NewRequest)
	respPool := reusable.NewPool[*message.Response](0, s.cfg.PoolCapacity, message.NewResponse)

	c := connection.New(conn, s.cfg.Conn, s.pl, reqPool, respPool, s.metrics, s.container)
	c.Serve(ctx)
}

// Stop stops the accept loop and waits for it (and the connection drain
// that follows) to finish, bounded by cfg.ShutdownTimeout. It is
// idempotent: calling Stop on a Server that is not running is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	if !s.rs.IsRunning() {
		return nil
	}
	s.log.Info("shutting down", nil)
	return s.rs.Stop(ctx)
}
