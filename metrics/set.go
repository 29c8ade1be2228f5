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

package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const subsystem = "http_server"

// Set is one core slot's cpv-http-server metric group, registered against
// its own private prometheus.Registry so two Sets (one per slot) never
// collide and each can be scraped or torn down independently. It
// satisfies connection.Metrics.
type Set struct {
	reg *prometheus.Registry

	totalConnections   prometheus.Counter
	currentConnections prometheus.Gauge
	requestServed      prometheus.Counter
	readErrors         prometheus.Counter
	writeErrors        prometheus.Counter

	// count mirrors currentConnections outside of Prometheus's own
	// internals, so a caller (e.g. a periodic heartbeat log) can read the
	// live value without scraping the registry.
	count atomic.Int64
}

// New builds a Set and registers every metric against a fresh Registry.
func New(cfg Config) *Set {
	reg := prometheus.NewRegistry()

	help := func(s string) string {
		if !cfg.MetricHelp {
			return ""
		}
		return s
	}

	labels := prometheus.Labels{
		"hostname":   cfg.Hostname,
		"service_id": cfg.ServiceID,
	}

	s := &Set{
		reg: reg,
		totalConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Prefix,
			Subsystem:   subsystem,
			Name:        "total_connections",
			Help:        help("total number of connections accepted"),
			ConstLabels: labels,
		}),
		currentConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Prefix,
			Subsystem:   subsystem,
			Name:        "current_connections",
			Help:        help("number of connections currently open"),
			ConstLabels: labels,
		}),
		requestServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Prefix,
			Subsystem:   subsystem,
			Name:        "request_served",
			Help:        help("total number of requests dispatched through the pipeline"),
			ConstLabels: labels,
		}),
		readErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Prefix,
			Subsystem:   subsystem,
			Name:        "read_errors",
			Help:        help("total number of socket read failures, excluding protocol parse errors"),
			ConstLabels: labels,
		}),
		writeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Prefix,
			Subsystem:   subsystem,
			Name:        "write_errors",
			Help:        help("total number of socket write failures"),
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		s.totalConnections,
		s.currentConnections,
		s.requestServed,
		s.readErrors,
		s.writeErrors,
	)

	return s
}

func (s *Set) ConnectionOpened() {
	s.totalConnections.Inc()
	s.currentConnections.Inc()
	s.count.Add(1)
}

func (s *Set) ConnectionClosed() {
	s.currentConnections.Dec()
	s.count.Add(-1)
}

// CurrentConnections reports the live open-connection count.
func (s *Set) CurrentConnections() int64 {
	return s.count.Load()
}

func (s *Set) RequestServed() {
	s.requestServed.Inc()
}

func (s *Set) ReadError() {
	s.readErrors.Inc()
}

func (s *Set) WriteError() {
	s.writeErrors.Inc()
}

// Registry returns the private prometheus.Registry this Set registered
// its metrics against, for wiring into a scrape endpoint.
func (s *Set) Registry() *prometheus.Registry {
	return s.reg
}

// Handler returns an http.Handler serving this Set's metrics in the
// Prometheus exposition format, suitable for mounting at /metrics.
func (s *Set) Handler() http.Handler {
	return promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})
}
