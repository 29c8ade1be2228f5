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

// Package metrics backs the connection.Metrics interface with real
// Prometheus counters/gauges: the "cpv-http-server" group (total_connections,
// request_served, read_errors, write_errors counters; current_connections
// gauge), each carrying a fixed per-core service id label so metrics from
// several core slots can be told apart once scraped.
package metrics

// Config names a metrics Set's registration namespace and per-core
// identity. It mirrors the prometheus.prefix/prometheus.hostname/
// prometheus.metric_help configuration keys.
type Config struct {
	// Prefix becomes every metric's Prometheus namespace, e.g. "cpv".
	Prefix string
	// Hostname is attached to every metric as the "hostname" label.
	Hostname string
	// ServiceID is attached to every metric as the "service_id" label,
	// identifying which core slot a sample came from.
	ServiceID string
	// MetricHelp, when false, registers every metric with an empty Help
	// string instead of a descriptive one, trading self-description for a
	// smaller /metrics payload.
	MetricHelp bool
}
