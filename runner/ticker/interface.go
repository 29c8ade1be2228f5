/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package ticker provides a periodic-callback lifecycle runner built on
// startStop: a TickFunc fires on every tick of an internal time.Ticker
// until stopped.
package ticker

import (
	"context"
	"time"
)

// MinDuration is the smallest accepted tick interval; anything smaller (or
// non-positive) falls back to defaultDuration.
const MinDuration = time.Millisecond

const defaultDuration = 30 * time.Second

// TickFunc is invoked on every tick. An error is recorded but does not stop
// the ticker; a panic is recovered and recorded the same way.
type TickFunc func(ctx context.Context, tck *time.Ticker) error

type Ticker interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Restart(ctx context.Context) error

	IsRunning() bool
	Uptime() time.Duration

	ErrorsLast() error
	ErrorsList() []error
}

func New(d time.Duration, fct TickFunc) Ticker {
	if d < MinDuration {
		d = defaultDuration
	}

	return &tick{
		d:   d,
		fct: fct,
	}
}
