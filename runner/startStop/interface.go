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

// Package startStop provides a small start/stop/restart lifecycle runner:
// one background function runs until its context is cancelled, a second
// function performs cleanup, and both are supervised without blocking the
// caller of Start.
package startStop

import (
	"context"
	"time"
)

// StartFunc runs until ctx is cancelled or it decides to return on its own.
type StartFunc func(ctx context.Context) error

// StopFunc performs cleanup after the start function has returned.
type StopFunc func(ctx context.Context) error

type StartStop interface {
	// Start launches the start function in a new goroutine, stopping any
	// previous instance first. It returns immediately; failures from the
	// start function land in ErrorsLast/ErrorsList instead.
	Start(ctx context.Context) error

	// Stop cancels the running instance and waits for both the start and
	// stop functions to return. Idempotent: calling Stop when not running
	// is a no-op that returns nil.
	Stop(ctx context.Context) error

	// Restart is Stop followed by Start.
	Restart(ctx context.Context) error

	IsRunning() bool
	Uptime() time.Duration

	ErrorsLast() error
	ErrorsList() []error
}

func New(start StartFunc, stop StopFunc) StartStop {
	return &runner{
		start: start,
		stop:  stop,
	}
}
