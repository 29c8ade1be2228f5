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

package ticker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cpv-project/cpv-framework-sub001/runner/startStop"
)

type tick struct {
	d   time.Duration
	fct TickFunc

	mu   sync.Mutex
	sr   startStop.StartStop
	errs []error
}

func (t *tick) ensure() startStop.StartStop {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sr == nil {
		t.sr = startStop.New(t.run, func(ctx context.Context) error { return nil })
	}
	return t.sr
}

func (t *tick) run(ctx context.Context) error {
	tk := time.NewTicker(t.d)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tk.C:
			t.fire(ctx, tk)
		}
	}
}

func (t *tick) fire(ctx context.Context, tk *time.Ticker) {
	defer func() {
		if r := recover(); r != nil {
			t.record(fmt.Errorf("ticker callback panic: %v", r))
		}
	}()

	if t.fct == nil {
		t.record(fmt.Errorf("invalid function"))
		return
	}

	if err := t.fct(ctx, tk); err != nil {
		t.record(err)
	}
}

func (t *tick) record(err error) {
	t.mu.Lock()
	t.errs = append(t.errs, err)
	t.mu.Unlock()
}

func (t *tick) Start(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("invalid nil context")
	}

	t.mu.Lock()
	t.errs = nil
	t.mu.Unlock()

	return t.ensure().Start(ctx)
}

func (t *tick) Stop(ctx context.Context) error {
	return t.ensure().Stop(ctx)
}

func (t *tick) Restart(ctx context.Context) error {
	t.mu.Lock()
	t.errs = nil
	t.mu.Unlock()

	return t.ensure().Restart(ctx)
}

func (t *tick) IsRunning() bool {
	return t.ensure().IsRunning()
}

func (t *tick) Uptime() time.Duration {
	return t.ensure().Uptime()
}

func (t *tick) ErrorsLast() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.errs) == 0 {
		return nil
	}
	return t.errs[len(t.errs)-1]
}

func (t *tick) ErrorsList() []error {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]error, len(t.errs))
	copy(out, t.errs)
	return out
}
