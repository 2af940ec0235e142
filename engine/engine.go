/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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
 */

// Package engine drives the worker-pool: C parallel streams hammer one
// protocol adapter, honoring a request ceiling and a wall-clock deadline,
// and merge their latency samples into a single reduced report.
package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sabouaram/loadprobe/duration"
	liberr "github.com/sabouaram/loadprobe/errors"
	"github.com/sabouaram/loadprobe/stats"
)

// sampleChanCapacity bounds the latency-sample channel. Once full, sends
// are dropped rather than applying backpressure to workers — throughput
// accuracy is preferred over latency-sample completeness.
const sampleChanCapacity = 10000

// supervisorTick is the interval the supervisor polls the deadline at.
const supervisorTick = 100 * time.Millisecond

// Attempt performs one request/response transaction for a protocol adapter.
type Attempt func(ctx context.Context) (bytesReceived int, latency time.Duration, err liberr.Error)

// Params configures one Run invocation.
type Params struct {
	Target      string
	Protocol    string
	Concurrency int
	Requests    int
	Duration    duration.Duration

	Attempt            Attempt
	BytesSentPerAttempt int

	// OnAttempt, if set, is invoked once per completed (non-cancelled)
	// attempt — used by the runner to drive a progress indicator.
	OnAttempt func()
}

// counters holds the shared atomic counters workers update as they run,
// separate from the channel latency samples are merged through.
type counters struct {
	completed     uint64
	successful    uint64
	bytesSent     uint64
	bytesReceived uint64
}

// Run spawns Params.Concurrency workers against Params.Attempt, honoring
// both the request ceiling and the duration as independent stop
// conditions, and returns the reduced report once every worker has
// terminated or been aborted.
func Run(ctx context.Context, p Params) (*Report, liberr.Error) {
	if p.Requests <= 0 && p.Duration <= 0 {
		return nil, ErrorNoWork.Error(nil)
	}
	if p.Concurrency < 1 {
		p.Concurrency = 1
	}

	quota := 0
	if p.Requests > 0 {
		quota = int(math.Ceil(float64(p.Requests) / float64(p.Concurrency)))
	}

	start := time.Now()
	var deadline time.Time
	if p.Duration > 0 {
		deadline = start.Add(time.Duration(p.Duration))
	}

	runCtx, cancel := context.WithCancel(ctx)
	if !deadline.IsZero() {
		var dlCancel context.CancelFunc
		runCtx, dlCancel = context.WithDeadline(runCtx, deadline)
		defer dlCancel()
	}
	defer cancel()

	var c counters
	samples := make(chan time.Duration, sampleChanCapacity)

	g, gCtx := errgroup.WithContext(runCtx)
	for i := 0; i < p.Concurrency; i++ {
		g.Go(func() error {
			runWorker(gCtx, p, quota, deadline, &c, samples)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	ticker := time.NewTicker(supervisorTick)
	defer ticker.Stop()

supervise:
	for {
		select {
		case <-done:
			break supervise
		case <-ticker.C:
			if !deadline.IsZero() && !time.Now().Before(deadline) {
				cancel()
			}
		}
	}
	cancel()

	close(samples)
	collected := make([]duration.Duration, 0, len(samples))
	for s := range samples {
		collected = append(collected, duration.Duration(s))
	}

	summary := stats.Compute(collected)
	total := time.Since(start)

	completed := atomic.LoadUint64(&c.completed)
	successful := atomic.LoadUint64(&c.successful)

	var rps float64
	if total > 0 {
		rps = float64(completed) / total.Seconds()
	}

	return &Report{
		Target:        p.Target,
		Protocol:      p.Protocol,
		Concurrency:   p.Concurrency,
		Completed:     completed,
		Successful:    successful,
		Failed:        completed - successful,
		TotalTime:     duration.Duration(total),
		RPS:           rps,
		Avg:           summary.Avg,
		Min:           summary.Min,
		Max:           summary.Max,
		P50:           summary.P50,
		P90:           summary.P90,
		P95:           summary.P95,
		P99:           summary.P99,
		BytesSent:     atomic.LoadUint64(&c.bytesSent),
		BytesReceived: atomic.LoadUint64(&c.bytesReceived),
	}, nil
}

// runWorker repeatedly issues attempts until its quota is spent, the
// deadline passes, or the run context is cancelled. An attempt never issued
// because a stop condition was already true, and an attempt that was
// in flight when the run context was cancelled, both update no counter and
// produce no sample — only an attempt that ran to completion while the
// context was still live is counted, successful or not.
func runWorker(ctx context.Context, p Params, quota int, deadline time.Time, c *counters, samples chan<- time.Duration) {
	issued := 0
	for {
		if ctx.Err() != nil {
			return
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return
		}
		if quota > 0 && issued >= quota {
			return
		}
		issued++

		bytesReceived, latency, err := p.Attempt(ctx)

		// An attempt that only failed because the run was cancelled out from
		// under it is discarded entirely, not counted as a failure — the
		// worker loop is about to exit on its next iteration anyway.
		if ctx.Err() != nil {
			return
		}

		atomic.AddUint64(&c.completed, 1)

		if err == nil {
			atomic.AddUint64(&c.successful, 1)
			atomic.AddUint64(&c.bytesSent, uint64(p.BytesSentPerAttempt))
			atomic.AddUint64(&c.bytesReceived, uint64(bytesReceived))

			select {
			case samples <- latency:
			default:
			}
		}

		if p.OnAttempt != nil {
			p.OnAttempt()
		}
	}
}
