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

// Package runner is the thin per-protocol glue: validate a configuration
// variant, build its matching adapter, print a start banner, drive the
// engine, and hand back the finalized report. A single Run serves all
// three protocol variants, all sharing the same engine.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/sabouaram/loadprobe/config"
	"github.com/sabouaram/loadprobe/engine"
	liberr "github.com/sabouaram/loadprobe/errors"
	"github.com/sabouaram/loadprobe/logging"
	httpadapter "github.com/sabouaram/loadprobe/protocol/http"
	tcpadapter "github.com/sabouaram/loadprobe/protocol/tcp"
	udsadapter "github.com/sabouaram/loadprobe/protocol/uds"
)

// Run validates cfg, logs a one-line start banner through log, drives the
// matching protocol adapter through the engine, and returns the finalized
// report. out receives the optional progress bar's rendering when
// cfg.Requests() > 0; it is never closed by Run.
func Run(ctx context.Context, cfg config.Config, log logging.Logger, out io.Writer) (*engine.Report, liberr.Error) {
	attempt, bytesSent, protoName, e := adapterFor(cfg)
	if e != nil {
		return nil, e
	}

	log.Info(fmt.Sprintf("starting %s run against %s (c=%d r=%d d=%s t=%s)",
		protoName, cfg.Target(), cfg.Concurrency(), cfg.Requests(), cfg.Duration(), cfg.Timeout()),
		nil)

	var bar *mpb.Bar
	var p *mpb.Progress
	if cfg.Requests() > 0 {
		p = mpb.NewWithContext(ctx, mpb.WithOutput(out))
		bar = p.AddBar(int64(cfg.Requests()),
			mpb.PrependDecorators(decor.Name(protoName)),
			mpb.AppendDecorators(decor.CountersNoUnit("%d / %d"), decor.Percentage()),
		)
	}

	var onAttempt func()
	if bar != nil {
		onAttempt = func() { bar.Increment() }
	}

	rep, e := engine.Run(ctx, engine.Params{
		Target:              cfg.Target(),
		Protocol:             protoName,
		Concurrency:          cfg.Concurrency(),
		Requests:             cfg.Requests(),
		Duration:             cfg.Duration(),
		Attempt:              attempt,
		BytesSentPerAttempt:  bytesSent,
		OnAttempt:            onAttempt,
	})

	if bar != nil {
		// The run may stop at the deadline before the bar reaches its
		// total (request ceiling); abort it in place so Wait returns
		// instead of blocking on a fill that will never happen.
		bar.Abort(false)
		p.Wait()
	}

	if e != nil {
		return nil, e
	}

	log.Info(fmt.Sprintf("finished: completed=%d successful=%d failed=%d in %s",
		rep.Completed, rep.Successful, rep.Failed, time.Duration(rep.TotalTime)), nil)

	return rep, nil
}

// adapterFor builds the Attempt closure and bytes-sent-per-attempt value
// matching cfg's concrete variant.
func adapterFor(cfg config.Config) (engine.Attempt, int, string, liberr.Error) {
	switch c := cfg.(type) {
	case config.HTTP:
		a, e := httpadapter.New(c)
		if e != nil {
			return nil, 0, "", e
		}
		return engine.Attempt(a), httpadapter.BytesSent(c), "HTTP", nil

	case config.TCP:
		a := tcpadapter.New(c)
		return engine.Attempt(a), tcpadapter.BytesSent(c), "TCP", nil

	case config.UDS:
		a := udsadapter.New(c)
		return engine.Attempt(a), udsadapter.BytesSent(c), "Unix Domain Socket", nil
	}

	panic("runner: unreachable config variant")
}
