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

package store

import (
	"time"

	"github.com/sabouaram/loadprobe/config"
	"github.com/sabouaram/loadprobe/duration"
	liberr "github.com/sabouaram/loadprobe/errors"
)

// document is the on-disk shape: {"configs": {name: entry}}.
type document struct {
	Configs map[string]entry `json:"configs"`
}

// entry is a flat, protocol-tagged record capable of representing any of
// the three configuration variants. Fields that don't apply to a given
// protocol are simply omitted on encode.
type entry struct {
	Protocol string `json:"protocol"`
	Target   string `json:"target"`

	Method  string          `json:"method,omitempty"`
	Headers []config.Header `json:"headers,omitempty"`
	Body    []byte          `json:"body,omitempty"`

	Data   []byte `json:"data,omitempty"`
	Expect string `json:"expect,omitempty"`

	Concurrency int     `json:"concurrency"`
	Requests    int     `json:"requests"`
	DurationSec float64 `json:"duration_seconds"`
	TimeoutMS   int64   `json:"timeout_ms"`
	KeepAlive   bool    `json:"keep_alive"`
}

// toEntry flattens any configuration variant into its on-disk form.
func toEntry(cfg config.Config) entry {
	e := entry{
		Protocol:    cfg.Protocol().String(),
		Target:      cfg.Target(),
		Concurrency: cfg.Concurrency(),
		Requests:    cfg.Requests(),
		DurationSec: time.Duration(cfg.Duration()).Seconds(),
		TimeoutMS:   time.Duration(cfg.Timeout()).Milliseconds(),
		KeepAlive:   cfg.KeepAlive(),
	}

	switch c := cfg.(type) {
	case config.HTTP:
		e.Method = c.Method
		e.Headers = c.Headers
		e.Body = c.Body
	case config.TCP:
		e.Data = c.Data
		if c.Expect != nil {
			e.Expect = c.Expect.String()
		}
	case config.UDS:
		e.Data = c.Data
		if c.Expect != nil {
			e.Expect = c.Expect.String()
		}
	}

	return e
}

// toConfig rebuilds the matching configuration variant from an on-disk
// entry, running it back through the same constructors the CLI uses so
// validation stays identical between load paths.
func toConfig(e entry) (config.Config, liberr.Error) {
	dur := duration.Duration(time.Duration(e.DurationSec * float64(time.Second)))
	timeout := duration.Duration(time.Duration(e.TimeoutMS) * time.Millisecond)

	switch e.Protocol {
	case "http":
		return config.NewHTTP(e.Target, e.Method, e.Headers, e.Body, e.Concurrency, e.Requests, dur, timeout, e.KeepAlive)
	case "tcp":
		return config.NewTCP(e.Target, e.Data, e.Expect, e.Concurrency, e.Requests, dur, timeout, e.KeepAlive)
	case "unix":
		return config.NewUDS(e.Target, e.Data, e.Expect, e.Concurrency, e.Requests, dur, timeout, e.KeepAlive)
	}

	return nil, ErrorUnknownProtocol.Error(nil)
}
