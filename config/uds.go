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

package config

import (
	"regexp"

	"github.com/sabouaram/loadprobe/duration"
	liberr "github.com/sabouaram/loadprobe/errors"
	"github.com/sabouaram/loadprobe/protocol"
)

// UDS is the configuration variant driving the Unix-domain-socket protocol
// adapter. Its shape mirrors TCP exactly; the two diverge only in how the
// adapter dials.
type UDS struct {
	Path   string
	Data   []byte
	Expect *regexp.Regexp

	ConcurrencyVal int
	RequestsVal    int
	DurationVal    duration.Duration
	TimeoutVal     duration.Duration
	KeepAliveVal   bool
}

func (UDS) isConfig() {}

func (c UDS) Protocol() protocol.Protocol { return protocol.UnixDomainSocket }
func (c UDS) Target() string              { return c.Path }
func (c UDS) Concurrency() int            { return c.ConcurrencyVal }
func (c UDS) Requests() int               { return c.RequestsVal }
func (c UDS) Duration() duration.Duration { return c.DurationVal }
func (c UDS) Timeout() duration.Duration  { return c.TimeoutVal }
func (c UDS) KeepAlive() bool             { return c.KeepAliveVal }

// NewUDS validates and builds a UDS configuration.
func NewUDS(path string, data []byte, expectPattern string, concurrency, requests int, dur, timeout duration.Duration, keepAlive bool) (UDS, liberr.Error) {
	if path == "" {
		return UDS{}, ErrorInvalidTarget.Error(nil)
	}
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if timeout == 0 {
		timeout = duration.Duration(DefaultTimeoutMS) * duration.Duration(1e6)
	}

	var expect *regexp.Regexp
	if expectPattern != "" {
		re, e := regexp.Compile(expectPattern)
		if e != nil {
			return UDS{}, ErrorInvalidExpect.Error(e)
		}
		expect = re
	}

	c := UDS{
		Path:           path,
		Data:           data,
		Expect:         expect,
		ConcurrencyVal: concurrency,
		RequestsVal:    requests,
		DurationVal:    dur,
		TimeoutVal:     timeout,
		KeepAliveVal:   keepAlive,
	}

	if concurrency < 1 {
		return c, ErrorInvalidConcurrency.Error(nil)
	}
	if timeout <= 0 {
		return c, ErrorInvalidTimeout.Error(nil)
	}

	return c, nil
}
