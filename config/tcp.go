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

// TCP is the configuration variant driving the raw-TCP protocol adapter.
type TCP struct {
	Address string
	Data    []byte
	Expect  *regexp.Regexp

	ConcurrencyVal int
	RequestsVal    int
	DurationVal    duration.Duration
	TimeoutVal     duration.Duration
	KeepAliveVal   bool
}

func (TCP) isConfig() {}

func (c TCP) Protocol() protocol.Protocol { return protocol.TCP }
func (c TCP) Target() string              { return c.Address }
func (c TCP) Concurrency() int            { return c.ConcurrencyVal }
func (c TCP) Requests() int               { return c.RequestsVal }
func (c TCP) Duration() duration.Duration { return c.DurationVal }
func (c TCP) Timeout() duration.Duration  { return c.TimeoutVal }
func (c TCP) KeepAlive() bool             { return c.KeepAliveVal }

// NewTCP validates and builds a TCP configuration. expectPattern may be
// empty, meaning no regex termination of the read loop.
func NewTCP(address string, data []byte, expectPattern string, concurrency, requests int, dur, timeout duration.Duration, keepAlive bool) (TCP, liberr.Error) {
	if address == "" {
		return TCP{}, ErrorInvalidTarget.Error(nil)
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
			return TCP{}, ErrorInvalidExpect.Error(e)
		}
		expect = re
	}

	c := TCP{
		Address:        address,
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
