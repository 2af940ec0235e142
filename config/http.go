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
	"net/url"

	liberr "github.com/sabouaram/loadprobe/errors"
	"github.com/sabouaram/loadprobe/duration"
	"github.com/sabouaram/loadprobe/protocol"
)

// HTTP is the configuration variant driving the HTTP protocol adapter.
type HTTP struct {
	URI     string
	Method  string
	Headers []Header
	Body    []byte

	ConcurrencyVal int
	RequestsVal    int
	DurationVal    duration.Duration
	TimeoutVal     duration.Duration
	KeepAliveVal   bool
}

func (HTTP) isConfig() {}

func (c HTTP) Protocol() protocol.Protocol   { return protocol.HTTP }
func (c HTTP) Target() string                { return c.URI }
func (c HTTP) Concurrency() int              { return c.ConcurrencyVal }
func (c HTTP) Requests() int                 { return c.RequestsVal }
func (c HTTP) Duration() duration.Duration   { return c.DurationVal }
func (c HTTP) Timeout() duration.Duration    { return c.TimeoutVal }
func (c HTTP) KeepAlive() bool               { return c.KeepAliveVal }

// NewHTTP validates and builds an HTTP configuration, applying defaults for
// zero-valued fields the same way the CLI and the named-config store do.
func NewHTTP(uri, method string, headers []Header, body []byte, concurrency, requests int, dur, timeout duration.Duration, keepAlive bool) (HTTP, liberr.Error) {
	if method == "" {
		method = DefaultHTTPMethod
	}
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if timeout == 0 {
		timeout = duration.Duration(DefaultTimeoutMS) * duration.Duration(1e6)
	}

	c := HTTP{
		URI:            uri,
		Method:         method,
		Headers:        headers,
		Body:           body,
		ConcurrencyVal: concurrency,
		RequestsVal:    requests,
		DurationVal:    dur,
		TimeoutVal:     timeout,
		KeepAliveVal:   keepAlive,
	}

	if _, e := url.ParseRequestURI(uri); e != nil {
		return c, ErrorInvalidTarget.Error(e)
	}
	if concurrency < 1 {
		return c, ErrorInvalidConcurrency.Error(nil)
	}
	if timeout <= 0 {
		return c, ErrorInvalidTimeout.Error(nil)
	}

	return c, nil
}
