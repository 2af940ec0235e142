/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
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

// Package http drives one HTTP/1.1 transaction per attempt over a freshly
// dialed net.Conn — no pooled *http.Client, no keep-alive, one connection
// per attempt, matching the non-goals in the load-generator's contract.
package http

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/sabouaram/loadprobe/config"
	liberr "github.com/sabouaram/loadprobe/errors"
)

// Attempt performs exactly one connect + request + full-response-read
// transaction, returning the bytes received and the elapsed time measured
// from just before dialing to just after the body finishes draining.
type Attempt func(ctx context.Context) (bytesReceived int, latency time.Duration, err liberr.Error)

// New builds the Attempt closure for an HTTP configuration. It parses the
// URI once to derive the dial address; each attempt still builds its
// request from the URI string, which net/http parses again.
func New(cfg config.HTTP) (Attempt, liberr.Error) {
	u, e := url.Parse(cfg.URI)
	if e != nil {
		return nil, ErrorOther.Error(e)
	}

	host := u.Host
	if u.Port() == "" {
		if u.Scheme == "https" {
			host = net.JoinHostPort(u.Hostname(), "443")
		} else {
			host = net.JoinHostPort(u.Hostname(), "80")
		}
	}

	return func(ctx context.Context) (int, time.Duration, liberr.Error) {
		start := time.Now()
		timeout := time.Duration(cfg.TimeoutVal)
		deadline := start.Add(timeout)

		dialer := net.Dialer{Deadline: deadline}
		conn, dialErr := dialer.DialContext(ctx, "tcp", host)
		if dialErr != nil {
			if isTimeoutErr(dialErr) {
				return 0, time.Since(start), ErrorConnectionTimeout.Error(dialErr)
			}
			return 0, time.Since(start), ErrorConnectionRefused.Error(dialErr)
		}
		defer conn.Close()

		req, reqErr := nethttp.NewRequest(cfg.Method, u.String(), bodyReader(cfg.Body))
		if reqErr != nil {
			return 0, time.Since(start), ErrorParse.Error(reqErr)
		}
		for _, h := range cfg.Headers {
			req.Header.Add(h.Name, h.Value)
		}
		req.Host = u.Host
		req.ContentLength = int64(len(cfg.Body))

		if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
			deadline = dl
		}
		_ = conn.SetDeadline(deadline)

		if writeErr := req.Write(conn); writeErr != nil {
			if isTimeoutErr(writeErr) {
				return 0, time.Since(start), ErrorRequestTimeout.Error(writeErr)
			}
			return 0, time.Since(start), ErrorParse.Error(writeErr)
		}

		resp, respErr := nethttp.ReadResponse(bufio.NewReader(conn), req)
		if respErr != nil {
			if isTimeoutErr(respErr) {
				return 0, time.Since(start), ErrorRequestTimeout.Error(respErr)
			}
			return 0, time.Since(start), ErrorHTTP.Error(respErr)
		}
		defer resp.Body.Close()

		n, readErr := io.Copy(io.Discard, resp.Body)
		if readErr != nil {
			if isTimeoutErr(readErr) {
				return int(n), time.Since(start), ErrorRequestTimeout.Error(readErr)
			}
			return int(n), time.Since(start), ErrorHTTP.Error(readErr)
		}

		return int(n), time.Since(start), nil
	}, nil
}

func bodyReader(body []byte) io.Reader {
	if len(body) == 0 {
		return nil
	}
	return bytes.NewReader(body)
}

func isTimeoutErr(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// BytesSent approximates the bytes written per attempt as body length plus
// the sum of header name and value lengths, omitting the request line, CRLF
// separators, and colons. Treat it as an estimate, not an exact wire count.
func BytesSent(cfg config.HTTP) int {
	n := len(cfg.Body)
	for _, h := range cfg.Headers {
		n += len(h.Name) + len(h.Value)
	}
	return n
}
