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

// Package uds opens one Unix-domain stream socket per attempt, optionally
// writes a payload, and reads the response per the streamio read policy.
// Contract and read policy are identical to the TCP adapter; only the dial
// step differs.
package uds

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/sabouaram/loadprobe/config"
	liberr "github.com/sabouaram/loadprobe/errors"
	"github.com/sabouaram/loadprobe/protocol/streamio"
)

const readBufferSize = 4096

// Attempt performs exactly one connect + optional-write + read transaction.
type Attempt func(ctx context.Context) (bytesReceived int, latency time.Duration, err liberr.Error)

// New builds the Attempt closure for a Unix-domain-socket configuration.
func New(cfg config.UDS) Attempt {
	return func(ctx context.Context) (int, time.Duration, liberr.Error) {
		start := time.Now()
		timeout := time.Duration(cfg.TimeoutVal)
		deadline := start.Add(timeout)

		var d net.Dialer
		d.Deadline = deadline

		conn, dialErr := d.DialContext(ctx, "unix", cfg.Path)
		if dialErr != nil {
			if isTimeoutErr(dialErr) {
				return 0, time.Since(start), ErrorConnectionTimeout.Error(dialErr)
			}
			return 0, time.Since(start), ErrorConnectionRefused.Error(dialErr)
		}
		defer conn.Close()

		if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
			deadline = dl
		}
		_ = conn.SetDeadline(deadline)

		if len(cfg.Data) > 0 {
			if _, writeErr := conn.Write(cfg.Data); writeErr != nil {
				if isTimeoutErr(writeErr) {
					return 0, time.Since(start), ErrorRequestTimeout.Error(writeErr)
				}
				return 0, time.Since(start), ErrorIO.Error(writeErr)
			}
		}

		buf, readErr := streamio.ReadUntil(conn, cfg.Expect, readBufferSize)
		if readErr != nil {
			if errors.Is(readErr, streamio.ErrPatternNotFound) {
				return len(buf), time.Since(start), ErrorResponseValidation.Error(readErr)
			}
			return len(buf), time.Since(start), ErrorIO.Error(readErr)
		}

		return len(buf), time.Since(start), nil
	}
}

func isTimeoutErr(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// BytesSent is simply the length of the configured payload.
func BytesSent(cfg config.UDS) int {
	return len(cfg.Data)
}
