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

// Package streamio holds the read loop shared by the TCP and UDS protocol
// adapters: read-until-pattern when an expect regex is configured, else
// read-until-EOF-or-deadline.
package streamio

import (
	"errors"
	"io"
	"net"
	"regexp"
)

// ErrPatternNotFound is returned when expect is set but never matches before
// EOF or the connection deadline.
var ErrPatternNotFound = errors.New("expected pattern not found in response")

// ReadUntil drains conn per the read policy described above and returns
// everything read. When expect is nil, reaching the deadline is a normal
// termination (nil error) rather than a failure.
func ReadUntil(conn net.Conn, expect *regexp.Regexp, bufSize int) ([]byte, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	buf := make([]byte, 0, bufSize)
	chunk := make([]byte, bufSize)

	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)

			if expect != nil && expect.MatchString(string(buf)) {
				return buf, nil
			}
		}

		if err != nil {
			if isTimeout(err) {
				if expect != nil {
					return buf, ErrPatternNotFound
				}
				return buf, nil
			}

			if errors.Is(err, io.EOF) {
				if expect != nil {
					return buf, ErrPatternNotFound
				}
				return buf, nil
			}

			return buf, err
		}
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
