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

package tcp

import liberr "github.com/sabouaram/loadprobe/errors"

const (
	ErrorIO liberr.CodeError = iota + liberr.MinPkgProtocolTCP
	ErrorConnectionRefused
	ErrorConnectionTimeout
	ErrorRequestTimeout
	ErrorResponseValidation
	ErrorOther
)

func init() {
	if liberr.ExistInMapMessage(ErrorIO) {
		panic("protocol/tcp error codes already registered")
	}
	liberr.RegisterIdFctMessage(ErrorIO, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorIO:
		return "unclassified I/O failure"
	case ErrorConnectionRefused:
		return "connection refused"
	case ErrorConnectionTimeout:
		return "connect did not complete within timeout"
	case ErrorRequestTimeout:
		return "write did not complete within timeout"
	case ErrorResponseValidation:
		return "expected pattern not found in response"
	case ErrorOther:
		return "unclassified failure"
	}

	return liberr.NullMessage
}
