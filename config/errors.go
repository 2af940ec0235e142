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

import liberr "github.com/sabouaram/loadprobe/errors"

// All config-time failures classify as liberr's Config kind: bad URL,
// non-positive concurrency/timeout, or a malformed expect regex.
const (
	ErrorInvalidTarget liberr.CodeError = iota + liberr.MinPkgConfig
	ErrorInvalidConcurrency
	ErrorInvalidTimeout
	ErrorInvalidExpect
)

func init() {
	if liberr.ExistInMapMessage(ErrorInvalidTarget) {
		panic("config error codes already registered")
	}
	liberr.RegisterIdFctMessage(ErrorInvalidTarget, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorInvalidTarget:
		return "target is missing or malformed"
	case ErrorInvalidConcurrency:
		return "concurrency must be >= 1"
	case ErrorInvalidTimeout:
		return "timeout must be > 0"
	case ErrorInvalidExpect:
		return "expect pattern does not compile as a regular expression"
	}

	return liberr.NullMessage
}
