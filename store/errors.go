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

import liberr "github.com/sabouaram/loadprobe/errors"

const (
	ErrorIO liberr.CodeError = iota + liberr.MinPkgStore
	ErrorDecode
	ErrorUnknownName
	ErrorUnknownProtocol
)

func init() {
	if liberr.ExistInMapMessage(ErrorIO) {
		panic("store error codes already registered")
	}
	liberr.RegisterIdFctMessage(ErrorIO, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorIO:
		return "cannot read or write the configuration store file"
	case ErrorDecode:
		return "configuration store file is not valid JSON"
	case ErrorUnknownName:
		return "no configuration is saved under that name"
	case ErrorUnknownProtocol:
		return "stored configuration names a protocol this build does not know"
	}

	return liberr.NullMessage
}
