/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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
 *
 */

// Package protocol identifies the wire protocol a benchmark run targets.
package protocol

import "strings"

// Protocol is the transport a benchmark run drives attempts over.
type Protocol uint8

const (
	HTTP Protocol = iota
	TCP
	UnixDomainSocket
)

// FromString maps a case-insensitive name to a Protocol, defaulting to HTTP
// when the name is not recognized.
func FromString(str string) Protocol {
	switch {
	case strings.EqualFold(TCP.String(), str):
		return TCP
	case strings.EqualFold(UnixDomainSocket.String(), str), strings.EqualFold("uds", str):
		return UnixDomainSocket
	default:
		return HTTP
	}
}

func (p Protocol) String() string {
	switch p {
	case TCP:
		return "tcp"
	case UnixDomainSocket:
		return "unix"
	default:
		return "http"
	}
}

func (p Protocol) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *Protocol) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*p = FromString(s)
	return nil
}
