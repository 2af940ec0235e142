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

// Package config models the immutable, per-run benchmark configuration as a
// discriminated union: exactly one of HTTP, TCP, or UDS describes a run.
package config

import (
	"github.com/sabouaram/loadprobe/duration"
	"github.com/sabouaram/loadprobe/protocol"
)

// Header is one ordered, possibly-repeated HTTP header pair.
type Header struct {
	Name  string
	Value string
}

// Common is satisfied by every configuration variant. It mirrors the
// original BenchmarkConfig trait's accessor surface.
type Common interface {
	Protocol() protocol.Protocol
	Target() string
	Concurrency() int
	Requests() int
	Duration() duration.Duration
	Timeout() duration.Duration
	KeepAlive() bool
}

// Config is the sealed union; the three concrete variants in this package
// are its only implementations.
type Config interface {
	Common
	isConfig()
}

const (
	DefaultConcurrency = 1
	DefaultRequests    = 100
	DefaultDuration    = 10 // seconds
	DefaultTimeoutMS   = 30000
	DefaultHTTPMethod  = "GET"
)
