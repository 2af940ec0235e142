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

// Package stats reduces a slice of successful-attempt latencies into the
// summary a report needs: min, max, average, and a fixed set of
// floor-indexed percentiles. No interpolation is performed, by design —
// the same sample set must always reduce to the same numbers.
package stats

import (
	"sort"

	"github.com/sabouaram/loadprobe/duration"
)

// Summary is the latency reduction of one run's successful samples.
type Summary struct {
	Min duration.Duration
	Max duration.Duration
	Avg duration.Duration
	P50 duration.Duration
	P90 duration.Duration
	P95 duration.Duration
	P99 duration.Duration
}

// percentiles is the fixed set of quantiles every report carries.
var percentiles = []float64{0.50, 0.90, 0.95, 0.99}

// Compute sorts samples ascending and derives a Summary. samples is not
// mutated; a local copy is sorted instead. An empty slice yields a
// zero-valued Summary.
func Compute(samples []duration.Duration) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := make([]duration.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum duration.Duration
	for _, s := range sorted {
		sum += s
	}

	n := len(sorted)
	q := make([]duration.Duration, len(percentiles))
	for i, p := range percentiles {
		q[i] = sorted[quantileIndex(n, p)]
	}

	return Summary{
		Min: sorted[0],
		Max: sorted[n-1],
		Avg: sum / duration.Duration(n),
		P50: q[0],
		P90: q[1],
		P95: q[2],
		P99: q[3],
	}
}

// quantileIndex applies the floor-index rule: idx = clamp(floor(n*p), 0, n-1).
func quantileIndex(n int, p float64) int {
	idx := int(float64(n) * p)
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}
