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

// Package report renders a finalized engine.Report as either a bordered
// text block or a pretty-printed JSON object.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sabouaram/loadprobe/console"
	"github.com/sabouaram/loadprobe/duration"
	"github.com/sabouaram/loadprobe/engine"
)

// Format selects the rendering of a report.
type Format uint8

const (
	Text Format = iota
	JSON
)

func ParseFormat(s string) Format {
	if s == "json" {
		return JSON
	}
	return Text
}

// jsonDuration mirrors a duration the way the JSON report encodes it: a
// {secs, nanos} pair rather than a single integer, so the unit is never
// ambiguous to a consumer.
type jsonDuration struct {
	Secs  int64 `json:"secs"`
	Nanos int64 `json:"nanos"`
}

const nanosPerSecond = int64(1e9)

func toJSONDuration(d duration.Duration) jsonDuration {
	total := int64(d)
	return jsonDuration{
		Secs:  total / nanosPerSecond,
		Nanos: total % nanosPerSecond,
	}
}

type jsonReport struct {
	Target      string `json:"target"`
	Protocol    string `json:"protocol"`
	Concurrency int    `json:"concurrency"`

	Completed  uint64 `json:"completed"`
	Successful uint64 `json:"successful"`
	Failed     uint64 `json:"failed"`

	TotalTime jsonDuration `json:"total_time"`
	RPS       float64      `json:"requests_per_second"`

	Avg jsonDuration `json:"avg_latency"`
	Min jsonDuration `json:"min_latency"`
	Max jsonDuration `json:"max_latency"`
	P50 jsonDuration `json:"p50_latency"`
	P90 jsonDuration `json:"p90_latency"`
	P95 jsonDuration `json:"p95_latency"`
	P99 jsonDuration `json:"p99_latency"`

	BytesSent     uint64 `json:"bytes_sent"`
	BytesReceived uint64 `json:"bytes_received"`
}

// Render writes rep to w in the requested format.
func Render(w io.Writer, rep *engine.Report, format Format) error {
	if format == JSON {
		return renderJSON(w, rep)
	}
	return renderText(w, rep)
}

func renderJSON(w io.Writer, rep *engine.Report) error {
	jr := jsonReport{
		Target:        rep.Target,
		Protocol:      rep.Protocol,
		Concurrency:   rep.Concurrency,
		Completed:     rep.Completed,
		Successful:    rep.Successful,
		Failed:        rep.Failed,
		TotalTime:     toJSONDuration(rep.TotalTime),
		RPS:           rep.RPS,
		Avg:           toJSONDuration(rep.Avg),
		Min:           toJSONDuration(rep.Min),
		Max:           toJSONDuration(rep.Max),
		P50:           toJSONDuration(rep.P50),
		P90:           toJSONDuration(rep.P90),
		P95:           toJSONDuration(rep.P95),
		P99:           toJSONDuration(rep.P99),
		BytesSent:     rep.BytesSent,
		BytesReceived: rep.BytesReceived,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jr)
}

const fieldWidth = 22

func renderText(w io.Writer, rep *engine.Report) error {
	rows := [][2]string{
		{"target", rep.Target},
		{"protocol", rep.Protocol},
		{"concurrency", fmt.Sprint(rep.Concurrency)},
		{"completed", fmt.Sprint(rep.Completed)},
		{"successful", fmt.Sprint(rep.Successful)},
		{"failed", fmt.Sprint(rep.Failed)},
		{"requests/sec", fmt.Sprintf("%.2f", rep.RPS)},
		{"total time", rep.TotalTime.String()},
		{"avg latency", rep.Avg.String()},
		{"min latency", rep.Min.String()},
		{"max latency", rep.Max.String()},
		{"p50 latency", rep.P50.String()},
		{"p90 latency", rep.P90.String()},
		{"p95 latency", rep.P95.String()},
		{"p99 latency", rep.P99.String()},
		{"bytes sent", fmt.Sprint(rep.BytesSent)},
		{"bytes received", fmt.Sprint(rep.BytesReceived)},
	}

	border := "+" + pad("", fieldWidth+2, "-") + "+" + pad("", fieldWidth+2, "-") + "+\n"

	if _, err := console.ColorPrint.BuffPrintf(w, "%s", border); err != nil {
		return err
	}
	for _, row := range rows {
		line := fmt.Sprintf("| %s | %s |\n",
			console.PadRight(row[0], fieldWidth, " "),
			console.PadRight(row[1], fieldWidth, " "))
		if _, err := console.ColorPrint.BuffPrintf(w, "%s", line); err != nil {
			return err
		}
	}
	_, err := console.ColorPrint.BuffPrintf(w, "%s", border)
	return err
}

func pad(str string, length int, fill string) string {
	return console.PadRight(str, length, fill)
}
