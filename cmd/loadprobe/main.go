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

// Command loadprobe is the CLI front-end: it turns flags into a
// configuration record and hands everything else to the core packages.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sabouaram/loadprobe/config"
	"github.com/sabouaram/loadprobe/duration"
	"github.com/sabouaram/loadprobe/logging"
	"github.com/sabouaram/loadprobe/report"
	"github.com/sabouaram/loadprobe/runner"
)

type globalFlags struct {
	concurrency int
	requests    int
	durationSec int
	timeoutMS   int
	keepAlive   bool
	output      string
}

type httpFlags struct {
	method   string
	headers  []string
	body     string
	bodyFile string
}

type dataFlags struct {
	data     string
	dataFile string
	expect   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "loadprobe",
		Short: "A multi-protocol load generator for HTTP, TCP, and Unix domain sockets",
	}
	root.PersistentFlags().IntVarP(&g.concurrency, "concurrency", "c", config.DefaultConcurrency, "number of concurrent worker streams")
	root.PersistentFlags().IntVarP(&g.requests, "requests", "r", config.DefaultRequests, "request ceiling (0 = unbounded)")
	root.PersistentFlags().IntVarP(&g.durationSec, "duration", "d", config.DefaultDuration, "run duration in seconds")
	root.PersistentFlags().IntVarP(&g.timeoutMS, "timeout", "t", config.DefaultTimeoutMS, "per-attempt timeout in milliseconds")
	root.PersistentFlags().BoolVar(&g.keepAlive, "keep-alive", false, "reserved for future connection reuse; currently has no effect")
	root.PersistentFlags().StringVar(&g.output, "output", "text", "report output format: text|json")

	root.AddCommand(newHTTPCmd(g))
	root.AddCommand(newTCPCmd(g))
	root.AddCommand(newUDSCmd(g))

	return root
}

func newHTTPCmd(g *globalFlags) *cobra.Command {
	h := &httpFlags{}

	cmd := &cobra.Command{
		Use:   "http <url>",
		Short: "Benchmark an HTTP/1.1 endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := resolveBody(h.body, h.bodyFile)
			if err != nil {
				return err
			}

			headers, err := parseHeaders(h.headers)
			if err != nil {
				return err
			}

			cfg, e := config.NewHTTP(args[0], h.method, headers, body,
				g.concurrency, g.requests, secDuration(g.durationSec), msDuration(g.timeoutMS), g.keepAlive)
			if e != nil {
				return e
			}

			return runAndRender(cmd, cfg, g.output)
		},
	}
	cmd.Flags().StringVarP(&h.method, "method", "m", config.DefaultHTTPMethod, "HTTP method")
	cmd.Flags().StringArrayVarP(&h.headers, "headers", "H", nil, "header as 'Name:Value', repeatable")
	cmd.Flags().StringVarP(&h.body, "body", "b", "", "request body")
	cmd.Flags().StringVar(&h.bodyFile, "body-file", "", "path to a file holding the request body")

	return cmd
}

func newTCPCmd(g *globalFlags) *cobra.Command {
	d := &dataFlags{}

	cmd := &cobra.Command{
		Use:   "tcp <host:port>",
		Short: "Benchmark a raw TCP endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := resolveBody(d.data, d.dataFile)
			if err != nil {
				return err
			}

			cfg, e := config.NewTCP(args[0], data, d.expect,
				g.concurrency, g.requests, secDuration(g.durationSec), msDuration(g.timeoutMS), g.keepAlive)
			if e != nil {
				return e
			}

			return runAndRender(cmd, cfg, g.output)
		},
	}
	addDataFlags(cmd, d)

	return cmd
}

func newUDSCmd(g *globalFlags) *cobra.Command {
	d := &dataFlags{}

	cmd := &cobra.Command{
		Use:   "uds <socket-path>",
		Short: "Benchmark a Unix domain socket endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := resolveBody(d.data, d.dataFile)
			if err != nil {
				return err
			}

			cfg, e := config.NewUDS(args[0], data, d.expect,
				g.concurrency, g.requests, secDuration(g.durationSec), msDuration(g.timeoutMS), g.keepAlive)
			if e != nil {
				return e
			}

			return runAndRender(cmd, cfg, g.output)
		},
	}
	addDataFlags(cmd, d)

	return cmd
}

func addDataFlags(cmd *cobra.Command, d *dataFlags) {
	cmd.Flags().StringVarP(&d.data, "data", "D", "", "bytes to write after connecting")
	cmd.Flags().StringVar(&d.dataFile, "data-file", "", "path to a file holding the bytes to write")
	cmd.Flags().StringVarP(&d.expect, "expect", "e", "", "regular expression that terminates the read loop on first match")
}

func runAndRender(cmd *cobra.Command, cfg config.Config, output string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.New(logging.InfoLevel, cmd.ErrOrStderr())

	rep, e := runner.Run(ctx, cfg, log, cmd.ErrOrStderr())
	if e != nil {
		return e
	}

	return report.Render(cmd.OutOrStdout(), rep, report.ParseFormat(output))
}

func resolveBody(inline, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return []byte(inline), nil
}

func parseHeaders(raw []string) ([]config.Header, error) {
	headers := make([]config.Header, 0, len(raw))
	for _, h := range raw {
		name, value, ok := splitHeader(h)
		if !ok {
			return nil, fmt.Errorf("invalid header %q: expected 'Name:Value'", h)
		}
		headers = append(headers, config.Header{Name: name, Value: value})
	}
	return headers, nil
}

func splitHeader(h string) (name, value string, ok bool) {
	for i := 0; i < len(h); i++ {
		if h[i] == ':' {
			return h[:i], h[i+1:], true
		}
	}
	return "", "", false
}

func secDuration(n int) duration.Duration {
	return duration.Duration(time.Duration(n) * time.Second)
}

func msDuration(n int) duration.Duration {
	return duration.Duration(time.Duration(n) * time.Millisecond)
}
