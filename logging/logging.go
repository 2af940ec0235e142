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

// Package logging provides the leveled, structured logger used across the
// benchmark core: a start-banner line and a finish line per run, nothing
// more.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled logging surface every package in this module logs
// through. Call sites never reach for logrus directly.
type Logger interface {
	SetLevel(lvl Level)
	GetLevel() Level

	Debug(message string, fields map[string]interface{})
	Info(message string, fields map[string]interface{})
	Warning(message string, fields map[string]interface{})
	Error(message string, fields map[string]interface{})
}

type logger struct {
	lvl Level
	out *logrus.Logger
}

// New returns a Logger writing to w (os.Stderr when w is nil) at the given
// minimal level.
func New(lvl Level, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl.Logrus())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &logger{lvl: lvl, out: l}
}

func (l *logger) SetLevel(lvl Level) {
	l.lvl = lvl
	l.out.SetLevel(lvl.Logrus())
}

func (l *logger) GetLevel() Level {
	return l.lvl
}

func (l *logger) Debug(message string, fields map[string]interface{}) {
	l.out.WithFields(fields).Debug(message)
}

func (l *logger) Info(message string, fields map[string]interface{}) {
	l.out.WithFields(fields).Info(message)
}

func (l *logger) Warning(message string, fields map[string]interface{}) {
	l.out.WithFields(fields).Warn(message)
}

func (l *logger) Error(message string, fields map[string]interface{}) {
	l.out.WithFields(fields).Error(message)
}

// Discard returns a Logger that drops every entry.
func Discard() Logger {
	return New(NilLevel, io.Discard)
}
