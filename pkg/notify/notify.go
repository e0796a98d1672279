// Package notify delivers short user-facing status messages.
//
// Sinks are fire and forget. Emitting a notification never fails and
// never blocks the operation being reported on.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Sink receives one-line outcome messages for operations the user
// triggered.
type Sink interface {
	Success(format string, args ...any)
	Error(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
}

type console struct {
	out io.Writer

	success *color.Color
	failure *color.Color
	info    *color.Color
	warning *color.Color
}

// Console is a Sink writing tagged, colored lines to out.
// Pass the stderr of the command so notifications never mix into
// payload output on stdout.
func Console(out io.Writer) Sink {
	return &console{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
		warning: color.New(color.FgYellow),
	}
}

func (c *console) Success(format string, args ...any) {
	c.emit(c.success, "ok", format, args...)
}

func (c *console) Error(format string, args ...any) {
	c.emit(c.failure, "error", format, args...)
}

func (c *console) Info(format string, args ...any) {
	c.emit(c.info, "info", format, args...)
}

func (c *console) Warning(format string, args ...any) {
	c.emit(c.warning, "warn", format, args...)
}

func (c *console) emit(tag *color.Color, label, format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", tag.Sprintf("[%s]", label), fmt.Sprintf(format, args...))
}

type discard struct{}

// Discard is a Sink dropping everything. Use it where notifications
// are switched off or in tests that do not observe them.
func Discard() Sink {
	return discard{}
}

func (discard) Success(string, ...any) {}
func (discard) Error(string, ...any)   {}
func (discard) Info(string, ...any)    {}
func (discard) Warning(string, ...any) {}

type muted struct {
	inner     Sink
	successes bool
	errors    bool
	infos     bool
	warnings  bool
}

// Muted wraps inner so that each level can be switched off
// independently, per user preference.
func Muted(inner Sink, successes, errors, infos, warnings bool) Sink {
	return &muted{
		inner:     inner,
		successes: successes,
		errors:    errors,
		infos:     infos,
		warnings:  warnings,
	}
}

func (m *muted) Success(format string, args ...any) {
	if m.successes {
		m.inner.Success(format, args...)
	}
}

func (m *muted) Error(format string, args ...any) {
	if m.errors {
		m.inner.Error(format, args...)
	}
}

func (m *muted) Info(format string, args ...any) {
	if m.infos {
		m.inner.Info(format, args...)
	}
}

func (m *muted) Warning(format string, args ...any) {
	if m.warnings {
		m.inner.Warning(format, args...)
	}
}
