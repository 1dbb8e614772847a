// Package logging defines the logger interface the renderer's core
// components take by constructor injection, plus two implementations:
// a plain stdlib logger for tests and quiet runs, and a zap-backed
// structured logger for production use.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Logger is the narrow interface the scheduler, accumulator and CLI
// depend on. None of them call fmt.Println or log.Printf directly, so
// swapping implementations never touches core code.
type Logger interface {
	Debugf(format string, args ...interface{})
	Printf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StdLogger writes formatted lines to an io.Writer with a level
// prefix. Debugf is dropped silently unless Verbose is set.
type StdLogger struct {
	Out     io.Writer
	Verbose bool
}

// NewStdLogger returns a StdLogger writing to w.
func NewStdLogger(w io.Writer, verbose bool) *StdLogger {
	return &StdLogger{Out: w, Verbose: verbose}
}

func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	fmt.Fprintf(l.Out, "DEBUG "+format+"\n", args...)
}

func (l *StdLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.Out, format+"\n", args...)
}

func (l *StdLogger) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(l.Out, "WARN "+format+"\n", args...)
}

func (l *StdLogger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.Out, "ERROR "+format+"\n", args...)
}

// ZapLogger adapts a *zap.SugaredLogger to Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps sugar.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

// NewProductionZapLogger builds a ZapLogger from zap's production
// config (JSON encoding, epoch-seconds timestamps, info level and above).
func NewProductionZapLogger() (*ZapLogger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(base.Sugar()), nil
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *ZapLogger) Printf(format string, args ...interface{}) { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

var _ Logger = (*StdLogger)(nil)
var _ Logger = (*ZapLogger)(nil)
