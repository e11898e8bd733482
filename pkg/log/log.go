/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a logging abstraction shared by the lzw and
// packbits codecs and their CLI drivers.
package log

import (
	"io/ioutil"
	"log"
	"os"

	"go.uber.org/zap"
)

// Logger defines an interface for logging messages.
type Logger interface {

	// Printf logs a formatted string.
	Printf(format string, args ...interface{})

	// Println logs a line.
	Println(args ...interface{})

	// Fatalf is equivalent to Printf() followed by a program abort.
	Fatalf(format string, args ...interface{})

	// Fatalln is equivalent to Println() followed by a program abort.
	Fatalln(args ...interface{})
}

type logger struct {
	log Logger
}

// Debug, Info and Trace are this module's 3 defined loggers.
var (
	Debug = &logger{}
	Info  = &logger{}
	Trace = &logger{}
)

// SetDebugLogger sets the debug logger.
func SetDebugLogger(l Logger) {
	Debug.log = l
}

// SetInfoLogger sets the info logger.
func SetInfoLogger(l Logger) {
	Info.log = l
}

// SetTraceLogger sets the trace logger.
func SetTraceLogger(l Logger) {
	Trace.log = l
}

// SetDefaultDebugLogger sets the default debug logger.
func SetDefaultDebugLogger() {
	SetDebugLogger(log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime))
}

// SetDefaultInfoLogger sets the default info logger.
func SetDefaultInfoLogger() {
	SetInfoLogger(log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime))
}

// SetDefaultTraceLogger sets the default trace logger, discarding output.
func SetDefaultTraceLogger() {
	SetTraceLogger(log.New(ioutil.Discard, "TRACE: ", log.Ldate|log.Ltime))
}

// SetDefaultLoggers sets all loggers to their default logger.
func SetDefaultLoggers() {
	SetDefaultDebugLogger()
	SetDefaultInfoLogger()
	SetDefaultTraceLogger()
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetInfoLogger(nil)
	SetTraceLogger(nil)
}

// SetZapLoggers wires a zap development logger into Debug and Trace, for
// the CLI's -verbose flag. Info keeps going to stderr via the stdlib
// logger.
func SetZapLoggers() error {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	sugar := zl.Sugar()
	SetDebugLogger(zapAdapter{sugar})
	SetTraceLogger(zapAdapter{sugar})
	SetDefaultInfoLogger()
	return nil
}

// zapAdapter satisfies Logger on top of a *zap.SugaredLogger.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (z zapAdapter) Printf(format string, args ...interface{}) { z.s.Debugf(format, args...) }
func (z zapAdapter) Println(args ...interface{})               { z.s.Debug(args...) }
func (z zapAdapter) Fatalf(format string, args ...interface{}) { z.s.Fatalf(format, args...) }
func (z zapAdapter) Fatalln(args ...interface{})               { z.s.Fatal(args...) }

// Printf writes a formatted message to the log.
func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

// Println writes a line to the log.
func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Fatalf(format, args...)
}

func (l *logger) Fatalln(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Fatalln(args...)
}
