//
// Moderato - a chess problem solver in Go
//
// MIT License
//
// Copyright (c) 2021-2026 Moderato contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances preconfigured with the backend and
// formatter every package in this module shares.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/moderato/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	parserLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("moderato")
	searchLog = logging.MustGetLogger("search")
	parserLog = logging.MustGetLogger("parser")
	testLog = logging.MustGetLogger("test")
}

func backend(l *logging.Logger, level int) *logging.Logger {
	b := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	f := logging.NewBackendFormatter(b, standardFormat)
	leveled := logging.AddModuleLevel(f)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}

// GetLog returns the standard logger, used for CLI and solution output.
func GetLog() *logging.Logger {
	return backend(standardLog, config.Settings.Log.LogLvl)
}

// GetSearchLog returns the logger used inside search.Runner, separated
// out so a caller can silence search tracing without silencing the CLI.
func GetSearchLog() *logging.Logger {
	return backend(searchLog, config.Settings.Log.SearchLogLvl)
}

// GetParserLog returns the logger used by parseproblem and parseepd while
// reading input.
func GetParserLog() *logging.Logger {
	return backend(parserLog, config.Settings.Log.ParserLogLvl)
}

// GetTestLog returns a logger at debug level for use from _test.go files.
func GetTestLog() *logging.Logger {
	return backend(testLog, int(logging.DEBUG))
}
