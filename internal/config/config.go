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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or set by command
// line options.
package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file.
	LogLevel = 5

	// SearchLogLevel defines the search log level.
	SearchLogLevel = 5

	// ParserLogLevel defines the format-A/format-B parser log level.
	ParserLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// LogLevels maps the string representations of log levels accepted by the
// -loglvl/-searchloglvl/-parserloglvl command line options to the numerical
// levels github.com/op/go-logging uses.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Locale localeConfiguration
}

type logConfiguration struct {
	LogLvl       int
	SearchLogLvl int
	ParserLogLvl int
}

// searchConfiguration holds search safety limits: an exact problem solver
// has no heuristic knobs to tune (no evaluation, no pruning), only bounds
// against runaway input. The values are loaded and defaulted here, but no
// search reads them, so no search is bounded by them.
type searchConfiguration struct {
	// MaxNodes is a limit on the number of positions a search visits;
	// no search checks it.
	MaxNodes int64
	// MaxDepth is a limit on mate-search's depth; MateSearch does not read
	// it and is bounded only by the problem's own move count.
	MaxDepth int
}

// localeConfiguration selects the default language for piece letters and
// format-A keywords when a problem does not name one explicitly.
type localeConfiguration struct {
	Default string
}

// Setup reads the configuration file and applies defaults for anything it
// does not set.
func Setup() {
	if initialized {
		return
	}

	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults (", err, ")")
		}
	}

	setupDefaults()
	initialized = true
}

// setupDefaults fills in zero-valued fields left unset by the config file.
func setupDefaults() {
	if Settings.Log.LogLvl == 0 {
		Settings.Log.LogLvl = LogLevel
	}
	if Settings.Log.SearchLogLvl == 0 {
		Settings.Log.SearchLogLvl = SearchLogLevel
	}
	if Settings.Log.ParserLogLvl == 0 {
		Settings.Log.ParserLogLvl = ParserLogLevel
	}
	LogLevel = Settings.Log.LogLvl
	SearchLogLevel = Settings.Log.SearchLogLvl
	ParserLogLevel = Settings.Log.ParserLogLvl

	if Settings.Search.MaxNodes == 0 {
		Settings.Search.MaxNodes = 500_000_000
	}
	if Settings.Search.MaxDepth == 0 {
		Settings.Search.MaxDepth = 40
	}
	if Settings.Locale.Default == "" {
		Settings.Locale.Default = "english"
	}
}

// String prints out the current configuration settings and values, using
// reflection the way the teacher's config package does.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	c.WriteString("\nLocale Config:\n")
	s = reflect.ValueOf(&settings.Locale).Elem()
	typeOfT = s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
