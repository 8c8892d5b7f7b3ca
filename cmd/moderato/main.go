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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/moderato/internal/batch"
	"github.com/frankkopp/moderato/internal/config"
	"github.com/frankkopp/moderato/internal/lang"
	"github.com/frankkopp/moderato/internal/logging"
	"github.com/frankkopp/moderato/internal/parseepd"
	"github.com/frankkopp/moderato/internal/parseproblem"
	"github.com/frankkopp/moderato/internal/problem"
	"github.com/frankkopp/moderato/internal/search"
	"github.com/frankkopp/moderato/internal/solution"
)

const version = "0.1.0"

var log = logging.GetLog()

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	parserLogLvl := flag.String("parserloglvl", "", "parser log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	localeName := flag.String("locale", "", "default locale for format-A input without its own Option\n(english|french|german)")
	batchFile := flag.String("batch", "", "path to a YAML batch file naming several format-A/format-B tasks")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
		config.Settings.Log.LogLvl = lvl
	}
	if lvl, found := config.LogLevels[*parserLogLvl]; found {
		config.ParserLogLevel = lvl
		config.Settings.Log.ParserLogLvl = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
		config.Settings.Log.SearchLogLvl = lvl
	}
	log = logging.GetLog()

	defaultLocale := lang.English
	if *localeName != "" {
		l, ok := lang.ParseLocale(*localeName)
		if !ok {
			fmt.Fprintf(os.Stderr, "moderato: unrecognised locale %q\n", *localeName)
			os.Exit(1)
		}
		defaultLocale = l
	} else if l, ok := lang.ParseLocale(config.Settings.Locale.Default); ok {
		defaultLocale = l
	}

	// os.Exit skips deferred calls, so the profile is stopped explicitly.
	stopProfile := func() {}
	if *cpuProfile {
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	}

	printBanner(defaultLocale)

	var problems []*problem.Problem
	var err error
	switch {
	case *batchFile != "":
		problems, err = batch.LoadYAML(*batchFile)
	default:
		problems, err = readProblems(flag.Args(), defaultLocale)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "moderato: %v\n", err)
		stopProfile()
		os.Exit(1)
	}

	runner := search.NewRunner(nil)
	exitCode := 0
	for i, pr := range problems {
		if err := solveOne(runner, i, pr); err != nil {
			fmt.Fprintf(os.Stderr, "moderato: problem %d: %v\n", i+1, err)
			exitCode = 1
		}
	}
	stopProfile()
	os.Exit(exitCode)
}

// readProblems reads either the single positional file argument or, absent
// one, standard input, and dispatches to format-A or format-B parsing
// depending on whether a BeginProblem-style keyword appears in the text.
// Format-A input is read in the locale detectFormatA reports, except that
// defaultLocale wins when it spells BeginProblem the same way.
func readProblems(args []string, defaultLocale lang.Locale) ([]*problem.Problem, error) {
	var raw []byte
	var err error
	switch len(args) {
	case 0:
		raw, err = io.ReadAll(os.Stdin)
	case 1:
		raw, err = os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("at most one input file may be given, got %d", len(args))
	}
	if err != nil {
		return nil, err
	}

	text := string(raw)
	locale, isFormatA := detectFormatA(text)
	if isFormatA {
		if lang.Table(defaultLocale).BeginProblem == lang.Table(locale).BeginProblem {
			locale = defaultLocale
		}
		return parseproblem.ParseAll(strings.NewReader(text), locale)
	}

	var problems []*problem.Problem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pr, err := parseepd.Parse(line)
		if err != nil {
			return nil, err
		}
		problems = append(problems, pr)
	}
	return problems, nil
}

// detectFormatA reports whether text looks like format-A input by
// searching for any locale's BeginProblem keyword among its fields, and
// if so the first locale, in English, French, German order, whose keyword
// appears. Locales that share the keyword are not told apart.
func detectFormatA(text string) (lang.Locale, bool) {
	fields := strings.Fields(text)
	for _, l := range []lang.Locale{lang.English, lang.French, lang.German} {
		begin := lang.Table(l).BeginProblem
		for _, f := range fields {
			if f == begin {
				return l, true
			}
		}
	}
	return lang.English, false
}

// solveOne solves pr and writes its rendered result to stdout.
func solveOne(r *search.Runner, index int, pr *problem.Problem) error {
	log.Debugf("solving problem %d: stipulation %s in %d", index+1, pr.Stip, pr.N)

	res, err := pr.Solve(r)
	if err != nil {
		return err
	}

	fmt.Printf("problem %d: %s%d\n", index+1, pr.Stip, pr.N)
	for _, remark := range pr.Remarks {
		fmt.Printf("  %s\n", remark)
	}

	switch {
	case res.PerftCount != 0 || pr.Stip == problem.Perft:
		fmt.Printf("  acd %d = %s\n", pr.N, strconv.FormatUint(res.PerftCount, 10))
	case len(res.Mates) > 0:
		for _, m := range res.Mates {
			fmt.Printf("  %s  (+%d)\n", m.Text, m.Depth)
		}
	default:
		branches := solution.Fold(res.Lines)
		text := solution.Write(branches, 1, !pr.Position.BlackToMove(), "\n", "  ", " ")
		if strings.TrimSpace(text) == "" {
			fmt.Println("  no solution found")
		} else {
			fmt.Print(text)
		}
	}
	return nil
}

func printBanner(l lang.Locale) {
	tag := language.English
	switch l {
	case lang.French:
		tag = language.French
	case lang.German:
		tag = language.German
	}
	out := message.NewPrinter(tag)
	out.Printf("Moderato %s\n", version)
	out.Printf("Using Go %s on %s, %d CPUs\n", runtime.Version(), runtime.GOARCH, runtime.NumCPU())
}

func printVersionInfo() {
	fmt.Printf("Moderato %s\n", version)
	fmt.Printf("Using Go %s on %s, %d CPUs\n", runtime.Version(), runtime.GOARCH, runtime.NumCPU())
}
