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

// Package batch reads a YAML file naming several format-A/format-B tasks to
// run in one invocation, an alternative to the single file-or-stdin input
// the CLI otherwise reads, for scripting a whole test corpus from one
// config file rather than one process per problem.
package batch

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frankkopp/moderato/internal/lang"
	"github.com/frankkopp/moderato/internal/parseepd"
	"github.com/frankkopp/moderato/internal/parseproblem"
	"github.com/frankkopp/moderato/internal/problem"
)

// Entry is one task inside a batch file. Format selects which parser reads
// Text (or the file Text names): "problem" for format-A, "epd" for
// format-B. Locale only applies to format-A entries and defaults to
// English when empty.
type Entry struct {
	Format string `yaml:"format"`
	Locale string `yaml:"locale"`
	Text   string `yaml:"text"`
	File   string `yaml:"file"`
}

// File is the top-level shape of a batch YAML document.
type File struct {
	Tasks []Entry `yaml:"tasks"`
}

// LoadYAML reads path as a batch File and resolves every entry into its
// problem.Problem values, in file order.
func LoadYAML(path string) ([]*problem.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var bf File
	if err := yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var all []*problem.Problem
	for i, e := range bf.Tasks {
		problems, err := e.resolve()
		if err != nil {
			return nil, fmt.Errorf("batch: task %d: %w", i, err)
		}
		all = append(all, problems...)
	}
	return all, nil
}

// resolve reads e's text (inline, or from e.File when Text is empty) and
// parses it with the parser e.Format names.
func (e Entry) resolve() ([]*problem.Problem, error) {
	text := e.Text
	if text == "" {
		if e.File == "" {
			return nil, fmt.Errorf("entry has neither text nor file")
		}
		raw, err := os.ReadFile(e.File)
		if err != nil {
			return nil, err
		}
		text = string(raw)
	}

	switch e.Format {
	case "problem", "":
		locale := lang.English
		if e.Locale != "" {
			l, ok := lang.ParseLocale(e.Locale)
			if !ok {
				return nil, fmt.Errorf("unrecognised locale %q", e.Locale)
			}
			locale = l
		}
		return parseproblem.ParseAll(strings.NewReader(text), locale)
	case "epd":
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
	default:
		return nil, fmt.Errorf("unrecognised format %q", e.Format)
	}
}
