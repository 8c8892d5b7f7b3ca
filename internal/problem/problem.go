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

// Package problem ties a parsed stipulation, a set-up position, and a
// handful of reporting options to the right internal/search algorithm,
// and carries the result back as one of a solution tree, a node count,
// or a list of shortest mates, whichever the stipulation called for.
package problem

import (
	"fmt"

	"github.com/frankkopp/moderato/internal/lang"
	"github.com/frankkopp/moderato/internal/logging"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/search"
	"github.com/frankkopp/moderato/internal/solution"
)

var log = logging.GetLog()

// Stip names one of spec.md §6's stipulation grammars, plus the
// series-mate extension, which has no counterpart in
// original_source/ProblemTypes.cpp (see SPEC_FULL.md §9).
type Stip int

const (
	Directmate Stip = iota
	DirectStalemate
	Selfmate
	SelfStalemate
	Helpmate
	HelpStalemate
	SeriesMate
	SeriesStalemate
	SeriesSelfmate
	Perft
	MateSearch
)

// String names the stipulation the way format-A's Stipulation command
// would spell it (spec.md §6: "[h|s]#|=N").
func (s Stip) String() string {
	switch s {
	case Directmate:
		return "#"
	case DirectStalemate:
		return "="
	case Selfmate:
		return "s#"
	case SelfStalemate:
		return "s="
	case Helpmate:
		return "h#"
	case HelpStalemate:
		return "h="
	case SeriesMate:
		return "ser-#"
	case SeriesStalemate:
		return "ser-="
	case SeriesSelfmate:
		return "ser-s#"
	case Perft:
		return "acd"
	case MateSearch:
		return "dm"
	default:
		return "?"
	}
}

// Options mirrors the subset of format-A's Option command that is stored
// on a Problem. Solve reads Try, Defence, NullMoves and WhiteToPlay;
// SetPlay is stored but not read. The other options (NoBoard,
// MoveNumbers, HalfDuplex, NoShortVariations, Variation, NoThreat,
// EnPassant, NoCastling) are parsed by internal/parseproblem and then
// dropped: neither Solve nor the CLI reads them — see DESIGN.md.
type Options struct {
	Try         bool // directmate/selfmate: also report tries and their refutations
	Defence     int  // max refutations to collect per try (0 = unbounded)
	SetPlay     bool // set by the SetPlay option; Solve does not read it and produces no set play
	NullMoves   bool // helpmate: allow a tempo (null) move by the side that is not stipulated to move first
	WhiteToPlay bool // helpmate: white, not black, plays the first half-move
}

// Problem is a single solvable task: a position, a stipulation with its
// move-count N, the locale it was declared in, and the reporting options
// that shape which solution.Line tags get produced.
type Problem struct {
	Position *position.Position
	Stip     Stip
	N        int
	Locale   lang.Locale
	Options  Options
	Remarks  []string
}

// Result carries whichever of the three possible outcome shapes the
// stipulation produced; exactly one field is populated.
type Result struct {
	Lines      []solution.Line
	PerftCount uint64
	Mates      []search.Mate
}

// namer returns the locale-specific move.Namer for pr's declared locale.
func (pr *Problem) namer() search.Namer {
	letters := lang.Letters(pr.Locale)
	return letters.Letter
}

// Solve runs the search algorithm matching pr.Stip against pr.Position
// and returns the result in the shape that stipulation produces.
// r may be nil, in which case Solve runs unguarded; callers sharing one
// Runner across goroutines get the spec's single-search-per-Position
// rule enforced for free.
func (pr *Problem) Solve(r *search.Runner) (Result, error) {
	if r != nil {
		release := r.Guard()
		defer release()
	}

	p := pr.Position
	namer := pr.namer()
	log.Debugf("solving stipulation %s in %d, locale %s", pr.Stip, pr.N, pr.Locale)

	switch pr.Stip {
	case Directmate, DirectStalemate:
		stalemate := pr.Stip == DirectStalemate
		lines := search.AnalyseDirectmate(p, stalemate, search.DirectmateDepth(pr.N), pr.defence(), namer)
		return Result{Lines: lines}, nil

	case Selfmate, SelfStalemate:
		stalemate := pr.Stip == SelfStalemate
		lines := search.AnalyseSelfmate(p, stalemate, search.SelfmateDepth(pr.N), pr.defence(), namer)
		return Result{Lines: lines}, nil

	case Helpmate, HelpStalemate:
		stalemate := pr.Stip == HelpStalemate
		p.SetBlackToMove(!pr.Options.WhiteToPlay)
		depth := search.HelpmateDepth(pr.N, pr.Options.WhiteToPlay)
		lines := search.AnalyseHelpmate(p, stalemate, depth, pr.Options.NullMoves, namer)
		return Result{Lines: lines}, nil

	case SeriesMate, SeriesStalemate, SeriesSelfmate:
		goal := search.GoalMate
		switch pr.Stip {
		case SeriesStalemate:
			goal = search.GoalStalemate
		case SeriesSelfmate:
			goal = search.GoalSelfmate
		}
		lines := search.AnalyseSeriesMate(p, search.SeriesDepth(pr.N), goal, namer)
		return Result{Lines: lines}, nil

	case Perft:
		return Result{PerftCount: search.Perft(p, pr.N)}, nil

	case MateSearch:
		mates := search.MateSearch(p, false, pr.N, namer)
		return Result{Mates: mates}, nil

	default:
		return Result{}, fmt.Errorf("problem: unrecognised stipulation %v", pr.Stip)
	}
}

// unboundedDefence is passed to AnalyseDirectmate/AnalyseSelfmate when
// the Try option is set without an explicit Defence <N> cap: any number
// of refutations still counts as a reportable Try line.
const unboundedDefence = 1 << 30

// defence reports how many refutations AnalyseDirectmate/AnalyseSelfmate
// should collect per try: spec.md's Option Defence <N> caps it, absence
// of the Try option disables try-reporting entirely by requesting zero.
func (pr *Problem) defence() int {
	if !pr.Options.Try {
		return 0
	}
	if pr.Options.Defence > 0 {
		return pr.Options.Defence
	}
	return unboundedDefence
}
