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

// Series-mate stipulations (ser-#N, ser-s#N, ser-h#N) are a popular fairy-
// chess problem genre not named by this solver's own problem-type set;
// they are added here, not carried over from any original source, because
// the search they need is a small variation on the directmate/helpmate
// shapes already in this package, not a new algorithm.

package search

import (
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/movegen"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/solution"
)

// Goal names the condition a series must reach: GoalMate and GoalStalemate
// let the series' own last move deliver the stipulated result directly,
// GoalSelfmate instead requires the opponent to hold exactly one legal
// reply after the series, and for that reply to be forced mate against
// the side that played the series.
type Goal int

const (
	GoalMate Goal = iota
	GoalStalemate
	GoalSelfmate
)

// SeriesDepth is simply N: a series-mate in N plays N consecutive moves by
// one side, so unlike directmate/selfmate/helpmate the ply budget is not
// doubled.
func SeriesDepth(n int) int {
	return n
}

// seriesSearch plays movesLeft further series plies for the side on move.
// Only the series' own final ply may give check, and only for GoalMate/
// GoalStalemate — ser-s#'s series must stay check-free throughout, since
// it is the opponent's single forced reply that has to deliver the mate.
// Each non-final ply toggles the side to move back after Make's automatic
// flip, so the same colour keeps playing pseudo-legal moves; the final
// ply deliberately skips that toggle so isTerminal/evaluateTerminal (and,
// for GoalSelfmate, legalMoves) see the opponent actually on move.
func seriesSearch(p *position.Position, movesLeft int, goal Goal) bool {
	last := movesLeft == 1
	checkAllowed := last && goal != GoalSelfmate

	pseudo := movegen.PseudoLegal(p)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		if !checkAllowed && p.Checkers() > 0 {
			p.Unmake(m)
			continue
		}

		var ok bool
		switch {
		case !last:
			p.ToggleSideToMove()
			ok = seriesSearch(p, movesLeft-1, goal)
			p.ToggleSideToMove()
		case goal == GoalSelfmate:
			ok = forcedSelfmateReply(p)
		default:
			ok = isTerminal(p) && evaluateTerminal(p, goal == GoalStalemate)
		}

		p.Unmake(m)
		if ok {
			return true
		}
	}
	return false
}

// forcedSelfmateReply reports whether the side now on move (the opponent
// of the series) has exactly one legal move and that move delivers mate
// against the series' own side.
func forcedSelfmateReply(p *position.Position) bool {
	legal := legalMoves(p)
	if len(legal) != 1 {
		return false
	}
	mv := legal[0]
	if !p.Make(mv) {
		p.Unmake(mv)
		return false
	}
	mated := isTerminal(p) && evaluateTerminal(p, false)
	p.Unmake(mv)
	return mated
}

// AnalyseSeriesMate collects every winning series as a solution.Line of
// Tempo1st steps, one per series ply, terminated either by the mating/
// stalemating position itself (GoalMate/GoalStalemate) or, for
// GoalSelfmate, by the opponent's single forced Tempo2nd reply.
func AnalyseSeriesMate(p *position.Position, depth int, goal Goal, namer Namer) []solution.Line {
	return analyseSeries(p, depth, goal, namer)
}

func analyseSeries(p *position.Position, movesLeft int, goal Goal, namer Namer) []solution.Line {
	last := movesLeft == 1
	checkAllowed := last && goal != GoalSelfmate

	pseudo := movegen.PseudoLegal(p)
	var lines []solution.Line
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		text := m.PreWrite(p, namer)
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		checks := p.Checkers()
		if !checkAllowed && checks > 0 {
			p.Unmake(m)
			continue
		}

		var ok bool
		var tails []solution.Line
		switch {
		case !last:
			p.ToggleSideToMove()
			tails = analyseSeries(p, movesLeft-1, goal, namer)
			ok = len(tails) > 0
			p.ToggleSideToMove()
		case goal == GoalSelfmate:
			if reply, found := selfmateReplyLine(p, namer); found {
				tails = []solution.Line{reply}
				ok = true
			}
		default:
			ok = isTerminal(p) && evaluateTerminal(p, goal == GoalStalemate)
		}

		if ok {
			annotated := text + move.PostWrite(checks, last && goal != GoalSelfmate && isTerminal(p))
			lines = append(lines, prependStep(solution.Step{Tag: solution.Tempo1st, Text: annotated}, tails)...)
		}
		p.Unmake(m)
	}
	return lines
}

func selfmateReplyLine(p *position.Position, namer Namer) (solution.Line, bool) {
	legal := legalMoves(p)
	if len(legal) != 1 {
		return nil, false
	}
	mv := legal[0]
	text := mv.PreWrite(p, namer)
	if !p.Make(mv) {
		p.Unmake(mv)
		return nil, false
	}
	mated := isTerminal(p) && evaluateTerminal(p, false)
	checks := p.Checkers()
	p.Unmake(mv)
	if !mated {
		return nil, false
	}
	return solution.Line{{Tag: solution.Tempo2nd, Text: text + move.PostWrite(checks, true)}}, true
}
