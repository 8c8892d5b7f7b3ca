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

package search

import (
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/movegen"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/solution"
)

// HelpmateDepth converts a "helpmate in N" stipulation into the half-move
// ply budget: the side to be mated and the mating side each move N
// times, for 2N plies, or 2N-1 when halfMove (the problem's "half-move"
// flag, spec.md §9 Open Questions) starts the count one ply into the
// pair because the side to be mated's first move is implicit/omitted.
func HelpmateDepth(n int, halfMove bool) int {
	if halfMove {
		return 2*n - 1
	}
	return 2 * n
}

// SearchHelp is the cooperative helpmate search: both sides choose moves
// that help reach the goal, so every ply is existential (find one move
// that works), unlike directmate/selfmate's forall defending ply. tempoTry
// additionally allows a side to "pass" by playing a NullMove where the
// problem's tempo-try option permits studying a waiting-move line.
func SearchHelp(p *position.Position, stalemate bool, depth int, tempoTry bool) bool {
	if depth == 0 {
		return isTerminal(p) && evaluateTerminal(p, stalemate)
	}
	if tempoTry {
		null := move.Move{Kind: move.Null}
		if p.Make(null) {
			if SearchHelp(p, stalemate, depth-1, tempoTry) {
				p.Unmake(null)
				return true
			}
		}
		p.Unmake(null)
	}
	pseudo := movegen.PseudoLegal(p)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			if SearchHelp(p, stalemate, depth-1, tempoTry) {
				p.Unmake(m)
				return true
			}
		}
		p.Unmake(m)
	}
	return false
}

// AnalyseHelpmate collects every cooperative solution as a solution.Line,
// tagging the side-to-be-mated's moves Help1st and the mating side's
// moves Help2nd, alternating every ply (spec.md §4.11's tag set names
// both explicitly, unlike directmate/selfmate which only need Key/Try/
// Continuation/Refutation since there the forcing side is unambiguous).
func AnalyseHelpmate(p *position.Position, stalemate bool, depth int, tempoTry bool, namer Namer) []solution.Line {
	return analyseHelp(p, stalemate, depth, tempoTry, true, namer)
}

func analyseHelp(p *position.Position, stalemate bool, depth int, tempoTry, first bool, namer Namer) []solution.Line {
	tag := solution.Help2nd
	if first {
		tag = solution.Help1st
	}

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
		terminal := isTerminal(p)
		annotated := text + move.PostWrite(checks, terminal)

		var tails []solution.Line
		if depth-1 == 0 {
			if terminal && evaluateTerminal(p, stalemate) {
				tails = nil // leaf: no further ply to record
				lines = append(lines, solution.Line{{Tag: tag, Text: annotated}})
				p.Unmake(m)
				continue
			}
		} else if !terminal {
			tails = analyseHelp(p, stalemate, depth-1, tempoTry, !first, namer)
			if len(tails) > 0 {
				lines = append(lines, prependStep(solution.Step{Tag: tag, Text: annotated}, tails)...)
			}
		}
		p.Unmake(m)
	}
	return lines
}
