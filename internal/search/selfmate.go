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

// SelfmateDepth converts a "selfmate in N" stipulation into the half-move
// ply budget: the forcing side moves N times, the opponent replies N
// times, the last of which is the opponent's compulsory mate against the
// forcing side, for 2N plies total.
func SelfmateDepth(n int) int {
	return 2 * n
}

// selfTerminal reports whether p is the selfmate goal: forcingBlack (the
// side that moved first at the root, and the only side the goal can ever
// be scored against) is to move, has no legal move, and is in check
// (or stalemated, when stalemate is requested). Unlike directmate, the
// mated side here is the side that started the search, not its opponent,
// so directmate's colour-agnostic isTerminal/evaluateTerminal pairing
// cannot be reused directly for the success test: it would also fire
// (wrongly) the moment the forcing side's own move mates the opponent
// outright, scoring an ordinary directmate as a selfmate.
func selfTerminal(p *position.Position, stalemate bool, forcingBlack bool) bool {
	if p.BlackToMove() != forcingBlack {
		return false
	}
	return isTerminal(p) && evaluateTerminal(p, stalemate)
}

// SearchMaxSelf is the forcing side's ply: try every pseudo-legal move
// that passes Make's legality test, recurse into SearchMinSelf, and keep
// the shortest line where every opponent reply still reaches the goal.
func SearchMaxSelf(p *position.Position, stalemate bool, depth int, forcingBlack bool) int {
	if selfTerminal(p, stalemate, forcingBlack) {
		return 0
	}
	if depth <= 0 {
		return Below
	}
	pseudo := movegen.PseudoLegal(p)
	best := Below
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			sub := SearchMinSelf(p, stalemate, depth-1, forcingBlack)
			if sub != Below {
				cand := sub + 1
				if best == Below || cand < best {
					best = cand
				}
			}
		}
		p.Unmake(m)
	}
	return best
}

// SearchMinSelf is the opponent's ply: every legal reply must still lead
// to the forcing side's goal, or the forcing side's move is refuted. The
// goal is the forcing side being mated, never the opponent, so an
// opponent with no legal move at all (checkmated or stalemated) is a
// failure here, not a success — it simply falls out of the loop below
// with no move having kept the line alive, needing no special case.
func SearchMinSelf(p *position.Position, stalemate bool, depth int, forcingBlack bool) int {
	if depth <= 0 {
		return Below
	}
	pseudo := movegen.PseudoLegal(p)
	worst := Below
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			sub := SearchMaxSelf(p, stalemate, depth-1, forcingBlack)
			p.Unmake(m)
			if sub == Below {
				return Below
			}
			cand := sub + 1
			if cand > worst {
				worst = cand
			}
		} else {
			p.Unmake(m)
		}
	}
	return worst
}

// AnalyseSelfmate runs the same search as SearchMaxSelf but additionally
// records the solution as lines of (Play, notation) steps, the way
// AnalyseDirectmate does: a Key line per forcing move, continuations for
// every defensive reply down to the final compulsory mate, and — when
// nRefutationsAllowed > 0 — a Try line with its Refutation children per
// move that comes close but is beaten by at most that many replies.
func AnalyseSelfmate(p *position.Position, stalemate bool, depth, nRefutationsAllowed int, namer Namer) []solution.Line {
	return analyseMaxSelf(p, stalemate, depth, nRefutationsAllowed, namer, p.BlackToMove())
}

func analyseMaxSelf(p *position.Position, stalemate bool, depth, nRefutationsAllowed int, namer Namer, forcingBlack bool) []solution.Line {
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

		sub := SearchMinSelf(p, stalemate, depth-1, forcingBlack)
		if sub != Below {
			tails := analyseMinTailsSelf(p, stalemate, depth-1, terminal, nRefutationsAllowed, namer, forcingBlack)
			lines = append(lines, prependStep(solution.Step{Tag: solution.Key, Text: annotated}, tails)...)
		} else if nRefutationsAllowed > 0 {
			refs := collectRefutationsSelf(p, stalemate, depth-1, namer, forcingBlack)
			if len(refs) > 0 && len(refs) <= nRefutationsAllowed {
				line := solution.Line{{Tag: solution.Try, Text: annotated}}
				for _, ref := range refs {
					line = append(line, ref...)
				}
				lines = append(lines, line)
			}
		}
		p.Unmake(m)
	}
	return lines
}

func analyseMinTailsSelf(p *position.Position, stalemate bool, depth int, terminal bool, nRefutationsAllowed int, namer Namer, forcingBlack bool) []solution.Line {
	if terminal || depth == 0 {
		return nil
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
		sub := SearchMaxSelf(p, stalemate, depth-1, forcingBlack)
		if sub != Below {
			checks := p.Checkers()
			term := isTerminal(p)
			annotated := text + move.PostWrite(checks, term)
			tails := analyseMaxSelf(p, stalemate, depth-1, nRefutationsAllowed, namer, forcingBlack)
			lines = append(lines, prependStep(solution.Step{Tag: solution.Continuation, Text: annotated}, tails)...)
		}
		p.Unmake(m)
	}
	return lines
}

// collectRefutationsSelf returns one Refutation step per legal reply
// that defeats the forcing side's Try: a reply after which SearchMaxSelf
// fails to find the goal within the remaining budget.
func collectRefutationsSelf(p *position.Position, stalemate bool, depth int, namer Namer, forcingBlack bool) []solution.Line {
	pseudo := movegen.PseudoLegal(p)
	var refs []solution.Line
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		text := m.PreWrite(p, namer)
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		sub := SearchMaxSelf(p, stalemate, depth-1, forcingBlack)
		checks := p.Checkers()
		term := isTerminal(p)
		p.Unmake(m)
		if sub == Below {
			refs = append(refs, solution.Line{{Tag: solution.Refutation, Text: text + move.PostWrite(checks, term)}})
		}
	}
	return refs
}
