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

// DirectmateDepth converts a "mate in N" stipulation into the half-move
// ply budget SearchMax is first called with: white plays N moves, black
// replies N-1 times in between, for a total of 2N-1 plies.
func DirectmateDepth(n int) int {
	return 2*n - 1
}

// SearchMax is the attacking side's half of the directmate minimax: try
// every pseudo-legal move that passes Make's legality test, recurse into
// SearchMin, and keep the shortest forced mate found. Returns Below if no
// move forces the stipulated goal within depth plies.
func SearchMax(p *position.Position, stalemate bool, depth int) int {
	if isTerminal(p) {
		if evaluateTerminal(p, stalemate) {
			return 0
		}
		return Below
	}
	if depth <= 0 {
		return Below
	}
	pseudo := movegen.PseudoLegal(p)
	best := Below
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			sub := SearchMin(p, stalemate, depth-1)
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

// SearchMin is the defending side's half: every legal reply must lead to
// a forced goal for SearchMax to succeed at all (one escaping reply
// refutes the attacker's move outright); the score reported is the
// longest defense found, since that is the line that actually bounds how
// many plies the attacker needs.
func SearchMin(p *position.Position, stalemate bool, depth int) int {
	if isTerminal(p) {
		if evaluateTerminal(p, stalemate) {
			return 0
		}
		return Below
	}
	if depth <= 0 {
		return Below
	}
	pseudo := movegen.PseudoLegal(p)
	worst := Below
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			sub := SearchMax(p, stalemate, depth-1)
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

// AnalyseDirectmate runs the same search as SearchMax but additionally
// records the solution as lines of (Play, notation) steps: a Key line per
// legal move that forces the goal, continuations for every defensive
// reply down to the mating position, and — when nRefutationsAllowed > 0
// (the problem's "Try" option) — a Try line with its Refutation children
// per move that comes close but is beaten by at most that many replies.
func AnalyseDirectmate(p *position.Position, stalemate bool, depth, nRefutationsAllowed int, namer Namer) []solution.Line {
	return analyseMax(p, stalemate, depth, nRefutationsAllowed, namer)
}

func analyseMax(p *position.Position, stalemate bool, depth, nRefutationsAllowed int, namer Namer) []solution.Line {
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

		sub := SearchMin(p, stalemate, depth-1)
		if sub != Below {
			tails := analyseMinTails(p, stalemate, depth-1, terminal, nRefutationsAllowed, namer)
			lines = append(lines, prependStep(solution.Step{Tag: solution.Key, Text: annotated}, tails)...)
		} else if nRefutationsAllowed > 0 {
			refs := collectRefutations(p, stalemate, depth-1, namer)
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

func analyseMinTails(p *position.Position, stalemate bool, depth int, terminal bool, nRefutationsAllowed int, namer Namer) []solution.Line {
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
		sub := SearchMax(p, stalemate, depth-1)
		if sub != Below {
			checks := p.Checkers()
			term := isTerminal(p)
			annotated := text + move.PostWrite(checks, term)
			tails := analyseMax(p, stalemate, depth-1, nRefutationsAllowed, namer)
			lines = append(lines, prependStep(solution.Step{Tag: solution.Continuation, Text: annotated}, tails)...)
		}
		p.Unmake(m)
	}
	return lines
}

// collectRefutations returns one Refutation step per legal reply that
// defeats the attacker's Try: a reply after which SearchMax fails to
// find the goal within the remaining budget.
func collectRefutations(p *position.Position, stalemate bool, depth int, namer Namer) []solution.Line {
	pseudo := movegen.PseudoLegal(p)
	var refs []solution.Line
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		text := m.PreWrite(p, namer)
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		sub := SearchMax(p, stalemate, depth-1)
		checks := p.Checkers()
		term := isTerminal(p)
		p.Unmake(m)
		if sub == Below {
			refs = append(refs, solution.Line{{Tag: solution.Refutation, Text: text + move.PostWrite(checks, term)}})
		}
	}
	return refs
}

// prependStep returns one line per tail with step prepended, or a
// single-step line if there are no tails (a mate delivered immediately).
func prependStep(step solution.Step, tails []solution.Line) []solution.Line {
	if len(tails) == 0 {
		return []solution.Line{{step}}
	}
	lines := make([]solution.Line, 0, len(tails))
	for _, tail := range tails {
		line := make(solution.Line, 0, len(tail)+1)
		line = append(line, step)
		line = append(line, tail...)
		lines = append(lines, line)
	}
	return lines
}
