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

// Package search implements the problem-type algorithms run over a single
// shared position.Position: directmate, selfmate, helpmate, perft,
// mate-search and series-mate. None of them evaluate or order moves
// heuristically — every search is an exhaustive recursive walk, the way
// an exact problem solver must work, per the teacher's own disclaimer
// that correctness, not node throughput, is what this engine optimises.
package search

import (
	"context"
	"math"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/moderato/internal/logging"
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/movegen"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/position"
)

var log = logging.GetSearchLog()

// Below is the fail-soft sentinel the recursive searches use in place of
// a true minimum: "no candidate found, or found one worse than giving up".
const Below = math.MinInt32

// Runner owns the single Position a search walks and a one-slot
// semaphore enforcing the spec's single-Position-per-search-instance
// rule: Solve is safe to call from multiple goroutines, but only one call
// ever actually walks the tree at a time, the rest block until it is free.
type Runner struct {
	Pos *position.Position
	sem *semaphore.Weighted
}

// NewRunner returns a Runner over pos, ready for repeated Solve calls.
func NewRunner(pos *position.Position) *Runner {
	return &Runner{Pos: pos, sem: semaphore.NewWeighted(1)}
}

// Guard blocks until this Runner's Position is free for the duration of
// one search call, then releases it when the returned func is invoked.
// package problem calls this once per Problem.Solve so that a Runner
// shared across goroutines never walks two trees over the same Position
// concurrently.
func (r *Runner) Guard() func() {
	_ = r.sem.Acquire(context.Background(), 1)
	return func() { r.sem.Release(1) }
}

// Namer resolves a piece kind to locale-specific notation text; callers
// in package problem supply the locale the input problem declared.
type Namer = move.Namer

// EnglishNamer is the default Namer used by tests and by callers that do
// not care about locale (format-B/EPD input has no locale concept).
func EnglishNamer(k piece.Kind) string {
	if k == piece.Pawn {
		return ""
	}
	return k.Letter()
}

// legalMoves generates every pseudo-legal move for the side to move and
// filters it down to the moves that pass Make's legality check, undoing
// every one it tries (including the illegal ones) before returning.
func legalMoves(p *position.Position) []move.Move {
	pseudo := movegen.PseudoLegal(p)
	legal := make([]move.Move, 0, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			legal = append(legal, m)
		}
		p.Unmake(m)
	}
	return legal
}

// isTerminal reports whether no pseudo-legal move of the side to move
// passes Make's legality check: spec.md §4.4's stalemate-or-mate test.
func isTerminal(p *position.Position) bool {
	pseudo := movegen.PseudoLegal(p)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		ok := p.Make(m)
		p.Unmake(m)
		if ok {
			return false
		}
	}
	return true
}

// evaluateTerminal implements spec.md §4.6's `(is_check==0) == stalemate`:
// stalemate is requested when the stipulation's goal is stalemate rather
// than mate (a helpmate or selfmate variant with "=" rather than "#").
func evaluateTerminal(p *position.Position, stalemate bool) bool {
	return (p.Checkers() == 0) == stalemate
}
