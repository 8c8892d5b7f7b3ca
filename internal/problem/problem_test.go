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

package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/moderato/internal/lang"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/search"
	"github.com/frankkopp/moderato/internal/square"
)

// backRankMateInOne is the textbook back-rank mate reused from the
// search package's own hand-verified test fixtures: White Ra1/Ke1
// against Black Ke8 boxed in by its own pawns on d7/e7/f7.
func backRankMateInOne() *position.Position {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("a1"), piece.Piece{Kind: piece.Rook})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	p.Place(square.ParseSquare("d7"), piece.Piece{Kind: piece.Pawn, Black: true})
	p.Place(square.ParseSquare("e7"), piece.Piece{Kind: piece.Pawn, Black: true})
	p.Place(square.ParseSquare("f7"), piece.Piece{Kind: piece.Pawn, Black: true})
	return p
}

func TestSolveDirectmateReturnsKeyLine(t *testing.T) {
	pr := &Problem{Position: backRankMateInOne(), Stip: Directmate, N: 1, Locale: lang.English}
	res, err := pr.Solve(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Lines)
	assert.Empty(t, res.Mates)
	assert.Zero(t, res.PerftCount)
}

func TestSolvePerftReturnsNodeCount(t *testing.T) {
	p := position.New()
	p.Place(square.ParseSquare("e4"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("h8"), piece.Piece{Kind: piece.King, Black: true})
	pr := &Problem{Position: p, Stip: Perft, N: 1, Locale: lang.English}
	res, err := pr.Solve(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), res.PerftCount)
}

func TestSolveMateSearchReturnsShallowestMates(t *testing.T) {
	pr := &Problem{Position: backRankMateInOne(), Stip: MateSearch, N: 1, Locale: lang.English}
	res, err := pr.Solve(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Mates)
	for _, m := range res.Mates {
		assert.Equal(t, 1, m.Depth)
	}
}

func TestSolveRunsUnderASharedRunner(t *testing.T) {
	p := backRankMateInOne()
	r := search.NewRunner(p)
	pr := &Problem{Position: p, Stip: Directmate, N: 1, Locale: lang.English}
	res, err := pr.Solve(r)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Lines)
}

func TestDefenceZeroWithoutTryOption(t *testing.T) {
	pr := &Problem{Options: Options{Try: false}}
	assert.Zero(t, pr.defence())
}

func TestDefenceUsesExplicitCap(t *testing.T) {
	pr := &Problem{Options: Options{Try: true, Defence: 2}}
	assert.Equal(t, 2, pr.defence())
}

func TestStipStringMatchesFormatAGrammar(t *testing.T) {
	assert.Equal(t, "#", Directmate.String())
	assert.Equal(t, "h#", Helpmate.String())
	assert.Equal(t, "ser-s#", SeriesSelfmate.String())
}
