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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/solution"
	"github.com/frankkopp/moderato/internal/square"
)

// bareKings has no piece that can ever deliver check: a lone king can
// never legally step next to the enemy king (that move leaves its own
// king attacked too), so no depth should ever find a mate.
func bareKings() *position.Position {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	return p
}

// backRankMateInOne is a textbook back-rank mate: the black king's own
// pawns block every escape square on the 7th rank, and Ra1-a8 checks
// along the cleared 8th rank with nothing able to block or capture.
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

// cornerTry puts a lone black king on a8 with White Kb6 controlling a7
// and b7, leaving Kb8 as black's only legal reply to anything White
// plays that doesn't itself touch b8: useful for exercising the Try/
// Refutation bookkeeping with a refutation set of size exactly 1. The
// rook starts on b2, where it neither checks a8 nor reaches the 8th
// rank in one move, so White has no mate in one.
func cornerTry() *position.Position {
	p := position.New()
	p.Place(square.ParseSquare("b6"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("b2"), piece.Piece{Kind: piece.Rook})
	p.Place(square.ParseSquare("a8"), piece.Piece{Kind: piece.King, Black: true})
	return p
}

func TestSearchMaxFindsMateInOne(t *testing.T) {
	// SearchMax reports the ply-distance actually used, not the ply
	// budget offered: a position mated with the first move tried scores
	// 1 (SearchMin's terminal 0, plus the 1 ply SearchMax just played).
	p := backRankMateInOne()
	assert.Equal(t, 1, SearchMax(p, false, DirectmateDepth(1)))
}

func TestSearchMaxFailsWhenNoMateAvailable(t *testing.T) {
	p := backRankMateInOne()
	assert.Equal(t, Below, SearchMax(p, false, 0))
}

func TestSearchMaxNeverMatesWithBareKings(t *testing.T) {
	p := bareKings()
	assert.Equal(t, Below, SearchMax(p, false, DirectmateDepth(3)))
}

func TestAnalyseDirectmateReportsKeyLine(t *testing.T) {
	p := backRankMateInOne()
	lines := AnalyseDirectmate(p, false, DirectmateDepth(1), 0, EnglishNamer)
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, solution.Key, line[0].Tag)
		assert.Len(t, line, 1)
	}
}

func TestAnalyseDirectmateReportsTryWithSingleRefutation(t *testing.T) {
	p := cornerTry()
	// Rb2-a2+ does not mate in one, but black's only legal reply (Kb8)
	// is the single move that escapes, so it must surface as exactly
	// one Try line with exactly one Refutation child.
	lines := AnalyseDirectmate(p, false, DirectmateDepth(1), 1, EnglishNamer)
	var tries int
	for _, line := range lines {
		if line[0].Tag != solution.Try {
			continue
		}
		tries++
		assert.Len(t, line, 2)
		assert.Equal(t, solution.Refutation, line[1].Tag)
	}
	assert.Greater(t, tries, 0)
}
