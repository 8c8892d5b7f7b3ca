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

// helpmateInOne: Black's only legal move (Ka8-b8, forced since a7/b7 are
// covered by the white king) cooperatively vacates the corner; White
// then mates with Rh1-h8, the rook's ray covering both b8 and the a8
// square the king just left.
func helpmateInOne() *position.Position {
	p := position.New()
	p.Place(square.ParseSquare("b6"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("h1"), piece.Piece{Kind: piece.Rook})
	p.Place(square.ParseSquare("a8"), piece.Piece{Kind: piece.King, Black: true})
	p.SetBlackToMove(true)
	return p
}

func TestHelpmateDepthPlyBudget(t *testing.T) {
	assert.Equal(t, 2, HelpmateDepth(1, false))
	assert.Equal(t, 1, HelpmateDepth(1, true))
	assert.Equal(t, 4, HelpmateDepth(2, false))
}

func TestSearchHelpFindsCooperativeMateInOne(t *testing.T) {
	p := helpmateInOne()
	assert.True(t, SearchHelp(p, false, HelpmateDepth(1, false), false))
}

func TestSearchHelpFailsWithInsufficientDepth(t *testing.T) {
	p := helpmateInOne()
	assert.False(t, SearchHelp(p, false, 1, false))
}

func TestAnalyseHelpmateAlternatesTags(t *testing.T) {
	p := helpmateInOne()
	lines := AnalyseHelpmate(p, false, HelpmateDepth(1, false), false, EnglishNamer)
	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Len(t, line, 2)
		assert.Equal(t, solution.Help1st, line[0].Tag)
		assert.Equal(t, solution.Help2nd, line[1].Tag)
	}
}
