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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/moderato/internal/box"
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/square"
)

func kindCounts(l []move.Move) map[move.Kind]int {
	counts := map[move.Kind]int{}
	for _, m := range l {
		counts[m.Kind]++
	}
	return counts
}

func TestPseudoLegalKnightCornerMoves(t *testing.T) {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	p.Place(square.ParseSquare("a1"), piece.Piece{Kind: piece.Knight})

	list := PseudoLegal(p)
	knightTargets := 0
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Origin == square.ParseSquare("a1") {
			knightTargets++
		}
	}
	assert.Equal(t, 2, knightTargets) // b3, c2 only, from the corner
}

func TestPseudoLegalWhitePawnDoubleStep(t *testing.T) {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	p.Place(square.ParseSquare("a2"), piece.Piece{Kind: piece.Pawn})

	list := PseudoLegal(p)
	counts := kindCounts(*list)
	assert.Equal(t, 1, counts[move.DoubleStep])

	pawnQuiet := 0
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Kind == move.Quiet && m.Origin == square.ParseSquare("a2") {
			pawnQuiet++
		}
	}
	assert.Equal(t, 1, pawnQuiet) // a3
}

func TestPseudoLegalPromotionEnumeratesStockedOrders(t *testing.T) {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	p.Place(square.ParseSquare("a7"), piece.Piece{Kind: piece.Pawn})
	p.Box().Stock(false, box.OrderQueen, piece.Queen, 1)
	p.Box().Stock(false, box.OrderKnight, piece.Knight, 1)

	list := PseudoLegal(p)
	promotions := 0
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Kind == move.Promotion {
			promotions++
		}
	}
	assert.Equal(t, 2, promotions)
}

func TestCastlingGeneratedWhenClearAndRighted(t *testing.T) {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("h1"), piece.Piece{Kind: piece.Rook})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	p.SetCastling(square.ParseSquare("e1"), square.ParseSquare("h1"))

	list := PseudoLegal(p)
	found := false
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Kind == move.ShortCastling {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCastlingSkippedWhenBlocked(t *testing.T) {
	p := position.New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("h1"), piece.Piece{Kind: piece.Rook})
	p.Place(square.ParseSquare("f1"), piece.Piece{Kind: piece.Bishop})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	p.SetCastling(square.ParseSquare("e1"), square.ParseSquare("h1"))

	list := PseudoLegal(p)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, move.ShortCastling, list.At(i).Kind)
	}
}
