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
	"github.com/frankkopp/moderato/internal/square"
)

// lonelyKing is far enough from any other piece that none of its 8
// neighbour squares is ever attacked: a pure, hand-countable leaper
// fan-out with no check/capture interaction to reason about.
func lonelyKing() *position.Position {
	p := position.New()
	p.Place(square.ParseSquare("e4"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("h8"), piece.Piece{Kind: piece.King, Black: true})
	return p
}

func TestPerftZeroDepthIsOne(t *testing.T) {
	assert.Equal(t, uint64(1), Perft(lonelyKing(), 0))
}

func TestPerftCountsAllEightKingMoves(t *testing.T) {
	assert.Equal(t, uint64(8), Perft(lonelyKing(), 1))
}

// standardStart builds the ordinary chess starting array, the only
// position whose perft counts at small depths are universally published
// reference values rather than something this suite derives itself.
func standardStart() *position.Position {
	p := position.New()
	backRank := []piece.Kind{piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
		piece.King, piece.Bishop, piece.Knight, piece.Rook}
	files := "abcdefgh"
	for i, kind := range backRank {
		sq := square.ParseSquare(string(files[i]) + "1")
		p.Place(sq, piece.Piece{Kind: kind})
		sq = square.ParseSquare(string(files[i]) + "8")
		p.Place(sq, piece.Piece{Kind: kind, Black: true})
	}
	for i := 0; i < 8; i++ {
		sq := square.ParseSquare(string(files[i]) + "2")
		p.Place(sq, piece.Piece{Kind: piece.Pawn})
		sq = square.ParseSquare(string(files[i]) + "7")
		p.Place(sq, piece.Piece{Kind: piece.Pawn, Black: true})
	}
	p.SetCastling(square.ParseSquare("e1"), square.ParseSquare("a1"))
	p.SetCastling(square.ParseSquare("e1"), square.ParseSquare("h1"))
	p.SetCastling(square.ParseSquare("e8"), square.ParseSquare("a8"))
	p.SetCastling(square.ParseSquare("e8"), square.ParseSquare("h8"))
	return p
}

func TestPerftStandardStartDepthOne(t *testing.T) {
	assert.Equal(t, uint64(20), Perft(standardStart(), 1))
}

func TestPerftStandardStartDepthTwo(t *testing.T) {
	assert.Equal(t, uint64(400), Perft(standardStart(), 2))
}

func TestPerftStandardStartDepthFour(t *testing.T) {
	assert.Equal(t, uint64(197281), Perft(standardStart(), 4))
}
