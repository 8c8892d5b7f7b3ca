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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/square"
)

func twoKings() *Position {
	p := New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.King, Black: true})
	return p
}

func TestQuietMoveMakeUnmakeReversible(t *testing.T) {
	p := twoKings()
	p.Place(square.ParseSquare("a1"), piece.Piece{Kind: piece.Rook})
	before := p.String()

	m := move.Move{Kind: move.Quiet, Origin: square.ParseSquare("a1"), Target: square.ParseSquare("a4")}
	assert.True(t, p.Make(m))
	assert.True(t, p.At(square.ParseSquare("a4")).Kind == piece.Rook)
	assert.True(t, p.At(square.ParseSquare("a1")).IsNone())
	assert.True(t, p.BlackToMove())

	p.Unmake(m)
	assert.Equal(t, before, p.String())
	assert.False(t, p.BlackToMove())
}

func TestCaptureReversible(t *testing.T) {
	p := twoKings()
	p.Place(square.ParseSquare("d4"), piece.Piece{Kind: piece.Queen})
	p.Place(square.ParseSquare("d6"), piece.Piece{Kind: piece.Knight, Black: true})
	before := p.String()

	m := move.Move{Kind: move.Capture, Origin: square.ParseSquare("d4"), Target: square.ParseSquare("d6")}
	assert.True(t, p.Make(m))
	assert.Equal(t, piece.Queen, p.At(square.ParseSquare("d6")).Kind)

	p.Unmake(m)
	assert.Equal(t, before, p.String())
}

func TestMakeRejectsSelfCheck(t *testing.T) {
	p := New()
	p.Place(square.ParseSquare("e1"), piece.Piece{Kind: piece.King})
	p.Place(square.ParseSquare("h8"), piece.Piece{Kind: piece.King, Black: true})
	// White rook pinned on e4 by a black rook on the e-file; moving the
	// pinned rook off the file exposes the king to check.
	p.Place(square.ParseSquare("e4"), piece.Piece{Kind: piece.Rook})
	p.Place(square.ParseSquare("e8"), piece.Piece{Kind: piece.Rook, Black: true})

	m := move.Move{Kind: move.Quiet, Origin: square.ParseSquare("e4"), Target: square.ParseSquare("d4")}
	assert.False(t, p.Make(m))
	p.Unmake(m)
	assert.Equal(t, piece.Rook, p.At(square.ParseSquare("e4")).Kind)
}

func TestIsCheckDetectsRookOnFile(t *testing.T) {
	p := twoKings()
	p.Place(square.ParseSquare("e5"), piece.Piece{Kind: piece.Rook, Black: true})
	assert.True(t, p.IsCheck())
}

func TestCastlingRightsRemovedOnRookMove(t *testing.T) {
	p := twoKings()
	p.Place(square.ParseSquare("a1"), piece.Piece{Kind: piece.Rook})
	p.SetCastling(square.ParseSquare("e1"), square.ParseSquare("a1"))

	m := move.Move{Kind: move.Quiet, Origin: square.ParseSquare("a1"), Target: square.ParseSquare("b1")}
	p.Make(m)
	assert.False(t, p.HasCastling(square.ParseSquare("a1")))
	assert.True(t, p.HasCastling(square.ParseSquare("e1")))

	p.Unmake(m)
	assert.True(t, p.HasCastling(square.ParseSquare("a1")))
}
