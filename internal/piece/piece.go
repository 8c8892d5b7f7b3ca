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

// Package piece holds the orthodox and fairy piece kinds, their movement
// capability (leaper/rider/hopper direction sets), and the Circe/AntiCirce
// rebirth-square rule.
package piece

import (
	"github.com/frankkopp/moderato/internal/square"
)

// Kind is a sum type over orthodox and fairy piece kinds.
type Kind uint8

// Piece kinds. Orthodox kinds come first so that Kind < Pawn+1 tests for
// "orthodox, no fairy movement table needed" where useful.
const (
	KindNone Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	Grasshopper
	Nightrider
	Amazon
	kindLength
)

var kindNames = [kindLength]string{"-", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "Grasshopper", "Nightrider", "Amazon"}

// String returns the English name of the kind.
func (k Kind) String() string {
	if k >= kindLength {
		return "?"
	}
	return kindNames[k]
}

// letters are the long-algebraic / problem-notation piece codes, English locale.
var letters = [kindLength]string{"", "K", "Q", "R", "B", "S", "P", "G", "N", "AM"}

// Letter returns the English piece code used in notation and format-A input.
func (k Kind) Letter() string {
	if k >= kindLength {
		return "?"
	}
	return letters[k]
}

// Capability classifies how a kind's direction table is walked.
type Capability uint8

// The three orthogonal movement capabilities of spec.md §4.1. Amazon
// combines Rider and Leaper, so it is not representable by a single
// Capability value; its move generation special-cases it (see movegen).
const (
	CapNone Capability = iota
	CapLeaper
	CapRider
	CapHopper
)

// CapabilityOf returns the movement capability for orthodox/fairy kinds
// that have exactly one (Pawn and Amazon are handled specially by movegen).
func CapabilityOf(k Kind) Capability {
	switch k {
	case King, Knight:
		return CapLeaper
	case Queen, Rook, Bishop, Nightrider:
		return CapRider
	case Grasshopper:
		return CapHopper
	default:
		return CapNone
	}
}

// Directions returns the direction table consulted by a leaper/rider/hopper
// generator for kind k. Nightrider reuses the knight leap table but rides
// it; Amazon's two tables are fetched separately by movegen.
func Directions(k Kind) []square.Direction {
	switch k {
	case King, Queen:
		return square.Orthogonal8
	case Rook:
		return square.Orthogonal
	case Bishop:
		return square.Diagonal
	case Knight, Nightrider:
		return square.KnightOffsets
	case Grasshopper:
		return square.Orthogonal8
	default:
		return nil
	}
}

// IsRoyal reports whether capturing a piece of this kind ends the game.
// Only the King is royal; fairy armies with a different royal piece are
// out of scope (spec.md Non-goals do not name this, but no input format
// in §6 can express it).
func (k Kind) IsRoyal() bool {
	return k == King
}

// IsCastlingEligible reports whether a piece of this kind can ever hold
// castling rights (King and Rook, orthodox only).
func (k Kind) IsCastlingEligible() bool {
	return k == King || k == Rook
}

// Piece is an immutable kind plus a mutable colour flag.
type Piece struct {
	Kind  Kind
	Black bool
}

// None is the empty-square sentinel.
var None = Piece{Kind: KindNone}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool {
	return p.Kind == KindNone
}

// RebirthSquare returns the Circe/AntiCirce rebirth target for a piece of
// this kind and colour that stood on origin. See spec.md §3.
func (p Piece) RebirthSquare(origin square.Square) square.Square {
	file := origin.File()
	backRank := 0
	if p.Black {
		backRank = 7
	}
	switch p.Kind {
	case Pawn:
		rank := 1
		if p.Black {
			rank = 6
		}
		return square.MakeSquare(file, rank)
	case Knight:
		return cornerPair(origin, backRank, 1, 6)
	case Bishop:
		return cornerPair(origin, backRank, 2, 5)
	case Rook:
		return cornerPair(origin, backRank, 0, 7)
	case Queen:
		return square.MakeSquare(3, backRank)
	case King:
		return square.MakeSquare(4, backRank)
	default:
		// Fairy pieces rebirth on their own file, on the colour's back rank.
		return square.MakeSquare(file, backRank)
	}
}

// cornerPair picks whichever of two canonical starting files on backRank
// shares origin's square colour, breaking a tie (same colour, origin
// itself sits on a non-starting square of that colour) toward fileA.
func cornerPair(origin square.Square, backRank, fileA, fileB int) square.Square {
	a := square.MakeSquare(fileA, backRank)
	if square.SameColour(origin, a) {
		return a
	}
	return square.MakeSquare(fileB, backRank)
}
