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

// Package square implements the 0x88 board-square encoding used throughout
// the engine: the low nibble holds the file (0-7), the high nibble the rank
// (0-7), so a square is rank*16 + file and the rank is never in the low
// nibble. A square is on-board iff sq&0x88 == 0.
package square

import "fmt"

// Square is a 0x88 board index. The zero value (a1) is on-board; SqNone
// is the canonical off-board sentinel used to signal "no such square".
type Square int8

// Board geometry constants.
const (
	FileA    = 0
	FileH    = 7
	Rank1    = 0
	Rank8    = 7
	offBoard = 0x88

	// BoardSize is the span a 0x88 board array must cover (the on-board
	// and off-board halves of the index space interleave every 16 slots).
	BoardSize = 128
)

// SqNone is not a legal board coordinate; it is returned by lookups that
// fall off the edge of the board.
const SqNone Square = -1

// Direction is a square-offset applied by repeated addition for riders,
// once for leapers, and hurdle-then-once for hoppers.
type Direction int8

// Orthogonal, diagonal, and knight-leap offsets in the 0x88 scheme.
const (
	North     Direction = 16
	South     Direction = -16
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West

	KnightNNE Direction = 33
	KnightENE Direction = 18
	KnightESE Direction = -14
	KnightSSE Direction = -31
	KnightSSW Direction = -33
	KnightWSW Direction = -18
	KnightWNW Direction = 14
	KnightNNW Direction = 31
)

// Orthogonal8 lists rook-like (4) and king/queen-like (8) directions; the
// first four entries are the same orthogonal directions as Orthogonal,
// which is the list Rook generation uses.
var Orthogonal8 = []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// Orthogonal is the rook's 4-direction subset.
var Orthogonal = []Direction{North, South, East, West}

// Diagonal is the bishop's 4-direction subset.
var Diagonal = []Direction{Northeast, Northwest, Southeast, Southwest}

// KnightOffsets are the eight knight-leap (and nightrider-stride) offsets.
var KnightOffsets = []Direction{KnightNNE, KnightENE, KnightESE, KnightSSE, KnightSSW, KnightWSW, KnightWNW, KnightNNW}

// MakeSquare builds a 0x88 index from a 0-based file and rank.
func MakeSquare(file, rank int) Square {
	return Square((rank << 4) + file)
}

// IsValid reports whether sq is on the 8x8 board (the 0x88 off-board test).
func (sq Square) IsValid() bool {
	return sq >= 0 && int(sq)&offBoard == 0
}

// File returns the 0-based file (a=0..h=7) of sq.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the 0-based rank (1=0..8=7) of sq.
func (sq Square) Rank() int {
	return int(sq) >> 4
}

// To steps sq by one direction offset, returning SqNone if the result
// leaves the board. Off-board detection is the 0x88 bit test; diagonal
// and knight offsets additionally need no file-wraparound check because
// wraparound always sets one of the sentinel bits for this scheme.
func (sq Square) To(d Direction) Square {
	t := sq + Square(d)
	if !t.IsValid() {
		return SqNone
	}
	return t
}

// ParseSquare reads algebraic notation (e.g. "e4") into a Square, or
// SqNone if s is not exactly two characters naming a valid square.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	return MakeSquare(file, rank)
}

const fileLabels = "abcdefgh"
const rankLabels = "12345678"

// String renders sq in algebraic notation, or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", fileLabels[sq.File()], rankLabels[sq.Rank()])
}

// SameColour reports whether two squares lie on the same colour complex,
// used by the piece rebirth rule for knights/bishops/rooks.
func SameColour(a, b Square) bool {
	return (a.File()+a.Rank())%2 == (b.File()+b.Rank())%2
}
