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

// Package move implements the move sum type: a tagged union over quiet
// moves, captures, en-passant, double-steps, castlings, promotions and
// their Circe/AntiCirce/Andernach/AntiAndernach flavours. Every variant
// is match-dispatched off Kind and Condition rather than being its own
// type, per the "deep virtual inheritance" redesign note.
package move

import (
	"github.com/frankkopp/moderato/internal/box"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/square"
)

// Kind is the structural shape of a move: what squares it touches and
// how, independent of any fairy condition.
type Kind uint8

// Move kinds, per spec.md §3.
const (
	Null Kind = iota
	Quiet
	Capture
	DoubleStep
	EnPassant
	LongCastling
	ShortCastling
	Promotion
	PromotionCapture
)

// Condition is the fairy-condition flavour applied to a single move. A
// move carries at most one: captures may be flavoured Circe/AntiCirce/
// Andernach, non-captures may be flavoured AntiAndernach. The factory
// (package factory) decides, per call, which Condition (if any) a given
// Kind is constructed with; most composite factories combine behaviours
// across *different* Kinds (captures vs non-captures), and only
// CirceAndernach and AntiCirceAndernach combine two on the same move.
type Condition uint8

// Fairy conditions recognised on a single move. CirceAndernach and
// AntiCirceAndernach are the two composite factory kinds whose combined
// effect lands on one and the same capturing move (a captured piece is
// reborn *and* the capturer changes colour); every other composite listed
// in spec.md §4.2 combines behaviours that land on different moves
// (captures vs non-captures) and so needs no move-level composite value.
const (
	None Condition = iota
	Circe
	AntiCirce
	Andernach
	AntiAndernach
	CirceAndernach
	AntiCirceAndernach
)

// hasRebirth reports whether c places a piece on m.Rebirth at all; only
// these four flavours ever touch that field, so callers must not treat
// Rebirth's zero value (square a1, not an off-board sentinel) as "unset"
// without checking this first.
func (c Condition) hasRebirth() bool {
	return c == Circe || c == AntiCirce || c == CirceAndernach || c == AntiCirceAndernach
}

// Move is a value: it holds everything needed to apply or revert itself
// and to render its notation fragment, but retains no reference to the
// Surface it was generated against.
type Move struct {
	Kind      Kind
	Condition Condition

	Origin, Target   square.Square
	Origin2, Target2 square.Square // rook squares for castling
	Stop             square.Square // DoubleStep: square passed over; EnPassant: captured pawn's square

	Black bool // colour of the moving/promoting piece
	Order int  // promotion order (box key), valid when Kind is Promotion/PromotionCapture

	// PromotionKind names the piece kind Order resolves to, cached at
	// construction time purely for notation (so notation does not need to
	// inspect the box, which may have already been mutated by the time a
	// move is rendered).
	PromotionKind piece.Kind

	Rebirth         square.Square // Circe: captured piece's rebirth square; AntiCirce: capturer's rebirth square
	RebirthEligible bool          // reborn piece retains castling rights at Rebirth
	FlipEligible    bool          // colour-flipped mover (Andernach/AntiAndernach) retains castling rights at Target
}

// Surface is the minimal mutation interface a Move needs from a position.
// Position implements it; move does not import package position, avoiding
// an import cycle between the two.
type Surface interface {
	At(sq square.Square) piece.Piece
	Set(sq square.Square, p piece.Piece)
	BoxRef() *box.Box

	PushCapture(p piece.Piece)
	PopCapture() piece.Piece

	SaveState()
	RestoreState()
	RemoveCastling(sq square.Square)
	AddCastling(sq square.Square)
	SetEnPassant(sq square.Square)
	ClearEnPassant()
	ToggleSideToMove()

	// IsLegal reports whether the side that just moved did not leave its
	// own royal piece attacked. Used only by castling's PreMake.
	IsLegal() bool
}

// IsCapturing reports whether the move's update_pieces step removes an
// opposing piece via the capture table (used by search/notation to
// decide which book-keeping applies).
func (k Kind) IsCapturing() bool {
	return k == Capture || k == EnPassant || k == PromotionCapture
}

// String gives a short debug label, not used in produced notation.
func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Quiet:
		return "Quiet"
	case Capture:
		return "Capture"
	case DoubleStep:
		return "DoubleStep"
	case EnPassant:
		return "EnPassant"
	case LongCastling:
		return "LongCastling"
	case ShortCastling:
		return "ShortCastling"
	case Promotion:
		return "Promotion"
	case PromotionCapture:
		return "PromotionCapture"
	default:
		return "?"
	}
}
