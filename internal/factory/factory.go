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

// Package factory turns a geometrically reachable origin/target pair into
// the move.Move the active fairy condition actually produces there:
// whether a capture happens at all, whether it reappears elsewhere
// (Circe/AntiCirce) and whether the mover changes side (Andernach/
// AntiAndernach). Movegen calls one Factory per position; search never
// sees fairy conditions directly.
package factory

import (
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/square"
)

// Kind selects which combination of fairy conditions a Factory applies.
// The eleven values are exactly the ones spec.md §4.2 names; every other
// condition word in the format-A grammar (§6) maps onto one of these,
// Calvet being an AntiCirce sub-flavour rather than its own Kind.
type Kind uint8

const (
	Default Kind = iota
	NoCapture
	Circe
	AntiCirce
	Andernach
	AntiAndernach
	CirceAndernach
	AntiCirceAndernach
	NoCaptureAntiAndernach
	CirceAntiAndernach
	AntiCirceAntiAndernach
)

// Factory is a value: which Kind, and for the three Kinds that contain
// AntiCirce, whether the Calvet sub-rule (an anti-circe capture on a
// piece's own rebirth square is not suppressed) applies rather than the
// default Cheylan rule.
type Factory struct {
	Kind   Kind
	Calvet bool
}

func (f Factory) hasNoCapture() bool {
	return f.Kind == NoCapture || f.Kind == NoCaptureAntiAndernach
}

func (f Factory) hasCirce() bool {
	return f.Kind == Circe || f.Kind == CirceAndernach || f.Kind == CirceAntiAndernach
}

func (f Factory) hasAntiCirce() bool {
	return f.Kind == AntiCirce || f.Kind == AntiCirceAndernach || f.Kind == AntiCirceAntiAndernach
}

func (f Factory) hasAndernach() bool {
	return f.Kind == Andernach || f.Kind == CirceAndernach || f.Kind == AntiCirceAndernach
}

func (f Factory) hasAntiAndernach() bool {
	return f.Kind == AntiAndernach || f.Kind == NoCaptureAntiAndernach ||
		f.Kind == CirceAntiAndernach || f.Kind == AntiCirceAntiAndernach
}

// flipEligible reports whether a castling-eligible piece of kind k,
// landing on sq after an Andernach/AntiAndernach colour change, keeps
// its castling rights there: only when sq happens to be that piece's own
// canonical rebirth square for the new colour.
func flipEligible(p piece.Piece, sq square.Square) bool {
	if !p.Kind.IsCastlingEligible() {
		return false
	}
	flipped := p
	flipped.Black = !flipped.Black
	return flipped.RebirthSquare(sq) == sq
}

// rebirthEligible reports whether a reborn piece keeps castling rights
// on its rebirth square: only when the rebirth square is also its
// canonical starting square for its own colour.
func rebirthEligible(p piece.Piece, rebirth square.Square) bool {
	if !p.Kind.IsCastlingEligible() {
		return false
	}
	return p.RebirthSquare(rebirth) == rebirth
}

// GenerateQuietMove builds the non-capturing, non-double-step move from
// origin to target. AntiAndernach flips the mover's colour on arrival.
func (f Factory) GenerateQuietMove(s move.Surface, origin, target square.Square) move.Move {
	m := move.Move{Kind: move.Quiet, Origin: origin, Target: target}
	if f.hasAntiAndernach() {
		mover := s.At(origin)
		m.Condition = move.AntiAndernach
		m.FlipEligible = flipEligible(mover, target)
	}
	return m
}

// GenerateDoubleStep builds a pawn's two-square advance, recording stop
// as the square a following en-passant capture targets.
func (f Factory) GenerateDoubleStep(s move.Surface, origin, target, stop square.Square) move.Move {
	m := move.Move{Kind: move.DoubleStep, Origin: origin, Target: target, Stop: stop}
	if f.hasAntiAndernach() {
		mover := s.At(origin)
		m.Condition = move.AntiAndernach
		m.FlipEligible = flipEligible(mover, target)
	}
	return m
}

// GenerateLongCastling and GenerateShortCastling build castling moves.
// No fairy condition in spec.md §4.2 alters castling itself.
func (f Factory) GenerateLongCastling(origin, target, origin2, target2 square.Square) move.Move {
	return move.Move{Kind: move.LongCastling, Origin: origin, Target: target, Origin2: origin2, Target2: target2}
}

func (f Factory) GenerateShortCastling(origin, target, origin2, target2 square.Square) move.Move {
	return move.Move{Kind: move.ShortCastling, Origin: origin, Target: target, Origin2: origin2, Target2: target2}
}

// GenerateCapture builds the capture from origin to target, or reports ok
// = false if the active condition forbids generating it at all (NoCapture
// variants never generate a capture; every variant refuses to capture a
// royal piece, since capturing the king is not a move this solver ever
// plays — it is the legality test itself, performed by the caller before
// reaching here).
func (f Factory) GenerateCapture(s move.Surface, origin, target square.Square) (move.Move, bool) {
	if f.hasNoCapture() {
		return move.Move{}, false
	}
	captured := s.At(target)
	if captured.Kind.IsRoyal() {
		return move.Move{}, false
	}
	mover := s.At(origin)
	m := move.Move{Kind: move.Capture, Origin: origin, Target: target, Black: mover.Black}

	switch {
	case f.hasCirce() && f.hasAndernach():
		rebirth := captured.RebirthSquare(target)
		if s.At(rebirth).IsNone() || rebirth == origin {
			m.Condition = move.CirceAndernach
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(captured, rebirth)
		} else {
			m.Condition = move.Andernach
		}
		m.FlipEligible = flipEligible(mover, target)
	case f.hasAntiCirce() && f.hasAndernach():
		rebirth := mover.RebirthSquare(origin)
		landsOnOwnRebirth := rebirth == target && f.Calvet
		if s.At(rebirth).IsNone() || rebirth == origin || landsOnOwnRebirth {
			m.Condition = move.AntiCirceAndernach
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(mover, rebirth)
		} else {
			m.Condition = move.Andernach
		}
		m.FlipEligible = flipEligible(mover, target)
	case f.hasCirce():
		rebirth := captured.RebirthSquare(target)
		if s.At(rebirth).IsNone() || rebirth == origin {
			m.Condition = move.Circe
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(captured, rebirth)
		}
	case f.hasAntiCirce():
		rebirth := mover.RebirthSquare(origin)
		landsOnOwnRebirth := rebirth == target && f.Calvet
		if s.At(rebirth).IsNone() || rebirth == origin || landsOnOwnRebirth {
			m.Condition = move.AntiCirce
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(mover, rebirth)
		}
	case f.hasAndernach():
		m.Condition = move.Andernach
		m.FlipEligible = flipEligible(mover, target)
	}

	return m, true
}

// GenerateEnPassant mirrors GenerateCapture, substituting the passed-over
// pawn's square (stop) for target wherever a capture looks at the board.
func (f Factory) GenerateEnPassant(s move.Surface, origin, target, stop square.Square) (move.Move, bool) {
	if f.hasNoCapture() {
		return move.Move{}, false
	}
	captured := s.At(stop)
	if captured.Kind.IsRoyal() {
		return move.Move{}, false
	}
	mover := s.At(origin)
	m := move.Move{Kind: move.EnPassant, Origin: origin, Target: target, Stop: stop, Black: mover.Black}

	switch {
	case f.hasCirce() && f.hasAndernach():
		rebirth := captured.RebirthSquare(stop)
		if (s.At(rebirth).IsNone() || rebirth == origin || rebirth == stop) && rebirth != target {
			m.Condition = move.CirceAndernach
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(captured, rebirth)
		} else {
			m.Condition = move.Andernach
		}
		m.FlipEligible = flipEligible(mover, target)
	case f.hasAntiCirce() && f.hasAndernach():
		rebirth := mover.RebirthSquare(origin)
		if (s.At(rebirth).IsNone() || rebirth == origin || rebirth == stop) && (f.Calvet || rebirth != target) {
			m.Condition = move.AntiCirceAndernach
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(mover, rebirth)
		} else {
			m.Condition = move.Andernach
		}
		m.FlipEligible = flipEligible(mover, target)
	case f.hasCirce():
		rebirth := captured.RebirthSquare(stop)
		if (s.At(rebirth).IsNone() || rebirth == origin || rebirth == stop) && rebirth != target {
			m.Condition = move.Circe
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(captured, rebirth)
		}
	case f.hasAntiCirce():
		rebirth := mover.RebirthSquare(origin)
		if (s.At(rebirth).IsNone() || rebirth == origin || rebirth == stop) && (f.Calvet || rebirth != target) {
			m.Condition = move.AntiCirce
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(mover, rebirth)
		}
	case f.hasAndernach():
		m.Condition = move.Andernach
		m.FlipEligible = flipEligible(mover, target)
	}

	return m, true
}

// GeneratePromotion builds a pawn's non-capturing promotion to the piece
// kind named by order/promoted. AntiAndernach flips the newly promoted
// piece's colour on arrival.
func (f Factory) GeneratePromotion(s move.Surface, origin, target square.Square, black bool, order int, promoted piece.Kind) move.Move {
	m := move.Move{Kind: move.Promotion, Origin: origin, Target: target, Black: black, Order: order, PromotionKind: promoted}
	if f.hasAntiAndernach() {
		m.Condition = move.AntiAndernach
		m.FlipEligible = flipEligible(piece.Piece{Kind: promoted, Black: black}, target)
	}
	return m
}

// GeneratePromotionCapture mirrors GenerateCapture for a pawn promoting
// onto an occupied square.
func (f Factory) GeneratePromotionCapture(s move.Surface, origin, target square.Square, black bool, order int, promoted piece.Kind) (move.Move, bool) {
	if f.hasNoCapture() {
		return move.Move{}, false
	}
	captured := s.At(target)
	if captured.Kind.IsRoyal() {
		return move.Move{}, false
	}
	m := move.Move{Kind: move.PromotionCapture, Origin: origin, Target: target, Black: black, Order: order, PromotionKind: promoted}
	promoter := piece.Piece{Kind: promoted, Black: black}

	switch {
	case f.hasCirce() && f.hasAndernach():
		rebirth := captured.RebirthSquare(target)
		if s.At(rebirth).IsNone() || rebirth == origin {
			m.Condition = move.CirceAndernach
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(captured, rebirth)
		} else {
			m.Condition = move.Andernach
		}
		m.FlipEligible = flipEligible(promoter, target)
	case f.hasAntiCirce() && f.hasAndernach():
		rebirth := promoter.RebirthSquare(origin)
		landsOnOwnRebirth := rebirth == target && f.Calvet
		if s.At(rebirth).IsNone() || rebirth == origin || landsOnOwnRebirth {
			m.Condition = move.AntiCirceAndernach
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(promoter, rebirth)
		} else {
			m.Condition = move.Andernach
		}
		m.FlipEligible = flipEligible(promoter, target)
	case f.hasCirce():
		rebirth := captured.RebirthSquare(target)
		if s.At(rebirth).IsNone() || rebirth == origin {
			m.Condition = move.Circe
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(captured, rebirth)
		}
	case f.hasAntiCirce():
		rebirth := promoter.RebirthSquare(origin)
		landsOnOwnRebirth := rebirth == target && f.Calvet
		if s.At(rebirth).IsNone() || rebirth == origin || landsOnOwnRebirth {
			m.Condition = move.AntiCirce
			m.Rebirth = rebirth
			m.RebirthEligible = rebirthEligible(promoter, rebirth)
		}
	case f.hasAndernach():
		m.Condition = move.Andernach
		m.FlipEligible = flipEligible(promoter, target)
	}

	return m, true
}

// String names the Factory's Kind for diagnostics, matching the bracketed
// style problem listings use for conditions.
func (k Kind) String() string {
	switch k {
	case Default:
		return ""
	case NoCapture:
		return "NoCapture"
	case Circe:
		return "Circe"
	case AntiCirce:
		return "AntiCirce"
	case Andernach:
		return "Andernach"
	case AntiAndernach:
		return "AntiAndernach"
	case CirceAndernach:
		return "Circe Andernach"
	case AntiCirceAndernach:
		return "AntiCirce Andernach"
	case NoCaptureAntiAndernach:
		return "NoCapture AntiAndernach"
	case CirceAntiAndernach:
		return "Circe AntiAndernach"
	case AntiCirceAntiAndernach:
		return "AntiCirce AntiAndernach"
	default:
		return "?"
	}
}
