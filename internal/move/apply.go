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

package move

import "github.com/frankkopp/moderato/internal/piece"

// UpdatePieces shuffles pieces between board cells, the promotion box and
// the capture table. It is always paired with an eventual RevertPieces
// that runs the same statements in reverse order.
func (m Move) UpdatePieces(s Surface) {
	switch m.Kind {
	case Null:
		// no board effect

	case Quiet, DoubleStep:
		mover := s.At(m.Origin)
		s.Set(m.Origin, piece.None)
		if m.Condition == AntiAndernach && !mover.Kind.IsRoyal() {
			mover.Black = !mover.Black
		}
		s.Set(m.Target, mover)

	case Capture:
		captured := s.At(m.Target)
		s.PushCapture(captured)
		mover := s.At(m.Origin)
		s.Set(m.Origin, piece.None)
		switch m.Condition {
		case Circe:
			s.Set(m.Target, mover)
			s.Set(m.Rebirth, captured)
		case AntiCirce:
			s.Set(m.Target, piece.None)
			s.Set(m.Rebirth, mover)
		case Andernach:
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Target, mover)
		case CirceAndernach:
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Target, mover)
			s.Set(m.Rebirth, captured)
		case AntiCirceAndernach:
			s.Set(m.Target, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Rebirth, mover)
		default:
			s.Set(m.Target, mover)
		}

	case EnPassant:
		captured := s.At(m.Stop)
		s.PushCapture(captured)
		s.Set(m.Stop, piece.None)
		mover := s.At(m.Origin)
		s.Set(m.Origin, piece.None)
		switch m.Condition {
		case Circe:
			s.Set(m.Target, mover)
			s.Set(m.Rebirth, captured)
		case AntiCirce:
			s.Set(m.Target, piece.None)
			s.Set(m.Rebirth, mover)
		case Andernach:
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Target, mover)
		case CirceAndernach:
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Target, mover)
			s.Set(m.Rebirth, captured)
		case AntiCirceAndernach:
			s.Set(m.Target, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Rebirth, mover)
		default:
			s.Set(m.Target, mover)
		}

	case LongCastling, ShortCastling:
		king := s.At(m.Origin)
		rook := s.At(m.Origin2)
		s.Set(m.Origin, piece.None)
		s.Set(m.Origin2, piece.None)
		s.Set(m.Target, king)
		s.Set(m.Target2, rook)

	case Promotion:
		pawn := s.At(m.Origin)
		s.Set(m.Origin, piece.None)
		promoted, ok := s.BoxRef().Promote(m.Black, m.Order, pawn)
		if !ok {
			panic("move: promotion box exhausted, problem setup undersized it")
		}
		if m.Condition == AntiAndernach {
			promoted.Black = !promoted.Black
		}
		s.Set(m.Target, promoted)

	case PromotionCapture:
		captured := s.At(m.Target)
		s.PushCapture(captured)
		pawn := s.At(m.Origin)
		s.Set(m.Origin, piece.None)
		promoted, ok := s.BoxRef().Promote(m.Black, m.Order, pawn)
		if !ok {
			panic("move: promotion box exhausted, problem setup undersized it")
		}
		switch m.Condition {
		case Circe:
			s.Set(m.Target, promoted)
			s.Set(m.Rebirth, captured)
		case AntiCirce:
			s.Set(m.Target, piece.None)
			s.Set(m.Rebirth, promoted)
		case Andernach:
			promoted.Black = !promoted.Black
			s.Set(m.Target, promoted)
		case CirceAndernach:
			promoted.Black = !promoted.Black
			s.Set(m.Target, promoted)
			s.Set(m.Rebirth, captured)
		case AntiCirceAndernach:
			s.Set(m.Target, piece.None)
			promoted.Black = !promoted.Black
			s.Set(m.Rebirth, promoted)
		default:
			s.Set(m.Target, promoted)
		}
	}
}

// RevertPieces is the exact inverse of UpdatePieces, run as part of unmake.
func (m Move) RevertPieces(s Surface) {
	switch m.Kind {
	case Null:

	case Quiet, DoubleStep:
		mover := s.At(m.Target)
		s.Set(m.Target, piece.None)
		if m.Condition == AntiAndernach && !mover.Kind.IsRoyal() {
			mover.Black = !mover.Black
		}
		s.Set(m.Origin, mover)

	case Capture:
		switch m.Condition {
		case Circe:
			s.Set(m.Rebirth, piece.None)
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			s.Set(m.Origin, mover)
		case AntiCirce:
			mover := s.At(m.Rebirth)
			s.Set(m.Rebirth, piece.None)
			s.Set(m.Origin, mover)
		case Andernach:
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Origin, mover)
		case CirceAndernach:
			s.Set(m.Rebirth, piece.None)
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Origin, mover)
		case AntiCirceAndernach:
			mover := s.At(m.Rebirth)
			s.Set(m.Rebirth, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Origin, mover)
		default:
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			s.Set(m.Origin, mover)
		}
		captured := s.PopCapture()
		s.Set(m.Target, captured)

	case EnPassant:
		switch m.Condition {
		case Circe:
			s.Set(m.Rebirth, piece.None)
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			s.Set(m.Origin, mover)
		case AntiCirce:
			mover := s.At(m.Rebirth)
			s.Set(m.Rebirth, piece.None)
			s.Set(m.Origin, mover)
		case Andernach:
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Origin, mover)
		case CirceAndernach:
			s.Set(m.Rebirth, piece.None)
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Origin, mover)
		case AntiCirceAndernach:
			mover := s.At(m.Rebirth)
			s.Set(m.Rebirth, piece.None)
			if !mover.Kind.IsRoyal() {
				mover.Black = !mover.Black
			}
			s.Set(m.Origin, mover)
		default:
			mover := s.At(m.Target)
			s.Set(m.Target, piece.None)
			s.Set(m.Origin, mover)
		}
		captured := s.PopCapture()
		s.Set(m.Stop, captured)

	case LongCastling, ShortCastling:
		king := s.At(m.Target)
		rook := s.At(m.Target2)
		s.Set(m.Target, piece.None)
		s.Set(m.Target2, piece.None)
		s.Set(m.Origin, king)
		s.Set(m.Origin2, rook)

	case Promotion:
		promoted := s.At(m.Target)
		s.Set(m.Target, piece.None)
		if m.Condition == AntiAndernach {
			promoted.Black = !promoted.Black
		}
		s.BoxRef().Unpromote(m.Black, m.Order, promoted)
		s.Set(m.Origin, piece.Piece{Kind: piece.Pawn, Black: m.Black})

	case PromotionCapture:
		var promoted piece.Piece
		switch m.Condition {
		case Circe:
			s.Set(m.Rebirth, piece.None)
			promoted = s.At(m.Target)
			s.Set(m.Target, piece.None)
		case AntiCirce:
			promoted = s.At(m.Rebirth)
			s.Set(m.Rebirth, piece.None)
		case Andernach:
			promoted = s.At(m.Target)
			s.Set(m.Target, piece.None)
			promoted.Black = !promoted.Black
		case CirceAndernach:
			s.Set(m.Rebirth, piece.None)
			promoted = s.At(m.Target)
			s.Set(m.Target, piece.None)
			promoted.Black = !promoted.Black
		case AntiCirceAndernach:
			promoted = s.At(m.Rebirth)
			s.Set(m.Rebirth, piece.None)
			promoted.Black = !promoted.Black
		default:
			promoted = s.At(m.Target)
			s.Set(m.Target, piece.None)
		}
		s.BoxRef().Unpromote(m.Black, m.Order, promoted)
		s.Set(m.Origin, piece.Piece{Kind: piece.Pawn, Black: m.Black})
		captured := s.PopCapture()
		s.Set(m.Target, captured)
	}
}
