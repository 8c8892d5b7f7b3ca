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

import "github.com/frankkopp/moderato/internal/square"

// UpdateState pushes the prior (castling_rights, en_passant) pair onto
// memory, mutates castling rights by erasing the squares this move
// vacated or captured on (re-adding a rebirth/flip square iff the
// matching eligibility flag was set at construction time), refreshes
// en_passant, and flips the side to move.
func (m Move) UpdateState(s Surface) {
	s.SaveState()

	switch m.Kind {
	case Null:
		// nothing to erase
	case LongCastling, ShortCastling:
		s.RemoveCastling(m.Origin)
		s.RemoveCastling(m.Origin2)
	default:
		s.RemoveCastling(m.Origin)
		s.RemoveCastling(m.Target)
		if m.Condition.hasRebirth() {
			s.RemoveCastling(m.Rebirth)
		}
	}

	if m.RebirthEligible {
		s.AddCastling(m.Rebirth)
	}
	if m.FlipEligible {
		s.AddCastling(m.Target)
	}

	if m.Kind == DoubleStep {
		s.SetEnPassant(m.Stop)
	} else {
		s.ClearEnPassant()
	}

	s.ToggleSideToMove()
}

// RevertState is the exact inverse of UpdateState.
func (m Move) RevertState(s Surface) {
	s.ToggleSideToMove()
	s.RestoreState()
}

// PreMake runs before UpdatePieces/UpdateState for every move kind except
// castling, where it is the "king does not start in, or pass through,
// check" test: a NullMove checks the side is not already in check, then a
// synthetic one-square king step checks the transit square is not
// attacked either. Both probes are fully undone before PreMake returns.
func (m Move) PreMake(s Surface) bool {
	if m.Kind != LongCastling && m.Kind != ShortCastling {
		return true
	}

	null := Move{Kind: Null}
	null.UpdateState(s)
	notInCheck := s.IsLegal()
	null.RevertState(s)
	if !notInCheck {
		return false
	}

	transit := square.MakeSquare((m.Origin.File()+m.Target.File())/2, m.Origin.Rank())
	step := Move{Kind: Quiet, Origin: m.Origin, Target: transit}
	step.UpdatePieces(s)
	step.UpdateState(s)
	notAttacked := s.IsLegal()
	step.RevertState(s)
	step.RevertPieces(s)
	return notAttacked
}
