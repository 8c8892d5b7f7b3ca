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

// Package movegen walks the board and, for every piece of the side to
// move, asks the position's active factory.Factory to turn each
// geometrically reachable square into a move.Move. It never evaluates a
// position or orders moves by any heuristic: search consumes the list
// exhaustively, the way an exact problem solver must.
package movegen

import (
	"github.com/frankkopp/moderato/internal/movelist"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/square"
)

// PseudoLegal returns every move the side to move in p could play,
// without checking whether any of them leaves that side's own royal
// piece attacked — Position.Make performs that check when the move is
// actually tried.
func PseudoLegal(p *position.Position) *movelist.List {
	black := p.BlackToMove()
	list := movelist.New(48)
	for i := 0; i < square.BoardSize; i++ {
		from := square.Square(i)
		if !from.IsValid() {
			continue
		}
		pc := p.At(from)
		if pc.IsNone() || pc.Black != black {
			continue
		}
		generateFrom(p, from, pc, list)
	}
	generateCastling(p, black, list)
	return list
}

func generateFrom(p *position.Position, from square.Square, pc piece.Piece, list *movelist.List) {
	switch pc.Kind {
	case piece.Pawn:
		generatePawn(p, from, pc.Black, list)
	case piece.Amazon:
		walkRider(p, from, square.Orthogonal8, list)
		walkLeaper(p, from, square.KnightOffsets, list)
	default:
		switch piece.CapabilityOf(pc.Kind) {
		case piece.CapLeaper:
			walkLeaper(p, from, piece.Directions(pc.Kind), list)
		case piece.CapRider:
			walkRider(p, from, piece.Directions(pc.Kind), list)
		case piece.CapHopper:
			walkHopper(p, from, piece.Directions(pc.Kind), list)
		}
	}
}

func walkLeaper(p *position.Position, from square.Square, dirs []square.Direction, list *movelist.List) {
	for _, d := range dirs {
		to := from.To(d)
		if to == square.SqNone {
			continue
		}
		addStep(p, from, to, list)
	}
}

func walkRider(p *position.Position, from square.Square, dirs []square.Direction, list *movelist.List) {
	for _, d := range dirs {
		to := from
		for {
			to = to.To(d)
			if to == square.SqNone {
				break
			}
			blocked := addStep(p, from, to, list)
			if blocked {
				break
			}
		}
	}
}

func walkHopper(p *position.Position, from square.Square, dirs []square.Direction, list *movelist.List) {
	for _, d := range dirs {
		hurdle := square.SqNone
		sq := from
		for {
			sq = sq.To(d)
			if sq == square.SqNone {
				break
			}
			if !p.At(sq).IsNone() {
				hurdle = sq
				break
			}
		}
		if hurdle == square.SqNone {
			continue
		}
		landing := hurdle.To(d)
		if landing == square.SqNone {
			continue
		}
		addStep(p, from, landing, list)
	}
}

// addStep appends the quiet move or capture from->to, if any, and reports
// whether continuing a rider's walk past to is pointless (to is occupied
// either way, by friend or foe).
func addStep(p *position.Position, from, to square.Square, list *movelist.List) bool {
	target := p.At(to)
	if target.IsNone() {
		list.Add(p.Factory.GenerateQuietMove(p, from, to))
		return false
	}
	if target.Black == p.At(from).Black {
		return true
	}
	if m, ok := p.Factory.GenerateCapture(p, from, to); ok {
		list.Add(m)
	}
	return true
}

func generatePawn(p *position.Position, from square.Square, black bool, list *movelist.List) {
	forward := square.North
	startRank := 1
	lastRank := square.Rank8
	captureDirs := []square.Direction{square.Northeast, square.Northwest}
	if black {
		forward = square.South
		startRank = 6
		lastRank = square.Rank1
		captureDirs = []square.Direction{square.Southeast, square.Southwest}
	}

	one := from.To(forward)
	if one != square.SqNone && p.At(one).IsNone() {
		if one.Rank() == lastRank {
			generatePromotions(p, from, one, black, false, list)
		} else {
			list.Add(p.Factory.GenerateQuietMove(p, from, one))
			if from.Rank() == startRank {
				two := one.To(forward)
				if two != square.SqNone && p.At(two).IsNone() {
					list.Add(p.Factory.GenerateDoubleStep(p, from, two, one))
				}
			}
		}
	}

	for _, d := range captureDirs {
		to := from.To(d)
		if to == square.SqNone {
			continue
		}
		target := p.At(to)
		if !target.IsNone() && target.Black != black {
			if to.Rank() == lastRank {
				generatePromotions(p, from, to, black, true, list)
			} else if m, ok := p.Factory.GenerateCapture(p, from, to); ok {
				list.Add(m)
			}
			continue
		}
		if to == p.EnPassantSquare() {
			stop := square.MakeSquare(to.File(), from.Rank())
			if m, ok := p.Factory.GenerateEnPassant(p, from, to, stop); ok {
				list.Add(m)
			}
		}
	}
}

func generatePromotions(p *position.Position, from, to square.Square, black, capturing bool, list *movelist.List) {
	for _, order := range p.Box().Orders(black) {
		kind := p.Box().KindAt(black, order)
		if capturing {
			if m, ok := p.Factory.GeneratePromotionCapture(p, from, to, black, order, kind); ok {
				list.Add(m)
			}
		} else {
			list.Add(p.Factory.GeneratePromotion(p, from, to, black, order, kind))
		}
	}
}

// generateCastling appends long/short castling for black, if the king and
// the relevant rook both still hold castling rights, the squares between
// them are empty, and PreMake's check-free-transit probe (run lazily by
// Position.Make) will later accept it. Movegen only checks static board
// shape here; the king-safety probe happens at make time.
func generateCastling(p *position.Position, black bool, list *movelist.List) {
	rank := square.Rank1
	if black {
		rank = square.Rank8
	}
	king := square.MakeSquare(4, rank)
	if !p.HasCastling(king) || p.At(king).Kind != piece.King || p.At(king).Black != black {
		return
	}

	if shortRook := square.MakeSquare(7, rank); p.HasCastling(shortRook) &&
		emptyBetween(p, king, shortRook) {
		list.Add(p.Factory.GenerateShortCastling(king, square.MakeSquare(6, rank), shortRook, square.MakeSquare(5, rank)))
	}
	if longRook := square.MakeSquare(0, rank); p.HasCastling(longRook) &&
		emptyBetween(p, king, longRook) {
		list.Add(p.Factory.GenerateLongCastling(king, square.MakeSquare(2, rank), longRook, square.MakeSquare(3, rank)))
	}
}

func emptyBetween(p *position.Position, a, b square.Square) bool {
	lo, hi := a.File(), b.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		if !p.At(square.MakeSquare(file, a.Rank())).IsNone() {
			return false
		}
	}
	return true
}
