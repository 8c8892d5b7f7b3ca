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

// Package position represents a fairy-chess board: the 0x88 piece array,
// the promotion box, the capture table a Circe-flavoured unmake replays
// from, and the castling-rights/en-passant memory stack make/unmake
// pushes and pops. Position implements move.Surface; search and movegen
// only ever see this package, never move's internals.
//
// Build one with New(), then Place/SetCastling/SetBlackToMove and set the
// Factory field before handing it to a search.Runner.
package position

import (
	"strings"

	"github.com/frankkopp/moderato/internal/box"
	"github.com/frankkopp/moderato/internal/factory"
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/square"
)

// Position is the complete, make/unmake-reversible game state.
type Position struct {
	// Board state.
	board       [square.BoardSize]piece.Piece
	box         box.Box
	blackToMove bool
	enPassant   square.Square
	castling    map[square.Square]bool

	// Reversible history.
	captures []piece.Piece
	memory   []savedState

	// The active fairy condition(s), applied uniformly by every
	// movegen.Generate* call against this position.
	Factory factory.Factory
}

// savedState is the (castling rights, en-passant square) pair SaveState
// pushes before a move touches either, and RestoreState pops on unmake.
type savedState struct {
	castling  map[square.Square]bool
	enPassant square.Square
}

// New returns an empty board: no pieces, white to move, no castling
// rights, no en-passant square, the Default (orthodox) factory. Callers
// place pieces and set state via the builder methods below before
// starting a search.
func New() *Position {
	return &Position{
		box:       box.New(),
		enPassant: square.SqNone,
		castling:  make(map[square.Square]bool),
	}
}

// Place sets the piece on sq, overwriting whatever was there. Used only
// during problem setup, never during search.
func (p *Position) Place(sq square.Square, pc piece.Piece) {
	p.board[sq] = pc
}

// SetCastling grants castling rights on every square passed in (normally
// the king's and rooks' home squares for colours that may still castle).
func (p *Position) SetCastling(squares ...square.Square) {
	for _, sq := range squares {
		p.castling[sq] = true
	}
}

// SetBlackToMove sets which side moves first.
func (p *Position) SetBlackToMove(black bool) {
	p.blackToMove = black
}

// SetEnPassantSquare primes an initial en-passant target, for positions
// set up mid-game (format-B input can specify one).
func (p *Position) SetEnPassantSquare(sq square.Square) {
	p.enPassant = sq
}

// Box returns the promotion inventory so problem setup can stock it.
func (p *Position) Box() *box.Box {
	return &p.box
}

// BlackToMove reports whose turn it is.
func (p *Position) BlackToMove() bool {
	return p.blackToMove
}

// EnPassantSquare returns the current en-passant target, or square.SqNone.
func (p *Position) EnPassantSquare() square.Square {
	return p.enPassant
}

// HasCastling reports whether sq currently still holds castling rights.
func (p *Position) HasCastling(sq square.Square) bool {
	return p.castling[sq]
}

// move.Surface implementation.

// At returns the piece on sq (piece.None if empty).
func (p *Position) At(sq square.Square) piece.Piece {
	return p.board[sq]
}

// Set places pc on sq, piece.None to clear it.
func (p *Position) Set(sq square.Square, pc piece.Piece) {
	p.board[sq] = pc
}

// BoxRef returns the promotion box for Move to Promote/Unpromote against.
func (p *Position) BoxRef() *box.Box {
	return &p.box
}

// PushCapture records a captured piece so Unmake can restore it.
func (p *Position) PushCapture(pc piece.Piece) {
	p.captures = append(p.captures, pc)
}

// PopCapture removes and returns the most recently captured piece.
func (p *Position) PopCapture() piece.Piece {
	n := len(p.captures) - 1
	pc := p.captures[n]
	p.captures = p.captures[:n]
	return pc
}

// SaveState pushes a snapshot of (castling rights, en-passant square)
// before a move mutates either.
func (p *Position) SaveState() {
	snap := make(map[square.Square]bool, len(p.castling))
	for sq := range p.castling {
		snap[sq] = true
	}
	p.memory = append(p.memory, savedState{castling: snap, enPassant: p.enPassant})
}

// RestoreState pops the snapshot SaveState last pushed.
func (p *Position) RestoreState() {
	n := len(p.memory) - 1
	saved := p.memory[n]
	p.memory = p.memory[:n]
	p.castling = saved.castling
	p.enPassant = saved.enPassant
}

// RemoveCastling revokes castling rights on sq, if it had any.
func (p *Position) RemoveCastling(sq square.Square) {
	delete(p.castling, sq)
}

// AddCastling grants castling rights on sq (used when a rebirth or
// Andernach colour flip lands a castling-eligible piece back on its own
// canonical square).
func (p *Position) AddCastling(sq square.Square) {
	p.castling[sq] = true
}

// SetEnPassant records the square a double-step just passed over.
func (p *Position) SetEnPassant(sq square.Square) {
	p.enPassant = sq
}

// ClearEnPassant drops any en-passant target, as every non-double-step
// move does.
func (p *Position) ClearEnPassant() {
	p.enPassant = square.SqNone
}

// ToggleSideToMove flips whose turn it is.
func (p *Position) ToggleSideToMove() {
	p.blackToMove = !p.blackToMove
}

// Make applies m to the position and reports whether the resulting
// position is legal: the side that just moved did not leave its own
// royal piece attacked. m is always applied, so every Make must be
// followed by Unmake whatever it returned. A castling move whose PreMake
// probe fails (king starts in, or passes through, check) makes Make
// return false.
func (p *Position) Make(m move.Move) bool {
	ok := m.PreMake(p)
	m.UpdatePieces(p)
	m.UpdateState(p)
	return ok && p.IsLegal()
}

// Unmake is the exact inverse of a Make call, whatever that call
// returned, and of PreMake's own internal probes.
func (p *Position) Unmake(m move.Move) {
	m.RevertState(p)
	m.RevertPieces(p)
}

// IsLegal reports whether the side that moved last did not leave its own
// royal piece attacked. A position with no royal piece on the board at all
// (captured away, or a fairy army that never had one) is vacuously legal.
func (p *Position) IsLegal() bool {
	mover := !p.blackToMove
	kingSq := p.royalSquare(mover)
	if kingSq == square.SqNone {
		return true
	}
	return !p.isAttacked(kingSq, p.blackToMove)
}

// IsCheck reports whether the side to move is currently attacked. Unlike
// IsLegal (which always asks about the side that just moved) this asks
// about the side about to move, the question search.directmate and
// friends need after make to label a position "in check".
func (p *Position) IsCheck() bool {
	kingSq := p.royalSquare(p.blackToMove)
	if kingSq == square.SqNone {
		return false
	}
	return p.isAttacked(kingSq, !p.blackToMove)
}

// Checkers counts the attackers of the side to move's royal piece: the
// number of distinct enemy pieces that currently attack its king square.
// Zero royal pieces on the board counts as zero checkers, matching
// IsCheck's vacuous-legality treatment.
func (p *Position) Checkers() int {
	kingSq := p.royalSquare(p.blackToMove)
	if kingSq == square.SqNone {
		return 0
	}
	return p.countAttackers(kingSq, !p.blackToMove)
}

func (p *Position) countAttackers(target square.Square, byBlack bool) int {
	n := 0
	for i := 0; i < square.BoardSize; i++ {
		sq := square.Square(i)
		if !sq.IsValid() {
			continue
		}
		pc := p.board[sq]
		if pc.IsNone() || pc.Black != byBlack {
			continue
		}
		if p.attacksFrom(sq, pc, target) {
			n++
		}
	}
	return n
}

func (p *Position) royalSquare(black bool) square.Square {
	for i := 0; i < square.BoardSize; i++ {
		sq := square.Square(i)
		if !sq.IsValid() {
			continue
		}
		pc := p.board[sq]
		if pc.Kind.IsRoyal() && pc.Black == black {
			return sq
		}
	}
	return square.SqNone
}

// isAttacked is a purely geometric reachability test: can any piece of
// colour byBlack reach target in one step, given the current board
// occupancy? It ignores every fairy capture condition (Circe, AntiCirce,
// Andernach, NoCapture) — whether a capture would actually be generated
// and what it does to the board once played has no bearing on whether a
// square is, right now, under attack.
func (p *Position) isAttacked(target square.Square, byBlack bool) bool {
	for i := 0; i < square.BoardSize; i++ {
		sq := square.Square(i)
		if !sq.IsValid() {
			continue
		}
		pc := p.board[sq]
		if pc.IsNone() || pc.Black != byBlack {
			continue
		}
		if p.attacksFrom(sq, pc, target) {
			return true
		}
	}
	return false
}

func (p *Position) attacksFrom(from square.Square, pc piece.Piece, target square.Square) bool {
	if pc.Kind == piece.Pawn {
		return p.pawnAttacks(from, pc.Black, target)
	}
	if pc.Kind == piece.Amazon {
		return p.rides(from, square.Orthogonal8, target) || p.leaps(from, square.KnightOffsets, target)
	}
	switch piece.CapabilityOf(pc.Kind) {
	case piece.CapLeaper:
		return p.leaps(from, piece.Directions(pc.Kind), target)
	case piece.CapRider:
		return p.rides(from, piece.Directions(pc.Kind), target)
	case piece.CapHopper:
		return p.hops(from, piece.Directions(pc.Kind), target)
	default:
		return false
	}
}

func (p *Position) pawnAttacks(from square.Square, black bool, target square.Square) bool {
	dirs := []square.Direction{square.Northeast, square.Northwest}
	if black {
		dirs = []square.Direction{square.Southeast, square.Southwest}
	}
	for _, d := range dirs {
		if from.To(d) == target {
			return true
		}
	}
	return false
}

func (p *Position) leaps(from square.Square, dirs []square.Direction, target square.Square) bool {
	for _, d := range dirs {
		if from.To(d) == target {
			return true
		}
	}
	return false
}

// rides walks each direction one step at a time until it falls off the
// board or lands on an occupied square; target must be reached exactly
// on an empty run or on the first occupied square.
func (p *Position) rides(from square.Square, dirs []square.Direction, target square.Square) bool {
	for _, d := range dirs {
		sq := from
		for {
			sq = sq.To(d)
			if sq == square.SqNone {
				break
			}
			if sq == target {
				return true
			}
			if !p.board[sq].IsNone() {
				break
			}
		}
	}
	return false
}

// hops walks each direction over empty squares until the first occupied
// square at any range (the hurdle, at whatever distance it sits), and
// requires target to be the square immediately beyond that hurdle.
func (p *Position) hops(from square.Square, dirs []square.Direction, target square.Square) bool {
	for _, d := range dirs {
		hurdle := square.SqNone
		sq := from
		for {
			sq = sq.To(d)
			if sq == square.SqNone {
				break
			}
			if !p.board[sq].IsNone() {
				hurdle = sq
				break
			}
		}
		if hurdle == square.SqNone {
			continue
		}
		landing := hurdle.To(d)
		if landing == target {
			return true
		}
	}
	return false
}

// String renders the board as an 8-rank ASCII diagram, rank 8 first, for
// logging and test failure output.
func (p *Position) String() string {
	var b strings.Builder
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			pc := p.board[square.MakeSquare(file, rank)]
			b.WriteRune(pieceGlyph(pc))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func pieceGlyph(pc piece.Piece) rune {
	if pc.IsNone() {
		return '.'
	}
	letter := pc.Kind.Letter()
	if letter == "" {
		letter = "P"
	}
	r := rune(letter[0])
	if pc.Black {
		return r + ('a' - 'A')
	}
	return r
}
