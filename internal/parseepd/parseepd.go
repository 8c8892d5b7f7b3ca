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

// Package parseepd reads spec.md §6's format B ("position"): a single
// line of six whitespace-separated fields in FEN-like shape, terminated
// by an `acd N;`/`dm N;` opcode pair rather than FEN's usual halfmove/
// fullmove counters. Grounded on the same hand-rolled regexp/strconv/
// strings style the teacher's position package uses for its own FEN
// reader, generalized to this grammar's trailing opcode.
package parseepd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/position"
	"github.com/frankkopp/moderato/internal/problem"
	"github.com/frankkopp/moderato/internal/square"
)

var lineRE = regexp.MustCompile(`^\s*(\S+)\s+([wb])\s+(\S+)\s+(\S+)\s+(acd|dm)\s+(\d+)\s*;\s*$`)

var fenKinds = map[rune]piece.Kind{
	'k': piece.King, 'q': piece.Queen, 'r': piece.Rook,
	'b': piece.Bishop, 'n': piece.Knight, 'p': piece.Pawn,
}

// Parse reads one format-B line into a problem.Problem ready to Solve.
// The returned Problem's Locale is left at its zero value (lang.English)
// since format-B carries no locale concept (spec.md §6).
func Parse(line string) (*problem.Problem, error) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("parseepd: malformed line %q", line)
	}
	placement, side, castling, ep, opcode, operand := m[1], m[2], m[3], m[4], m[5], m[6]

	pos := position.New()
	if err := placePieces(pos, placement); err != nil {
		return nil, err
	}
	pos.SetBlackToMove(side == "b")
	if err := setCastling(pos, castling); err != nil {
		return nil, err
	}
	if ep != "-" {
		sq := square.ParseSquare(ep)
		if !sq.IsValid() {
			return nil, fmt.Errorf("parseepd: bad en-passant square %q", ep)
		}
		pos.SetEnPassantSquare(sq)
	}

	n, err := strconv.Atoi(operand)
	if err != nil {
		return nil, fmt.Errorf("parseepd: bad operand %q: %w", operand, err)
	}

	stip := problem.Perft
	if opcode == "dm" {
		stip = problem.MateSearch
	}
	return &problem.Problem{Position: pos, Stip: stip, N: n}, nil
}

// placePieces fills pos from a FEN-style "/"-separated placement field:
// eight ranks top (8) to bottom (1), digits for empty runs, upper-case
// for White and lower-case for Black.
func placePieces(pos *position.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("parseepd: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := fenKinds[unicode.ToLower(c)]
			if !ok {
				return fmt.Errorf("parseepd: unrecognised piece letter %q", c)
			}
			if file >= 8 {
				return fmt.Errorf("parseepd: rank %d overflows the board", 8-i)
			}
			pos.Place(square.MakeSquare(file, rank), piece.Piece{Kind: kind, Black: unicode.IsLower(c)})
			file++
		}
		if file != 8 {
			return fmt.Errorf("parseepd: rank %d has %d files, want 8", 8-i, file)
		}
	}
	return nil
}

// setCastling maps the FEN "KQkq"/"-" field onto the square-identified
// castling rights spec.md §3's Position model uses, assuming the
// orthodox home squares this FEN-like format implies.
func setCastling(pos *position.Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			pos.SetCastling(square.ParseSquare("e1"), square.ParseSquare("h1"))
		case 'Q':
			pos.SetCastling(square.ParseSquare("e1"), square.ParseSquare("a1"))
		case 'k':
			pos.SetCastling(square.ParseSquare("e8"), square.ParseSquare("h8"))
		case 'q':
			pos.SetCastling(square.ParseSquare("e8"), square.ParseSquare("a8"))
		default:
			return fmt.Errorf("parseepd: unrecognised castling flag %q", c)
		}
	}
	return nil
}
