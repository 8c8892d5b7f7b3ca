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

import (
	"strings"

	"github.com/frankkopp/moderato/internal/piece"
)

// Namer resolves a piece kind to its locale-specific notation letter
// (English "S" for knight, German "S" too, French "C", etc). Pawns
// conventionally resolve to "".
type Namer func(piece.Kind) string

// PreWrite renders the long-algebraic opening fragment of this move. It
// must be called before UpdatePieces mutates the board, since it inspects
// the mover and any captured piece in place.
func (m Move) PreWrite(s Surface, namer Namer) string {
	switch m.Kind {
	case Null:
		return "null"
	case ShortCastling:
		return "0-0"
	case LongCastling:
		return "0-0-0"
	}

	mover := s.At(m.Origin)

	var b strings.Builder
	b.WriteString(namer(mover.Kind))
	b.WriteString(m.Origin.String())
	if m.Kind.IsCapturing() {
		b.WriteString("x")
	} else {
		b.WriteString("-")
	}
	b.WriteString(m.Target.String())

	if m.Kind == Promotion || m.Kind == PromotionCapture {
		b.WriteString("=")
		b.WriteString(namer(m.PromotionKind))
	}

	switch m.Condition {
	case Circe:
		capturedSq := m.Target
		if m.Kind == EnPassant {
			capturedSq = m.Stop
		}
		captured := s.At(capturedSq)
		b.WriteString("(")
		b.WriteString(namer(captured.Kind))
		b.WriteString(m.Rebirth.String())
		b.WriteString(")")
	case AntiCirce:
		b.WriteString("(")
		b.WriteString(namer(mover.Kind))
		b.WriteString(m.Rebirth.String())
		b.WriteString(")")
	case Andernach:
		newColour := "w"
		if !mover.Black {
			newColour = "b"
		}
		b.WriteString("(=")
		b.WriteString(newColour)
		b.WriteString(")")
	}

	if m.Kind == EnPassant {
		b.WriteString(" e.p.")
	}

	return b.String()
}

// PostWrite renders the trailing annotation appended after the move has
// been made and the resulting position examined: "+" per check (counted
// by the caller), "#" if the position is terminal and in check, "=" if
// terminal and not in check (stalemate).
func PostWrite(checks int, terminal bool) string {
	switch {
	case terminal && checks > 0:
		return "#"
	case terminal:
		return "="
	case checks > 0:
		return strings.Repeat("+", checks)
	default:
		return ""
	}
}
