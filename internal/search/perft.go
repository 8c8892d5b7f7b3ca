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

package search

import (
	"github.com/frankkopp/moderato/internal/movegen"
	"github.com/frankkopp/moderato/internal/position"
)

// Perft counts the leaves of the legal-move tree exactly depth plies
// deep: the "acd N" opcode in a format-B problem names N directly as a
// ply count, not a move-pair count, so depth 0 always returns 1 and the
// recursion bottoms out without any terminal/mate test at all — perft
// counts positions, not outcomes.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pseudo := movegen.PseudoLegal(p)
	var nodes uint64
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.Make(m) {
			nodes += Perft(p, depth-1)
		}
		p.Unmake(m)
	}
	return nodes
}
