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
	"github.com/frankkopp/moderato/internal/move"
	"github.com/frankkopp/moderato/internal/movegen"
	"github.com/frankkopp/moderato/internal/position"
)

// Mate reports one candidate move of a "dm N" (mate-search) query: Move is
// the first ply's notation and Depth is the smallest number of moves d
// (the mover's own moves, this one included) in which it forces mate, the
// d of "+Md" in the problem's answer format.
type Mate struct {
	Move  move.Move
	Text  string
	Depth int
}

// MateSearch answers the "dm N" query directly, the way a solver tool
// reports engine-style output rather than a problem's composed solution:
// for every legal first move it finds the smallest move count in
// 1..maxDepth within which the reply side has no escape, then returns every move that
// shares the overall shallowest depth found across the whole position.
func MateSearch(p *position.Position, stalemate bool, maxDepth int, namer Namer) []Mate {
	pseudo := movegen.PseudoLegal(p)
	type candidate struct {
		m     move.Move
		text  string
		depth int
	}
	var found []candidate

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		text := m.PreWrite(p, namer)
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		for d := 1; d <= maxDepth; d++ {
			if SearchMin(p, stalemate, DirectmateDepth(d)-1) != Below {
				found = append(found, candidate{m: m, text: text, depth: d})
				break
			}
		}
		p.Unmake(m)
	}

	if len(found) == 0 {
		return nil
	}
	shallowest := found[0].depth
	for _, c := range found {
		if c.depth < shallowest {
			shallowest = c.depth
		}
	}

	var mates []Mate
	for _, c := range found {
		if c.depth == shallowest {
			mates = append(mates, Mate{Move: c.m, Text: c.text, Depth: c.depth})
		}
	}
	return mates
}
