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

package parseepd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/problem"
	"github.com/frankkopp/moderato/internal/square"
)

func TestParseStandardStartAcdLine(t *testing.T) {
	const line = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - acd 1;"
	pr, err := Parse(line)
	require.NoError(t, err)
	assert.Equal(t, problem.Perft, pr.Stip)
	assert.Equal(t, 1, pr.N)

	e1 := pr.Position.At(square.ParseSquare("e1"))
	assert.Equal(t, piece.King, e1.Kind)
	assert.False(t, e1.Black)

	e8 := pr.Position.At(square.ParseSquare("e8"))
	assert.Equal(t, piece.King, e8.Kind)
	assert.True(t, e8.Black)
}

func TestParseDmOpcodeSelectsMateSearch(t *testing.T) {
	const line = "8/8/8/8/8/8/8/R3K2k w Q - dm 3;"
	pr, err := Parse(line)
	require.NoError(t, err)
	assert.Equal(t, problem.MateSearch, pr.Stip)
	assert.Equal(t, 3, pr.N)
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse("not a valid epd line")
	assert.Error(t, err)
}

func TestParseRejectsShortRank(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - acd 1;")
	assert.Error(t, err)
}

func TestParseEnPassantSquareIsHonoured(t *testing.T) {
	const line = "8/8/8/3pP3/8/8/8/4K2k w - d6 acd 1;"
	pr, err := Parse(line)
	require.NoError(t, err)
	assert.True(t, pr.Position.EnPassantSquare().IsValid())
}
