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

package parseproblem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/moderato/internal/factory"
	"github.com/frankkopp/moderato/internal/lang"
	"github.com/frankkopp/moderato/internal/piece"
	"github.com/frankkopp/moderato/internal/problem"
	"github.com/frankkopp/moderato/internal/square"
)

func TestParseAllBasicDirectmate(t *testing.T) {
	const text = `
BeginProblem
Remark a textbook two-mover
Stipulation #2
Pieces White Ke1 Ra1 Black Ke8
EndProblem
`
	problems, err := ParseAll(strings.NewReader(text), lang.English)
	require.NoError(t, err)
	require.Len(t, problems, 1)

	pr := problems[0]
	assert.Equal(t, problem.Directmate, pr.Stip)
	assert.Equal(t, 2, pr.N)
	assert.Equal(t, []string{"a textbook two-mover"}, pr.Remarks)

	e1 := pr.Position.At(square.ParseSquare("e1"))
	assert.Equal(t, piece.King, e1.Kind)
	assert.False(t, e1.Black)

	e8 := pr.Position.At(square.ParseSquare("e8"))
	assert.Equal(t, piece.King, e8.Kind)
	assert.True(t, e8.Black)
}

func TestParseAllMultiplePieceSquaresOneToken(t *testing.T) {
	const text = `
BeginProblem
Stipulation h#1
Pieces White Ke1 Black Ke8 Pa7b7c7
EndProblem
`
	problems, err := ParseAll(strings.NewReader(text), lang.English)
	require.NoError(t, err)
	require.Len(t, problems, 1)

	for _, sq := range []string{"a7", "b7", "c7"} {
		p := problems[0].Position.At(square.ParseSquare(sq))
		assert.Equal(t, piece.Pawn, p.Kind)
		assert.True(t, p.Black)
	}
}

func TestParseAllCondition(t *testing.T) {
	const text = `
BeginProblem
Condition Circe
Stipulation #3
Pieces White Ke1 Black Ke8
EndProblem
`
	problems, err := ParseAll(strings.NewReader(text), lang.English)
	require.NoError(t, err)
	assert.Equal(t, factory.Circe, problems[0].Position.Factory.Kind)
}

func TestParseAllOptionTryWithDefence(t *testing.T) {
	const text = `
BeginProblem
Stipulation #2
Option Try Defence 3
Pieces White Ke1 Ra1 Black Ke8
EndProblem
`
	problems, err := ParseAll(strings.NewReader(text), lang.English)
	require.NoError(t, err)
	assert.True(t, problems[0].Options.Try)
	assert.Equal(t, 3, problems[0].Options.Defence)
}

func TestParseAllSeriesSelfmateStipulation(t *testing.T) {
	const text = `
BeginProblem
Stipulation ser-s#4
Pieces White Ke1 Black Ke8
EndProblem
`
	problems, err := ParseAll(strings.NewReader(text), lang.English)
	require.NoError(t, err)
	assert.Equal(t, problem.SeriesSelfmate, problems[0].Stip)
	assert.Equal(t, 4, problems[0].N)
}

func TestParseAllTwoProblemsSeparatedByNextProblem(t *testing.T) {
	const text = `
BeginProblem
Stipulation #1
Pieces White Ke1 Ra1 Black Ke8
EndProblem
NextProblem
BeginProblem
Stipulation h#2
Pieces White Ke1 Black Ke8
EndProblem
`
	problems, err := ParseAll(strings.NewReader(text), lang.English)
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, problem.Directmate, problems[0].Stip)
	assert.Equal(t, problem.Helpmate, problems[1].Stip)
}

func TestParseAllRejectsUnterminatedBlock(t *testing.T) {
	const text = `
BeginProblem
Stipulation #1
Pieces White Ke1 Black Ke8
`
	_, err := ParseAll(strings.NewReader(text), lang.English)
	assert.Error(t, err)
}

func TestParseAllGermanLocale(t *testing.T) {
	const text = `
BeginProblem
Forderung #2
Steine Weiss Ke1 Turm a1 Schwarz Ke8
EndProblem
`
	_, err := ParseAll(strings.NewReader(text), lang.German)
	assert.Error(t, err)
}
