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

package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/moderato/internal/piece"
)

func TestParseLocaleIsCaseInsensitive(t *testing.T) {
	l, ok := ParseLocale("german")
	assert.True(t, ok)
	assert.Equal(t, German, l)
}

func TestParseLocaleRejectsUnknownName(t *testing.T) {
	_, ok := ParseLocale("Klingon")
	assert.False(t, ok)
}

func TestTableKeywordsDifferPerLocale(t *testing.T) {
	assert.Equal(t, "BeginProblem", Table(English).BeginProblem)
	assert.Equal(t, "DebutProbleme", Table(French).BeginProblem)
	assert.Equal(t, "Bemerkung", Table(German).Remark)
}

func TestLettersRoundTripThroughKindForLetter(t *testing.T) {
	for _, l := range []Locale{English, French, German} {
		letters := Letters(l)
		for k := piece.King; k <= piece.Amazon; k++ {
			letter := letters.Letter(k)
			if letter == "" {
				continue
			}
			got, ok := l.KindForLetter(letter)
			assert.True(t, ok, "locale %v letter %q", l, letter)
			assert.Equal(t, k, got, "locale %v letter %q", l, letter)
		}
	}
}

func TestKindForLetterRejectsUnknownToken(t *testing.T) {
	_, ok := English.KindForLetter("Z")
	assert.False(t, ok)
}

func TestKindForLetterResolvesPawnCodeByLocale(t *testing.T) {
	k, ok := English.KindForLetter("P")
	assert.True(t, ok)
	assert.Equal(t, piece.Pawn, k)

	k, ok = German.KindForLetter("B")
	assert.True(t, ok)
	assert.Equal(t, piece.Pawn, k)
}
