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

package solution

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestToMappedGroupsSharedHead(t *testing.T) {
	lines := []Line{
		{{Key, "Qh5"}, {Continuation, "Kxh5"}},
		{{Key, "Qh5"}, {Continuation, "Kf8"}},
	}
	mapped := ToMapped(lines)
	if !assert.Len(t, mapped, 1, "unexpected branch tree:\n%s", spew.Sdump(mapped)) {
		return
	}
	assert.Equal(t, "Qh5", mapped[0].Step.Text)
	assert.Len(t, mapped[0].Children, 2, "unexpected children:\n%s", spew.Sdump(mapped[0].Children))
}

func TestToOrderedSortsByPlayTag(t *testing.T) {
	branches := []Branch{
		{Step: Step{Refutation, "Rxe1"}},
		{Step: Step{Key, "Qh5"}},
		{Step: Step{Try, "Qe2"}},
	}
	ordered := ToOrdered(branches)
	assert.Equal(t, Try, ordered[0].Step.Tag)
	assert.Equal(t, Key, ordered[1].Step.Tag)
	assert.Equal(t, Refutation, ordered[2].Step.Tag)
}

func TestToGroupedMergesIdenticalContinuations(t *testing.T) {
	branches := []Branch{
		{Step: Step{Key, "Qh5"}, Children: []Branch{{Step: Step{Continuation, "Kxh5#"}}}},
		{Step: Step{Key, "Qg4"}, Children: []Branch{{Step: Step{Continuation, "Kxh5#"}}}},
	}
	grouped := ToGrouped(branches)
	assert.Len(t, grouped, 1)
	assert.Equal(t, "Qh5,Qg4", grouped[0].Step.Text)
}

func TestWriteKeyLine(t *testing.T) {
	branches := []Branch{
		{Step: Step{Key, "Qh5"}, Children: []Branch{
			{Step: Step{Continuation, "Kxh5#"}},
		}},
	}
	out := Write(branches, 1, true, "\n", "  ", " ")
	assert.Contains(t, out, "1.Qh5!")
	assert.Contains(t, out, "1...Kxh5#")
}

func TestFoldPipeline(t *testing.T) {
	lines := []Line{
		{{Key, "Qh5"}, {Continuation, "Kxh5"}},
		{{Try, "Qe2"}, {Refutation, "Kf8"}},
	}
	branches := Fold(lines)
	assert.Equal(t, Try, branches[0].Step.Tag)
	assert.Equal(t, Key, branches[1].Step.Tag)
}
