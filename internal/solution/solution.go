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

// Package solution turns the flat lines a search produces into the nested,
// ordered, grouped play tree a problem's solution is printed as. A line is
// a root-to-leaf path of (Play, notation) steps; to_mapped/to_ordered/
// to_grouped/write fold a batch of lines into the tree the way Moderato's
// original solution printer does.
package solution

import (
	"strconv"
	"strings"
)

// Play classifies a single half-move within the solution tree. Order
// matters: to_ordered sorts siblings by this enumeration.
type Play int

// The twelve play tags spec.md names, in the order to_ordered sorts by.
const (
	Set Play = iota
	Try
	Key
	Continuation
	Tempo1st
	Help1st
	Zugzwang
	Threat
	Variation
	Refutation
	Tempo2nd
	Help2nd
)

// Step is one annotated half-move: its tag and its long-algebraic text.
type Step struct {
	Tag  Play
	Text string
}

// Line is a root-to-leaf path through the play tree, in move order.
type Line []Step

// Branch is one node of the folded tree: its own step plus its children,
// already mapped/ordered/grouped.
type Branch struct {
	Step     Step
	Children []Branch
}

// ToMapped groups lines sharing the same first step into (head, [tails]),
// recursing into the tails. Lines with no steps left contribute no branch.
func ToMapped(lines []Line) []Branch {
	type bucket struct {
		step  Step
		tails []Line
	}
	var order []Step
	buckets := map[Step]*bucket{}
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		head, tail := line[0], line[1:]
		b, ok := buckets[head]
		if !ok {
			b = &bucket{step: head}
			buckets[head] = b
			order = append(order, head)
		}
		if len(tail) > 0 {
			b.tails = append(b.tails, tail)
		}
	}
	branches := make([]Branch, 0, len(order))
	for _, step := range order {
		b := buckets[step]
		branches = append(branches, Branch{Step: b.step, Children: ToMapped(b.tails)})
	}
	return branches
}

// playRank is play's position in the sort order to_ordered enforces.
func playRank(p Play) int {
	return int(p)
}

// ToOrdered stable-sorts branches (and, recursively, their children) by
// Play tag, preserving relative order among branches that share a tag.
func ToOrdered(branches []Branch) []Branch {
	out := make([]Branch, len(branches))
	copy(out, branches)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && playRank(out[j-1].Step.Tag) > playRank(out[j].Step.Tag); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	for i := range out {
		out[i].Children = ToOrdered(out[i].Children)
	}
	return out
}

// sameSubtree reports whether two branches have identical children after
// both have already been ordered and grouped, used by ToGrouped to decide
// whether two Key/Try branches share one continuation and may be merged.
func sameSubtree(a, b []Branch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Step.Tag != b[i].Step.Tag || a[i].Step.Text != b[i].Step.Text {
			return false
		}
		if !sameSubtree(a[i].Children, b[i].Children) {
			return false
		}
	}
	return true
}

// ToGrouped folds consecutive siblings with equal (tag, subtree) by
// concatenating their move text with ",", used to present multiple keys
// that share one continuation as a single line.
func ToGrouped(branches []Branch) []Branch {
	if len(branches) == 0 {
		return nil
	}
	grouped := make([]Branch, 0, len(branches))
	cur := branches[0]
	cur.Children = ToGrouped(cur.Children)
	for _, next := range branches[1:] {
		next.Children = ToGrouped(next.Children)
		if next.Step.Tag == cur.Step.Tag && sameSubtree(cur.Children, next.Children) {
			cur.Step.Text = cur.Step.Text + "," + next.Step.Text
			continue
		}
		grouped = append(grouped, cur)
		cur = next
	}
	grouped = append(grouped, cur)
	return grouped
}

// Fold runs the canonical ToMapped -> ToOrdered -> ToGrouped pipeline.
func Fold(lines []Line) []Branch {
	return ToGrouped(ToOrdered(ToMapped(lines)))
}

// isWhiteMoveTag returns the suffix that follows the move number: "." when
// white is to move and "..." when black is; used by Write to render
// "N." or "N...".
func isWhiteMoveTag(whiteToMove bool) string {
	if whiteToMove {
		return "."
	}
	return "..."
}

// Write renders branches as the nested solution text. moveNo is the move
// number of the branches in this slice; whiteToMove says whose move it is
// at this ply. newline/tab/space let callers control layout (tests use
// compact single characters; the CLI uses real whitespace).
func Write(branches []Branch, moveNo int, whiteToMove bool, newline, tab, space string) string {
	var b strings.Builder
	writeBranches(&b, branches, moveNo, whiteToMove, 0, newline, tab, space)
	return b.String()
}

func writeBranches(b *strings.Builder, branches []Branch, moveNo int, whiteToMove bool, depth int, newline, tab, space string) {
	for _, branch := range branches {
		writeBranch(b, branch, moveNo, whiteToMove, depth, newline, tab, space)
	}
}

func writeBranch(b *strings.Builder, branch Branch, moveNo int, whiteToMove bool, depth int, newline, tab, space string) {
	indent := strings.Repeat(tab, depth)
	nextMoveNo := moveNo
	nextWhite := !whiteToMove
	if whiteToMove {
		// the reply is still within the same full move number
	} else {
		nextMoveNo = moveNo + 1
	}

	switch branch.Step.Tag {
	case Set:
		// Transparent: recurse at the same move number without printing
		// a line of its own.
		writeBranches(b, branch.Children, moveNo, whiteToMove, depth, newline, tab, space)
		return
	case Key:
		b.WriteString(indent)
		b.WriteString(prefix(moveNo, whiteToMove))
		b.WriteString(branch.Step.Text)
		b.WriteString("!")
		b.WriteString(newline)
	case Try:
		b.WriteString(indent)
		b.WriteString(prefix(moveNo, whiteToMove))
		b.WriteString(branch.Step.Text)
		b.WriteString("?")
		b.WriteString(newline)
	case Zugzwang:
		b.WriteString(indent)
		b.WriteString(tab)
		b.WriteString("(zz ")
		b.WriteString(branch.Step.Text)
		b.WriteString(")")
		b.WriteString(newline)
	case Threat:
		b.WriteString(indent)
		b.WriteString(tab)
		b.WriteString("(")
		b.WriteString(branch.Step.Text)
		b.WriteString(")")
		b.WriteString(newline)
	case Refutation:
		b.WriteString(indent)
		b.WriteString(space)
		b.WriteString(prefix(moveNo, whiteToMove))
		b.WriteString(branch.Step.Text)
		b.WriteString("!")
		b.WriteString(newline)
	case Variation, Help2nd, Tempo2nd:
		b.WriteString(indent)
		b.WriteString(space)
		b.WriteString(prefix(moveNo, whiteToMove))
		b.WriteString(branch.Step.Text)
		b.WriteString(newline)
	case Continuation, Tempo1st, Help1st:
		b.WriteString(indent)
		b.WriteString(space)
		b.WriteString(prefix(moveNo, whiteToMove))
		b.WriteString(branch.Step.Text)
		b.WriteString(newline)
	}

	writeBranches(b, branch.Children, nextMoveNo, nextWhite, depth+1, newline, tab, space)
}

func prefix(moveNo int, whiteToMove bool) string {
	return strconv.Itoa(moveNo) + isWhiteMoveTag(whiteToMove)
}
