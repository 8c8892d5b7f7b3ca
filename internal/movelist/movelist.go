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

// Package movelist provides a small growable container of type move.Move,
// used as the generation sink threaded through piece move generators.
package movelist

import "github.com/frankkopp/moderato/internal/move"

// List is a slice of moves with the handful of operations the generator
// and search packages need.
type List []move.Move

// New returns an empty List with the given capacity hint.
func New(cap int) *List {
	l := make(List, 0, cap)
	return &l
}

// Add appends a move to the list.
func (l *List) Add(m move.Move) {
	*l = append(*l, m)
}

// Clear empties the list while keeping its backing array.
func (l *List) Clear() {
	*l = (*l)[:0]
}

// Len returns the number of moves currently stored.
func (l *List) Len() int {
	return len(*l)
}

// At returns the move at index i. Panics if i is out of bounds.
func (l *List) At(i int) move.Move {
	return (*l)[i]
}

// ForEach calls f for every move in the list in order.
func (l *List) ForEach(f func(m move.Move)) {
	for _, m := range *l {
		f(m)
	}
}
