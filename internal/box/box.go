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

// Package box implements the promotion inventory: a colour -> order -> queue
// of pieces available for promotion, sized at problem setup to the
// worst-case number of promotions a side may make.
package box

import "github.com/frankkopp/moderato/internal/piece"

// Standard promotion orders. Fairy promotion orders used by a problem are
// assigned sequentially starting at OrderFirstFairy.
const (
	OrderQueen  = 1
	OrderRook   = 2
	OrderBishop = 3
	OrderKnight = 4

	OrderFirstFairy = 5
)

// queue is a double-ended queue of pieces, supporting the four operations
// promotion/unmake needs: take from the front, push a demotion onto the
// back, and their exact inverses.
type queue []piece.Piece

func (q *queue) popFront() (piece.Piece, bool) {
	if len(*q) == 0 {
		return piece.None, false
	}
	p := (*q)[0]
	*q = (*q)[1:]
	return p, true
}

func (q *queue) pushBack(p piece.Piece) {
	*q = append(*q, p)
}

func (q *queue) popBack() (piece.Piece, bool) {
	n := len(*q)
	if n == 0 {
		return piece.None, false
	}
	p := (*q)[n-1]
	*q = (*q)[:n-1]
	return p, true
}

func (q *queue) pushFront(p piece.Piece) {
	*q = append(queue{p}, *q...)
}

// Box is the promotion inventory for both colours.
type Box struct {
	queues [2]map[int]*queue
}

// New returns an empty Box.
func New() *Box {
	return &Box{queues: [2]map[int]*queue{{}, {}}}
}

func colourIndex(black bool) int {
	if black {
		return 1
	}
	return 0
}

// Stock initialises the queue for (black, order) with count pieces of kind.
// Called once at problem setup time, sized to the worst case number of
// promotions the colour may make.
func (b *Box) Stock(black bool, order int, kind piece.Kind, count int) {
	q := make(queue, count)
	for i := range q {
		q[i] = piece.Piece{Kind: kind, Black: black}
	}
	b.queues[colourIndex(black)][order] = &q
}

func (b *Box) queueFor(black bool, order int) *queue {
	q, ok := b.queues[colourIndex(black)][order]
	if !ok {
		q = &queue{}
		b.queues[colourIndex(black)][order] = q
	}
	return q
}

// HasStock reports whether the queue for (black, order) still holds a
// piece, i.e. whether a promotion to that order is currently available.
func (b *Box) HasStock(black bool, order int) bool {
	q := b.queueFor(black, order)
	return len(*q) > 0
}

// Orders returns the orders stocked for a colour, in ascending order. Used
// by pawn-promotion generation to enumerate every order the problem knows
// about for that colour.
func (b *Box) Orders(black bool) []int {
	m := b.queues[colourIndex(black)]
	orders := make([]int, 0, len(m))
	for order, q := range m {
		if len(*q) > 0 {
			orders = append(orders, order)
		}
	}
	// Stable, deterministic iteration order (map iteration is not).
	for i := 1; i < len(orders); i++ {
		for j := i; j > 0 && orders[j-1] > orders[j]; j-- {
			orders[j-1], orders[j] = orders[j], orders[j-1]
		}
	}
	return orders
}

// KindAt peeks at the piece kind the front of (black, order)'s queue would
// promote to, without consuming it. Movegen needs this to label a
// promotion move before the box is actually touched by Promote.
func (b *Box) KindAt(black bool, order int) piece.Kind {
	q := b.queueFor(black, order)
	if len(*q) == 0 {
		return piece.KindNone
	}
	return (*q)[0].Kind
}

// Promote takes the front piece of (black, order)'s queue and pushes the
// demoted pawn onto the back of the same queue. It returns the piece the
// pawn promotes to, and false if the queue is empty (order unavailable).
func (b *Box) Promote(black bool, order int, pawn piece.Piece) (piece.Piece, bool) {
	q := b.queueFor(black, order)
	p, ok := q.popFront()
	if !ok {
		return piece.None, false
	}
	q.pushBack(pawn)
	return p, true
}

// Unpromote is the exact inverse of Promote: pop the pawn pushed onto the
// back, push the promoted piece back onto the front.
func (b *Box) Unpromote(black bool, order int, promoted piece.Piece) {
	q := b.queueFor(black, order)
	pawn, ok := q.popBack()
	if !ok {
		panic("box: unpromote on empty queue, make/unmake mismatch")
	}
	_ = pawn
	q.pushFront(promoted)
}
