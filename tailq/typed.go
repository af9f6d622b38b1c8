// Copyright (C) 2017-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

package tailq
// queue of elements of known type

import (
	"iter"

	"github.com/wonder-mice/zf-queue/entry"
)

// Queue is doubly-linked tail queue of elements of type T linked via Node
// field selected at creation time.
//
// Queue embeds Head, so &q.Head can be passed to code working with plain
// nodes, e.g. to move elements between typed and untyped queues. Create
// Queue with Of; like Head it must not be copied after first use.
type Queue[T any] struct {
	Head
	link entry.Field[T, Node]
}

// Of returns empty queue of T elements linked via field selected by link.
func Of[T any](link func(*T) *Node) Queue[T] {
	return Queue[T]{link: entry.FieldOf(link)}
}

// InitLink initializes q to be empty queue of elements linked via field
// selected by link.
//
// It is handy to initialize Queue embedded into other objects.
func (q *Queue[T]) InitLink(link func(*T) *Node) {
	q.Head.Init()
	q.link = entry.FieldOf(link)
}

// Link returns reference to the link field of T.
func (q *Queue[T]) Link() entry.Field[T, Node] { return q.link }

// Entry returns element that embeds node n, or nil for nil n.
func (q *Queue[T]) Entry(n *Node) *T { return q.link.Entry(n) }

// Node returns link node of element e, or nil for nil e.
func (q *Queue[T]) Node(e *T) *Node { return q.link.Node(e) }

func (q *Queue[T]) First() *T    { return q.Entry(q.Head.First()) }
func (q *Queue[T]) Last() *T     { return q.Entry(q.Head.Last()) }
func (q *Queue[T]) Begin() *T    { return q.First() }
func (q *Queue[T]) End() *T      { return nil }
func (q *Queue[T]) RBegin() *T   { return q.Last() }
func (q *Queue[T]) REnd() *T     { return nil }
func (q *Queue[T]) Next(e *T) *T { return q.Entry(q.Node(e).Next()) }
func (q *Queue[T]) Prev(e *T) *T { return q.Entry(q.Node(e).Prev()) }

func (q *Queue[T]) InsertHead(e *T)      { q.Head.InsertHead(q.Node(e)) }
func (q *Queue[T]) InsertTail(e *T)      { q.Head.InsertTail(q.Node(e)) }
func (q *Queue[T]) InsertBefore(b, e *T) { q.Node(b).InsertBefore(q.Node(e)) }
func (q *Queue[T]) InsertAfter(b, e *T)  { q.Head.InsertAfter(q.Node(b), q.Node(e)) }
func (q *Queue[T]) Remove(e *T)          { q.Head.Remove(q.Node(e)) }

// Concat appends all elements of q2 to the tail of q and leaves q2 empty.
func (q *Queue[T]) Concat(q2 *Queue[T]) { q.Head.Concat(&q2.Head) }

// Swap exchanges contents of queues q and q2.
func (q *Queue[T]) Swap(q2 *Queue[T]) {
	q.Head.Swap(&q2.Head)
	q.link, q2.link = q2.link, q.link
}

// All returns iterator over elements of the queue.
//
// The loop body may remove the current element.
func (q *Queue[T]) All() iter.Seq[*T] { return q.seq(q.Head.All()) }

// Backward returns iterator over elements of the queue from last to first.
func (q *Queue[T]) Backward() iter.Seq[*T] { return q.seq(q.Head.Backward()) }

// From returns iterator over elements starting from e.
func (q *Queue[T]) From(e *T) iter.Seq[*T] { return q.seq(From(q.Node(e))) }

// BackwardFrom returns iterator over elements starting from e down to the
// first element.
func (q *Queue[T]) BackwardFrom(e *T) iter.Seq[*T] { return q.seq(BackwardFrom(q.Node(e))) }

// seq converts iterator over nodes to iterator over elements.
func (q *Queue[T]) seq(nodes iter.Seq[*Node]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range nodes {
			if !yield(q.Entry(n)) {
				return
			}
		}
	}
}
