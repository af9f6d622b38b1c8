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

package slist
// list of elements of known type

import (
	"iter"

	"github.com/wonder-mice/zf-queue/entry"
)

// List is singly-linked list of elements of type T linked via Node field
// selected at creation time.
//
// List embeds Head, so &l.Head can be passed to code working with plain
// nodes, and nodes linked by such code are seen by List as elements.
//
// Create List with Of; the zero value does not know its link field.
type List[T any] struct {
	Head
	link entry.Field[T, Node]
}

// Of returns empty list of T elements linked via field selected by link, e.g.
//
//	args := slist.Of(func(a *arg) *slist.Node { return &a.link })
func Of[T any](link func(*T) *Node) List[T] {
	return List[T]{link: entry.FieldOf(link)}
}

// Link returns reference to the link field of T.
func (l *List[T]) Link() entry.Field[T, Node] {
	return l.link
}

// Entry returns element that embeds node n, or nil for nil n.
func (l *List[T]) Entry(n *Node) *T {
	return l.link.Entry(n)
}

// Node returns link node of element e, or nil for nil e.
func (l *List[T]) Node(e *T) *Node {
	return l.link.Node(e)
}

// First returns first element of the list, or nil if the list is empty.
func (l *List[T]) First() *T { return l.Entry(l.Head.First()) }

// Begin returns the first element for iteration until End.
func (l *List[T]) Begin() *T { return l.First() }

// End returns position past the last element.
func (l *List[T]) End() *T { return nil }

// Next returns element following e, or nil if e is the last one.
func (l *List[T]) Next(e *T) *T { return l.Entry(l.Node(e).Next()) }

// InsertHead links e at the head of the list.
func (l *List[T]) InsertHead(e *T) { l.Head.InsertHead(l.Node(e)) }

// InsertAfter links e right after b.
func (l *List[T]) InsertAfter(b, e *T) { l.Node(b).InsertAfter(l.Node(e)) }

// RemoveHead unlinks the first element.
//
// The list must not be empty.
func (l *List[T]) RemoveHead() { l.Head.RemoveHead() }

// RemoveAfter unlinks the element following e.
func (l *List[T]) RemoveAfter(e *T) { l.Node(e).RemoveAfter() }

// Swap exchanges contents of lists l and l2.
func (l *List[T]) Swap(l2 *List[T]) {
	l.Head.Swap(&l2.Head)
	l.link, l2.link = l2.link, l.link
}

// All returns iterator over elements of the list.
//
// The loop body may unlink the current element.
func (l *List[T]) All() iter.Seq[*T] {
	return l.From(l.First())
}

// From returns iterator over elements starting from e.
func (l *List[T]) From(e *T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range From(l.Node(e)) {
			if !yield(l.Entry(n)) {
				return
			}
		}
	}
}
