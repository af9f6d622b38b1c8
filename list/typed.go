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

package list
// list of elements of known type

import (
	"iter"

	"github.com/wonder-mice/zf-queue/entry"
)

// List is doubly-linked list of elements of type T linked via Node field
// selected at creation time.
//
// List embeds Head, so &l.Head can be passed to code working with plain
// nodes. Create List with Of.
type List[T any] struct {
	Head
	link entry.Field[T, Node]
}

// Of returns empty list of T elements linked via field selected by link.
func Of[T any](link func(*T) *Node) List[T] {
	return List[T]{link: entry.FieldOf(link)}
}

// Link returns reference to the link field of T.
func (l *List[T]) Link() entry.Field[T, Node] { return l.link }

// Entry returns element that embeds node n, or nil for nil n.
func (l *List[T]) Entry(n *Node) *T { return l.link.Entry(n) }

// Node returns link node of element e, or nil for nil e.
func (l *List[T]) Node(e *T) *Node { return l.link.Node(e) }

func (l *List[T]) First() *T    { return l.Entry(l.Head.First()) }
func (l *List[T]) Begin() *T    { return l.First() }
func (l *List[T]) End() *T      { return nil }
func (l *List[T]) REnd() *T     { return nil }
func (l *List[T]) Next(e *T) *T { return l.Entry(l.Node(e).Next()) }
func (l *List[T]) Prev(e *T) *T { return l.Entry(l.Head.Prev(l.Node(e))) }

func (l *List[T]) InsertHead(e *T)      { l.Head.InsertHead(l.Node(e)) }
func (l *List[T]) InsertBefore(b, e *T) { l.Node(b).InsertBefore(l.Node(e)) }
func (l *List[T]) InsertAfter(b, e *T)  { l.Node(b).InsertAfter(l.Node(e)) }
func (l *List[T]) Remove(e *T)          { l.Node(e).Remove() }

// Swap exchanges contents of lists l and l2.
func (l *List[T]) Swap(l2 *List[T]) {
	l.Head.Swap(&l2.Head)
	l.link, l2.link = l2.link, l.link
}

// All returns iterator over elements of the list.
//
// The loop body may remove the current element.
func (l *List[T]) All() iter.Seq[*T] {
	return l.seq(From(l.Head.First()))
}

// From returns iterator over elements starting from e.
func (l *List[T]) From(e *T) iter.Seq[*T] {
	return l.seq(From(l.Node(e)))
}

// BackwardFrom returns iterator over elements starting from e down to the
// first element.
func (l *List[T]) BackwardFrom(e *T) iter.Seq[*T] {
	return l.seq(l.Head.BackwardFrom(l.Node(e)))
}

// seq converts iterator over nodes to iterator over elements.
func (l *List[T]) seq(nodes iter.Seq[*Node]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range nodes {
			if !yield(l.Entry(n)) {
				return
			}
		}
	}
}
