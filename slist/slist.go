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

// Package slist provides intrusive singly-linked lists.
//
// A singly-linked list is headed by a single forward pointer. The elements
// are singly linked for minimum space and pointer manipulation overhead at
// the expense of O(n) removal for arbitrary elements. New elements can be
// added to the list after an existing element or at the head of the list.
// Elements being removed from the head of the list should use RemoveHead.
// A singly-linked list may only be traversed in the forward direction.
// Singly-linked lists are ideal for applications with large datasets and few
// or no removals or for implementing a LIFO queue.
//
// Elements embed Node and the list links those nodes; the list never
// allocates nor frees anything. To get from a node back to the element use
// package entry, or List which does it automatically.
//
// Preconditions (list is not empty for RemoveHead, node has a successor for
// RemoveAfter) are not checked unless built with zfqdebug tag. Inserting a
// node that is already on a list is never detected: the last node of a list
// has nil next just like an unlinked one.
package slist

import (
	"iter"

	"github.com/wonder-mice/zf-queue/internal/xdebug"
)

// Node is link entry to be embedded into list elements.
type Node struct {
	next *Node
}

// Head is the head of a singly-linked list.
//
// The zero value is an empty list ready to use.
type Head struct {
	first *Node
}

// Init initializes h to be empty.
func (h *Head) Init() {
	h.first = nil
}

// Empty reports whether h has no elements.
func (h *Head) Empty() bool {
	return h.first == nil
}

// First returns first node of the list, or nil if the list is empty.
func (h *Head) First() *Node {
	return h.first
}

// Begin returns position of the first node for iteration until End.
func (h *Head) Begin() *Node { return h.first }

// End returns position past the last node.
func (h *Head) End() *Node { return nil }

// Next returns node following n, or nil if n is the last one.
func (n *Node) Next() *Node {
	return n.next
}

// InsertHead links n at the head of the list.
func (h *Head) InsertHead(n *Node) {
	n.next = h.first
	h.first = n
}

// InsertAfter links n right after b.
//
// b must be on a list.
func (b *Node) InsertAfter(n *Node) {
	n.next = b.next
	b.next = n
}

// RemoveHead unlinks the first node.
//
// The list must not be empty.
func (h *Head) RemoveHead() {
	if xdebug.Enabled {
		xdebug.Assertf(h.first != nil, "slist: remove head of empty list")
	}
	n := h.first
	h.first = n.next
	n.next = nil
}

// RemoveAfter unlinks the node following n.
//
// n must have a successor.
func (n *Node) RemoveAfter() {
	if xdebug.Enabled {
		xdebug.Assertf(n.next != nil, "slist: remove after last node")
	}
	x := n.next
	n.next = x.next
	x.next = nil
}

// Swap exchanges contents of lists h and h2.
func (h *Head) Swap(h2 *Head) {
	h.first, h2.first = h2.first, h.first
}

// All returns iterator over nodes of the list.
//
// The successor of a node is fetched before the node is yielded, so the
// loop body may unlink the current node.
func (h *Head) All() iter.Seq[*Node] {
	return From(h.first)
}

// From returns iterator over nodes starting from n up to the end of its list.
//
// Like with All, the loop body may unlink the current node.
func From(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for x := n; x != nil; {
			next := x.next
			if !yield(x) {
				return
			}
			x = next
		}
	}
}
