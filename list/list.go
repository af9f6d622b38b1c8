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

// Package list provides intrusive doubly-linked lists.
//
// A list is headed by a single forward pointer. The elements are doubly
// linked so that an arbitrary element can be removed without a need to
// traverse the list. New elements can be added to the list before or after
// an existing element or at the head of the list. A list may be traversed in
// either direction.
//
// Instead of pointer to previous node every node keeps address of the
// pointer that refers to it: either the head's forward pointer or the next
// pointer of the previous node. This makes Remove, InsertBefore and
// InsertAfter work without knowing the head, and the first node needs no
// special marker. Only Prev needs the head to tell the first node apart.
//
// Head takes only one pointer, so an array of heads can serve as hash table
// buckets.
package list

import (
	"iter"
	"unsafe"

	"github.com/wonder-mice/zf-queue/entry"
	"github.com/wonder-mice/zf-queue/internal/xdebug"
)

// Node is link entry to be embedded into list elements.
type Node struct {
	next  *Node
	pprev **Node // &head.first or &prev.next; nil if not on a list
}

// offset of Node.next inside Node; Prev converts &prev.next back to prev.
const nextOffset = unsafe.Offsetof(Node{}.next)

// Head is the head of a doubly-linked list.
//
// The zero value is an empty list ready to use. Head must not be copied
// while it has elements: the first node refers back into the head.
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

// Begin returns position of the first node for forward iteration until End.
func (h *Head) Begin() *Node { return h.first }

// End returns position past the last node.
func (h *Head) End() *Node { return nil }

// REnd returns position before the first node, where backward iteration ends.
func (h *Head) REnd() *Node { return nil }

// Next returns node following n, or nil if n is the last one.
func (n *Node) Next() *Node {
	return n.next
}

// Linked reports whether n is currently on a list.
func (n *Node) Linked() bool {
	return n.pprev != nil
}

// Prev returns node preceding n, or nil if n is the first node of h.
//
// n must be on list h.
func (h *Head) Prev(n *Node) *Node {
	if n.pprev == &h.first {
		return nil
	}
	return entry.Of[Node](unsafe.Pointer(n.pprev), nextOffset)
}

// InsertHead links n at the head of the list.
func (h *Head) InsertHead(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(!n.Linked(), "list: insert head of linked node")
	}
	n.next = h.first
	if n.next != nil {
		n.next.pprev = &n.next
	}
	h.first = n
	n.pprev = &h.first
}

// InsertBefore links n right before b.
//
// b must be on a list.
func (b *Node) InsertBefore(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(b.Linked(), "list: insert before unlinked node")
		xdebug.Assertf(!n.Linked(), "list: insert before of linked node")
	}
	n.pprev = b.pprev
	n.next = b
	*b.pprev = n
	b.pprev = &n.next
}

// InsertAfter links n right after b.
//
// b must be on a list.
func (b *Node) InsertAfter(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(b.Linked(), "list: insert after unlinked node")
		xdebug.Assertf(!n.Linked(), "list: insert after of linked node")
	}
	n.next = b.next
	if n.next != nil {
		n.next.pprev = &n.next
	}
	b.next = n
	n.pprev = &b.next
}

// Remove unlinks n from its list.
//
// n must be on a list.
func (n *Node) Remove() {
	if xdebug.Enabled {
		xdebug.Assertf(n.Linked(), "list: remove of unlinked node")
	}
	if n.next != nil {
		n.next.pprev = n.pprev
	}
	*n.pprev = n.next
	n.next = nil
	n.pprev = nil
}

// Swap exchanges contents of lists h and h2.
func (h *Head) Swap(h2 *Head) {
	h.first, h2.first = h2.first, h.first
	if h.first != nil {
		h.first.pprev = &h.first
	}
	if h2.first != nil {
		h2.first.pprev = &h2.first
	}
}

// All returns iterator over nodes of the list.
//
// The successor of a node is fetched before the node is yielded, so the
// loop body may remove the current node.
func (h *Head) All() iter.Seq[*Node] {
	return From(h.first)
}

// From returns iterator over nodes starting from n up to the end of its list.
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

// BackwardFrom returns iterator over nodes starting from n down to the first
// node of h.
//
// The predecessor of a node is fetched before the node is yielded, so the
// loop body may remove the current node.
func (h *Head) BackwardFrom(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for x := n; x != nil; {
			prev := h.Prev(x)
			if !yield(x) {
				return
			}
			x = prev
		}
	}
}
