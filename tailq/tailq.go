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

// Package tailq provides intrusive doubly-linked tail queues.
//
// A tail queue is headed by a pair of pointers, one to the head of the list
// and the other to the tail of the list. The elements are doubly linked so
// that an arbitrary element can be removed without a need to traverse the
// list. New elements can be added to the list before or after an existing
// element, at the head of the list, or at the end of the list. A tail queue
// may be traversed in either direction.
//
// The head embeds one Node as sentinel (root): root.next is the first node
// and root.prev is the last one. Every node's prev refers to the link entry
// preceding it: the previous node, or root for the first node. Thus for any
// node n, n.prev.prev.next is n's predecessor: when n is first, n.prev is
// root, root.prev is the last node, and the last node's next is nil. The
// same relation, applied to root, gives the last node, so neither Prev nor
// Last need to special-case the first node or an empty queue.
package tailq

import (
	"iter"

	"github.com/wonder-mice/zf-queue/internal/xdebug"
)

// Node is link entry to be embedded into queue elements.
type Node struct {
	next *Node
	prev *Node // previous link entry (node or root); nil if not on a queue
}

// Linked reports whether n is currently on a queue.
func (n *Node) Linked() bool {
	return n.prev != nil
}

// Head is the head of a doubly-linked tail queue.
//
// The zero value is an empty queue ready to use. Head must not be copied
// after first use: root refers to itself and the first node refers to root.
type Head struct {
	root Node
}

// Init initializes h to be empty.
func (h *Head) Init() {
	h.root.next = nil
	h.root.prev = &h.root
}

// lazyInit initializes zero value head.
func (h *Head) lazyInit() {
	if h.root.prev == nil {
		h.root.prev = &h.root
	}
}

// Empty reports whether h has no elements.
func (h *Head) Empty() bool {
	return h.root.next == nil
}

// First returns first node of the queue, or nil if the queue is empty.
func (h *Head) First() *Node {
	return h.root.next
}

// Last returns last node of the queue, or nil if the queue is empty.
func (h *Head) Last() *Node {
	if h.root.prev == nil {
		return nil
	}
	return h.root.prev.prev.next
}

// Begin returns position of the first node for forward iteration until End.
func (h *Head) Begin() *Node { return h.root.next }

// End returns position past the last node.
func (h *Head) End() *Node { return nil }

// RBegin returns position of the last node for backward iteration until REnd.
func (h *Head) RBegin() *Node { return h.Last() }

// REnd returns position before the first node.
func (h *Head) REnd() *Node { return nil }

// Next returns node following n, or nil if n is the last one.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns node preceding n, or nil if n is the first one.
//
// n must be on a queue.
func (n *Node) Prev() *Node {
	return n.prev.prev.next
}

// InsertHead links n at the head of the queue.
func (h *Head) InsertHead(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(!n.Linked(), "tailq: insert head of linked node")
	}
	n.next = h.root.next
	if n.next != nil {
		n.next.prev = n
	} else {
		h.root.prev = n
	}
	h.root.next = n
	n.prev = &h.root
}

// InsertTail links n at the tail of the queue.
func (h *Head) InsertTail(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(!n.Linked(), "tailq: insert tail of linked node")
	}
	h.lazyInit()
	n.next = nil
	n.prev = h.root.prev
	h.root.prev.next = n
	h.root.prev = n
}

// InsertBefore links n right before b.
//
// b must be on a queue.
func (b *Node) InsertBefore(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(b.Linked(), "tailq: insert before unlinked node")
		xdebug.Assertf(!n.Linked(), "tailq: insert before of linked node")
	}
	n.next = b
	n.prev = b.prev
	b.prev.next = n
	b.prev = n
}

// InsertAfter links n right after b.
//
// b must be on queue h.
func (h *Head) InsertAfter(b, n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(h.contains(b), "tailq: insert after node not on this queue")
		xdebug.Assertf(!n.Linked(), "tailq: insert after of linked node")
	}
	n.next = b.next
	if n.next != nil {
		n.next.prev = n
	} else {
		h.root.prev = n
	}
	b.next = n
	n.prev = b
}

// Remove unlinks n from the queue.
//
// n must be on queue h.
func (h *Head) Remove(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(h.contains(n), "tailq: remove of node not on this queue")
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		h.root.prev = n.prev
	}
	n.prev.next = n.next
	n.next = nil
	n.prev = nil
}

// Concat appends all nodes of h2 to the tail of h and leaves h2 empty.
func (h *Head) Concat(h2 *Head) {
	if h2.Empty() {
		return
	}
	h.lazyInit()
	first := h2.root.next
	h.root.prev.next = first
	first.prev = h.root.prev
	h.root.prev = h2.root.prev
	h2.Init()
}

// Swap exchanges contents of queues h and h2.
func (h *Head) Swap(h2 *Head) {
	h.root, h2.root = h2.root, h.root
	h.fixRoot()
	h2.fixRoot()
}

// fixRoot makes links to root valid after root was moved.
func (h *Head) fixRoot() {
	if h.root.next != nil {
		h.root.next.prev = &h.root
	} else {
		h.root.prev = &h.root
	}
}

// contains reports whether n is on h; it is O(n) and used only by assertions.
func (h *Head) contains(n *Node) bool {
	for x := range h.All() {
		if x == n {
			return true
		}
	}
	return false
}

// All returns iterator over nodes of the queue.
//
// The successor of a node is fetched before the node is yielded, so the
// loop body may remove the current node.
func (h *Head) All() iter.Seq[*Node] {
	return From(h.root.next)
}

// Backward returns iterator over nodes of the queue from last to first.
//
// The loop body may remove the current node.
func (h *Head) Backward() iter.Seq[*Node] {
	return BackwardFrom(h.Last())
}

// From returns iterator over nodes starting from n up to the end of its queue.
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
// node of its queue.
func BackwardFrom(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for x := n; x != nil; {
			prev := x.Prev()
			if !yield(x) {
				return
			}
			x = prev
		}
	}
}
