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

// Package stailq provides intrusive singly-linked tail queues.
//
// A singly-linked tail queue is headed by a pair of pointers, one to the head
// of the list and the other to the tail of the list. The elements are singly
// linked for minimum space and pointer manipulation overhead at the expense
// of O(n) removal for arbitrary elements. New elements can be added to the
// list after an existing element, at the head of the list, or at the end of
// the list. Elements being removed from the head of the tail queue should use
// RemoveHead. A singly-linked tail queue may only be traversed in the forward
// direction. Singly-linked tail queues are ideal for applications with large
// datasets and few or no removals or for implementing a FIFO queue.
//
// The forward pointer of the head is itself a Node (sentinel), and the tail
// pointer refers to the sentinel when the queue is empty. This way there is
// always a node to append after and InsertTail does not branch.
//
// Preconditions (queue is not empty for RemoveHead, node has a successor for
// RemoveAfter) are not checked unless built with zfqdebug tag. As with slist,
// inserting a node that is already on a queue is never detected.
package stailq

import (
	"iter"

	"github.com/wonder-mice/zf-queue/internal/xdebug"
)

// Node is link entry to be embedded into queue elements.
type Node struct {
	next *Node
}

// Head is the head of a singly-linked tail queue.
//
// The zero value is an empty queue ready to use. Head must not be copied
// after first use: its tail pointer may refer to the head itself.
type Head struct {
	first Node  // sentinel; first.next is the first node
	last  *Node // last node, or &first if empty; nil means &first
}

// Init initializes h to be empty.
func (h *Head) Init() {
	h.first.next = nil
	h.last = &h.first
}

// tail returns node to append after.
func (h *Head) tail() *Node {
	if h.last == nil {
		h.last = &h.first
	}
	return h.last
}

// Empty reports whether h has no elements.
func (h *Head) Empty() bool {
	return h.first.next == nil
}

// First returns first node of the queue, or nil if the queue is empty.
func (h *Head) First() *Node {
	return h.first.next
}

// Last returns last node of the queue, or nil if the queue is empty.
func (h *Head) Last() *Node {
	if h.first.next == nil {
		return nil
	}
	return h.last
}

// Begin returns position of the first node for iteration until End.
func (h *Head) Begin() *Node { return h.first.next }

// End returns position past the last node.
func (h *Head) End() *Node { return nil }

// Next returns node following n, or nil if n is the last one.
func (n *Node) Next() *Node {
	return n.next
}

// InsertHead links n at the head of the queue.
func (h *Head) InsertHead(n *Node) {
	n.next = h.first.next
	if n.next == nil {
		h.last = n
	}
	h.first.next = n
}

// InsertTail links n at the tail of the queue.
func (h *Head) InsertTail(n *Node) {
	n.next = nil
	h.tail().next = n
	h.last = n
}

// InsertAfter links n right after p.
//
// p must be on queue h.
func (h *Head) InsertAfter(p, n *Node) {
	n.next = p.next
	if n.next == nil {
		h.last = n
	}
	p.next = n
}

// RemoveHead unlinks the first node.
//
// The queue must not be empty.
func (h *Head) RemoveHead() {
	if xdebug.Enabled {
		xdebug.Assertf(h.first.next != nil, "stailq: remove head of empty queue")
	}
	n := h.first.next
	h.first.next = n.next
	if h.first.next == nil {
		h.last = &h.first
	}
	n.next = nil
}

// RemoveAfter unlinks the node following n.
//
// n must be on queue h and have a successor.
func (h *Head) RemoveAfter(n *Node) {
	if xdebug.Enabled {
		xdebug.Assertf(n.next != nil, "stailq: remove after last node")
	}
	x := n.next
	n.next = x.next
	if n.next == nil {
		h.last = n
	}
	x.next = nil
}

// Concat appends all nodes of h2 to the tail of h and leaves h2 empty.
func (h *Head) Concat(h2 *Head) {
	if h2.Empty() {
		return
	}
	h.tail().next = h2.first.next
	h.last = h2.last
	h2.Init()
}

// Swap exchanges contents of queues h and h2.
func (h *Head) Swap(h2 *Head) {
	h.first.next, h2.first.next = h2.first.next, h.first.next
	h.last, h2.last = h2.last, h.last
	if h.first.next == nil {
		h.last = &h.first
	}
	if h2.first.next == nil {
		h2.last = &h2.first
	}
}

// All returns iterator over nodes of the queue.
//
// The successor of a node is fetched before the node is yielded, so the
// loop body may unlink the current node.
func (h *Head) All() iter.Seq[*Node] {
	return From(h.first.next)
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
