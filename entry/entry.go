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

// Package entry provides lookup of an object by address of a link node
// embedded into it.
//
// Intrusive containers (see packages slist, stailq, list and tailq) link
// together nodes that live inside user objects. Having a node, entry finds
// back the object that embeds it:
//
//	type item struct {
//		value string
//		link  slist.Node
//	}
//
//	it := entry.Of[item](unsafe.Pointer(n), unsafe.Offsetof(item{}.link))
//
// or, with the field reference checked by the compiler:
//
//	var itemLink = entry.FieldOf(func(it *item) *slist.Node { return &it.link })
//	it := itemLink.Entry(n)
//
// Nothing is verified at runtime: the node must really be embedded at that
// offset into a live object of the stated type.
package entry

import (
	"fmt"
	"unsafe"
)

// Of returns pointer to object of type T which has, at byte offset offset,
// the field pointed to by node.
//
// Of(nil, ...) returns nil.
func Of[T any](node unsafe.Pointer, offset uintptr) *T {
	if node == nil {
		return nil
	}
	return (*T)(unsafe.Add(node, -int(offset)))
}

// Field is a reference to field of type N inside object of type T.
//
// It is Go analogue of C++ member pointer `N T::*`. Create it with FieldOf.
type Field[T, N any] struct {
	offset uintptr
}

// FieldOf returns reference to the field selected by link.
//
// link must return address of a field of its argument, e.g.
//
//	func(e *T) *N { return &e.node }
//
// The offset of the field is found by applying link to a probe object,
// similarly to how offsetof is computed on a null-based object in C. FieldOf
// panics if link returns a pointer that is not inside the probe.
func FieldOf[T, N any](link func(*T) *N) Field[T, N] {
	probe := new(T)
	fp := link(probe)

	base := uintptr(unsafe.Pointer(probe))
	addr := uintptr(unsafe.Pointer(fp))
	if fp == nil || addr < base || addr+unsafe.Sizeof(*fp) > base+unsafe.Sizeof(*probe) {
		var t T
		var n N
		panic(fmt.Sprintf("entry: link does not select %T field inside %T", n, t))
	}

	return Field[T, N]{offset: addr - base}
}

// Offset returns byte offset of the field inside T.
func (f Field[T, N]) Offset() uintptr {
	return f.offset
}

// Entry returns object that embeds node n.
//
// Entry(nil) returns nil.
func (f Field[T, N]) Entry(n *N) *T {
	return Of[T](unsafe.Pointer(n), f.offset)
}

// Node returns address of the field inside object e.
//
// Node(nil) returns nil.
func (f Field[T, N]) Node(e *T) *N {
	if e == nil {
		return nil
	}
	return (*N)(unsafe.Add(unsafe.Pointer(e), f.offset))
}
