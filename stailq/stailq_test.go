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

package stailq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wonder-mice/zf-queue/entry"
	"github.com/wonder-mice/zf-queue/internal/xtesting"
)

type tElem struct {
	id   int
	a    [3]uint32
	node Node
	b    [5]uint32
}

var tLink = entry.FieldOf(func(e *tElem) *Node { return &e.node })

func mkelemv(n int) []tElem {
	ev := make([]tElem, n)
	for i := range ev {
		ev[i].id = i
	}
	return ev
}

func ids(h *Head) []int {
	v := []int{}
	for n := range h.All() {
		v = append(v, tLink.Entry(n).id)
	}
	return v
}

// tQueue adapts Head to xtesting.TailContainer.
type tQueue struct {
	h     Head
	elemv []tElem
}

func (q *tQueue) Init()            { q.h.Init() }
func (q *tQueue) Empty() bool      { return q.h.Empty() }
func (q *tQueue) InsertHead(i int) { q.h.InsertHead(&q.elemv[i].node) }
func (q *tQueue) InsertTail(i int) { q.h.InsertTail(&q.elemv[i].node) }
func (q *tQueue) Forward() []int   { return ids(&q.h) }

func (q *tQueue) Last() int {
	e := tLink.Entry(q.h.Last())
	if e == nil {
		return -1
	}
	return e.id
}

func (q *tQueue) Remove(i int) {
	x := &q.elemv[i].node
	if q.h.First() == x {
		q.h.RemoveHead()
		return
	}
	for n := range q.h.All() {
		if n.Next() == x {
			q.h.RemoveAfter(n)
			return
		}
	}
	panic("remove: element not on queue")
}

func TestShape(t *testing.T) {
	q := &tQueue{elemv: mkelemv(xtesting.NMax + 1)}
	xtesting.ShapeTestInsertHead(t, q)
	xtesting.ShapeTestInsertTail(t, q)
	xtesting.ShapeTestRemove(t, q)

	// the same starting from zero value instead of Init
	q = &tQueue{elemv: mkelemv(xtesting.NMax + 1)}
	xtesting.ShapeTestInsertTail(t, q)
}

func TestInitializer(t *testing.T) {
	assert := require.New(t)

	var h Head
	assert.True(h.Empty())
	assert.Nil(h.First())
	assert.Nil(h.Last())
	assert.Same(h.End(), h.Begin())

	// zero value accepts tail insertion right away
	var n Node
	h.InsertTail(&n)
	assert.Same(&n, h.First())
	assert.Same(&n, h.Last())

	h.Init()
	assert.True(h.Empty())
	assert.Nil(h.Last())
}

func TestRemoveHead(t *testing.T) {
	assert := require.New(t)

	var h Head
	ev := mkelemv(3)
	a, b, c := &ev[0].node, &ev[1].node, &ev[2].node
	h.InsertTail(a)
	h.InsertTail(b)
	h.InsertTail(c)
	h.RemoveHead()
	assert.Same(b, h.First())
	assert.Same(c, h.Last())
	assert.Nil(a.Next())

	h.RemoveHead()
	h.RemoveHead()
	assert.True(h.Empty())
	assert.Nil(h.Last())

	// tail must be reset to the sentinel when the queue became empty
	h.InsertTail(b)
	assert.Same(b, h.First())
	assert.Same(b, h.Last())
}

func TestInsertAfter(t *testing.T) {
	X := &xtesting.Checker{T: t}

	var h Head
	ev := mkelemv(4)
	h.InsertHead(&ev[0].node)
	X.Ok1(h.Last() == &ev[0].node)

	h.InsertAfter(&ev[0].node, &ev[2].node)
	X.Ok1(h.Last() == &ev[2].node)
	h.InsertAfter(&ev[0].node, &ev[1].node)
	X.Ok1(h.Last() == &ev[2].node)
	X.AssertEq("0 1 2", ids(&h), []int{0, 1, 2})

	h.InsertTail(&ev[3].node)
	X.AssertEq("0 1 2 3", ids(&h), []int{0, 1, 2, 3})
}

func TestRemoveAfter(t *testing.T) {
	X := &xtesting.Checker{T: t}

	var h Head
	ev := mkelemv(4)
	for i := range ev {
		h.InsertTail(&ev[i].node)
	}

	h.RemoveAfter(&ev[2].node)
	X.Ok1(h.Last() == &ev[2].node)
	X.AssertEq("remove last", ids(&h), []int{0, 1, 2})

	h.RemoveAfter(&ev[0].node)
	X.Ok1(h.Last() == &ev[2].node)
	X.AssertEq("remove middle", ids(&h), []int{0, 2})

	// appending after removal of the last goes after new last
	h.InsertTail(&ev[3].node)
	X.AssertEq("append", ids(&h), []int{0, 2, 3})
}

func TestConcat(t *testing.T) {
	X := &xtesting.Checker{T: t}

	var h1, h2 Head
	ev := mkelemv(4)
	h1.InsertTail(&ev[0].node)
	h1.InsertTail(&ev[1].node)
	h2.InsertTail(&ev[2].node)
	h2.InsertTail(&ev[3].node)

	h1.Concat(&h2)
	X.AssertEq("h1", ids(&h1), []int{0, 1, 2, 3})
	X.Ok1(h1.Last() == &ev[3].node)
	X.Ok1(h2.Empty())
	X.Ok1(h2.Last() == nil)

	// concat of empty is noop
	h1.Concat(&h2)
	X.AssertEq("h1 + empty", ids(&h1), []int{0, 1, 2, 3})

	// concat into empty
	var h3 Head
	h3.Concat(&h1)
	X.AssertEq("h3", ids(&h3), []int{0, 1, 2, 3})
	X.Ok1(h1.Empty())
	h1.InsertTail(&ev[0].node)
	X.AssertEq("h1 reuse", ids(&h1), []int{0})
}

func TestSwap(t *testing.T) {
	X := &xtesting.Checker{T: t}

	var h1, h2 Head
	ev := mkelemv(3)
	h1.InsertTail(&ev[0].node)
	h1.InsertTail(&ev[1].node)

	h1.Swap(&h2)
	X.Ok1(h1.Empty())
	X.AssertEq("h2", ids(&h2), []int{0, 1})
	X.Ok1(h2.Last() == &ev[1].node)

	// both tails stay usable after swap
	h1.InsertTail(&ev[2].node)
	X.AssertEq("h1", ids(&h1), []int{2})
	X.Ok1(h1.Last() == &ev[2].node)

	h1.Swap(&h2)
	X.AssertEq("h1 swapped back", ids(&h1), []int{0, 1})
	X.AssertEq("h2 swapped back", ids(&h2), []int{2})
}

func TestIter(t *testing.T) {
	X := &xtesting.Checker{T: t}

	var h Head
	ev := mkelemv(4)
	for i := range ev {
		h.InsertTail(&ev[i].node)
	}

	var fifo []int
	for n := range h.All() {
		h.RemoveHead()
		fifo = append(fifo, tLink.Entry(n).id)
	}
	X.AssertEq("fifo", fifo, []int{0, 1, 2, 3})
	X.Ok1(h.Empty())

	for i := range ev {
		h.InsertTail(&ev[i].node)
	}
	var from []int
	for n := range From(&ev[2].node) {
		from = append(from, tLink.Entry(n).id)
	}
	X.AssertEq("from", from, []int{2, 3})
}
