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
)

type tItem struct {
	v    byte
	link Node
}

func str(q *Queue[tItem]) string {
	var s []byte
	for it := range q.All() {
		s = append(s, it.v)
	}
	return string(s)
}

func TestQueue(t *testing.T) {
	assert := require.New(t)

	link := func(it *tItem) *Node { return &it.link }
	q := Of(link)
	assert.True(q.Empty())
	assert.Nil(q.First())
	assert.Nil(q.Last())

	itemv := []tItem{{v: 'a'}, {v: 'b'}, {v: 'c'}, {v: 'd'}}
	a, b, c, d := &itemv[0], &itemv[1], &itemv[2], &itemv[3]

	q.InsertTail(b)
	q.InsertHead(a)
	q.InsertAfter(b, d)
	q.InsertAfter(b, c)
	assert.Equal("abcd", str(&q))
	assert.Same(a, q.First())
	assert.Same(a, q.Begin())
	assert.Same(d, q.Last())
	assert.Same(c, q.Next(b))
	assert.Same(q.End(), q.Next(d))

	// plain view of the same queue
	assert.Same(&a.link, q.Head.First())
	assert.Same(d, q.Entry(q.Head.Last()))
	assert.Same(&c.link, q.Node(c))

	q.RemoveAfter(c)
	assert.Same(c, q.Last())
	q.RemoveHead()
	assert.Equal("bc", str(&q))

	q2 := Of(link)
	q2.InsertTail(d)
	q.Concat(&q2)
	assert.Equal("bcd", str(&q))
	assert.True(q2.Empty())

	q.Swap(&q2)
	assert.True(q.Empty())
	assert.Equal("bcd", str(&q2))

	var from []byte
	for it := range q2.From(c) {
		from = append(from, it.v)
	}
	assert.Equal("cd", string(from))
}
