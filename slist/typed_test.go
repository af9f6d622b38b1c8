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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tArg struct {
	value string
	link  Node
}

func values(l *List[tArg]) []string {
	v := []string{}
	for a := range l.All() {
		v = append(v, a.value)
	}
	return v
}

func TestList(t *testing.T) {
	assert := require.New(t)

	l := Of(func(a *tArg) *Node { return &a.link })
	assert.True(l.Empty())
	assert.Nil(l.First())
	assert.Same(l.End(), l.Begin())

	x := &tArg{value: "x"}
	y := &tArg{value: "y"}
	z := &tArg{value: "z"}

	l.InsertHead(x)
	l.InsertHead(z)
	l.InsertAfter(z, y)
	assert.Same(z, l.First())
	assert.Same(y, l.Next(z))
	assert.Same(x, l.Next(y))
	assert.Nil(l.Next(x))
	assert.Equal([]string{"z", "y", "x"}, values(&l))

	// typed and plain views refer to the same nodes
	assert.Same(&z.link, l.Head.First())
	assert.Same(z, l.Entry(l.Head.First()))
	assert.Same(&y.link, l.Node(y))

	w := &tArg{value: "w"}
	l.Head.InsertHead(&w.link)
	assert.Same(w, l.First())

	l.RemoveAfter(z)
	assert.Equal([]string{"w", "z", "x"}, values(&l))
	l.RemoveHead()
	assert.Equal([]string{"z", "x"}, values(&l))

	var from []string
	for a := range l.From(x) {
		from = append(from, a.value)
	}
	assert.Equal([]string{"x"}, from)

	l2 := Of(func(a *tArg) *Node { return &a.link })
	l.Swap(&l2)
	assert.True(l.Empty())
	assert.Equal([]string{"z", "x"}, values(&l2))
}
