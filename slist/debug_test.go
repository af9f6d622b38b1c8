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

//go:build zfqdebug

package slist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wonder-mice/zf-queue/internal/xdebug"
)

func TestDebugAssert(t *testing.T) {
	assert := require.New(t)

	assertFails := func(f func()) {
		t.Helper()
		defer func() {
			r := recover()
			_, ok := r.(*xdebug.AssertError)
			assert.True(ok, "panic value: %#v", r)
		}()
		f()
	}

	var h Head
	assertFails(func() { h.RemoveHead() })

	var n Node
	h.InsertHead(&n)
	assertFails(func() { n.RemoveAfter() })
}
