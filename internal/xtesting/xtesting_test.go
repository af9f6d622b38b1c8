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

package xtesting

import (
	"slices"
	"testing"
)

// sliceContainer is reference Container implementation used to test the
// shared tests themselves.
type sliceContainer struct {
	v []int
}

func (s *sliceContainer) Init()            { s.v = nil }
func (s *sliceContainer) Empty() bool      { return len(s.v) == 0 }
func (s *sliceContainer) InsertHead(i int) { s.v = append([]int{i}, s.v...) }
func (s *sliceContainer) InsertTail(i int) { s.v = append(s.v, i) }
func (s *sliceContainer) Forward() []int   { return slices.Clone(s.v) }
func (s *sliceContainer) Remove(i int)     { s.v = Without(s.v, i) }

func (s *sliceContainer) Last() int {
	if len(s.v) == 0 {
		return -1
	}
	return s.v[len(s.v)-1]
}

func TestSharedTests(t *testing.T) {
	s := &sliceContainer{}
	ShapeTestInsertHead(t, s)
	ShapeTestInsertTail(t, s)
	ShapeTestRemove(t, s)
}

func TestHelpers(t *testing.T) {
	c := &Checker{t}
	c.AssertEq("seq", Seq(3), []int{0, 1, 2})
	c.AssertEq("seq0", Seq(0), []int{})
	c.AssertEq("reversed", Reversed([]int{1, 2, 3}), []int{3, 2, 1})
	c.AssertEq("without", Without([]int{1, 2, 3}, 2), []int{1, 3})
	c.Ok1(len(Without(nil, 1)) == 0)
}
