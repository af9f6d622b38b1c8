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

// Package xtesting provides infrastructure for testing intrusive containers.
//
// Every container shape is driven through a small adapter (Container) by the
// same ShapeTest* functions so that all shapes are verified against identical
// expectations. Elements are identified by integers in [0, NMax]; adapters
// map them to their own element objects.
package xtesting

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// NMax is the maximum number of elements shared tests put into a container.
//
// Containers are exercised with every size in [0, NMax].
const NMax = 4

// Container is the adapter shared tests use to drive a container.
type Container interface {
	// Init reinitializes the container to be empty.
	// Elements that were linked before must be considered unlinked.
	Init()

	Empty() bool

	// InsertHead links element i at the head of the container.
	InsertHead(i int)

	// Forward returns ids of elements in forward traversal order.
	Forward() []int

	// Remove unlinks element i.
	//
	// Shapes that cannot remove arbitrary nodes implement it via the
	// removal primitives they have (remove head / remove after).
	Remove(i int)
}

// TailContainer is Container that can append at tail.
type TailContainer interface {
	Container

	// InsertTail links element i at the tail of the container.
	InsertTail(i int)

	// Last returns id of the last element, or -1 if container is empty.
	Last() int
}

// Checker is handy wrapper around testing.TB to assert with pretty diffs.
type Checker struct {
	T testing.TB
}

// Ok1 fails the test if v is false.
func (c *Checker) Ok1(v bool) {
	c.T.Helper()
	if !v {
		c.T.Fatal("!ok")
	}
}

// AssertEq fails the test if have and want are not deeply equal.
func (c *Checker) AssertEq(subj string, have, want interface{}) {
	c.T.Helper()
	if !reflect.DeepEqual(have, want) {
		c.T.Fatalf("%s:\n%s", subj, pretty.Compare(have, want))
	}
}

// Seq returns [0, 1, ..., n-1].
func Seq(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

// Reversed returns copy of v in reverse order.
func Reversed(v []int) []int {
	r := slices.Clone(v)
	slices.Reverse(r)
	return r
}

// Without returns copy of v with element x removed.
func Without(v []int, x int) []int {
	r := make([]int, 0, len(v))
	for _, y := range v {
		if y != x {
			r = append(r, y)
		}
	}
	return r
}

// checkState verifies emptiness and forward order of c.
func checkState(c *Checker, subj string, ct Container, want []int) {
	c.T.Helper()

	have := ct.Forward()
	if have == nil {
		have = []int{}
	}
	if want == nil {
		want = []int{}
	}
	c.AssertEq(subj+": forward", have, want)

	if ct.Empty() != (len(want) == 0) {
		c.T.Fatalf("%s: empty = %v  ; want %v", subj, ct.Empty(), len(want) == 0)
	}
}

// ShapeTestInsertHead verifies that after inserting elements 0, 1, ..., n-1 at
// head, forward traversal yields n-1, ..., 1, 0.
func ShapeTestInsertHead(t *testing.T, ct Container) {
	c := &Checker{t}
	for n := 0; n <= NMax; n++ {
		ct.Init()
		checkState(c, fmt.Sprintf("n=%d: init", n), ct, nil)

		for i := 0; i < n; i++ {
			ct.InsertHead(i)
			checkState(c, fmt.Sprintf("n=%d: insert head %d", n, i), ct, Reversed(Seq(i+1)))
		}
	}
}

// ShapeTestInsertTail verifies that after appending elements 0, 1, ..., n-1 at
// tail, forward traversal yields 0, 1, ..., n-1 and the last element is n-1.
func ShapeTestInsertTail(t *testing.T, ct TailContainer) {
	c := &Checker{t}
	for n := 0; n <= NMax; n++ {
		ct.Init()
		c.AssertEq(fmt.Sprintf("n=%d: init: last", n), ct.Last(), -1)

		for i := 0; i < n; i++ {
			ct.InsertTail(i)
			subj := fmt.Sprintf("n=%d: insert tail %d", n, i)
			checkState(c, subj, ct, Seq(i+1))
			c.AssertEq(subj+": last", ct.Last(), i)
		}

		// mixing head and tail insertions keeps both ends right
		if n > 0 {
			ct.InsertHead(n)
			want := append([]int{n}, Seq(n)...)
			checkState(c, fmt.Sprintf("n=%d: insert head %d", n, n), ct, want)
			c.AssertEq(fmt.Sprintf("n=%d: last after insert head", n), ct.Last(), n-1)
		}
	}
}

// ShapeTestRemove verifies that removing any element from a container of size n
// leaves the other elements in their original relative order, and that
// removing elements one by one eventually empties the container.
func ShapeTestRemove(t *testing.T, ct Container) {
	c := &Checker{t}
	for n := 1; n <= NMax; n++ {
		for k := 0; k < n; k++ {
			ct.Init()
			for i := 0; i < n; i++ {
				ct.InsertHead(i)
			}
			order := Reversed(Seq(n))

			subj := fmt.Sprintf("n=%d: remove %d", n, k)
			ct.Remove(k)
			order = Without(order, k)
			checkState(c, subj, ct, order)

			// drain the rest starting from k's neighbours
			for len(order) > 0 {
				x := order[(k+len(order))%len(order)]
				ct.Remove(x)
				order = Without(order, x)
				checkState(c, fmt.Sprintf("%s: drain %d", subj, x), ct, order)
			}

			// the container is usable again after it became empty
			ct.InsertHead(k)
			checkState(c, subj+": reuse", ct, []int{k})
		}
	}
}
