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

package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTask(t *testing.T) {
	assert := require.New(t)

	ctx := context.Background()
	assert.Nil(Current(ctx))
	assert.Equal("", Current(ctx).String())

	ctx1 := Running(ctx, "check")
	ctx2 := Runningf(ctx1, "shape %s", "slist")
	assert.Equal("check", Current(ctx1).String())
	assert.Equal("check: shape slist", Current(ctx2).String())
	assert.Same(Current(ctx1), Current(ctx2).Parent)

	var err error
	ErrContext(&err, ctx2)
	assert.NoError(err)

	err = errors.New("mismatch")
	ErrContext(&err, ctx2)
	assert.EqualError(err, "shape slist: mismatch")

	err = errors.New("mismatch")
	ErrContext(&err, ctx)
	assert.EqualError(err, "mismatch")
}

func TestTaskUp(t *testing.T) {
	assert := require.New(t)

	var nilTask *Task
	for range nilTask.Up() {
		t.Fatal("nil task has no stack")
	}

	ctx := context.Background()
	for _, name := range []string{"zfq", "check seed=1", "tailq", "step 7"} {
		ctx = Running(ctx, name)
	}
	cur := Current(ctx)
	assert.Equal("zfq: check seed=1: tailq: step 7", cur.String())

	namev := []string{}
	for x := range cur.Up() {
		namev = append(namev, x.Name)
	}
	assert.Equal([]string{"step 7", "tailq", "check seed=1", "zfq"}, namev)

	// sibling tasks share parent but not each other
	ctxA := Running(ctx, "a")
	ctxB := Running(ctx, "b")
	assert.Equal("zfq: check seed=1: tailq: step 7: a", Current(ctxA).String())
	assert.Equal("zfq: check seed=1: tailq: step 7: b", Current(ctxB).String())
	assert.Same(Current(ctxA).Parent, Current(ctxB).Parent)
}
