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

// Package task provides primitives to track operational tasks via contexts.
//
// A task is a named operation, e.g. "check seed=1" or "tailq". Tasks nest: a
// task started under another one remembers it as parent, and the whole stack
// is used to prefix log messages and errors.
package task

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"lab.nexedi.com/kirr/go123/xerr"
)

// Task represents currently running operation.
type Task struct {
	Parent *Task
	Name   string
	depth  int // number of tasks above this one
}

type taskKey struct{}

// Running creates new task and returns new context with that task set to current.
func Running(ctx context.Context, name string) context.Context {
	t := &Task{Parent: Current(ctx), Name: name}
	if t.Parent != nil {
		t.depth = t.Parent.depth + 1
	}
	return context.WithValue(ctx, taskKey{}, t)
}

// Runningf is Running cousin with formatting support.
func Runningf(ctx context.Context, format string, argv ...interface{}) context.Context {
	return Running(ctx, fmt.Sprintf(format, argv...))
}

// Current returns current task represented by context, or nil.
func Current(ctx context.Context) *Task {
	t, _ := ctx.Value(taskKey{}).(*Task)
	return t
}

// Up returns iterator over t and the tasks it runs under, innermost first.
func (t *Task) Up() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for x := t; x != nil; x = x.Parent {
			if !yield(x) {
				return
			}
		}
	}
}

// ErrContext prefixes error with name of the task current in ctx.
//
// Use it under defer:
//
//	func subsets(ctx, ...) (err error) {
//		ctx = task.Running(ctx, "subsets")
//		defer task.ErrContext(&err, ctx)
//		...
//
// Only the innermost task name is added; outer tasks add theirs themselves.
func ErrContext(errp *error, ctx context.Context) {
	t := Current(ctx)
	if t == nil {
		return
	}
	xerr.Context(errp, t.Name)
}

// String returns whole operational stack outermost first, e.g. "a: b: c" for
// task c running under b running under a.
//
// nil Task is represented as "".
func (t *Task) String() string {
	if t == nil {
		return ""
	}

	namev := make([]string, t.depth+1)
	i := t.depth
	for x := range t.Up() {
		namev[i] = x.Name
		i--
	}
	return strings.Join(namev, ": ")
}
