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

// Package log provides leveled logging for zfq tools with task integration.
//
// Messages are emitted via glog and are prefixed with the operational task
// stack taken from context (see internal/xcontext/task), e.g.
//
//	I1019 ... check.go:57] check seed=1: tailq: 1000 ops ok
package log

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/wonder-mice/zf-queue/internal/xcontext/task"
)

type severity int

const (
	sevInfo severity = iota
	sevWarning
	sevError
)

// glogDepth maps severity to glog function logging on behalf of caller depth
// frames up.
var glogDepth = [...]func(depth int, argv ...interface{}){
	sevInfo:    glog.InfoDepth,
	sevWarning: glog.WarningDepth,
	sevError:   glog.ErrorDepth,
}

// withTask prepends string describing current task stack to argv.
//
// see https://golang.org/issues/21388 for why it is not glog.InfoContext.
func withTask(ctx context.Context, argv ...interface{}) []interface{} {
	prefix := task.Current(ctx).String()
	if prefix == "" {
		return argv
	}

	if len(argv) != 0 {
		prefix += ": "
	}

	return append([]interface{}{prefix}, argv...)
}

// Depth is logger that attributes messages to the caller Depth frames up.
//
// Depth(0) attributes to the direct caller; helpers like internal/task use
// Depth(1) and above so that log lines point to their users.
type Depth int

func (d Depth) log(sev severity, ctx context.Context, argv ...interface{}) {
	// +2 for log and for the Depth method calling it
	glogDepth[sev](int(d+2), withTask(ctx, argv...)...)
}

func (d Depth) logf(sev severity, ctx context.Context, format string, argv ...interface{}) {
	glogDepth[sev](int(d+2), withTask(ctx, fmt.Sprintf(format, argv...))...)
}

func (d Depth) Info(ctx context.Context, argv ...interface{})    { d.log(sevInfo, ctx, argv...) }
func (d Depth) Warning(ctx context.Context, argv ...interface{}) { d.log(sevWarning, ctx, argv...) }
func (d Depth) Error(ctx context.Context, argv ...interface{})   { d.log(sevError, ctx, argv...) }

func (d Depth) Infof(ctx context.Context, format string, argv ...interface{}) {
	d.logf(sevInfo, ctx, format, argv...)
}

func (d Depth) Warningf(ctx context.Context, format string, argv ...interface{}) {
	d.logf(sevWarning, ctx, format, argv...)
}

func (d Depth) Errorf(ctx context.Context, format string, argv ...interface{}) {
	d.logf(sevError, ctx, format, argv...)
}

func Info(ctx context.Context, argv ...interface{})    { Depth(1).Info(ctx, argv...) }
func Warning(ctx context.Context, argv ...interface{}) { Depth(1).Warning(ctx, argv...) }
func Error(ctx context.Context, argv ...interface{})   { Depth(1).Error(ctx, argv...) }

func Infof(ctx context.Context, format string, argv ...interface{}) {
	Depth(1).Infof(ctx, format, argv...)
}

func Warningf(ctx context.Context, format string, argv ...interface{}) {
	Depth(1).Warningf(ctx, format, argv...)
}

func Errorf(ctx context.Context, format string, argv ...interface{}) {
	Depth(1).Errorf(ctx, format, argv...)
}

// V reports whether verbose logging at level is enabled (-v flag).
//
// internal/task logs task start and completion only at V(1).
func V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

func Flush() { glog.Flush() }
