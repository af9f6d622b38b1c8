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

// Package xdebug provides assertions that are compiled in only in debug builds.
//
// Containers do not check their preconditions by default: operating on an
// empty container, removing a node that is not linked, or passing a node of
// another container are caller errors. Building with
//
//	go build -tags zfqdebug
//
// turns Enabled on and makes such errors panic with a descriptive message
// instead of corrupting links. Checks must be written as
//
//	if xdebug.Enabled {
//		xdebug.Assertf(...)
//	}
//
// so that in regular builds they are removed by the compiler.
package xdebug

import "fmt"

// Assertf panics with formatted message if cond is false.
func Assertf(cond bool, format string, argv ...interface{}) {
	if !cond {
		panic(&AssertError{Msg: fmt.Sprintf(format, argv...)})
	}
}

// AssertError is the value assertion failures panic with.
type AssertError struct {
	Msg string
}

func (e *AssertError) Error() string {
	return "zf-queue: assertion failed: " + e.Msg
}
