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

package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wonder-mice/zf-queue/internal/xcontext/task"
)

func TestWithTask(t *testing.T) {
	assert := require.New(t)

	ctx := context.Background()
	assert.Equal([]interface{}{"hello"}, withTask(ctx, "hello"))
	assert.Empty(withTask(ctx))

	ctx = task.Running(ctx, "check")
	ctx = task.Running(ctx, "tailq")
	assert.Equal([]interface{}{"check: tailq: ", "1000 ops"}, withTask(ctx, "1000 ops"))
	assert.Equal([]interface{}{"check: tailq"}, withTask(ctx))
}

func TestSeverity(t *testing.T) {
	assert := require.New(t)

	assert.Len(glogDepth, 3)
	for sev, f := range glogDepth {
		assert.NotNil(f, "severity %d", sev)
	}
}
