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

package zfqtools

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	assert := require.New(t)

	var out bytes.Buffer
	err := Args(&out, []string{"zfq", "hello", "a b", ""})
	assert.NoError(err)
	assert.Equal(`arg: ""
arg: "a b"
arg: "hello"
arg: "zfq"
`, out.String())

	out.Reset()
	assert.NoError(Args(&out, nil))
	assert.Equal("", out.String())
}
