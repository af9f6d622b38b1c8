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
// Args - print command-line arguments in reverse order

import (
	"flag"
	"fmt"
	"io"
	"os"
	"unsafe"

	"lab.nexedi.com/kirr/go123/prog"

	"github.com/wonder-mice/zf-queue/entry"
	"github.com/wonder-mice/zf-queue/slist"
)

// argEntry is one argument linked into args stack.
type argEntry struct {
	value string
	link  slist.Node
}

// Args prints every argument from argv in reverse order as
//
//	arg: "<value>"
//
// Arguments are pushed onto slist and then popped one by one.
func Args(w io.Writer, argv []string) (err error) {
	var args slist.Head
	for _, v := range argv {
		arg := &argEntry{value: v}
		args.InsertHead(&arg.link)
	}

	for !args.Empty() {
		arg := entry.Of[argEntry](unsafe.Pointer(args.First()), unsafe.Offsetof(argEntry{}.link))
		args.RemoveHead()
		_, err = fmt.Fprintf(w, "arg: \"%s\"\n", arg.value)
		if err != nil {
			return err
		}
	}
	return nil
}

// ----------------------------------------
const argsSummary = "print arguments in reverse order"

func argsUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: zfq args [OPTIONS] arg...
Print arguments in reverse order, one per line.

Arguments are pushed onto a singly-linked list and then popped from its head.

Options:

	-h --help       this help text.
`)
}

func argsMain(argv []string) {
	flags := flag.FlagSet{Usage: func() { argsUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	flags.Parse(argv[1:])

	err := Args(os.Stdout, flags.Args())
	if err != nil {
		prog.Fatal(err)
	}
}
