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
// registry for all help topics

import "lab.nexedi.com/kirr/go123/prog"

const helpShapes =
`There are four container shapes. All of them are intrusive: link node is
embedded into element, and element is recovered from its node by offset of
the node field.

	                slist   stailq  list    tailq
	Head            1       2       1       2       (pointers)
	Node            1       1       2       2       (pointers)
	Empty           +       +       +       +
	First           +       +       +       +
	Last            -       +       -       +
	Next            +       +       +       +
	Prev            -       -       +       +
	InsertHead      +       +       +       +
	InsertTail      -       +       -       +
	InsertBefore    -       -       +       +
	InsertAfter     +       +       +       +
	RemoveHead      +       +       +(1)    +(1)
	RemoveAfter     +       +       +(1)    +(1)
	Remove          -       -       +       +
	Concat          -       +       -       +
	Swap            +       +       +       +
	Backward        -       -       +(2)    +

(1) via Remove of First / Next.
(2) starting from a known node; the head does not know the last node.

slist is the simplest one and is ideal for LIFO stacks and hash buckets
where removal is rare. stailq adds O(1) append and suits FIFO queues.
list allows removal of arbitrary node without knowing its head. tailq
allows everything, at the price of the largest head and node.

Shape names are used by 'zfq check'.
`

var helpTopics = prog.HelpRegistry{
	{Name: "shapes", Summary: "container shapes and their operations", Text: helpShapes},
}
