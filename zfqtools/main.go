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

// Package zfqtools provides zfq tool that demonstrates and self-checks
// intrusive containers of zf-queue.
package zfqtools

import "lab.nexedi.com/kirr/go123/prog"

// registry of all zfq commands
var commands = prog.CommandRegistry{
	// NOTE the order commands are listed here is the order how they will appear in help
	{Name: "args", Summary: argsSummary, Usage: argsUsage, Main: argsMain},
	{Name: "subsets", Summary: subsetsSummary, Usage: subsetsUsage, Main: subsetsMain},
	{Name: "check", Summary: checkSummary, Usage: checkUsage, Main: checkMain},
}

// main zfq driver
var Prog = prog.MainProg{
	Name:       "zfq",
	Summary:    "Zfq is a tool to exercise intrusive linked lists and queues",
	Commands:   commands,
	HelpTopics: helpTopics,
}
