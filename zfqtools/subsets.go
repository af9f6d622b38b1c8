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
// Subsets - enumerate all subsets of a small set

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shamaton/msgpack"

	"lab.nexedi.com/kirr/go123/prog"
	"lab.nexedi.com/kirr/go123/xerr"
	"lab.nexedi.com/kirr/go123/xfmt"

	"github.com/wonder-mice/zf-queue/internal/task"
	"github.com/wonder-mice/zf-queue/tailq"
)

// SubsetsMax is the maximum size of a set Subsets can enumerate.
//
// Set elements are letters 'a', 'b', ... so there are not many of them.
const SubsetsMax = 'z' - 'a'

// item is element of the set.
type item struct {
	v    byte
	node tailq.Node
}

func itemLink(i *item) *tailq.Node { return &i.node }

// subsetter enumerates subsets by moving items between two queues: items
// still to decide about and items taken into current subset.
type subsetter struct {
	items tailq.Queue[item]
	taken tailq.Queue[item]
	buf   xfmt.Buffer
	emit  func(subset []byte) error
}

// Subsets calls emit for every subset of {a, b, ...} of size n.
//
// The order is the one of include/exclude recursion over the set elements:
// subsets without an element come before subsets with it, and elements of a
// subset go from most recently taken to least recently taken. For n=2 it is
//
//	"", "b", "a", "ba"
//
// Bytes passed to emit are valid only until emit returns.
func Subsets(n int, emit func(subset []byte) error) (err error) {
	defer xerr.Contextf(&err, "n %d", n)

	err = checkSubsetsN(n)
	if err != nil {
		return err
	}

	s := &subsetter{emit: emit}
	s.items.InitLink(itemLink)
	s.taken.InitLink(itemLink)

	storage := make([]item, n)
	for i := range storage {
		storage[i].v = 'a' + byte(i)
		s.items.InsertTail(&storage[i])
	}

	return s.iter()
}

func checkSubsetsN(n int) error {
	if n < 0 || n > SubsetsMax {
		return errors.Errorf("out of range [0, %d]", SubsetsMax)
	}
	return nil
}

func (s *subsetter) iter() error {
	if s.items.Empty() {
		s.buf.Reset()
		for i := range s.taken.All() {
			s.buf .Cb(i.v)
		}
		return s.emit(s.buf.Bytes())
	}

	i := s.items.First()
	s.items.Remove(i)

	// i is out
	err := s.iter()
	if err != nil {
		return err
	}

	// i is in
	s.taken.InsertHead(i)
	err = s.iter()
	if err != nil {
		return err
	}

	s.taken.Remove(i)
	s.items.InsertHead(i)
	return nil
}

// subsetsFlushSize is how much of formatted output is accumulated before it
// is written out.
const subsetsFlushSize = 64 * 1024

// subsetsWriter streams formatted subsets to w in chunks of about flushSize
// bytes whatever n is.
type subsetsWriter struct {
	w         io.Writer
	buf       xfmt.Buffer
	flushSize int
}

func (sw *subsetsWriter) flush() error {
	if len(sw.buf.Bytes()) == 0 {
		return nil
	}
	_, err := sw.w.Write(sw.buf.Bytes())
	sw.buf.Reset()
	return err
}

func (sw *subsetsWriter) flushIfFull() error {
	if len(sw.buf.Bytes()) < sw.flushSize {
		return nil
	}
	return sw.flush()
}

// WriteSubsetsText writes subsets of set of size n to w, one per line.
func WriteSubsetsText(w io.Writer, n int) error {
	return writeSubsetsText(w, n, subsetsFlushSize)
}

func writeSubsetsText(w io.Writer, n, flushSize int) error {
	sw := &subsetsWriter{w: w, flushSize: flushSize}
	err := Subsets(n, func(subset []byte) error {
		sw.buf .S(string(subset)) .Cb('\n')
		return sw.flushIfFull()
	})
	if err != nil {
		return err
	}
	return sw.flush()
}

// WriteSubsetsMsgpack writes subsets of set of size n to w as one msgpack
// array of strings.
func WriteSubsetsMsgpack(w io.Writer, n int) error {
	return writeSubsetsMsgpack(w, n, subsetsFlushSize)
}

func writeSubsetsMsgpack(w io.Writer, n, flushSize int) (err error) {
	err = checkSubsetsN(n)
	if err != nil {
		return errors.Wrapf(err, "n %d", n)
	}

	// the number of subsets is known upfront, so the array header goes
	// first and elements are streamed after it.
	sw := &subsetsWriter{w: w, flushSize: flushSize}
	sw.buf .S(string(msgpackArrayHeader(uint32(1) << n)))
	err = Subsets(n, func(subset []byte) error {
		data, err := msgpack.Encode(string(subset))
		if err != nil {
			return err
		}
		sw.buf .S(string(data))
		return sw.flushIfFull()
	})
	if err != nil {
		return err
	}
	return sw.flush()
}

// msgpackArrayHeader returns msgpack header of array with l elements.
func msgpackArrayHeader(l uint32) []byte {
	switch {
	case l < 16:
		return []byte{0x90 | byte(l)} // fixarray
	case l <= 0xffff:
		return []byte{0xdc, byte(l >> 8), byte(l)} // array 16
	default:
		return []byte{0xdd, byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)} // array 32
	}
}

// subsetsAll writes subsets for every n in nv to w with write function.
//
// Output for n goes in the order of nv and is streamed as it is produced.
// All n are verified before anything is written.
func subsetsAll(ctx context.Context, w io.Writer, nv []int, write func(w io.Writer, n int) error) (err error) {
	defer task.Running(&ctx, "subsets")(&err)

	for _, n := range nv {
		err = checkSubsetsN(n)
		if err != nil {
			return errors.Wrapf(err, "n %d", n)
		}
	}

	for _, n := range nv {
		err = ctx.Err()
		if err != nil {
			return err
		}
		err = write(w, n)
		if err != nil {
			return err
		}
	}
	return nil
}

// ----------------------------------------
const subsetsSummary = "enumerate all subsets of a set"

func subsetsUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: zfq subsets [OPTIONS] n...
Enumerate all subsets of set {a, b, ...} of size n, one subset per line.

n must be in [0, %d]. Output for several n goes in the order n are given;
it is streamed as subsets are enumerated, so even n=%d needs little memory.

Options:

	-h --help       this help text.
	-format <fmt>   output format: text (default) or msgpack.
	                msgpack outputs one array of strings per n.
`, SubsetsMax, SubsetsMax)
}

func subsetsMain(argv []string) {
	format := "text"

	flags := flag.FlagSet{Usage: func() { subsetsUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	flags.StringVar(&format, "format", format, "output format: text | msgpack")
	flags.Parse(argv[1:])

	argv = flags.Args()
	if len(argv) < 1 {
		flags.Usage()
		prog.Exit(2)
	}

	var write func(io.Writer, int) error
	switch format {
	case "text":
		write = WriteSubsetsText
	case "msgpack":
		write = WriteSubsetsMsgpack
	default:
		prog.Fatal(errors.Errorf("invalid format %q", format))
	}

	nv := []int{}
	for _, arg := range argv {
		n, err := strconv.Atoi(arg)
		if err != nil {
			prog.Fatal(errors.Wrap(err, "invalid n"))
		}
		nv = append(nv, n)
	}

	err := subsetsAll(context.Background(), os.Stdout, nv, write)
	if err != nil {
		prog.Fatal(err)
	}
}
