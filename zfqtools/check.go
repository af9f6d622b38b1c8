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
// Check - randomized check of containers against reference model

import (
	"context"
	"flag"
	"fmt"
	"io"
	"iter"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lab.nexedi.com/kirr/go123/prog"
	xlist "lab.nexedi.com/kirr/go123/xcontainer/list"

	"github.com/wonder-mice/zf-queue/entry"
	"github.com/wonder-mice/zf-queue/internal/log"
	"github.com/wonder-mice/zf-queue/internal/task"
	"github.com/wonder-mice/zf-queue/list"
	"github.com/wonder-mice/zf-queue/slist"
	"github.com/wonder-mice/zf-queue/stailq"
	"github.com/wonder-mice/zf-queue/tailq"
)

// Shapes lists names of container shapes Check knows about.
var Shapes = []string{"slist", "stailq", "list", "tailq"}

// checkNElem is the number of elements one check moves in and out of container.
const checkNElem = 16

// elem can be linked into container of every shape and into the model at
// the same time.
type elem struct {
	id    int
	sl    slist.Node
	sq    stailq.Node
	dl    list.Node
	tq    tailq.Node
	model xlist.Head
}

func elemOfModel(h *xlist.Head) *elem {
	return entry.Of[elem](unsafe.Pointer(h), unsafe.Offsetof(elem{}.model))
}

func elemIds(seq iter.Seq[*elem]) []int {
	idv := []int{}
	for e := range seq {
		idv = append(idv, e.id)
	}
	return idv
}

// model is the reference sequence kept on circular list of go123.
type model struct {
	root xlist.Head
}

func (m *model) empty() bool { return m.root.Next() == &m.root }

func (m *model) entry(h *xlist.Head) *elem {
	if h == &m.root {
		return nil
	}
	return elemOfModel(h)
}

func (m *model) first() *elem            { return m.entry(m.root.Next()) }
func (m *model) last() *elem             { return m.entry(m.root.Prev()) }
func (m *model) next(e *elem) *elem      { return m.entry(e.model.Next()) }
func (m *model) insertHead(e *elem)      { e.model.MoveBefore(m.root.Next()) }
func (m *model) insertTail(e *elem)      { e.model.MoveBefore(&m.root) }
func (m *model) insertBefore(b, e *elem) { e.model.MoveBefore(&b.model) }
func (m *model) insertAfter(b, e *elem)  { e.model.MoveBefore(b.model.Next()) }

func (m *model) remove(e *elem) {
	e.model.Delete()
	e.model.Init()
}

func (m *model) elems() []*elem {
	ev := []*elem{}
	for h := m.root.Next(); h != &m.root; h = h.Next() {
		ev = append(ev, elemOfModel(h))
	}
	return ev
}

// subject is container under check.
type subject interface {
	insertHead(e *elem)
	insertAfter(b, e *elem)
	removeHead()
	removeAfter(b *elem)
	swap2() // swap with an empty container and back
	forward() []int
}

// tailSubject is subject that can append.
type tailSubject interface {
	subject
	insertTail(e *elem)
	last() *elem
}

// dlSubject is doubly-linked subject.
type dlSubject interface {
	subject
	insertBefore(b, e *elem)
	remove(e *elem)
	backwardFrom(last *elem) []int
}

// slist
type slistSubject struct {
	l slist.List[elem]
}

func slistOf() slist.List[elem] { return slist.Of(func(e *elem) *slist.Node { return &e.sl }) }

func newSlistSubject() subject {
	s := &slistSubject{}
	s.l = slistOf()
	return s
}

func (s *slistSubject) insertHead(e *elem)     { s.l.InsertHead(e) }
func (s *slistSubject) insertAfter(b, e *elem) { s.l.InsertAfter(b, e) }
func (s *slistSubject) removeHead()            { s.l.RemoveHead() }
func (s *slistSubject) removeAfter(b *elem)    { s.l.RemoveAfter(b) }
func (s *slistSubject) forward() []int         { return elemIds(s.l.All()) }

func (s *slistSubject) swap2() {
	tmp := slistOf()
	s.l.Swap(&tmp)
	tmp.Swap(&s.l)
}

// stailq
type stailqSubject struct {
	q stailq.Queue[elem]
}

func stailqOf() stailq.Queue[elem] { return stailq.Of(func(e *elem) *stailq.Node { return &e.sq }) }

func newStailqSubject() subject {
	s := &stailqSubject{}
	s.q = stailqOf()
	return s
}

func (s *stailqSubject) insertHead(e *elem)     { s.q.InsertHead(e) }
func (s *stailqSubject) insertTail(e *elem)     { s.q.InsertTail(e) }
func (s *stailqSubject) insertAfter(b, e *elem) { s.q.InsertAfter(b, e) }
func (s *stailqSubject) removeHead()            { s.q.RemoveHead() }
func (s *stailqSubject) removeAfter(b *elem)    { s.q.RemoveAfter(b) }
func (s *stailqSubject) last() *elem            { return s.q.Last() }
func (s *stailqSubject) forward() []int         { return elemIds(s.q.All()) }

// swap2 moves elements through Concat into the empty queue and back by Swap.
func (s *stailqSubject) swap2() {
	tmp := stailqOf()
	tmp.Concat(&s.q)
	s.q.Swap(&tmp)
}

// list
type listSubject struct {
	l list.List[elem]
}

func listOf() list.List[elem] { return list.Of(func(e *elem) *list.Node { return &e.dl }) }

func newListSubject() subject {
	s := &listSubject{}
	s.l = listOf()
	return s
}

func (s *listSubject) insertHead(e *elem)      { s.l.InsertHead(e) }
func (s *listSubject) insertBefore(b, e *elem) { s.l.InsertBefore(b, e) }
func (s *listSubject) insertAfter(b, e *elem)  { s.l.InsertAfter(b, e) }
func (s *listSubject) removeHead()             { s.l.Remove(s.l.First()) }
func (s *listSubject) removeAfter(b *elem)     { s.l.Remove(s.l.Next(b)) }
func (s *listSubject) remove(e *elem)          { s.l.Remove(e) }
func (s *listSubject) forward() []int          { return elemIds(s.l.All()) }

func (s *listSubject) backwardFrom(last *elem) []int {
	if last == nil {
		return []int{}
	}
	return elemIds(s.l.BackwardFrom(last))
}

func (s *listSubject) swap2() {
	tmp := listOf()
	s.l.Swap(&tmp)
	tmp.Swap(&s.l)
}

// tailq
type tailqSubject struct {
	q tailq.Queue[elem]
}

func tailqLink(e *elem) *tailq.Node { return &e.tq }

func newTailqSubject() subject {
	s := &tailqSubject{}
	s.q.InitLink(tailqLink)
	return s
}

func (s *tailqSubject) insertHead(e *elem)      { s.q.InsertHead(e) }
func (s *tailqSubject) insertTail(e *elem)      { s.q.InsertTail(e) }
func (s *tailqSubject) insertBefore(b, e *elem) { s.q.InsertBefore(b, e) }
func (s *tailqSubject) insertAfter(b, e *elem)  { s.q.InsertAfter(b, e) }
func (s *tailqSubject) removeHead()             { s.q.Remove(s.q.First()) }
func (s *tailqSubject) removeAfter(b *elem)     { s.q.Remove(s.q.Next(b)) }
func (s *tailqSubject) remove(e *elem)          { s.q.Remove(e) }
func (s *tailqSubject) last() *elem             { return s.q.Last() }
func (s *tailqSubject) forward() []int          { return elemIds(s.q.All()) }

// backwardFrom ignores last and verifies that the queue knows it itself.
func (s *tailqSubject) backwardFrom(last *elem) []int { return elemIds(s.q.Backward()) }

func (s *tailqSubject) swap2() {
	var tmp tailq.Queue[elem]
	tmp.InitLink(tailqLink)
	tmp.Concat(&s.q)
	s.q.Swap(&tmp)
}

var newSubject = map[string]func() subject{
	"slist":  newSlistSubject,
	"stailq": newStailqSubject,
	"list":   newListSubject,
	"tailq":  newTailqSubject,
}

// checker drives one subject together with the model.
type checker struct {
	rng   *rand.Rand
	subj  subject
	model model
	elemv []elem
	free  []*elem // elements not on the container
}

func newChecker(subj subject, seed int64) *checker {
	c := &checker{
		rng:   rand.New(rand.NewSource(seed)),
		subj:  subj,
		elemv: make([]elem, checkNElem),
	}
	c.model.root.Init()
	for i := range c.elemv {
		e := &c.elemv[i]
		e.id = i
		e.model.Init()
		c.free = append(c.free, e)
	}
	return c
}

// takeFree picks random free element and marks it as used.
func (c *checker) takeFree() *elem {
	i := c.rng.Intn(len(c.free))
	e := c.free[i]
	c.free[i] = c.free[len(c.free)-1]
	c.free = c.free[:len(c.free)-1]
	return e
}

// pickLinked returns random element on the container; if notLast the last
// element is not picked.
func (c *checker) pickLinked(notLast bool) *elem {
	ev := c.model.elems()
	if notLast {
		ev = ev[:len(ev)-1]
	}
	return ev[c.rng.Intn(len(ev))]
}

// checkOp is one kind of random operation.
type checkOp struct {
	name string
	ok   func(c *checker) bool
	do   func(c *checker)
}

func (c *checker) hasFree() bool   { return len(c.free) != 0 }
func (c *checker) nonEmpty() bool  { return !c.model.empty() }
func (c *checker) hasSecond() bool { return c.nonEmpty() && c.model.next(c.model.first()) != nil }

var commonOps = []checkOp{
	{"insert head", (*checker).hasFree, func(c *checker) {
		e := c.takeFree()
		c.subj.insertHead(e)
		c.model.insertHead(e)
	}},
	{"insert after", func(c *checker) bool { return c.hasFree() && c.nonEmpty() }, func(c *checker) {
		b := c.pickLinked(false)
		e := c.takeFree()
		c.subj.insertAfter(b, e)
		c.model.insertAfter(b, e)
	}},
	{"remove head", (*checker).nonEmpty, func(c *checker) {
		e := c.model.first()
		c.subj.removeHead()
		c.model.remove(e)
		c.free = append(c.free, e)
	}},
	{"remove after", (*checker).hasSecond, func(c *checker) {
		b := c.pickLinked(true)
		e := c.model.next(b)
		c.subj.removeAfter(b)
		c.model.remove(e)
		c.free = append(c.free, e)
	}},
	{"swap", func(*checker) bool { return true }, func(c *checker) {
		c.subj.swap2()
	}},
}

var tailOps = []checkOp{
	{"insert tail", (*checker).hasFree, func(c *checker) {
		e := c.takeFree()
		c.subj.(tailSubject).insertTail(e)
		c.model.insertTail(e)
	}},
}

var dlOps = []checkOp{
	{"insert before", func(c *checker) bool { return c.hasFree() && c.nonEmpty() }, func(c *checker) {
		b := c.pickLinked(false)
		e := c.takeFree()
		c.subj.(dlSubject).insertBefore(b, e)
		c.model.insertBefore(b, e)
	}},
	{"remove", (*checker).nonEmpty, func(c *checker) {
		e := c.pickLinked(false)
		c.subj.(dlSubject).remove(e)
		c.model.remove(e)
		c.free = append(c.free, e)
	}},
}

// ops returns operations applicable to c's subject.
func (c *checker) ops() []checkOp {
	opv := slices.Clone(commonOps)
	if _, ok := c.subj.(tailSubject); ok {
		opv = append(opv, tailOps...)
	}
	if _, ok := c.subj.(dlSubject); ok {
		opv = append(opv, dlOps...)
	}
	return opv
}

// verify checks that subject holds the same sequence as the model.
func (c *checker) verify() error {
	want := []int{}
	for _, e := range c.model.elems() {
		want = append(want, e.id)
	}

	if have := c.subj.forward(); !slices.Equal(have, want) {
		return errors.Errorf("forward: have %v; want %v", have, want)
	}

	if s, ok := c.subj.(tailSubject); ok {
		have, want := s.last(), c.model.last()
		if have != want {
			return errors.Errorf("last: have %s; want %s", elemStr(have), elemStr(want))
		}
	}

	if s, ok := c.subj.(dlSubject); ok {
		slices.Reverse(want)
		if have := s.backwardFrom(c.model.last()); !slices.Equal(have, want) {
			return errors.Errorf("backward: have %v; want %v", have, want)
		}
	}
	return nil
}

func elemStr(e *elem) string {
	if e == nil {
		return "nil"
	}
	return fmt.Sprintf("%d", e.id)
}

// Check drives container of shape with nops random operations and verifies
// after every step that the container holds the same sequence as reference
// model.
//
// The run is determined by seed.
func Check(ctx context.Context, shape string, nops int, seed int64) (err error) {
	newSubj, ok := newSubject[shape]
	if !ok {
		return errors.Errorf("unknown shape %q", shape)
	}

	defer task.Running(&ctx, shape)(&err)

	c := newChecker(newSubj(), seed)
	opv := c.ops()
	applicable := make([]*checkOp, 0, len(opv))
	for step := 0; step < nops; step++ {
		if step%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		applicable = applicable[:0]
		for i := range opv {
			if opv[i].ok(c) {
				applicable = append(applicable, &opv[i])
			}
		}
		op := applicable[c.rng.Intn(len(applicable))]
		op.do(c)

		err := c.verify()
		if err != nil {
			return errors.Wrapf(err, "step %d (%s)", step, op.name)
		}
	}

	log.Infof(ctx, "%d ops ok", nops)
	return nil
}

// CheckAll runs Check for every shape concurrently.
func CheckAll(ctx context.Context, shapes []string, nops int, seed int64) (err error) {
	defer task.Runningf(&ctx, "check seed=%d", seed)(&err)

	wg, ctx := errgroup.WithContext(ctx)
	for _, shape := range shapes {
		wg.Go(func() error {
			return Check(ctx, shape, nops, seed)
		})
	}
	return wg.Wait()
}

// ----------------------------------------
const checkSummary = "check containers against reference model"

func checkUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: zfq check [OPTIONS] [shape...]
Check containers by random operations against reference model.

Every shape (see 'zfq help shapes') is driven with random inserts and
removals, and after every step its forward and, where possible, backward
sequences are compared to the model. Shapes are checked in parallel.
By default all shapes are checked: %s.

Options:

	-h --help       this help text.
	-n <ops>        number of operations per shape (default 10000).
	-seed <seed>    seed for random operations (default: current time).
`, strings.Join(Shapes, " "))
}

func checkMain(argv []string) {
	nops := 10000
	seed := time.Now().UnixNano()

	flags := flag.FlagSet{Usage: func() { checkUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	flags.IntVar(&nops, "n", nops, "number of operations per shape")
	flags.Int64Var(&seed, "seed", seed, "seed for random operations")
	flags.Parse(argv[1:])

	shapes := flags.Args()
	if len(shapes) == 0 {
		shapes = Shapes
	}
	for _, shape := range shapes {
		if _, ok := newSubject[shape]; !ok {
			prog.Fatal(errors.Errorf("unknown shape %q", shape))
		}
	}

	defer log.Flush()
	err := CheckAll(context.Background(), shapes, nops, seed)
	if err != nil {
		log.Flush()
		prog.Fatal(err)
	}

	for _, shape := range shapes {
		fmt.Printf("ok\t%s\t%d ops\n", shape, nops)
	}
}
