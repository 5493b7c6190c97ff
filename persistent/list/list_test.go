package list

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNew(t *testing.T) {
	empty := New[int]()
	if empty.root != nil {
		t.Errorf("expected new list to have no nodes, has root %v", empty.root)
	}
	if empty.Len() != 0 || !empty.IsEmpty() {
		t.Errorf("expected new list to be empty, has length %d", empty.Len())
	}
	var zero List[int]
	if zero != empty {
		t.Error("expected zero value of List to equal New()")
	}
}

func TestHead(t *testing.T) {
	empty := New[int]()
	singleton := New[string]().Cons("hello")
	l := New[int]().Cons(3).Cons(2).Cons(1).Cons(0)
	//
	if _, ok := empty.Head(); ok {
		t.Error("expected empty list to have no head, has one")
	}
	if h, ok := singleton.Head(); !ok || h != "hello" {
		t.Errorf("expected head of singleton to be 'hello', is %q", h)
	}
	if h, ok := l.Head(); !ok || h != 0 {
		t.Errorf("expected head of list to be 0, is %d", h)
	}
	if !empty.First().IsNothing() {
		t.Error("expected First of empty list to be Nothing")
	}
	if h := l.First().WithDefault(-1); h != 0 {
		t.Errorf("expected First of list to be Just 0, is %d", h)
	}
}

func TestTail(t *testing.T) {
	empty := New[int]()
	singleton := New[string]().Cons("hello")
	l := New[int]().Cons(3).Cons(2).Cons(1).Cons(0)
	//
	if tl, ok := empty.Tail(); ok || !tl.IsEmpty() {
		t.Error("expected empty list to have no tail, has one")
	}
	tl, ok := singleton.Tail()
	if !ok {
		t.Fatal("expected singleton list to have a tail, hasn't")
	}
	if _, ok := tl.Head(); ok {
		t.Error("expected tail of singleton to have no head, has one")
	}
	itl, _ := l.Tail()
	if h, _ := itl.Head(); h != 1 {
		t.Errorf("expected head of tail to be 1, is %d", h)
	}
	if l.Len() != 4 || itl.Len() != 3 {
		t.Errorf("expected lengths 4 and 3, have %d and %d", l.Len(), itl.Len())
	}
	if !empty.Rest().IsNothing() {
		t.Error("expected Rest of empty list to be Nothing")
	}
	if r, ok := l.Rest().Get(); !ok || r != itl {
		t.Errorf("expected Rest of list to be Just %v, is %v", itl, r)
	}
}

func TestConsLeavesReceiverUnchanged(t *testing.T) {
	base := Of(2, 3)
	a := base.Cons(1)
	b := base.Cons(7)
	if base.Len() != 2 || base.String() != "[2, 3]" {
		t.Errorf("expected base to stay [2, 3], is %v", base)
	}
	if a.String() != "[1, 2, 3]" || b.String() != "[7, 2, 3]" {
		t.Errorf("expected [1, 2, 3] and [7, 2, 3], have %v and %v", a, b)
	}
	ta, _ := a.Tail()
	if ta != base {
		t.Error("expected tail of a to be base itself")
	}
}

func TestConsTail(t *testing.T) {
	for _, l := range []List[int]{New[int](), Of(1), Of(5, 4, 3, 2, 1)} {
		tl, ok := l.Cons(99).Tail()
		if !ok || !Equal(tl, l) {
			t.Errorf("expected cons(%v, 99).tail() to be %v, is %v", l, l, tl)
		}
		if tl.root != l.root {
			t.Errorf("expected cons(%v, 99).tail() to share nodes with %v", l, l)
		}
	}
}

func TestClone(t *testing.T) {
	l := New[string]().Cons("there").Cons("hello")
	clone := l.Clone()
	if !Equal(clone, l) || clone.Len() != l.Len() {
		t.Errorf("expected clone to equal %v, is %v", l, clone)
	}
	if clone.Identity() != l.Identity() {
		t.Error("expected clone to share nodes with original")
	}
}

func TestLengthInvariant(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		l = l.Cons(i)
		if i%3 == 0 {
			l, _ = l.Tail()
		}
		if i%7 == 0 {
			l = l.Clone()
		}
		n := 0
		for range l.All() {
			n++
		}
		if n != l.Len() {
			t.Fatalf("step %d: list has length %d, but iterates %d elements", i, l.Len(), n)
		}
	}
}

func TestAllocations(t *testing.T) {
	l := Of(1, 2, 3)
	var r List[int]
	if n := testing.AllocsPerRun(100, func() {
		r, _ = l.Tail()
	}); n != 0 {
		t.Errorf("expected Tail to not allocate, has %.1f allocations", n)
	}
	if n := testing.AllocsPerRun(100, func() {
		r = l.Cons(0)
	}); n != 1 {
		t.Errorf("expected Cons to allocate exactly once, has %.1f allocations", n)
	}
	if n := testing.AllocsPerRun(100, func() {
		r = New[int]()
	}); n != 0 {
		t.Errorf("expected New to not allocate, has %.1f allocations", n)
	}
	_ = r
}

func TestSuffixes(t *testing.T) {
	l := Of("a", "b", "c")
	var rendered []string
	for s := range l.Suffixes() {
		rendered = append(rendered, s.String())
	}
	if len(rendered) != 3 || rendered[0] != "[a, b, c]" || rendered[2] != "[c]" {
		t.Errorf("unexpected suffixes of %v: %v", l, rendered)
	}
	for range New[int]().Suffixes() {
		t.Error("expected empty list to have no suffixes")
	}
}

func TestSharedSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	base := Of(3, 4, 5)
	a := base.Cons(2).Cons(1)
	b := base.Cons(9)
	s := SharedSuffix(a, b)
	if s != base {
		t.Errorf("expected shared suffix of %v and %v to be %v, is %v", a, b, base, s)
	}
	t1, _ := a.Tail()
	if s = SharedSuffix(a, t1); s != t1 {
		t.Errorf("expected shared suffix of %v and its tail to be the tail, is %v", a, s)
	}
	if s = SharedSuffix(Of(1, 2), Of(1, 2)); !s.IsEmpty() {
		t.Errorf("expected independently built lists to share nothing, share %v", s)
	}
}
