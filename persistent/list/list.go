package list

import (
	"iter"

	"github.com/npillmayer/fplist/maybe"
)

// node is a cell of a list. Its value and its link are set once, at construction
// time, and never change afterwards. A nil *node terminates a list.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is an immutable persistent list. An empty instance is usable as an
// empty list, i.e. this is legal:
//
//     l := list.List[string]{}.Cons("hello")
//
// returning a list containing a single element "hello".
//
// List values are small (a pointer and a length) and are meant to be passed
// around by value. Copying a List shares all of its nodes.
//
// Comparing lists with == tests for identity, not for equal elements: two lists
// are == only if they start at the same node. Use Equal to compare elements.
type List[T any] struct {
	root   *node[T] // first node, nil for the empty list
	length int      // number of nodes reachable from root
}

// New returns an empty list. It is equivalent to the zero value of List and
// does not allocate.
func New[T any]() List[T] {
	return List[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty is true if l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.length == 0
}

// Head returns the first element of l. If l is empty, the zero value for T will be
// returned, together with ok=false.
func (l List[T]) Head() (T, bool) {
	if l.root == nil {
		var none T
		return none, false
	}
	return l.root.value, true
}

// First is Head returning an optional value.
func (l List[T]) First() maybe.Maybe[T] {
	if l.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.root.value)
}

// Tail returns l without its first element. The list returned shares all of its
// nodes with l, no allocation is done. If l is empty, an empty list will be
// returned, together with ok=false.
func (l List[T]) Tail() (List[T], bool) {
	if l.root == nil {
		return List[T]{}, false
	}
	return l.rest(), true
}

// rest is Tail for non-empty lists.
func (l List[T]) rest() List[T] {
	assertThat(l.length > 0, "inconsistency: non-empty list has length 0")
	return List[T]{root: l.root.next, length: l.length - 1}
}

// Rest is Tail returning an optional list.
func (l List[T]) Rest() maybe.Maybe[List[T]] {
	if t, ok := l.Tail(); ok {
		return maybe.Just(t)
	}
	return maybe.Nothing[List[T]]()
}

// Cons returns a copy of l with value v prepended. The new list allocates exactly
// one node; everything else is shared with l. l remains unchanged and valid.
func (l List[T]) Cons(v T) List[T] {
	return List[T]{
		root:   &node[T]{value: v, next: l.root},
		length: l.length + 1,
	}
}

// Clone returns a list sharing every node with l. As lists are immutable, this is
// the same as copying l by assignment; it is provided for clarity at call sites.
func (l List[T]) Clone() List[T] {
	return List[T]{root: l.root, length: l.length}
}

// Identity returns an opaque token for the first node of l. Tokens are comparable,
// and two lists return identical tokens if and only if they start at the very
// same node (all empty lists of a type share a token). Identity is meant for
// debugging and for tools visualizing structural sharing.
func (l List[T]) Identity() any {
	return l.root
}

// Suffixes returns an iterator over l and all of its non-empty tails, longest first.
// Every list produced shares its nodes with l.
func (l List[T]) Suffixes() iter.Seq[List[T]] {
	return func(yield func(List[T]) bool) {
		for s := l; s.root != nil; s = s.rest() {
			if !yield(s) {
				return
			}
		}
	}
}

// SharedSuffix returns the longest suffix of a and b consisting of nodes which are
// physically shared between both lists. Lists which have been derived from a common
// ancestor by Cons and Tail share the ancestor's nodes below the point where
// they split. Lists which are equal by value but have been built independently
// share nothing, and the result will be empty.
func SharedSuffix[T any](a, b List[T]) List[T] {
	for a.length > b.length {
		a = a.rest()
	}
	for b.length > a.length {
		b = b.rest()
	}
	for a.root != b.root { // equal lengths ⇒ both reach nil together
		a, b = a.rest(), b.rest()
	}
	return a
}
