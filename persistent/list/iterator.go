package list

import "iter"

// Iterator walks the elements of a list, from head to tail. It does not own
// anything: it merely follows the links between nodes, which may be shared with
// any number of other lists.
//
// Iterators are not restartable. After the last element has been produced, Next
// will keep returning ok=false. To iterate again, get a new iterator from the list.
type Iterator[T any] struct {
	next      *node[T]
	remaining int
}

// Iterator returns an iterator positioned in front of the first element of l.
func (l List[T]) Iterator() *Iterator[T] {
	it := l.cursor()
	return &it
}

func (l List[T]) cursor() Iterator[T] {
	return Iterator[T]{next: l.root, remaining: l.length}
}

// Next returns the next element and advances the iterator. If there are no more
// elements, the zero value for T will be returned, together with ok=false.
func (it *Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var none T
		return none, false
	}
	v := it.next.value
	it.next = it.next.next
	it.remaining--
	return v, true
}

// Len returns the exact number of elements Next will still produce.
func (it *Iterator[T]) Len() int {
	return it.remaining
}

// All returns the remaining elements of it as an iterator sequence.
// Ranging over the sequence advances it.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator sequence over the elements of l, from head to tail:
//
//     for v := range l.All() {
//         fmt.Println(v)
//     }
//
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.cursor()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the elements of l as a newly allocated slice, from head to tail.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.length)
	it := l.cursor()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		s = append(s, v)
	}
	return s
}

// Sized is a finite source of elements which knows its size in advance.
// List and *Iterator are Sized.
type Sized[T any] interface {
	All() iter.Seq[T]
	Len() int
}

var _ Sized[int] = List[int]{}
var _ Sized[int] = &Iterator[int]{}
