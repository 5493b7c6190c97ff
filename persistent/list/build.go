package list

import "iter"

// A list can only grow at its head. Building a list from a sequence therefore
// buffers the whole sequence and then conses its elements in reverse order.
// We prefer this over recursing to the end of the sequence, as it puts no
// pressure on the stack for long sequences.

// FromSlice returns a list holding the elements of xs, in the same order.
// xs is not retained.
func FromSlice[T any](xs []T) List[T] {
	var l List[T]
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Cons(xs[i])
	}
	return l
}

// Of returns a list holding the arguments, in order:
//
//     l := list.Of(0, 1, 2, 3)   // [0, 1, 2, 3], head is 0
//
func Of[T any](xs ...T) List[T] {
	return FromSlice(xs)
}

// FromSeq returns a list holding the elements of seq, in iteration order, i.e. the
// first element produced by seq will become the head of the list.
//
// seq must be finite. Calling FromSeq with an infinite sequence does not return.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	return build(seq, 0)
}

// FromSized is like FromSeq, but uses src.Len() as a hint for the size of the
// intermediate buffer. The hint is not trusted to be exact.
func FromSized[T any](src Sized[T]) List[T] {
	return build(src.All(), src.Len())
}

func build[T any](seq iter.Seq[T], hint int) List[T] {
	buf := make([]T, 0, max(hint, 0))
	for v := range seq {
		buf = append(buf, v)
	}
	tracer().Debugf("building list from sequence: %d elements, size hint %d", len(buf), hint)
	return FromSlice(buf)
}
