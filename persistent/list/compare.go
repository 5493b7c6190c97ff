package list

import "cmp"

// Functions in this file require capabilities of the element type which lists in
// general do not need. Go does not allow methods with additional type constraints,
// so they are package level functions, similar to those of package slices.
//
// All of them walk both lists with iterators in lock-step and stop at the first
// pair of elements deciding the result.

// Equal reports whether a and b contain the same elements in the same order.
// Lists of different length are never equal. Floating point NaNs are not
// considered equal.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.length != b.length {
		return false
	}
	ia, ib := a.cursor(), b.cursor()
	for x, ok := ia.Next(); ok; x, ok = ia.Next() {
		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// Compare compares the elements of a and b lexicographically, using cmp.Compare on
// each pair of elements. The first pair which differs determines the result. If a
// is a strict prefix of b, a is less than b. The result is
//
//     -1 if a < b
//      0 if a == b
//     +1 if a > b
//
// Compare is a total order, even for floating point elements, as cmp.Compare
// considers NaN less than any other value and equal to NaN.
func Compare[T cmp.Ordered](a, b List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare, but compares elements with compare.
func CompareFunc[T, U any](a List[T], b List[U], compare func(T, U) int) int {
	c, _ := PartialCompareFunc(a, b, func(x T, y U) (int, bool) {
		return compare(x, y), true
	})
	return c
}

// PartialCompare compares the elements of a and b lexicographically, using the
// operators < and > on each pair of elements. It respects the partial order of
// floating point numbers: if any pair compared is unordered (i.e., involves a NaN),
// a and b are incomparable and ok=false will be returned. This is true even if a
// later pair of elements would have differed; comparison stops at the first pair
// which is unordered.
func PartialCompare[T cmp.Ordered](a, b List[T]) (c int, ok bool) {
	return PartialCompareFunc(a, b, partialOrder[T])
}

// PartialCompareFunc is like PartialCompare, but compares elements with compare.
// compare returns ok=false for a pair of elements which is unordered.
func PartialCompareFunc[T, U any](a List[T], b List[U], compare func(T, U) (int, bool)) (int, bool) {
	ia, ib := a.cursor(), b.cursor()
	for {
		x, okx := ia.Next()
		y, oky := ib.Next()
		switch {
		case !okx && !oky:
			return 0, true
		case !okx:
			return -1, true
		case !oky:
			return +1, true
		}
		c, ok := compare(x, y)
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
}

func partialOrder[T cmp.Ordered](x, y T) (int, bool) {
	switch {
	case x < y:
		return -1, true
	case x > y:
		return +1, true
	case x == y:
		return 0, true
	}
	return 0, false // at least one of x, y is NaN
}
