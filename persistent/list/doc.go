/*
Package list implements an immutable persistent singly-linked list, the classic
cons list of Lisp and friends.

A list supports three cheap operations: prepending an element (Cons), reading the
first element (Head) and dropping the first element (Tail). Each of them takes
constant time and neither of them modifies the list it is called on. Cons returns
a new incarnation of the list which re-uses every node of the original; Tail
returns a list starting at the second node of the original, without any
allocation at all. Thus, many versions of a list may share most of their memory,
transparently to clients:

    base := list.Of(2, 3)     // [2, 3]
    a := base.Cons(1)         // [1, 2, 3], shares [2, 3] with base
    b := base.Cons(7)         // [7, 2, 3], shares [2, 3] with base and a
    c, _ := a.Tail()          // [2, 3], is base

The zero value of List is an empty list and ready to use.

Complexity

    New, Cons, Head, Tail, Len, Clone      Θ(1)
    iterator creation, iterator step       Θ(1)
    full iteration, String, Hash           Θ(n)
    Equal, Compare                         Θ(min(n,m))
    FromSeq, FromSlice                     Θ(n), with Θ(n) buffer

Nodes of a list are never written after their construction. Lists are therefore
inherently concurrency-safe for reading, as long as the element type is.
Nodes no longer reachable from any list or iterator are reclaimed by the garbage
collector, which does not recurse along long chains of nodes.

Lists do not support indexed access. Clients needing random access should use a
vector type instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
