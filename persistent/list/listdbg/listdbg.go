/*
Package listdbg implements helpers to debug persistent lists.

Lists derived from each other by Cons and Tail share their nodes. Seen from
the end of the lists, a family of such lists forms a tree: every list ends in
the same terminator, and lists fork where they have been consed onto a common
suffix. Sharing prints this tree, like this:

    .
    └── ⊥  ◂ empty
        └── 3
            └── 2  ◂ base
                ├── 1  ◂ a
                └── 7  ◂ b

Every node shows up exactly once, however many lists share it. Lists which are
equal by value but do not share nodes show up as separate branches.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package listdbg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/fplist/persistent/list"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'fp.listdbg'.
func tracer() tracing.Trace {
	return tracing.Select("fp.listdbg")
}

// vertex is a list node as seen from its successor.
type vertex struct {
	label    string
	names    []string // lists starting at this node
	children []any    // identities of nodes linking to this node, in order of appearance
}

// Sharing returns a tree-shaped rendering of a set of named lists, showing
// the nodes they share.
func Sharing[T any](lists map[string]list.List[T]) string {
	terminator := list.New[T]().Identity()
	vertices := map[any]*vertex{
		terminator: {label: "⊥"},
	}
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		l := lists[name]
		var chain []list.List[T]
		for s := range l.Suffixes() {
			chain = append(chain, s)
		}
		parent := terminator
		for i := len(chain) - 1; i >= 0; i-- { // walk backwards, from terminator to head
			id := chain[i].Identity()
			if _, seen := vertices[id]; !seen {
				head, _ := chain[i].Head()
				vertices[id] = &vertex{label: fmt.Sprintf("%v", head)}
				vertices[parent].children = append(vertices[parent].children, id)
			}
			parent = id
		}
		vertices[l.Identity()].names = append(vertices[l.Identity()].names, name)
	}
	tracer().Debugf("rendering %d lists with %d distinct nodes", len(lists), len(vertices)-1)
	printer := tp.New()
	printVertex(printer, vertices, terminator)
	return printer.String()
}

// Fprint writes the output of Sharing to w.
func Fprint[T any](w io.Writer, lists map[string]list.List[T]) error {
	_, err := io.WriteString(w, Sharing(lists))
	return err
}

// printVertex adds the sub-tree of vertices starting at id to printer. It walks
// with an explicit stack, so long lists do not grow the goroutine stack.
func printVertex(printer tp.Tree, vertices map[any]*vertex, id any) {
	type pending struct {
		parent tp.Tree
		id     any
	}
	stack := []pending{{printer, id}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := vertices[top.id]
		label := v.label
		if len(v.names) > 0 {
			label += "  ◂ " + strings.Join(v.names, ", ")
		}
		branch := top.parent.AddBranch(label)
		for i := len(v.children) - 1; i >= 0; i-- { // reversed, so siblings pop in order
			stack = append(stack, pending{branch, v.children[i]})
		}
	}
}
