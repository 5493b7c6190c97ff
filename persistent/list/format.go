package list

import (
	"fmt"
	"io"
	"strings"
)

// String renders l as
//
//     [e0, e1, …, en-1]
//
// with elements formatted with %v, from head to tail. An empty list renders as [].
func (l List[T]) String() string {
	b := strings.Builder{}
	l.write(&b, "%v")
	return b.String()
}

// Format implements fmt.Formatter. The verb and its flags are applied to every
// element, similar to what package fmt does for slices:
//
//     fmt.Printf("%.2f", list.Of(1.0, 2.5))   // prints [1.00, 2.50]
//
// %+v additionally prints the length of the list:
//
//     fmt.Printf("%+v", list.Of(1, 2))          // prints [1, 2] (len 2)
//
func (l List[T]) Format(f fmt.State, verb rune) {
	l.write(f, fmt.FormatString(f, verb))
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(f, " (len %d)", l.length)
	}
}

func (l List[T]) write(w io.Writer, format string) {
	io.WriteString(w, "[")
	it := l.cursor()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Fprintf(w, format, v)
		if it.Len() > 0 {
			io.WriteString(w, ", ")
		}
	}
	io.WriteString(w, "]")
}
