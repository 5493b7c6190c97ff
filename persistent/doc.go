/*
Package persistent collects immutable data structures with structural sharing.
Currently it holds a single one, the singly-linked cons list in sub-package list.

A list is never changed after construction. Operations which look like updates,
such as prepending an element or dropping the first one, return a new list and
leave the receiver intact. The new list reuses the cells of the old one: consing 0
onto [1, 2, 3] allocates one cell holding 0, linked to the unchanged cells of
[1, 2, 3]. Taking the tail of [0, 1, 2, 3] allocates nothing at all.

As no cell is ever written twice, lists may be handed to other goroutines and
read there without locking. Copying a list copies a pointer and a length.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
