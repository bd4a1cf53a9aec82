package owncell

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// The helpers below keep a cell transparent: each one delegates to the
// held value and adds no semantics of its own. Capabilities that depend
// on properties of T (equality, ordering, hashing) are package functions
// with the matching constraint rather than methods, since Go cannot grow
// a type's method set conditionally.

// Cloner is the capability a held type may provide to control how its
// cells duplicate.
type Cloner[T any] interface {
	Clone() T
}

// String formats the held value as fmt would format it directly.
func (c *Cell[T]) String() string {
	if !c.s.present {
		return "<vacated>"
	}
	return fmt.Sprint(c.s.val)
}

// Clone returns a new armed cell over a duplicate of the held value,
// using the value's own Clone when it has one and a value copy
// otherwise. The clone is guarded iff c is. Both cells release
// independently.
func (c *Cell[T]) Clone() *Cell[T] {
	v := c.s.val
	if cl, ok := any(v).(Cloner[T]); ok {
		v = cl.Clone()
	}
	if c.stop != nil {
		return NewGuarded(v)
	}
	return New(v)
}

// Zero returns an armed cell over T's zero value.
func Zero[T Releaser]() *Cell[T] {
	var v T
	return New(v)
}

// Equal reports whether two cells hold equal values.
func Equal[T interface {
	Releaser
	comparable
}](a, b *Cell[T]) bool {
	return a.s.val == b.s.val
}

// Compare orders two cells by their held values.
func Compare[T interface {
	Releaser
	cmp.Ordered
}](a, b *Cell[T]) int {
	return cmp.Compare(a.s.val, b.s.val)
}

// Hash hashes the held value with the given seed. Cells holding equal
// values hash identically.
func Hash[T interface {
	Releaser
	comparable
}](seed maphash.Seed, c *Cell[T]) uint64 {
	return maphash.Comparable(seed, c.s.val)
}
