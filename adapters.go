package owncell

// ReleaserFunc adapts a plain closure to the Releaser capability.
type ReleaserFunc func()

// Release calls f.
func (f ReleaserFunc) Release() { f() }

// Managed pairs a value with the function that frees it, for types that
// cannot grow a Release method of their own (foreign handles, closed
// types). The free function receives the value itself, matching release
// APIs that consume their argument.
type Managed[T any] struct {
	Value T
	free  func(T)
}

// Release frees the managed value. A nil free function means the value
// needs no release.
func (m Managed[T]) Release() {
	if m.free != nil {
		m.free(m.Value)
	}
}

// Own wraps v and its free function in an armed cell:
//
//	c := owncell.Own(handle, func(h Handle) { freeHandle(h, pool) })
//	defer c.Close()
func Own[T any](v T, free func(T)) *Cell[Managed[T]] {
	return New(Managed[T]{Value: v, free: free})
}
