//go:build go1.24

package xruntime

import "runtime"

// AddCleanup schedules cleanup(arg) to run once ptr becomes unreachable.
// The returned stop cancels the cleanup if it has not run yet.
func AddCleanup[T, S any](ptr *T, cleanup func(S), arg S) (stop func()) {
	c := runtime.AddCleanup(ptr, cleanup, arg)
	return c.Stop
}
