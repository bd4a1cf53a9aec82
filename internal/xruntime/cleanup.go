//go:build !go1.24

package xruntime

import "runtime"

// AddCleanup approximates runtime.AddCleanup with a finalizer on older
// toolchains. The returned stop clears the finalizer; note that the stop
// closure itself references ptr, so callers should drop it together with
// the object.
func AddCleanup[T, S any](ptr *T, cleanup func(S), arg S) (stop func()) {
	runtime.SetFinalizer(ptr, func(p *T) {
		cleanup(arg)
	})
	return func() {
		runtime.SetFinalizer(ptr, nil)
	}
}
