// Package owncell holds values whose cleanup must consume them.
//
// Some release functions take their resource by value together with
// auxiliary arguments, typically because they hand the resource back to
// foreign code that assumes ownership of its inputs. A Cell owns exactly
// one such value, forwards access to it, and on Close moves the value out
// of its slot before releasing it, so the release always runs on an owned
// value and runs at most once.
package owncell

import (
	"io"

	"github.com/rawbytedev/owncell/internal/xruntime"
)

// Releaser is the capability a held type must provide: release the
// instance, consuming it. By the time Release runs the cell has already
// vacated its slot, so the receiver is the only copy left. There is no
// error return; a release that can fail has to handle the failure itself,
// since it runs at a point with no caller to report to.
type Releaser interface {
	Release()
}

// slot is the single storage location of a cell: Present(val) when
// present is true, Vacated otherwise.
type slot[T Releaser] struct {
	val     T
	present bool
}

// take vacates the slot and returns the value it held. The slot is
// marked vacated before the value escapes, so a re-entrant look at the
// cell never observes "present" mid-teardown. On a vacated slot it
// reports false and does nothing.
func (s *slot[T]) take() (T, bool) {
	if !s.present {
		var zero T
		return zero, false
	}
	v := s.val
	var zero T
	s.val = zero
	s.present = false
	return v, true
}

// Cell owns one value of a Releaser type and guarantees its release runs
// at most once. Use it with a deferred Close:
//
//	c := owncell.New(openFrame(pool))
//	defer c.Close()
//
// A cell is single-use and not safe for concurrent use; its correctness
// rests on one goroutine owning the slot at the instant of teardown.
type Cell[T Releaser] struct {
	s    *slot[T]
	stop func()
}

// New returns an armed cell owning v.
func New[T Releaser](v T) *Cell[T] {
	return &Cell[T]{s: &slot[T]{val: v, present: true}}
}

// NewGuarded is New plus a GC backstop: if the cell becomes unreachable
// while still armed (a forgotten Close), the runtime releases the value
// eventually. Close and Extract cancel the backstop, so the
// at-most-once guarantee is unchanged. The backstop is a safety net for
// leaks, not a substitute for a deferred Close.
func NewGuarded[T Releaser](v T) *Cell[T] {
	c := New(v)
	c.stop = xruntime.AddCleanup(c, releaseSlot[T], c.s)
	return c
}

// releaseSlot is the backstop body. A named function keeps the cleanup
// from capturing the cell and pinning it alive.
func releaseSlot[T Releaser](s *slot[T]) {
	if v, ok := s.take(); ok {
		v.Release()
	}
}

// Get returns a copy of the held value. The cell must still be armed.
func (c *Cell[T]) Get() T {
	return c.s.val
}

// Ref returns a pointer to the held value for in-place mutation.
// Mutations are visible to later Get calls and to the eventual Release.
// The cell must still be armed; the pointer must not outlive it.
func (c *Cell[T]) Ref() *T {
	return &c.s.val
}

// Extract disarms the cell: it vacates the slot and hands the value back
// without releasing it. The caller takes over the release obligation.
// The cell must not be used afterwards. Extract on a vacated cell is a
// misuse and panics.
func (c *Cell[T]) Extract() T {
	v, ok := c.s.take()
	if !ok {
		panic("owncell: Extract on a vacated cell")
	}
	c.disarm()
	return v
}

// Close vacates the slot and releases the taken value. Closing an
// already vacated cell is a no-op. The error is always nil; it exists so
// a cell can be handed to anything accepting an io.Closer. A panic out
// of Release propagates to the caller.
func (c *Cell[T]) Close() error {
	v, ok := c.s.take()
	if !ok {
		return nil
	}
	c.disarm()
	v.Release()
	return nil
}

func (c *Cell[T]) disarm() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

var _ io.Closer = (*Cell[ReleaserFunc])(nil)
