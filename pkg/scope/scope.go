// Package scope closes a group of resources in reverse acquisition
// order. It composes with owncell cells through io.Closer, but accepts
// any closer.
package scope

import (
	"io"

	"github.com/hashicorp/go-multierror"
)

// Scope collects closers and closes them LIFO. Not safe for concurrent
// use.
type Scope struct {
	closers []io.Closer
	closed  bool
}

// New returns an empty scope.
func New() *Scope {
	return &Scope{}
}

// Defer registers c to be closed when the scope closes. Later closers
// close first.
func (s *Scope) Defer(c io.Closer) {
	s.closers = append(s.closers, c)
}

// DeferFunc registers a close function.
func (s *Scope) DeferFunc(f func() error) {
	s.Defer(closerFunc(f))
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Close closes every registered closer in reverse order. A failing
// closer does not stop the rest; all errors are aggregated. Close is
// idempotent.
func (s *Scope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var result *multierror.Error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	s.closers = nil
	return result.ErrorOrNil()
}

// Run executes fn with a fresh scope and closes it on every exit path.
// Close errors are aggregated with fn's error.
func Run(fn func(*Scope) error) (err error) {
	s := New()
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	return fn(s)
}
