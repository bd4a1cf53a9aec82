package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/owncell"
)

func TestCloseRunsLIFO(t *testing.T) {
	var order []string
	s := New()
	for _, name := range []string{"a", "b", "c"} {
		name := name
		s.DeferFunc(func() error {
			order = append(order, name)
			return nil
		})
	}
	require.NoError(t, s.Close())
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestCloseAggregatesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	var order []string
	s := New()
	s.DeferFunc(func() error {
		order = append(order, "a")
		return errA
	})
	s.DeferFunc(func() error {
		order = append(order, "b")
		return errB
	})
	err := s.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{"b", "a"}, order, "a failing closer stopped the rest")
}

func TestCloseIdempotent(t *testing.T) {
	n := 0
	s := New()
	s.DeferFunc(func() error {
		n++
		return nil
	})
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, n)
}

func TestRunClosesOnError(t *testing.T) {
	errFn := errors.New("fn failed")
	n := 0
	err := Run(func(s *Scope) error {
		c := owncell.New(owncell.ReleaserFunc(func() { n++ }))
		s.Defer(c)
		return errFn
	})
	assert.ErrorIs(t, err, errFn)
	assert.Equal(t, 1, n)
}

func TestRunCombinesCloseError(t *testing.T) {
	errFn := errors.New("fn failed")
	errClose := errors.New("close failed")
	err := Run(func(s *Scope) error {
		s.DeferFunc(func() error { return errClose })
		return errFn
	})
	assert.ErrorIs(t, err, errFn)
	assert.ErrorIs(t, err, errClose)
}

func TestScopeClosesCells(t *testing.T) {
	var freed []string
	err := Run(func(s *Scope) error {
		a := owncell.Own("first", func(v string) { freed = append(freed, v) })
		s.Defer(a)
		b := owncell.Own("second", func(v string) { freed = append(freed, v) })
		s.Defer(b)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, freed)
}
