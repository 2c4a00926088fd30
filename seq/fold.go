package seq

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxFoldDepth bounds FoldRight recursion when WithMaxDepth is not
// given.
const DefaultMaxFoldDepth = 1000

// ErrFoldDepth reports that FoldRight exceeded its depth limit. Detect it
// with errors.Is.
var ErrFoldDepth = errors.New("seq: fold depth limit exceeded")

// FoldOption configures a fold.
type FoldOption func(*foldConfig)

type foldConfig struct {
	maxDepth int
}

// WithMaxDepth overrides the FoldRight depth limit.
func WithMaxDepth(n int) FoldOption {
	return func(c *foldConfig) { c.maxDepth = n }
}

// FoldLeft accumulates left to right: acc = fn(acc, v) for each pulled
// value, starting from seed. An empty sequence returns seed unchanged.
// Runs in constant stack depth with one live accumulator, so arbitrarily
// long sequences are fine.
func FoldLeft[T, R any](ctx context.Context, s *Sequence[T], seed R, fn func(R, T) (R, error)) (R, error) {
	iter := s.Iter(ctx)
	defer iter.Close()
	acc := seed
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		if !ok {
			return acc, nil
		}
		acc, err = fn(acc, val)
		if err != nil {
			var zero R
			return zero, err
		}
	}
}

// FoldRight folds right-associatively: fn(v1, fn(v2, ... fn(vn, seed))).
// Every unconsumed element holds a pending frame until the sequence
// exhausts, so the cost grows with length; past the depth limit
// (DefaultMaxFoldDepth unless overridden) the fold fails with
// ErrFoldDepth. The limit is the documented scaling contract of
// right-folding a forward-only sequence: raise it deliberately via
// WithMaxDepth, or use FoldLeft when the operation associates.
func FoldRight[T, R any](ctx context.Context, s *Sequence[T], seed R, fn func(T, R) (R, error), opts ...FoldOption) (R, error) {
	cfg := foldConfig{maxDepth: DefaultMaxFoldDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	iter := s.Iter(ctx)
	defer iter.Close()
	return foldRight(ctx, iter, seed, fn, cfg.maxDepth, cfg.maxDepth)
}

func foldRight[T, R any](ctx context.Context, iter Iterator[T], seed R, fn func(T, R) (R, error), remaining, limit int) (R, error) {
	val, ok, err := iter.Next(ctx)
	if err != nil {
		var zero R
		return zero, err
	}
	if !ok {
		return seed, nil
	}
	if remaining <= 0 {
		var zero R
		return zero, fmt.Errorf("%w after %d frames", ErrFoldDepth, limit)
	}
	rest, err := foldRight(ctx, iter, seed, fn, remaining-1, limit)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(val, rest)
}

// And pulls values until truthy rejects one; that value is returned
// immediately with a false verdict and nothing further is pulled, not even
// values whose production would fail. If every value passes, the last one
// is returned with a true verdict after exhaustion. An empty sequence
// yields the zero value and a true verdict (the canonical-true sentinel).
func And[T any](ctx context.Context, s *Sequence[T], truthy func(T) bool) (T, bool, error) {
	iter := s.Iter(ctx)
	defer iter.Close()
	var last T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return last, true, nil
		}
		if !truthy(val) {
			return val, false, nil
		}
		last = val
	}
}

// Or returns the first value truthy accepts, with a true verdict, leaving
// the rest of the sequence untouched. If every value is rejected, the last
// one is returned with a false verdict after exhaustion. An empty sequence
// yields the zero value and a false verdict (the canonical-false sentinel).
func Or[T any](ctx context.Context, s *Sequence[T], truthy func(T) bool) (T, bool, error) {
	iter := s.Iter(ctx)
	defer iter.Close()
	var last T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return last, false, nil
		}
		if truthy(val) {
			return val, true, nil
		}
		last = val
	}
}
