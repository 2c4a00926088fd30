package seq

import (
	"context"
	"iter"
)

// FromSeq adapts a standard push iterator into a Sequence.
func FromSeq[T any](src iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			next, stop := iter.Pull(src)
			return &pullIter[T]{next: next, stop: stop}
		},
	}
}

// FromSeq2 adapts a standard push iterator whose second element is an
// error. The first non-nil error terminates the sequence at that position.
func FromSeq2[T any](src iter.Seq2[T, error]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			next, stop := iter.Pull2(src)
			return &pull2Iter[T]{next: next, stop: stop}
		},
	}
}

// All exposes the sequence as a standard range-over-func iterator. A
// terminal error is yielded as the second element of the final pair;
// normal values carry a nil error.
func (s *Sequence[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.Iter(ctx)
		defer it.Close()
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(val, nil) {
				return
			}
		}
	}
}

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIter[T]) Next(_ context.Context) (T, bool, error) {
	val, ok := it.next()
	if !ok {
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

func (it *pullIter[T]) Close() error {
	it.stop()
	return nil
}

type pull2Iter[T any] struct {
	next func() (T, error, bool)
	stop func()
}

func (it *pull2Iter[T]) Next(_ context.Context) (T, bool, error) {
	val, err, ok := it.next()
	if !ok {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *pull2Iter[T]) Close() error {
	it.stop()
	return nil
}
