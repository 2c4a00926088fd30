package seq

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Sequence represents a lazy, single-pass stream of values.
// No work happens until values are pulled via Collect, ForEach, or Iter.
// A Sequence owns its upstream exclusively: it must be consumed by at most
// one downstream. Use Multiplex to share one source between consumers.
type Sequence[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// From creates a sequence from an existing Iterator.
func From[T any](iter Iterator[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a sequence from a slice of values.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a sequence from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Sequence[T] {
	return &Sequence[T]{create: fn}
}

// Range creates a sequence of integers from start (inclusive) to end
// (exclusive), advancing by step. A negative step counts down; a zero step
// yields an empty sequence.
func Range(start, end, step int) *Sequence[int] {
	return &Sequence[int]{
		create: func(_ context.Context) Iterator[int] {
			return &rangeIter{next: start, end: end, step: step}
		},
	}
}

// --- Terminals ---

// Collect pulls the sequence to exhaustion and returns all values as a slice.
// On error, the values pulled before the failure are returned alongside it.
func Collect[T any](ctx context.Context, s *Sequence[T]) ([]T, error) {
	iter := s.Iter(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each.
func ForEach[T any](ctx context.Context, s *Sequence[T], fn func(context.Context, T) error) error {
	iter := s.Iter(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// Iter materializes the sequence and returns its Iterator. The caller must
// Close() it. The iterator latches its terminal signal: after exhaustion or
// an error, every further Next repeats the same result.
func (s *Sequence[T]) Iter(ctx context.Context) Iterator[T] {
	return &fusedIter[T]{source: s.create(ctx)}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type rangeIter struct {
	next, end, step int
}

func (it *rangeIter) Next(_ context.Context) (int, bool, error) {
	if it.step == 0 {
		return 0, false, nil
	}
	if it.step > 0 && it.next >= it.end || it.step < 0 && it.next <= it.end {
		return 0, false, nil
	}
	val := it.next
	it.next += it.step
	return val, true, nil
}

func (it *rangeIter) Close() error { return nil }

// fusedIter pins the terminal state of its source: once the source has
// exhausted or raised, every further pull repeats the same signal instead
// of reaching the source again. This keeps a chain of single-pass stages
// from appearing to restart after termination.
type fusedIter[T any] struct {
	source Iterator[T]
	done   bool
	err    error
}

func (it *fusedIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, it.err
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		it.done = true
		it.err = err
		return zero, false, err
	}
	if !ok {
		it.done = true
		return zero, false, nil
	}
	return val, true, nil
}

func (it *fusedIter[T]) Close() error { return it.source.Close() }
