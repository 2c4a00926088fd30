package seq

import "context"

// Map transforms each value using fn. The transformation runs at the pull
// that fetches the value, so a failing fn surfaces its error at exactly
// that pull; values already yielded are unaffected.
func Map[I, O any](s *Sequence[I], fn func(context.Context, I) (O, error)) *Sequence[O] {
	return &Sequence[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// Filter keeps only values that satisfy the predicate, preserving their
// relative order. A predicate error propagates at the pull that tested the
// value; nothing is skipped silently.
func Filter[T any](s *Sequence[T], pred func(T) (bool, error)) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: s.create(ctx), pred: pred}
		},
	}
}

// Concat joins sequences end to end. Each input is drained completely
// before the next is touched; an error from one input is delivered to the
// consumer and later inputs are never materialized, let alone pulled.
func Concat[T any](seqs ...*Sequence[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &concatIter[T]{seqs: seqs}
		},
	}
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	pred   func(T) (bool, error)
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		keep, err := it.pred(val)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if keep {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

// concatIter materializes each input lazily, only once the previous input
// has exhausted. An input that raises leaves the remaining inputs untouched.
type concatIter[T any] struct {
	seqs    []*Sequence[T]
	current Iterator[T]
	index   int
}

func (it *concatIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.index < len(it.seqs) {
		if it.current == nil {
			it.current = it.seqs[it.index].create(ctx)
		}
		val, ok, err := it.current.Next(ctx)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if ok {
			return val, true, nil
		}
		_ = it.current.Close()
		it.current = nil
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	if it.current != nil {
		err := it.current.Close()
		it.current = nil
		return err
	}
	return nil
}
