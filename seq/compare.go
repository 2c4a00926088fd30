package seq

import "context"

// Equal reports whether two sequences yield equal values in the same
// order. Both sides are pulled in lockstep and only as far as needed: the
// first differing position decides, and neither side is pulled past it.
// Two empty sequences are equal; a prefix is not equal to its extension.
func Equal[T comparable](ctx context.Context, a, b *Sequence[T]) (bool, error) {
	return EqualFunc(ctx, a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with an explicit comparison function, for element
// types that are not comparable or that need a custom notion of equality.
func EqualFunc[A, B any](ctx context.Context, a *Sequence[A], b *Sequence[B], eq func(A, B) bool) (bool, error) {
	ia := a.Iter(ctx)
	defer ia.Close()
	ib := b.Iter(ctx)
	defer ib.Close()
	for {
		va, oka, err := ia.Next(ctx)
		if err != nil {
			return false, err
		}
		vb, okb, err := ib.Next(ctx)
		if err != nil {
			return false, err
		}
		if !oka || !okb {
			return oka == okb, nil
		}
		if !eq(va, vb) {
			return false, nil
		}
	}
}

// Empty reports whether the sequence yields no values, by attempting to
// pull exactly one. The probe is destructive: when a value is present it
// is consumed and discarded along with the probed materialization, so call
// Empty only on a sequence you are done with afterwards. Wrap an iterator
// in a Peekable to check for a next value without losing it.
func Empty[T any](ctx context.Context, s *Sequence[T]) (bool, error) {
	iter := s.Iter(ctx)
	defer iter.Close()
	_, ok, err := iter.Next(ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
