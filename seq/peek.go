package seq

import "context"

// Peekable wraps an Iterator with one slot of look-ahead. It is the
// non-destructive alternative to Empty: Peek fetches the next value
// without consuming it, and a later Next delivers that same value.
// Peekable itself implements Iterator.
type Peekable[T any] struct {
	source   Iterator[T]
	buffered bool
	val      T
}

// NewPeekable wraps source with one slot of look-ahead.
func NewPeekable[T any](source Iterator[T]) *Peekable[T] {
	return &Peekable[T]{source: source}
}

// Peek returns the next value without advancing past it. Repeated peeks
// return the same value until Next consumes it. Exhaustion and errors
// report exactly as Next would.
func (p *Peekable[T]) Peek(ctx context.Context) (T, bool, error) {
	if p.buffered {
		return p.val, true, nil
	}
	val, ok, err := p.source.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	p.val = val
	p.buffered = true
	return val, true, nil
}

// Next returns the peeked value if one is held, otherwise pulls the source.
func (p *Peekable[T]) Next(ctx context.Context) (T, bool, error) {
	if p.buffered {
		val := p.val
		var zero T
		p.val = zero
		p.buffered = false
		return val, true, nil
	}
	return p.source.Next(ctx)
}

// Close releases the underlying iterator. A held look-ahead value is
// discarded.
func (p *Peekable[T]) Close() error {
	p.buffered = false
	var zero T
	p.val = zero
	return p.source.Close()
}
