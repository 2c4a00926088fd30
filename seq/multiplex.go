package seq

import "context"

// MuxOption configures Multiplex.
type MuxOption[T any] func(*muxConfig[T])

type muxConfig[T any] struct {
	tap      func(T)
	capacity int
}

// WithTap registers fn to run exactly once per source value, at the moment
// the value is first pulled from the source. Buffered replays of the same
// value to other outputs never trigger it again.
func WithTap[T any](fn func(T)) MuxOption[T] {
	return func(c *muxConfig[T]) { c.tap = fn }
}

// WithBufferCapacity presizes the shared replay buffer. The buffer still
// grows on demand when the lag between fastest and slowest output exceeds
// it.
func WithBufferCapacity[T any](n int) MuxOption[T] {
	return func(c *muxConfig[T]) { c.capacity = n }
}

// Multiplex splits one sequence into n outputs that each replay the full
// value stream in order. Outputs may be pulled in any interleaving: the
// fastest pull drives the source, slower outputs replay from a shared
// buffer spanning only the lag window, and a value is evicted as soon as
// every open output has passed it.
//
// The source is pulled once per value no matter how many outputs exist.
// A source error is recorded at the position it occurred; each output
// receives it exactly when its own cursor arrives there, after draining
// any buffered values before it, and is terminal from then on. Outputs
// ahead of or behind that position are unaffected until they reach it.
//
// Closing an output releases its claim on the buffer immediately, so an
// abandoned output cannot pin the lag window. Closing the last open
// output closes the source iterator and reports its close error. The
// source must not be consumed anywhere else once multiplexed.
func Multiplex[T any](s *Sequence[T], n int, opts ...MuxOption[T]) []*Sequence[T] {
	cfg := muxConfig[T]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	shared := &muxShared[T]{
		source: s,
		tap:    cfg.tap,
		buf:    newRingBuf[T](cfg.capacity),
	}
	outs := make([]*Sequence[T], n)
	shared.outs = make([]*muxOut[T], n)
	for i := range outs {
		out := &muxOut[T]{shared: shared}
		shared.outs[i] = out
		outs[i] = From[T](out)
	}
	return outs
}

// muxShared is the bookkeeping shared by all outputs of one Multiplex
// call: the replay buffer, the absolute span it covers, and the recorded
// terminal state of the source.
type muxShared[T any] struct {
	source *Sequence[T]
	src    Iterator[T] // materialized on the first frontier pull
	tap    func(T)

	buf      *ringBuf[T]
	base     int // absolute position of the oldest buffered value
	frontier int // absolute position of the next value to pull

	srcDone   bool
	srcErr    error
	srcClosed bool
	closeErr  error

	outs []*muxOut[T]
}

func (sh *muxShared[T]) pull(ctx context.Context) (T, bool, error) {
	if sh.src == nil {
		sh.src = sh.source.Iter(ctx)
	}
	return sh.src.Next(ctx)
}

// minOpen returns the smallest cursor among open outputs.
func (sh *muxShared[T]) minOpen() (int, bool) {
	min, any := 0, false
	for _, o := range sh.outs {
		if o.closed {
			continue
		}
		if !any || o.pos < min {
			min, any = o.pos, true
		}
	}
	return min, any
}

// evict drops buffered values every open output has passed. When no open
// output remains the buffer empties entirely and the source is closed.
func (sh *muxShared[T]) evict() {
	min, any := sh.minOpen()
	if !any {
		sh.buf.reset()
		sh.base = sh.frontier
		sh.closeSource()
		return
	}
	for sh.base < min {
		if _, ok := sh.buf.popFront(); !ok {
			panic("seq: multiplex buffer out of sync with its cursors")
		}
		sh.base++
	}
}

func (sh *muxShared[T]) closeSource() {
	if sh.srcClosed {
		return
	}
	sh.srcClosed = true
	if sh.src != nil {
		sh.closeErr = sh.src.Close()
	}
}

// muxOut is one output cursor over the shared buffer. It implements
// Iterator; Multiplex hands each one out wrapped in a Sequence.
type muxOut[T any] struct {
	shared *muxShared[T]
	pos    int
	closed bool
}

func (o *muxOut[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if o.closed {
		return zero, false, nil
	}
	sh := o.shared
	if o.pos < sh.base {
		panic("seq: multiplex cursor behind evicted buffer")
	}
	if o.pos < sh.frontier {
		// replay a value a faster output already fetched
		val := sh.buf.at(o.pos - sh.base)
		o.pos++
		sh.evict()
		return val, true, nil
	}
	// cursor at the frontier: deliver the recorded terminal state, or pull
	if sh.srcErr != nil {
		return zero, false, sh.srcErr
	}
	if sh.srcDone {
		return zero, false, nil
	}
	val, ok, err := sh.pull(ctx)
	if err != nil {
		sh.srcErr = err
		sh.closeSource()
		return zero, false, err
	}
	if !ok {
		sh.srcDone = true
		sh.closeSource()
		return zero, false, nil
	}
	if sh.tap != nil {
		sh.tap(val)
	}
	sh.buf.push(val)
	sh.frontier++
	o.pos++
	sh.evict()
	return val, true, nil
}

// Close drops this output's cursor from the eviction bookkeeping. Further
// Next calls report exhaustion. Closing the last open output closes the
// source and returns its close error.
func (o *muxOut[T]) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	sh := o.shared
	sh.evict()
	if _, any := sh.minOpen(); !any {
		sh.closeSource()
		return sh.closeErr
	}
	return nil
}
