// Package seq provides lazy, pull-based combinators over single-pass
// sequences of values.
//
// Sequences are lazy — no work happens until values are pulled via
// Collect, ForEach, a fold, or Iter. Each stage pulls from the previous
// stage on demand, so arbitrarily long (even unbounded) streams are
// processed one in-flight value at a time. A sequence terminates by
// exhaustion or by an error raised at the exact pull that failed; either
// state is final and repeats on further pulls.
//
// # Combinators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Concat: join sequences end to end; a later input is never touched
//     before the previous one has exhausted
//   - Multiplex: split one sequence into n independently-paced replay
//     outputs sharing one bounded buffer
//
// # Terminals
//
//   - Collect, ForEach: drain into a slice or a callback
//   - Equal, EqualFunc: lockstep comparison, short-circuiting on the first
//     difference
//   - Empty: destructive one-pull emptiness probe; Peekable is the
//     non-destructive alternative
//   - And, Or: boolean short-circuit over the values of a sequence
//   - FoldLeft: iterative accumulation in constant stack depth
//   - FoldRight: right-associative recursion with an explicit depth limit
//
// # Usage
//
//	evens := seq.Filter(seq.Range(1, 101, 1), func(n int) (bool, error) {
//	    return n%2 == 0, nil
//	})
//	labels := seq.Map(evens, func(_ context.Context, n int) (string, error) {
//	    return fmt.Sprintf("#%d", n), nil
//	})
//	results, err := seq.Collect(ctx, labels)
//
// Sharing one pass over an expensive source:
//
//	outs := seq.Multiplex(entries, 2, seq.WithTap[Entry](count))
//	fast, slow := outs[0], outs[1]
//	// drain fast and slow in any interleaving; each sees every entry once
package seq
