package seq

import "math/bits"

// ringBuf is a circular-array FIFO with random access into its live span.
// Capacity stays a power of two so positions wrap with a mask instead of a
// modulo.
type ringBuf[T any] struct {
	buf  []T
	head int // index of the oldest value
	size int // number of live values
	mask int // len(buf) - 1
}

func newRingBuf[T any](capacity int) *ringBuf[T] {
	if capacity < 1 {
		capacity = 16
	}
	capacity = 1 << uint(bits.Len(uint(capacity-1)))
	return &ringBuf[T]{buf: make([]T, capacity), mask: capacity - 1}
}

// push appends a value at the tail, doubling the backing array when full.
func (rb *ringBuf[T]) push(val T) {
	if rb.size == len(rb.buf) {
		rb.grow()
	}
	rb.buf[(rb.head+rb.size)&rb.mask] = val
	rb.size++
}

// popFront removes and returns the oldest value.
func (rb *ringBuf[T]) popFront() (T, bool) {
	var zero T
	if rb.size == 0 {
		return zero, false
	}
	val := rb.buf[rb.head]
	rb.buf[rb.head] = zero // release the reference
	rb.head = (rb.head + 1) & rb.mask
	rb.size--
	return val, true
}

// at returns the value i positions past the head without removing it.
// i must be in [0, len).
func (rb *ringBuf[T]) at(i int) T {
	return rb.buf[(rb.head+i)&rb.mask]
}

func (rb *ringBuf[T]) len() int { return rb.size }

// reset drops all values and releases their references.
func (rb *ringBuf[T]) reset() {
	clear(rb.buf)
	rb.head = 0
	rb.size = 0
}

func (rb *ringBuf[T]) grow() {
	newCap := len(rb.buf) * 2
	newBuf := make([]T, newCap)
	if rb.head+rb.size <= len(rb.buf) {
		copy(newBuf, rb.buf[rb.head:rb.head+rb.size])
	} else {
		// live span wraps around the end of the array
		n := copy(newBuf, rb.buf[rb.head:])
		copy(newBuf[n:], rb.buf[:(rb.head+rb.size)&rb.mask])
	}
	rb.buf = newBuf
	rb.head = 0
	rb.mask = newCap - 1
}
