package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// OverflowPolicy controls what a full ring buffer does with new elements.
type OverflowPolicy int

const (
	// OverwriteOldest silently replaces the oldest element when the buffer is full.
	OverwriteOldest OverflowPolicy = iota
	// RejectWhenFull returns ErrBufferFull instead of replacing anything.
	RejectWhenFull
)

// DropPolicy controls which elements survive a shrinking Resize.
type DropPolicy int

const (
	// DropOldest keeps the newest elements.
	DropOldest DropPolicy = iota
	// DropNewest keeps the oldest elements.
	DropNewest
)

// Ring is a bounded circular buffer. The zero value is unusable; construct
// with NewRing. It is not safe for concurrent use.
type Ring[T any] struct {
	buf    []T
	head   int
	size   int
	policy OverflowPolicy
}

// NewRing creates a ring buffer with the given capacity and overflow policy.
// Zero capacity is valid; every push to such a buffer fails with ErrZeroCapacity.
func NewRing[T any](capacity int, policy OverflowPolicy) (*Ring[T], error) {
	if capacity < 0 {
		return nil, Tag(ErrNegativeCapacity, "capacity", capacity)
	}
	return &Ring[T]{buf: make([]T, capacity), policy: policy}, nil
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the buffer capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Empty reports whether the buffer holds no elements.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether the buffer holds Cap() elements.
func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

// Policy returns the overflow policy.
func (r *Ring[T]) Policy() OverflowPolicy { return r.policy }

// index maps a logical position to a slot in the backing slice.
func (r *Ring[T]) index(pos int) int {
	return (r.head + pos) % len(r.buf)
}

// PushBack appends v as the newest element. When the buffer is full the
// overflow policy decides: OverwriteOldest replaces the oldest element,
// RejectWhenFull fails with ErrBufferFull.
func (r *Ring[T]) PushBack(v T) error {
	if len(r.buf) == 0 {
		return ErrZeroCapacity
	}
	if r.Full() {
		if r.policy == RejectWhenFull {
			return Tag(ErrBufferFull, "capacity", len(r.buf))
		}
		r.buf[r.head] = v
		r.head = r.index(1)
		return nil
	}
	r.buf[r.index(r.size)] = v
	r.size++
	return nil
}

// PushFront prepends v as the oldest element. When the buffer is full the
// overflow policy decides: OverwriteOldest replaces the newest element,
// RejectWhenFull fails with ErrBufferFull.
func (r *Ring[T]) PushFront(v T) error {
	if len(r.buf) == 0 {
		return ErrZeroCapacity
	}
	if r.Full() && r.policy == RejectWhenFull {
		return Tag(ErrBufferFull, "capacity", len(r.buf))
	}
	r.head = (r.head + len(r.buf) - 1) % len(r.buf)
	r.buf[r.head] = v
	if !r.Full() {
		r.size++
	}
	return nil
}

// PopFront removes and returns the oldest element.
func (r *Ring[T]) PopFront() (T, error) {
	var zero T
	if r.Empty() {
		return zero, Tag(ErrBufferEmpty, "capacity", len(r.buf))
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero // release the reference
	r.head = r.index(1)
	r.size--
	return v, nil
}

// PopBack removes and returns the newest element.
func (r *Ring[T]) PopBack() (T, error) {
	var zero T
	if r.Empty() {
		return zero, Tag(ErrBufferEmpty, "capacity", len(r.buf))
	}
	last := r.index(r.size - 1)
	v := r.buf[last]
	r.buf[last] = zero
	r.size--
	return v, nil
}

// At returns the element at logical position pos, 0 being the oldest.
func (r *Ring[T]) At(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= r.size {
		err := Tag(ErrOutOfRange, "index", pos)
		return zero, zerr.With(err, "len", r.size)
	}
	return r.buf[r.index(pos)], nil
}

// Front returns the oldest element without removing it.
func (r *Ring[T]) Front() (T, error) {
	var zero T
	if r.Empty() {
		return zero, Tag(ErrBufferEmpty, "capacity", len(r.buf))
	}
	return r.buf[r.head], nil
}

// Back returns the newest element without removing it.
func (r *Ring[T]) Back() (T, error) {
	var zero T
	if r.Empty() {
		return zero, Tag(ErrBufferEmpty, "capacity", len(r.buf))
	}
	return r.buf[r.index(r.size-1)], nil
}

// InsertAt inserts v at logical position pos in [0, Len()], shifting newer
// elements towards the back. On a full buffer, RejectWhenFull fails with
// ErrBufferFull; OverwriteOldest first drops the oldest element, and pos is
// then interpreted against the shortened buffer.
func (r *Ring[T]) InsertAt(pos int, v T) error {
	if len(r.buf) == 0 {
		return ErrZeroCapacity
	}
	if pos < 0 || pos > r.size {
		err := Tag(ErrOutOfRange, "index", pos)
		return zerr.With(err, "len", r.size)
	}
	if r.Full() {
		if r.policy == RejectWhenFull {
			return Tag(ErrBufferFull, "capacity", len(r.buf))
		}
		if _, err := r.PopFront(); err != nil {
			return err
		}
		if pos > 0 {
			pos--
		}
	}
	for i := r.size; i > pos; i-- {
		r.buf[r.index(i)] = r.buf[r.index(i-1)]
	}
	r.buf[r.index(pos)] = v
	r.size++
	return nil
}

// RemoveAt removes and returns the element at logical position pos,
// shifting newer elements towards the front.
func (r *Ring[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if r.Empty() {
		return zero, Tag(ErrBufferEmpty, "capacity", len(r.buf))
	}
	if pos < 0 || pos >= r.size {
		err := Tag(ErrOutOfRange, "index", pos)
		return zero, zerr.With(err, "len", r.size)
	}
	v := r.buf[r.index(pos)]
	for i := pos; i < r.size-1; i++ {
		r.buf[r.index(i)] = r.buf[r.index(i+1)]
	}
	r.buf[r.index(r.size-1)] = zero
	r.size--
	return v, nil
}

// Resize changes the capacity. Growing preserves all elements. Shrinking
// below Len() drops elements according to the drop policy: DropOldest keeps
// the newest, DropNewest keeps the oldest.
func (r *Ring[T]) Resize(capacity int, drop DropPolicy) error {
	if capacity < 0 {
		return Tag(ErrNegativeCapacity, "capacity", capacity)
	}
	if capacity == len(r.buf) {
		return nil
	}

	keep := min(r.size, capacity)
	offset := 0
	if drop == DropOldest {
		offset = r.size - keep
	}

	buf := make([]T, capacity)
	for i := range keep {
		buf[i] = r.buf[r.index(offset+i)]
	}

	r.buf = buf
	r.head = 0
	r.size = keep
	return nil
}

// Clear removes all elements, releasing references to them.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.size {
		r.buf[r.index(i)] = zero
	}
	r.head = 0
	r.size = 0
}

// Values iterates from the oldest to the newest element.
func (r *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.size {
			if !yield(r.buf[r.index(i)]) {
				return
			}
		}
	}
}

// Snapshot returns the elements oldest-first in a freshly allocated slice.
// The ring itself is left untouched.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.size)
	for i := range r.size {
		out[i] = r.buf[r.index(i)]
	}
	return out
}
