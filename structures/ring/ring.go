package ring

import "iter"

// Buffer is a fixed-capacity buffer that retains the most recently pushed
// values, evicting the oldest once the capacity is reached.
// A Buffer is not concurrency safe; it's intended for single-owner state
// like a session's command history.
type Buffer[T any] struct {
	values []T
	head   int
	size   int
}

// New creates a Buffer with the given capacity.
// Capacities below 1 are raised to 1 so a Buffer can always hold something.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{values: make([]T, capacity)}
}

// PushFront stores val as the newest value.
// If the Buffer is full, the oldest value is evicted to make room.
func (b *Buffer[T]) PushFront(val T) {
	b.head = (b.head - 1 + len(b.values)) % len(b.values)
	b.values[b.head] = val
	if b.size < len(b.values) {
		b.size++
	}
}

// At returns the value at offset i from the newest value, so At(0) is the
// most recent push and At(Len()-1) is the oldest retained value.
// The ok result is false if i is out of range.
func (b *Buffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= b.size {
		var mt T
		return mt, false
	}
	return b.values[(b.head+i)%len(b.values)], true
}

// Len returns the number of retained values.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the fixed capacity of the Buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.values)
}

// All iterates retained values from newest to oldest.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.values[(b.head+i)%len(b.values)]) {
				return
			}
		}
	}
}
