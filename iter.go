package vector

import "iter"

// Slice returns the live elements as a slice aliasing v's storage.
// It is invalidated by any operation that reallocates.
func (v *Vector[T]) Slice() []T {
	return v.items.Slots()[:v.size]
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.items.Load(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.items.Load(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, last element first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.items.Load(i)) {
				return
			}
		}
	}
}
