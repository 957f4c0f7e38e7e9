package vector

import "fmt"

// Clear sets Len() to 0. Capacity and storage are kept and the old
// elements are not zeroed (see "Shallow Removal" in the package docs).
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets Len() to n.
//
// If n <= Cap() only the size changes: elements exposed by growing hold
// whatever the slots last contained and must be written before being read.
// Otherwise the capacity grows to max(2*Cap(), n), the live elements are
// relocated to the new storage and the slots past them are zero.
// Panics with an error wrapping ErrTooLarge if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrTooLarge, n))
	}
	if n > v.capacity {
		v.grow(n)
	}
	v.size = n
}

// Reserve makes Cap() at least n, relocating the live elements if storage
// has to be replaced. Len() is unchanged. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.relocate(n)
	}
}

// PushBack appends value. When the vector is full the capacity grows to
// max(2*Cap(), Len()+1), so an empty vector gets exactly one slot.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.grow(v.size + 1)
	}
	*v.items.At(v.size) = value
	v.size++
}

// Insert places value at index pos, shifting the elements at [pos, Len())
// one slot toward the end, and returns pos. pos == Len() appends.
// Growth follows PushBack. The caller guarantees 0 <= pos <= Len().
func (v *Vector[T]) Insert(pos int, value T) int {
	debugAssert(pos >= 0 && pos <= v.size, "Insert position out of range")
	if v.size == v.capacity {
		v.grow(v.size + 1)
	}
	s := v.items.Slots()
	// copy handles the overlap as a backward move.
	copy(s[pos+1:v.size+1], s[pos:v.size])
	s[pos] = value
	v.size++
	return pos
}

// PopBack removes the last element without zeroing its slot.
// The caller guarantees the vector is not empty.
func (v *Vector[T]) PopBack() {
	debugAssert(v.size > 0, "PopBack on empty vector")
	v.size--
}

// Erase removes the element at index pos, shifting the following elements
// one slot toward the front, and returns pos, which now holds the element
// that followed or equals Len(). The caller guarantees 0 <= pos < Len().
func (v *Vector[T]) Erase(pos int) int {
	debugAssert(v.size > 0, "Erase on empty vector")
	debugAssert(pos >= 0 && pos < v.size, "Erase position out of range")
	s := v.items.Slots()
	copy(s[pos:v.size-1], s[pos+1:v.size])
	v.size--
	return pos
}

// grow makes room for at least required elements, doubling the capacity
// when that is larger.
func (v *Vector[T]) grow(required int) {
	v.relocate(max(v.capacity*2, required))
}

// relocate moves the live elements into fresh storage of newCap slots and
// drops the old block.
func (v *Vector[T]) relocate(newCap int) {
	next := NewBuffer[T](newCap)
	copy(next.Slots(), v.Slice())
	v.items.MoveFrom(&next)
	v.capacity = newCap
	v.reallocs++
}
