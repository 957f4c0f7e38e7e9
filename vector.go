package vector

// Vector is a growable contiguous sequence of T that owns its storage.
// Not goroutine-safe.
//
// The elements at [0, Len()) are live. Slots in [Len(), Cap()) are allocated
// but hold unspecified values and are never read before being written.
type Vector[T any] struct {
	items    Buffer[T]
	size     int
	capacity int
	reallocs int
}

// ReserveHint carries a capacity request for NewReserved.
type ReserveHint struct {
	capacity int
}

// Reserve returns a hint that makes NewReserved pre-allocate capacity slots.
func Reserve(capacity int) ReserveHint {
	return ReserveHint{capacity: capacity}
}

// Capacity returns the requested capacity.
func (h ReserveHint) Capacity() int {
	return h.capacity
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.items.copyCheck()
	return v
}

// NewSized returns a vector of n zero-valued elements; Cap() == n.
func NewSized[T any](n int) *Vector[T] {
	v := &Vector[T]{items: NewBuffer[T](n), size: n, capacity: n}
	v.items.copyCheck()
	return v
}

// NewFilled returns a vector of n copies of value; Cap() == n.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewSized[T](n)
	s := v.items.Slots()
	for i := range s {
		s[i] = value
	}
	return v
}

// Of returns a vector holding copies of values in order; Cap() == len(values).
func Of[T any](values ...T) *Vector[T] {
	v := NewSized[T](len(values))
	copy(v.items.Slots(), values)
	return v
}

// NewReserved returns an empty vector with storage for hint.Capacity()
// elements already allocated.
func NewReserved[T any](hint ReserveHint) *Vector[T] {
	v := &Vector[T]{items: NewBuffer[T](hint.capacity), capacity: hint.capacity}
	v.items.copyCheck()
	return v
}

// Clone returns a deep copy of v: new storage of v's capacity holding
// copies of the live elements. Elements are copied by Go assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{items: NewBuffer[T](v.capacity), size: v.size, capacity: v.capacity}
	c.items.copyCheck()
	copy(c.items.Slots(), v.Slice())
	return c
}

// CopyFrom replaces v's contents with a deep copy of src.
// The copy is built first and then swapped in, so v.CopyFrom(v) is safe.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	tmp := src.Clone()
	v.Swap(tmp)
}

// Move returns a vector that owns v's storage and elements, leaving v
// empty with no storage. No elements are copied.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{size: v.size, capacity: v.capacity}
	m.items.MoveFrom(&v.items)
	v.size, v.capacity = 0, 0
	return m
}

// MoveFrom transfers src's storage and elements into v and leaves src
// empty. v's previous storage is dropped. v.MoveFrom(v) leaves v unchanged.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	tmp := src.Move()
	v.Swap(tmp)
}

// Swap exchanges size, capacity and storage with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Release drops v's storage. The vector stays usable and is empty with
// zero capacity afterwards.
func (v *Vector[T]) Release() {
	v.items.Release()
	v.size, v.capacity = 0, 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether Len() == 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns the element at index i, or a *RangeError matching
// ErrOutOfRange if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &RangeError{Index: i, Len: v.size}
	}
	return v.items.Load(i), nil
}

// Ref returns a pointer to the element at index i, or a *RangeError if i
// is not in [0, Len()). The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &RangeError{Index: i, Len: v.size}
	}
	return v.items.At(i), nil
}

// Set stores value at index i, or returns a *RangeError if i is not in
// [0, Len()).
func (v *Vector[T]) Set(i int, value T) error {
	p, err := v.Ref(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Index returns the element at index i without a range check.
// The caller guarantees 0 <= i < Len().
func (v *Vector[T]) Index(i int) T {
	debugAssert(i >= 0 && i < v.size, "Index out of range")
	return v.items.Load(i)
}

// IndexRef returns a pointer to the element at index i without a range
// check. The caller guarantees 0 <= i < Len().
func (v *Vector[T]) IndexRef(i int) *T {
	debugAssert(i >= 0 && i < v.size, "IndexRef out of range")
	return v.items.At(i)
}
