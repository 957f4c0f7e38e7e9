package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// noCopy may be embedded into structs which must not be copied after
// first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns zero or one heap block of T slots. It keeps no count of live
// elements; that bookkeeping belongs to the Vector built on top of it.
//
// A Buffer has no duplicating entry point. Ownership moves with Move and
// Swap only, and a Buffer copied by value panics when used.
type Buffer[T any] struct {
	_    noCopy
	addr *Buffer[T] // of receiver, to detect copies by value
	data []T
}

// NewBuffer allocates storage for count zero-valued elements.
// If count == 0 the buffer holds no storage.
// Panics with an error wrapping ErrTooLarge if count is negative or the
// block size overflows.
func NewBuffer[T any](count int) Buffer[T] {
	return Buffer[T]{data: allocSlots[T](count)}
}

// AdoptBuffer takes ownership of an already-allocated block. The caller must
// not use raw afterwards. A nil or empty slice yields an empty buffer.
func AdoptBuffer[T any](raw []T) Buffer[T] {
	if len(raw) == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{data: raw[:len(raw):len(raw)]}
}

// allocSlots returns a zeroed block of n elements, or nil when n == 0.
func allocSlots[T any](n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if n < 0 || (elemSize > 0 && uintptr(n) > uintptr(math.MaxInt)/elemSize) {
		panic(fmt.Errorf("%w: cannot allocate %d elements of %d bytes", ErrTooLarge, n, elemSize))
	}
	return make([]T, n)
}

func (b *Buffer[T]) copyCheck() {
	if b.addr == nil {
		b.addr = b
	} else if b.addr != b {
		panic("vector: illegal use of non-zero Buffer copied by value")
	}
}

// Move transfers the owned block to the returned Buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	b.copyCheck()
	data := b.data
	b.data = nil
	return Buffer[T]{data: data}
}

// MoveFrom releases b's block and takes ownership of src's block, leaving
// src empty. It is the move-assignment form of Move. b.MoveFrom(b) is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	b.copyCheck()
	if src == b {
		return
	}
	src.copyCheck()
	b.data = src.data
	src.data = nil
}

// Release drops the owned block. Safe to call on an empty buffer.
func (b *Buffer[T]) Release() {
	b.copyCheck()
	b.data = nil
}

// At returns a pointer to slot i. There is no bounds checking beyond what
// the runtime does for the block itself.
func (b *Buffer[T]) At(i int) *T {
	return &b.data[i]
}

// Load returns a copy of slot i.
func (b *Buffer[T]) Load(i int) T {
	return b.data[i]
}

// Valid reports whether b owns a block.
func (b *Buffer[T]) Valid() bool {
	return b.data != nil
}

// Slots returns the owned block, nil if empty. The slice aliases b's
// storage and must not outlive the next Release, Move or MoveFrom.
func (b *Buffer[T]) Slots() []T {
	return b.data
}

// Swap exchanges the owned blocks of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.copyCheck()
	other.copyCheck()
	b.data, other.data = other.data, b.data
}
