// Package vector implements a growable, contiguous, owning sequence of
// homogeneous elements for Go, built on a small owning-buffer type.
//
// # Overview
//
// A Vector tracks two numbers: its size (how many elements are logically
// present) and its capacity (how many slots are allocated). Appending to a
// full vector doubles the capacity, so a run of N appends costs O(N) element
// moves in total:
//
//   - PushBack: O(1) amortized
//   - Insert / Erase: O(Len()-pos)
//   - Clear / PopBack / Resize (shrinking): O(1), no deallocation
//   - Swap / Move: O(1), no allocation
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3) // Len() == 3, Cap() == 3
//	v.PushBack(4)           // Cap() == 6
//
//	x, err := v.At(10)      // checked: err wraps vector.ErrOutOfRange
//	y := v.Index(1)         // unchecked fast path
//
//	w := v.Clone()          // deep copy, independent storage
//	u := v.Move()           // ownership transfer, v is left empty
//
//	// Pre-reserve without creating elements
//	r := vector.NewReserved[string](vector.Reserve(64))
//
// # Ownership
//
// Storage lives in a Buffer, which owns at most one block and has no
// duplicating entry point. Every Vector owns exactly one Buffer. Vectors are
// handed around as pointers; copying a Vector or Buffer struct by value is a
// programmer error that go vet reports. A copied Vector panics as soon as it
// grows, moves, swaps or releases storage; plain reads and writes through
// the copy are not detected and alias the original's storage.
//
// # Shallow Removal
//
// Clear, PopBack and shrinking Resize only move the size marker. Elements
// past the new size are not zeroed, so whatever they reference stays
// reachable until the slot is overwritten or the vector is released. Element
// types that hold external resources (files, connections) must be cleaned
// up by the caller before removal.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. Callers that share a vector between
// goroutines must serialize access themselves, e.g. with a sync.Mutex.
//
// # Debug Assertions
//
// Preconditions of the unchecked operations (Index, PopBack, Erase, Insert
// positions) are verified only when built with the vectordebug tag:
//
//	go test -tags vectordebug ./...
package vector
