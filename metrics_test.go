package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int]()

	// Initial state
	assert.Zero(t, v.Utilization(), "no capacity means zero utilization")
	assert.Equal(t, VectorMetrics{}, v.Metrics())

	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	assert.Equal(t, VectorMetrics{
		Len:           3,
		Cap:           4,
		Reallocations: 3,
		Utilization:   0.75,
	}, v.Metrics())

	v.Clear()
	assert.Zero(t, v.Utilization())
	assert.Equal(t, 4, v.Metrics().Cap)
}

func TestReallocationsNotCountedForOwnershipTransfer(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(4)

	b.CopyFrom(a)
	b.MoveFrom(a)
	a.Swap(b)
	_ = a.Clone()
	_ = b.Move()

	assert.Zero(t, a.Reallocations())
	assert.Zero(t, b.Reallocations())
}

func TestUtilizationBounds(t *testing.T) {
	v := NewReserved[int](Reserve(16))
	for i := 0; i < 40; i++ {
		v.PushBack(i)
		u := v.Utilization()
		assert.True(t, u > 0 && u <= 1, "utilization %f out of (0, 1]", u)
	}
}
