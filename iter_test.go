package vector

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	v := NewReserved[int](Reserve(8))
	assert.Empty(t, v.Slice())

	v.PushBack(1)
	v.PushBack(2)
	s := v.Slice()
	assert.Equal(t, []int{1, 2}, s)
	assert.Equal(t, 8, cap(s), "view shares the vector's storage")

	s[0] = 5
	assert.Equal(t, 5, v.Index(0))
}

func TestIterators(t *testing.T) {
	v := Of("a", "b", "c")

	var idx []int
	var vals []string
	for i, s := range v.All() {
		idx = append(idx, i)
		vals = append(vals, s)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(v.Values()))

	var back []string
	for i, s := range v.Backward() {
		assert.Equal(t, v.Index(i), s)
		back = append(back, s)
	}
	assert.Equal(t, []string{"c", "b", "a"}, back)
}

func TestIteratorsStopEarly(t *testing.T) {
	v := Of(1, 2, 3, 4)

	var seen []int
	for _, x := range v.All() {
		if x == 3 {
			break
		}
		seen = append(seen, x)
	}
	assert.Equal(t, []int{1, 2}, seen)

	seen = nil
	for x := range v.Values() {
		seen = append(seen, x)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)

	seen = nil
	for _, x := range v.Backward() {
		seen = append(seen, x)
		break
	}
	assert.Equal(t, []int{4}, seen)
}

func TestIteratorsSkipStaleSlots(t *testing.T) {
	v := Of(1, 2, 3)
	v.Clear()
	assert.Empty(t, slices.Collect(v.Values()))
}
