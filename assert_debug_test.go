//go:build vectordebug

package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugAssertions(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		fn   func()
	}{
		{"index past size", "vector: Index out of range", func() {
			v := NewReserved[int](Reserve(4))
			v.PushBack(1)
			v.Index(1) // within capacity, still rejected
		}},
		{"negative index", "vector: IndexRef out of range", func() { Of(1).IndexRef(-1) }},
		{"pop empty", "vector: PopBack on empty vector", func() { New[int]().PopBack() }},
		{"erase empty", "vector: Erase on empty vector", func() { New[int]().Erase(0) }},
		{"erase at end", "vector: Erase position out of range", func() { Of(1, 2).Erase(2) }},
		{"insert past end", "vector: Insert position out of range", func() { Of(1, 2).Insert(3, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.msg, tt.fn)
		})
	}
}
