package vector

// Utilization returns Len()/Cap() (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Reallocations returns how many times v replaced its storage while
// growing through Resize, Reserve, PushBack or Insert.
// Copy, move and swap operations do not count.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.capacity,
		Reallocations: v.reallocs,
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	Reallocations int     // Storage replacements caused by growth
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
