package p2

// Marker is a snapshot of one P² marker.
type Marker struct {
	// Position is the marker's current rank among all samples seen so far.
	Position int
	// Height is the estimated value at Position.
	Height float64
	// DesiredPosition is the ideal rank the marker is being pulled towards.
	DesiredPosition float64
	// Increment is the quantile fraction the marker tracks. It is fixed once
	// the estimator is finalized.
	Increment float64
}

// markers is the marker set of an estimator, kept as parallel slices so the
// update loops stay tight.
type markers struct {
	positions        []int
	heights          []float64
	increments       []float64
	desiredPositions []float64
}

func newMarkers(n int) markers {
	m := markers{
		positions:        make([]int, n),
		heights:          make([]float64, n),
		increments:       make([]float64, n),
		desiredPositions: make([]float64, n),
	}
	// Slot 1 is never a quantile slot, so the upper boundary parks there
	// until Finalize sorts it to the end.
	m.increments[0] = 0
	m.increments[1] = 1
	return m
}

func (m markers) len() int {
	return len(m.positions)
}

func (m markers) at(i int) Marker {
	return Marker{
		Position:        m.positions[i],
		Height:          m.heights[i],
		DesiredPosition: m.desiredPositions[i],
		Increment:       m.increments[i],
	}
}
