package p2

// seed moves the estimator from collecting to tracking. The buffer shares its
// storage with the marker heights, so sorting it seeds them.
func (e *Estimator) seed() {
	e.buf.sorted()
	for i := range e.markers.positions {
		e.markers.positions[i] = i + 1
	}
}

// update runs one step of the P² algorithm for a new sample.
func (e *Estimator) update(value float64) {
	m := e.markers
	n := m.len()

	// Find the cell k with heights[k-1] <= value < heights[k], extending the
	// boundary markers when the value falls outside them.
	var cell int
	switch {
	case value < m.heights[0]:
		m.heights[0] = value
		cell = 1
	case value >= m.heights[n-1]:
		m.heights[n-1] = value
		cell = n - 1
	default:
		cell = 1
		for i := 1; i < n; i++ {
			if value < m.heights[i] {
				cell = i
				break
			}
		}
	}

	for i := 0; i < cell; i++ {
		m.desiredPositions[i] += m.increments[i]
	}
	for i := cell; i < n; i++ {
		m.positions[i]++
		m.desiredPositions[i] += m.increments[i]
	}

	for i := 1; i < n-1; i++ {
		e.adjust(i)
	}
}

// adjust moves interior marker i one step towards its desired position when
// it has drifted at least one rank and there is room to move.
func (e *Estimator) adjust(i int) {
	m := e.markers
	d := m.desiredPositions[i] - float64(m.positions[i])
	if !((d >= 1 && m.positions[i+1]-m.positions[i] > 1) ||
		(d <= -1 && m.positions[i-1]-m.positions[i] < -1)) {
		return
	}

	s := sign(d)
	q := m.parabolic(i, s)
	if !(m.heights[i-1] < q && q < m.heights[i+1]) {
		q = m.linear(i, s)
	}
	m.heights[i] = q
	m.positions[i] += s
}
