package p2

import "math"

// parabolic returns the piecewise-parabolic prediction for the height of
// marker i after moving it by d (±1) positions. A zero position gap yields
// NaN, which the caller rejects in favour of linear.
func (m markers) parabolic(i, d int) float64 {
	n, q := m.positions, m.heights
	df := float64(d)
	span := float64(n[i+1] - n[i-1])
	right := float64(n[i+1] - n[i])
	left := float64(n[i] - n[i-1])
	if span == 0 || right == 0 || left == 0 {
		return math.NaN()
	}
	return q[i] + df/span*
		((left+df)*(q[i+1]-q[i])/right+
			(right-df)*(q[i]-q[i-1])/left)
}

// linear returns the height of marker i interpolated towards its neighbour
// in direction d.
func (m markers) linear(i, d int) float64 {
	n, q := m.positions, m.heights
	gap := n[i+d] - n[i]
	if gap == 0 {
		return q[i]
	}
	return q[i] + float64(d)*(q[i+d]-q[i])/float64(gap)
}

// sign treats zero as positive.
func sign(v float64) int {
	if v >= 0 {
		return 1
	}
	return -1
}
