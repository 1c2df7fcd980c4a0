package p2

import "sort"

// SetQuantile registers the quantile p in slot index. Every slot in
// [0, number of quantiles) must be registered before Finalize. Registering a
// slot twice overwrites the earlier value.
func (e *Estimator) SetQuantile(index int, p float64) {
	if e.finalized {
		contractf("SetQuantile(%d, %v) called after Finalize", index, p)
	}
	if index < 0 || index >= e.numQuantiles {
		contractf("quantile index %d out of range [0, %d)", index, e.numQuantiles)
	}
	if !(p > 0 && p < 1) {
		contractf("quantile %v must be in (0, 1)", p)
	}

	slot := 2 + 3*index
	e.markers.increments[slot] = p
	e.markers.increments[slot+1] = p / 2
	e.markers.increments[slot+2] = (1 + p) / 2
	e.targets[index] = p
	e.registered[index] = true
}

// Finalize sorts the marker increments and seeds the desired positions. It
// must be called exactly once, after all quantiles are registered and before
// the first Add.
func (e *Estimator) Finalize() {
	if e.finalized {
		contractf("Finalize called twice")
	}
	for i, ok := range e.registered {
		if !ok {
			contractf("quantile slot %d not registered before Finalize", i)
		}
	}

	sort.Float64s(e.markers.increments)
	last := float64(e.markers.len() - 1)
	for i, inc := range e.markers.increments {
		e.markers.desiredPositions[i] = last*inc + 1
	}
	e.finalized = true
}
