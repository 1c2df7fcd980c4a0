package p2

import "math"

// Phase is the lifecycle state of an Estimator.
type Phase int

const (
	// Collecting is the initial phase: samples are buffered until there is
	// one per marker.
	Collecting Phase = iota
	// Tracking is the steady phase: every sample adjusts the markers.
	Tracking
)

func (p Phase) String() string {
	switch p {
	case Collecting:
		return "collecting"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// Estimator estimates one or more quantiles of a stream with the P²
// algorithm (Jain & Chlamtac, 1985) using 2+3Q markers for Q quantiles.
//
// An Estimator is not safe for concurrent use; see Synced.
type Estimator struct {
	numQuantiles int
	count        int
	markers      markers
	buf          *buffer
	targets      []float64
	registered   []bool
	finalized    bool
}

// New returns an estimator sized for numQuantiles quantiles. Each quantile
// must be registered with SetQuantile and the estimator finalized with
// Finalize before samples are added.
func New(numQuantiles int) *Estimator {
	if numQuantiles < 1 {
		contractf("number of quantiles must be at least 1, got %d", numQuantiles)
	}
	m := newMarkers(2 + 3*numQuantiles)
	return &Estimator{
		numQuantiles: numQuantiles,
		markers:      m,
		buf:          newBuffer(m.heights),
		targets:      make([]float64, numQuantiles),
		registered:   make([]bool, numQuantiles),
	}
}

// NewSingle returns a finalized estimator for the single quantile p.
func NewSingle(p float64) *Estimator {
	return NewTargets(p)
}

// NewTargets returns a finalized estimator tracking every quantile in ps.
func NewTargets(ps ...float64) *Estimator {
	e := New(len(ps))
	for i, p := range ps {
		e.SetQuantile(i, p)
	}
	e.Finalize()
	return e
}

// Add absorbs one sample. Non-finite samples are rejected with ErrNonFinite
// and leave the estimator unchanged.
func (e *Estimator) Add(x float64) error {
	if !e.finalized {
		contractf("Add called before Finalize")
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNonFinite
	}

	if e.count < e.markers.len() {
		if err := e.buf.push(x); err != nil {
			return err
		}
		e.count++
		if e.buf.isFull() {
			e.seed()
		}
		return nil
	}

	e.update(x)
	e.count++
	return nil
}

// Result returns the estimate for the quantile the estimator was built for.
// It is only meaningful for single-quantile estimators.
func (e *Estimator) Result() float64 {
	if !e.finalized {
		contractf("Result called before Finalize")
	}
	return e.Quantile(e.markers.increments[2])
}

// Quantile returns the estimate of the tracked quantile closest to p.
//
// Until one sample per marker has been seen the estimate is taken from the
// buffered samples and is considerably less precise. It is NaN when nothing
// has been added yet.
func (e *Estimator) Quantile(p float64) float64 {
	if !(p > 0 && p < 1) {
		contractf("quantile %v must be in (0, 1)", p)
	}
	if e.Phase() == Collecting {
		return e.collectingQuantile(p)
	}

	inc := e.markers.increments
	closest := 1
	for i := 2; i < e.markers.len()-1; i++ {
		if math.Abs(inc[i]-p) < math.Abs(inc[closest]-p) {
			closest = i
		}
	}
	return e.markers.heights[closest]
}

// collectingQuantile picks a buffered sample by rank. The baseline ratio is
// measured against the marker count, not the number of buffered samples, so
// the result leans towards higher ranks while few samples are buffered.
func (e *Estimator) collectingQuantile(p float64) float64 {
	switch e.count {
	case 0:
		return math.NaN()
	case 1:
		return e.buf.vec[0]
	}

	heights := e.buf.sorted()
	count := float64(e.count)
	markerCount := float64(e.markers.len())
	closest := 1
	for i := 2; i < e.count; i++ {
		if math.Abs(float64(i)/count-p) < math.Abs(float64(closest)/markerCount-p) {
			closest = i
		}
	}
	return heights[closest]
}

// Phase reports whether the estimator is still collecting its initial
// samples or already tracking.
func (e *Estimator) Phase() Phase {
	if e.count < e.markers.len() {
		return Collecting
	}
	return Tracking
}

// Count returns the number of samples added.
func (e *Estimator) Count() int {
	return e.count
}

// MarkerCount returns the number of markers, 2+3Q.
func (e *Estimator) MarkerCount() int {
	return e.markers.len()
}

// Quantiles returns the registered quantiles in slot order.
func (e *Estimator) Quantiles() []float64 {
	out := make([]float64, len(e.targets))
	copy(out, e.targets)
	return out
}

// Markers returns a copy of the marker state.
func (e *Estimator) Markers() []Marker {
	out := make([]Marker, e.markers.len())
	for i := range out {
		out[i] = e.markers.at(i)
	}
	return out
}

// Min returns the smallest sample seen, or NaN if there is none.
func (e *Estimator) Min() float64 {
	if e.count == 0 {
		return math.NaN()
	}
	if e.Phase() == Collecting {
		return e.buf.min()
	}
	return e.markers.heights[0]
}

// Max returns the largest sample seen, or NaN if there is none.
func (e *Estimator) Max() float64 {
	if e.count == 0 {
		return math.NaN()
	}
	if e.Phase() == Collecting {
		return e.buf.max()
	}
	return e.markers.heights[e.markers.len()-1]
}
