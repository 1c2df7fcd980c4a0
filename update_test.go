package p2

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertInvariants(t *testing.T, e *Estimator, step int) bool {
	t.Helper()
	ms := e.Markers()
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Position >= ms[i].Position {
			t.Errorf("step %d: position[%d]=%d >= position[%d]=%d", step, i-1, ms[i-1].Position, i, ms[i].Position)
			return false
		}
		if ms[i-1].Height > ms[i].Height {
			t.Errorf("step %d: height[%d]=%v > height[%d]=%v", step, i-1, ms[i-1].Height, i, ms[i].Height)
			return false
		}
		if ms[i-1].Increment > ms[i].Increment {
			t.Errorf("step %d: increment[%d]=%v > increment[%d]=%v", step, i-1, ms[i-1].Increment, i, ms[i].Increment)
			return false
		}
	}
	return true
}

func TestUpdateInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	ascending := make([]float64, 5000)
	for i := range ascending {
		ascending[i] = float64(i)
	}
	descending := make([]float64, len(ascending))
	for i, x := range ascending {
		descending[len(descending)-1-i] = x
	}
	duplicates := make([]float64, 5000)
	for i := range duplicates {
		duplicates[i] = float64(r.Intn(4))
	}
	constant := make([]float64, 1000)
	sawtooth := make([]float64, 5000)
	for i := range sawtooth {
		sawtooth[i] = float64(i % 17)
	}

	datasets := map[string][]float64{
		"uniform":     uniformData(20000, seed),
		"normal":      normalData(20000, seed),
		"exponential": exponentialData(20000, seed),
		"ascending":   ascending,
		"descending":  descending,
		"duplicates":  duplicates,
		"constant":    constant,
		"sawtooth":    sawtooth,
	}
	targets := [][]float64{
		{0.5},
		{0.01},
		{0.99},
		{0.1, 0.5, 0.9},
		{0.25, 0.5, 0.75, 0.95, 0.999},
	}

	for name, data := range datasets {
		for _, ps := range targets {
			t.Run(fmt.Sprintf("%s/%v", name, ps), func(t *testing.T) {
				e := NewTargets(ps...)
				for i, x := range data {
					assert.NoError(t, e.Add(x))
					if e.Phase() == Tracking && !assertInvariants(t, e, i) {
						return
					}
				}
			})
		}
	}
}

func TestUpdateDesiredPositionsAdvance(t *testing.T) {
	e := NewTargets(0.2, 0.7)
	data := normalData(1000, seed)
	feed(e, data[:e.MarkerCount()])

	prev := e.Markers()
	for i, x := range data[e.MarkerCount():] {
		assert.NoError(t, e.Add(x))
		cur := e.Markers()
		for j := range cur {
			assert.InDelta(t, prev[j].DesiredPosition+cur[j].Increment, cur[j].DesiredPosition, 1e-9, "sample %d marker %d", i, j)
		}
		prev = cur
	}
}

func TestUpdateBoundaryMarkersTrackExtremes(t *testing.T) {
	data := exponentialData(10000, seed)
	e := NewSingle(0.9)
	feed(e, data)

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	ms := e.Markers()
	assert.Equal(t, sorted[0], ms[0].Height)
	assert.Equal(t, sorted[len(sorted)-1], ms[len(ms)-1].Height)
	assert.Equal(t, len(data), ms[len(ms)-1].Position)
	assert.Equal(t, 1, ms[0].Position)
}
