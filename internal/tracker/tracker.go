// Package tracker feeds one input stream into a multi-quantile estimator and
// one single-quantile estimator per requested quantile, so both ways of
// tracking can be compared.
package tracker

import (
	"fmt"

	"github.com/axiomhq/p2"
	"github.com/montanaflynn/stats"
)

// Tracker is not safe for concurrent use; use one per input.
type Tracker struct {
	quantiles []float64
	multi     *p2.Estimator
	singles   []*p2.Estimator
	exact     []float64
	keepExact bool
}

// Row holds the estimates for one quantile.
type Row struct {
	Quantile float64  `yaml:"quantile"`
	Single   float64  `yaml:"single"`
	Multi    float64  `yaml:"multi"`
	Exact    *float64 `yaml:"exact,omitempty"`
}

// Summary is the state of a tracker at one point in time.
type Summary struct {
	Source  string  `yaml:"source"`
	Count   int     `yaml:"count"`
	Skipped int     `yaml:"skipped"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Phase   string  `yaml:"phase"`
	Rows    []Row   `yaml:"quantiles"`
}

// New returns a tracker for quantiles. With exact set every sample is also
// kept so that Summary can report exact percentiles.
func New(quantiles []float64, exact bool) (*Tracker, error) {
	if len(quantiles) == 0 {
		return nil, fmt.Errorf("at least one quantile is required")
	}
	for _, q := range quantiles {
		if !(q > 0 && q < 1) {
			return nil, fmt.Errorf("quantile %v must be in (0, 1)", q)
		}
	}

	t := &Tracker{
		quantiles: append([]float64(nil), quantiles...),
		multi:     p2.NewTargets(quantiles...),
		singles:   make([]*p2.Estimator, len(quantiles)),
		keepExact: exact,
	}
	for i, q := range quantiles {
		t.singles[i] = p2.NewSingle(q)
	}
	return t, nil
}

// Observe adds x to every estimator.
func (t *Tracker) Observe(x float64) error {
	if err := t.multi.Add(x); err != nil {
		return err
	}
	for _, s := range t.singles {
		if err := s.Add(x); err != nil {
			return err
		}
	}
	if t.keepExact {
		t.exact = append(t.exact, x)
	}
	return nil
}

// Summary reports the current estimates.
func (t *Tracker) Summary(source string, skipped int) (Summary, error) {
	sum := Summary{
		Source:  source,
		Count:   t.multi.Count(),
		Skipped: skipped,
		Min:     t.multi.Min(),
		Max:     t.multi.Max(),
		Phase:   t.multi.Phase().String(),
		Rows:    make([]Row, len(t.quantiles)),
	}
	for i, q := range t.quantiles {
		row := Row{
			Quantile: q,
			Single:   t.singles[i].Result(),
			Multi:    t.multi.Quantile(q),
		}
		if t.keepExact && len(t.exact) > 0 {
			v, err := stats.PercentileNearestRank(t.exact, q*100)
			if err != nil {
				return Summary{}, fmt.Errorf("exact percentile %v: %w", q, err)
			}
			row.Exact = &v
		}
		sum.Rows[i] = row
	}
	return sum, nil
}
