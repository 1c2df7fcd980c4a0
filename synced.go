package p2

import "sync"

// Synced guards an Estimator with a mutex so that several goroutines can
// feed and query it.
type Synced struct {
	mu  sync.Mutex
	est *Estimator
}

// NewSynced wraps a finalized estimator. The caller must not use est directly
// afterwards.
func NewSynced(est *Estimator) *Synced {
	return &Synced{est: est}
}

// Add ...
func (s *Synced) Add(x float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.est.Add(x)
}

// Quantile ...
func (s *Synced) Quantile(p float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.est.Quantile(p)
}

// Result ...
func (s *Synced) Result() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.est.Result()
}

// Count ...
func (s *Synced) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.est.Count()
}
