package p2

import (
	"fmt"
	"sort"
)

// buffer holds the raw samples seen while an estimator is still collecting.
// It shares its backing array with the marker heights, so once it is full the
// sorted samples are the initial marker heights.
type buffer struct {
	vec     []float64
	maxSize int
}

func newBuffer(heights []float64) *buffer {
	return &buffer{
		vec:     heights[:0],
		maxSize: len(heights),
	}
}

// push appends a raw sample.
func (b *buffer) push(value float64) error {
	if b.isFull() {
		return fmt.Errorf("buffer already full: %v", b.maxSize)
	}
	b.vec = append(b.vec, value)
	return nil
}

// sorted sorts the buffered samples in place and returns them. Equal samples
// keep their arrival order.
func (b *buffer) sorted() []float64 {
	sort.SliceStable(b.vec, func(i, j int) bool { return b.vec[i] < b.vec[j] })
	return b.vec
}

func (b *buffer) size() int {
	return len(b.vec)
}

func (b *buffer) isFull() bool {
	return len(b.vec) >= b.maxSize
}

func (b *buffer) min() float64 {
	m := b.vec[0]
	for _, v := range b.vec[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func (b *buffer) max() float64 {
	m := b.vec[0]
	for _, v := range b.vec[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
