package p2

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const seed = 42

func uniformData(n int, seed uint64) []float64 {
	dist := distuv.Uniform{Min: 0, Max: 100, Src: rand.NewSource(seed)}
	return sample(dist, n)
}

func normalData(n int, seed uint64) []float64 {
	dist := distuv.Normal{Mu: 10, Sigma: 3, Src: rand.NewSource(seed)}
	return sample(dist, n)
}

func exponentialData(n int, seed uint64) []float64 {
	dist := distuv.Exponential{Rate: 0.5, Src: rand.NewSource(seed)}
	return sample(dist, n)
}

func sample(dist distuv.Rander, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = dist.Rand()
	}
	return data
}

func feed(e *Estimator, data []float64) {
	for _, x := range data {
		if err := e.Add(x); err != nil {
			panic(err)
		}
	}
}
