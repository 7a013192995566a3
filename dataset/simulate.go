package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateX produces n evenly spaced x values starting at start.
func GenerateX(n int, start, step float64) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, start+step*float64(i))
	}
	return x
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// GenerateCurveY evaluates fn at every x value.
func GenerateCurveY(x []float64, fn func(float64) float64) Series {
	y := make([]float64, 0, len(x))
	for _, xi := range x {
		y = append(y, fn(xi))
	}
	return Series(y)
}

// GenerateConstY produces n copies of val.
func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateNoise produces gaussian noise scaled by noiseScale.
func GenerateNoise(n int, noiseScale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*noiseScale)
	}
	return Series(y)
}
