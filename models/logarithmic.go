package models

import "math"

// FitLogarithmic fits y = a*ln(x) + b. Samples with x <= 0 are excluded from
// estimation but still scored against, predicting 0 at those points.
func FitLogarithmic(x, y []float64) FitResult {
	u := make([]float64, 0, len(x))
	v := make([]float64, 0, len(x))
	for i := range x {
		if x[i] <= 0 {
			continue
		}
		u = append(u, math.Log(x[i]))
		v = append(v, y[i])
	}

	if len(u) < 2 {
		return insufficientData(KindLogarithmic, len(y))
	}

	a, b := linearFit(u, v)
	return newResult(Logarithmic{A: a, B: b}, x, y)
}
