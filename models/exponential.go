package models

import "math"

// FitExponential fits y = a*e^(b*x) by regressing ln(y) on x. Samples with
// y <= 0 are excluded from estimation but still scored against.
func FitExponential(x, y []float64) FitResult {
	u := make([]float64, 0, len(x))
	v := make([]float64, 0, len(x))
	for i := range y {
		if y[i] <= 0 {
			continue
		}
		u = append(u, x[i])
		v = append(v, math.Log(y[i]))
	}

	if len(u) < 2 {
		return insufficientData(KindExponential, len(y))
	}

	b, lnA := linearFit(u, v)
	return newResult(Exponential{A: math.Exp(lnA), B: b}, x, y)
}
