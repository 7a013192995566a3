package models

import "math"

// FitPower fits y = a*x^b by regressing ln(y) on ln(x). Samples with x <= 0
// or y <= 0 are excluded from estimation but still scored against,
// predicting 0 where x <= 0.
func FitPower(x, y []float64) FitResult {
	u := make([]float64, 0, len(x))
	v := make([]float64, 0, len(x))
	for i := range x {
		if x[i] <= 0 || y[i] <= 0 {
			continue
		}
		u = append(u, math.Log(x[i]))
		v = append(v, math.Log(y[i]))
	}

	if len(u) < 2 {
		return insufficientData(KindPower, len(y))
	}

	b, lnA := linearFit(u, v)
	return newResult(Power{A: math.Exp(lnA), B: b}, x, y)
}
