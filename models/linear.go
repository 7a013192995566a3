package models

// linearFit computes the closed-form simple linear regression of v on u,
// returning the slope and intercept of v = slope*u + intercept. The caller
// guarantees at least two points.
func linearFit(u, v []float64) (slope, intercept float64) {
	m := float64(len(u))

	var sumU, sumV, sumUV, sumUU float64
	for i := range u {
		sumU += u[i]
		sumV += v[i]
		sumUV += u[i] * v[i]
		sumUU += u[i] * u[i]
	}

	slope = (m*sumUV - sumU*sumV) / (m*sumUU - sumU*sumU)
	intercept = (sumV - slope*sumU) / m
	return slope, intercept
}
