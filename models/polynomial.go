package models

import (
	"github.com/fitkit/curvefit/linalg"
)

// FitPolynomial3 fits y = a*x^3 + b*x^2 + c*x + d by solving the 4x4 normal
// equations built from the power sums of x up to x^6.
func FitPolynomial3(x, y []float64) FitResult {
	if len(x) < 4 {
		return insufficientData(KindPolynomial3, len(y))
	}

	c, err := solveNormalEquations(x, y, 3)
	if err != nil {
		return singularSystem(KindPolynomial3, len(y))
	}

	return newResult(Polynomial3{A: c[0], B: c[1], C: c[2], D: c[3]}, x, y)
}

// FitQuadratic fits y = a*x^2 + b*x + c by solving the 3x3 normal equations
// built from the power sums of x up to x^4.
func FitQuadratic(x, y []float64) FitResult {
	if len(x) < 3 {
		return insufficientData(KindQuadratic, len(y))
	}

	c, err := solveNormalEquations(x, y, 2)
	if err != nil {
		return singularSystem(KindQuadratic, len(y))
	}

	return newResult(Quadratic{A: c[0], B: c[1], C: c[2]}, x, y)
}

// solveNormalEquations solves the least squares normal equations for a
// polynomial of the given degree, returning the coefficients from the highest
// power down to the constant term.
func solveNormalEquations(x, y []float64, degree int) ([]float64, error) {
	// power sums of x up to x^(2*degree)
	sums := make([]float64, 2*degree+1)
	for _, xi := range x {
		p := 1.0
		for k := 0; k <= 2*degree; k++ {
			sums[k] += p
			p *= xi
		}
	}

	// cross sums of x^j * y for j up to degree
	cross := make([]float64, degree+1)
	for i, xi := range x {
		p := 1.0
		for j := 0; j <= degree; j++ {
			cross[j] += p * y[i]
			p *= xi
		}
	}

	n := degree + 1
	a := make([][]float64, n)
	b := make([]float64, n)
	for r := 0; r < n; r++ {
		a[r] = make([]float64, n)
		for c := 0; c < n; c++ {
			a[r][c] = sums[2*degree-r-c]
		}
		b[r] = cross[degree-r]
	}

	return linalg.Solve(a, b)
}
