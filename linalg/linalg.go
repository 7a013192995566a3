// Package linalg provides a small dense linear system solver used by the
// polynomial curve fitters.
package linalg

import (
	"errors"
	"math"
)

var (
	ErrSingular       = errors.New("matrix is numerically singular")
	ErrNotSquare      = errors.New("coefficient matrix is not square")
	ErrRHSLenMismatch = errors.New("right hand side length does not match matrix rows")
)

// PivotThreshold is the smallest pivot magnitude accepted before the system is
// declared singular.
const PivotThreshold = 1e-10

// Solve solves a*c = b using Gaussian elimination with partial pivoting. The
// inputs are copied and never mutated. A near-zero pivot returns ErrSingular;
// callers are expected to treat that as a normal outcome rather than a fault.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	for _, row := range a {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	if len(b) != n {
		return nil, ErrRHSLenMismatch
	}
	if n == 0 {
		return nil, ErrNotSquare
	}

	// augmented working copy
	aug := make([][]float64, n)
	for i := range a {
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(aug[row][col]) > math.Abs(aug[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(aug[pivot][col]) < PivotThreshold {
			return nil, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		for row := col + 1; row < n; row++ {
			factor := aug[row][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				aug[row][k] -= factor * aug[col][k]
			}
		}
	}

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = aug[i][n]
		for j := i + 1; j < n; j++ {
			c[i] -= aug[i][j] * c[j]
		}
		c[i] /= aug[i][i]
	}
	return c, nil
}
