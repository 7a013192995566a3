package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		a        [][]float64
		b        []float64
		err      error
		expected []float64
	}{
		"identity": {
			a: [][]float64{
				{1, 0, 0},
				{0, 1, 0},
				{0, 0, 1},
			},
			b:        []float64{4, 5, 6},
			expected: []float64{4, 5, 6},
		},
		"well conditioned 3x3": {
			a: [][]float64{
				{2, 1, -1},
				{-3, -1, 2},
				{-2, 1, 2},
			},
			b:        []float64{8, -11, -3},
			expected: []float64{2, 3, -1},
		},
		"well conditioned 4x4": {
			a: [][]float64{
				{4, 1, 0, 0},
				{1, 4, 1, 0},
				{0, 1, 4, 1},
				{0, 0, 1, 4},
			},
			b:        []float64{5, 6, 6, 5},
			expected: []float64{1, 1, 1, 1},
		},
		"requires pivoting": {
			a: [][]float64{
				{0, 1},
				{1, 0},
			},
			b:        []float64{3, 7},
			expected: []float64{7, 3},
		},
		"singular identical rows": {
			a: [][]float64{
				{1, 2, 3},
				{1, 2, 3},
				{4, 5, 6},
			},
			b:   []float64{1, 1, 1},
			err: ErrSingular,
		},
		"singular zero column": {
			a: [][]float64{
				{0, 1},
				{0, 2},
			},
			b:   []float64{1, 2},
			err: ErrSingular,
		},
		"not square": {
			a: [][]float64{
				{1, 2, 3},
				{4, 5, 6},
			},
			b:   []float64{1, 2},
			err: ErrNotSquare,
		},
		"rhs mismatch": {
			a: [][]float64{
				{1, 0},
				{0, 1},
			},
			b:   []float64{1, 2, 3},
			err: ErrRHSLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			c, err := Solve(td.a, td.b)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				assert.Nil(t, c)
				return
			}
			require.Nil(t, err)
			assert.InDeltaSlice(t, td.expected, c, tol)
		})
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	a := [][]float64{
		{0, 2},
		{3, 1},
	}
	b := []float64{4, 5}

	_, err := Solve(a, b)
	require.Nil(t, err)

	assert.Equal(t, [][]float64{{0, 2}, {3, 1}}, a)
	assert.Equal(t, []float64{4, 5}, b)
}
