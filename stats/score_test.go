package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		err       error
		expected  *Scores
	}{
		"perfect fit": {
			predicted: []float64{1, 2, 3, 4},
			actual:    []float64{1, 2, 3, 4},
			expected: &Scores{
				RSquared:    1.0,
				RMSE:        0.0,
				MAE:         0.0,
				MaxAbsError: 0.0,
			},
		},
		"constant offset": {
			predicted: []float64{2, 3, 4, 5},
			actual:    []float64{1, 2, 3, 4},
			expected: &Scores{
				RSquared:    0.2,
				RMSE:        1.0,
				MAE:         1.0,
				MaxAbsError: 1.0,
			},
		},
		"mixed errors": {
			predicted: []float64{0, 2, 2, 7},
			actual:    []float64{1, 2, 3, 4},
			expected: &Scores{
				RSquared:    -1.2,
				RMSE:        1.6583123951777,
				MAE:         1.25,
				MaxAbsError: 3.0,
			},
		},
		"length mismatch": {
			predicted: []float64{1, 2},
			actual:    []float64{1, 2, 3},
			err:       ErrResLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			scores, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected.RSquared, scores.RSquared, tol)
			assert.InDelta(t, td.expected.RMSE, scores.RMSE, tol)
			assert.InDelta(t, td.expected.MAE, scores.MAE, tol)
			assert.InDelta(t, td.expected.MaxAbsError, scores.MaxAbsError, tol)
		})
	}
}

func TestRSquaredAgainstDefinition(t *testing.T) {
	predicted := []float64{1.1, 1.9, 3.2, 3.8, 5.1}
	actual := []float64{1, 2, 3, 4, 5}

	ssRes := 0.0
	ssTot := 0.0
	mean := 3.0
	for i := range actual {
		ssRes += (actual[i] - predicted[i]) * (actual[i] - predicted[i])
		ssTot += (actual[i] - mean) * (actual[i] - mean)
	}

	rs, err := RSquared(predicted, actual)
	require.Nil(t, err)
	assert.InDelta(t, 1.0-ssRes/ssTot, rs, 1e-12)
}
