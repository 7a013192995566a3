package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		err error
	}{
		"valid":           {[]float64{1, 2, 3}, []float64{4, 5, 6}, nil},
		"length mismatch": {[]float64{1, 2}, []float64{4, 5, 6}, ErrMismatchedLen},
		"empty":           {nil, nil, ErrEmptyDataset},
		"nan sample":      {[]float64{1, math.NaN()}, []float64{4, 5}, ErrNonFiniteValue},
		"inf sample":      {[]float64{1, 2}, []float64{4, math.Inf(1)}, ErrNonFiniteValue},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New(td.x, td.y)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, len(td.x), ds.Len())
			assert.Equal(t, td.x, ds.X)
			assert.Equal(t, td.y, ds.Y)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}

	ds, err := New(x, y)
	require.Nil(t, err)

	x[0] = 100
	y[0] = 100
	assert.Equal(t, 1.0, ds.X[0])
	assert.Equal(t, 4.0, ds.Y[0])
}

func TestCopy(t *testing.T) {
	ds, err := New([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.Nil(t, err)

	cp := ds.Copy()
	cp.X[0] = 100
	assert.Equal(t, 1.0, ds.X[0])
}

func TestSummarize(t *testing.T) {
	ds, err := New([]float64{1, 2, 3, 4, 5}, []float64{10, 10, 10, 10, 10})
	require.Nil(t, err)

	sum, err := ds.Summarize()
	require.Nil(t, err)

	assert.Equal(t, 5, sum.N)
	assert.InDelta(t, 1.0, sum.X.Min, 1e-12)
	assert.InDelta(t, 5.0, sum.X.Max, 1e-12)
	assert.InDelta(t, 3.0, sum.X.Mean, 1e-12)
	assert.InDelta(t, 3.0, sum.X.Median, 1e-12)
	assert.InDelta(t, 10.0, sum.Y.Mean, 1e-12)
	assert.InDelta(t, 0.0, sum.Y.StdDev, 1e-12)
}

func TestOutliers(t *testing.T) {
	y := []float64{10, 11, 9, 10, 12, 10, 11, 9, 10, 100}
	ds, err := New(GenerateX(len(y), 1, 1), y)
	require.Nil(t, err)

	outliers := ds.Outliers(0.1, 0.9, 1.0)
	assert.Equal(t, []int{9}, outliers)
}

func TestGenerateCurveY(t *testing.T) {
	x := GenerateX(4, 1, 1)
	y := GenerateCurveY(x, func(v float64) float64 { return 2 * v }).
		Add(GenerateConstY(len(x), 1))

	assert.Equal(t, Series([]float64{3, 5, 7, 9}), y)
}
