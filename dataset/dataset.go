// Package dataset holds paired numeric samples supplied to the curve fitters
// along with descriptive summaries of each axis.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

var (
	ErrEmptyDataset   = errors.New("no samples in dataset")
	ErrMismatchedLen  = errors.New("x and y have different lengths")
	ErrNonFiniteValue = errors.New("sample contains a non-finite value")
)

// Dataset is an immutable pair of equal-length sample series. X[i] pairs with
// Y[i]; order only matters for index correspondence.
type Dataset struct {
	X []float64
	Y []float64
}

// New validates and copies the input series into a Dataset. This is the
// boundary where the equal-length caller contract is enforced.
func New(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x has length of %d, but y has a length of %d, %w", len(x), len(y), ErrMismatchedLen)
	}
	if len(x) == 0 {
		return nil, ErrEmptyDataset
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, fmt.Errorf("sample %d, %w", i, ErrNonFiniteValue)
		}
	}

	ds := &Dataset{
		X: make([]float64, len(x)),
		Y: make([]float64, len(y)),
	}
	copy(ds.X, x)
	copy(ds.Y, y)
	return ds, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Copy returns a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	ds, _ := New(d.X, d.Y)
	return ds
}

// AxisSummary describes the distribution of a single series.
type AxisSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Summary describes both axes of a dataset.
type Summary struct {
	N int         `json:"n"`
	X AxisSummary `json:"x"`
	Y AxisSummary `json:"y"`
}

// Summarize computes descriptive statistics for both axes.
func (d *Dataset) Summarize() (*Summary, error) {
	xSum, err := summarizeAxis(d.X)
	if err != nil {
		return nil, fmt.Errorf("unable to summarize x, %w", err)
	}
	ySum, err := summarizeAxis(d.Y)
	if err != nil {
		return nil, fmt.Errorf("unable to summarize y, %w", err)
	}
	return &Summary{
		N: d.Len(),
		X: *xSum,
		Y: *ySum,
	}, nil
}

func summarizeAxis(series []float64) (*AxisSummary, error) {
	min, err := stats.Min(series)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(series)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(series)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(series)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviation(series)
	if err != nil {
		return nil, err
	}
	return &AxisSummary{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
	}, nil
}

// Outliers returns the indexes of y values outside the Tukey fences built
// from the given percentile window.
func (d *Dataset) Outliers(lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(d.Y))
	copy(yCopy, d.Y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy))*upperPerc)) - 1
	if upperIdx >= len(yCopy) {
		upperIdx = len(yCopy) - 1
	}

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(d.Y); i++ {
		if d.Y[i] > upper || d.Y[i] < lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
