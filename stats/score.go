// Package stats computes goodness of fit scores between predicted and actual
// sample values.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit scores of a model against the full sample set
type Scores struct {
	RSquared    float64 `json:"r_squared"`
	RMSE        float64 `json:"root_mean_squared_error"`
	MAE         float64 `json:"mean_absolute_error"`
	MaxAbsError float64 `json:"max_absolute_error"`
}

// NewScores calculates the fit scores given the predicted and actual input slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	rs, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute r-squared, %w", err)
	}
	rmse, err := RMSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute root mean squared error, %w", err)
	}
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	maxAbs, err := MaxAbsError(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute max absolute error, %w", err)
	}

	return &Scores{
		RSquared:    rs,
		RMSE:        rmse,
		MAE:         mae,
		MaxAbsError: maxAbs,
	}, nil
}

// RSquared computes the coefficient of determination, 1 - SSres/SStot, over
// the full actual series. A model scored against samples outside its domain
// can legitimately go negative.
func RSquared(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	return stat.RSquaredFrom(predicted, actual, nil), nil
}

// RMSE computes the root mean squared error. A score of 0 means a perfect
// match with no errors.
func RMSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		mse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	mse /= float64(len(actual))
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mae := 0.0
	for i := 0; i < len(actual); i++ {
		mae += math.Abs(actual[i] - predicted[i])
	}
	mae /= float64(len(actual))
	return mae, nil
}

// MaxAbsError computes the largest absolute error over the series.
func MaxAbsError(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	maxAbs := 0.0
	for i := 0; i < len(actual); i++ {
		maxAbs = math.Max(maxAbs, math.Abs(actual[i]-predicted[i]))
	}
	return maxAbs, nil
}
