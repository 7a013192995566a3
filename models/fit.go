package models

import (
	"fmt"

	"github.com/fitkit/curvefit/stats"
)

// FitResult is the outcome of fitting one model family to a sample set. The
// predicted values always cover every original sample, including the ones
// excluded from coefficient estimation, and the scores are computed against
// the original unfiltered y series.
type FitResult struct {
	Kind         Kind      `json:"kind"`
	Formula      string    `json:"formula"`
	Coefficients []float64 `json:"coefficients"`
	Predicted    []float64 `json:"predicted"`
	RSquared     float64   `json:"r_squared"`
	RMSE         float64   `json:"root_mean_squared_error"`
	MAE          float64   `json:"mean_absolute_error"`
	MaxAbsError  float64   `json:"max_absolute_error"`
}

// Model reconstructs the fitted model from the result coefficients. Returns
// nil for soft-failure results whose coefficients are all zero.
func (r FitResult) Model() Model {
	c := r.Coefficients
	if len(c) != r.Kind.arity() {
		return nil
	}
	allZero := true
	for _, v := range c {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}
	switch r.Kind {
	case KindLogarithmic:
		return Logarithmic{A: c[0], B: c[1]}
	case KindExponential:
		return Exponential{A: c[0], B: c[1]}
	case KindPolynomial3:
		return Polynomial3{A: c[0], B: c[1], C: c[2], D: c[3]}
	case KindPower:
		return Power{A: c[0], B: c[1]}
	case KindQuadratic:
		return Quadratic{A: c[0], B: c[1], C: c[2]}
	}
	return nil
}

// newResult evaluates the fitted model at every original x and scores it
// against the full y series.
func newResult(m Model, x, y []float64) FitResult {
	predicted := make([]float64, len(y))
	for i := range x {
		predicted[i] = m.Evaluate(x[i])
	}

	scores, err := stats.NewScores(predicted, y)
	if err != nil {
		// x and y have the same length by the caller contract
		return insufficientData(m.Kind(), len(y))
	}

	return FitResult{
		Kind:         m.Kind(),
		Formula:      m.Formula(),
		Coefficients: m.Coefficients(),
		Predicted:    predicted,
		RSquared:     scores.RSquared,
		RMSE:         scores.RMSE,
		MAE:          scores.MAE,
		MaxAbsError:  scores.MaxAbsError,
	}
}

// softFailure builds the zeroed non-exceptional result. Scores are hardcoded
// to 0 rather than computed against the all-zero predictions.
func softFailure(kind Kind, n int, reason string) FitResult {
	return FitResult{
		Kind:         kind,
		Formula:      fmt.Sprintf("%s: %s", kind, reason),
		Coefficients: make([]float64, kind.arity()),
		Predicted:    make([]float64, n),
	}
}

func insufficientData(kind Kind, n int) FitResult {
	return softFailure(kind, n, "insufficient data")
}

func singularSystem(kind Kind, n int) FitResult {
	return softFailure(kind, n, "singular matrix")
}
