// Package curvefit fits five closed-form regression model families to a
// paired sample set and scores each against the full data. The fitters are
// pure and stateless; callers may run them concurrently without coordination.
package curvefit

import (
	"fmt"
	"math"

	"github.com/fitkit/curvefit/dataset"
	"github.com/fitkit/curvefit/models"
)

// FitAll runs all five model fitters over the same sample pair. The results
// are always returned in the fixed order logarithmic, exponential,
// polynomial3, power, quadratic; downstream consumers index positionally.
func FitAll(x, y []float64) ([]models.FitResult, error) {
	ds, err := dataset.New(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create dataset, %w", err)
	}
	return FitDataset(ds), nil
}

// FitDataset runs all five model fitters over an already validated dataset.
func FitDataset(ds *dataset.Dataset) []models.FitResult {
	return []models.FitResult{
		models.FitLogarithmic(ds.X, ds.Y),
		models.FitExponential(ds.X, ds.Y),
		models.FitPolynomial3(ds.X, ds.Y),
		models.FitPower(ds.X, ds.Y),
		models.FitQuadratic(ds.X, ds.Y),
	}
}

// BestFit returns the index of the result with the highest non-NaN r-squared.
// Returns -1 when every result scored NaN or the slice is empty.
func BestFit(results []models.FitResult) int {
	best := -1
	bestScore := math.Inf(-1)
	for i, res := range results {
		if math.IsNaN(res.RSquared) {
			continue
		}
		if res.RSquared > bestScore {
			best = i
			bestScore = res.RSquared
		}
	}
	return best
}

// Report bundles a sample set with its fit results for serialization.
type Report struct {
	X       []float64          `json:"x"`
	Y       []float64          `json:"y"`
	Results []models.FitResult `json:"results"`
	Best    int                `json:"best"`
}

// NewReport fits the dataset and packages the outcome.
func NewReport(ds *dataset.Dataset) *Report {
	results := FitDataset(ds)
	return &Report{
		X:       ds.X,
		Y:       ds.Y,
		Results: results,
		Best:    BestFit(results),
	}
}
