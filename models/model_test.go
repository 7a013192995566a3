package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	testData := map[string]struct {
		kind     Kind
		expected string
	}{
		"logarithmic": {KindLogarithmic, "logarithmic"},
		"exponential": {KindExponential, "exponential"},
		"polynomial3": {KindPolynomial3, "polynomial3"},
		"power":       {KindPower, "power"},
		"quadratic":   {KindQuadratic, "quadratic"},
		"unknown":     {Kind(42), "unknown"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.kind.String())
		})
	}
}

func TestKindFromString(t *testing.T) {
	assert.Equal(t, KindPower, KindFromString("power"))
	assert.Equal(t, KindQuadratic, KindFromString("Quadratic"))
	assert.Equal(t, Kind(-1), KindFromString("cubicish"))
}

func TestKindJSONRoundTrip(t *testing.T) {
	bytes, err := json.Marshal(KindPolynomial3)
	require.Nil(t, err)
	assert.Equal(t, `"polynomial3"`, string(bytes))

	var kind Kind
	require.Nil(t, json.Unmarshal(bytes, &kind))
	assert.Equal(t, KindPolynomial3, kind)

	assert.NotNil(t, json.Unmarshal([]byte(`"spline"`), &kind))
}

func TestEvaluate(t *testing.T) {
	tol := 1e-12
	testData := map[string]struct {
		model    Model
		x        float64
		expected float64
	}{
		"logarithmic at e":       {Logarithmic{A: 2, B: 1}, 2.718281828459045, 3.0},
		"logarithmic at zero":    {Logarithmic{A: 2, B: 1}, 0, 0},
		"logarithmic negative x": {Logarithmic{A: 2, B: 1}, -3, 0},
		"exponential at zero":    {Exponential{A: 3, B: 0.5}, 0, 3},
		"exponential negative x": {Exponential{A: 3, B: 0.5}, -2, 3 * 0.36787944117144233},
		"polynomial3":            {Polynomial3{A: 1, B: -2, C: 3, D: -4}, 2, 2},
		"power":                  {Power{A: 2, B: 1.5}, 4, 16},
		"power at zero":          {Power{A: 2, B: 1.5}, 0, 0},
		"power negative x":       {Power{A: 2, B: 1.5}, -4, 0},
		"quadratic":              {Quadratic{A: 1, B: -1, C: 2}, 3, 8},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, td.expected, td.model.Evaluate(td.x), tol)
		})
	}
}

func TestFormula(t *testing.T) {
	testData := map[string]struct {
		model    Model
		expected string
	}{
		"logarithmic": {Logarithmic{A: 2, B: 1}, "y = 2.000000*ln(x) + 1.000000"},
		"exponential": {Exponential{A: 3, B: 0.5}, "y = 3.000000*e^(0.500000*x)"},
		"polynomial3": {Polynomial3{A: 1, B: -2, C: 3, D: -4}, "y = 1.000000*x^3 + -2.000000*x^2 + 3.000000*x + -4.000000"},
		"power":       {Power{A: 2, B: 1.5}, "y = 2.000000*x^1.500000"},
		"quadratic":   {Quadratic{A: 1, B: -1, C: 2}, "y = 1.000000*x^2 + -1.000000*x + 2.000000"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.model.Formula())
		})
	}
}

func TestFitResultModel(t *testing.T) {
	res := FitQuadratic([]float64{1, 2, 3}, []float64{1, 4, 9})
	m := res.Model()
	require.NotNil(t, m)
	assert.Equal(t, KindQuadratic, m.Kind())
	assert.InDelta(t, 9.0, m.Evaluate(3), 1e-6)

	soft := FitLogarithmic([]float64{-1, -2, -3}, []float64{5, 6, 7})
	assert.Nil(t, soft.Model())
}
