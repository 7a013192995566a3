// Package models is a collection of closed-form regression model fitters for
// paired numeric samples. Every fitter estimates its coefficients by
// linearization plus ordinary least squares or by solving the normal
// equations, then scores the model against the full sample set.
package models

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies one of the five supported model families.
type Kind int

const (
	KindLogarithmic Kind = iota
	KindExponential
	KindPolynomial3
	KindPower
	KindQuadratic
)

var kindNames = map[Kind]string{
	KindLogarithmic: "logarithmic",
	KindExponential: "exponential",
	KindPolynomial3: "polynomial3",
	KindPower:       "power",
	KindQuadratic:   "quadratic",
}

func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}
	return "unknown"
}

var kindFromString = map[string]Kind{
	"logarithmic": KindLogarithmic,
	"exponential": KindExponential,
	"polynomial3": KindPolynomial3,
	"power":       KindPower,
	"quadratic":   KindQuadratic,
}

// KindFromString returns the Kind for a given name. Returns Kind(-1) for
// unknown names.
func KindFromString(name string) Kind {
	if kind, exists := kindFromString[strings.ToLower(name)]; exists {
		return kind
	}
	return Kind(-1)
}

// arity is the number of free coefficients of the model family.
func (k Kind) arity() int {
	switch k {
	case KindPolynomial3:
		return 4
	case KindQuadratic:
		return 3
	default:
		return 2
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	kind, exists := kindFromString[name]
	if !exists {
		return fmt.Errorf("unknown model kind %q", name)
	}
	*k = kind
	return nil
}

// Model is a fitted regression model that can be evaluated at any x.
type Model interface {
	Kind() Kind

	// Evaluate returns the model value at x, or 0 where the model is
	// undefined at x.
	Evaluate(x float64) float64

	// Formula returns the fitted equation with coefficients rounded to six
	// decimal digits.
	Formula() string

	// Coefficients returns the model coefficients in formula order.
	Coefficients() []float64
}

// Logarithmic is the model y = a*ln(x) + b, defined for x > 0.
type Logarithmic struct {
	A, B float64
}

func (m Logarithmic) Kind() Kind { return KindLogarithmic }

func (m Logarithmic) Evaluate(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return m.A*math.Log(x) + m.B
}

func (m Logarithmic) Formula() string {
	return fmt.Sprintf("y = %.6f*ln(x) + %.6f", m.A, m.B)
}

func (m Logarithmic) Coefficients() []float64 { return []float64{m.A, m.B} }

// Exponential is the model y = a*e^(b*x).
type Exponential struct {
	A, B float64
}

func (m Exponential) Kind() Kind { return KindExponential }

func (m Exponential) Evaluate(x float64) float64 {
	return m.A * math.Exp(m.B*x)
}

func (m Exponential) Formula() string {
	return fmt.Sprintf("y = %.6f*e^(%.6f*x)", m.A, m.B)
}

func (m Exponential) Coefficients() []float64 { return []float64{m.A, m.B} }

// Polynomial3 is the model y = a*x^3 + b*x^2 + c*x + d.
type Polynomial3 struct {
	A, B, C, D float64
}

func (m Polynomial3) Kind() Kind { return KindPolynomial3 }

func (m Polynomial3) Evaluate(x float64) float64 {
	return ((m.A*x+m.B)*x+m.C)*x + m.D
}

func (m Polynomial3) Formula() string {
	return fmt.Sprintf("y = %.6f*x^3 + %.6f*x^2 + %.6f*x + %.6f", m.A, m.B, m.C, m.D)
}

func (m Polynomial3) Coefficients() []float64 { return []float64{m.A, m.B, m.C, m.D} }

// Power is the model y = a*x^b, defined for x > 0.
type Power struct {
	A, B float64
}

func (m Power) Kind() Kind { return KindPower }

func (m Power) Evaluate(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return m.A * math.Pow(x, m.B)
}

func (m Power) Formula() string {
	return fmt.Sprintf("y = %.6f*x^%.6f", m.A, m.B)
}

func (m Power) Coefficients() []float64 { return []float64{m.A, m.B} }

// Quadratic is the model y = a*x^2 + b*x + c.
type Quadratic struct {
	A, B, C float64
}

func (m Quadratic) Kind() Kind { return KindQuadratic }

func (m Quadratic) Evaluate(x float64) float64 {
	return (m.A*x+m.B)*x + m.C
}

func (m Quadratic) Formula() string {
	return fmt.Sprintf("y = %.6f*x^2 + %.6f*x + %.6f", m.A, m.B, m.C)
}

func (m Quadratic) Coefficients() []float64 { return []float64{m.A, m.B, m.C} }
