// Package transfer provides the activation functions that a Network can install, each paired
// with its derivative.
//
// Derivatives are given both the input to the function (the weighted sum of a unit) and its
// output (the unit's activation). Functions like Tanh and Logistic are cheapest to
// differentiate through their output; others, like Sine or ReLU, need the input.
package transfer

import "math"

// Func is a transfer function together with its derivative. Implementations must be pure:
// the same arguments always produce the same result.
type Func interface {
	// Name returns the name the Func is registered under, e.g. "tanh".
	Name() string

	// Value returns the output of the function for the given input.
	Value(in float64) float64

	// Deriv returns the derivative of the function at 'in'. 'out' is always Value(in), and
	// may be used instead of recalculating it.
	Deriv(in, out float64) float64
}

// ****************************************
// Tanh
// ****************************************

type tanh int8

// Tanh returns the hyperbolic tangent. It is the default transfer function.
func Tanh() Func {
	return tanh(0)
}

func (t tanh) Name() string {
	return "tanh"
}

func (t tanh) Value(in float64) float64 {
	return math.Tanh(in)
}

func (t tanh) Deriv(in, out float64) float64 {
	// it's cheaper to multiply it by itself than to use math.Pow()
	return 1 - out*out
}

// ****************************************
// Softsign
// ****************************************

type softsign int8

// Softsign returns the ratio x / (1 + |x|). It is similar in shape to Tanh and Logistic, but
// approaches its bounds far more slowly.
func Softsign() Func {
	return softsign(0)
}

func (t softsign) Name() string {
	return "softsign"
}

func (t softsign) Value(in float64) float64 {
	return in / (math.Abs(in) + 1)
}

func (t softsign) Deriv(in, out float64) float64 {
	// 1 / (|in| + 1)^2
	d := math.Abs(in) + 1
	return 1 / (d * d)
}

// ****************************************
// Logistic
// ****************************************

type logistic int8

// Logistic returns the logistic (or sigmoid) function, with range (0, 1).
func Logistic() Func {
	return logistic(0)
}

func (t logistic) Name() string {
	return "logistic"
}

func (t logistic) Value(in float64) float64 {
	// the logistic function can be rephrased as:
	return 0.5 + 0.5*math.Tanh(0.5*in)
}

func (t logistic) Deriv(in, out float64) float64 {
	return out * (1 - out)
}

// ****************************************
// Binary step
// ****************************************

type step int8

// BinaryStep returns 1 for non-negative inputs and 0 otherwise. Its derivative is zero
// everywhere it is defined, so units using it do not learn through backpropagation.
func BinaryStep() Func {
	return step(0)
}

func (t step) Name() string {
	return "binary-step"
}

func (t step) Value(in float64) float64 {
	if in >= 0 {
		return 1
	}
	return 0
}

func (t step) Deriv(in, out float64) float64 {
	return 0
}

// ****************************************
// Identity
// ****************************************

type identity int8

// Identity returns the input unchanged.
func Identity() Func {
	return identity(0)
}

func (t identity) Name() string {
	return "identity"
}

func (t identity) Value(in float64) float64 {
	return in
}

func (t identity) Deriv(in, out float64) float64 {
	return 1
}
