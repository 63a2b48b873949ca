// relus.go contains the transfer functions related to relu:
// * ReLU
// * Softplus (because it's similar)
package transfer

import "math"

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the standard rectified linear unit.
func ReLU() Func {
	return relu(0)
}

func (t relu) Name() string {
	return "relu"
}

func (t relu) Value(in float64) float64 {
	return math.Max(in, 0)
}

func (t relu) Deriv(in, out float64) float64 {
	if in >= 0 {
		return 1
	}
	return 0
}

// ****************************************
// Softplus
// ****************************************

type softplus int8

// Softplus returns ln(1 + e^x), a smooth approximation of ReLU.
func Softplus() Func {
	return softplus(0)
}

func (t softplus) Name() string {
	return "softplus"
}

// above this, ln(1 + e^x) and x are equal as float64s
const softplusLinear float64 = 36

func (t softplus) Value(in float64) float64 {
	if in > softplusLinear {
		return in
	}
	return math.Log1p(math.Exp(in))
}

func (t softplus) Deriv(in, out float64) float64 {
	// the derivative of softplus is the logistic function
	return 0.5 + 0.5*math.Tanh(0.5*in)
}
