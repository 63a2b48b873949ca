package transfer

import "math"

// ****************************************
// Sine
// ****************************************

type sine int8

// Sine returns sin(x).
func Sine() Func {
	return sine(0)
}

func (t sine) Name() string {
	return "sine"
}

func (t sine) Value(in float64) float64 {
	return math.Sin(in)
}

func (t sine) Deriv(in, out float64) float64 {
	return math.Cos(in)
}

// ****************************************
// Gaussian
// ****************************************

type gaussian int8

// Gaussian returns e^(-x^2), which peaks at 1 for an input of 0.
func Gaussian() Func {
	return gaussian(0)
}

func (t gaussian) Name() string {
	return "gaussian"
}

func (t gaussian) Value(in float64) float64 {
	return math.Exp(-in * in)
}

func (t gaussian) Deriv(in, out float64) float64 {
	return -2 * in * out
}

// ****************************************
// Arctan
// ****************************************

type arctan int8

// Arctan returns the inverse tangent, with range (-π/2, π/2).
func Arctan() Func {
	return arctan(0)
}

func (t arctan) Name() string {
	return "arctan"
}

func (t arctan) Value(in float64) float64 {
	return math.Atan(in)
}

func (t arctan) Deriv(in, out float64) float64 {
	return 1 / (in*in + 1)
}

// ****************************************
// Sinc
// ****************************************

type sinc int8

// Sinc returns the unnormalized sinc function, sin(x)/x, with sinc(0) = 1.
func Sinc() Func {
	return sinc(0)
}

func (t sinc) Name() string {
	return "sinc"
}

func (t sinc) Value(in float64) float64 {
	if in == 0 {
		return 1
	}
	return math.Sin(in) / in
}

func (t sinc) Deriv(in, out float64) float64 {
	if in == 0 {
		return 0
	}
	return (math.Cos(in) - out) / in
}
