// Package initializers provides the ways a Network can set the starting weights of its
// connections. All randomness is drawn from the *rand.Rand handed to Set, so that Networks
// built from the same seed start out identical.
package initializers

import "math/rand"

// Shape describes the pair of layers that a set of weights connects. In is the number of units
// that feed each downstream unit (bias included), and Out is the number of downstream units.
type Shape struct {
	In, Out int
}

// Initializer dictates how the outgoing weights of a unit will be set, given a blank slice to
// hold them.
type Initializer interface {
	Set(src *rand.Rand, s Shape, ws []float64)
}

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the weights. There is no
// scaling beyond that of the RNG.
func Random(g RNG) random {
	return random{g}
}

// Set is the implementation of Initializer
func (r random) Set(src *rand.Rand, s Shape, ws []float64) {
	for i := range ws {
		ws[i] = r.Gen(src)
	}
}

type constant float64

// Constant returns an Initializer that sets every weight to the same value. It is mostly useful
// for reproducing hand-computed examples.
func Constant(value float64) constant {
	return constant(value)
}

// Set is the implementation of Initializer
func (c constant) Set(src *rand.Rand, s Shape, ws []float64) {
	for i := range ws {
		ws[i] = float64(c)
	}
}
