package initializers

import (
	"math"
	"math/rand"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64
}

const defaultVarianceMode string = "avg"

// VarianceScaling returns the variance scaling initializer, which has 3 modes and a user-defined
// scaling factor. The three modes can be set by In, Out, and Avg. It defaults to Avg, with a
// factor of 1.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{defaultVarianceMode, 1}
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the number of units feeding each downstream unit.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the number of downstream units.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of In and Out.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = "avg"
	return v
}

// Set is the implementation of Initializer
func (v *varianceScaling) Set(src *rand.Rand, s Shape, ws []float64) {
	var scale float64
	if v.mode == "in" {
		scale = float64(s.In)
	} else if v.mode == "out" {
		scale = float64(s.Out)
	} else { // must be "avg"
		scale = float64(s.In+s.Out) / 2
	}

	gen := TruncNormal().SD(math.Sqrt(v.factor / scale))

	for i := range ws {
		ws[i] = gen.Gen(src)
	}
}

// LeCun returns variance scaling based on fan-in.
func LeCun() *varianceScaling {
	return VarianceScaling().In()
}

// He returns variance scaling based on fan-in, with a factor of 2. It is suited to ReLU.
func He() *varianceScaling {
	return VarianceScaling().In().Factor(2)
}

// Xavier returns variance scaling based on the average of fan-in and fan-out.
func Xavier() *varianceScaling {
	return VarianceScaling().Avg()
}

// Glorot is an alias for Xavier
func Glorot() *varianceScaling {
	return Xavier()
}
