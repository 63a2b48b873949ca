package initializers

import "math/rand"

// RNG is a distribution of values, drawn from a caller-provided source of randomness.
type RNG interface {
	Gen(src *rand.Rand) float64
}

type uniform struct {
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread in [lower, upper), which can be set
// by Bounds. The default range is [0, 1).
//
// The result of Uniform also implements Initializer, and is the default Initializer of a
// Network.
func Uniform() *uniform {
	return &uniform{0, 1}
}

// Bounds sets the range of a Uniform RNG, returning it. If lower > upper, they are swapped.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen(src *rand.Rand) float64 {
	return src.Float64()*(u.upper-u.lower) + u.lower
}

// Set is the implementation of Initializer for Uniform.
func (u *uniform) Set(src *rand.Rand, s Shape, ws []float64) {
	for i := range ws {
		ws[i] = u.Gen(src)
	}
}

type normal struct {
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center and standard
// deviation can be set by Mean and SD, respectively. They default to 0 and 1.
func Normal() *normal {
	return &normal{0, 1}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen(src *rand.Rand) float64 {
	return src.NormFloat64()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within an truncated normal distribution. The
// distribution is truncated at 2 standard deviations. The center and standard deviation can be
// set in the same way as Normal, because Normal is embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// SD sets the standard deviation of the distribution before truncation.
func (t *truncNormal) SD(sd float64) *truncNormal {
	t.normal.SD(sd)
	return t
}

// Mean sets the center of the distribution.
func (t *truncNormal) Mean(mean float64) *truncNormal {
	t.normal.Mean(mean)
	return t
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will panic if given
// sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen(src *rand.Rand) float64 {
	for {
		v := src.NormFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}
