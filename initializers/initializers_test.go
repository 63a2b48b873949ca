package initializers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestUniformDefaultRange(t *testing.T) {
	ws := make([]float64, 1000)
	Uniform().Set(rand.New(rand.NewSource(1)), Shape{3, 2}, ws)

	for _, w := range ws {
		require.True(t, w >= 0 && w < 1, "weight %v out of [0, 1)", w)
	}
}

func TestUniformBoundsSwap(t *testing.T) {
	u := Uniform().Bounds(2, -2)
	src := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		v := u.Gen(src)
		require.True(t, v >= -2 && v < 2)
	}
}

func TestSameSeedSameWeights(t *testing.T) {
	inits := map[string]Initializer{
		"uniform": Uniform(),
		"normal":  Random(Normal()),
		"xavier":  Xavier(),
		"he":      He(),
	}

	for name, init := range inits {
		a, b := make([]float64, 16), make([]float64, 16)
		init.Set(rand.New(rand.NewSource(42)), Shape{4, 4}, a)
		init.Set(rand.New(rand.NewSource(42)), Shape{4, 4}, b)
		assert.Equal(t, a, b, name)
	}
}

func TestTruncNormalStaysInBounds(t *testing.T) {
	g := TruncNormal().Mean(1).SD(0.5).Trunc(1)
	src := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		v := g.Gen(src)
		require.True(t, v >= 0.5 && v <= 1.5, "value %v outside one standard deviation", v)
	}

	assert.Panics(t, func() { TruncNormal().Trunc(0) })
}

func TestVarianceScalingSpread(t *testing.T) {
	ws := make([]float64, 20000)
	He().Set(rand.New(rand.NewSource(4)), Shape{In: 50, Out: 10}, ws)

	// sqrt(2/50) = 0.2, shrunk to ~0.176 by truncating at 2 sd
	sd := stat.StdDev(ws, nil)
	assert.InDelta(t, 0.176, sd, 0.01)
	assert.InDelta(t, 0, stat.Mean(ws, nil), 0.01)
}

func TestVarianceScalingIsTruncated(t *testing.T) {
	ws := make([]float64, 200000)
	He().Set(rand.New(rand.NewSource(5)), Shape{In: 50, Out: 10}, ws)

	// 2 sd of sqrt(2/50)
	for _, w := range ws {
		require.True(t, w >= -0.4 && w <= 0.4, "weight %v beyond 2 standard deviations", w)
	}
}

func TestConstant(t *testing.T) {
	ws := make([]float64, 5)
	Constant(0.25).Set(nil, Shape{1, 5}, ws)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25, 0.25}, ws)
}
