package microbp

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharnoff/microbp/initializers"
	"github.com/sharnoff/microbp/transfer"
)

func activations(net *Network) [][]float64 {
	as := make([][]float64, len(net.layers))
	for l := range net.layers {
		for u := range net.layers[l] {
			as[l] = append(as[l], net.layers[l][u].activation)
		}
	}
	return as
}

func weights(net *Network) []float64 {
	var ws []float64
	for l := range net.layers {
		for u := range net.layers[l] {
			for _, c := range net.layers[l][u].outgoing {
				ws = append(ws, c.weight)
			}
		}
	}
	return ws
}

func TestNewShape(t *testing.T) {
	net, err := New([]int{3, 4, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 2}, net.Topology())
	assert.Equal(t, 3, net.NumLayers())

	// bias units on every layer but the last
	assert.Len(t, net.layers[0], 4)
	assert.Len(t, net.layers[1], 5)
	assert.Len(t, net.layers[2], 2)
	assert.True(t, net.HasBias(1))
	assert.False(t, net.HasBias(2))

	for l := 0; l < 2; l++ {
		for u := range net.layers[l] {
			assert.Len(t, net.layers[l][u].outgoing, net.Width(l+1), "layer %d unit %d", l, u)
		}
	}
	for u := range net.layers[2] {
		assert.Empty(t, net.layers[2][u].outgoing)
	}

	for _, w := range weights(net) {
		assert.True(t, w >= 0 && w < 1, "weight %v out of [0, 1)", w)
	}
}

func TestNewRejectsBadTopology(t *testing.T) {
	for _, top := range [][]int{nil, {}, {3}, {2, 0, 1}, {2, -1}} {
		_, err := New(top)

		var ce *ConfigurationError
		assert.True(t, errors.As(err, &ce), "topology %v: got %v", top, err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	opts := map[string]Option{
		"LearningRate":     WithLearningRate(math.NaN()),
		"Momentum":         WithMomentum(-0.5),
		"SmoothingHorizon": WithSmoothing(math.Inf(1)),
		"FireWindow":       WithFireWindow(-1),
		"Transfer":         WithTransfer(nil),
		"Init":             WithInitializer(nil),
	}

	for field, o := range opts {
		_, err := New([]int{2, 1}, o)

		var ce *ConfigurationError
		require.True(t, errors.As(err, &ce), field)
		assert.Equal(t, field, ce.Field)
	}
}

func TestResultsLength(t *testing.T) {
	for _, top := range [][]int{{1, 1}, {2, 3, 1}, {4, 4, 4, 2}, {3, 7}} {
		net, err := New(top)
		require.NoError(t, err)

		require.NoError(t, net.Forward(make([]float64, top[0])))
		assert.Len(t, net.Results(), top[len(top)-1])
	}
}

func TestForwardDimensionMismatch(t *testing.T) {
	net, err := New([]int{2, 3, 1})
	require.NoError(t, err)
	require.NoError(t, net.Forward([]float64{0.5, -0.25}))

	before := activations(net)

	for _, in := range [][]float64{nil, {1}, {1, 2, 3}} {
		err := net.Forward(in)

		var de *DimensionError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "inputs", de.What)
		assert.Equal(t, 2, de.Expected)
		assert.Equal(t, len(in), de.Got)
	}

	assert.Equal(t, before, activations(net))
}

func TestBackPropagateBeforeForward(t *testing.T) {
	net, err := New([]int{2, 2, 1})
	require.NoError(t, err)

	before := weights(net)
	err = net.BackPropagate([]float64{1})

	var se *StateError
	require.True(t, errors.As(err, &se))
	assert.True(t, errors.Is(err, ErrNotForwarded))
	assert.Equal(t, before, weights(net))
	assert.Zero(t, net.Iterations())
}

func TestBackPropagateDimensionMismatch(t *testing.T) {
	net, err := New([]int{2, 2, 3})
	require.NoError(t, err)
	require.NoError(t, net.Forward([]float64{1, 0}))

	before := weights(net)
	err = net.BackPropagate([]float64{1, 0})

	var de *DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "targets", de.What)
	assert.Equal(t, 3, de.Expected)
	assert.Equal(t, before, weights(net))
	assert.Zero(t, net.LastError())
}

func TestDeterminism(t *testing.T) {
	build := func(opts ...Option) *Network {
		net, err := New([]int{3, 5, 4, 2}, append(opts, WithSeed(99))...)
		require.NoError(t, err)
		return net
	}

	a, b, c := build(), build(), build(WithParallel(true))
	inputs := [][]float64{{1, 0, 1}, {0.2, -0.7, 0.1}, {0, 0, 0}, {-1, 1, 0.5}}
	targets := []float64{0.25, -0.5}

	for i := 0; i < 50; i++ {
		in := inputs[i%len(inputs)]
		for _, net := range []*Network{a, b, c} {
			require.NoError(t, net.Forward(in))
		}

		assert.Equal(t, a.Results(), b.Results())
		assert.Equal(t, a.Results(), c.Results(), "parallel network diverged on step %d", i)

		for _, net := range []*Network{a, b, c} {
			require.NoError(t, net.BackPropagate(targets))
		}
	}

	assert.Equal(t, weights(a), weights(b))
	assert.Equal(t, weights(a), weights(c))

	other, err := New([]int{3, 5, 4, 2}, WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, weights(a), weights(other))
}

func TestBiasStaysPinned(t *testing.T) {
	net, err := New([]int{2, 3, 3, 1}, WithSeed(5))
	require.NoError(t, err)

	data := XORPatterns()
	for i := 0; i < 200; i++ {
		_, err := net.Step(data[i%len(data)])
		require.NoError(t, err)

		for l := 0; l < net.NumLayers()-1; l++ {
			require.Equal(t, 1.0, net.Activation(l, net.Width(l)), "layer %d after step %d", l, i)
		}
	}
}

func TestResultsIdempotent(t *testing.T) {
	net, err := New([]int{2, 4, 3})
	require.NoError(t, err)
	require.NoError(t, net.Forward([]float64{0.3, 0.9}))

	first := net.Results()
	assert.Equal(t, first, net.Results())

	// the returned slice is a copy
	first[0] = 12
	assert.NotEqual(t, first, net.Results())
}

func TestSingleLayerPairRoundTrip(t *testing.T) {
	for _, f := range []transfer.Func{transfer.Identity(), transfer.Tanh(), transfer.Arctan()} {
		net, err := New([]int{1, 1}, WithTransfer(f))
		require.NoError(t, err)
		require.NoError(t, net.SetWeight(0, 0, 0, 1))
		require.NoError(t, net.SetWeight(0, 1, 0, 0)) // bias

		for _, x := range []float64{-3, -0.5, 0, 0.25, 2} {
			outs, err := net.GetOutputs([]float64{x})
			require.NoError(t, err)
			assert.Equal(t, []float64{f.Value(x)}, outs, "%s(%v)", f.Name(), x)
		}
	}
}

func TestZeroMomentumUpdate(t *testing.T) {
	const eta = 0.3

	net, err := New([]int{2, 1}, WithLearningRate(eta), WithMomentum(0))
	require.NoError(t, err)

	ws := []float64{0.2, -0.4, 0.1}
	for u, w := range ws {
		require.NoError(t, net.SetWeight(0, u, 0, w))
	}

	in := []float64{0.3, -0.6}
	require.NoError(t, net.Forward(in))
	require.NoError(t, net.BackPropagate([]float64{1}))

	a := math.Tanh(0.2*0.3 + -0.4*-0.6 + 0.1)
	g := (1 - a) * (1 - a*a)

	sources := []float64{in[0], in[1], 1}
	for u := range ws {
		assert.InDelta(t, ws[u]+eta*sources[u]*g, net.Weight(0, u, 0), 1e-12, "weight from unit %d", u)
		assert.InDelta(t, eta*sources[u]*g, net.Delta(0, u, 0), 1e-12)
	}
	assert.InDelta(t, g, net.Gradient(1, 0), 1e-12)
}

func TestMomentumCarriesPreviousDelta(t *testing.T) {
	const eta, alpha = 0.2, 0.5

	net, err := New([]int{1, 1}, WithLearningRate(eta), WithMomentum(alpha), WithTransfer(transfer.Identity()))
	require.NoError(t, err)
	require.NoError(t, net.SetWeight(0, 0, 0, 0.5))
	require.NoError(t, net.SetWeight(0, 1, 0, 0))

	// step 1: out = 1, gradient = 2 - 1 = 1
	_, err = net.Step(Datum{[]float64{2}, []float64{2}})
	require.NoError(t, err)
	d1 := eta * 2 * 1
	assert.InDelta(t, 0.5+d1, net.Weight(0, 0, 0), 1e-12)
	assert.InDelta(t, eta*1*1, net.Weight(0, 1, 0), 1e-12)

	// step 2: out = 0.9*2 + 0.2 = 2, so the gradient is zero and only momentum moves the weight
	_, err = net.Step(Datum{[]float64{2}, []float64{2}})
	require.NoError(t, err)
	assert.InDelta(t, 0, net.Gradient(1, 0), 1e-12)

	d2 := alpha * d1
	assert.InDelta(t, 0.5+d1+d2, net.Weight(0, 0, 0), 1e-12)
	assert.InDelta(t, d2, net.Delta(0, 0, 0), 1e-12)
}

// Every gradient must come from the weights as they were before any update in the same step.
func TestHiddenGradientUsesPreUpdateWeights(t *testing.T) {
	net, err := New([]int{1, 1, 1}, WithLearningRate(0.1), WithMomentum(0), WithTransfer(transfer.Identity()))
	require.NoError(t, err)

	require.NoError(t, net.SetWeight(0, 0, 0, 0.5))
	require.NoError(t, net.SetWeight(0, 1, 0, 0.25))
	require.NoError(t, net.SetWeight(1, 0, 0, -1))
	require.NoError(t, net.SetWeight(1, 1, 0, 0.5))

	require.NoError(t, net.Forward([]float64{2}))
	assert.Equal(t, 1.25, net.Activation(1, 0))
	assert.Equal(t, []float64{-0.75}, net.Results())

	require.NoError(t, net.BackPropagate([]float64{1}))

	assert.InDelta(t, 1.75, net.Gradient(2, 0), 1e-12)
	assert.InDelta(t, -1.75, net.Gradient(1, 0), 1e-12)

	assert.InDelta(t, -0.78125, net.Weight(1, 0, 0), 1e-12)
	assert.InDelta(t, 0.675, net.Weight(1, 1, 0), 1e-12)
	assert.InDelta(t, 0.15, net.Weight(0, 0, 0), 1e-12)
	assert.InDelta(t, 0.075, net.Weight(0, 1, 0), 1e-12)
}

func TestErrorStatistics(t *testing.T) {
	net, err := New([]int{1, 2}, WithTransfer(transfer.Identity()), WithSmoothing(3),
		WithInitializer(initializers.Constant(0)), WithLearningRate(0))
	require.NoError(t, err)

	// outputs are always 0, so the error is that of the targets alone
	require.NoError(t, net.Forward([]float64{1}))
	require.NoError(t, net.BackPropagate([]float64{3, 4}))
	rms := math.Sqrt((9.0 + 16.0) / 2)
	assert.InDelta(t, rms, net.LastError(), 1e-12)
	assert.InDelta(t, rms, net.AverageError(), 1e-12, "the first error seeds the average")

	require.NoError(t, net.Forward([]float64{1}))
	require.NoError(t, net.BackPropagate([]float64{0, 0}))
	assert.Zero(t, net.LastError())
	assert.InDelta(t, rms*3/4, net.AverageError(), 1e-12)
	assert.Equal(t, 2, net.Iterations())
}

func TestFireRate(t *testing.T) {
	net, err := New([]int{1, 1}, WithFireWindow(4), WithTransfer(transfer.Identity()))
	require.NoError(t, err)
	require.NoError(t, net.SetWeight(0, 0, 0, 1))
	require.NoError(t, net.SetWeight(0, 1, 0, 0))

	for _, x := range []float64{1, 2, -1} {
		require.NoError(t, net.Forward([]float64{x}))
	}
	assert.Equal(t, 0.5, net.FireRate(0, 0))
	assert.Equal(t, 0.5, net.FireRate(1, 0))

	for i := 0; i < 4; i++ {
		require.NoError(t, net.Forward([]float64{-1}))
	}
	assert.Zero(t, net.FireRate(0, 0))

	off, err := New([]int{1, 1}, WithFireWindow(0))
	require.NoError(t, err)
	require.NoError(t, off.Forward([]float64{1}))
	assert.Zero(t, off.FireRate(0, 0))
}

func TestSetWeightOutOfRange(t *testing.T) {
	net, err := New([]int{2, 3, 1})
	require.NoError(t, err)

	cases := []struct {
		layer, u, next int
		what           string
	}{
		{-1, 0, 0, "layer"},
		{2, 0, 0, "layer"}, // the output layer has no outgoing connections
		{0, 3, 0, "unit"},
		{1, 0, 1, "connection"},
		{0, 0, 3, "connection"}, // bias units have no incoming connections
	}

	for _, c := range cases {
		err := net.SetWeight(c.layer, c.u, c.next, 1)

		var de *DimensionError
		require.True(t, errors.As(err, &de), "%+v", c)
		assert.Equal(t, c.what, de.What)
	}

	assert.NoError(t, net.SetWeight(0, 2, 2, 1), "the bias unit is a valid source")
}

func TestFiringWindow(t *testing.T) {
	f := newFiring(3)
	for _, s := range []bool{true, true, false, true} {
		f.record(s)
	}

	// the window now holds true, false, true
	assert.InDelta(t, 2.0/3, f.rate(), 1e-12)

	f.record(false)
	f.record(false)
	assert.InDelta(t, 1.0/3, f.rate(), 1e-12, "the window holds true, false, false")

	f.record(false)
	assert.Zero(t, f.rate())
}
