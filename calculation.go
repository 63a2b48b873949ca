package microbp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sharnoff/microbp/utils"
)

type status int8

const (
	initialized status = iota // 0
	evaluated   status = iota // 1
	adjusted    status = iota // 2
)

// number of units each goroutine claims at a time when running in parallel
const opsPerThread int = 4

// eachUnit runs f on the units [0, n) of a layer, in parallel if the Network allows it. All calls
// have returned once eachUnit does.
func (net *Network) eachUnit(n int, f func(int)) {
	if net.parallel {
		utils.MultiThread(0, n, f, opsPerThread, 1)
		return
	}

	for i := 0; i < n; i++ {
		f(i)
	}
}

// Forward sets the inputs of the Network and propagates them through every layer. If the number
// of inputs does not equal the width of the first layer, Forward returns a *DimensionError and
// the Network is left unchanged.
func (net *Network) Forward(inputs []float64) error {
	if len(inputs) != net.widths[0] {
		return &DimensionError{"inputs", net.widths[0], len(inputs)}
	}

	for i, v := range inputs {
		net.layers[0][i].setActivation(v)
	}

	for l := 1; l < len(net.layers); l++ {
		prev, layer := net.layers[l-1], net.layers[l]

		net.eachUnit(net.widths[l], func(i int) {
			layer[i].forward(prev, net.transfer)
		})
	}

	net.stat = evaluated
	return nil
}

// Results returns a copy of the activations of the output units, from the most recent call to
// Forward. Results has no side effects.
func (net *Network) Results() []float64 {
	out := net.layers[len(net.layers)-1]

	rs := make([]float64, len(out))
	for i := range out {
		rs[i] = out[i].activation
	}

	return rs
}

// GetOutputs is a shorthand for Forward followed by Results.
func (net *Network) GetOutputs(inputs []float64) ([]float64, error) {
	if err := net.Forward(inputs); err != nil {
		return nil, err
	}

	return net.Results(), nil
}

// BackPropagate updates the error statistics of the Network for the given targets, computes the
// gradient of every unit, and adjusts every weight. The targets are assumed to correspond to the
// inputs of the most recent call to Forward; this is not checked.
//
// BackPropagate returns a *StateError if Forward has never been called, and a *DimensionError if
// the number of targets does not match the number of outputs. In either case, the Network is left
// unchanged.
func (net *Network) BackPropagate(targets []float64) error {
	if net.stat < evaluated {
		return &StateError{"back-propagate", ErrNotForwarded}
	}

	last := len(net.layers) - 1
	if len(targets) != net.widths[last] {
		return &DimensionError{"targets", net.widths[last], len(targets)}
	}

	net.recordError(targets)

	out := net.layers[last]
	net.eachUnit(len(out), func(i int) {
		out[i].computeOutputGradient(targets[i], net.transfer)
	})

	// the input layer has no use for gradients
	for l := last - 1; l > 0; l-- {
		layer, next := net.layers[l], net.layers[l+1]

		net.eachUnit(len(layer), func(i int) {
			layer[i].computeHiddenGradient(next, net.transfer)
		})
	}

	for l := last; l > 0; l-- {
		prev, layer := net.layers[l-1], net.layers[l]

		// bias units have no incoming connections
		net.eachUnit(net.widths[l], func(i int) {
			layer[i].updateIncomingWeights(prev, net.eta, net.alpha)
		})
	}

	net.iter++
	net.stat = adjusted
	return nil
}

// recordError sets the RMS error of the outputs against the targets, and folds it into the
// smoothed average. The first error recorded seeds the average.
func (net *Network) recordError(targets []float64) {
	outs := net.Results()
	net.lastError = floats.Distance(outs, targets, 2) / math.Sqrt(float64(len(outs)))

	if net.iter == 0 {
		net.avgError = net.lastError
		return
	}

	net.avgError = (net.avgError*net.horizon + net.lastError) / (net.horizon + 1)
}
