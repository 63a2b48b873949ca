package microbp

import "github.com/sharnoff/microbp/transfer"

// Topology returns a copy of the widths of each layer, as given to New.
func (net *Network) Topology() []int {
	t := make([]int, len(net.widths))
	copy(t, net.widths)
	return t
}

// NumLayers returns the number of layers in the Network, including the input and output layers.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Width returns the number of units in the given layer, not counting its bias unit.
func (net *Network) Width(layer int) int {
	return net.widths[layer]
}

// HasBias returns whether or not the given layer ends with a bias unit. This is true of every
// layer except the last. The bias unit's index is equal to Width(layer).
func (net *Network) HasBias(layer int) bool {
	return layer < len(net.layers)-1
}

// The accessors below allow panicking with index-out-of-bounds. Unit indexes include the bias
// unit where one exists.

// Activation returns the current activation of a unit.
func (net *Network) Activation(layer, u int) float64 {
	return net.layers[layer][u].activation
}

// Gradient returns the gradient of a unit from the most recent call to BackPropagate.
func (net *Network) Gradient(layer, u int) float64 {
	return net.layers[layer][u].gradient
}

// Weight returns the weight of the connection from unit u of the given layer to unit 'next' of
// the following layer.
func (net *Network) Weight(layer, u, next int) float64 {
	return net.layers[layer][u].outgoing[next].weight
}

// Delta returns the most recent change applied to the weight given by the same arguments as
// Weight.
func (net *Network) Delta(layer, u, next int) float64 {
	return net.layers[layer][u].outgoing[next].prevDelta
}

// FireRate returns the fraction of the most recent forward passes (up to Config.FireWindow) in
// which the unit's activation was positive.
func (net *Network) FireRate(layer, u int) float64 {
	return net.layers[layer][u].fire.rate()
}

// SetWeight sets the weight of the connection given by the same arguments as Weight, returning a
// *DimensionError if there is no such connection. The connection's momentum is left as it is.
func (net *Network) SetWeight(layer, u, next int, w float64) error {
	if layer < 0 || layer >= len(net.layers)-1 {
		return indexError("layer", len(net.layers)-1, layer)
	} else if u < 0 || u >= len(net.layers[layer]) {
		return indexError("unit", len(net.layers[layer]), u)
	} else if next < 0 || next >= net.widths[layer+1] {
		return indexError("connection", net.widths[layer+1], next)
	}

	net.layers[layer][u].outgoing[next].weight = w
	return nil
}

// LastError returns the root-mean-square error of the outputs, as measured by the most recent
// call to BackPropagate.
func (net *Network) LastError() float64 {
	return net.lastError
}

// AverageError returns the smoothed average of LastError over recent calls to BackPropagate.
// The first error recorded is taken as the average outright; each later one is folded in as
// (average*horizon + error) / (horizon + 1).
func (net *Network) AverageError() float64 {
	return net.avgError
}

// Iterations returns the number of successful calls to BackPropagate.
func (net *Network) Iterations() int {
	return net.iter
}

// LearningRate returns the eta the Network was built with.
func (net *Network) LearningRate() float64 {
	return net.eta
}

// Momentum returns the alpha the Network was built with.
func (net *Network) Momentum() float64 {
	return net.alpha
}

// Transfer returns the transfer function used by the Network's units.
func (net *Network) Transfer() transfer.Func {
	return net.transfer
}
