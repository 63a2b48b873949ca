package microbp

import "github.com/sharnoff/microbp/transfer"

// setActivation overwrites the activation of an input unit.
func (u *unit) setActivation(v float64) {
	u.activation = v
	u.fire.record(v > 0)
}

// forward sets the unit's activation from the activations of the previous layer, bias included,
// and the weights of their connections to this unit.
func (u *unit) forward(prev []unit, f transfer.Func) {
	var sum float64
	for p := range prev {
		sum += prev[p].activation * prev[p].outgoing[u.index].weight
	}

	u.sum = sum
	u.activation = f.Value(sum)
	u.fire.record(u.activation > 0)
}

func (u *unit) computeOutputGradient(target float64, f transfer.Func) {
	u.gradient = (target - u.activation) * f.Deriv(u.sum, u.activation)
}

// computeHiddenGradient sums the gradients of the next layer, weighted by this unit's
// connections to them. The next layer's bias unit has no incoming connection, so it never
// contributes.
func (u *unit) computeHiddenGradient(next []unit, f transfer.Func) {
	var sum float64
	for n := range u.outgoing {
		sum += u.outgoing[n].weight * next[n].gradient
	}

	u.gradient = sum * f.Deriv(u.sum, u.activation)
}

// updateIncomingWeights adjusts the connections from every unit of the previous layer to this
// one. It is the only place that connections are written to after construction.
func (u *unit) updateIncomingWeights(prev []unit, eta, alpha float64) {
	for p := range prev {
		c := &prev[p].outgoing[u.index]

		delta := eta*prev[p].activation*u.gradient + alpha*c.prevDelta

		c.weight += delta
		c.prevDelta = delta
	}
}
