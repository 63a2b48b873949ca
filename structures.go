package microbp

import "github.com/sharnoff/microbp/transfer"

// Network is a fully-connected feed-forward network, trained online by backpropagation with
// momentum. Its topology is fixed when it is built by New.
//
// A Network is not safe for concurrent use, but separate Networks share no state and can be
// trained in parallel.
type Network struct {
	// layers[l][u] is unit u of layer l. Every layer but the last ends with a bias unit.
	layers [][]unit

	// the declared width of each layer, not counting bias units
	widths []int

	eta, alpha float64
	horizon    float64
	transfer   transfer.Func
	parallel   bool

	// RMS error of the most recent call to BackPropagate
	lastError float64

	// running average of lastError over roughly 'horizon' samples
	avgError float64

	// number of completed calls to BackPropagate
	iter int

	stat status
}

// unit is a single node of a layer. Its outgoing connections are owned by it, but only ever
// updated by the downstream unit they lead to.
type unit struct {
	// position within the layer; also the index of the connection leading to this unit in each
	// of the previous layer's units
	index int

	// the weighted sum of inputs from the last forward pass, before the transfer function
	sum float64

	activation float64

	// the local error signal from the last backward pass
	gradient float64

	// one connection per non-bias unit of the next layer; empty for the output layer
	outgoing []connection

	fire firing
}

// connection is a weighted edge to a unit in the next layer
type connection struct {
	weight float64

	// the last change applied to weight, reapplied in part as momentum
	prevDelta float64
}

// firing tracks the fraction of recent activations that were positive, over a fixed window.
type firing struct {
	shots []bool

	// the position the next shot will be written to
	next int

	// the number of shots recorded, up to len(shots)
	count int

	// the number of true values in shots
	fired int
}

func newFiring(window int) firing {
	if window <= 0 {
		return firing{}
	}

	return firing{shots: make([]bool, window)}
}

func (f *firing) record(shot bool) {
	if len(f.shots) == 0 {
		return
	}

	if f.count == len(f.shots) {
		if f.shots[f.next] {
			f.fired--
		}
	} else {
		f.count++
	}

	f.shots[f.next] = shot
	if shot {
		f.fired++
	}

	f.next = (f.next + 1) % len(f.shots)
}

// rate is relative to the whole window, even before it has filled.
func (f *firing) rate() float64 {
	if len(f.shots) == 0 {
		return 0
	}

	return float64(f.fired) / float64(len(f.shots))
}
