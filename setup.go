package microbp

import (
	"fmt"
	"math/rand"

	"github.com/sharnoff/microbp/initializers"
)

// biasValue is the activation of every bias unit
const biasValue float64 = 1

// New builds a Network with the given topology: the number of units in each layer, from the
// inputs to the outputs, not counting bias units. DefaultConfig is used, modified by any Options
// provided.
//
// New returns a *ConfigurationError if the topology has fewer than two layers, if any layer has
// a width below one, or if the resulting Config is invalid.
func New(topology []int, opts ...Option) (*Network, error) {
	c := DefaultConfig()
	for _, o := range opts {
		o(&c)
	}

	return NewWithConfig(topology, c)
}

// NewWithConfig builds a Network in the same way as New, but from a complete Config.
func NewWithConfig(topology []int, c Config) (*Network, error) {
	if len(topology) < 2 {
		return nil, &ConfigurationError{"topology", ErrTooFewLayers.Error()}
	}

	for l, w := range topology {
		if w < 1 {
			return nil, &ConfigurationError{fmt.Sprintf("topology[%d]", l), fmt.Sprintf("layer width must be >= 1 (%d)", w)}
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	net := &Network{
		layers:   make([][]unit, len(topology)),
		widths:   make([]int, len(topology)),
		eta:      c.LearningRate,
		alpha:    c.Momentum,
		horizon:  c.SmoothingHorizon,
		transfer: c.Transfer,
		parallel: c.Parallel,
	}
	copy(net.widths, topology)

	src := rand.New(rand.NewSource(c.Seed))
	last := len(topology) - 1

	for l, w := range topology {
		size, numOutputs := w+1, 0
		if l == last {
			size = w
		} else {
			numOutputs = topology[l+1]
		}

		shape := initializers.Shape{In: size, Out: numOutputs}

		net.layers[l] = make([]unit, size)
		for i := range net.layers[l] {
			u := &net.layers[l][i]
			u.index = i
			u.fire = newFiring(c.FireWindow)

			if numOutputs != 0 {
				ws := make([]float64, numOutputs)
				c.Init.Set(src, shape, ws)

				u.outgoing = make([]connection, numOutputs)
				for n := range ws {
					u.outgoing[n].weight = ws[n]
				}
			}
		}

		if l != last {
			// bias units are never recomputed, and their fire rate is not tracked
			net.layers[l][w].activation = biasValue
		}
	}

	return net, nil
}
