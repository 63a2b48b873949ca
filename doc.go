// Package microbp provides a small, from-scratch multilayer perceptron, trained online by
// backpropagation with momentum.
//
// # Creating Networks
//
// A Network is built from its topology: the number of units in each layer, from the inputs to
// the outputs. For example, a Network with two inputs, one hidden layer of four units and a
// single output is created with:
//
//	net, err := microbp.New([]int{2, 4, 1})
//	if err != nil {
//		return err
//	}
//
// Every layer but the last also has a bias unit, with its activation fixed at 1. Every unit is
// connected to every non-bias unit of the next layer.
//
// The defaults (given by DefaultConfig) can be changed with Options:
//
//	net, err := microbp.New([]int{2, 4, 1},
//		microbp.WithLearningRate(0.2),
//		microbp.WithMomentum(0.3),
//		microbp.WithTransfer(transfer.Logistic()),
//		microbp.WithSeed(time.Now().UnixNano()),
//	)
//
// Transfer functions can be found in the subpackage "transfer", and weight initializers in
// "initializers". Initial weights are drawn from a source seeded by Config.Seed, so two Networks
// built with the same topology and Config are identical.
//
// # Training
//
// Each training step is a call to Forward followed by a call to BackPropagate with the targets
// for the same inputs:
//
//	if err := net.Forward(inputs); err != nil {
//		return err
//	}
//	outs := net.Results()
//	if err := net.BackPropagate(targets); err != nil {
//		return err
//	}
//
// Step does the same for a single Datum, and Train runs Step repeatedly with data from a
// DataSupplier, sending back progress as it goes. The error of the Network is available through
// LastError, the RMS error of the latest step, and AverageError, which is smoothed over roughly
// Config.SmoothingHorizon steps.
//
// # Errors
//
// Mismatched lengths of inputs or targets produce a *DimensionError, BackPropagate before any
// Forward produces a *StateError, and invalid topologies or Configs produce a
// *ConfigurationError. All of these are checked before the Network is changed.
//
// # Reporting
//
// The read accessors (Weight, Activation, FireRate, ...) give the subpackage "report" what it
// needs to write a human-readable dump of the Network's weights and the firing behavior of its
// units.
package microbp
