package microbp

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Datum is a simple wrapper used to send training samples to the Network
type Datum struct {
	// Inputs is the input of the network. It must have the same size as the first layer.
	Inputs []float64

	// Outputs is the expected output of the network, given the input. It must have the same
	// size as the last layer.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the Network, allowing
// it to be used for training.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.widths[0] && len(d.Outputs) == net.widths[len(net.widths)-1]
}

// Step performs a single training step on the Datum: Forward with its inputs, then
// BackPropagate with its outputs. The returned values are the outputs of the Network before its
// weights were adjusted.
func (net *Network) Step(d Datum) ([]float64, error) {
	if err := net.Forward(d.Inputs); err != nil {
		return nil, errors.Wrapf(err, "Training step %d failed", net.iter)
	}

	outs := net.Results()

	if err := net.BackPropagate(d.Outputs); err != nil {
		return outs, errors.Wrapf(err, "Training step %d failed", net.iter)
	}

	return outs, nil
}

// DataSupplier is the method of providing training samples to the Network.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(int) (Datum, error)
}

// DataFunc allows a function to be used as a DataSupplier
type DataFunc func(int) (Datum, error)

// Get is the implementation of DataSupplier
func (f DataFunc) Get(iter int) (Datum, error) {
	return f(iter)
}

// Cycle returns a DataSupplier that provides the given data in order, starting over once it has
// reached the end. Cycle panics with NilArgError if given no data.
func Cycle(data []Datum) DataSupplier {
	if len(data) == 0 {
		panic(NilArgError{"data"})
	}

	return DataFunc(func(iter int) (Datum, error) {
		return data[iter%len(data)], nil
	})
}

// XORBits returns a DataSupplier of random pairs of bits, with the exclusive-or of the pair as
// the single output. Bits are drawn from src.
func XORBits(src *rand.Rand) DataSupplier {
	bit := func() float64 {
		if src.Float64() > 0.5 {
			return 1
		}
		return 0
	}

	return DataFunc(func(int) (Datum, error) {
		a, b := bit(), bit()

		target := 0.0
		if a != b {
			target = 1
		}

		return Datum{[]float64{a, b}, []float64{target}}, nil
	})
}

// XORPatterns returns the four samples of the exclusive-or function.
func XORPatterns() []Datum {
	return []Datum{
		{[]float64{0, 0}, []float64{0}},
		{[]float64{0, 1}, []float64{1}},
		{[]float64{1, 0}, []float64{1}},
		{[]float64{1, 1}, []float64{0}},
	}
}

// A wrapper for sending back the progress of training
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// LastError and AverageError are those of the Network at the time of sending
	LastError    float64
	AverageError float64

	// The fraction correct since the last Result, as per IsCorrect() from TrainArgs. Zero if
	// IsCorrect is nil.
	// 0 → 1
	Correct float64
}

type TrainArgs struct {
	Data DataSupplier

	// RunCondition will be called at each successive iteration to determine if training should
	// continue. It is given the iteration and the Network's current average error. Training
	// will stop if 'false' is returned.
	RunCondition func(int, float64) bool

	// SendStatus indicates whether or not to send back information about the status of the
	// training since the last time 'true' was returned. SendStatus can be left nil to represent
	// an unconditional false.
	//
	// 'true' will be ignored on iteration 0. A final status is always sent when training ends,
	// if Update is not nil.
	SendStatus func(int) bool

	// IsCorrect returns whether or not the network outputs are correct, given the target
	// outputs. In order, it is given: outputs; targets. May be nil.
	IsCorrect func([]float64, []float64) bool

	// Update is how status updates are returned. If SendStatus is nil, then Update can also be
	// left nil.
	Update func(Result)
}

// Train runs training steps on the Network until args.RunCondition returns false. Iterations
// count from zero for each call to Train.
func (net *Network) Train(args TrainArgs) error {
	if args.Data == nil {
		return NilArgError{"TrainArgs.Data"}
	} else if args.RunCondition == nil {
		return NilArgError{"TrainArgs.RunCondition"}
	} else if args.SendStatus != nil && args.Update == nil {
		return NilArgError{"TrainArgs.Update"}
	}

	var correct, seen int
	send := func(iter int) {
		r := Result{Iteration: iter, LastError: net.lastError, AverageError: net.avgError}
		if args.IsCorrect != nil && seen != 0 {
			r.Correct = float64(correct) / float64(seen)
		}

		args.Update(r)
		correct, seen = 0, 0
	}

	iter := 0
	for ; args.RunCondition(iter, net.avgError); iter++ {
		if iter != 0 && args.SendStatus != nil && args.SendStatus(iter) {
			send(iter)
		}

		d, err := args.Data.Get(iter)
		if err != nil {
			return errors.Wrapf(err, "Couldn't get training data for iteration %d", iter)
		}

		outs, err := net.Step(d)
		if err != nil {
			return err
		}

		if args.IsCorrect != nil && args.IsCorrect(outs, d.Outputs) {
			correct++
		}
		seen++
	}

	if args.Update != nil && seen != 0 {
		send(iter)
	}

	return nil
}
