// Command xor trains a Network on random pairs of bits, with their exclusive-or as the target,
// and reports its progress.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sharnoff/microbp"
	"github.com/sharnoff/microbp/report"
	"github.com/sharnoff/microbp/transfer"
)

var (
	topologyFlag = flag.String("topology", "2,2,1", "comma-separated widths of each layer")
	iterations   = flag.Int("iterations", 1000, "number of training samples")
	statusEvery  = flag.Int("every", 100, "iterations between status updates")
	configPath   = flag.String("config", "", "JSON config file; flags below override it when set")
	seed         = flag.Int64("seed", 1, "seed for weights and data (defaults to the config's seed)")
	eta          = flag.Float64("eta", math.NaN(), "learning rate")
	alpha        = flag.Float64("alpha", math.NaN(), "momentum")
	transferName = flag.String("transfer", "", "transfer function, one of: "+strings.Join(transfer.Names(), ", "))
	parallel     = flag.Bool("parallel", false, "spread the units of each layer across goroutines")
	verbose      = flag.Bool("v", false, "print every sample")
	reportPath   = flag.String("report", "", "file to write the final weight report to")
	plotPath     = flag.String("plot", "", "file to plot the training error to (.svg, .png, ...)")
)

func parseTopology(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	top := make([]int, len(fields))

	for i, f := range fields {
		w, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "Bad width %q in topology", f)
		}
		top[i] = w
	}

	return top, nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func checkFlags() error {
	if *statusEvery < 1 {
		return errors.Errorf("-every must be >= 1 (%d)", *statusEvery)
	} else if *iterations < 0 {
		return errors.Errorf("-iterations must not be negative (%d)", *iterations)
	}

	return nil
}

// config builds the Config from the file given by -config, if any, overridden by the flags in
// 'set'.
func config(set map[string]bool) (microbp.Config, error) {
	c := microbp.DefaultConfig()
	if *configPath != "" {
		var err error
		if c, err = microbp.LoadConfig(*configPath); err != nil {
			return c, err
		}
	}

	if set["seed"] {
		c.Seed = *seed
	}
	if !math.IsNaN(*eta) {
		c.LearningRate = *eta
	}
	if !math.IsNaN(*alpha) {
		c.Momentum = *alpha
	}
	if *parallel {
		c.Parallel = true
	}
	if *transferName != "" {
		f, err := transfer.ByName(*transferName)
		if err != nil {
			return c, err
		}
		c.Transfer = f
	}

	return c, nil
}

func train(net *microbp.Network, data microbp.DataSupplier, curve *report.Curve) error {
	log.Printf("Starting training for %d iterations...", *iterations)
	fmt.Println("Iteration, Last Error, Average Error, Percent Correct")

	update := func(r microbp.Result) {
		curve.Add(r.Iteration, r.LastError, r.AverageError)
		fmt.Printf("%d, %.5f, %.5f, %.1f\n", r.Iteration, r.LastError, r.AverageError, 100*r.Correct)
	}

	if !*verbose {
		return net.Train(microbp.TrainArgs{
			Data:         data,
			RunCondition: microbp.TrainUntil(*iterations),
			SendStatus:   microbp.Every(*statusEvery),
			IsCorrect:    microbp.CorrectRound,
			Update:       update,
		})
	}

	for i := 0; i < *iterations; i++ {
		d, err := data.Get(i)
		if err != nil {
			return err
		}

		outs, err := net.Step(d)
		if err != nil {
			return err
		}

		fmt.Printf(" | A: %v B: %v | R %.5f : E %v | DIFF | %.5f\n",
			d.Inputs[0], d.Inputs[1], outs[0], d.Outputs[0], math.Abs(d.Outputs[0]-outs[0]))
		curve.Add(i, net.LastError(), net.AverageError())
	}

	return nil
}

func test(net *microbp.Network) error {
	log.Println("Testing...")
	for _, d := range microbp.XORPatterns() {
		outs, err := net.GetOutputs(d.Inputs)
		if err != nil {
			return err
		}
		fmt.Printf("%v → %.5f (expected %v)\n", d.Inputs, outs[0], d.Outputs[0])
	}

	return nil
}

func main() {
	flag.Parse()

	top, err := parseTopology(*topologyFlag)
	if err != nil {
		log.Fatal(err)
	} else if top[0] != 2 || top[len(top)-1] != 1 {
		log.Fatalf("Topology %v must have 2 inputs and 1 output", top)
	}

	if err = checkFlags(); err != nil {
		log.Fatal(err)
	}

	c, err := config(setFlags())
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Setting up network %v (transfer: %s, eta: %g, alpha: %g, seed: %d)",
		top, c.Transfer.Name(), c.LearningRate, c.Momentum, c.Seed)
	net, err := microbp.NewWithConfig(top, c)
	if err != nil {
		log.Fatal(err)
	}

	var curve report.Curve
	data := microbp.XORBits(rand.New(rand.NewSource(c.Seed)))
	if err = train(net, data, &curve); err != nil {
		log.Fatal(err)
	}
	log.Println("Done training!")

	if err = test(net); err != nil {
		log.Fatal(err)
	}

	if *reportPath != "" {
		if err = report.Save(*reportPath, net, true); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote report to %s", *reportPath)
	}

	if *plotPath != "" {
		if err = curve.Save(*plotPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote error plot to %s", *plotPath)
	}
}
