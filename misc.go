package microbp

import (
	"fmt"
	"math"
)

// CorrectRound returns whether every output rounds to its target. Outputs are rounded to the
// nearest integer, so it suits targets of 0 and 1. It assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, stopping after the given
// number of iterations.
func TrainUntil(maxIterations int) func(int, float64) bool {
	return func(iteration int, avgErr float64) bool {
		return iteration < maxIterations
	}
}

// TrainUntilError returns a function that satisfies TrainArgs.RunCondition, stopping once the
// average error falls below target or after maxIterations, whichever is first. The error is
// not checked before minIterations, so the average has time to settle.
func TrainUntilError(target float64, minIterations, maxIterations int) func(int, float64) bool {
	return func(iteration int, avgErr float64) bool {
		if iteration >= maxIterations {
			return false
		}

		return iteration < minIterations || avgErr >= target
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus, true on every iteration that is
// a multiple of 'frequency'. Every panics if frequency < 1.
func Every(frequency int) func(int) bool {
	if frequency < 1 {
		panic(fmt.Sprintf("status frequency must be >= 1 (%d)", frequency))
	}

	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
