// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"sort"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// CollisionOverOptions configures the overlapping-tuple collision test.
type CollisionOverOptions struct {
	// K is the tuple arity; DBits is the bit width per tuple element.
	K, DBits int
	// N is the number of overlapping k-tuples to build from the
	// sliding window of draws.
	N int
}

// CollisionOver builds N overlapping k-tuples from a sliding window of
// k draws (DBits low bits of each), counts multiplicities after
// sorting, and reports a Poisson p-value on the multiplicity-2 count.
func CollisionOver(state *generator.State, opts CollisionOverOptions) battery.TestResults {
	mask := uint64(1)<<uint(opts.DBits) - 1
	window := make([]uint64, opts.K)
	for i := range window {
		window[i] = state.GetBits() & mask
	}

	tuples := make([]uint64, 0, opts.N)
	tuples = append(tuples, packTuple(window, opts.DBits))
	for i := 1; i < opts.N; i++ {
		copy(window, window[1:])
		window[opts.K-1] = state.GetBits() & mask
		tuples = append(tuples, packTuple(window, opts.DBits))
	}

	sort.Slice(tuples, func(i, j int) bool { return tuples[i] < tuples[j] })

	mult2 := 0
	run := 1
	for i := 1; i < len(tuples); i++ {
		if tuples[i] == tuples[i-1] {
			run++
		} else {
			if run == 2 {
				mult2++
			}
			run = 1
		}
	}
	if run == 2 {
		mult2++
	}

	domain := math.Pow(2, float64(opts.K*opts.DBits))
	lambda := float64(opts.N-opts.K+1) / domain
	mu := domain * (lambda - 1 + math.Exp(-lambda))

	p := numeric.PoissonPValue(float64(mult2), mu)
	return battery.NewTestResults("collision_over", float64(mult2), p, 1.0)
}

func packTuple(window []uint64, dbits int) uint64 {
	var v uint64
	for _, w := range window {
		v = (v << uint(dbits)) | w
	}
	return v
}
