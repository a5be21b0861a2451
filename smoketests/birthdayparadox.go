// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"sort"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// minLog2NDraws is the floor on how many draws birthday_paradox will
// ever filter down to, regardless of how little RAM is available.
const minLog2NDraws = 19

// Log2NFromRAM picks the birthday_paradox table-size exponent from
// available RAM: half of the available bytes, expressed in filtered-draw
// slots, rounded down to a power of two, with a floor of 2^19. Callers
// build this once at battery-construction time (via
// generator.CallerAPI.GetRAMInfo) and thread the result into
// BirthdayParadoxOptions, since smoke test functions only see a
// *generator.State and cannot reach the CallerAPI that opened it.
func Log2NFromRAM(ram generator.RAMInfo) int {
	if ram.IsUnknown || ram.AvailableBytes == 0 {
		return minLog2NDraws
	}
	// Each retained draw costs 8 bytes in the dedup table; budget half
	// of available RAM to that table.
	budget := ram.AvailableBytes / 2 / 8
	log2n := 0
	for (uint64(1) << uint(log2n+1)) <= budget {
		log2n++
	}
	if log2n < minLog2NDraws {
		log2n = minLog2NDraws
	}
	return log2n
}

// BirthdayParadoxOptions configures the RAM-sized birthday-paradox
// duplicate-finding test.
type BirthdayParadoxOptions struct {
	// Log2N sizes the filter: keep only draws whose low E bits are
	// zero, where E is chosen so roughly 2^Log2N draws survive.
	Log2N int
	// MaxDraws caps how many raw draws are examined before giving up.
	MaxDraws int
}

// BirthdayParadox filters the draw stream down to values whose low E
// bits are zero (E picked so about 2^Log2N draws are expected to
// survive out of MaxDraws), then looks for duplicate survivors. If that
// pass finds none, it runs a second pass with the same filter over a
// fresh MaxDraws draws and reports a Poisson p-value on the combined
// duplicate count against the summed expected lambda. The filter does
// not depend on the target lambdas (4, then 16) handed to the passes.
func BirthdayParadox(state *generator.State, opts BirthdayParadoxOptions) battery.TestResults {
	dup1, lambda1, n1 := birthdayParadoxPass(state, opts, 4)
	if dup1 > 0 {
		p := numeric.PoissonPValue(float64(dup1), lambda1)
		return battery.NewTestResults("birthday_paradox", float64(dup1), p, 1.0)
	}

	dup2, lambda2, n2 := birthdayParadoxPass(state, opts, 16)
	combinedLambda := lambda1 + lambda2
	combinedDup := dup1 + dup2
	_ = n1
	_ = n2
	p := numeric.PoissonPValue(float64(combinedDup), combinedLambda)
	return battery.NewTestResults("birthday_paradox", float64(combinedDup), p, 1.0)
}

// birthdayParadoxPass runs one filter-and-collide pass, returning the
// observed duplicate count, the expected lambda for the survivors it
// collected, and how many survivors were collected. targetLambda is not
// used.
func birthdayParadoxPass(state *generator.State, opts BirthdayParadoxOptions, targetLambda float64) (dup int, lambda float64, survivors int) {
	n := uint64(1) << uint(opts.Log2N)
	// e is chosen so that MaxDraws filtered through a 2^-e keep
	// probability yields roughly n survivors.
	e := 0
	for opts.MaxDraws>>uint(e+1) >= int(n) && e < 63 {
		e++
	}
	mask := uint64(1)<<uint(e) - 1

	seen := make([]uint64, 0, n)
	draws := 0
	for draws < opts.MaxDraws {
		v := state.GetBits()
		draws++
		if v&mask == 0 {
			seen = append(seen, v)
		}
	}

	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for i := 1; i < len(seen); i++ {
		if seen[i] == seen[i-1] {
			dup++
		}
	}

	k := float64(len(seen))
	domain := 1.0
	for i := 0; i < 64-e; i++ {
		domain *= 2
	}
	lambda = k * k / (2 * domain)
	_ = targetLambda
	return dup, lambda, len(seen)
}
