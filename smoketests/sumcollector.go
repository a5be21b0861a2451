// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// SumCollectorOptions configures Ugrin-Sparac's renewal-process sum
// collector.
type SumCollectorOptions struct {
	// G is the threshold each renewal's accumulated sum must exceed.
	G float64
	// NRuns is the number of independent renewals to collect.
	NRuns int
}

// SumCollector accumulates draws rescaled to the unit interval (top 32
// bits of each draw, divided by 2^32) until the running sum exceeds G,
// records how many draws that took, and restarts; it chi-square-tests
// the resulting run-length histogram (adjacent run lengths merged until
// each bin's expected count is >= 10) against the Irwin-Hall-derived
// closed form.
func SumCollector(state *generator.State, opts SumCollectorOptions) battery.TestResults {
	counts := map[int]int{}
	maxN := 1
	for run := 0; run < opts.NRuns; run++ {
		var sum float64
		n := 0
		for sum <= opts.G {
			top32 := state.GetBits() >> 32
			u := float64(top32) / 4294967296.0
			sum += u
			n++
		}
		counts[n]++
		if n > maxN {
			maxN = n
		}
	}

	type bin struct {
		lo, hi int // inclusive run-length range merged into this bin
		count  int
	}
	bins := make([]bin, 0, maxN)
	pending := bin{lo: 1}
	pendingExpected := 0.0
	for n := 1; n <= maxN+5; n++ {
		expected := runLengthProb(n, opts.G) * float64(opts.NRuns)
		pending.hi = n
		pending.count += counts[n]
		pendingExpected += expected
		if pendingExpected >= 10 {
			bins = append(bins, bin{lo: pending.lo, hi: pending.hi, count: pending.count})
			pending = bin{lo: n + 1}
			pendingExpected = 0
		}
	}
	if pending.count > 0 || pendingExpected > 0 {
		if len(bins) > 0 {
			last := &bins[len(bins)-1]
			last.hi = pending.hi
			last.count += pending.count
		} else {
			bins = append(bins, bin{lo: pending.lo, hi: pending.hi, count: pending.count})
		}
	}

	var chi float64
	for _, b := range bins {
		var expected float64
		for n := b.lo; n <= b.hi; n++ {
			expected += runLengthProb(n, opts.G)
		}
		expected *= float64(opts.NRuns)
		if expected <= 0 {
			continue
		}
		d := float64(b.count) - expected
		chi += d * d / expected
	}

	df := float64(len(bins) - 1)
	if df < 1 {
		df = 1
	}
	p := numeric.Chi2PValue(chi, df)
	return battery.NewTestResults("sum_collector", chi, p, 1.0)
}

// runLengthProb returns P(N=n) for the count of Uniform(0,1) draws
// whose partial sum first exceeds g, via the Irwin-Hall CDF:
// P(N=n) = F_{n-1}(g) - F_n(g).
func runLengthProb(n int, g float64) float64 {
	return irwinHallCDF(n-1, g) - irwinHallCDF(n, g)
}

// irwinHallCDF returns P(sum of k iid Uniform(0,1) draws <= g).
func irwinHallCDF(k int, g float64) float64 {
	if k == 0 {
		if g >= 0 {
			return 1
		}
		return 0
	}
	if g <= 0 {
		return 0
	}
	if g >= float64(k) {
		return 1
	}

	var sum float64
	for j := 0; j <= k; j++ {
		if g-float64(j) < 0 {
			break
		}
		sign := 1.0
		if j%2 == 1 {
			sign = -1
		}
		sum += sign * logBinomial(k, j) * math.Pow(g-float64(j), float64(k))
	}
	return sum / factorial(k)
}

func logBinomial(n, k int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	lk, _ := math.Lgamma(float64(k) + 1)
	lnk, _ := math.Lgamma(float64(n-k) + 1)
	return math.Exp(lg - lk - lnk)
}

func factorial(n int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	return math.Exp(lg)
}
