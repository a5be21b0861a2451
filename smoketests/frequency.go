// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"sort"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// MonobitFreqOptions configures the signed bit-sum monobit frequency
// test (spec.md §4.5 "Frequency tests").
type MonobitFreqOptions struct {
	// NValues is the number of generator draws to consume.
	NValues int
}

// MonobitFreq sums +1/-1 over every bit of NValues draws and reports
// z = |sum|/sqrt(N), p = erfc(z/sqrt2).
func MonobitFreq(state *generator.State, opts MonobitFreqOptions) battery.TestResults {
	var sum int64
	n := int64(opts.NValues) * int64(state.Info.NBits)

	for i := 0; i < opts.NValues; i++ {
		v := state.GetBits()
		for b := 0; b < state.Info.NBits; b++ {
			if v&(1<<uint(b)) != 0 {
				sum++
			} else {
				sum--
			}
		}
	}

	z := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	p := math.Erfc(z / math.Sqrt2)
	return battery.NewTestResults("monobit_freq", z, p, 1.0)
}

// NBitWordsFreqOptions configures the n-bit-words frequency test.
type NBitWordsFreqOptions struct {
	// BitsPerWord is the window width w; 2^w bins are tracked.
	BitsPerWord int
	// AverageFreq is the target expected count per bin per block.
	AverageFreq int
	// NBlocks is the number of independent blocks to accumulate.
	NBlocks int
}

// NBitWordsFreq buckets each draw's low BitsPerWord bits into one of
// 2^w bins per block, computes each block's chi-square against a
// uniform expectation, then runs Kolmogorov-Smirnov across the sorted
// per-block chi-square values against the theoretical chi-square CDF.
func NBitWordsFreq(state *generator.State, opts NBitWordsFreqOptions) battery.TestResults {
	w := opts.BitsPerWord
	nbins := 1 << uint(w)
	df := float64(nbins - 1)
	valuesPerBlock := opts.AverageFreq * nbins
	mask := uint64(nbins - 1)

	chis := make([]float64, opts.NBlocks)
	for blk := 0; blk < opts.NBlocks; blk++ {
		counts := make([]int, nbins)
		for i := 0; i < valuesPerBlock; i++ {
			v := state.GetBits() & mask
			counts[v]++
		}
		var chi float64
		expected := float64(opts.AverageFreq)
		for _, c := range counts {
			d := float64(c) - expected
			chi += d * d / expected
		}
		chis[blk] = chi
	}
	sort.Float64s(chis)

	// KS statistic against the chi-square(df) CDF evaluated at each
	// sorted sample point.
	var dMax float64
	n := float64(opts.NBlocks)
	for i, x := range chis {
		cdf := numeric.Chi2CDF(x, df)
		d1 := math.Abs(cdf - float64(i)/n)
		d2 := math.Abs(cdf - float64(i+1)/n)
		if d1 > dMax {
			dMax = d1
		}
		if d2 > dMax {
			dMax = d2
		}
	}
	ksStat := (math.Sqrt(n) + 0.12 + 0.11/math.Sqrt(n)) * dMax
	p := numeric.KSPValue(ksStat)
	return battery.NewTestResults("nbit_words_freq", ksStat, p, 1.0)
}

// ByteWordsFreq is the w=8 specialization of NBitWordsFreq.
func ByteWordsFreq(state *generator.State, averageFreq, nblocks int) battery.TestResults {
	r := NBitWordsFreq(state, NBitWordsFreqOptions{BitsPerWord: 8, AverageFreq: averageFreq, NBlocks: nblocks})
	r.Name = "byte_words_freq"
	return r
}

// Word16Freq is the w=16 specialization of NBitWordsFreq.
func Word16Freq(state *generator.State, averageFreq, nblocks int) battery.TestResults {
	r := NBitWordsFreq(state, NBitWordsFreqOptions{BitsPerWord: 16, AverageFreq: averageFreq, NBlocks: nblocks})
	r.Name = "word16_freq"
	return r
}
