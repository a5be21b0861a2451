// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"math/bits"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// HammingDistrOptions configures the Hamming-weight histogram test.
type HammingDistrOptions struct {
	// NLevels gives block sizes 1, 2, 4, ..., 2^(NLevels-1) draws.
	NLevels int
	// SamplesPerLevel is how many blocks of each size to draw.
	SamplesPerLevel int
}

// HammingDistr builds, for each of NLevels block sizes, two
// histograms — sum-of-Hamming-weights across the block, and
// Hamming-weight-of-XOR across the block's two halves — tests each
// against the binomial distribution via chi-square restricted to bins
// with expected count >= 25, converts each to z via Wilson-Hilferty,
// and reports the maximum |z| across all 2*NLevels sub-tests.
func HammingDistr(state *generator.State, opts HammingDistrOptions) battery.TestResults {
	maxZ := 0.0
	for level := 0; level < opts.NLevels; level++ {
		blockSize := 1 << uint(level)
		totalBits := blockSize * state.Info.NBits

		sumHist := map[int]int{}
		xorHist := map[int]int{}

		for s := 0; s < opts.SamplesPerLevel; s++ {
			block := make([]uint64, blockSize)
			for i := range block {
				block[i] = state.GetBits()
			}

			sumWeight := 0
			for _, v := range block {
				sumWeight += bits.OnesCount64(v)
			}
			sumHist[sumWeight]++

			if blockSize >= 2 {
				half := blockSize / 2
				xorWeight := 0
				for i := 0; i < half; i++ {
					xorWeight += bits.OnesCount64(block[i] ^ block[half+i])
				}
				xorHist[xorWeight]++
			}
		}

		if z := binomialHistZ(sumHist, totalBits, opts.SamplesPerLevel); z > maxZ {
			maxZ = z
		}
		if blockSize >= 2 {
			halfBits := (blockSize / 2) * state.Info.NBits
			if z := binomialHistZ(xorHist, halfBits, opts.SamplesPerLevel); z > maxZ {
				maxZ = z
			}
		}
	}

	p := numeric.StdNormalPValue(maxZ)
	return battery.NewTestResults("hamming_distr", maxZ, p, 1.0)
}

// binomialHistZ chi-square-tests hist (a weight -> count histogram)
// against Binomial(nbits, 0.5), restricted to bins with expected
// count >= 25, and converts the result to z via Wilson-Hilferty.
func binomialHistZ(hist map[int]int, nbits, samples int) float64 {
	var chi float64
	var df float64
	for k := 0; k <= nbits; k++ {
		expected := numeric.BinomialPMF(k, nbits, 0.5) * float64(samples)
		if expected < 25 {
			continue
		}
		observed := float64(hist[k])
		d := observed - expected
		chi += d * d / expected
		df++
	}
	if df < 1 {
		return 0
	}
	return math.Abs(numeric.Chi2ToStdNormal(chi, df-1))
}
