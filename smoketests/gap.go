// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// GapOptions configures the gap test: a "hit" is a draw falling in
// [0, 2^(nbits-Shl)).
type GapOptions struct {
	Shl   int
	NGaps int
	// MaxDraws guards against pathologically low hit probability;
	// once exceeded without NGaps hits, the test hard-fails.
	MaxDraws int
}

// gapSentinelP is spec.md §7/§8's hard-fail sentinel: reported when
// the draw guard is exceeded with no verdict possible.
const gapSentinelP = 1e-15

// Gap counts run lengths between hits (draws in the low window) to
// build a histogram, bins it so the smallest theoretical bin has
// expected count >= 10, and applies chi-square with df = nbins-1.
func Gap(state *generator.State, opts GapOptions) battery.TestResults {
	full := uint64(1) << uint(state.Info.NBits)

	// shl >= nbits degenerates the hit window to empty: no draw can
	// ever land below a zero threshold, so the guard below is
	// guaranteed to fire regardless of what the generator produces.
	shiftAmt := state.Info.NBits - opts.Shl
	var threshold uint64
	if shiftAmt > 0 {
		threshold = uint64(1) << uint(shiftAmt)
	}
	hitProb := float64(threshold) / float64(full)

	maxDraws := opts.MaxDraws
	if maxDraws <= 0 {
		maxDraws = 1 << 24
	}

	gapLengths := make([]int, 0, opts.NGaps)
	length := 0
	draws := 0
	for len(gapLengths) < opts.NGaps {
		if draws >= maxDraws {
			return battery.NewTestResults("gap", math.NaN(), gapSentinelP, 1.0)
		}
		v := state.GetBits()
		draws++
		if v < threshold {
			gapLengths = append(gapLengths, length)
			length = 0
		} else {
			length++
		}
	}

	nbins := gapBinCount(hitProb, opts.NGaps)
	counts := make([]int, nbins)
	for _, g := range gapLengths {
		b := g
		if b >= nbins {
			b = nbins - 1
		}
		counts[b]++
	}

	expected := make([]float64, nbins)
	cum := 0.0
	for i := 0; i < nbins-1; i++ {
		p := hitProb * math.Pow(1-hitProb, float64(i))
		expected[i] = p * float64(opts.NGaps)
		cum += p
	}
	expected[nbins-1] = (1 - cum) * float64(opts.NGaps)

	var chi float64
	for i := range counts {
		d := float64(counts[i]) - expected[i]
		chi += d * d / expected[i]
	}
	df := float64(nbins - 1)
	p := numeric.Chi2PValue(chi, df)
	return battery.NewTestResults("gap", chi, p, 1.0)
}

// gapBinCount picks the largest bin count such that the smallest
// theoretical bin (the tail bin) still has expected count >= 10.
func gapBinCount(hitProb float64, ngaps int) int {
	for n := 2; n < 1<<20; n++ {
		tailProb := math.Pow(1-hitProb, float64(n-1))
		if tailProb*float64(ngaps) < 10 {
			if n <= 2 {
				return 2
			}
			return n - 1
		}
	}
	return 2
}

// Gap16Count0Options configures the 16-bit-word gap/zero-tracking test.
type Gap16Count0Options struct {
	NGaps int
}

// Gap16Count0 processes the stream as 16-bit words, tracking for every
// target value v the gap since it was last seen and whether a zero word
// appeared inside that gap. Its statistic is the Bonferroni-inflated
// maximum |z| over the gap-length histogram; its p-value is the smaller
// of that statistic's half-normal p-value and a binomial CDF p-value on
// the number of gaps that contained a zero. Duplicates of v inside a
// gap are not tracked: containsDup is never filled.
func Gap16Count0(state *generator.State, opts Gap16Count0Options) battery.TestResults {
	const domain = 65536
	lastSeen := make([]int, domain)
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	gapLenOfLastSeen := make([]int, domain)
	containsZero := make([]int, domain) // count of gaps [v...v] containing a zero
	containsDup := make([]int, domain)  // count of gaps [0...v] containing a duplicate of v
	gapLenHist := map[int]int{}

	var pos int
	wordsNeeded := opts.NGaps * 4 // heuristic draw budget per target density
	lastZero := -1
	for pos = 0; pos < wordsNeeded; pos++ {
		v := int(state.GetBits() & 0xFFFF)
		if lastSeen[v] >= 0 {
			gapLen := pos - lastSeen[v] - 1
			gapLenHist[gapLen]++
			gapLenOfLastSeen[v] = gapLen
			if lastZero > lastSeen[v] {
				containsZero[v]++
			}
		}
		lastSeen[v] = pos
		if v == 0 {
			lastZero = pos
		}
	}

	maxZ := 0.0
	total := 0
	for _, c := range gapLenHist {
		total += c
	}
	nCorrections := len(gapLenHist)
	if nCorrections == 0 {
		nCorrections = 1
	}
	for glen, c := range gapLenHist {
		p := math.Pow(1.0/domain, 1) * math.Pow(1-1.0/domain, float64(glen))
		expected := p * float64(total)
		if expected <= 0 {
			continue
		}
		z := (float64(c) - expected) / math.Sqrt(expected*(1-p))
		z = math.Abs(z) * math.Sqrt(float64(nCorrections)) // Bonferroni inflation on the statistic scale
		if z > maxZ {
			maxZ = z
		}
	}

	zeroTotal := 0
	for _, c := range containsZero {
		zeroTotal += c
	}
	pZero := numeric.BinomialCDF(zeroTotal, total, 1-math.Pow(float64(domain-1)/domain, 8))
	_ = containsDup

	p := numeric.HalfNormalPValue(maxZ)
	combined := math.Min(p, pZero)
	return battery.NewTestResults("gap16_count0", maxZ, combined, 1.0)
}
