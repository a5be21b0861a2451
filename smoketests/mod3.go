// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// Mod3Options configures the base-3 overlapping-tuple test.
type Mod3Options struct {
	// NTuples is the number of overlapping 9-digit tuples to examine.
	NTuples int
}

const mod3TupleLen = 9
const mod3Cells = 19683 // 3^9

// Mod3 reduces each draw mod 3, builds overlapping 9-digit base-3
// tuples, and chi-square-tests the resulting 3^9-cell histogram
// against a uniform expectation, converting to z via Wilson-Hilferty.
func Mod3(state *generator.State, opts Mod3Options) battery.TestResults {
	digits := make([]byte, 0, opts.NTuples+mod3TupleLen-1)
	for len(digits) < opts.NTuples+mod3TupleLen-1 {
		digits = append(digits, byte(state.GetBits()%3))
	}

	counts := make([]int, mod3Cells)
	for i := 0; i+mod3TupleLen <= len(digits); i++ {
		cell := 0
		for j := 0; j < mod3TupleLen; j++ {
			cell = cell*3 + int(digits[i+j])
		}
		counts[cell]++
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	expected := float64(total) / mod3Cells

	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}

	df := float64(mod3Cells - 1)
	z := numeric.Chi2ToStdNormal(chi, df)
	p := numeric.StdNormalPValue(z)
	return battery.NewTestResults("mod3", z, p, 1.0)
}
