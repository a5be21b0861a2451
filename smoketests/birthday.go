// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"sort"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// BirthdaySpacingOptions configures the generalized birthday-spacings
// test over k-tuples of d-bit coordinates.
type BirthdaySpacingOptions struct {
	// DBits is the per-coordinate bit width.
	DBits int
	// K is the tuple arity; K*DBits must not exceed 64.
	K int
}

// BirthdaySpacing draws n = round(2^((k*d+4)/3)) non-overlapping
// k-tuples of d-bit coordinates, packs each into a point index,
// sorts the points, and counts repeated pairwise spacings, comparing
// the duplicate count against its Poisson null (lambda = n^3 / 2^(k*d+2)).
// If k*d is 64 and the generator's native width is 32 bits, the test
// falls back to 2 draws of d=32, k=2, matching the common special case
// where a 64-bit point cannot be built from a single 32-bit draw family.
func BirthdaySpacing(state *generator.State, opts BirthdaySpacingOptions) battery.TestResults {
	k, d := opts.K, opts.DBits
	if k*d == 64 && state.Info.NBits == 32 {
		k, d = 2, 32
	}
	bits := k * d
	if bits > 64 {
		// A point wider than 64 bits can't be packed into the uint64
		// coordinates this test sorts; spec.md §8 scenario 3 reports
		// this as a degenerate "bspace_nd" result rather than a
		// statistic computed against a clamped, wrong bit width.
		return battery.NewTestResults("bspace_nd", math.NaN(), math.NaN(), 1.0)
	}

	n := int(math.Round(math.Pow(2, (float64(bits)+4)/3)))
	if n < 2 {
		n = 2
	}

	points := make([]uint64, n)
	for i := range points {
		var pt uint64
		for j := 0; j < k; j++ {
			v := state.GetBits()
			mask := uint64(1)<<uint(d) - 1
			if d >= 64 {
				mask = ^uint64(0)
			}
			pt = (pt << uint(d)) | (v & mask)
		}
		points[i] = pt
	}

	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	spacings := make([]uint64, 0, n-1)
	for i := 1; i < n; i++ {
		spacings = append(spacings, points[i]-points[i-1])
	}
	sort.Slice(spacings, func(i, j int) bool { return spacings[i] < spacings[j] })

	dup := 0
	for i := 1; i < len(spacings); i++ {
		if spacings[i] == spacings[i-1] {
			dup++
		}
	}

	lambda := math.Pow(float64(n), 3) / math.Pow(2, float64(bits)+2)
	p := numeric.PoissonPValue(float64(dup), lambda)
	return battery.NewTestResults("birthday_spacing", float64(dup), p, 1.0)
}

// DecimatedBirthdayOptions configures the decimated 4-bit, 8-digit
// birthday-spacings variant.
type DecimatedBirthdayOptions struct {
	// Step is how many draws separate each extracted digit; Step-1
	// draws are skipped between consecutive digits.
	Step int
}

// DecimatedBirthday extracts eight 4-bit digits per point from draws
// spaced Step apart under each of three projections (low nibble, high
// nibble reversed, high nibble as-is), one after another: each
// projection draws its own points from the generator. It runs the
// 32-bit birthday-spacings analysis (k=8, d=4) on each projection
// independently, and reports the minimum p-value across the three,
// naming which projection produced it.
func DecimatedBirthday(state *generator.State, opts DecimatedBirthdayOptions) battery.TestResults {
	const k = 8
	const d = 4
	bits := k * d // 32
	n := int(math.Round(math.Pow(2, (float64(bits)+4)/3)))
	if n < 2 {
		n = 2
	}

	type projection struct {
		name    string
		extract func(v uint64) uint64
	}
	projections := []projection{
		{"low_nibble", func(v uint64) uint64 { return v & 0xF }},
		{"high_nibble_reversed", func(v uint64) uint64 { return reverseNibble((v >> 4) & 0xF) }},
		{"high_nibble", func(v uint64) uint64 { return (v >> 4) & 0xF }},
	}

	bestP := 2.0
	var bestStat float64
	var bestName string
	for _, proj := range projections {
		points := make([]uint64, n)
		for i := range points {
			var pt uint64
			for j := 0; j < k; j++ {
				v := state.GetBits()
				for s := 0; s < opts.Step-1; s++ {
					state.GetBits()
				}
				pt = (pt << d) | proj.extract(v)
			}
			points[i] = pt
		}

		sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
		spacings := make([]uint64, 0, n-1)
		for i := 1; i < n; i++ {
			spacings = append(spacings, points[i]-points[i-1])
		}
		sort.Slice(spacings, func(i, j int) bool { return spacings[i] < spacings[j] })

		dup := 0
		for i := 1; i < len(spacings); i++ {
			if spacings[i] == spacings[i-1] {
				dup++
			}
		}

		lambda := math.Pow(float64(n), 3) / math.Pow(2, float64(bits)+2)
		p := numeric.PoissonPValue(float64(dup), lambda)
		if p < bestP {
			bestP = p
			bestStat = float64(dup)
			bestName = proj.name
		}
	}

	r := battery.NewTestResults("decimated_birthday["+bestName+"]", bestStat, bestP, 1.0)
	return r
}

func reverseNibble(v uint64) uint64 {
	var out uint64
	for i := 0; i < 4; i++ {
		out = (out << 1) | (v & 1)
		v >>= 1
	}
	return out
}
