// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// BitPos selects which bit of each draw feeds the linear-complexity
// test's bit stream.
type BitPos int

const (
	BitPosLow BitPos = iota
	BitPosMid
	BitPosHigh
)

// LinearComplexityOptions configures the Berlekamp-Massey linear
// complexity test.
type LinearComplexityOptions struct {
	NBits int
	// Pos selects low/mid/high, or Numeric (if >= 0) picks an explicit
	// bit index 0..64.
	Pos     BitPos
	Numeric int
}

// LinearComplexity extracts NBits consecutive bits (at the configured
// bit position of each draw), runs Berlekamp-Massey to find the
// shortest LFSR generating that sequence, and compares the resulting
// complexity to its expected value under Rueppel's formula via a
// normal approximation.
func LinearComplexity(state *generator.State, opts LinearComplexityOptions) battery.TestResults {
	bitIdx := bitPosIndex(opts, state.Info.NBits)
	bitstream := make([]byte, opts.NBits)
	for i := range bitstream {
		v := state.GetBits()
		bitstream[i] = byte((v >> uint(bitIdx)) & 1)
	}

	L := berlekampMassey(bitstream)

	n := float64(opts.NBits)
	// Rueppel's expected linear complexity for a random bit sequence,
	// with the standard periodic correction term.
	mean := n/2 + (9+parityCorrection(opts.NBits))/36
	variance := 86.0 / 81.0

	z := (float64(L) - mean) / math.Sqrt(variance)
	p := numeric.StdNormalPValue(z)
	return battery.NewTestResults("linear_complexity", float64(L), p, 1.0)
}

func parityCorrection(n int) float64 {
	if n%2 == 0 {
		return -1
	}
	return 1
}

func bitPosIndex(opts LinearComplexityOptions, nbits int) int {
	if opts.Numeric >= 0 && opts.Numeric <= 64 {
		if opts.Numeric >= nbits {
			return nbits - 1
		}
		return opts.Numeric
	}
	switch opts.Pos {
	case BitPosLow:
		return 0
	case BitPosHigh:
		return nbits - 1
	default:
		return nbits / 2
	}
}

// berlekampMassey returns the linear complexity (shortest LFSR length)
// of a binary sequence over GF(2).
func berlekampMassey(seq []byte) int {
	n := len(seq)
	c := make([]byte, n+1)
	b := make([]byte, n+1)
	c[0], b[0] = 1, 1

	L, m := 0, -1
	for i := 0; i < n; i++ {
		var d byte
		for j := 0; j <= L; j++ {
			d ^= c[j] & seq[i-j]
		}
		if d == 0 {
			continue
		}
		t := make([]byte, n+1)
		copy(t, c)

		shift := i - m
		for j := 0; j+shift <= n; j++ {
			c[j+shift] ^= b[j]
		}

		if 2*L <= i {
			L = i + 1 - L
			m = i
			copy(b, t)
		}
	}
	return L
}
