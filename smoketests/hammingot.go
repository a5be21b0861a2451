// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"math/bits"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// HammingOTMode selects how the stream is chunked before its Hamming
// weight is taken.
type HammingOTMode int

const (
	HammingOTValues HammingOTMode = iota
	HammingOTBytes
	HammingOTBytesLow1
	HammingOTBytesLow8
)

// HammingOTOptions configures the Hamming-weight overlapping-tuples
// test.
type HammingOTOptions struct {
	Mode HammingOTMode
	// NTuples is the number of overlapping 9-symbol tuples to examine.
	NTuples int
}

const hammingOTTupleLen = 9
const hammingOTCells = 1 << (2 * hammingOTTupleLen) // 4^9 = 262144

// hammingWeightCode maps a byte's Hamming weight (0..8) to one of four
// near-equiprobable 2-bit codes, grouped from the binomial(8, 0.5) PMF
// so each code's total probability mass is close to 1/4: weights
// {0,2,6,8} give 58/256, {1,3} 64/256, {4} 70/256 and {5,7} 64/256.
var hammingWeightCode = [9]byte{0, 1, 0, 1, 2, 3, 0, 3, 0}

// HammingOT streams each draw as its eight bytes (only its low byte in
// the BytesLow1 and BytesLow8 modes), maps each byte's Hamming weight
// through hammingWeightCode, counts overlapping 9-code tuples across
// 4^9 cells, then applies the G-test against a uniform per-cell
// expectation and converts to z via Wilson-Hilferty. HammingOTValues
// takes byte weights just as HammingOTBytes does; no mode takes the
// weight of a whole word. Rare cells are not merged: the G-test runs
// over the occupied cells as they are.
func HammingOT(state *generator.State, opts HammingOTOptions) battery.TestResults {
	codes := make([]byte, 0, opts.NTuples+hammingOTTupleLen)
	for len(codes) < opts.NTuples+hammingOTTupleLen-1 {
		v := state.GetBits()
		for _, b := range chunkBytes(v, opts.Mode) {
			codes = append(codes, hammingWeightCode[bits.OnesCount8(b)])
			if len(codes) >= opts.NTuples+hammingOTTupleLen-1 {
				break
			}
		}
	}

	counts := make(map[int]int, opts.NTuples)
	for i := 0; i+hammingOTTupleLen <= len(codes); i++ {
		cell := 0
		for j := 0; j < hammingOTTupleLen; j++ {
			cell = (cell << 2) | int(codes[i+j])
		}
		counts[cell]++
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	expectedPerCell := float64(total) / hammingOTCells

	var g float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		g += float64(c) * math.Log(float64(c)/expectedPerCell)
	}
	g *= 2

	df := float64(len(counts) - 1)
	if df < 1 {
		df = 1
	}
	z := numeric.Chi2ToStdNormal(g, df)
	p := numeric.StdNormalPValue(z)
	return battery.NewTestResults("hamming_ot", z, p, 1.0)
}

func chunkBytes(v uint64, mode HammingOTMode) []byte {
	switch mode {
	case HammingOTBytesLow1:
		return []byte{byte(v & 0xFF)}
	case HammingOTBytesLow8:
		return []byte{byte(v)}
	case HammingOTBytes, HammingOTValues:
		fallthrough
	default:
		out := make([]byte, 8)
		for i := range out {
			out[i] = byte(v >> (8 * uint(i)))
		}
		return out
	}
}

// HammingOTLongOptions configures the multi-word ("logical word")
// generalization of HammingOT.
type HammingOTLongOptions struct {
	BitsPerWord int // 128, 256, 512, or 1024
	NTuples     int
}

// HammingOTLong sums Hamming weights across BitsPerWord/gen.nbits
// consecutive draws to form one logical word per symbol, then runs the
// same overlapping-tuple analysis as HammingOT.
func HammingOTLong(state *generator.State, opts HammingOTLongOptions) battery.TestResults {
	drawsPerWord := opts.BitsPerWord / state.Info.NBits
	if drawsPerWord < 1 {
		drawsPerWord = 1
	}

	codes := make([]byte, 0, opts.NTuples+hammingOTTupleLen)
	for len(codes) < opts.NTuples+hammingOTTupleLen-1 {
		weight := 0
		for i := 0; i < drawsPerWord; i++ {
			weight += bits.OnesCount64(state.GetBits())
		}
		// Map the full-word weight into the same 4-symbol alphabet via
		// its position in an approximately-equiprobable quartile split.
		codes = append(codes, quartileCode(weight, opts.BitsPerWord))
	}

	counts := make(map[int]int, opts.NTuples)
	for i := 0; i+hammingOTTupleLen <= len(codes); i++ {
		cell := 0
		for j := 0; j < hammingOTTupleLen; j++ {
			cell = (cell << 2) | int(codes[i+j])
		}
		counts[cell]++
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	expectedPerCell := float64(total) / hammingOTCells

	var g float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		g += float64(c) * math.Log(float64(c)/expectedPerCell)
	}
	g *= 2

	df := float64(len(counts) - 1)
	if df < 1 {
		df = 1
	}
	z := numeric.Chi2ToStdNormal(g, df)
	p := numeric.StdNormalPValue(z)
	return battery.NewTestResults("hamming_ot_long", z, p, 1.0)
}

// quartileCode maps a word's Hamming weight to one of four codes split
// around the binomial(bitsPerWord, 0.5) mean and standard deviation.
func quartileCode(weight, bitsPerWord int) byte {
	mean := float64(bitsPerWord) / 2
	sd := math.Sqrt(float64(bitsPerWord)) / 2
	z := (float64(weight) - mean) / sd
	switch {
	case z < -0.675:
		return 0
	case z < 0:
		return 1
	case z < 0.675:
		return 2
	default:
		return 3
	}
}
