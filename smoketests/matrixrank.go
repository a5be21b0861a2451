// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
)

// MatrixRankOptions configures the GF(2) binary matrix rank test.
type MatrixRankOptions struct {
	// N is the matrix dimension (an NxN matrix is constructed).
	N int
	// MaxNBits caps how many bits of each draw feed one matrix row.
	MaxNBits int
}

// MatrixRank constructs an NxN binary matrix with rows drawn from the
// generator, computes its rank over GF(2) via Gaussian elimination,
// and compares the observed rank against the closed-form distribution
// for random binary matrices (mass concentrated at n, n-1, n-2).
func MatrixRank(state *generator.State, opts MatrixRankOptions) battery.TestResults {
	n := opts.N
	bitsPerRow := opts.MaxNBits
	if bitsPerRow <= 0 || bitsPerRow > n {
		bitsPerRow = n
	}

	rows := make([]uint64, n)
	for i := range rows {
		var row uint64
		bitsFilled := 0
		for bitsFilled < n {
			v := state.GetBits()
			take := bitsPerRow
			if bitsFilled+take > n {
				take = n - bitsFilled
			}
			row |= (v & (uint64(1)<<uint(take) - 1)) << uint(bitsFilled)
			bitsFilled += take
		}
		rows[i] = row
	}

	rank := gf2Rank(rows, n)

	pn, pn1, pn2 := matrixRankProbs(n)
	var p float64
	switch {
	case rank == n:
		p = pn
	case rank == n-1:
		p = pn1
	case rank == n-2:
		p = pn2
	default:
		p = 1 - pn - pn1 - pn2
		if p < 0 {
			p = 1e-15
		}
	}

	// Statistic is a likelihood-ratio-style score for the observed rank
	// category under its expected probability mass.
	stat := -2 * math.Log(p)
	return battery.NewTestResults("matrix_rank", stat, p, 1.0)
}

func gf2Rank(rows []uint64, n int) int {
	m := make([]uint64, len(rows))
	copy(m, rows)

	rank := 0
	for col := n - 1; col >= 0 && rank < len(m); col-- {
		pivot := -1
		for r := rank; r < len(m); r++ {
			if m[r]&(1<<uint(col)) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		for r := 0; r < len(m); r++ {
			if r != rank && m[r]&(1<<uint(col)) != 0 {
				m[r] ^= m[rank]
			}
		}
		rank++
	}
	return rank
}

// matrixRankProbs returns the asymptotic (large-n) probabilities of
// full rank, rank-1, and rank-2 deficiency for a random NxN GF(2)
// matrix, via the standard infinite-product closed form.
func matrixRankProbs(n int) (pFull, pMinus1, pMinus2 float64) {
	cInf := 1.0
	for k := 1; k <= 40; k++ {
		cInf *= 1 - math.Pow(2, -float64(k))
	}
	pFull = cInf
	pMinus1 = cInf * geomDeficiencyWeight(1)
	pMinus2 = cInf * geomDeficiencyWeight(2)
	return pFull, pMinus1, pMinus2
}

// geomDeficiencyWeight returns 2^(-d^2) / prod_{k=1..d} (1-2^-k)^2, the
// ratio of the rank n-d probability to the full-rank probability.
func geomDeficiencyWeight(d int) float64 {
	w := math.Pow(2, -float64(d*d))
	for k := 1; k <= d; k++ {
		q := 1 - math.Pow(2, -float64(k))
		w /= q * q
	}
	return w
}
