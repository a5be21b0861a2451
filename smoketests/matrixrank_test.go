// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixRank_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 909)
	r := MatrixRank(state, MatrixRankOptions{N: 32, MaxNBits: 32})
	requireSaneResult(t, r)
}

func TestGf2Rank_IdentityRowsAreFullRank(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	rows := []uint64{0b100, 0b010, 0b001}
	is.Equal(3, gf2Rank(rows, 3))
}

func TestGf2Rank_DuplicateRowsLoseRank(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	rows := []uint64{0b100, 0b100, 0b001}
	is.Equal(2, gf2Rank(rows, 3))
}
