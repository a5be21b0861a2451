// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearComplexity_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 2024)
	r := LinearComplexity(state, LinearComplexityOptions{NBits: 500, Pos: BitPosLow, Numeric: -1})
	requireSaneResult(t, r)
}

func TestBerlekampMassey_AllZeroSequenceHasZeroComplexity(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	seq := make([]byte, 64)
	is.Equal(0, berlekampMassey(seq))
}

func TestBerlekampMassey_AlternatingSequenceHasComplexityTwo(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	seq := make([]byte, 40)
	for i := range seq {
		seq[i] = byte(i % 2)
	}
	is.Equal(2, berlekampMassey(seq))
}

func TestBitPosIndex_NumericOverridesPos(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	idx := bitPosIndex(LinearComplexityOptions{Pos: BitPosLow, Numeric: 5}, 64)
	is.Equal(5, idx)
}
