// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import "testing"

func TestBlockFreq_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 1414)
	r := BlockFreq(state, BlockFreqOptions{MaxBlocks: 3, BonferroniAlpha: 0.01, DrawsPerBlock: 20000})
	requireSaneResult(t, r)
}
