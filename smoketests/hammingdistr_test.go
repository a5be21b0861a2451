// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import "testing"

func TestHammingDistr_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 3003)
	r := HammingDistr(state, HammingDistrOptions{NLevels: 4, SamplesPerLevel: 500})
	requireSaneResult(t, r)
}
