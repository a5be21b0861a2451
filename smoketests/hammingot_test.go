// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import "testing"

func TestHammingOT_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 1001)
	r := HammingOT(state, HammingOTOptions{Mode: HammingOTBytes, NTuples: 3000})
	requireSaneResult(t, r)
}

func TestHammingOTLong_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 2002)
	r := HammingOTLong(state, HammingOTLongOptions{BitsPerWord: 128, NTuples: 3000})
	requireSaneResult(t, r)
}
