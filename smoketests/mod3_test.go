// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import "testing"

func TestMod3_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 4004)
	r := Mod3(state, Mod3Options{NTuples: 40000})
	requireSaneResult(t, r)
}
