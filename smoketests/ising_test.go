// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import "testing"

func TestIsing_Wolff_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 6006)
	r := Ising(state, IsingOptions{Algorithm: IsingWolff, WarmupSweeps: 20, NSamples: 50})
	requireSaneResult(t, r)
}

func TestIsing_Metropolis_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 7007)
	r := Ising(state, IsingOptions{Algorithm: IsingMetropolis, WarmupSweeps: 20, NSamples: 50})
	requireSaneResult(t, r)
}
