// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"testing"

	"github.com/smokerand/smokerand/generator"
	"github.com/stretchr/testify/assert"
)

// constantGenerator builds an ad hoc generator.State whose every draw
// is value, for exercising the gap test's guard against a source that
// can never produce a hit.
func constantGenerator(nbits int, value uint64) *generator.State {
	return &generator.State{Info: &generator.Info{
		Name:  "constant",
		NBits: nbits,
		GetBits: func(any) uint64 {
			return value
		},
	}}
}

func TestGap_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 55)
	r := Gap(state, GapOptions{Shl: 1, NGaps: 200, MaxDraws: 1 << 20})
	requireSaneResult(t, r)
}

func TestGap_HardFailsWhenDrawsExhausted(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	state := openLcg64(t, 1)
	r := Gap(state, GapOptions{Shl: 60, NGaps: 1000, MaxDraws: 16})
	is.Equal(gapSentinelP, r.P)
	is.True(math.IsNaN(r.Statistic))
}

// TestGap_HardFailsOnDegenerateThreshold covers spec.md §8 scenario 2:
// a generator that always returns 0, with shl exceeding the
// generator's width so the hit window is empty and no draw can ever
// land in it.
func TestGap_HardFailsOnDegenerateThreshold(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	state := constantGenerator(8, 0)
	r := Gap(state, GapOptions{Shl: 9, NGaps: 10_000_000, MaxDraws: 1 << 12})
	is.Equal(gapSentinelP, r.P)
	is.True(math.IsNaN(r.Statistic))
}

func TestGap16Count0_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 77)
	r := Gap16Count0(state, Gap16Count0Options{NGaps: 256})
	requireSaneResult(t, r)
}
