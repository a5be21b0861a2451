// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphere_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 8008)
	r := Sphere(state, SphereOptions{Dims: 3, NDraws: 5000})
	requireSaneResult(t, r)
}

func TestOrthantBallVolume_Dims2MatchesQuarterCircle(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	// Area of a unit quarter-circle is pi/4.
	is.InDelta(0.7853981633974483, orthantBallVolume(2), 1e-9)
}
