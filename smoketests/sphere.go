// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// SphereOptions configures the hypersphere-volume Monte Carlo test.
type SphereOptions struct {
	// Dims is the dimension d to sample, 2..20.
	Dims int
	// NDraws is how many random points in [0,1]^d to draw.
	NDraws int
}

// Sphere estimates, via Monte Carlo, the fraction of points drawn
// uniformly from [0,1]^d that fall within the unit d-ball centered at
// the origin, and z-tests the observed fraction against the known
// closed-form volume of that intersection.
func Sphere(state *generator.State, opts SphereOptions) battery.TestResults {
	d := opts.Dims
	var hits int
	for i := 0; i < opts.NDraws; i++ {
		var sumSquares float64
		for j := 0; j < d; j++ {
			u := randUnit(state)
			sumSquares += u * u
		}
		if sumSquares <= 1 {
			hits++
		}
	}

	expectedP := orthantBallVolume(d)
	n := float64(opts.NDraws)
	observed := float64(hits) / n
	se := math.Sqrt(expectedP * (1 - expectedP) / n)
	if se == 0 {
		se = 1e-12
	}
	z := (observed - expectedP) / se
	p := numeric.StdNormalPValue(z)
	return battery.NewTestResults("sphere", z, p, 1.0)
}

// orthantBallVolume returns the volume of the intersection of the unit
// d-ball with the positive orthant [0,inf)^d restricted to [0,1]^d,
// which equals 2^-d times the full d-ball's volume since the unit ball
// lies entirely within [-1,1]^d and each orthant is symmetric.
func orthantBallVolume(d int) float64 {
	// V_d(1) = pi^(d/2) / Gamma(d/2 + 1)
	half := float64(d) / 2
	vBall := math.Pow(math.Pi, half) / math.Exp(numeric.LogGamma(half+1))
	return vBall / math.Pow(2, float64(d))
}
