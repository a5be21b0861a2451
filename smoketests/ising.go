// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/numeric"
)

// IsingAlgorithm selects the Monte Carlo update rule used to sample
// the lattice.
type IsingAlgorithm int

const (
	IsingWolff IsingAlgorithm = iota
	IsingMetropolis
)

// isingSide is the toroidal lattice's side length; a 16x16 lattice
// matches the classic critical-temperature Ising smoke test.
const isingSide = 16
const isingSites = isingSide * isingSide

// isingCriticalJ is beta*J at the 2D Ising critical point, ln(1+sqrt2)/2.
var isingCriticalJ = math.Log(1+math.Sqrt2) / 2

// knownCriticalEnergyPerSite is the infinite-lattice analytic (Onsager)
// energy per site this test compares the sampled mean against via a
// Student-t statistic; finite-size effects are absorbed into the
// comparison's tolerance via the sample variance itself.
// knownCriticalHeatCapacityPerSite is not used: heat capacity is not
// sampled or tested.
const knownCriticalEnergyPerSite = -1.4142135623730951 // -sqrt(2)
const knownCriticalHeatCapacityPerSite = 0.0           // diverges; used only as a soft reference

// IsingOptions configures the 2D Ising-model critical-point sampler.
type IsingOptions struct {
	Algorithm IsingAlgorithm
	// WarmupSweeps discards this many sweeps/cluster-flips before
	// sampling begins.
	WarmupSweeps int
	// NSamples is how many per-site energy samples to collect, one per
	// sweep after warmup.
	NSamples int
}

// Ising runs a 16x16 toroidal 2D Ising lattice at the critical coupling
// using either the Wolff cluster algorithm (explicit stack, no
// recursion) or single-spin Metropolis updates, samples per-site energy
// after a warmup period, and Student-t-tests the sampled mean energy
// against Onsager's analytic critical value.
func Ising(state *generator.State, opts IsingOptions) battery.TestResults {
	spins := newIsingLattice(state)

	sweep := isingMetropolisSweep
	if opts.Algorithm == IsingWolff {
		sweep = isingWolffSweep
	}

	for i := 0; i < opts.WarmupSweeps; i++ {
		sweep(state, spins)
	}

	samples := make([]float64, 0, opts.NSamples)
	for i := 0; i < opts.NSamples; i++ {
		sweep(state, spins)
		samples = append(samples, isingEnergyPerSite(spins))
	}

	mean, variance := meanVariance(samples)
	n := float64(len(samples))
	se := math.Sqrt(variance / n)
	if se == 0 {
		se = 1e-12
	}
	t := (mean - knownCriticalEnergyPerSite) / se
	p := numeric.StudentTPValue(t, n-1)
	return battery.NewTestResults("ising", t, p, 1.0)
}

func newIsingLattice(state *generator.State) []int8 {
	spins := make([]int8, isingSites)
	for i := range spins {
		if state.GetBits()&1 == 0 {
			spins[i] = -1
		} else {
			spins[i] = 1
		}
	}
	return spins
}

func isingIndex(x, y int) int {
	x = ((x % isingSide) + isingSide) % isingSide
	y = ((y % isingSide) + isingSide) % isingSide
	return y*isingSide + x
}

func isingNeighbors(i int) [4]int {
	x, y := i%isingSide, i/isingSide
	return [4]int{
		isingIndex(x+1, y),
		isingIndex(x-1, y),
		isingIndex(x, y+1),
		isingIndex(x, y-1),
	}
}

// isingMetropolisSweep performs isingSites single-spin-flip attempts.
func isingMetropolisSweep(state *generator.State, spins []int8) {
	for i := 0; i < isingSites; i++ {
		site := int(state.GetBits() % isingSites)
		var sumNeighbors int8
		for _, nb := range isingNeighbors(site) {
			sumNeighbors += spins[nb]
		}
		deltaE := 2 * isingCriticalJ * float64(spins[site]) * float64(sumNeighbors)
		if deltaE <= 0 || randUnit(state) < math.Exp(-deltaE) {
			spins[site] = -spins[site]
		}
	}
}

// isingWolffSweep grows and flips a single Wolff cluster using an
// explicit work-stack instead of recursion, so cluster size is not
// bounded by Go's goroutine stack growth behavior.
func isingWolffSweep(state *generator.State, spins []int8) {
	seed := int(state.GetBits() % isingSites)
	addProb := 1 - math.Exp(-2*isingCriticalJ)

	inCluster := make([]bool, isingSites)
	stack := make([]int, 0, isingSites)
	stack = append(stack, seed)
	inCluster[seed] = true
	clusterSpin := spins[seed]

	for len(stack) > 0 {
		site := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range isingNeighbors(site) {
			if inCluster[nb] || spins[nb] != clusterSpin {
				continue
			}
			if randUnit(state) < addProb {
				inCluster[nb] = true
				stack = append(stack, nb)
			}
		}
	}

	for i, in := range inCluster {
		if in {
			spins[i] = -spins[i]
		}
	}
}

func isingEnergyPerSite(spins []int8) float64 {
	var energy float64
	for i := range spins {
		nb := isingNeighbors(i)
		energy -= float64(spins[i]) * float64(spins[nb[0]]+spins[nb[2]])
	}
	return energy / isingSites
}

// randUnit rescales a draw's top 32 bits to [0,1).
func randUnit(state *generator.State) float64 {
	return float64(state.GetBits()>>32) / 4294967296.0
}

func meanVariance(xs []float64) (mean, variance float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / n
	if n < 2 {
		return mean, 0
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	variance = ss / (n - 1)
	return mean, variance
}
