// Copyright (c) 2026 The SmokeRand Authors

package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChi2PValue_KnownPoints(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	// For x == f (statistic at its expected value, large f), the
	// Wilson-Hilferty p-value should sit close to 0.5.
	p := Chi2PValue(1000, 1000)
	is.InDelta(0.5, p, 0.02)
}

func TestChi2PValue_Clamped(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	p := Chi2PValue(1e9, 100)
	is.GreaterOrEqual(p, 0.0)
	is.LessOrEqual(p, 1.0)
}

func TestPoissonPValue_ZeroMeansCertainUpperTail(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	p := PoissonPValue(0, 5)
	is.Equal(1.0, p)
}

func TestPoissonPValue_InRange(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, lambda := range []float64{0.5, 1, 10, 1000} {
		p := PoissonPValue(lambda, lambda)
		is.GreaterOrEqual(p, 0.0)
		is.LessOrEqual(p, 1.0)
	}
}

func TestKSPValue_Bounds(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(1.0, KSPValue(0))
	is.InDelta(0, KSPValue(5), 1e-6)
}

func TestStdNormalCDF_Symmetry(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.InDelta(0.5, StdNormalCDF(0), 1e-9)
	is.InDelta(1-StdNormalCDF(1.5), StdNormalCDF(-1.5), 1e-9)
}

func TestStdNormalPPF_RoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, p := range []float64{0.001, 0.01, 0.5, 0.9, 0.999} {
		z := StdNormalPPF(p)
		got := StdNormalCDF(z)
		is.InDelta(p, got, 1e-6)
	}
}

func TestStudentTCDF_SymmetricAroundZero(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.InDelta(0.5, StudentTCDF(0, 30), 1e-9)
}

func TestBinomialPMF_SumsToOne(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	n := 40
	p := 0.3
	sum := 0.0
	for k := 0; k <= n; k++ {
		sum += BinomialPMF(k, n, p)
	}
	is.InDelta(1.0, sum, 1e-9)
}

func TestBinomialCDF_MatchesPMFSum(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	n := 20
	p := 0.4
	var running float64
	for k := 0; k <= n; k++ {
		running += BinomialPMF(k, n, p)
		is.InDelta(running, BinomialCDF(k, n, p), 1e-9)
	}
}

func TestClamp01(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(0.0, Clamp01(-0.5))
	is.Equal(1.0, Clamp01(1.5))
	is.Equal(0.25, Clamp01(0.25))
	is.True(math.IsNaN(Clamp01(math.NaN())))
}

func TestHalfNormalPValue_Monotonic(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(1.0, HalfNormalPValue(-1))
	is.Greater(HalfNormalPValue(0.5), HalfNormalPValue(2.0))
}
