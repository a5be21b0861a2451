// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumCollector_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 5005)
	r := SumCollector(state, SumCollectorOptions{G: 1, NRuns: 500})
	requireSaneResult(t, r)
}

func TestIrwinHallCDF_BoundaryValues(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	is.Equal(1.0, irwinHallCDF(0, 0))
	is.Equal(0.0, irwinHallCDF(3, 0))
	is.Equal(1.0, irwinHallCDF(3, 3))
	is.InDelta(0.5, irwinHallCDF(1, 0.5), 1e-9)
}

func TestRunLengthProb_SumsToApproximatelyOne(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var total float64
	for n := 1; n <= 20; n++ {
		total += runLengthProb(n, 1)
	}
	is.InDelta(1.0, total, 1e-6)
}
