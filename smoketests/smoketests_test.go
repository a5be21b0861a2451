// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"testing"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/stretchr/testify/require"
)

func openLcg64(t *testing.T, seed uint64) *generator.State {
	t.Helper()
	api := generator.NewCallerAPI(0,
		func(int) uint32 { return uint32(seed) },
		func(int) uint64 { return seed },
		nil)
	st, err := generator.Open("lcg64", api)
	require.NoError(t, err)
	return st
}

func requireSaneResult(t *testing.T, r battery.TestResults) {
	t.Helper()
	require.GreaterOrEqual(t, r.P, 0.0)
	require.LessOrEqual(t, r.P, 1.0)
	require.InDelta(t, 1.0, r.P+r.Alpha, 1e-6)
}
