// Copyright (c) 2026 The SmokeRand Authors

package generator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSeedAPI(seed uint64) *CallerAPI {
	return NewCallerAPI(0,
		func(int) uint32 { return uint32(seed) },
		func(int) uint64 { return seed },
		nil)
}

func TestOpen_UnknownGenerator(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := Open("does-not-exist", fixedSeedAPI(1))
	is.Error(err)
}

func TestOpen_Lcg64_DeterministicFromSeed(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s1, err := Open("lcg64", fixedSeedAPI(42))
	require.NoError(t, err)
	s2, err := Open("lcg64", fixedSeedAPI(42))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		is.Equal(s1.GetBits(), s2.GetBits())
	}
}

func TestOpen_Lcg64_GetSumMatchesGetBitsLoop(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s1, err := Open("lcg64", fixedSeedAPI(7))
	require.NoError(t, err)
	s2, err := Open("lcg64", fixedSeedAPI(7))
	require.NoError(t, err)

	var want uint64
	for i := 0; i < 50; i++ {
		want += s1.GetBits()
	}
	is.Equal(want, s2.GetSum(50))
}

func TestOpen_Xorshift64Star_NeverZeroState(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	s, err := Open("xorshift64star", fixedSeedAPI(0))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		is.NotZero(s.GetBits())
	}
}

func TestNames_IncludesBuiltins(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	names := Names()
	is.Contains(names, "lcg64")
	is.Contains(names, "xorshift64star")
}

func TestCallerAPI_Strcmp(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	api := fixedSeedAPI(1)
	is.Equal(-1, api.Strcmp("a", "b"))
	is.Equal(1, api.Strcmp("b", "a"))
	is.Equal(0, api.Strcmp("a", "a"))
}

func TestCallerAPI_Printf(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var buf bytes.Buffer
	api := NewCallerAPI(0, func(int) uint32 { return 0 }, func(int) uint64 { return 0 }, &buf)
	api.Printf("hello %d", 7)
	is.Equal("hello 7", buf.String())
}

func TestCallerAPI_GetRAMInfo(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	api := fixedSeedAPI(1)
	info := api.GetRAMInfo()
	if !info.IsUnknown {
		is.Greater(info.TotalBytes, uint64(0))
	}
}
