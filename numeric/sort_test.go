// Copyright (c) 2026 The SmokeRand Authors

package numeric

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadixSort64_MatchesStdlibSort(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	rng := rand.New(rand.NewSource(1))
	xs := make([]uint64, 5000)
	for i := range xs {
		xs[i] = rng.Uint64()
	}
	want := append([]uint64(nil), xs...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	RadixSort64(xs)
	is.Equal(want, xs)
}

func TestRadixSort64_Stable(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	// Bare uint64 keys carry no payload, so the relative order of equal
	// keys is not observable here; this checks that heavily repeated keys
	// come back in non-decreasing order.
	xs := make([]uint64, 1000)
	for i := range xs {
		xs[i] = uint64(i % 7)
	}
	RadixSort64(xs)
	for i := 1; i < len(xs); i++ {
		is.LessOrEqual(xs[i-1], xs[i])
	}
}

func TestRadixSort32_MatchesStdlibSort(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	rng := rand.New(rand.NewSource(2))
	xs := make([]uint32, 5000)
	for i := range xs {
		xs[i] = rng.Uint32()
	}
	want := append([]uint32(nil), xs...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	RadixSort32(xs)
	is.Equal(want, xs)
}

func TestRadixSort64_EmptyAndSingleton(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	empty := []uint64{}
	RadixSort64(empty)
	is.Empty(empty)

	single := []uint64{42}
	RadixSort64(single)
	is.Equal([]uint64{42}, single)
}

func TestQuickSort64_MatchesRadixSort64(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	rng := rand.New(rand.NewSource(3))
	xs := make([]uint64, 3000)
	for i := range xs {
		xs[i] = rng.Uint64()
	}
	radixSorted := append([]uint64(nil), xs...)
	RadixSort64(radixSorted)

	quickSorted := append([]uint64(nil), xs...)
	QuickSort64(quickSorted)

	is.Equal(radixSorted, quickSorted)
}

func BenchmarkRadixSort64(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	base := make([]uint64, 1<<20)
	for i := range base {
		base[i] = rng.Uint64()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xs := append([]uint64(nil), base...)
		RadixSort64(xs)
	}
}

func BenchmarkQuickSort64(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	base := make([]uint64, 1<<20)
	for i := range base {
		base[i] = rng.Uint64()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xs := append([]uint64(nil), base...)
		QuickSort64(xs)
	}
}
