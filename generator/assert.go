// Copyright (c) 2026 The SmokeRand Authors

//go:build debug

package generator

// assertWidth panics if v has any bit set above position nbits-1. Built
// only into debug builds (-tags debug), per §4.3/§6's width contract
// check staying off the release hot path.
func assertWidth(v uint64, nbits int) {
	if nbits >= 64 {
		return
	}
	if v>>uint(nbits) != 0 {
		panic("generator: GetBits returned bits outside the declared width")
	}
}
