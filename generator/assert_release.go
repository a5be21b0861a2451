// Copyright (c) 2026 The SmokeRand Authors

//go:build !debug

package generator

// assertWidth is a no-op in release builds; see assert.go for the
// debug-tagged version that actually checks the contract.
func assertWidth(uint64, int) {}
