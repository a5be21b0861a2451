// Copyright (c) 2026 The SmokeRand Authors

// Package smoketests implements spec.md §4.5's test-family library: one
// file per family, each a pure function of a generator.State and a
// concrete Options struct. Bind adapts that shape into the
// battery.Test.Run closure the runner actually calls — realizing §9's
// "sum types of concrete option structs behind a uniform run trait"
// design note as plain Go: concrete option types plus closures, no
// interface needed since each family has exactly one operation.
package smoketests

import (
	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
)

// Bind adapts a family's typed Run function and Options value into the
// func(*generator.State, any) battery.TestResults shape battery.Test
// expects.
func Bind[O any](run func(*generator.State, O) battery.TestResults, opts O) func(*generator.State, any) battery.TestResults {
	return func(state *generator.State, _ any) battery.TestResults {
		return run(state, opts)
	}
}
