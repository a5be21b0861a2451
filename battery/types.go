// Copyright (c) 2026 The SmokeRand Authors

// Package battery implements smokerand's battery runner: the
// round-robin multithreaded scheduler, the per-test verdict rule, and
// the report rendered after a run completes.
package battery

import (
	"math"

	"github.com/smokerand/smokerand/generator"
)

// RAMClass buckets a test's expected memory footprint, used only as
// scheduling/reporting metadata (spec.md §4.4's "ram_class" field);
// it never gates whether a test runs.
type RAMClass int

const (
	RAMLo RAMClass = iota
	RAMMed
	RAMHi
)

func (c RAMClass) String() string {
	switch c {
	case RAMLo:
		return "lo"
	case RAMMed:
		return "med"
	case RAMHi:
		return "hi"
	default:
		return "unknown"
	}
}

// TestResults is the outcome of one test: its name, statistic, p-value,
// complement, and penalty weight. P and Alpha are clamped to [0,1] by
// NewTestResults.
type TestResults struct {
	Name      string
	Statistic float64
	P         float64
	Alpha     float64
	Penalty   float64
}

// NewTestResults builds a TestResults, clamping p to [0,1] and deriving
// alpha as 1-p (spec.md's "p + alpha ∈ {1.0 ± 1e-6}" invariant).
func NewTestResults(name string, statistic, p, penalty float64) TestResults {
	p = clamp01(p)
	return TestResults{
		Name:      name,
		Statistic: statistic,
		P:         p,
		Alpha:     1 - p,
		Penalty:   penalty,
	}
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) {
		return p
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Test is one battery entry: its name, the function that runs it, its
// options blob, and scheduling metadata.
type Test struct {
	Name             string
	Run              func(state *generator.State, opts any) TestResults
	Options          any
	EstimatedSeconds float64
	RAMClass         RAMClass
}

// Battery is a named, ordered collection of Tests.
type Battery struct {
	Name  string
	Tests []Test
}
