// Copyright (c) 2026 The SmokeRand Authors

// Command smokerand-demo is a hardcoded wiring demonstration: it seeds
// an entropy pool, opens the builtin lcg64 generator, runs a small
// battery of smoke tests against it, prints the resulting report
// table, and exits with spec.md §6's battery exit code (Passed=0,
// Failed=1, Error=2). It takes no flags or arguments; per spec.md §1
// the CLI argument parser is an out-of-scope host collaborator, so
// this binary only demonstrates end-to-end library wiring.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/entropy"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/smoketests"
)

func demoBattery() battery.Battery {
	return battery.Battery{
		Name: "smokerand-demo",
		Tests: []battery.Test{
			{
				Name:     "monobit_freq",
				Run:      smoketests.Bind(smoketests.MonobitFreq, smoketests.MonobitFreqOptions{NValues: 20000}),
				RAMClass: battery.RAMLo,
			},
			{
				Name:     "word16_freq",
				Run:      smoketests.Bind(smoketests.NBitWordsFreq, smoketests.NBitWordsFreqOptions{BitsPerWord: 16, AverageFreq: 8, NBlocks: 100}),
				RAMClass: battery.RAMMed,
			},
			{
				Name:     "gap",
				Run:      smoketests.Bind(smoketests.Gap, smoketests.GapOptions{Shl: 1, NGaps: 2000, MaxDraws: 1 << 22}),
				RAMClass: battery.RAMLo,
			},
			{
				Name:     "matrix_rank",
				Run:      smoketests.Bind(smoketests.MatrixRank, smoketests.MatrixRankOptions{N: 32, MaxNBits: 32}),
				RAMClass: battery.RAMMed,
			},
			{
				Name:     "mod3",
				Run:      smoketests.Bind(smoketests.Mod3, smoketests.Mod3Options{NTuples: 200000}),
				RAMClass: battery.RAMMed,
			},
		},
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	e, err := entropy.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "smokerand-demo: entropy init failed:", err)
		return int(battery.Errored)
	}

	runner := battery.NewRunner(e, battery.WithOutput(os.Stdout))
	info := &generator.Info{Name: "lcg64"}

	report, err := runner.Run(context.Background(), demoBattery(), info, 0, 4)
	if err != nil {
		fmt.Fprintln(os.Stderr, "smokerand-demo: run failed:", err)
		return int(battery.Errored)
	}

	report.WriteTable(os.Stdout)
	return int(report.Verdict)
}
