// Copyright (c) 2026 The SmokeRand Authors

package battery

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/smokerand/smokerand/entropy"
	"github.com/smokerand/smokerand/generator"
)

// RunnerConfig holds a Runner's tunables.
type RunnerConfig struct {
	// Out receives CallerAPI.Printf output and Logger output. Defaults
	// to io.Discard.
	Out io.Writer
}

// DefaultRunnerConfig returns a RunnerConfig with output discarded.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{Out: io.Discard}
}

// RunnerOption customizes a RunnerConfig.
type RunnerOption func(*RunnerConfig)

// WithOutput sets the writer Printf/Logger output is sent to.
func WithOutput(w io.Writer) RunnerOption {
	return func(cfg *RunnerConfig) { cfg.Out = w }
}

// Runner executes a Battery against a named generator, scheduling tests
// round robin across nThreads worker goroutines.
type Runner struct {
	entropy *entropy.Entropy
	logger  *Logger
	out     io.Writer
}

// NewRunner builds a Runner drawing seed material from e.
func NewRunner(e *entropy.Entropy, opts ...RunnerOption) *Runner {
	cfg := DefaultRunnerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{entropy: e, logger: NewLogger(cfg.Out), out: cfg.Out}
}

// Run schedules b's tests round robin (test i -> worker i%nThreads),
// each worker opening one generator.State (serialized on e's internal
// mutex during Open, per spec.md §4.4 step 1) and running its assigned
// tests sequentially into a declaration-order-indexed results slice.
// filterIndex > 0 restricts execution to that 1-based test index; 0
// runs everything. ctx is accepted for API symmetry with the rest of
// this module's blocking calls, but per spec.md §5 "Cancellation: none"
// it is never checked mid-battery.
func (r *Runner) Run(ctx context.Context, b Battery, info *generator.Info, filterIndex int, nThreads int) (*Report, error) {
	if nThreads <= 0 {
		nThreads = 1
	}

	indices := make([]int, 0, len(b.Tests))
	if filterIndex > 0 {
		if filterIndex > len(b.Tests) {
			return nil, fmt.Errorf("battery: filter index %d out of range (battery has %d tests)", filterIndex, len(b.Tests))
		}
		indices = append(indices, filterIndex-1)
	} else {
		for i := range b.Tests {
			indices = append(indices, i)
		}
	}

	results := make([]TestResults, len(b.Tests))
	workerIndices := make([][]int, nThreads)
	for pos, testIdx := range indices {
		w := pos % nThreads
		workerIndices[w] = append(workerIndices[w], testIdx)
	}

	start := time.Now()
	var wg sync.WaitGroup
	errs := make([]error, nThreads)

	for w := 0; w < nThreads; w++ {
		assigned := workerIndices[w]
		if len(assigned) == 0 {
			continue
		}
		wg.Add(1)
		go func(workerID int, assigned []int) {
			defer wg.Done()

			api := generator.NewCallerAPI(workerID, r.entropy.Seed32, r.entropy.Seed64, r.out)
			state, err := generator.Open(info.Name, api)
			if err != nil {
				errs[workerID] = fmt.Errorf("battery: worker %d: %w", workerID, err)
				return
			}
			defer state.Close()

			for _, idx := range assigned {
				test := b.Tests[idx]
				results[idx] = test.Run(state, test.Options)
			}
			r.logger.Info("worker done", "thread", workerID, "tests", len(assigned))
		}(w, assigned)
	}
	wg.Wait()
	_ = ctx

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	report := newReport(r.entropy, results, time.Since(start))
	return report, nil
}
