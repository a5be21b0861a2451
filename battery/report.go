// Copyright (c) 2026 The SmokeRand Authors

package battery

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/smokerand/smokerand/entropy"
)

// ReportType names three report styles: a one-line pass/fail summary,
// the full per-test table, and per-test lines emitted as each worker
// finishes. Nothing in this package reads it: a Report renders only
// through WriteTable or WriteBrief, and no streaming output is produced.
type ReportType int

const (
	ReportBrief ReportType = iota
	ReportTable
	ReportStreaming
)

// Report is what Runner.Run returns: a run identifier, every test's
// results in declaration order, how long the run took, and the overall
// Verdict.
type Report struct {
	RunID      uuid.UUID
	Results    []TestResults
	Elapsed    time.Duration
	Verdict    Verdict
	Suspicious []string
}

// newReport builds a Report, drawing its RunID from e's keystream
// reader wired into uuid.SetRand — the teacher's own benchmark pattern
// (uuid_benchmark_test.go's CSPRNG cases) of feeding a ChaCha20 reader
// into uuid.SetRand for the duration of one uuid.New call.
func newReport(e *entropy.Entropy, results []TestResults, elapsed time.Duration) *Report {
	uuid.SetRand(e.Reader())
	runID := uuid.New()
	uuid.SetRand(nil)

	verdict, suspicious := ComputeVerdict(results)
	return &Report{
		RunID:      runID,
		Results:    results,
		Elapsed:    elapsed,
		Verdict:    verdict,
		Suspicious: suspicious,
	}
}

// WriteTable renders the index/name/statistic/p/1-p/verdict table
// spec.md §4.4 specifies, followed by elapsed time and overall verdict.
// The index column goes through humanize.Comma; elapsed time uses
// time.Duration.String directly, since go-humanize's time helpers
// (RelTime, Time) are calendar-relative (see DESIGN.md).
func (r *Report) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "run %s\n", r.RunID)
	fmt.Fprintf(w, "%-4s %-28s %14s %10s %10s %s\n", "idx", "test", "statistic", "p", "1-p", "verdict")
	for i, res := range r.Results {
		label := "Ok"
		t := tailP(res.P)
		switch {
		case t < failThreshold:
			label = "FAIL"
		case t < suspiciousThreshold:
			label = "SUSPICIOUS"
		}
		fmt.Fprintf(w, "%-4s %-28s %14.3g %10.3g %10.3g %s\n",
			humanize.Comma(int64(i+1)), res.Name, res.Statistic, res.P, res.Alpha, label)
	}
	fmt.Fprintf(w, "elapsed: %s\n", r.Elapsed)
	fmt.Fprintf(w, "verdict: %s\n", r.Verdict)
}

// WriteBrief renders a single-line pass/fail/error summary.
func (r *Report) WriteBrief(w io.Writer) {
	fmt.Fprintf(w, "%s: %s (%d tests, %s)\n", r.RunID, r.Verdict, len(r.Results), r.Elapsed)
}
