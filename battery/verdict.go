// Copyright (c) 2026 The SmokeRand Authors

package battery

import "github.com/smokerand/smokerand/numeric"

// Verdict is a battery's overall pass/fail/error outcome.
type Verdict int

const (
	Passed Verdict = iota
	Failed
	Errored
)

func (v Verdict) String() string {
	switch v {
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	case Errored:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

const (
	failThreshold       = 1e-10
	suspiciousThreshold = 1e-3
)

// tailP returns min(p, 1-p): the probability mass in the smaller tail.
func tailP(p float64) float64 {
	if p < 1-p {
		return p
	}
	return 1 - p
}

// ComputeVerdict implements spec.md §4.4's verdict rule: a battery
// fails if any test's min(p,1-p) falls below failThreshold, is
// suspicious (but still passes) between failThreshold and
// suspiciousThreshold, and passes otherwise. suspicious reports which
// tests fell in the suspicious band, for callers that want to surface
// it without affecting Verdict itself.
func ComputeVerdict(results []TestResults) (verdict Verdict, suspicious []string) {
	verdict = Passed
	for _, r := range results {
		t := tailP(r.P)
		if t < failThreshold {
			verdict = Failed
		} else if t < suspiciousThreshold {
			suspicious = append(suspicious, r.Name)
		}
	}
	return verdict, suspicious
}

// ZScore converts a test's p-value to a signed standard-normal z-score
// scaled by its penalty weight, per spec.md §4.4's
// "z = Φ⁻¹(min(p, 1−p))... multiplied by the test's penalty weight",
// signed by which tail is smaller.
func ZScore(r TestResults) float64 {
	z := numeric.StdNormalPPF(tailP(r.P))
	if r.P > 0.5 {
		z = -z
	}
	return z * r.Penalty
}
