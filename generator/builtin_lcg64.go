// Copyright (c) 2026 The SmokeRand Authors

package generator

// lcg64State holds a 64-bit linear congruential generator's running
// value. Constants are Knuth's MMIX LCG (a = 6364136223846793005,
// c = 1442695040888963407).
type lcg64State struct {
	x uint64
}

const (
	lcg64Mult = 6364136223846793005
	lcg64Inc  = 1442695040888963407
)

func init() {
	Register(&Info{
		Name:        "lcg64",
		Description: "64-bit linear congruential generator (Knuth MMIX constants)",
		NBits:       64,
		Create: func(info *Info, api *CallerAPI) (any, error) {
			return &lcg64State{x: api.Seed64()}, nil
		},
		GetBits: func(state any) uint64 {
			s := state.(*lcg64State)
			s.x = s.x*lcg64Mult + lcg64Inc
			return s.x
		},
		GetSum: func(state any, n int) uint64 {
			s := state.(*lcg64State)
			var sum uint64
			for i := 0; i < n; i++ {
				s.x = s.x*lcg64Mult + lcg64Inc
				sum += s.x
			}
			return sum
		},
	})
}
