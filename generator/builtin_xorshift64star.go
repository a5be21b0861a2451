// Copyright (c) 2026 The SmokeRand Authors

package generator

// xorshift64starState holds an xorshift64* generator's running value.
type xorshift64starState struct {
	x uint64
}

const xorshift64starMult = 0x2545F4914F6CDD1D

func init() {
	Register(&Info{
		Name:        "xorshift64star",
		Description: "xorshift64* (Vigna), 64-bit output via a multiplicative scramble",
		NBits:       64,
		Create: func(info *Info, api *CallerAPI) (any, error) {
			x := api.Seed64()
			if x == 0 {
				x = 1 // xorshift's all-zero state is a fixed point; avoid it.
			}
			return &xorshift64starState{x: x}, nil
		},
		GetBits: func(state any) uint64 {
			s := state.(*xorshift64starState)
			s.x ^= s.x >> 12
			s.x ^= s.x << 25
			s.x ^= s.x >> 27
			return s.x * xorshift64starMult
		},
	})
}
