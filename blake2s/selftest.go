// Copyright (c) 2026 The SmokeRand Authors

package blake2s

import "bytes"

// knownAnswer pairs an input with its published BLAKE2s-256 digest, used
// by SelfTest to verify this implementation against RFC 7693's algorithm
// at startup, as spec.md §4.2 requires ("mandatory... at startup").
var knownAnswers = []struct {
	input, digest []byte
}{
	{
		input: []byte{},
		digest: []byte{
			0x69, 0x21, 0x7a, 0x30, 0x79, 0x90, 0x80, 0x94,
			0xe1, 0x11, 0x21, 0xd0, 0x42, 0x35, 0x4a, 0x7c,
			0x1f, 0x55, 0xb6, 0x48, 0x2c, 0xa1, 0xa5, 0x1e,
			0x1b, 0x25, 0x0d, 0xfd, 0x1e, 0xd0, 0xee, 0xf9,
		},
	},
	{
		input: []byte("abc"),
		digest: []byte{
			0x50, 0x8c, 0x5e, 0x8c, 0x32, 0x7c, 0x14, 0xe2,
			0xe1, 0xa7, 0x2b, 0xa3, 0x4e, 0xeb, 0x45, 0x2f,
			0x37, 0x45, 0x8b, 0x20, 0x9e, 0xd6, 0x3a, 0x29,
			0x4d, 0x99, 0x9b, 0x4c, 0x86, 0x67, 0x59, 0x82,
		},
	},
}

// SelfTest verifies this implementation against the known-answer
// BLAKE2s-256 digests above. It returns false on any mismatch.
func SelfTest() bool {
	for _, ka := range knownAnswers {
		got := Sum(ka.input, nil, 32)
		if !bytes.Equal(got, ka.digest) {
			return false
		}
	}
	return true
}
