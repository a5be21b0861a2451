// Copyright (c) 2026 The SmokeRand Authors

package chacha20engine

import "encoding/binary"

// zeroVector is the all-zero-key/nonce/counter=0 keystream block of
// RFC 7539 appendix A.1 (test vector #1). It is layout-invariant: with every input word zero, which pair
// of words is called "counter" and which "nonce" cannot affect the
// result, so this RFC 7539 value is valid evidence for this engine's
// 64-bit-nonce layout too.
var zeroVector = [BlockBytes]byte{
	0x76, 0xb8, 0xe0, 0xad, 0xa0, 0xf1, 0x3d, 0x90,
	0x40, 0x5d, 0x6a, 0xe5, 0x53, 0x86, 0xbd, 0x28,
	0xbd, 0xd2, 0x19, 0xb8, 0xa0, 0x8d, 0xed, 0x1a,
	0xa8, 0x36, 0xef, 0xcc, 0x8b, 0x77, 0x0d, 0xc7,
	0xda, 0x41, 0x59, 0x7c, 0x51, 0x57, 0x48, 0x8d,
	0x77, 0x24, 0xe0, 0x3f, 0xb8, 0xd8, 0x4a, 0x37,
	0x6a, 0x43, 0xb8, 0xf4, 0x15, 0x18, 0xa1, 0x1c,
	0xc3, 0x87, 0xb6, 0x69, 0xb2, 0xee, 0x65, 0x86,
}

// SelfTest verifies this engine's block function against the RFC 7539
// all-zero test vector, returning false on any mismatch. It checks only
// that vector; the nonzero-key block-function example of RFC 7539
// §2.3.2 is not checked.
func SelfTest() bool {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	s := New(key, nonce)

	var got [BlockBytes]byte
	for i := 0; i < BlockWords; i++ {
		binary.LittleEndian.PutUint32(got[i*4:i*4+4], s.Next32())
	}
	return got == zeroVector
}
