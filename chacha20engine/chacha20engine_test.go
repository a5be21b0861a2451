// Copyright (c) 2026 The SmokeRand Authors

package chacha20engine

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfTest_MatchesRFC7539ZeroVector(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	is.True(SelfTest())
}

// sanityVector is an internally-computed (not RFC-published) fixture at
// counter=1 under this engine's 64-bit layout, used only to pin down
// regressions in the counter-increment and word-assembly logic.
var sanityVector = [BlockBytes]byte{
	0x19, 0x64, 0x1f, 0x8b, 0x5f, 0xce, 0x36, 0xae,
	0x13, 0xda, 0x55, 0xd5, 0x9f, 0x72, 0x3e, 0x7b,
	0xb1, 0xba, 0x5d, 0xc0, 0x41, 0xa2, 0x07, 0x9f,
	0xa9, 0x26, 0x21, 0x6f, 0xc6, 0x66, 0xab, 0x97,
	0x32, 0xbe, 0x40, 0xbd, 0x0b, 0x3e, 0x64, 0xfb,
	0x0a, 0x30, 0x4a, 0xe6, 0x34, 0x0a, 0x0e, 0x51,
	0x07, 0x7a, 0x52, 0x27, 0x71, 0xdc, 0xbb, 0x49,
	0xdb, 0x7f, 0x52, 0xd0, 0x0a, 0x57, 0x3a, 0xdf,
}

func sanityKeyNonce() ([KeySize]byte, [NonceSize]byte) {
	var key [KeySize]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(key[i*4:i*4+4], uint32(i+1))
	}
	var nonce [NonceSize]byte
	binary.LittleEndian.PutUint32(nonce[0:4], 0xdeadbeef)
	binary.LittleEndian.PutUint32(nonce[4:8], 0xcafef00d)
	return key, nonce
}

func TestNext32_CounterOneMatchesSanityVector(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, nonce := sanityKeyNonce()
	s := New(key, nonce)

	// Discard the counter=0 block.
	for i := 0; i < BlockWords; i++ {
		s.Next32()
	}

	var got [BlockBytes]byte
	for i := 0; i < BlockWords; i++ {
		binary.LittleEndian.PutUint32(got[i*4:i*4+4], s.Next32())
	}
	is.Equal(sanityVector, got)
}

func TestNext64_MatchesNext32Pairs(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, nonce := sanityKeyNonce()
	s1 := New(key, nonce)
	s2 := New(key, nonce)

	for i := 0; i < 8; i++ {
		lo := uint64(s1.Next32())
		hi := uint64(s1.Next32())
		want := lo | hi<<32
		is.Equal(want, s2.Next64())
	}
}

func TestRefill_CounterCarriesAcrossWords(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var key [KeySize]byte
	var nonce [NonceSize]byte
	s := New(key, nonce)
	s.input[12] = 0xFFFFFFFF

	s.refill()
	is.EqualValues(0, s.input[12])
	is.EqualValues(1, s.input[13])
}

func TestNew_NonceAndKeyPlacement(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, nonce := sanityKeyNonce()
	s := New(key, nonce)

	is.EqualValues(1, s.input[4])
	is.EqualValues(8, s.input[11])
	is.EqualValues(0, s.input[12])
	is.EqualValues(0, s.input[13])
	is.EqualValues(0xdeadbeef, s.input[14])
	is.EqualValues(0xcafef00d, s.input[15])
}

func BenchmarkNext64(b *testing.B) {
	key, nonce := sanityKeyNonce()
	s := New(key, nonce)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Next64()
	}
}
