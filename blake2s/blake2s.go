// Copyright (c) 2026 The SmokeRand Authors

// Package blake2s implements BLAKE2s (RFC 7693) with its full variable
// digest-length (1..32 byte) and optional keyed-MAC contract. It is
// hand-rolled rather than built on golang.org/x/crypto/blake2s because
// that package exposes only the fixed 128-bit and 256-bit constructors;
// smokerand/entropy needs the general 1..32-byte output the seeder
// bootstrap relies on (see SPEC_FULL.md's dependency notes).
//
// This package is used only as the extractor inside smokerand's entropy
// seeder. It makes no claim to general-purpose cryptographic suitability
// beyond what RFC 7693 itself guarantees.
package blake2s

import "encoding/binary"

const (
	// BlockSize is the size in bytes of one BLAKE2s compression input.
	BlockSize = 64
	// MaxOutputSize is the largest digest BLAKE2s can produce.
	MaxOutputSize = 32
	// MaxKeySize is the largest key BLAKE2s accepts in keyed mode.
	MaxKeySize = 32
)

var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// State is an incremental BLAKE2s hashing context: a 64-byte input
// buffer, the 8-word chain value, a 2-word byte counter, a buffer
// index, and the configured output length — the exact fields spec.md's
// data model calls for (entity blake2s_state). Zero value is not valid;
// construct with New.
type State struct {
	h      [8]uint32
	t      [2]uint32
	buf    [BlockSize]byte
	buflen int
	outLen int
}

// New returns a State producing outLen bytes (1..32) of output, in
// keyed mode when key is non-empty (key must be <= MaxKeySize bytes).
func New(key []byte, outLen int) *State {
	if outLen < 1 || outLen > MaxOutputSize {
		panic("blake2s: outLen must be in 1..32")
	}
	if len(key) > MaxKeySize {
		panic("blake2s: key too long")
	}
	s := &State{outLen: outLen}
	s.h = iv
	s.h[0] ^= 0x01010000 ^ uint32(len(key))<<8 ^ uint32(outLen)

	if len(key) > 0 {
		var block [BlockSize]byte
		copy(block[:], key)
		s.buf = block
		s.buflen = BlockSize
	}
	return s
}

// Write absorbs p into the hash state, compressing full blocks as they
// accumulate. It never returns an error.
func (s *State) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if s.buflen == BlockSize {
			s.advance(BlockSize)
			s.compress(&s.buf, false)
			s.buflen = 0
		}
		c := copy(s.buf[s.buflen:], p)
		s.buflen += c
		p = p[c:]
	}
	return n, nil
}

// Sum finalizes a copy of the state and returns the outLen-byte digest,
// leaving the receiver usable for further Write calls (matching the
// conventional hash.Hash contract).
func (s *State) Sum() []byte {
	cp := *s
	return cp.finalize()
}

func (s *State) finalize() []byte {
	// Zero-pad the final (possibly partial) block.
	for i := s.buflen; i < BlockSize; i++ {
		s.buf[i] = 0
	}
	s.advance(s.buflen)
	s.compress(&s.buf, true)

	out := make([]byte, s.outLen)
	var word [4]byte
	for i := 0; i < s.outLen; i++ {
		if i%4 == 0 {
			binary.LittleEndian.PutUint32(word[:], s.h[i/4])
		}
		out[i] = word[i%4]
	}
	return out
}

// advance adds n to the 64-bit little-endian byte counter (t[0] low
// word, t[1] high word, carry propagated on overflow).
func (s *State) advance(n int) {
	s.t[0] += uint32(n)
	if s.t[0] < uint32(n) {
		s.t[1]++
	}
}

func (s *State) compress(block *[BlockSize]byte, last bool) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4 : i*4+4])
	}

	v := [16]uint32{
		s.h[0], s.h[1], s.h[2], s.h[3], s.h[4], s.h[5], s.h[6], s.h[7],
		iv[0], iv[1], iv[2], iv[3], iv[4], iv[5], iv[6], iv[7],
	}
	v[12] ^= s.t[0]
	v[13] ^= s.t[1]
	if last {
		v[14] ^= 0xFFFFFFFF
	}

	for round := 0; round < 10; round++ {
		sg := &sigma[round]
		g(&v, 0, 4, 8, 12, m[sg[0]], m[sg[1]])
		g(&v, 1, 5, 9, 13, m[sg[2]], m[sg[3]])
		g(&v, 2, 6, 10, 14, m[sg[4]], m[sg[5]])
		g(&v, 3, 7, 11, 15, m[sg[6]], m[sg[7]])
		g(&v, 0, 5, 10, 15, m[sg[8]], m[sg[9]])
		g(&v, 1, 6, 11, 12, m[sg[10]], m[sg[11]])
		g(&v, 2, 7, 8, 13, m[sg[12]], m[sg[13]])
		g(&v, 3, 4, 9, 14, m[sg[14]], m[sg[15]])
	}

	for i := 0; i < 8; i++ {
		s.h[i] ^= v[i] ^ v[i+8]
	}
}

func g(v *[16]uint32, a, b, c, d int, x, y uint32) {
	v[a] = v[a] + v[b] + x
	v[d] = rotr32(v[d]^v[a], 16)
	v[c] = v[c] + v[d]
	v[b] = rotr32(v[b]^v[c], 12)
	v[a] = v[a] + v[b] + y
	v[d] = rotr32(v[d]^v[a], 8)
	v[c] = v[c] + v[d]
	v[b] = rotr32(v[b]^v[c], 7)
}

func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// Sum computes the outLen-byte (1..32) BLAKE2s digest of data in one
// call, keyed by key when key is non-empty.
func Sum(data, key []byte, outLen int) []byte {
	s := New(key, outLen)
	_, _ = s.Write(data)
	return s.Sum()
}
