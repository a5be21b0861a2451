// Copyright (c) 2026 The SmokeRand Authors

// Package chacha20engine implements the ChaCha20 permutation with the
// 64-bit-nonce/64-bit-counter word layout spec.md's data model calls for
// (counter split across words 12-13, nonce fixed in words 14-15). This
// is hand-rolled rather than built on golang.org/x/crypto/chacha20
// because that package's Cipher only ever produces the IETF RFC 7539
// layout (32-bit counter in word 12, 96-bit nonce in words 13-15); see
// SPEC_FULL.md's dependency notes for the full justification.
//
// This package is the keystream core of smokerand/entropy; it is not a
// general-purpose stream cipher and makes no authentication claims.
package chacha20engine

import "encoding/binary"

const (
	// KeySize is the ChaCha20 key size in bytes.
	KeySize = 32
	// NonceSize is the 64-bit nonce size in bytes used by this layout.
	NonceSize = 8
	// BlockWords is the number of 32-bit words in one ChaCha20 block.
	BlockWords = 16
	// BlockBytes is the number of bytes one block's keystream yields.
	BlockBytes = BlockWords * 4
)

var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// State is a ChaCha20 keystream generator using the 64-bit nonce/counter
// layout: words 0-3 are the fixed constants, words 4-11 the 256-bit key,
// words 12-13 a 64-bit little-endian block counter, and words 14-15 the
// 64-bit nonce. It buffers one generated block at a time and hands out
// words or bytes from it on demand, regenerating as the buffer drains.
//
// Zero value is not valid; construct with New.
type State struct {
	input [BlockWords]uint32
	block [BlockWords]uint32
	pos   int // next unread word index into block, BlockWords means empty
}

// New returns a State seeded with key and nonce, counter starting at 0.
func New(key [KeySize]byte, nonce [NonceSize]byte) *State {
	s := &State{pos: BlockWords}
	s.input[0], s.input[1], s.input[2], s.input[3] = constants[0], constants[1], constants[2], constants[3]
	for i := 0; i < 8; i++ {
		s.input[4+i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}
	s.input[12] = 0
	s.input[13] = 0
	s.input[14] = binary.LittleEndian.Uint32(nonce[0:4])
	s.input[15] = binary.LittleEndian.Uint32(nonce[4:8])
	return s
}

// Next32 returns the next 32-bit keystream word, refilling the block
// and advancing the counter as needed.
func (s *State) Next32() uint32 {
	if s.pos == BlockWords {
		s.refill()
	}
	w := s.block[s.pos]
	s.pos++
	return w
}

// Next64 returns the next 64-bit keystream value as two little-endian
// keystream words (low word first).
func (s *State) Next64() uint64 {
	lo := uint64(s.Next32())
	hi := uint64(s.Next32())
	return lo | hi<<32
}

// refill runs the ChaCha20 block function over the current counter and
// nonce, resets the read position, and increments the 64-bit counter.
func (s *State) refill() {
	blockFunc(&s.input, &s.block)
	s.pos = 0

	s.input[12]++
	if s.input[12] == 0 {
		s.input[13]++
	}
}

// blockFunc runs the ChaCha20 permutation (20 rounds = 10 double-rounds)
// over in and writes the result, added back to in, into out.
func blockFunc(in *[BlockWords]uint32, out *[BlockWords]uint32) {
	v := *in
	for round := 0; round < 10; round++ {
		quarterRound(&v, 0, 4, 8, 12)
		quarterRound(&v, 1, 5, 9, 13)
		quarterRound(&v, 2, 6, 10, 14)
		quarterRound(&v, 3, 7, 11, 15)
		quarterRound(&v, 0, 5, 10, 15)
		quarterRound(&v, 1, 6, 11, 12)
		quarterRound(&v, 2, 7, 8, 13)
		quarterRound(&v, 3, 4, 9, 14)
	}
	for i := range v {
		out[i] = v[i] + in[i]
	}
}

func quarterRound(v *[BlockWords]uint32, a, b, c, d int) {
	v[a] += v[b]
	v[d] = rotl32(v[d]^v[a], 16)
	v[c] += v[d]
	v[b] = rotl32(v[b]^v[c], 12)
	v[a] += v[b]
	v[d] = rotl32(v[d]^v[a], 8)
	v[c] += v[d]
	v[b] = rotl32(v[b]^v[c], 7)
}

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}
