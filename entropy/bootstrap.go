// Copyright (c) 2026 The SmokeRand Authors

package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"os"
	"time"

	"github.com/smokerand/smokerand/blake2s"
)

// compositeBufferSize is the width of the fallback entropy buffer
// spec.md §4.2 specifies: "a 128-byte buffer".
const compositeBufferSize = 128

// bootstrapKey produces the 256-bit ChaCha20 key used when no explicit
// text or base64 seed is supplied. It tries the OS CSPRNG first; on
// failure it falls back to a composite buffer of weaker sources, then
// compresses whichever buffer it filled down to a key with Blake2s-256,
// exactly as spec.md's bootstrap order specifies.
func bootstrapKey() (key [32]byte, fellBack bool) {
	var osBuf [compositeBufferSize]byte
	if _, err := io.ReadFull(rand.Reader, osBuf[:]); err == nil {
		copy(key[:], blake2s.Sum(osBuf[:], nil, 32))
		return key, false
	}

	buf := compositeBuffer()
	copy(key[:], blake2s.Sum(buf[:], nil, 32))
	return key, true
}

// compositeBuffer assembles the 128-byte fallback buffer spec.md
// describes: zeroed OS-bytes slot (since the OS CSPRNG already failed),
// four hardware-RNG reads, wall-clock, a cycle-counter proxy, two
// machine-id words via Blake2s-128, a tick count, and the process id.
func compositeBuffer() [compositeBufferSize]byte {
	var buf [compositeBufferSize]byte
	off := 0

	// OS-bytes slot: left zeroed, matching spec.md's "OS bytes or zeros"
	// wording for the failure path.
	off += 32

	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(buf[off:off+8], hardwareRNGRead())
		off += 8
	}

	binary.LittleEndian.PutUint64(buf[off:off+8], uint64(time.Now().UnixNano()))
	off += 8

	binary.LittleEndian.PutUint64(buf[off:off+8], cycleCounterProxy())
	off += 8

	idWords := blake2s.Sum(machineID(), nil, 16)
	copy(buf[off:off+16], idWords)
	off += 16

	binary.LittleEndian.PutUint64(buf[off:off+8], uint64(time.Now().Unix()))
	off += 8

	binary.LittleEndian.PutUint32(buf[off:off+4], uint32(os.Getpid()))
	off += 4

	return buf
}

// hardwareRNGRead is a best-effort hardware RNG read. No portable Go
// API exposes RDRAND/RDSEED-class instructions, so this is a no-op stub
// returning zero — matching spec.md's "if available" qualifier for
// platforms that don't expose one.
func hardwareRNGRead() uint64 {
	return 0
}

// cycleCounterProxy stands in for a cycle counter (no portable RDTSC in
// Go) by returning the wall-clock time in nanoseconds, read separately
// from the buffer's wall-clock slot.
func cycleCounterProxy() uint64 {
	return uint64(time.Now().UnixNano())
}

// machineID returns a platform identifier used to derive the two
// machine-id words: the contents of /etc/machine-id when readable,
// falling back to the HOST_ID environment variable, and finally to the
// hostname.
func machineID() []byte {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil && len(b) > 0 {
		return b
	}
	if v := os.Getenv("HOST_ID"); v != "" {
		return []byte(v)
	}
	if h, err := os.Hostname(); err == nil {
		return []byte(h)
	}
	return []byte("smokerand-unknown-host")
}
