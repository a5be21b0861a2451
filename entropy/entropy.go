// Copyright (c) 2026 The SmokeRand Authors

// Package entropy implements smokerand's seeder: a ChaCha20 keystream
// (chacha20engine) keyed via Blake2s (blake2s), bootstrapped from the OS
// CSPRNG, a user-supplied text or base64 seed, or — failing all of
// those — a composite buffer of weaker timing/machine-identity sources.
// It exposes bounded-audit-log 32/64-bit seed draws to the battery
// runner's worker threads.
package entropy

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/smokerand/smokerand/blake2s"
	"github.com/smokerand/smokerand/chacha20engine"
	"github.com/smokerand/smokerand/logging"
)

// bootstrapLogger reports non-fatal seeder events (currently, the OS
// CSPRNG-unavailable fallback) to stderr. It's a package-level var
// rather than a Config field since bootstrapKey runs once, before any
// caller has a chance to customize anything beyond Option.
var bootstrapLogger = logging.New(os.Stderr)

// ErrInvalidSeedLength is returned by NewFromBase64 when the decoded
// seed is not exactly 256 bits (32 bytes).
var ErrInvalidSeedLength = errors.New("entropy: base64 seed must decode to exactly 256 bits")

// ErrSelfTestFailed is returned by New/NewFromText/NewFromBase64 when
// the mandatory ChaCha20 or Blake2s startup self-test fails.
var ErrSelfTestFailed = errors.New("entropy: cryptographic self-test failed")

// defaultNonce is the fixed ChaCha20 nonce used unless a Config
// override supplies its own, per spec.md's "default nonce constant".
var defaultNonce = [8]byte{0x73, 0x6d, 0x6f, 0x6b, 0x65, 0x72, 0x61, 0x6e}

// Entropy is the process-wide seeder: the single owner of a ChaCha20
// keystream state and its audit log, guarded by a mutex since worker
// threads draw from it concurrently (spec.md §3's "Process-wide, init
// once" lifetime note).
type Entropy struct {
	mu     sync.Mutex
	stream *chacha20engine.State
	log    *auditLog
}

func runSelfTests() error {
	if !chacha20engine.SelfTest() {
		return fmt.Errorf("%w: chacha20engine", ErrSelfTestFailed)
	}
	if !blake2s.SelfTest() {
		return fmt.Errorf("%w: blake2s", ErrSelfTestFailed)
	}
	return nil
}

func newEntropy(key [32]byte, cfg Config) *Entropy {
	return &Entropy{
		stream: chacha20engine.New(key, cfg.Nonce),
		log:    newAuditLog(cfg.MaxAuditLogEntries),
	}
}

// New bootstraps an Entropy seeder from the OS CSPRNG, falling back to
// a composite buffer of weaker sources on failure, per spec.md §4.2's
// bootstrap order. Both ChaCha20 and Blake2s self-tests run before the
// seeder is handed back; either failing is returned as an error.
func New(opts ...Option) (*Entropy, error) {
	if err := runSelfTests(); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	key, fellBack := bootstrapKey()
	if fellBack {
		bootstrapLogger.Warn("entropy: OS CSPRNG unavailable, falling back to composite weak-source buffer")
	}
	return newEntropy(key, cfg), nil
}

// NewFromText derives the ChaCha20 key by Blake2s-256 hashing seed,
// giving fully reproducible draws for a fixed text seed.
func NewFromText(seed string, opts ...Option) (*Entropy, error) {
	if err := runSelfTests(); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var key [32]byte
	copy(key[:], blake2s.Sum([]byte(seed), nil, 32))
	return newEntropy(key, cfg), nil
}

// NewFromBase64 decodes seed as standard base64; it must yield exactly
// 256 bits or ErrInvalidSeedLength is returned. Per spec.md §4.2 the
// payload is a big-endian u32 layout: the 32 decoded bytes are grouped
// into eight 32-bit big-endian words, which are then re-packed into the
// little-endian key chacha20engine expects.
func NewFromBase64(seed string, opts ...Option) (*Entropy, error) {
	if err := runSelfTests(); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := base64.StdEncoding.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("entropy: invalid base64 seed: %w", err)
	}
	if len(raw) != 32 {
		return nil, ErrInvalidSeedLength
	}

	var key [32]byte
	for i := 0; i < 8; i++ {
		w := binary.BigEndian.Uint32(raw[i*4 : i*4+4])
		binary.LittleEndian.PutUint32(key[i*4:i*4+4], w)
	}
	return newEntropy(key, cfg), nil
}

// Seed32 draws the next 32-bit seed value for threadID, recording it in
// the audit log.
func (e *Entropy) Seed32(threadID int) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.stream.Next32()
	e.log.append(threadID, uint64(v))
	return v
}

// Seed64 draws the next 64-bit seed value for threadID, recording it in
// the audit log.
func (e *Entropy) Seed64(threadID int) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.stream.Next64()
	e.log.append(threadID, v)
	return v
}

// AuditEntries returns a copy of every recorded (threadID, seed) draw,
// up to the configured audit-log capacity.
func (e *Entropy) AuditEntries() []AuditEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Entries()
}

// Reader returns an io.Reader adapter over this Entropy's keystream,
// suitable for feeding external consumers such as uuid.SetRand. Reads
// do not go through Seed32/Seed64 and are not recorded in the audit
// log — this is a raw keystream tap, not a seed draw.
func (e *Entropy) Reader() io.Reader {
	return &reader{e: e}
}

type reader struct {
	e *Entropy
}

func (r *reader) Read(p []byte) (int, error) {
	r.e.mu.Lock()
	defer r.e.mu.Unlock()

	n := len(p)
	i := 0
	for i < n {
		v := r.e.stream.Next32()
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		i += copy(p[i:], b[:])
	}
	return n, nil
}
