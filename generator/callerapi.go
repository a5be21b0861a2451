// Copyright (c) 2026 The SmokeRand Authors

package generator

import (
	"fmt"
	"io"

	"github.com/shirou/gopsutil/v3/mem"
)

// RAMInfo reports physical RAM totals, or IsUnknown if the underlying
// query failed — spec.md's RAM_SIZE_UNKNOWN sentinel.
type RAMInfo struct {
	TotalBytes     uint64
	AvailableBytes uint64
	IsUnknown      bool
}

// CallerAPI is the host-capability surface handed to generator plugins
// and smoketests: seed draws, formatted output, string comparison, and
// a RAM-info query. spec.md's C ABI also exposes malloc/free allocator
// hooks; Go's garbage collector supplies that role directly; there is
// no Go equivalent worth exposing, so CallerAPI omits them (see
// SPEC_FULL.md's data-model notes and DESIGN.md).
type CallerAPI struct {
	// ThreadID identifies the worker goroutine this CallerAPI was built
	// for; passed through to Entropy's audit log on every seed draw.
	ThreadID int

	seed32 func(threadID int) uint32
	seed64 func(threadID int) uint64
	out    io.Writer
}

// NewCallerAPI builds a CallerAPI bound to threadID, drawing seed
// material from seed32/seed64 (normally entropy.Entropy's Seed32/Seed64
// methods) and writing Printf output to out.
func NewCallerAPI(threadID int, seed32 func(int) uint32, seed64 func(int) uint64, out io.Writer) *CallerAPI {
	return &CallerAPI{ThreadID: threadID, seed32: seed32, seed64: seed64, out: out}
}

// Seed32 draws a fresh 32-bit seed value from the entropy pool.
func (c *CallerAPI) Seed32() uint32 {
	return c.seed32(c.ThreadID)
}

// Seed64 draws a fresh 64-bit seed value from the entropy pool.
func (c *CallerAPI) Seed64() uint64 {
	return c.seed64(c.ThreadID)
}

// Printf writes formatted output to the host sink.
func (c *CallerAPI) Printf(format string, args ...any) {
	if c.out == nil {
		return
	}
	fmt.Fprintf(c.out, format, args...)
}

// Strcmp compares a and b lexically, returning -1, 0, or 1 — kept for
// ABI symmetry with spec.md's CallerAPI surface even though Go plugin
// code would normally just use the `<` operator on strings directly.
func (c *CallerAPI) Strcmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// GetRAMInfo returns the host's physical RAM totals via gopsutil/v3,
// with IsUnknown set on any query failure.
func (c *CallerAPI) GetRAMInfo() RAMInfo {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return RAMInfo{IsUnknown: true}
	}
	return RAMInfo{TotalBytes: vm.Total, AvailableBytes: vm.Available}
}
