// Copyright (c) 2026 The SmokeRand Authors

// Package generator is smokerand's generator-plugin adapter. spec.md's
// original ABI is a dynamic library exporting one loader function; the
// host dynamic loader that resolves those plugins is explicitly out of
// scope (spec.md §1). This package replaces it with a static,
// compile-time Registry: builtin generators register themselves via
// their own package init(), and Open looks them up by name.
package generator

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownGenerator is returned by Open when name has no registered Info.
var ErrUnknownGenerator = errors.New("generator: unknown generator")

// Info describes a generator as its plugin loader would populate it:
// bit width, construction/destruction hooks, and the draw functions the
// battery runner and smoketests call on the hot path.
type Info struct {
	Name        string
	Description string

	// NBits is the width of one draw: 32 or 64.
	NBits int

	// Create constructs a new generator state. It may allocate, must be
	// reentrant across distinct states, and must draw any seed material
	// through api.Seed32/Seed64 rather than an independent source.
	Create func(info *Info, api *CallerAPI) (any, error)

	// Destroy releases any resources held by state. May be nil if state
	// needs no explicit teardown.
	Destroy func(state any)

	// GetBits returns one draw, zero-extended to 64 bits.
	GetBits func(state any) uint64

	// GetSum optionally returns the sum (mod 2^64) of n consecutive
	// draws; nil if the generator has no vectorized fast path.
	GetSum func(state any, n int) uint64

	// SelfTest optionally validates the generator's implementation
	// against known-answer output.
	SelfTest func(api *CallerAPI) bool

	// Parent links a derived/decorated generator back to its base, for
	// reporting purposes only.
	Parent *Info
}

// State is an opened generator instance: the Info it was created from,
// plus the opaque state Create returned.
type State struct {
	Info  *Info
	state any
}

// GetBits returns one draw from the generator. The width contract (the
// returned value's upper 64-NBits bits must be zero) is checked only in
// builds tagged debug, where a violation panics; release builds return
// the draw unchecked.
func (s *State) GetBits() uint64 {
	v := s.Info.GetBits(s.state)
	assertWidth(v, s.Info.NBits)
	return v
}

// GetSum returns the sum (mod 2^64) of n consecutive draws, falling
// back to a plain loop over GetBits when the generator has no
// vectorized GetSum.
func (s *State) GetSum(n int) uint64 {
	if s.Info.GetSum != nil {
		return s.Info.GetSum(s.state, n)
	}
	var sum uint64
	for i := 0; i < n; i++ {
		sum += s.GetBits()
	}
	return sum
}

// Close releases the generator's state via Info.Destroy, if any.
func (s *State) Close() {
	if s.Info.Destroy != nil {
		s.Info.Destroy(s.state)
	}
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Info{}
)

// Register adds info to the static registry under info.Name. Builtin
// generators call this from their own package init(); nothing else
// mutates the registry at runtime, so lookups after startup need no
// locking discipline beyond what RWMutex already gives for free.
func Register(info *Info) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[info.Name] = info
}

// Names returns the names of every registered generator.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Open looks up name in the registry and constructs a new State via its
// Create hook.
func Open(name string, api *CallerAPI) (*State, error) {
	registryMu.RLock()
	info, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}

	st, err := info.Create(info, api)
	if err != nil {
		return nil, fmt.Errorf("generator: create %q: %w", name, err)
	}
	return &State{Info: info, state: st}, nil
}
