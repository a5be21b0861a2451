// Copyright (c) 2026 The SmokeRand Authors

package entropy

// Config holds the tunable parameters of an Entropy seeder. The zero
// value is not meaningful on its own; use DefaultConfig and Options.
type Config struct {
	// MaxAuditLogEntries bounds the Entropy audit log's capacity. Once
	// reached, further Seed32/Seed64 draws continue but are silently not
	// recorded, per spec.md's audit-log policy.
	MaxAuditLogEntries int

	// Nonce is the fixed ChaCha20 nonce: the package default unless
	// WithNonce overrides it. spec.md calls this "a default nonce constant...
	// unless overridden".
	Nonce [8]byte
}

const defaultMaxAuditLogEntries = 4096

// DefaultConfig returns production defaults: a 4096-entry audit log cap
// and the package's default nonce constant.
func DefaultConfig() Config {
	return Config{
		MaxAuditLogEntries: defaultMaxAuditLogEntries,
		Nonce:              defaultNonce,
	}
}

// Option customizes a Config passed to New, NewFromText, or
// NewFromBase64.
type Option func(*Config)

// WithMaxAuditLogEntries overrides the audit log capacity ceiling.
func WithMaxAuditLogEntries(n int) Option {
	return func(cfg *Config) { cfg.MaxAuditLogEntries = n }
}

// WithNonce overrides the fixed ChaCha20 nonce.
func WithNonce(nonce [8]byte) Option {
	return func(cfg *Config) { cfg.Nonce = nonce }
}
