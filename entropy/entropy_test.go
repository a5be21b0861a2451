// Copyright (c) 2026 The SmokeRand Authors

package entropy

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromText_Deterministic(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	e1, err := NewFromText("a fixed seed")
	require.NoError(t, err)
	e2, err := NewFromText("a fixed seed")
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		is.Equal(e1.Seed64(0), e2.Seed64(0))
	}
}

func TestNewFromText_DifferentSeedsDiverge(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	e1, err := NewFromText("seed-one")
	require.NoError(t, err)
	e2, err := NewFromText("seed-two")
	require.NoError(t, err)

	is.NotEqual(e1.Seed64(0), e2.Seed64(0))
}

func TestNewFromBase64_RoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	seed := base64.StdEncoding.EncodeToString(raw)

	e1, err := NewFromBase64(seed)
	require.NoError(t, err)
	e2, err := NewFromBase64(seed)
	require.NoError(t, err)

	is.Equal(e1.Seed64(0), e2.Seed64(0))
}

func TestNewFromBase64_RejectsWrongLength(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	short := base64.StdEncoding.EncodeToString(make([]byte, 16))
	_, err := NewFromBase64(short)
	is.ErrorIs(err, ErrInvalidSeedLength)
}

func TestNewFromBase64_RejectsInvalidEncoding(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := NewFromBase64("not valid base64!!")
	is.Error(err)
}

func TestSeed64_RecordsAuditLog(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	e, err := NewFromText("audit test")
	require.NoError(t, err)

	v := e.Seed64(7)
	entries := e.AuditEntries()
	is.Len(entries, 1)
	is.Equal(7, entries[0].ThreadID)
	is.Equal(v, entries[0].Seed)
}

func TestAuditLog_StopsRecordingBeyondMax(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	e, err := NewFromText("bounded audit", WithMaxAuditLogEntries(4))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		e.Seed64(i)
	}
	is.Len(e.AuditEntries(), 4)
}

func TestReader_FillsBuffer(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	e, err := NewFromText("reader test")
	require.NoError(t, err)

	buf := make([]byte, 8)
	n, err := e.Reader().Read(buf)
	require.NoError(t, err)
	is.Equal(8, n)
}

func TestNew_BootstrapsSuccessfully(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	e, err := New()
	require.NoError(t, err)
	is.NotZero(e.Seed64(0))
}
