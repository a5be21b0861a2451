// Copyright (c) 2026 The SmokeRand Authors

package custombattery

import (
	"strings"
	"testing"

	"github.com/smokerand/smokerand/smoketests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SetsBatteryNameFromReservedRecord(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	src := `
# a comment line
battery name=nightly end

monobit_freq n=10_000 end
`
	b, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	is.Equal("nightly", b.Name)
	require.Len(t, b.Tests, 1)
	is.Equal("monobit_freq", b.Tests[0].Name)
	is.Equal(smoketests.MonobitFreqOptions{NValues: 10000}, b.Tests[0].Options)
}

func TestParse_UnderscoreSeparatedIntegersAreStripped(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	b, err := Parse(strings.NewReader("gap shl=4 ngaps=1_000_000 end"))
	require.NoError(t, err)
	require.Len(t, b.Tests, 1)
	is.Equal(smoketests.GapOptions{Shl: 4, NGaps: 1000000}, b.Tests[0].Options)
}

func TestParse_UnknownTestNameIsAnError(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := Parse(strings.NewReader("not_a_real_test foo=1 end"))
	require.Error(t, err)
	var pe *ParseError
	is.ErrorAs(err, &pe)
	is.Equal(1, pe.Line)
}

func TestParse_MissingEndIsAnError(t *testing.T) {
	t.Parallel()
	_, err := Parse(strings.NewReader("monobit_freq n=10"))
	require.Error(t, err)
}

func TestParse_HammingOTModeEnumeration(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	b, err := Parse(strings.NewReader("hamming_ot mode=bytes_low1 ntuples=5000 end"))
	require.NoError(t, err)
	require.Len(t, b.Tests, 1)
	is.Equal(smoketests.HammingOTOptions{Mode: smoketests.HammingOTBytesLow1, NTuples: 5000}, b.Tests[0].Options)
}

func TestParse_HammingOTRejectsUnknownMode(t *testing.T) {
	t.Parallel()
	_, err := Parse(strings.NewReader("hamming_ot mode=bogus ntuples=5000 end"))
	require.Error(t, err)
}

func TestParse_IsingAlgorithmEnumeration(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	b, err := Parse(strings.NewReader("ising algorithm=wolff warmup_sweeps=10 nsamples=20 end"))
	require.NoError(t, err)
	require.Len(t, b.Tests, 1)
	is.Equal(smoketests.IsingOptions{Algorithm: smoketests.IsingWolff, WarmupSweeps: 10, NSamples: 20}, b.Tests[0].Options)
}

func TestParse_LinearComplexityBitposKeywords(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	b, err := Parse(strings.NewReader("linear_complexity n=1000 bitpos=high end"))
	require.NoError(t, err)
	require.Len(t, b.Tests, 1)
	is.Equal(smoketests.LinearComplexityOptions{NBits: 1000, Pos: smoketests.BitPosHigh, Numeric: -1}, b.Tests[0].Options)
}

func TestParse_LinearComplexityNumericBitpos(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	b, err := Parse(strings.NewReader("linear_complexity n=1000 bitpos=17 end"))
	require.NoError(t, err)
	require.Len(t, b.Tests, 1)
	is.Equal(17, b.Tests[0].Options.(smoketests.LinearComplexityOptions).Numeric)
}

func TestParse_HammingOTLongWordSizeEnumeration(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	b, err := Parse(strings.NewReader("hamming_ot_long word_size=w256 ntuples=1000 end"))
	require.NoError(t, err)
	require.Len(t, b.Tests, 1)
	is.Equal(smoketests.HammingOTLongOptions{BitsPerWord: 256, NTuples: 1000}, b.Tests[0].Options)
}

func TestParse_MultipleRecordsPreserveDeclarationOrder(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	src := `
mod3 ntuples=100 end
sphere dims=3 ndraws=100 end
collision_over k=2 dbits=8 n=100 end
`
	b, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, b.Tests, 3)
	is.Equal([]string{"mod3", "sphere", "collision_over"}, []string{b.Tests[0].Name, b.Tests[1].Name, b.Tests[2].Name})
}
