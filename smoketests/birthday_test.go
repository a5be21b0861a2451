// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBirthdaySpacing_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 9009)
	r := BirthdaySpacing(state, BirthdaySpacingOptions{DBits: 16, K: 2})
	requireSaneResult(t, r)
}

func TestBirthdaySpacing_Full64BitPointOn64BitGenerator(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 1111)
	// K*DBits == 64 but the test generator draws 64-bit words, so no
	// fallback triggers here; this exercises the non-fallback path with
	// the maximum packed width.
	r := BirthdaySpacing(state, BirthdaySpacingOptions{DBits: 32, K: 2})
	requireSaneResult(t, r)
}

func TestBirthdaySpacing_DegenerateWhenPointWidthExceeds64Bits(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	state := openLcg64(t, 1)
	r := BirthdaySpacing(state, BirthdaySpacingOptions{DBits: 32, K: 3})
	is.Equal("bspace_nd", r.Name)
	is.True(math.IsNaN(r.Statistic))
	is.True(math.IsNaN(r.P))
}

func TestDecimatedBirthday_NamesWinningProjection(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	state := openLcg64(t, 1212)
	r := DecimatedBirthday(state, DecimatedBirthdayOptions{Step: 2})
	requireSaneResult(t, r)
	is.True(strings.HasPrefix(r.Name, "decimated_birthday["))
}

func TestReverseNibble(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	is.Equal(uint64(0b1000), reverseNibble(0b0001))
	is.Equal(uint64(0b0000), reverseNibble(0b0000))
}
