// Copyright (c) 2026 The SmokeRand Authors

package smoketests

import "testing"

func TestMonobitFreq_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 12345)
	r := MonobitFreq(state, MonobitFreqOptions{NValues: 5000})
	requireSaneResult(t, r)
}

func TestByteWordsFreq_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 999)
	r := ByteWordsFreq(state, 20, 50)
	requireSaneResult(t, r)
}

func TestWord16Freq_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 42)
	r := Word16Freq(state, 4, 30)
	requireSaneResult(t, r)
}

func TestNBitWordsFreq_ProducesSaneResult(t *testing.T) {
	t.Parallel()
	state := openLcg64(t, 7)
	r := NBitWordsFreq(state, NBitWordsFreqOptions{BitsPerWord: 4, AverageFreq: 25, NBlocks: 40})
	requireSaneResult(t, r)
}
