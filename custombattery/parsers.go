// Copyright (c) 2026 The SmokeRand Authors

package custombattery

import (
	"fmt"

	"github.com/smokerand/smokerand/battery"
	"github.com/smokerand/smokerand/generator"
	"github.com/smokerand/smokerand/smoketests"
)

// testParser builds a battery.Test from a record's key=value fields.
type testParser func(fields map[string]string) (battery.Test, error)

// testParsers is the closed enumeration of test names a custom battery
// file may reference, mirroring smoketests' 14 families.
var testParsers = map[string]testParser{
	"monobit_freq":        parseMonobitFreq,
	"byte_words_freq":     parseByteWordsFreq,
	"word16_freq":         parseWord16Freq,
	"nbit_words_freq":     parseNBitWordsFreq,
	"birthday_spacing":    parseBirthdaySpacing,
	"decimated_birthday":  parseDecimatedBirthday,
	"collision_over":      parseCollisionOver,
	"gap":                 parseGap,
	"gap16_count0":        parseGap16Count0,
	"linear_complexity":   parseLinearComplexity,
	"matrix_rank":         parseMatrixRank,
	"hamming_ot":          parseHammingOT,
	"hamming_ot_long":     parseHammingOTLong,
	"hamming_distr":       parseHammingDistr,
	"mod3":                parseMod3,
	"sum_collector":       parseSumCollector,
	"ising":               parseIsing,
	"sphere":              parseSphere,
	"birthday_paradox":    parseBirthdayParadox,
	"block_freq":          parseBlockFreq,
}

func parseMonobitFreq(fields map[string]string) (battery.Test, error) {
	n, err := requireInt(fields, "n")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.MonobitFreqOptions{NValues: n}
	return battery.Test{
		Name:     "monobit_freq",
		Run:      smoketests.Bind(smoketests.MonobitFreq, opts),
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func parseByteWordsFreq(fields map[string]string) (battery.Test, error) {
	avg, err := requireInt(fields, "average_freq")
	if err != nil {
		return battery.Test{}, err
	}
	blocks, err := requireInt(fields, "nblocks")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.NBitWordsFreqOptions{BitsPerWord: 8, AverageFreq: avg, NBlocks: blocks}
	run := smoketests.Bind(smoketests.NBitWordsFreq, opts)
	return battery.Test{
		Name: "byte_words_freq",
		Run: func(state *generator.State, o any) battery.TestResults {
			r := run(state, o)
			r.Name = "byte_words_freq"
			return r
		},
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func parseWord16Freq(fields map[string]string) (battery.Test, error) {
	avg, err := requireInt(fields, "average_freq")
	if err != nil {
		return battery.Test{}, err
	}
	blocks, err := requireInt(fields, "nblocks")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.NBitWordsFreqOptions{BitsPerWord: 16, AverageFreq: avg, NBlocks: blocks}
	return battery.Test{
		Name:     "word16_freq",
		Run:      smoketests.Bind(smoketests.NBitWordsFreq, opts),
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func parseNBitWordsFreq(fields map[string]string) (battery.Test, error) {
	w, err := requireInt(fields, "bits_per_word")
	if err != nil {
		return battery.Test{}, err
	}
	avg, err := requireInt(fields, "average_freq")
	if err != nil {
		return battery.Test{}, err
	}
	blocks, err := requireInt(fields, "nblocks")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.NBitWordsFreqOptions{BitsPerWord: w, AverageFreq: avg, NBlocks: blocks}
	return battery.Test{
		Name:     "nbit_words_freq",
		Run:      smoketests.Bind(smoketests.NBitWordsFreq, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseBirthdaySpacing(fields map[string]string) (battery.Test, error) {
	d, err := requireInt(fields, "dbits")
	if err != nil {
		return battery.Test{}, err
	}
	k, err := requireInt(fields, "k")
	if err != nil {
		return battery.Test{}, err
	}
	if k*d > 64 {
		return battery.Test{}, &ParseError{Msg: fmt.Sprintf("k*dbits = %d exceeds 64", k*d)}
	}
	opts := smoketests.BirthdaySpacingOptions{DBits: d, K: k}
	return battery.Test{
		Name:     "birthday_spacing",
		Run:      smoketests.Bind(smoketests.BirthdaySpacing, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseDecimatedBirthday(fields map[string]string) (battery.Test, error) {
	step, err := requireInt(fields, "step")
	if err != nil {
		return battery.Test{}, err
	}
	if step < 1 {
		return battery.Test{}, &ParseError{Msg: "step must be >= 1"}
	}
	opts := smoketests.DecimatedBirthdayOptions{Step: step}
	return battery.Test{
		Name:     "decimated_birthday",
		Run:      smoketests.Bind(smoketests.DecimatedBirthday, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseCollisionOver(fields map[string]string) (battery.Test, error) {
	k, err := requireInt(fields, "k")
	if err != nil {
		return battery.Test{}, err
	}
	d, err := requireInt(fields, "dbits")
	if err != nil {
		return battery.Test{}, err
	}
	n, err := requireInt(fields, "n")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.CollisionOverOptions{K: k, DBits: d, N: n}
	return battery.Test{
		Name:     "collision_over",
		Run:      smoketests.Bind(smoketests.CollisionOver, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseGap(fields map[string]string) (battery.Test, error) {
	shl, err := requireInt(fields, "shl")
	if err != nil {
		return battery.Test{}, err
	}
	ngaps, err := requireInt(fields, "ngaps")
	if err != nil {
		return battery.Test{}, err
	}
	maxDraws, _, err := parseInt(fields, "max_draws")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.GapOptions{Shl: shl, NGaps: ngaps, MaxDraws: maxDraws}
	return battery.Test{
		Name:     "gap",
		Run:      smoketests.Bind(smoketests.Gap, opts),
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func parseGap16Count0(fields map[string]string) (battery.Test, error) {
	ngaps, err := requireInt(fields, "ngaps")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.Gap16Count0Options{NGaps: ngaps}
	return battery.Test{
		Name:     "gap16_count0",
		Run:      smoketests.Bind(smoketests.Gap16Count0, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseLinearComplexity(fields map[string]string) (battery.Test, error) {
	n, err := requireInt(fields, "n")
	if err != nil {
		return battery.Test{}, err
	}
	pos := smoketests.BitPosMid
	numeric := -1
	if raw, ok := fields["bitpos"]; ok {
		switch raw {
		case "low":
			pos = smoketests.BitPosLow
		case "mid":
			pos = smoketests.BitPosMid
		case "high":
			pos = smoketests.BitPosHigh
		default:
			if v, _, perr := parseInt(fields, "bitpos"); perr == nil {
				numeric = v
			} else {
				return battery.Test{}, &ParseError{Msg: fmt.Sprintf("bitpos: unrecognized value %q", raw)}
			}
		}
	}
	if numeric != -1 && (numeric < 0 || numeric > 64) {
		return battery.Test{}, &ParseError{Msg: fmt.Sprintf("bitpos: numeric value %d out of range 0..64", numeric)}
	}
	opts := smoketests.LinearComplexityOptions{NBits: n, Pos: pos, Numeric: numeric}
	return battery.Test{
		Name:     "linear_complexity",
		Run:      smoketests.Bind(smoketests.LinearComplexity, opts),
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func parseMatrixRank(fields map[string]string) (battery.Test, error) {
	n, err := requireInt(fields, "n")
	if err != nil {
		return battery.Test{}, err
	}
	maxBits, _, err := parseInt(fields, "max_nbits")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.MatrixRankOptions{N: n, MaxNBits: maxBits}
	return battery.Test{
		Name:     "matrix_rank",
		Run:      smoketests.Bind(smoketests.MatrixRank, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func hammingOTModeFromString(raw string) (smoketests.HammingOTMode, error) {
	switch raw {
	case "values":
		return smoketests.HammingOTValues, nil
	case "bytes":
		return smoketests.HammingOTBytes, nil
	case "bytes_low1":
		return smoketests.HammingOTBytesLow1, nil
	case "bytes_low8":
		return smoketests.HammingOTBytesLow8, nil
	default:
		return 0, &ParseError{Msg: fmt.Sprintf("mode: unrecognized value %q", raw)}
	}
}

func parseHammingOT(fields map[string]string) (battery.Test, error) {
	modeRaw, ok := fields["mode"]
	if !ok {
		return battery.Test{}, &ParseError{Msg: "missing required key \"mode\""}
	}
	mode, err := hammingOTModeFromString(modeRaw)
	if err != nil {
		return battery.Test{}, err
	}
	n, err := requireInt(fields, "ntuples")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.HammingOTOptions{Mode: mode, NTuples: n}
	return battery.Test{
		Name:     "hamming_ot",
		Run:      smoketests.Bind(smoketests.HammingOT, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func wordSizeFromString(raw string) (int, error) {
	switch raw {
	case "w128":
		return 128, nil
	case "w256":
		return 256, nil
	case "w512":
		return 512, nil
	case "w1024":
		return 1024, nil
	default:
		return 0, &ParseError{Msg: fmt.Sprintf("word_size: unrecognized value %q", raw)}
	}
}

func parseHammingOTLong(fields map[string]string) (battery.Test, error) {
	wordSizeRaw, ok := fields["word_size"]
	if !ok {
		return battery.Test{}, &ParseError{Msg: "missing required key \"word_size\""}
	}
	bitsPerWord, err := wordSizeFromString(wordSizeRaw)
	if err != nil {
		return battery.Test{}, err
	}
	n, err := requireInt(fields, "ntuples")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.HammingOTLongOptions{BitsPerWord: bitsPerWord, NTuples: n}
	return battery.Test{
		Name:     "hamming_ot_long",
		Run:      smoketests.Bind(smoketests.HammingOTLong, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseHammingDistr(fields map[string]string) (battery.Test, error) {
	levels, err := requireInt(fields, "nlevels")
	if err != nil {
		return battery.Test{}, err
	}
	samples, err := requireInt(fields, "samples_per_level")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.HammingDistrOptions{NLevels: levels, SamplesPerLevel: samples}
	return battery.Test{
		Name:     "hamming_distr",
		Run:      smoketests.Bind(smoketests.HammingDistr, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseMod3(fields map[string]string) (battery.Test, error) {
	n, err := requireInt(fields, "ntuples")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.Mod3Options{NTuples: n}
	return battery.Test{
		Name:     "mod3",
		Run:      smoketests.Bind(smoketests.Mod3, opts),
		Options:  opts,
		RAMClass: battery.RAMMed,
	}, nil
}

func parseSumCollector(fields map[string]string) (battery.Test, error) {
	g, err := requireFloat(fields, "g")
	if err != nil {
		return battery.Test{}, err
	}
	runs, err := requireInt(fields, "nruns")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.SumCollectorOptions{G: g, NRuns: runs}
	return battery.Test{
		Name:     "sum_collector",
		Run:      smoketests.Bind(smoketests.SumCollector, opts),
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func isingAlgorithmFromString(raw string) (smoketests.IsingAlgorithm, error) {
	switch raw {
	case "wolff":
		return smoketests.IsingWolff, nil
	case "metropolis":
		return smoketests.IsingMetropolis, nil
	default:
		return 0, &ParseError{Msg: fmt.Sprintf("algorithm: unrecognized value %q", raw)}
	}
}

func parseIsing(fields map[string]string) (battery.Test, error) {
	algoRaw, ok := fields["algorithm"]
	if !ok {
		return battery.Test{}, &ParseError{Msg: "missing required key \"algorithm\""}
	}
	algo, err := isingAlgorithmFromString(algoRaw)
	if err != nil {
		return battery.Test{}, err
	}
	warmup, err := requireInt(fields, "warmup_sweeps")
	if err != nil {
		return battery.Test{}, err
	}
	samples, err := requireInt(fields, "nsamples")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.IsingOptions{Algorithm: algo, WarmupSweeps: warmup, NSamples: samples}
	return battery.Test{
		Name:     "ising",
		Run:      smoketests.Bind(smoketests.Ising, opts),
		Options:  opts,
		RAMClass: battery.RAMHi,
	}, nil
}

func parseSphere(fields map[string]string) (battery.Test, error) {
	dims, err := requireInt(fields, "dims")
	if err != nil {
		return battery.Test{}, err
	}
	if dims < 2 || dims > 20 {
		return battery.Test{}, &ParseError{Msg: fmt.Sprintf("dims: %d out of range 2..20", dims)}
	}
	draws, err := requireInt(fields, "ndraws")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.SphereOptions{Dims: dims, NDraws: draws}
	return battery.Test{
		Name:     "sphere",
		Run:      smoketests.Bind(smoketests.Sphere, opts),
		Options:  opts,
		RAMClass: battery.RAMLo,
	}, nil
}

func parseBirthdayParadox(fields map[string]string) (battery.Test, error) {
	log2n, err := requireInt(fields, "log2n")
	if err != nil {
		return battery.Test{}, err
	}
	maxDraws, err := requireInt(fields, "max_draws")
	if err != nil {
		return battery.Test{}, err
	}
	opts := smoketests.BirthdayParadoxOptions{Log2N: log2n, MaxDraws: maxDraws}
	return battery.Test{
		Name:     "birthday_paradox",
		Run:      smoketests.Bind(smoketests.BirthdayParadox, opts),
		Options:  opts,
		RAMClass: battery.RAMHi,
	}, nil
}

func parseBlockFreq(fields map[string]string) (battery.Test, error) {
	maxBlocks, err := requireInt(fields, "max_blocks")
	if err != nil {
		return battery.Test{}, err
	}
	alpha, ok, err := parseFloat(fields, "bonferroni_alpha")
	if err != nil {
		return battery.Test{}, err
	}
	if !ok {
		alpha = 0.01
	}
	opts := smoketests.BlockFreqOptions{MaxBlocks: maxBlocks, BonferroniAlpha: alpha}
	return battery.Test{
		Name:     "block_freq",
		Run:      smoketests.Bind(smoketests.BlockFreq, opts),
		Options:  opts,
		RAMClass: battery.RAMHi,
	}, nil
}
