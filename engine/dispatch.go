package engine

import (
	"math"

	"github.com/fulmenhq/strmetrics/kernel"
	"github.com/fulmenhq/strmetrics/simconfig"
	"github.com/fulmenhq/strmetrics/simerrors"
	"github.com/fulmenhq/strmetrics/unitext"
)

// earlyAnswerSimilarity implements spec.md §4.6 step 5's shortcuts that
// every algorithm honors before its kernel runs: both inputs empty is
// identity, exactly one empty is total dissimilarity, and inputs equal
// under the configured case mode is identity.
func earlyAnswerSimilarity(t1, t2 unitext.UnicodeText, mode unitext.CaseSensitivity) (float64, bool) {
	if t1.Empty() && t2.Empty() {
		return 1.0, true
	}
	if t1.Empty() || t2.Empty() {
		return 0.0, true
	}

	if mode == unitext.Insensitive {
		if t1.Fold().Equal(t2.Fold()) {
			return 1.0, true
		}
	} else if t1.Equal(t2) {
		return 1.0, true
	}
	return 0, false
}

// computeSimilarity dispatches cfg.Algorithm to its kernel and returns a
// similarity in [0, 1].
func computeSimilarity(t1, t2 unitext.UnicodeText, cfg simconfig.Config) (float64, error) {
	switch cfg.Algorithm {
	case simconfig.Levenshtein:
		return kernel.LevenshteinSimilarity(t1, t2, cfg.CaseSensitivity), nil
	case simconfig.DamerauLevenshtein:
		return kernel.OSASimilarity(t1, t2, cfg.CaseSensitivity), nil
	case simconfig.Hamming:
		return kernel.HammingSimilarity(t1, t2, cfg.CaseSensitivity)
	case simconfig.Jaro:
		return kernel.JaroSimilarity(t1, t2, cfg.CaseSensitivity), nil
	case simconfig.JaroWinkler:
		return kernel.JaroWinklerSimilarity(t1, t2, cfg.CaseSensitivity, cfg.Threshold, cfg.PrefixWeight, cfg.PrefixLength), nil
	case simconfig.Jaccard:
		return kernel.JaccardSimilarity(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity), nil
	case simconfig.SorensenDice:
		return kernel.SorensenDiceSimilarity(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity), nil
	case simconfig.Overlap:
		return kernel.OverlapSimilarity(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity), nil
	case simconfig.Tversky:
		return kernel.TverskySimilarity(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, cfg.Alpha, cfg.Beta)
	case simconfig.Cosine:
		return kernel.CosineSimilarity(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity), nil
	case simconfig.Euclidean:
		d := kernel.LpRawDistance(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, kernel.Euclidean)
		return kernel.LpSimilarity(d, kernel.Euclidean), nil
	case simconfig.Manhattan:
		d := kernel.LpRawDistance(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, kernel.Manhattan)
		return kernel.LpSimilarity(d, kernel.Manhattan), nil
	case simconfig.Chebyshev:
		d := kernel.LpRawDistance(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, kernel.Chebyshev)
		return kernel.LpSimilarity(d, kernel.Chebyshev), nil
	default:
		return 0, simerrors.Newf(simerrors.InvalidConfiguration, "unknown algorithm tag %d", int(cfg.Algorithm))
	}
}

// computeDistance dispatches cfg.Algorithm to its exact-integer distance
// kernel where one exists (Levenshtein, Damerau-Levenshtein, Hamming),
// quantizes Euclidean/Manhattan/Chebyshev's raw Lp distance directly, and
// otherwise derives distance from similarity via round((1-sim)*1000), per
// spec.md §3's single quantized-integer transport type. similarity is
// called lazily so cache hits on the similarity side are reused rather
// than recomputed.
func computeDistance(t1, t2 unitext.UnicodeText, cfg simconfig.Config, similarity func() (float64, error)) (int, error) {
	switch cfg.Algorithm {
	case simconfig.Levenshtein:
		var band *int
		if cfg.Threshold != nil {
			k := int(*cfg.Threshold)
			band = &k
		}
		return kernel.LevenshteinDistance(t1, t2, cfg.CaseSensitivity, band), nil
	case simconfig.DamerauLevenshtein:
		return kernel.OSADistance(t1, t2, cfg.CaseSensitivity), nil
	case simconfig.Hamming:
		return kernel.HammingDistance(t1, t2, cfg.CaseSensitivity)
	case simconfig.Euclidean:
		return quantize(kernel.LpRawDistance(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, kernel.Euclidean)), nil
	case simconfig.Manhattan:
		return quantize(kernel.LpRawDistance(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, kernel.Manhattan)), nil
	case simconfig.Chebyshev:
		return quantize(kernel.LpRawDistance(t1, t2, cfg.Preprocessing, cfg.NGramSize, cfg.CaseSensitivity, kernel.Chebyshev)), nil
	default:
		sim, err := similarity()
		if err != nil {
			return 0, err
		}
		return quantize(1 - sim), nil
	}
}

// quantize scales a [0, +inf) float into the fixed-point integer transport
// spec.md §3 uses for every non-naturally-integer distance, clamping
// negative rounding noise (e.g. a similarity of exactly 1.0) to zero.
func quantize(v float64) int {
	r := math.Round(v * 1000)
	if r < 0 {
		return 0
	}
	return int(r)
}
