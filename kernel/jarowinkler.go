package kernel

import "github.com/fulmenhq/strmetrics/unitext"

const (
	defaultJaroWinklerThreshold = 0.7
	defaultPrefixWeight         = 0.1
	defaultPrefixLength         = 4
)

// JaroWinklerSimilarity boosts Jaro similarity by a common-prefix bonus once
// the base Jaro score clears an activation threshold, per spec.md §4.4.
// Native rather than matchr-backed: matchr.JaroWinkler hardcodes its own
// prefix scale and max prefix length (see JaroSimilarity's doc comment in
// kernel/jaro.go), but Config.PrefixWeight/PrefixLength must be caller-
// configurable here.
func JaroWinklerSimilarity(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity, threshold *float64, prefixWeight float64, prefixLength int) float64 {
	jaro := JaroSimilarity(s1, s2, mode)

	activation := defaultJaroWinklerThreshold
	if threshold != nil {
		activation = *threshold
	}
	if jaro < activation {
		return jaro
	}

	if prefixWeight < 0 {
		prefixWeight = 0
	}
	if prefixWeight > 0.25 {
		prefixWeight = 0.25
	}

	maxPrefix := prefixLength
	if maxPrefix < 0 {
		maxPrefix = defaultPrefixLength
	}

	a := s1.Runes()
	b := s2.Runes()
	prefixCap := maxPrefix
	if len(a) < prefixCap {
		prefixCap = len(a)
	}
	if len(b) < prefixCap {
		prefixCap = len(b)
	}

	prefixLen := 0
	for i := 0; i < prefixCap; i++ {
		if !unitext.RuneEqual(a[i], b[i], mode) {
			break
		}
		prefixLen++
	}

	boosted := jaro + float64(prefixLen)*prefixWeight*(1.0-jaro)
	return clamp01(boosted)
}

// JaroWinklerDistance is the complement of JaroWinklerSimilarity.
func JaroWinklerDistance(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity, threshold *float64, prefixWeight float64, prefixLength int) float64 {
	return 1.0 - JaroWinklerSimilarity(s1, s2, mode, threshold, prefixWeight, prefixLength)
}
