package kernel

import "github.com/fulmenhq/strmetrics/unitext"

// SubstringMatch represents a matched run of code points in haystack.
type SubstringMatch struct {
	Start int
	End   int
	Valid bool
}

// LongestCommonSubstring finds the longest contiguous run of code points
// shared between needle and haystack, ported from the teacher's
// substringMatch (distance_v2.go) with case-sensitivity made configurable
// instead of always exact. This is the supplemented fourteenth helper
// algorithm described in SPEC_FULL.md — outside the fixed 0..12 tag space
// of spec.md §6, so it is never assigned an algorithm tag.
func LongestCommonSubstring(needle, haystack unitext.UnicodeText, mode unitext.CaseSensitivity) (SubstringMatch, float64) {
	a := needle.Runes()
	b := haystack.Runes()
	lenA, lenB := len(a), len(b)

	if lenA == 0 || lenB == 0 {
		return SubstringMatch{Valid: false}, 0.0
	}

	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}

	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	lcsLength, lcsEnd := 0, 0

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			if unitext.RuneEqual(a[i-1], b[j-1], mode) {
				curr[j] = prev[j-1] + 1
				if curr[j] > lcsLength {
					lcsLength = curr[j]
					lcsEnd = j
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	if lcsLength == 0 {
		return SubstringMatch{Valid: false}, 0.0
	}

	return SubstringMatch{Start: lcsEnd - lcsLength, End: lcsEnd, Valid: true}, float64(lcsLength) / float64(maxLen)
}
