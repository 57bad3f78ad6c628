package kernel

import "github.com/fulmenhq/strmetrics/unitext"

// OSADistance computes Optimal String Alignment distance: the usual
// Levenshtein three operations plus a restricted adjacent transposition,
// ported from the teacher's three-row osa.go to operate on UnicodeText
// code points under a configurable case-sensitivity mode instead of raw
// bytes.
func OSADistance(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity) int {
	a := s1.Runes()
	b := s2.Runes()

	if len(b) < len(a) {
		a, b = b, a
	}
	lenA, lenB := len(a), len(b)

	if lenA == 0 {
		return lenB
	}

	eq := equalFunc(mode)

	prevPrev := make([]int, lenA+1)
	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	for j := 1; j <= lenB; j++ {
		curr[0] = j
		for i := 1; i <= lenA; i++ {
			cost := 1
			if eq(a[i-1], b[j-1]) {
				cost = 0
			}
			deletion := curr[i-1] + 1
			insertion := prev[i] + 1
			substitution := prev[i-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}

			if i > 1 && j > 1 && eq(a[i-1], b[j-2]) && eq(a[i-2], b[j-1]) {
				transpose := prevPrev[i-2] + 1
				if transpose < best {
					best = transpose
				}
			}
			curr[i] = best
		}
		prevPrev, prev, curr = prev, curr, prevPrev
	}

	return prev[lenA]
}

// OSASimilarity normalizes OSA distance by the longer input's length.
func OSASimilarity(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity) float64 {
	maxLen := s1.Len()
	if s2.Len() > maxLen {
		maxLen = s2.Len()
	}
	if maxLen == 0 {
		return 1.0
	}
	d := OSADistance(s1, s2, mode)
	return 1.0 - float64(d)/float64(maxLen)
}
