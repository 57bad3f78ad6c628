// Package kernel implements the thirteen similarity and distance kernels
// from spec.md §4.3-§4.5: classical edit distance, the alignment metrics,
// and the set/vector family over token multisets. Every kernel is a pure
// function of (UnicodeText, UnicodeText, Config) — no shared state, no
// locking — mirroring the teacher's similarity.go/osa.go style of small,
// allocation-light DP routines over rune slices rather than polymorphic
// objects.
package kernel

import "github.com/fulmenhq/strmetrics/unitext"

// equalFunc closes over a case-sensitivity mode so the DP loops below never
// branch on it per-cell.
func equalFunc(mode unitext.CaseSensitivity) func(a, b rune) bool {
	return func(a, b rune) bool {
		return unitext.RuneEqual(a, b, mode)
	}
}

// LevenshteinDistance computes the classical edit distance between s1 and s2
// using the Wagner-Fischer recurrence over a single DP row of size
// min(|s1|,|s2|)+1, ported from the teacher's two-row Distance() and
// collapsed to one row since each cell only ever needs its own predecessor
// and the cell above.
//
// When threshold is non-nil, a banded variant only evaluates cells within
// distance k of the diagonal (spec.md §4.3): if the length difference
// already exceeds k, or if no cell within a processed row ever drops to
// ≤ k, the call reports the saturating value k+1 instead of continuing the
// full computation.
func LevenshteinDistance(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity, threshold *int) int {
	a := s1.Runes()
	b := s2.Runes()

	if len(b) < len(a) {
		a, b = b, a
	}
	lenA, lenB := len(a), len(b)

	if lenA == 0 {
		if threshold != nil && lenB > *threshold {
			return *threshold + 1
		}
		return lenB
	}

	eq := equalFunc(mode)

	if threshold != nil {
		return bandedLevenshtein(a, b, eq, *threshold)
	}

	row := make([]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		row[i] = i
	}

	for j := 1; j <= lenB; j++ {
		prevDiag := row[0]
		row[0] = j
		for i := 1; i <= lenA; i++ {
			cost := 1
			if eq(a[i-1], b[j-1]) {
				cost = 0
			}
			up := row[i]
			deletion := row[i-1] + 1
			insertion := up + 1
			substitution := prevDiag + cost

			next := deletion
			if insertion < next {
				next = insertion
			}
			if substitution < next {
				next = substitution
			}
			prevDiag = up
			row[i] = next
		}
	}

	return row[lenA]
}

// bandedLevenshtein evaluates only cells within k of the diagonal, keeping a
// full previous row so the band's shifting left edge never needs a rolling
// diagonal variable. Cells outside the band hold the sentinel k+1, which
// participates in min() like any other value and simply never wins once a
// true in-band path of cost ≤ k exists.
func bandedLevenshtein(a, b []rune, eq func(rune, rune) bool, k int) int {
	lenA, lenB := len(a), len(b)
	if abs(lenA-lenB) > k {
		return k + 1
	}

	sentinel := k + 1
	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		if i <= k {
			prev[i] = i
		} else {
			prev[i] = sentinel
		}
	}

	for j := 1; j <= lenB; j++ {
		lo := j - k
		if lo < 0 {
			lo = 0
		}
		hi := j + k
		if hi > lenA {
			hi = lenA
		}

		rowMin := sentinel
		for i := 0; i <= lenA; i++ {
			switch {
			case i < lo || i > hi:
				curr[i] = sentinel
			case i == 0:
				curr[i] = j
				if curr[i] > sentinel {
					curr[i] = sentinel
				}
			default:
				cost := 1
				if eq(a[i-1], b[j-1]) {
					cost = 0
				}
				deletion := curr[i-1] + 1
				insertion := prev[i] + 1
				substitution := prev[i-1] + cost

				next := deletion
				if insertion < next {
					next = insertion
				}
				if substitution < next {
					next = substitution
				}
				if next > sentinel {
					next = sentinel
				}
				curr[i] = next
			}
			if i >= lo && i <= hi && curr[i] < rowMin {
				rowMin = curr[i]
			}
		}

		if rowMin > k {
			return sentinel
		}
		prev, curr = curr, prev
	}

	result := prev[lenA]
	if result > k {
		return sentinel
	}
	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// LevenshteinSimilarity normalizes distance by the longer input's length,
// per spec.md §4.3; both-empty is the identity case.
func LevenshteinSimilarity(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity) float64 {
	maxLen := s1.Len()
	if s2.Len() > maxLen {
		maxLen = s2.Len()
	}
	if maxLen == 0 {
		return 1.0
	}
	d := LevenshteinDistance(s1, s2, mode, nil)
	return 1.0 - float64(d)/float64(maxLen)
}
