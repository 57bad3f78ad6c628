package kernel

import (
	"github.com/fulmenhq/strmetrics/multiset"
	"github.com/fulmenhq/strmetrics/simerrors"
	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

// JaccardSimilarity implements spec.md §4.5/§9 Open Question 2's split
// behavior: Word preprocessing deduplicates tokens into sets before
// intersecting, while Character/NGram preprocessing keeps multiset
// (repeated-token) semantics, making this the Ruzicka coefficient rather
// than the classical Jaccard index in the latter case. Both branches share
// the same tokenMultiset helper; Word mode simply clamps every count to 1
// before computing, since a Multiset has no native "set" type of its own.
func JaccardSimilarity(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity) float64 {
	a := tokenMultiset(s1, mode, ngramSize, caseMode)
	b := tokenMultiset(s2, mode, ngramSize, caseMode)

	if mode == tokenize.Word {
		a = asSet(a)
		b = asSet(b)
	}

	if a.Len() == 0 && b.Len() == 0 {
		return 1.0
	}
	if a.Len() == 0 || b.Len() == 0 {
		return 0.0
	}

	inter := a.Intersect(b).TotalCount()
	union := a.Union(b).TotalCount()
	if union == 0 {
		return 1.0
	}
	return float64(inter) / float64(union)
}

// SorensenDiceSimilarity returns 2|A∩B| / (|A|+|B|) over token multisets.
func SorensenDiceSimilarity(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity) float64 {
	a := tokenMultiset(s1, mode, ngramSize, caseMode)
	b := tokenMultiset(s2, mode, ngramSize, caseMode)

	if a.Len() == 0 && b.Len() == 0 {
		return 1.0
	}
	if a.Len() == 0 || b.Len() == 0 {
		return 0.0
	}

	inter := a.Intersect(b).TotalCount()
	denom := a.TotalCount() + b.TotalCount()
	if denom == 0 {
		return 0.0
	}
	return 2.0 * float64(inter) / float64(denom)
}

// OverlapSimilarity returns |A∩B| / min(|A|, |B|).
func OverlapSimilarity(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity) float64 {
	a := tokenMultiset(s1, mode, ngramSize, caseMode)
	b := tokenMultiset(s2, mode, ngramSize, caseMode)

	if a.Len() == 0 && b.Len() == 0 {
		return 1.0
	}
	if a.Len() == 0 || b.Len() == 0 {
		return 0.0
	}

	inter := a.Intersect(b).TotalCount()
	minTotal := a.TotalCount()
	if b.TotalCount() < minTotal {
		minTotal = b.TotalCount()
	}
	if minTotal == 0 {
		return 0.0
	}
	return float64(inter) / float64(minTotal)
}

// TverskySimilarity generalizes Dice/Jaccard/Overlap with asymmetric
// weights on the two set differences: c / (c + α·da + β·db). A nil alpha
// or beta returns an InvalidConfiguration error; their non-negativity is
// checked by simconfig.Validate, not here.
func TverskySimilarity(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity, alpha, beta *float64) (float64, error) {
	if alpha == nil || beta == nil {
		return 0, simerrors.New(simerrors.InvalidConfiguration, "tversky requires alpha and beta")
	}

	a := tokenMultiset(s1, mode, ngramSize, caseMode)
	b := tokenMultiset(s2, mode, ngramSize, caseMode)

	if a.Len() == 0 && b.Len() == 0 {
		return 1.0, nil
	}
	if a.Len() == 0 || b.Len() == 0 {
		return 0.0, nil
	}

	c := float64(a.Intersect(b).TotalCount())
	da := float64(a.TotalCount()) - c
	db := float64(b.TotalCount()) - c

	denom := c + *alpha*da + *beta*db
	if denom == 0 {
		return 0.0, nil
	}
	return c / denom, nil
}

// asSet clamps every count in m to 1, turning multiset (repeated-token)
// semantics into classical set semantics for Jaccard's Word-mode branch.
func asSet(m *multiset.Multiset[string]) *multiset.Multiset[string] {
	set := multiset.New[string]()
	for _, k := range m.Keys() {
		set.Increment(k)
	}
	return set
}
