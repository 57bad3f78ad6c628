package kernel

import (
	"github.com/antzucaro/matchr"

	"github.com/fulmenhq/strmetrics/simerrors"
	"github.com/fulmenhq/strmetrics/unitext"
)

// HammingDistance counts mismatched code points between two equal-length
// texts, delegating the count itself to matchr.Hamming — which already
// returns an error on unequal rune length, exactly spec.md §4.3's
// precondition. Case-insensitive mode folds both texts first so matchr
// compares the folded code points rather than the raw ones.
func HammingDistance(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity) (int, error) {
	if mode == unitext.Insensitive {
		s1 = s1.Fold()
		s2 = s2.Fold()
	}

	d, err := matchr.Hamming(s1.String(), s2.String())
	if err != nil {
		return 0, simerrors.New(simerrors.InvalidInput, "Hamming distance requires equal-length strings")
	}
	return d, nil
}

// HammingSimilarity normalizes Hamming distance by the shared length;
// both-empty is the identity case. A one-empty pair is not short-circuited
// here: it is still a length mismatch, so it falls through to
// HammingDistance and reports InvalidInput like any other unequal-length
// pair.
func HammingSimilarity(s1, s2 unitext.UnicodeText, mode unitext.CaseSensitivity) (float64, error) {
	if s1.Len() == 0 && s2.Len() == 0 {
		return 1.0, nil
	}
	d, err := HammingDistance(s1, s2, mode)
	if err != nil {
		return 0, err
	}
	return 1.0 - float64(d)/float64(s1.Len()), nil
}
