package kernel

import (
	"github.com/fulmenhq/strmetrics/multiset"
	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

// tokenMultiset tokenizes text per mode/ngramSize and folds each token
// first when caseMode is Insensitive, then counts the (possibly folded)
// token strings into a Multiset. Shared by every set/vector kernel in this
// package so tokenization+folding+counting happens exactly once per input.
func tokenMultiset(text unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity) *multiset.Multiset[string] {
	tokens := tokenize.Tokens(text, mode, ngramSize)
	m := multiset.New[string]()
	for _, tok := range tokens {
		if caseMode == unitext.Insensitive {
			tok = tok.Fold()
		}
		m.Increment(tok.String())
	}
	return m
}
