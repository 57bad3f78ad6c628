package bridge

import (
	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

// tokenizeModeFromInt maps spec.md §6's preprocessing integer (0..3) onto
// tokenize.Mode. The host-boundary ordering (None, Character, Word, NGram)
// matches tokenize.Mode's own iota declaration order exactly, so this is a
// direct cast; an out-of-range value falls back to tokenize.None rather
// than erroring, consistent with spec.md §6 treating config as a loosely
// validated document whose stricter checks happen downstream in
// simconfig.Validate.
func tokenizeModeFromInt(v int) tokenize.Mode {
	switch tokenize.Mode(v) {
	case tokenize.Character, tokenize.Word, tokenize.NGram:
		return tokenize.Mode(v)
	default:
		return tokenize.None
	}
}

// caseSensitivityFromInt maps spec.md §6's caseSensitivity integer (0..1)
// onto unitext.CaseSensitivity, which declares Sensitive=0, Insensitive=1
// in the same order.
func caseSensitivityFromInt(v int) unitext.CaseSensitivity {
	if v == int(unitext.Insensitive) {
		return unitext.Insensitive
	}
	return unitext.Sensitive
}
