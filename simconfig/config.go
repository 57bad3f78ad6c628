// Package simconfig implements the typed Config record from spec.md §3, its
// per-algorithm validation, and the global → per-algorithm → per-call merge
// described in §4.6.
package simconfig

import (
	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

// Default values, per spec.md §3.
const (
	DefaultNGramSize       = 2
	DefaultThreshold       = 0.7
	DefaultPrefixWeight    = 0.1
	DefaultPrefixLength    = 4
	DefaultMaxStringLength = 100_000
)

// Config is the fully resolved, validated configuration for a single
// kernel invocation. Callers assemble it through Merge, never by hand, so
// optional fields that have a default are already resolved to it by the
// time a kernel sees one.
// Threshold is deliberately left as *float64 even after resolution: it plays
// two unrelated roles depending on the algorithm (Levenshtein's banded
// early-termination bound vs. Jaro-Winkler's activation floor), each with
// its own default, so only the kernel that reads it knows which default
// applies when it was never set. Alpha and Beta also stay pointers: they
// have no default, and Tversky validation rejects them when nil. Every other
// field is resolved to a concrete value by Merge.
type Config struct {
	Algorithm       Algorithm
	Preprocessing   tokenize.Mode
	CaseSensitivity unitext.CaseSensitivity
	NGramSize       int
	Threshold       *float64
	Alpha           *float64
	Beta            *float64
	PrefixWeight    float64
	PrefixLength    int
	MaxStringLength int
}

// Overlay is a partial configuration layer. Every field is a pointer so a
// layer can represent "this field was not set here" distinctly from "this
// field was set to its zero value" — the fix for spec.md §9 Open Question 1
// (the source's config merge silently treats Preprocessing=None and
// Algorithm=Levenshtein as "unset", which clobbers a caller who explicitly
// chose those values). A nil pointer here means "fall through to the next
// layer"; a non-nil pointer, even one pointing at a zero value, always
// wins.
type Overlay struct {
	Algorithm       *Algorithm
	Preprocessing   *tokenize.Mode
	CaseSensitivity *unitext.CaseSensitivity
	NGramSize       *int
	Threshold       *float64
	Alpha           *float64
	Beta            *float64
	PrefixWeight    *float64
	PrefixLength    *int
	MaxStringLength *int
}

// Merge composes layers in priority order (lowest priority first — typically
// global, per-algorithm, per-call) into a resolved Config. Within each field,
// the last layer with a non-nil pointer wins; a field left nil by every
// layer falls back to its spec.md §3 default.
func Merge(layers ...Overlay) Config {
	cfg := Config{
		Algorithm:       Levenshtein,
		Preprocessing:   tokenize.Character,
		CaseSensitivity: unitext.Sensitive,
		NGramSize:       DefaultNGramSize,
		PrefixWeight:    DefaultPrefixWeight,
		PrefixLength:    DefaultPrefixLength,
		MaxStringLength: DefaultMaxStringLength,
	}

	for _, layer := range layers {
		if layer.Algorithm != nil {
			cfg.Algorithm = *layer.Algorithm
		}
		if layer.Preprocessing != nil {
			cfg.Preprocessing = *layer.Preprocessing
		}
		if layer.CaseSensitivity != nil {
			cfg.CaseSensitivity = *layer.CaseSensitivity
		}
		if layer.NGramSize != nil {
			cfg.NGramSize = *layer.NGramSize
		}
		if layer.Threshold != nil {
			cfg.Threshold = layer.Threshold
		}
		if layer.Alpha != nil {
			cfg.Alpha = layer.Alpha
		}
		if layer.Beta != nil {
			cfg.Beta = layer.Beta
		}
		if layer.PrefixWeight != nil {
			cfg.PrefixWeight = *layer.PrefixWeight
		}
		if layer.PrefixLength != nil {
			cfg.PrefixLength = *layer.PrefixLength
		}
		if layer.MaxStringLength != nil {
			cfg.MaxStringLength = *layer.MaxStringLength
		}
	}

	return cfg
}

// WithAlgorithm returns a copy of the overlay with Algorithm forced to tag,
// used by the engine to apply spec.md §4.6 step 2's rule that the explicit
// `algorithm` call parameter always overrides the final merged field.
func (o Overlay) WithAlgorithm(tag Algorithm) Overlay {
	o.Algorithm = &tag
	return o
}
