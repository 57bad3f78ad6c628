package simconfig

import "github.com/fulmenhq/strmetrics/simerrors"

// Validate checks a merged Config against spec.md §4.6 step 3's rules and
// returns an InvalidConfiguration error describing the first violation
// found, or nil if the configuration is acceptable for cfg.Algorithm.
func Validate(cfg Config) error {
	if !cfg.Algorithm.Valid() {
		return simerrors.Newf(simerrors.InvalidConfiguration, "unknown algorithm tag %d", int(cfg.Algorithm))
	}
	if cfg.NGramSize <= 0 {
		return simerrors.New(simerrors.InvalidConfiguration, "ngram_size must be greater than 0")
	}
	if cfg.Threshold != nil && *cfg.Threshold < 0 {
		return simerrors.New(simerrors.InvalidConfiguration, "threshold must be non-negative")
	}
	if cfg.PrefixWeight < 0 || cfg.PrefixWeight > 0.25 {
		return simerrors.New(simerrors.InvalidConfiguration, "prefix_weight must be in [0.0, 0.25]")
	}
	if cfg.PrefixLength < 0 || cfg.PrefixLength > 4 {
		return simerrors.New(simerrors.InvalidConfiguration, "prefix_length must be in [0, 4]")
	}
	if cfg.MaxStringLength <= 0 {
		return simerrors.New(simerrors.InvalidConfiguration, "max_string_length must be positive")
	}

	if cfg.Algorithm == Tversky {
		if cfg.Alpha == nil || cfg.Beta == nil {
			return simerrors.New(simerrors.InvalidConfiguration, "tversky requires alpha and beta")
		}
		if *cfg.Alpha < 0 || *cfg.Beta < 0 {
			return simerrors.New(simerrors.InvalidConfiguration, "tversky alpha and beta must be non-negative")
		}
	}

	return nil
}
