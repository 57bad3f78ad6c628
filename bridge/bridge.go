// Package bridge defines the host-boundary value contract from spec.md §6:
// the request/response shapes a foreign-function binding (a Node native
// addon, a WASM host, a CGo caller) would marshal across a runtime boundary.
// It is pure Go — no cgo, no unsafe, nothing in this package assumes any
// particular host runtime — matching spec.md §1's framing of the bridge
// itself as an external collaborator: this module only specifies the value
// contract, never the marshaling code, per the teacher repo's own bridge/
// packages which stop at typed request/response structs and leave the
// actual FFI plumbing to the binding.
package bridge

import (
	"encoding/json"

	"github.com/fulmenhq/strmetrics/engine"
	"github.com/fulmenhq/strmetrics/simconfig"
	"github.com/fulmenhq/strmetrics/simerrors"
)

// TypeError signals a host-level argument-type violation — spec.md §6's
// "non-string s1/s2 is rejected as a host-level type error (distinct from
// the library's InvalidInput)". Synchronous calls return it as a plain Go
// error rather than wrapping it in SimilarityResult/DistanceResult;
// asynchronous calls turn it into a rejected completion (§7).
type TypeError struct {
	Argument string
	Reason   string
}

func (e *TypeError) Error() string {
	return "bridge: argument " + e.Argument + " " + e.Reason
}

// RawConfig mirrors spec.md §6's config mapping exactly: a loosely-typed
// host-side document with every key optional and unknown keys ignored.
// Algorithm is json.RawMessage rather than a concrete type because the
// host boundary accepts either an integer tag or a canonical/alias name
// there, same as the top-level algorithm argument; toOverlay below
// decodes it the same way resolveAlgorithm does for the call-level tag.
// json.Unmarshal already ignores object keys with no matching struct
// field, which is exactly spec.md §6's "unknown keys ignored" rule — no
// extra filtering is needed here.
type RawConfig struct {
	Algorithm       json.RawMessage `json:"algorithm,omitempty"`
	Preprocessing   *int            `json:"preprocessing,omitempty"`
	CaseSensitivity *int            `json:"caseSensitivity,omitempty"`
	NgramSize       *int            `json:"ngramSize,omitempty"`
	Threshold       *float64        `json:"threshold,omitempty"`
	Alpha           *float64        `json:"alpha,omitempty"`
	Beta            *float64        `json:"beta,omitempty"`
	PrefixWeight    *float64        `json:"prefixWeight,omitempty"`
	PrefixLength    *int            `json:"prefixLength,omitempty"`
	MaxStringLength *int            `json:"maxStringLength,omitempty"`
}

// ErrorInfo is the {message, code} shape spec.md §6 puts on an
// unsuccessful SimilarityResult/DistanceResult.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// SimilarityResult is spec.md §6's response value for CalculateSimilarity.
type SimilarityResult struct {
	Success bool       `json:"success"`
	Value   *float64   `json:"value,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// DistanceResult is spec.md §6's response value for the distance entry
// point. Value is a non-negative integer; for the vector family it is the
// real distance scaled by 1000 and rounded, per spec.md §3.
type DistanceResult struct {
	Success bool       `json:"success"`
	Value   *int       `json:"value,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// resolveAlgorithm decodes a host-boundary algorithm argument, which may be
// a JSON number (integer tag) or a JSON string (canonical/alias name,
// matched case-insensitively by simconfig.ParseAlgorithm). Per spec.md §6,
// an out-of-range tag or unrecognized name is not a host-level type error —
// it becomes an unsuccessful in-band result with InvalidConfiguration.
func resolveAlgorithm(raw json.RawMessage) (simconfig.Algorithm, error) {
	if len(raw) == 0 {
		return 0, simerrors.New(simerrors.InvalidConfiguration, "algorithm is required")
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		tag := simconfig.Algorithm(int(asNumber))
		if !tag.Valid() {
			return 0, simerrors.Newf(simerrors.InvalidConfiguration, "unknown algorithm tag %d", int(tag))
		}
		return tag, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		tag, ok := simconfig.ParseAlgorithm(asString)
		if !ok {
			return 0, simerrors.Newf(simerrors.InvalidConfiguration, "unknown algorithm name %q", asString)
		}
		return tag, nil
	}

	return 0, simerrors.New(simerrors.InvalidConfiguration, "algorithm must be an integer tag or a string name")
}

// toOverlay converts a RawConfig into a simconfig.Overlay, resolving the
// embedded algorithm field (if any) the same way the top-level argument is
// resolved. A nil RawConfig yields the empty overlay.
func toOverlay(cfg *RawConfig) (simconfig.Overlay, error) {
	var overlay simconfig.Overlay
	if cfg == nil {
		return overlay, nil
	}

	if len(cfg.Algorithm) > 0 {
		tag, err := resolveAlgorithm(cfg.Algorithm)
		if err != nil {
			return overlay, err
		}
		overlay.Algorithm = &tag
	}
	if cfg.Preprocessing != nil {
		mode := tokenizeModeFromInt(*cfg.Preprocessing)
		overlay.Preprocessing = &mode
	}
	if cfg.CaseSensitivity != nil {
		mode := caseSensitivityFromInt(*cfg.CaseSensitivity)
		overlay.CaseSensitivity = &mode
	}
	overlay.NGramSize = cfg.NgramSize
	overlay.Threshold = cfg.Threshold
	overlay.Alpha = cfg.Alpha
	overlay.Beta = cfg.Beta
	overlay.PrefixWeight = cfg.PrefixWeight
	overlay.PrefixLength = cfg.PrefixLength
	overlay.MaxStringLength = cfg.MaxStringLength

	return overlay, nil
}

// errorInfoFrom converts any error returned by the engine into the
// {message, code} shape spec.md §6 specifies, tagging errors that never
// passed through simerrors as Unknown per spec.md §7's conversion policy.
func errorInfoFrom(err error) *ErrorInfo {
	if err == nil {
		return nil
	}
	if se, ok := err.(*simerrors.Error); ok {
		return &ErrorInfo{Message: se.Message, Code: string(se.Kind)}
	}
	return &ErrorInfo{Message: err.Error(), Code: string(simerrors.Unknown)}
}

// CalculateSimilarity implements spec.md §6's request value of the same
// name. s1 and s2 are interface{} because the host boundary must reject a
// non-string argument as a host-level type error distinct from any in-band
// InvalidInput — a typed (string, string) Go signature could not represent
// that distinction, so the argument type is checked explicitly here exactly
// as a binding shimming a dynamically-typed host language would.
func CalculateSimilarity(e *engine.Engine, s1, s2 interface{}, algorithm json.RawMessage, cfg *RawConfig) (SimilarityResult, error) {
	str1, ok := s1.(string)
	if !ok {
		return SimilarityResult{}, &TypeError{Argument: "s1", Reason: "must be a string"}
	}
	str2, ok := s2.(string)
	if !ok {
		return SimilarityResult{}, &TypeError{Argument: "s2", Reason: "must be a string"}
	}

	tag, err := resolveAlgorithm(algorithm)
	if err != nil {
		return SimilarityResult{Success: false, Error: errorInfoFrom(err)}, nil
	}
	overlay, err := toOverlay(cfg)
	if err != nil {
		return SimilarityResult{Success: false, Error: errorInfoFrom(err)}, nil
	}

	value, err := e.Similarity(str1, str2, tag, overlay)
	if err != nil {
		return SimilarityResult{Success: false, Error: errorInfoFrom(err)}, nil
	}
	return SimilarityResult{Success: true, Value: &value}, nil
}

// CalculateDistance is CalculateSimilarity's distance-side counterpart.
func CalculateDistance(e *engine.Engine, s1, s2 interface{}, algorithm json.RawMessage, cfg *RawConfig) (DistanceResult, error) {
	str1, ok := s1.(string)
	if !ok {
		return DistanceResult{}, &TypeError{Argument: "s1", Reason: "must be a string"}
	}
	str2, ok := s2.(string)
	if !ok {
		return DistanceResult{}, &TypeError{Argument: "s2", Reason: "must be a string"}
	}

	tag, err := resolveAlgorithm(algorithm)
	if err != nil {
		return DistanceResult{Success: false, Error: errorInfoFrom(err)}, nil
	}
	overlay, err := toOverlay(cfg)
	if err != nil {
		return DistanceResult{Success: false, Error: errorInfoFrom(err)}, nil
	}

	value, err := e.Distance(str1, str2, tag, overlay)
	if err != nil {
		return DistanceResult{Success: false, Error: errorInfoFrom(err)}, nil
	}
	return DistanceResult{Success: true, Value: &value}, nil
}

// CalculateSimilarityBatch implements spec.md §6's batch contract: an array
// of two-element string pairs produces a same-length, positionally-aligned
// array of results. Pairs are typed [2]string, so arity and element types
// are fixed by the signature; a pair whose computation fails (e.g. Hamming
// on unequal lengths) yields an unsuccessful result at that index rather
// than aborting the batch, mirroring the per-pair isolation spec.md §7
// requires of similarity_batch itself.
func CalculateSimilarityBatch(e *engine.Engine, pairs [][2]string, algorithm json.RawMessage, cfg *RawConfig) []SimilarityResult {
	results := make([]SimilarityResult, len(pairs))

	tag, err := resolveAlgorithm(algorithm)
	if err != nil {
		info := errorInfoFrom(err)
		for i := range results {
			results[i] = SimilarityResult{Success: false, Error: info}
		}
		return results
	}
	overlay, err := toOverlay(cfg)
	if err != nil {
		info := errorInfoFrom(err)
		for i := range results {
			results[i] = SimilarityResult{Success: false, Error: info}
		}
		return results
	}

	batch := e.SimilarityBatch(pairs, tag, overlay)
	for i, r := range batch {
		if r.Err != nil {
			results[i] = SimilarityResult{Success: false, Error: errorInfoFrom(r.Err)}
			continue
		}
		value := r.Value
		results[i] = SimilarityResult{Success: true, Value: &value}
	}
	return results
}
