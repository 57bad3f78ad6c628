// Package metrics holds the counter name constants telemetry emits,
// mirroring the teacher's metrics/names.go convention of collecting every
// metric name as a package constant rather than inlining string literals
// at each call site.
package metrics

const (
	// SimilarityCalls counts calls to engine.Similarity, tagged by algorithm.
	SimilarityCalls = "strmetrics_similarity_calls_total"
	// DistanceCalls counts calls to engine.Distance, tagged by algorithm.
	DistanceCalls = "strmetrics_distance_calls_total"
	// StringLengthBucket counts calls bucketed by the longer input's length.
	StringLengthBucket = "strmetrics_string_length_bucket_total"
	// FastPathHits counts identity/empty-input shortcuts taken before a kernel runs.
	FastPathHits = "strmetrics_fast_path_total"
	// CacheHits counts cache probes that found a live entry.
	CacheHits = "strmetrics_cache_hits_total"
	// CacheMisses counts cache probes that found no live entry.
	CacheMisses = "strmetrics_cache_misses_total"
	// Errors counts calls that returned a simerrors.Error, tagged by kind.
	Errors = "strmetrics_errors_total"
)
