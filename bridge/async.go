package bridge

import (
	"encoding/json"

	"github.com/fulmenhq/strmetrics/engine"
)

// CalculateSimilarityAsync schedules a similarity computation on the
// engine's worker pool and returns a one-shot channel carrying exactly one
// SimilarityResult, per spec.md §6's async response contract. A host-level
// argument-type violation is resolved before scheduling and reported as a
// rejected outcome (a non-nil error, no channel) rather than a completion
// that a worker would have to publish — spec.md §7: "asynchronous entry
// points turn host-boundary errors into rejected completions".
func CalculateSimilarityAsync(e *engine.Engine, s1, s2 interface{}, algorithm json.RawMessage, cfg *RawConfig) (<-chan SimilarityResult, error) {
	str1, ok := s1.(string)
	if !ok {
		return nil, &TypeError{Argument: "s1", Reason: "must be a string"}
	}
	str2, ok := s2.(string)
	if !ok {
		return nil, &TypeError{Argument: "s2", Reason: "must be a string"}
	}

	tag, err := resolveAlgorithm(algorithm)
	if err != nil {
		return rejectedSimilarity(err), nil
	}
	overlay, err := toOverlay(cfg)
	if err != nil {
		return rejectedSimilarity(err), nil
	}

	raw, err := e.SimilarityAsync(str1, str2, tag, overlay)
	if err != nil {
		return rejectedSimilarity(err), nil
	}

	out := make(chan SimilarityResult, 1)
	go func() {
		defer close(out)
		res := <-raw
		if res.Err != nil {
			out <- SimilarityResult{Success: false, Error: errorInfoFrom(res.Err)}
			return
		}
		value := res.Value.(float64)
		out <- SimilarityResult{Success: true, Value: &value}
	}()
	return out, nil
}

// CalculateDistanceAsync is CalculateSimilarityAsync's distance-side
// counterpart.
func CalculateDistanceAsync(e *engine.Engine, s1, s2 interface{}, algorithm json.RawMessage, cfg *RawConfig) (<-chan DistanceResult, error) {
	str1, ok := s1.(string)
	if !ok {
		return nil, &TypeError{Argument: "s1", Reason: "must be a string"}
	}
	str2, ok := s2.(string)
	if !ok {
		return nil, &TypeError{Argument: "s2", Reason: "must be a string"}
	}

	tag, err := resolveAlgorithm(algorithm)
	if err != nil {
		return rejectedDistance(err), nil
	}
	overlay, err := toOverlay(cfg)
	if err != nil {
		return rejectedDistance(err), nil
	}

	raw, err := e.DistanceAsync(str1, str2, tag, overlay)
	if err != nil {
		return rejectedDistance(err), nil
	}

	out := make(chan DistanceResult, 1)
	go func() {
		defer close(out)
		res := <-raw
		if res.Err != nil {
			out <- DistanceResult{Success: false, Error: errorInfoFrom(res.Err)}
			return
		}
		value := res.Value.(int)
		out <- DistanceResult{Success: true, Value: &value}
	}()
	return out, nil
}

// rejectedSimilarity wraps a pre-scheduling in-band error (a bad algorithm
// tag, invalid config, or a submission after pool shutdown) into an already-completed one-shot channel, so
// callers of the async entry points always receive a channel on success
// paths and only see a bare error for genuine host-boundary rejections.
func rejectedSimilarity(err error) <-chan SimilarityResult {
	out := make(chan SimilarityResult, 1)
	out <- SimilarityResult{Success: false, Error: errorInfoFrom(err)}
	close(out)
	return out
}

func rejectedDistance(err error) <-chan DistanceResult {
	out := make(chan DistanceResult, 1)
	out <- DistanceResult{Success: false, Error: errorInfoFrom(err)}
	close(out)
	return out
}
