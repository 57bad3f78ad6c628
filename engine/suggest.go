package engine

import (
	"sort"

	"github.com/fulmenhq/strmetrics/simconfig"
	"github.com/fulmenhq/strmetrics/unitext"
)

// SuggestOptions configures Suggest's ranking behavior.
type SuggestOptions struct {
	// Algorithm is the similarity kernel used to score candidates.
	// DefaultSuggestOptions sets Jaro-Winkler, a common "did you mean?"
	// choice because its prefix bonus favors candidates that share a
	// leading substring with a typo. Unlike MinScore and MaxSuggestions, a
	// zero value is not replaced by Suggest: it selects Levenshtein.
	Algorithm simconfig.Algorithm
	// MinScore filters out candidates scoring below it. Default 0.6.
	MinScore float64
	// MaxSuggestions caps the result count. Default 3.
	MaxSuggestions int
	// CaseSensitivity overlays the comparison's case mode. Zero value
	// (Sensitive) is used unless Insensitive is set here.
	CaseSensitivity unitext.CaseSensitivity
	// StripAccents scores input and candidates after removing diacritical
	// marks (unitext.StripAccents), so "café" and "cafe" compare as
	// identical regardless of CaseSensitivity. Returned Suggestion.Value
	// is always the original, unstripped candidate — only the scoring
	// comparison is affected, mirroring the teacher's own
	// originalValue/normalizedValue split in foundry/similarity/suggest.go.
	StripAccents bool
}

// DefaultSuggestOptions returns the conventional "did you mean?" defaults.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		Algorithm:       simconfig.JaroWinkler,
		MinScore:        0.6,
		MaxSuggestions:  3,
		CaseSensitivity: unitext.Insensitive,
	}
}

// Suggestion is one ranked candidate from Suggest.
type Suggestion struct {
	Value string
	Score float64
}

type scoredCandidate struct {
	value string
	score float64
}

// Suggest scores every candidate against input with opts.Algorithm, keeps
// those scoring at or above opts.MinScore, and returns up to
// opts.MaxSuggestions ranked by score descending, then alphabetically for
// ties. Candidates that error against a particular input (e.g. Hamming
// paired with a length mismatch) are skipped rather than aborting the
// whole ranking, since "no score" is a reasonable outcome for a fuzzy
// "did you mean?" helper.
func (e *Engine) Suggest(input string, candidates []string, opts SuggestOptions) []Suggestion {
	minScore := opts.MinScore
	if minScore == 0 {
		minScore = 0.6
	}
	maxSuggestions := opts.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = 3
	}

	if len(candidates) == 0 {
		return []Suggestion{}
	}

	overlay := simconfig.Overlay{CaseSensitivity: &opts.CaseSensitivity}

	scoringInput := input
	if opts.StripAccents {
		scoringInput = unitext.StripAccents(input)
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scoringCandidate := candidate
		if opts.StripAccents {
			scoringCandidate = unitext.StripAccents(candidate)
		}

		score, err := e.Similarity(scoringInput, scoringCandidate, opts.Algorithm, overlay)
		if err != nil {
			continue
		}
		if score >= minScore {
			scored = append(scored, scoredCandidate{value: candidate, score: score})
		}
	}

	if len(scored) == 0 {
		return []Suggestion{}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].value < scored[j].value
	})

	limit := maxSuggestions
	if limit > len(scored) {
		limit = len(scored)
	}

	results := make([]Suggestion, limit)
	for i := 0; i < limit; i++ {
		results[i] = Suggestion{Value: scored[i].value, Score: scored[i].score}
	}
	return results
}
