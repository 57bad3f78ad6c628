package kernel

import (
	"math"

	"github.com/fulmenhq/strmetrics/multiset"
	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

// CosineSimilarity implements spec.md §4.5's two cosine variants. Under
// Character preprocessing it uses presence sets (ASCII inputs take a
// 256-entry byte-frequency fast path that collapses case under Insensitive
// mode); under Word/NGram it builds token-frequency vectors and takes the
// normalized dot product, short-circuiting to 1 when the two frequency
// maps are identical.
func CosineSimilarity(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity) float64 {
	if mode == tokenize.Character {
		return cosineCharacter(s1, s2, caseMode)
	}
	return cosineVector(s1, s2, mode, ngramSize, caseMode)
}

func cosineCharacter(s1, s2 unitext.UnicodeText, caseMode unitext.CaseSensitivity) float64 {
	if s1.IsASCII() && s2.IsASCII() {
		return cosineASCIIBytes(s1, s2, caseMode)
	}

	a := distinctRunes(s1, caseMode)
	b := distinctRunes(s2, caseMode)

	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	shared := 0
	for r := range a {
		if _, ok := b[r]; ok {
			shared++
		}
	}
	return float64(shared) / math.Sqrt(float64(len(a))*float64(len(b)))
}

// cosineASCIIBytes computes cosine similarity over a 256-entry byte
// frequency vector, the ASCII fast path spec.md §4.5 calls out explicitly;
// case folding here collapses uppercase ASCII letters into their lowercase
// bin before counting.
func cosineASCIIBytes(s1, s2 unitext.UnicodeText, caseMode unitext.CaseSensitivity) float64 {
	var freqA, freqB [256]int
	countBytes(&freqA, s1, caseMode)
	countBytes(&freqB, s2, caseMode)

	var dot, magA, magB float64
	for i := 0; i < 256; i++ {
		dot += float64(freqA[i]) * float64(freqB[i])
		magA += float64(freqA[i]) * float64(freqA[i])
		magB += float64(freqB[i]) * float64(freqB[i])
	}

	if magA == 0 && magB == 0 {
		return 1.0
	}
	if magA == 0 || magB == 0 {
		return 0.0
	}
	return clamp01(dot / (math.Sqrt(magA) * math.Sqrt(magB)))
}

func countBytes(freq *[256]int, text unitext.UnicodeText, caseMode unitext.CaseSensitivity) {
	raw := text.String()
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if caseMode == unitext.Insensitive && b >= 'A' && b <= 'Z' {
			b |= 0x20
		}
		freq[b]++
	}
}

func distinctRunes(text unitext.UnicodeText, caseMode unitext.CaseSensitivity) map[rune]struct{} {
	folded := text
	if caseMode == unitext.Insensitive {
		folded = text.Fold()
	}
	set := make(map[rune]struct{}, folded.Len())
	for _, r := range folded.Runes() {
		set[r] = struct{}{}
	}
	return set
}

func cosineVector(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity) float64 {
	a := tokenMultiset(s1, mode, ngramSize, caseMode)
	b := tokenMultiset(s2, mode, ngramSize, caseMode)

	if a.Len() == 0 && b.Len() == 0 {
		return 1.0
	}
	if a.Len() == 0 || b.Len() == 0 {
		return 0.0
	}
	if a.Equal(b) {
		return 1.0
	}

	var dot, magA, magB float64
	keys := a.UnionOfKeys(b)
	for k := range keys {
		va := float64(a.Get(k))
		vb := float64(b.Get(k))
		dot += va * vb
		magA += va * va
		magB += vb * vb
	}

	if magA == 0 || magB == 0 {
		return 0.0
	}
	return clamp01(dot / (math.Sqrt(magA) * math.Sqrt(magB)))
}

// LpNorm selects the Lp distance LpRawDistance computes over the union of
// frequency-vector keys: p in {1 (Manhattan), 2 (Euclidean), Inf
// (Chebyshev)}, per spec.md §4.5 and the Glossary's Lp distance entry.
type LpNorm int

const (
	Manhattan LpNorm = iota
	Euclidean
	Chebyshev
)

func lpRaw(a, b *multiset.Multiset[string], p LpNorm) float64 {
	keys := a.UnionOfKeys(b)
	switch p {
	case Manhattan:
		var sum float64
		for k := range keys {
			sum += math.Abs(float64(a.Get(k) - b.Get(k)))
		}
		return sum
	case Chebyshev:
		var max float64
		for k := range keys {
			d := math.Abs(float64(a.Get(k) - b.Get(k)))
			if d > max {
				max = d
			}
		}
		return max
	default: // Euclidean
		var sumSq float64
		for k := range keys {
			d := float64(a.Get(k) - b.Get(k))
			sumSq += d * d
		}
		return math.Sqrt(sumSq)
	}
}

// LpRawDistance returns the unquantized Lp distance between the token
// frequency vectors of s1 and s2.
func LpRawDistance(s1, s2 unitext.UnicodeText, mode tokenize.Mode, ngramSize int, caseMode unitext.CaseSensitivity, p LpNorm) float64 {
	a := tokenMultiset(s1, mode, ngramSize, caseMode)
	b := tokenMultiset(s2, mode, ngramSize, caseMode)
	return lpRaw(a, b, p)
}

// LpSimilarity converts a raw Lp distance to a similarity per spec.md
// §4.5: Euclidean and Chebyshev use exp(-d); Manhattan uses 1/(1+d).
func LpSimilarity(d float64, p LpNorm) float64 {
	switch p {
	case Manhattan:
		return 1.0 / (1.0 + d)
	default:
		return math.Exp(-d)
	}
}
