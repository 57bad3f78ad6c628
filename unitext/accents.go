package unitext

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StripAccents removes diacritical marks from s, ported directly from the
// teacher's foundry/similarity/normalize.go StripAccents: decompose to NFD
// (separating base characters from their combining marks), drop every
// code point in Unicode category Mn (Nonspacing_Mark), then recompose to
// NFC. This is deliberately not part of Fold or RuneEqual — spec.md §4.1's
// case-folding table is finite and must not silently gain full Unicode
// normalization — so StripAccents lives here as an opt-in supplemental
// utility a caller applies before constructing a UnicodeText, the same
// role it plays in the teacher's own Normalize pipeline (engine.Suggest
// wires it in as an optional preprocessing step; see suggest.go).
func StripAccents(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}

	return norm.NFC.String(b.String())
}
