// Package unitext implements the Unicode text model shared by every
// similarity and distance kernel: decoding, code-point length, equality, and
// the finite case-folding table used across the engine.
package unitext

// UnicodeText is an immutable value holding both the original UTF-8 bytes
// and the decoded code-point sequence for a piece of text. Length and
// equality are always defined over code points, never bytes or grapheme
// clusters.
type UnicodeText struct {
	raw    string
	points []rune
}

// New decodes s into a UnicodeText. Decoding is permissive: Go's UTF-8
// decoder already consumes ill-formed byte sequences positionally and
// substitutes U+FFFD without erroring, which is exactly the byte-driven,
// non-erroring behavior this type requires — no hand-rolled decoder is
// needed on top of it.
func New(s string) UnicodeText {
	return UnicodeText{raw: s, points: []rune(s)}
}

// FromRunes builds a UnicodeText directly from a code-point slice, used by
// kernels that construct derived text (case-folded copies, substrings).
func FromRunes(points []rune) UnicodeText {
	return UnicodeText{raw: string(points), points: points}
}

// String returns the original UTF-8 byte sequence.
func (u UnicodeText) String() string {
	return u.raw
}

// Runes returns the decoded code-point view. Callers must not mutate it.
func (u UnicodeText) Runes() []rune {
	return u.points
}

// Len returns the code-point length.
func (u UnicodeText) Len() int {
	return len(u.points)
}

// Empty reports whether the text has zero code points.
func (u UnicodeText) Empty() bool {
	return len(u.points) == 0
}

// At returns the code point at index i.
func (u UnicodeText) At(i int) rune {
	return u.points[i]
}

// Equal reports code-point equality between two UnicodeText values.
func (u UnicodeText) Equal(other UnicodeText) bool {
	if len(u.points) != len(other.points) {
		return false
	}
	for i, r := range u.points {
		if r != other.points[i] {
			return false
		}
	}
	return true
}

// CaseSensitivity selects the equality rule applied across a comparison.
type CaseSensitivity int

const (
	// Sensitive compares code points exactly.
	Sensitive CaseSensitivity = iota
	// Insensitive compares code points after folding, per §4.1's finite table.
	Insensitive
)

// Fold returns a new UnicodeText whose code points are the per-code-point
// folded values from the §4.1 table. Only the ASCII, Latin-1, Greek, and
// Cyrillic ranges documented there fold; every other code point is
// unchanged.
func (u UnicodeText) Fold() UnicodeText {
	folded := make([]rune, len(u.points))
	changed := false
	for i, r := range u.points {
		f := foldRune(r)
		folded[i] = f
		if f != r {
			changed = true
		}
	}
	if !changed {
		return u
	}
	return FromRunes(folded)
}

// RuneEqual compares two code points under the given case-sensitivity mode,
// using the ASCII fast path when both operands are ASCII.
func RuneEqual(a, b rune, mode CaseSensitivity) bool {
	return runeEqual(a, b, mode == Insensitive)
}

// EqualUnder reports whether two texts are equal under a case-sensitivity
// mode: exact code-point equality when Sensitive, fold(a)==fold(b) when
// Insensitive.
func EqualUnder(a, b UnicodeText, mode CaseSensitivity) bool {
	if mode == Sensitive {
		return a.Equal(b)
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !RuneEqual(a.At(i), b.At(i), mode) {
			return false
		}
	}
	return true
}

// IsASCII reports whether every code point in the text is in the ASCII
// range, enabling the byte-oriented ASCII fast path in the Character-mode
// Cosine kernel.
func (u UnicodeText) IsASCII() bool {
	for _, r := range u.points {
		if !isASCII(r) {
			return false
		}
	}
	return true
}

// ByteLen returns the length of the original UTF-8 encoding in bytes, the
// same measure the engine applies to raw input strings when enforcing
// Config.MaxStringLength.
func (u UnicodeText) ByteLen() int {
	return len(u.raw)
}
