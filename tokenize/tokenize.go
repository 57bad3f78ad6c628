// Package tokenize implements the Character / Word / NGram tokenization
// pipeline shared by the set and vector kernel families.
package tokenize

import "github.com/fulmenhq/strmetrics/unitext"

// Mode selects how an input is split into tokens.
type Mode int

const (
	// None treats the whole input as a single token.
	None Mode = iota
	// Character splits into one token per code point.
	Character
	// Word splits into maximal runs of [A-Za-z0-9_].
	Word
	// NGram splits into a sliding window of code points of a fixed size.
	NGram
)

// isWordByte reports whether b is part of the `[A-Za-z0-9_]` word-character
// class scanned over raw UTF-8 bytes (ASCII-only by definition — non-ASCII
// bytes never start or extend a word run).
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}

// Tokens splits text into an ordered sequence of UnicodeText tokens
// according to mode. ngramSize is only consulted when mode is NGram.
func Tokens(text unitext.UnicodeText, mode Mode, ngramSize int) []unitext.UnicodeText {
	switch mode {
	case Character:
		return characterTokens(text)
	case Word:
		return wordTokens(text)
	case NGram:
		return ngramTokens(text, ngramSize)
	default:
		return []unitext.UnicodeText{text}
	}
}

func characterTokens(text unitext.UnicodeText) []unitext.UnicodeText {
	runes := text.Runes()
	tokens := make([]unitext.UnicodeText, len(runes))
	for i, r := range runes {
		tokens[i] = unitext.FromRunes([]rune{r})
	}
	return tokens
}

// wordTokens scans the original UTF-8 bytes for maximal runs of word
// characters. Scanning bytes rather than the decoded rune slice matches the
// ASCII-only word-character class exactly and avoids re-encoding non-word
// runes just to discard them.
func wordTokens(text unitext.UnicodeText) []unitext.UnicodeText {
	raw := text.String()
	var tokens []unitext.UnicodeText

	start := -1
	for i := 0; i < len(raw); i++ {
		if isWordByte(raw[i]) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			tokens = append(tokens, unitext.New(raw[start:i]))
			start = -1
		}
	}
	if start != -1 {
		tokens = append(tokens, unitext.New(raw[start:]))
	}
	return tokens
}

func ngramTokens(text unitext.UnicodeText, n int) []unitext.UnicodeText {
	runes := text.Runes()
	if len(runes) < n {
		return []unitext.UnicodeText{text}
	}

	count := len(runes) - n + 1
	tokens := make([]unitext.UnicodeText, count)
	for i := 0; i < count; i++ {
		window := make([]rune, n)
		copy(window, runes[i:i+n])
		tokens[i] = unitext.FromRunes(window)
	}
	return tokens
}
