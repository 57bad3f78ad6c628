package tokenize

import (
	"testing"

	"github.com/fulmenhq/strmetrics/unitext"
)

func tokenStrings(tokens []unitext.UnicodeText) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNoneMode(t *testing.T) {
	got := tokenStrings(Tokens(unitext.New("hello world"), None, 0))
	want := []string{"hello world"}
	if !equalSlices(got, want) {
		t.Errorf("None tokens = %v, want %v", got, want)
	}
}

func TestCharacterMode(t *testing.T) {
	got := tokenStrings(Tokens(unitext.New("abc"), Character, 0))
	want := []string{"a", "b", "c"}
	if !equalSlices(got, want) {
		t.Errorf("Character tokens = %v, want %v", got, want)
	}
}

func TestCharacterModeEmpty(t *testing.T) {
	got := Tokens(unitext.New(""), Character, 0)
	if len(got) != 0 {
		t.Errorf("Character tokens of empty string = %v, want empty", got)
	}
}

func TestWordMode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "hello world", []string{"hello", "world"}},
		{"punctuation", "hello, world!", []string{"hello", "world"}},
		{"underscore joins", "snake_case_name", []string{"snake_case_name"}},
		{"digits join", "v2 release", []string{"v2", "release"}},
		{"empty", "", nil},
		{"only punctuation", "!!!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenStrings(Tokens(unitext.New(tt.in), Word, 0))
			if !equalSlices(got, tt.want) {
				t.Errorf("Word tokens of %q = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNGramMode(t *testing.T) {
	got := tokenStrings(Tokens(unitext.New("hello"), NGram, 2))
	want := []string{"he", "el", "ll", "lo"}
	if !equalSlices(got, want) {
		t.Errorf("NGram(2) tokens = %v, want %v", got, want)
	}
}

func TestNGramShorterThanN(t *testing.T) {
	got := tokenStrings(Tokens(unitext.New("hi"), NGram, 5))
	want := []string{"hi"}
	if !equalSlices(got, want) {
		t.Errorf("NGram tokens for short input = %v, want %v", got, want)
	}
}

func TestNGramExactLength(t *testing.T) {
	got := tokenStrings(Tokens(unitext.New("ab"), NGram, 2))
	want := []string{"ab"}
	if !equalSlices(got, want) {
		t.Errorf("NGram tokens for exact length = %v, want %v", got, want)
	}
}
