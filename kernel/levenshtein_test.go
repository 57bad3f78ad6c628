package kernel

import (
	"testing"

	"github.com/fulmenhq/strmetrics/unitext"
)

func TestLevenshteinDistanceKittenSitting(t *testing.T) {
	d := LevenshteinDistance(unitext.New("kitten"), unitext.New("sitting"), unitext.Sensitive, nil)
	if d != 3 {
		t.Errorf("LevenshteinDistance(kitten, sitting) = %d, want 3", d)
	}
}

func TestLevenshteinSimilarityKittenSitting(t *testing.T) {
	s := LevenshteinSimilarity(unitext.New("kitten"), unitext.New("sitting"), unitext.Sensitive)
	want := 1.0 - 3.0/7.0
	if diff := s - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("LevenshteinSimilarity(kitten, sitting) = %v, want %v", s, want)
	}
}

func TestLevenshteinHelloHallo(t *testing.T) {
	d := LevenshteinDistance(unitext.New("hello"), unitext.New("hallo"), unitext.Sensitive, nil)
	if d != 1 {
		t.Errorf("LevenshteinDistance(hello, hallo) = %d, want 1", d)
	}
	s := LevenshteinSimilarity(unitext.New("hello"), unitext.New("hallo"), unitext.Sensitive)
	if s != 0.8 {
		t.Errorf("LevenshteinSimilarity(hello, hallo) = %v, want 0.8", s)
	}
}

func TestLevenshteinEmptyBoth(t *testing.T) {
	if s := LevenshteinSimilarity(unitext.New(""), unitext.New(""), unitext.Sensitive); s != 1.0 {
		t.Errorf("LevenshteinSimilarity(\"\", \"\") = %v, want 1.0", s)
	}
}

func TestLevenshteinDistanceAgainstEmpty(t *testing.T) {
	d := LevenshteinDistance(unitext.New("abc"), unitext.New(""), unitext.Sensitive, nil)
	if d != 3 {
		t.Errorf("LevenshteinDistance(abc, \"\") = %d, want 3", d)
	}
}

func TestLevenshteinIdentity(t *testing.T) {
	d := LevenshteinDistance(unitext.New("café"), unitext.New("café"), unitext.Sensitive, nil)
	if d != 0 {
		t.Errorf("LevenshteinDistance(café, café) = %d, want 0", d)
	}
}

func TestLevenshteinCaseInsensitive(t *testing.T) {
	d := LevenshteinDistance(unitext.New("Hello"), unitext.New("hello"), unitext.Insensitive, nil)
	if d != 0 {
		t.Errorf("LevenshteinDistance(Hello, hello) insensitive = %d, want 0", d)
	}
}

func TestLevenshteinBandedSaturates(t *testing.T) {
	k := 1
	d := LevenshteinDistance(unitext.New("kitten"), unitext.New("sitting"), unitext.Sensitive, &k)
	if d != k+1 {
		t.Errorf("banded LevenshteinDistance(kitten, sitting, k=1) = %d, want %d", d, k+1)
	}
}

func TestLevenshteinBandedWithinBound(t *testing.T) {
	k := 3
	d := LevenshteinDistance(unitext.New("kitten"), unitext.New("sitting"), unitext.Sensitive, &k)
	if d != 3 {
		t.Errorf("banded LevenshteinDistance(kitten, sitting, k=3) = %d, want 3", d)
	}
}

func TestLevenshteinBandedLengthGapExceedsBand(t *testing.T) {
	k := 1
	d := LevenshteinDistance(unitext.New("a"), unitext.New("abcdef"), unitext.Sensitive, &k)
	if d != k+1 {
		t.Errorf("banded LevenshteinDistance with length gap > k = %d, want %d", d, k+1)
	}
}

func TestLevenshteinBandedMatchesUnbandedWhenBandIsLoose(t *testing.T) {
	k := 10
	banded := LevenshteinDistance(unitext.New("kitten"), unitext.New("sitting"), unitext.Sensitive, &k)
	full := LevenshteinDistance(unitext.New("kitten"), unitext.New("sitting"), unitext.Sensitive, nil)
	if banded != full {
		t.Errorf("loosely banded distance = %d, want %d (unbanded)", banded, full)
	}
}
