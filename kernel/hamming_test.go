package kernel

import (
	"testing"

	"github.com/fulmenhq/strmetrics/simerrors"
	"github.com/fulmenhq/strmetrics/unitext"
)

func TestHammingDistanceBasic(t *testing.T) {
	d, err := HammingDistance(unitext.New("karolin"), unitext.New("kathrin"), unitext.Sensitive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 3 {
		t.Errorf("HammingDistance(karolin, kathrin) = %d, want 3", d)
	}
}

func TestHammingDistanceUnequalLength(t *testing.T) {
	_, err := HammingDistance(unitext.New("hello"), unitext.New("hi"), unitext.Sensitive)
	if err == nil {
		t.Fatal("expected an error for unequal-length strings")
	}
	if simerrors.KindOf(err) != simerrors.InvalidInput {
		t.Errorf("error kind = %v, want InvalidInput", simerrors.KindOf(err))
	}
}

func TestHammingSimilarityZeroLength(t *testing.T) {
	s, err := HammingSimilarity(unitext.New(""), unitext.New(""), unitext.Sensitive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != 1.0 {
		t.Errorf("HammingSimilarity(\"\", \"\") = %v, want 1.0", s)
	}
}

func TestHammingSimilarityOneEmptyReportsInvalidInput(t *testing.T) {
	_, err := HammingSimilarity(unitext.New(""), unitext.New("x"), unitext.Sensitive)
	if err == nil {
		t.Fatal("expected an error for a length mismatch between empty and non-empty strings")
	}
	if simerrors.KindOf(err) != simerrors.InvalidInput {
		t.Errorf("error kind = %v, want InvalidInput", simerrors.KindOf(err))
	}
}

func TestHammingCaseInsensitive(t *testing.T) {
	d, err := HammingDistance(unitext.New("ABC"), unitext.New("abc"), unitext.Insensitive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Errorf("HammingDistance(ABC, abc) insensitive = %d, want 0", d)
	}
}
