package kernel

import (
	"math"
	"testing"

	"github.com/fulmenhq/strmetrics/unitext"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestJaroMarthaMarhta(t *testing.T) {
	j := JaroSimilarity(unitext.New("martha"), unitext.New("marhta"), unitext.Sensitive)
	if !approxEqual(j, 0.9444, 1e-3) {
		t.Errorf("JaroSimilarity(martha, marhta) = %v, want ≈0.9444", j)
	}
}

func TestJaroBothEmpty(t *testing.T) {
	if j := JaroSimilarity(unitext.New(""), unitext.New(""), unitext.Sensitive); j != 1.0 {
		t.Errorf("JaroSimilarity(\"\", \"\") = %v, want 1.0", j)
	}
}

func TestJaroOneEmpty(t *testing.T) {
	if j := JaroSimilarity(unitext.New("abc"), unitext.New(""), unitext.Sensitive); j != 0.0 {
		t.Errorf("JaroSimilarity(abc, \"\") = %v, want 0.0", j)
	}
}

func TestJaroNoMatches(t *testing.T) {
	if j := JaroSimilarity(unitext.New("abc"), unitext.New("xyz"), unitext.Sensitive); j != 0.0 {
		t.Errorf("JaroSimilarity(abc, xyz) = %v, want 0.0", j)
	}
}

func TestJaroIdentity(t *testing.T) {
	if j := JaroSimilarity(unitext.New("same"), unitext.New("same"), unitext.Sensitive); j != 1.0 {
		t.Errorf("JaroSimilarity(same, same) = %v, want 1.0", j)
	}
}

func TestJaroWinklerMarthaMarhta(t *testing.T) {
	jw := JaroWinklerSimilarity(unitext.New("martha"), unitext.New("marhta"), unitext.Sensitive, nil, 0.1, 4)
	if !approxEqual(jw, 0.9611, 1e-3) {
		t.Errorf("JaroWinklerSimilarity(martha, marhta) = %v, want ≈0.9611", jw)
	}
	if jw <= 0.9 {
		t.Errorf("JaroWinklerSimilarity(martha, marhta) = %v, want > 0.9", jw)
	}
}

func TestJaroWinklerBelowActivationThresholdReturnsJaro(t *testing.T) {
	threshold := 0.99
	jaro := JaroSimilarity(unitext.New("abc"), unitext.New("abd"), unitext.Sensitive)
	jw := JaroWinklerSimilarity(unitext.New("abc"), unitext.New("abd"), unitext.Sensitive, &threshold, 0.1, 4)
	if jw != jaro {
		t.Errorf("JaroWinklerSimilarity below threshold = %v, want raw Jaro %v", jw, jaro)
	}
}

func TestJaroWinklerPrefixLengthZeroDisablesBoost(t *testing.T) {
	jaro := JaroSimilarity(unitext.New("martha"), unitext.New("marhta"), unitext.Sensitive)
	jw := JaroWinklerSimilarity(unitext.New("martha"), unitext.New("marhta"), unitext.Sensitive, nil, 0.1, 0)
	if jw != jaro {
		t.Errorf("JaroWinklerSimilarity with prefix_length=0 = %v, want raw Jaro %v (no prefix boost)", jw, jaro)
	}
}

func TestJaroWinklerPrefixCappedAtPrefixLength(t *testing.T) {
	a := JaroWinklerSimilarity(unitext.New("aaaaax"), unitext.New("aaaaay"), unitext.Sensitive, nil, 0.1, 2)
	b := JaroWinklerSimilarity(unitext.New("aaaaax"), unitext.New("aaaaay"), unitext.Sensitive, nil, 0.1, 4)
	if a >= b {
		t.Errorf("shorter prefix_length should yield a smaller boost: got prefix2=%v prefix4=%v", a, b)
	}
}
