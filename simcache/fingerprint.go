package simcache

import (
	"strconv"
	"strings"
)

// Fingerprint identifies the cache-relevant slice of a call: the algorithm
// tag, the key-config fields that affect tokenization/comparison, and both
// input strings, per spec.md §4.6 step 4. It is a byte sequence so it can
// double as a map key without exposing its internal shape to callers.
type Fingerprint []byte

// Build constructs a Fingerprint from the fields spec.md names as
// cache-relevant: algorithm tag, preprocessing tag, case mode, ngram size,
// and both raw input strings. Field values are length-prefixed with a
// separator so no concatenation of variable-length fields can collide
// (e.g. s1="ab"+s2="c" vs s1="a"+s2="bc").
func Build(algorithm, preprocessing, caseMode, ngramSize int, s1, s2 string) Fingerprint {
	var b strings.Builder
	b.WriteString(strconv.Itoa(algorithm))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(preprocessing))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(caseMode))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(ngramSize))
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(len(s1)))
	b.WriteByte(0)
	b.WriteString(s1)
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(len(s2)))
	b.WriteByte(0)
	b.WriteString(s2)
	return []byte(b.String())
}

func (f Fingerprint) key() string {
	return string(f)
}
