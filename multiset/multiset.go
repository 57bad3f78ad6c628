// Package multiset implements the token-to-positive-count mapping shared by
// the set and vector kernel families, with the set-like operations those
// kernels need: intersect, union, sum, and key-set comparison.
package multiset

// Multiset is a counter over comparable tokens. Counts are always strictly
// positive; Increment only ever adds and there is no decrement or removal,
// so the invariant holds by construction.
type Multiset[T comparable] struct {
	counts map[T]int
}

// New returns an empty Multiset.
func New[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: make(map[T]int)}
}

// FromSlice builds a Multiset by incrementing once per element.
func FromSlice[T comparable](items []T) *Multiset[T] {
	m := New[T]()
	for _, item := range items {
		m.Increment(item)
	}
	return m
}

// Increment adds one to token's count.
func (m *Multiset[T]) Increment(token T) {
	m.counts[token]++
}

// Get returns token's count, or 0 if absent.
func (m *Multiset[T]) Get(token T) int {
	return m.counts[token]
}

// TotalCount returns the sum of all counts.
func (m *Multiset[T]) TotalCount() int {
	total := 0
	for _, c := range m.counts {
		total += c
	}
	return total
}

// Keys returns the set of tokens with non-zero count. Order is the Go map
// iteration order and is not meaningful; callers that need a deterministic
// order must sort the result themselves.
func (m *Multiset[T]) Keys() []T {
	keys := make([]T, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of distinct tokens (the cardinality of Keys).
func (m *Multiset[T]) Len() int {
	return len(m.counts)
}

// Intersect returns a new Multiset with, for each token present in both
// operands, the pointwise minimum count. Tokens with a resulting zero count
// are dropped (they cannot occur here since both operand counts are
// strictly positive, but the rule is stated for clarity).
func (m *Multiset[T]) Intersect(other *Multiset[T]) *Multiset[T] {
	result := New[T]()
	for token, count := range m.counts {
		if oc, ok := other.counts[token]; ok {
			min := count
			if oc < min {
				min = oc
			}
			if min > 0 {
				result.counts[token] = min
			}
		}
	}
	return result
}

// Union returns a new Multiset with the pointwise maximum count across both
// operands for every token present in either.
func (m *Multiset[T]) Union(other *Multiset[T]) *Multiset[T] {
	result := New[T]()
	for token, count := range m.counts {
		result.counts[token] = count
	}
	for token, count := range other.counts {
		if existing, ok := result.counts[token]; !ok || count > existing {
			result.counts[token] = count
		}
	}
	return result
}

// Sum returns a new Multiset with the pointwise addition of both operands'
// counts.
func (m *Multiset[T]) Sum(other *Multiset[T]) *Multiset[T] {
	result := New[T]()
	for token, count := range m.counts {
		result.counts[token] = count
	}
	for token, count := range other.counts {
		result.counts[token] += count
	}
	return result
}

// UnionOfKeys returns the set of tokens present in either multiset.
func (m *Multiset[T]) UnionOfKeys(other *Multiset[T]) map[T]struct{} {
	keys := make(map[T]struct{}, len(m.counts)+len(other.counts))
	for token := range m.counts {
		keys[token] = struct{}{}
	}
	for token := range other.counts {
		keys[token] = struct{}{}
	}
	return keys
}

// Equal reports whether two multisets hold identical token-to-count
// mappings. Order is ignored, as required by the invariant.
func (m *Multiset[T]) Equal(other *Multiset[T]) bool {
	if len(m.counts) != len(other.counts) {
		return false
	}
	for token, count := range m.counts {
		if other.counts[token] != count {
			return false
		}
	}
	return true
}
