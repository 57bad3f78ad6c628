package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/strmetrics/simconfig"
	"github.com/fulmenhq/strmetrics/simerrors"
)

func ptrF(v float64) *float64 { return &v }

func TestSimilarityLevenshteinKittenSitting(t *testing.T) {
	e := New()
	defer e.Shutdown()

	v, err := e.Similarity("kitten", "sitting", simconfig.Levenshtein, simconfig.Overlay{})
	require.NoError(t, err)
	assert.InDelta(t, 1-3.0/7.0, v, 1e-9)
}

func TestSimilarityEmptyInputs(t *testing.T) {
	e := New()
	defer e.Shutdown()

	v, err := e.Similarity("", "", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = e.Similarity("abc", "", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestSimilarityCacheHitReturnsSameValue(t *testing.T) {
	e := New()
	defer e.Shutdown()

	v1, err := e.Similarity("martha", "marhta", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	v2, err := e.Similarity("martha", "marhta", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, e.cache.Len())
}

func TestDistanceLevenshteinIsExactInteger(t *testing.T) {
	e := New()
	defer e.Shutdown()

	d, err := e.Distance("kitten", "sitting", simconfig.Levenshtein, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestDistanceDerivedFromSimilarityIsQuantized(t *testing.T) {
	e := New()
	defer e.Shutdown()

	d, err := e.Distance("night", "nacht", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Greater(t, d, 0)
	assert.LessOrEqual(t, d, 1000)
}

func TestTverskyWithoutAlphaBetaReturnsInvalidConfiguration(t *testing.T) {
	e := New()
	defer e.Shutdown()

	_, err := e.Similarity("abc", "abd", simconfig.Tversky, simconfig.Overlay{})
	require.Error(t, err)
	assert.Equal(t, simerrors.InvalidConfiguration, simerrors.KindOf(err))
}

func TestPerCallAlgorithmAlwaysWins(t *testing.T) {
	e := New()
	defer e.Shutdown()
	e.SetGlobalConfig(simconfig.Overlay{Algorithm: algPtr(simconfig.Hamming)})

	// Hamming requires equal-length inputs; these differ in length, so a
	// global default of Hamming surviving into this call would error. The
	// explicit Jaro tag must win instead.
	v, err := e.Similarity("abc", "abcd", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Greater(t, v, 0.0)
}

func TestSetGlobalConfigClearsCache(t *testing.T) {
	e := New()
	defer e.Shutdown()

	_, err := e.Similarity("abc", "abd", simconfig.Jaro, simconfig.Overlay{})
	require.NoError(t, err)
	require.Equal(t, 1, e.cache.Len())

	e.SetGlobalConfig(simconfig.Overlay{Threshold: ptrF(0.5)})
	assert.Equal(t, 0, e.cache.Len())
}

func TestSimilarityAsyncDeliversResult(t *testing.T) {
	e := New()
	defer e.Shutdown()

	done, err := e.SimilarityAsync("kitten", "sitting", simconfig.Levenshtein, simconfig.Overlay{})
	require.NoError(t, err)
	r := <-done
	require.NoError(t, r.Err)
	assert.InDelta(t, 1-3.0/7.0, r.Value.(float64), 1e-9)
}

func TestSimilarityBatchPreservesPerPairErrors(t *testing.T) {
	e := New()
	defer e.Shutdown()

	pairs := [][2]string{{"abc", "abd"}, {"abc", "abd"}}
	results := e.SimilarityBatch(pairs, simconfig.Tversky, simconfig.Overlay{})
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestSimilarityBatchSucceedsForValidAlgorithm(t *testing.T) {
	e := New()
	defer e.Shutdown()

	pairs := [][2]string{{"abc", "abc"}, {"abc", "xyz"}}
	results := e.SimilarityBatch(pairs, simconfig.Levenshtein, simconfig.Overlay{})
	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	assert.Equal(t, 1.0, results[0].Value)
}

func TestMemoryUsageAndClearCaches(t *testing.T) {
	e := New()
	defer e.Shutdown()

	_, err := e.Similarity("abc", "abd", simconfig.Levenshtein, simconfig.Overlay{})
	require.NoError(t, err)
	assert.Greater(t, e.MemoryUsage(), 0)

	e.ClearCaches()
	assert.Equal(t, 0, e.cache.Len())
}

func TestSupportedAlgorithmsListsAllThirteen(t *testing.T) {
	e := New()
	defer e.Shutdown()
	assert.Len(t, e.SupportedAlgorithms(), 13)
}

func TestNewJobIDIsUnique(t *testing.T) {
	a := NewJobID()
	b := NewJobID()
	assert.NotEqual(t, a, b)
}

func algPtr(a simconfig.Algorithm) *simconfig.Algorithm { return &a }
