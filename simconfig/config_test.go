package simconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func TestMergeDefaults(t *testing.T) {
	cfg := Merge()
	assert.Equal(t, Levenshtein, cfg.Algorithm)
	assert.Equal(t, tokenize.Character, cfg.Preprocessing)
	assert.Equal(t, unitext.Sensitive, cfg.CaseSensitivity)
	assert.Equal(t, DefaultNGramSize, cfg.NGramSize)
	assert.Nil(t, cfg.Threshold, "threshold has no single default — each kernel resolves its own")
	assert.Equal(t, DefaultPrefixWeight, cfg.PrefixWeight)
	assert.Equal(t, DefaultPrefixLength, cfg.PrefixLength)
	assert.Equal(t, DefaultMaxStringLength, cfg.MaxStringLength)
}

func TestMergeLaterLayerWins(t *testing.T) {
	wordMode := tokenize.Word
	ngramMode := tokenize.NGram

	global := Overlay{Preprocessing: &wordMode}
	perCall := Overlay{Preprocessing: &ngramMode}

	cfg := Merge(global, perCall)
	assert.Equal(t, tokenize.NGram, cfg.Preprocessing)
}

func TestMergeExplicitZeroValueWins(t *testing.T) {
	// Open Question 1: explicitly setting Preprocessing to its zero value
	// (None) must not be treated as "unset" and silently overridden by a
	// later no-op layer.
	noneMode := tokenize.None
	perCall := Overlay{Preprocessing: &noneMode}

	cfg := Merge(Overlay{}, perCall, Overlay{})
	assert.Equal(t, tokenize.None, cfg.Preprocessing)
}

func TestMergeNilLayerFieldFallsThrough(t *testing.T) {
	wordMode := tokenize.Word
	global := Overlay{Preprocessing: &wordMode}
	perCall := Overlay{} // no preprocessing override

	cfg := Merge(global, perCall)
	assert.Equal(t, tokenize.Word, cfg.Preprocessing)
}

func TestWithAlgorithmOverridesFinalField(t *testing.T) {
	overlay := Overlay{}.WithAlgorithm(JaroWinkler)
	cfg := Merge(overlay)
	assert.Equal(t, JaroWinkler, cfg.Algorithm)
}

func TestValidateRejectsZeroNGramSize(t *testing.T) {
	cfg := Merge(Overlay{NGramSize: ptrI(0)})
	err := Validate(cfg)
	require.Error(t, err)
}

func TestValidateRejectsOutOfRangePrefixWeight(t *testing.T) {
	cfg := Merge(Overlay{PrefixWeight: ptrF(0.5)})
	require.Error(t, Validate(cfg))
}

func TestValidateRejectsOutOfRangePrefixLength(t *testing.T) {
	cfg := Merge(Overlay{PrefixLength: ptrI(10)})
	require.Error(t, Validate(cfg))
}

func TestValidateTverskyRequiresAlphaBeta(t *testing.T) {
	cfg := Merge(Overlay{}.WithAlgorithm(Tversky))
	require.Error(t, Validate(cfg))

	cfg = Merge(Overlay{Alpha: ptrF(0.5), Beta: ptrF(0.5)}.WithAlgorithm(Tversky))
	require.NoError(t, Validate(cfg))
}

func TestValidateTverskyRejectsNegativeAlpha(t *testing.T) {
	cfg := Merge(Overlay{Alpha: ptrF(-1), Beta: ptrF(0.5)}.WithAlgorithm(Tversky))
	require.Error(t, Validate(cfg))
}

func TestLoadGlobalConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "algorithm: jaro-winkler\npreprocessing: word\ncaseSensitivity: insensitive\nthreshold: 0.8\nprefixWeight: 0.15\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	overlay, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	cfg := Merge(overlay)
	assert.Equal(t, JaroWinkler, cfg.Algorithm)
	assert.Equal(t, tokenize.Word, cfg.Preprocessing)
	assert.Equal(t, unitext.Insensitive, cfg.CaseSensitivity)
	require.NotNil(t, cfg.Threshold)
	assert.Equal(t, 0.8, *cfg.Threshold)
	assert.Equal(t, 0.15, cfg.PrefixWeight)
}

func TestLoadGlobalConfigMissingFile(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
