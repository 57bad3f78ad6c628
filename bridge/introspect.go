package bridge

import (
	"github.com/fulmenhq/strmetrics/engine"
	"github.com/fulmenhq/strmetrics/simconfig"
)

// ConfigRecord is spec.md §6's getGlobalConfiguration response shape: every
// field set to its current value, with the genuinely Option-typed fields
// (Threshold, Alpha, Beta — spec.md §3 never gives these a single default,
// unlike PrefixWeight/PrefixLength/MaxStringLength) included only when
// present.
type ConfigRecord struct {
	Algorithm       string   `json:"algorithm"`
	Preprocessing   int      `json:"preprocessing"`
	CaseSensitivity int      `json:"caseSensitivity"`
	NgramSize       int      `json:"ngramSize"`
	Threshold       *float64 `json:"threshold,omitempty"`
	Alpha           *float64 `json:"alpha,omitempty"`
	Beta            *float64 `json:"beta,omitempty"`
	PrefixWeight    float64  `json:"prefixWeight"`
	PrefixLength    int      `json:"prefixLength"`
	MaxStringLength int      `json:"maxStringLength"`
}

// GetGlobalConfiguration implements spec.md §6's getGlobalConfiguration.
func GetGlobalConfiguration(e *engine.Engine) ConfigRecord {
	cfg := e.GetGlobalConfig()
	return ConfigRecord{
		Algorithm:       cfg.Algorithm.String(),
		Preprocessing:   int(cfg.Preprocessing),
		CaseSensitivity: int(cfg.CaseSensitivity),
		NgramSize:       cfg.NGramSize,
		Threshold:       cfg.Threshold,
		Alpha:           cfg.Alpha,
		Beta:            cfg.Beta,
		PrefixWeight:    cfg.PrefixWeight,
		PrefixLength:    cfg.PrefixLength,
		MaxStringLength: cfg.MaxStringLength,
	}
}

// AlgorithmInfo is spec.md §6's getSupportedAlgorithms element shape.
type AlgorithmInfo struct {
	Type int    `json:"type"`
	Name string `json:"name"`
}

// GetSupportedAlgorithms implements spec.md §6's getSupportedAlgorithms.
func GetSupportedAlgorithms() []AlgorithmInfo {
	infos := simconfig.SupportedAlgorithms()
	out := make([]AlgorithmInfo, len(infos))
	for i, info := range infos {
		out[i] = AlgorithmInfo{Type: info.Type, Name: info.Name}
	}
	return out
}

// ParseAlgorithmType implements spec.md §6's parseAlgorithmType(name), the
// second return value reporting whether name matched a supported
// algorithm.
func ParseAlgorithmType(name string) (int, bool) {
	tag, ok := simconfig.ParseAlgorithm(name)
	if !ok {
		return 0, false
	}
	return int(tag), true
}

// GetAlgorithmName implements spec.md §6's getAlgorithmName(tag). The
// second return value is false for a tag outside the 0..12 space.
func GetAlgorithmName(tag int) (string, bool) {
	a := simconfig.Algorithm(tag)
	if !a.Valid() {
		return "", false
	}
	return a.String(), true
}

// GetMemoryUsage implements spec.md §6's getMemoryUsage.
func GetMemoryUsage(e *engine.Engine) int {
	return e.MemoryUsage()
}

// ClearCaches implements spec.md §6's clearCaches.
func ClearCaches(e *engine.Engine) {
	e.ClearCaches()
}
