package simconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileOverlay mirrors Overlay with pointer fields, so a key absent from the
// YAML document stays nil while an explicit zero value is kept. Algorithm,
// preprocessing and case sensitivity are read as names (strings) and parsed
// afterwards; a name that does not parse leaves that Overlay field nil.
// Fields present in the YAML document are threaded into a real Overlay.
type fileOverlay struct {
	Algorithm       *string  `yaml:"algorithm"`
	Preprocessing   *string  `yaml:"preprocessing"`
	CaseSensitivity *string  `yaml:"caseSensitivity"`
	NGramSize       *int     `yaml:"ngramSize"`
	Threshold       *float64 `yaml:"threshold"`
	Alpha           *float64 `yaml:"alpha"`
	Beta            *float64 `yaml:"beta"`
	PrefixWeight    *float64 `yaml:"prefixWeight"`
	PrefixLength    *int     `yaml:"prefixLength"`
	MaxStringLength *int     `yaml:"maxStringLength"`
}

// LoadGlobalConfig reads a YAML document from path and builds an Overlay
// suitable for use as the lowest-priority layer passed to Merge. This is an
// ambient convenience for host applications that want to source the global
// configuration from a file at startup; it is not required by spec.md,
// which only specifies set_global_config/get_global_config as an in-memory
// API.
func LoadGlobalConfig(path string) (Overlay, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the host application at startup
	if err != nil {
		return Overlay{}, err
	}

	var raw fileOverlay
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overlay{}, err
	}

	overlay := Overlay{
		NGramSize:       raw.NGramSize,
		Threshold:       raw.Threshold,
		Alpha:           raw.Alpha,
		Beta:            raw.Beta,
		PrefixWeight:    raw.PrefixWeight,
		PrefixLength:    raw.PrefixLength,
		MaxStringLength: raw.MaxStringLength,
	}

	if raw.Algorithm != nil {
		if tag, ok := ParseAlgorithm(*raw.Algorithm); ok {
			overlay.Algorithm = &tag
		}
	}
	if raw.Preprocessing != nil {
		if mode, ok := parsePreprocessing(*raw.Preprocessing); ok {
			overlay.Preprocessing = &mode
		}
	}
	if raw.CaseSensitivity != nil {
		if mode, ok := parseCaseSensitivity(*raw.CaseSensitivity); ok {
			overlay.CaseSensitivity = &mode
		}
	}

	return overlay, nil
}
