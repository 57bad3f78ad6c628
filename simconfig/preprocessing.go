package simconfig

import (
	"strings"

	"github.com/fulmenhq/strmetrics/tokenize"
	"github.com/fulmenhq/strmetrics/unitext"
)

func parsePreprocessing(name string) (tokenize.Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return tokenize.None, true
	case "character":
		return tokenize.Character, true
	case "word":
		return tokenize.Word, true
	case "ngram":
		return tokenize.NGram, true
	}
	return tokenize.None, false
}

func parseCaseSensitivity(name string) (unitext.CaseSensitivity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sensitive":
		return unitext.Sensitive, true
	case "insensitive":
		return unitext.Insensitive, true
	}
	return unitext.Sensitive, false
}
