package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageMapperToBackendCode(t *testing.T) {
	lm := NewLanguageMapper()

	tests := map[string]string{
		"EN":    "en",
		"en":    "en",
		"hi-IN": "hi",
		"pt_BR": "pt",
		"fr-CA": "fr",
		" ta ":  "ta",
	}
	for input, want := range tests {
		assert.Equal(t, want, lm.ToBackendCode(input), "input=%q", input)
	}
}

func TestLanguageMapperUnparseableTag(t *testing.T) {
	lm := NewLanguageMapper()

	// Garbage tags are lowercased and region-stripped, not rejected.
	assert.Equal(t, "xx", lm.ToBackendCode("XX-YY"))
	assert.Equal(t, "", lm.ToBackendCode(""))
}
