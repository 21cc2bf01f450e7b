package lyric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreserveKeywords(t *testing.T) {
	got := PreserveKeywords("handmade love", "Amor HANDMADE", []string{"handmade"})
	assert.Equal(t, "Amor handmade", got)
}

func TestPreserveKeywordsIgnoresAbsentKeyword(t *testing.T) {
	// Keyword not present in the original line: the translation is left alone.
	got := PreserveKeywords("summer breeze", "Brise SOMEBODY", []string{"somebody"})
	assert.Equal(t, "Brise SOMEBODY", got)
}

func TestPreserveKeywordsWholeWordsOnly(t *testing.T) {
	// "love" inside "lovely" must not be rewritten.
	got := PreserveKeywords("love story", "lovely Lovestruck LOVE", []string{"love"})
	assert.Equal(t, "lovely Lovestruck love", got)
}

func TestPreserveKeywordsEmptyList(t *testing.T) {
	assert.Equal(t, "Te amo", PreserveKeywords("I love you", "Te amo", nil))
	assert.Equal(t, "Te amo", PreserveKeywords("I love you", "Te amo", []string{"", "  "}))
}
