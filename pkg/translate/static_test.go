package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticClientPhraseLookup(t *testing.T) {
	c := NewStaticClient(nil)

	got, err := c.Translate(context.Background(), "I love you", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "Te amo", got)

	got, err = c.Translate(context.Background(), "i LOVE you", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Ich liebe dich", got)
}

func TestStaticClientWordFallback(t *testing.T) {
	c := NewStaticClient(nil)

	got, err := c.Translate(context.Background(), "my heart sings tonight", "en", "es")
	require.NoError(t, err)
	// Known words are substituted, unknown words pass through.
	assert.Equal(t, "mi corazon sings tonight", got)
}

func TestStaticClientUnknownLanguagePassesThrough(t *testing.T) {
	c := NewStaticClient(nil)

	got, err := c.Translate(context.Background(), "hello there", "en", "zz")
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
}

func TestStaticClientSameLanguage(t *testing.T) {
	c := NewStaticClient(nil)

	got, err := c.Translate(context.Background(), "I love you", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "I love you", got)
}

func TestStaticClientAddPhrase(t *testing.T) {
	c := NewStaticClient(nil)
	c.AddPhrase("es", "good morning", "Buenos dias")

	got, err := c.Translate(context.Background(), "Good Morning", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "Buenos dias", got)

	// The built-in lexicon is copied per client; other clients are unaffected.
	other := NewStaticClient(nil)
	got, err = other.Translate(context.Background(), "good morning", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "good morning", got)
}

func TestStaticClientSupportedLanguages(t *testing.T) {
	c := NewStaticClient(nil)

	langs, err := c.SupportedLanguages(context.Background())
	require.NoError(t, err)
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "es")
	assert.Contains(t, langs, "de")
}

func TestStaticClientHealth(t *testing.T) {
	c := NewStaticClient(nil)
	assert.NoError(t, c.CheckHealth(context.Background()))
}
