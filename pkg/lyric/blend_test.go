package lyric

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlendMode(t *testing.T) {
	for input, want := range map[string]BlendMode{
		"interleave":     BlendInterleave,
		"":               BlendInterleave,
		"phrase-swap":    BlendPhraseSwap,
		"phrase_swap":    BlendPhraseSwap,
		"Last-Word-Swap": BlendLastWordSwap,
	} {
		got, err := ParseBlendMode(input)
		require.NoError(t, err, "input=%q", input)
		assert.Equal(t, want, got, "input=%q", input)
	}

	_, err := ParseBlendMode("shuffle")
	assert.Error(t, err)
}

func TestBlendInterleave(t *testing.T) {
	got := Blend("I love you", []string{"Te amo", "Ich liebe dich"}, BlendInterleave)
	assert.Equal(t, "Te Ich amo liebe dich", got)
}

func TestBlendInterleaveSuppressesDuplicates(t *testing.T) {
	got := Blend("la la la", []string{"la la la", "La la"}, BlendInterleave)
	assertNoConsecutiveDuplicates(t, got)
}

func TestBlendEmptyTranslations(t *testing.T) {
	for _, mode := range []BlendMode{BlendInterleave, BlendPhraseSwap, BlendLastWordSwap} {
		assert.Equal(t, "", Blend("", nil, mode))
		assert.Equal(t, "", Blend("I love you", []string{}, mode))
	}
}

func TestBlendSingleTranslationIdentity(t *testing.T) {
	for _, mode := range []BlendMode{BlendInterleave, BlendPhraseSwap} {
		assert.Equal(t, "Te amo", Blend("I love you", []string{" Te  amo "}, mode))
	}
}

func TestBlendPhraseSwapTwo(t *testing.T) {
	got := Blend("one two three four",
		[]string{"uno dos tres cuatro", "eins zwei drei vier"}, BlendPhraseSwap)
	assert.Equal(t, "uno dos drei vier", got)
}

func TestBlendPhraseSwapThree(t *testing.T) {
	got := Blend("a b c",
		[]string{"a1 a2 a3", "b1 b2 b3", "c1 c2 c3"}, BlendPhraseSwap)
	assert.Equal(t, "a1 b2 c3", got)
}

func TestBlendPhraseSwapShortTranslationFallback(t *testing.T) {
	// The first translation is too short for a proportional slice; its
	// leading tokens are kept instead of dropping it.
	got := Blend("one two three",
		[]string{"x", "uno dos tres", "p q r s t"}, BlendPhraseSwap)
	assert.Equal(t, "x dos s t", got)
}

func TestBlendLastWordSwap(t *testing.T) {
	got := Blend("I love you", []string{"Te amo"}, BlendLastWordSwap)
	assert.Equal(t, "I love amo", got)
}

func TestBlendLastWordSwapAvoidsNoOp(t *testing.T) {
	// The translation's last word already matches the original's; the
	// second-to-last word is used instead.
	got := Blend("I love you", []string{"yo amo you"}, BlendLastWordSwap)
	assert.Equal(t, "I love amo", got)
}

func TestBlendLastWordSwapSkipsEmptyTranslations(t *testing.T) {
	got := Blend("I love you", []string{"   ", "Te amo"}, BlendLastWordSwap)
	assert.Equal(t, "I love amo", got)

	// All-empty translations leave the original untouched.
	got = Blend("I love you", []string{"", "  "}, BlendLastWordSwap)
	assert.Equal(t, "I love you", got)
}

func TestBlendDeterministic(t *testing.T) {
	translations := []string{"Amo la brisa", "Ich liebe die Brise", "J'aime la brise"}
	for _, mode := range []BlendMode{BlendInterleave, BlendPhraseSwap, BlendLastWordSwap} {
		first := Blend("I love the breeze", translations, mode)
		second := Blend("I love the breeze", translations, mode)
		assert.Equal(t, first, second, "mode=%s", mode)
	}
}

func TestBlendNeverEmitsConsecutiveDuplicates(t *testing.T) {
	inputs := [][]string{
		{"la la la", "la la"},
		{"oh oh yeah", "oh yeah yeah", "yeah oh"},
		{"uno dos", "Uno dos", "UNO DOS"},
	}
	for _, translations := range inputs {
		for _, mode := range []BlendMode{BlendInterleave, BlendPhraseSwap} {
			assertNoConsecutiveDuplicates(t, Blend("x", translations, mode))
		}
	}
}

func assertNoConsecutiveDuplicates(t *testing.T, line string) {
	t.Helper()
	words := strings.Fields(line)
	for i := 1; i < len(words); i++ {
		require.False(t, strings.EqualFold(words[i-1], words[i]),
			"consecutive duplicate %q in %q", words[i], line)
	}
}
