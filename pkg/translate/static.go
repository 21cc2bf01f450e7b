package translate

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// StaticClient implements the Translator interface with a small in-process
// lexicon. It needs no network or credentials and is fully deterministic,
// which makes it the backend for demos and tests: words it does not know
// pass through unchanged.
type StaticClient struct {
	phrases map[string]map[string]string // lang -> lowercase phrase -> translation
	words   map[string]map[string]string // lang -> lowercase word -> translation
	logger  *logrus.Logger
}

// NewStaticClient creates a static translator with the built-in demo lexicon.
func NewStaticClient(logger *logrus.Logger) *StaticClient {
	if logger == nil {
		logger = logrus.New()
	}
	return &StaticClient{
		phrases: copyLexicon(staticPhrases),
		words:   copyLexicon(staticWords),
		logger:  logger,
	}
}

func copyLexicon(src map[string]map[string]string) map[string]map[string]string {
	dst := make(map[string]map[string]string, len(src))
	for lang, entries := range src {
		m := make(map[string]string, len(entries))
		for k, v := range entries {
			m[k] = v
		}
		dst[lang] = m
	}
	return dst
}

// Translate looks the text up in the phrase table first, then falls back to
// word-by-word substitution. Unknown target languages and unknown words
// leave the text unchanged rather than failing.
func (c *StaticClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if targetLang == sourceLang {
		return text, nil
	}

	key := strings.ToLower(strings.TrimSpace(text))
	if phrases, ok := c.phrases[targetLang]; ok {
		if out, ok := phrases[key]; ok {
			return out, nil
		}
	}

	words, ok := c.words[targetLang]
	if !ok {
		c.logger.WithField("target_lang", targetLang).Debug("Static lexicon has no entries for language")
		return text, nil
	}

	fields := strings.Fields(text)
	for i, w := range fields {
		if out, ok := words[strings.ToLower(strings.Trim(w, ".,!?"))]; ok {
			fields[i] = out
		}
	}
	return strings.Join(fields, " "), nil
}

// CheckHealth always succeeds; there is nothing to be unhealthy.
func (c *StaticClient) CheckHealth(ctx context.Context) error {
	return ctx.Err()
}

// SupportedLanguages returns the languages present in the lexicon, sorted.
func (c *StaticClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := map[string]bool{"en": true}
	for lang := range c.phrases {
		seen[lang] = true
	}
	for lang := range c.words {
		seen[lang] = true
	}
	codes := make([]string, 0, len(seen))
	for lang := range seen {
		codes = append(codes, lang)
	}
	sort.Strings(codes)
	return codes, nil
}

// AddPhrase registers a whole-line translation, mostly useful in tests.
func (c *StaticClient) AddPhrase(targetLang, phrase, translation string) {
	if c.phrases[targetLang] == nil {
		c.phrases[targetLang] = make(map[string]string)
	}
	c.phrases[targetLang][strings.ToLower(strings.TrimSpace(phrase))] = translation
}

var staticPhrases = map[string]map[string]string{
	"es": {
		"i love you":               "Te amo",
		"i love the summer breeze": "Amo la brisa",
		"good night":               "Buenas noches",
	},
	"de": {
		"i love you": "Ich liebe dich",
		"good night": "Gute Nacht",
	},
	"fr": {
		"i love you": "Je t'aime",
		"good night": "Bonne nuit",
	},
	"hi": {
		"i love you": "Main tumse pyaar karta hoon",
	},
}

var staticWords = map[string]map[string]string{
	"es": {
		"love": "amor", "heart": "corazon", "night": "noche", "sun": "sol",
		"moon": "luna", "you": "tu", "my": "mi", "the": "la", "sing": "cantar",
		"dream": "sueno", "summer": "verano", "breeze": "brisa", "fire": "fuego",
	},
	"de": {
		"love": "Liebe", "heart": "Herz", "night": "Nacht", "sun": "Sonne",
		"moon": "Mond", "you": "du", "my": "mein", "the": "die", "sing": "singen",
		"dream": "Traum", "summer": "Sommer", "breeze": "Brise", "fire": "Feuer",
	},
	"fr": {
		"love": "amour", "heart": "coeur", "night": "nuit", "sun": "soleil",
		"moon": "lune", "you": "toi", "my": "mon", "the": "le", "sing": "chanter",
		"dream": "reve", "summer": "ete", "breeze": "brise", "fire": "feu",
	},
}
