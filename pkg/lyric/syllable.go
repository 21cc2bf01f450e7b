package lyric

import (
	"strings"
)

// vowels covers the common Latin-script vowels, including the diacritic
// variants that show up in Romance-language translations. "y" is counted
// as a vowel, which slightly overshoots for English but keeps the
// heuristic simple.
const vowels = "aeiouyáàâäãåāéèêëēíìîïīóòôöõōúùûüū"

// consonantish is the extra set of letters kept when stripping a word
// down for the heuristic. Matches the original tool's filter.
const consonantish = "ɪɔŋ"

var textNormalizer = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"“", "", "”", "", // curly double quotes
	"‘", "", "’", "", // curly single quotes
	"\"", "",
)

// CleanText normalizes a lyric line for syllable counting and comparison:
// dashes and quotes are unified to plain ASCII, stray quote characters are
// removed and surrounding whitespace is trimmed. Sentence-final punctuation
// is preserved so the enhancer can insert fillers in front of it.
func CleanText(text string) string {
	return strings.TrimSpace(textNormalizer.Replace(text))
}

// Estimator approximates syllable counts per language. English text goes
// through a pronouncing-dictionary lookup with a vowel-group fallback;
// every other language hint uses the vowel-group heuristic uniformly.
//
// The result is a rough heuristic, not ground truth. It is not
// linguistically accurate for non-Latin scripts.
type Estimator struct {
	dict Dictionary
}

// NewEstimator creates an estimator backed by the embedded pronouncing
// dictionary.
func NewEstimator() *Estimator {
	return &Estimator{dict: DefaultDictionary()}
}

// NewEstimatorWithDictionary creates an estimator backed by a custom
// pronouncing dictionary. A nil dictionary disables the English lookup
// path entirely.
func NewEstimatorWithDictionary(dict Dictionary) *Estimator {
	return &Estimator{dict: dict}
}

// Estimate returns the approximate syllable count of text. langHint selects
// the counting branch: an "en"-prefixed hint enables the dictionary lookup,
// anything else (including an empty hint) falls through to the generic
// heuristic. Empty text counts as 0.
func (e *Estimator) Estimate(text, langHint string) int {
	text = CleanText(text)
	if text == "" {
		return 0
	}

	english := strings.HasPrefix(strings.ToLower(langHint), "en")
	total := 0
	for _, word := range strings.Fields(text) {
		if english {
			if n, ok := e.dict.Syllables(word); ok {
				total += n
				continue
			}
		}
		total += heuristicWordSyllables(word)
	}
	return total
}

// heuristicWordSyllables counts maximal vowel runs in a single word. A word
// that strips down to nothing counts 0; a stripped word with no vowel group
// counts 1, never 0.
func heuristicWordSyllables(word string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if strings.ContainsRune(vowels, r) || strings.ContainsRune(consonantish, r) {
			b.WriteRune(r)
			continue
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	stripped := b.String()
	if stripped == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range stripped {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			groups++
		}
		prevVowel = isVowel
	}
	if groups == 0 {
		return 1
	}
	return groups
}

// normalizeSpace collapses runs of whitespace to single spaces and trims
// the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
