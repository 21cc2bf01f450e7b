package lyric

import (
	"regexp"
	"strings"
)

// PreserveKeywords restores configured English keywords in a translated
// line. For every keyword that appears as a whole word in the original,
// any case-variant of it in the translation is rewritten back to the
// configured spelling. Translations that dropped the keyword entirely are
// left alone.
func PreserveKeywords(original, translated string, keywords []string) string {
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		wordRe, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`)
		if err != nil {
			continue
		}
		if !wordRe.MatchString(original) {
			continue
		}
		translated = wordRe.ReplaceAllString(translated, k)
	}
	return translated
}
