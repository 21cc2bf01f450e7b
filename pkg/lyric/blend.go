package lyric

import (
	"fmt"
	"strings"
)

// BlendMode selects one of the three fixed strategies for merging multiple
// translated lines into one.
type BlendMode string

const (
	// BlendInterleave round-robins word-by-word across all translations.
	BlendInterleave BlendMode = "interleave"
	// BlendPhraseSwap stitches contiguous slices of each translation.
	BlendPhraseSwap BlendMode = "phrase-swap"
	// BlendLastWordSwap replaces the original line's last word with one
	// from the first non-empty translation.
	BlendLastWordSwap BlendMode = "last-word-swap"
)

// ParseBlendMode parses a string into a BlendMode.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interleave", "":
		return BlendInterleave, nil
	case "phrase-swap", "phraseswap", "phrase_swap":
		return BlendPhraseSwap, nil
	case "last-word-swap", "lastwordswap", "last_word_swap":
		return BlendLastWordSwap, nil
	default:
		return "", fmt.Errorf("unknown blend mode: %s (supported: interleave, phrase-swap, last-word-swap)", s)
	}
}

// Blend merges translations of original into a single line using the given
// mode. It is pure and deterministic: no randomness, identical inputs give
// identical output. An empty translation list yields an empty string; a
// single translation is returned unchanged for the word-mixing modes.
func Blend(original string, translations []string, mode BlendMode) string {
	if len(translations) == 0 {
		return ""
	}
	switch mode {
	case BlendPhraseSwap:
		return phraseSwap(translations)
	case BlendLastWordSwap:
		return lastWordSwap(original, translations)
	default:
		return interleave(translations)
	}
}

// interleave takes token[0] of every translation, then token[1] of every
// translation, and so on, skipping exhausted lists. Order is preserved
// within each source line.
func interleave(translations []string) string {
	if len(translations) == 1 {
		return normalizeSpace(translations[0])
	}

	tokenized := make([][]string, len(translations))
	maxLen := 0
	for i, t := range translations {
		tokenized[i] = strings.Fields(t)
		if len(tokenized[i]) > maxLen {
			maxLen = len(tokenized[i])
		}
	}

	var out []string
	for i := 0; i < maxLen; i++ {
		for _, tokens := range tokenized {
			if i < len(tokens) {
				out = appendToken(out, tokens[i])
			}
		}
	}
	return strings.Join(out, " ")
}

// phraseSwap partitions each translation into N contiguous slices and keeps
// the idx-th slice of the idx-th translation. With two translations it
// simply stitches the first half of one to the last half of the other.
func phraseSwap(translations []string) string {
	if len(translations) == 1 {
		return normalizeSpace(translations[0])
	}

	segments := make([][]string, len(translations))
	for i, t := range translations {
		segments[i] = strings.Fields(t)
	}

	var assembled []string
	if len(segments) == 2 {
		a, b := segments[0], segments[1]
		assembled = append(assembled, a[:(len(a)+1)/2]...)
		assembled = append(assembled, b[len(b)/2:]...)
	} else {
		n := len(segments)
		for idx, words := range segments {
			start := idx * len(words) / n
			end := (idx + 1) * len(words) / n
			if start < end {
				assembled = append(assembled, words[start:end]...)
				continue
			}
			// Slice collapsed on a very short translation; keep its
			// first few tokens instead of dropping it.
			keep := len(words)
			if keep > 3 {
				keep = 3
			}
			assembled = append(assembled, words[:keep]...)
		}
	}

	var out []string
	for _, tok := range assembled {
		out = appendToken(out, tok)
	}
	return strings.Join(out, " ")
}

// lastWordSwap replaces the original line's last token with the last token
// of the first non-empty translation. If that token already matches the
// original's last token and the translation has more than one token, the
// second-to-last token is used so the swap is never a no-op.
func lastWordSwap(original string, translations []string) string {
	origWords := strings.Fields(original)
	if len(origWords) == 0 {
		return normalizeSpace(original)
	}
	for _, t := range translations {
		tw := strings.Fields(t)
		if len(tw) == 0 {
			continue
		}
		newLast := tw[len(tw)-1]
		if strings.EqualFold(newLast, origWords[len(origWords)-1]) && len(tw) > 1 {
			newLast = tw[len(tw)-2]
		}
		return strings.Join(append(origWords[:len(origWords)-1], newLast), " ")
	}
	return strings.Join(origWords, " ")
}

// appendToken appends tok to out unless it case-insensitively repeats the
// previously emitted token.
func appendToken(out []string, tok string) []string {
	if len(out) > 0 && strings.EqualFold(out[len(out)-1], tok) {
		return out
	}
	return append(out, tok)
}
