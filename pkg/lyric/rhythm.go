package lyric

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"regexp"
	"strings"
)

// DefaultFillers is the fixed filler vocabulary: short interjections that
// pad rhythmic length without altering meaning.
var DefaultFillers = []string{"oh", "la", "yeah", "na", "hey", "mmm"}

// DefaultMaxFillers bounds how many fillers a single enhancement inserts.
const DefaultMaxFillers = 3

// Enhancement is the outcome of one rhythmic enhancement pass.
type Enhancement struct {
	// Enhanced is the translated line, whitespace-normalized, with any
	// fillers inserted.
	Enhanced string
	// OriginalSyllables is the English-path count of the source line.
	OriginalSyllables int
	// TranslatedBefore and TranslatedAfter are the generic-path counts of
	// the translated line before and after filler insertion.
	TranslatedBefore int
	TranslatedAfter  int
	// Deficit is OriginalSyllables - TranslatedBefore. Positive means the
	// translation was rhythmically too short.
	Deficit int
	// Fillers is how many filler tokens were inserted.
	Fillers int
}

// Enhancer pads rhythmically short translations with deterministic filler
// tokens so they approximate the source line's syllable count.
type Enhancer struct {
	estimator  *Estimator
	fillers    []string
	maxFillers int
}

// NewEnhancer creates an enhancer with the default filler vocabulary and
// filler cap.
func NewEnhancer(estimator *Estimator) *Enhancer {
	return &Enhancer{
		estimator:  estimator,
		fillers:    DefaultFillers,
		maxFillers: DefaultMaxFillers,
	}
}

// NewEnhancerWithFillers creates an enhancer with a custom filler vocabulary
// and per-line filler cap. Empty vocabulary or a non-positive cap fall back
// to the defaults.
func NewEnhancerWithFillers(estimator *Estimator, fillers []string, maxFillers int) *Enhancer {
	e := NewEnhancer(estimator)
	if len(fillers) > 0 {
		e.fillers = fillers
	}
	if maxFillers > 0 {
		e.maxFillers = maxFillers
	}
	return e
}

// Enhance compares the source line's syllable count against the translated
// line's and, when the translation is short, inserts deterministically
// chosen fillers at a natural pause. It never fails and never trims a
// translation that is too long: a zero or negative deficit is a no-op
// beyond whitespace normalization.
//
// The same (original, translated) pair always yields the same output: the
// filler choice is seeded from a stable hash of the two strings, not from
// global random state.
func (e *Enhancer) Enhance(original, translated string) Enhancement {
	result := Enhancement{
		OriginalSyllables: e.estimator.Estimate(original, "en"),
		TranslatedBefore:  e.estimator.Estimate(translated, ""),
	}
	result.Deficit = result.OriginalSyllables - result.TranslatedBefore

	if result.Deficit <= 0 {
		result.Enhanced = normalizeSpace(translated)
		result.TranslatedAfter = result.TranslatedBefore
		return result
	}

	chosen := e.chooseFillers(result.Deficit, translated+original)
	result.Fillers = len(chosen)
	result.Enhanced = normalizeSpace(insertFillers(translated, strings.Join(chosen, " ")))
	result.TranslatedAfter = e.estimator.Estimate(result.Enhanced, "")
	return result
}

// chooseFillers picks min(maxFillers, deficit) fillers using a generator
// seeded from the SHA-256 of seedText. Selection is without replacement
// until the vocabulary is exhausted, with replacement beyond that.
func (e *Enhancer) chooseFillers(deficit int, seedText string) []string {
	k := deficit
	if k > e.maxFillers {
		k = e.maxFillers
	}
	if k <= 0 {
		return nil
	}

	sum := sha256.Sum256([]byte(seedText))
	rnd := rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(sum[:8]))))

	if k <= len(e.fillers) {
		chosen := make([]string, 0, k)
		for _, i := range rnd.Perm(len(e.fillers))[:k] {
			chosen = append(chosen, e.fillers[i])
		}
		return chosen
	}
	chosen := make([]string, k)
	for i := range chosen {
		chosen[i] = e.fillers[rnd.Intn(len(e.fillers))]
	}
	return chosen
}

var trailingPunct = regexp.MustCompile(`([.!?])\s*$`)

// insertFillers splices the filler string into the translated line just
// before trailing sentence punctuation, or as a comma-introduced trailing
// clause when the line ends without one.
func insertFillers(translated, fillers string) string {
	if fillers == "" {
		return translated
	}
	t := strings.TrimSpace(translated)
	if m := trailingPunct.FindStringSubmatchIndex(t); m != nil {
		base := strings.TrimRight(t[:m[2]], " \t")
		return base + ", " + fillers + t[m[2]:m[3]]
	}
	return t + ", " + fillers
}
