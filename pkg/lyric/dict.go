package lyric

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Dictionary maps lowercase English words to the syllable count of their
// first listed pronunciation. It is built from ARPAbet pronouncing
// dictionary text (the cmudict format): one entry per line,
//
//	HELLO  HH AH0 L OW1
//
// where every phone carrying a stress digit is a syllable nucleus.
type Dictionary map[string]int

// Syllables returns the syllable count for word, if the dictionary has an
// entry for it.
func (d Dictionary) Syllables(word string) (int, bool) {
	if d == nil {
		return 0, false
	}
	n, ok := d[strings.ToLower(strings.Trim(word, ".,!?;:"))]
	return n, ok
}

// LoadDictionary parses pronouncing-dictionary text from r. Comment lines
// (";;;") are skipped, alternate pronunciations ("WORD(1) ...") are ignored
// so the first pronunciation wins, and entries without a syllable nucleus
// are rejected.
func LoadDictionary(r io.Reader) (Dictionary, error) {
	dict := make(Dictionary, 1<<8)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: entry %q has no phones", lineNo, line)
		}
		word := strings.ToLower(fields[0])
		if i := strings.IndexByte(word, '('); i >= 0 {
			// Alternate pronunciation; first one wins.
			continue
		}
		if _, seen := dict[word]; seen {
			continue
		}
		nuclei := 0
		for _, phone := range fields[1:] {
			last := phone[len(phone)-1]
			if last >= '0' && last <= '9' {
				nuclei++
			}
		}
		if nuclei == 0 {
			return nil, fmt.Errorf("line %d: entry %q has no syllable nucleus", lineNo, line)
		}
		dict[word] = nuclei
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	return dict, nil
}

//go:embed cmudict_subset.txt
var embeddedDict []byte

var (
	defaultDictOnce sync.Once
	defaultDict     Dictionary
)

// DefaultDictionary returns the embedded abridged pronouncing dictionary.
// The embedded data is validated at build time by the package tests, so a
// parse failure here means a corrupted binary; it degrades to an empty
// dictionary rather than panicking.
func DefaultDictionary() Dictionary {
	defaultDictOnce.Do(func() {
		d, err := LoadDictionary(bytes.NewReader(embeddedDict))
		if err != nil {
			d = Dictionary{}
		}
		defaultDict = d
	})
	return defaultDict
}
