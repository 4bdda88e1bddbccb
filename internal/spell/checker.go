package spell

import (
	"bufio"
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed es.txt
var spanishWordList string

// alphabet is the rune set used for single-edit candidate generation.
// The accented vowels are included so that missing diacritics are a
// single-edit correction.
var alphabet = []rune("abcdefghijklmnopqrstuvwxyzñáéíóúü")

// Checker is a frequency-dictionary spell checker. Lookup is case-insensitive
// and an accent-folded index recovers words typed without diacritics even
// when several are missing.
type Checker struct {
	freq   map[string]int
	folded map[string][]string
}

// NewChecker builds a Checker from a word frequency table.
// Words are normalized to NFC lower case.
func NewChecker(freq map[string]int) *Checker {
	c := &Checker{
		freq:   make(map[string]int, len(freq)),
		folded: make(map[string][]string),
	}
	for word, count := range freq {
		w := Normalize(word)
		c.freq[w] += count
		key := foldAccents(w)
		c.folded[key] = append(c.folded[key], w)
	}
	for _, words := range c.folded {
		sort.Strings(words)
	}
	return c
}

// Spanish returns a Checker backed by the embedded Spanish word list.
func Spanish() (*Checker, error) {
	freq := make(map[string]int)
	scanner := bufio.NewScanner(strings.NewReader(spanishWordList))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		count := 1
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				count = n
			}
		}
		freq[fields[0]] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(freq) == 0 {
		return nil, fmt.Errorf("embedded word list is empty")
	}
	return NewChecker(freq), nil
}

// Known reports whether word is in the dictionary.
func (c *Checker) Known(word string) bool {
	_, ok := c.freq[Normalize(word)]
	return ok
}

// Candidates returns correction candidates for word, most frequent first.
// A known word is its own only candidate. For unknown words the result is
// the union of accent-folded dictionary matches and known single-edit
// variants; nil when nothing matches.
func (c *Checker) Candidates(word string) []string {
	w := Normalize(word)
	if w == "" {
		return nil
	}
	if _, ok := c.freq[w]; ok {
		return []string{w}
	}

	seen := make(map[string]struct{})
	for _, match := range c.folded[foldAccents(w)] {
		seen[match] = struct{}{}
	}
	for _, edit := range edits1(w) {
		if _, ok := c.freq[edit]; ok {
			seen[edit] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	candidates := make([]string, 0, len(seen))
	for cand := range seen {
		candidates = append(candidates, cand)
	}
	// Frequency-descending, then lexical, so output is deterministic
	sort.Slice(candidates, func(i, j int) bool {
		if c.freq[candidates[i]] != c.freq[candidates[j]] {
			return c.freq[candidates[i]] > c.freq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	return candidates
}

// Normalize lowercases word and applies NFC so that composed and decomposed
// input (terminals differ here) compare equal.
func Normalize(word string) string {
	return strings.ToLower(norm.NFC.String(word))
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents strips combining marks: "facturación" -> "facturacion".
func foldAccents(word string) string {
	folded, _, err := transform.String(accentFolder, word)
	if err != nil {
		return word
	}
	return folded
}

// edits1 generates every string at edit distance one from word
// (deletes, transposes, replaces, inserts).
func edits1(word string) []string {
	r := []rune(word)
	var edits []string

	for i := 0; i < len(r); i++ {
		// delete
		edits = append(edits, string(r[:i])+string(r[i+1:]))
	}
	for i := 0; i < len(r)-1; i++ {
		// transpose
		t := make([]rune, len(r))
		copy(t, r)
		t[i], t[i+1] = t[i+1], t[i]
		edits = append(edits, string(t))
	}
	for i := 0; i < len(r); i++ {
		// replace
		for _, ch := range alphabet {
			if ch == r[i] {
				continue
			}
			t := make([]rune, len(r))
			copy(t, r)
			t[i] = ch
			edits = append(edits, string(t))
		}
	}
	for i := 0; i <= len(r); i++ {
		// insert
		for _, ch := range alphabet {
			edits = append(edits, string(r[:i])+string(ch)+string(r[i:]))
		}
	}

	return edits
}
