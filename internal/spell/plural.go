package spell

// Spanish vowels, accented and not. 'ü' only appears in vowel groups.
const vowels = "aeiouáéíóúü"

var deaccent = map[rune]rune{'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u'}

// Pluralize returns the Spanish plural form of word. Words that are already
// plural (or otherwise invariant, like "lunes") come back unchanged, which is
// how callers detect that no distinct plural exists.
func Pluralize(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return word
	}

	last := r[len(r)-1]
	switch {
	case last == 'z':
		// lápiz -> lápices
		return string(r[:len(r)-1]) + "ces"

	case last == 'a' || last == 'e' || last == 'i' || last == 'o' || last == 'u' ||
		last == 'á' || last == 'é' || last == 'ó':
		// factura -> facturas, café -> cafés
		return word + "s"

	case last == 'í' || last == 'ú':
		// rubí -> rubíes
		return word + "es"

	case last == 's' || last == 'x':
		if syllableCount(r) <= 1 {
			// mes -> meses
			return word + "es"
		}
		if finalGroupStressed(r) {
			// autobús -> autobuses
			return string(deaccentFinalGroup(r)) + "es"
		}
		// lunes -> lunes, tórax -> tórax
		return word

	default:
		// camión -> camiones, papel -> papeles, rey -> reyes
		return string(deaccentFinalGroup(r)) + "es"
	}
}

func isVowel(ch rune) bool {
	for _, v := range vowels {
		if ch == v {
			return true
		}
	}
	return false
}

// syllableCount approximates syllables as contiguous vowel groups.
func syllableCount(r []rune) int {
	count := 0
	inGroup := false
	for _, ch := range r {
		if isVowel(ch) {
			if !inGroup {
				count++
				inGroup = true
			}
		} else {
			inGroup = false
		}
	}
	return count
}

// finalVowelGroup returns the index range [start, end) of the last vowel
// group, or (-1, -1) when the word has none.
func finalVowelGroup(r []rune) (int, int) {
	end := -1
	for i := len(r) - 1; i >= 0; i-- {
		if isVowel(r[i]) {
			end = i + 1
			break
		}
	}
	if end == -1 {
		return -1, -1
	}
	start := end - 1
	for start > 0 && isVowel(r[start-1]) {
		start--
	}
	return start, end
}

func finalGroupStressed(r []rune) bool {
	start, end := finalVowelGroup(r)
	if start == -1 {
		return false
	}
	for i := start; i < end; i++ {
		if _, ok := deaccent[r[i]]; ok {
			return true
		}
	}
	return false
}

// deaccentFinalGroup drops the written accent from the final syllable: the
// stress moves off it once "es" is appended (camión -> camiones).
func deaccentFinalGroup(r []rune) []rune {
	start, end := finalVowelGroup(r)
	if start == -1 {
		return r
	}
	out := make([]rune, len(r))
	copy(out, r)
	for i := start; i < end; i++ {
		if plain, ok := deaccent[out[i]]; ok {
			out[i] = plain
		}
	}
	return out
}
