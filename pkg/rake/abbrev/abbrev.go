// Package abbrev detects parenthetical acronyms and reconstructs the
// expansion span that precedes them in the same sentence.
package abbrev

import (
	"regexp"
	"strings"
	"unicode"
)

// Abbreviation pairs an acronym with its reconstructed expansion.
type Abbreviation struct {
	Acronym   string
	Expansion string
}

// maxAcronymLen excludes acronyms of unusual length.
const maxAcronymLen = 6

var (
	parenPattern     = regexp.MustCompile(`\((.*?)\)`)
	tokenPattern     = regexp.MustCompile(`[\w*-]+`)
	spaceHyphenSplit = regexp.MustCompile(`[\s-]`)
)

// Find scans text for parenthetical acronyms and returns each acronym
// with its expansion, in order of appearance. A duplicate acronym later
// in the document is ignored; the first occurrence wins.
func Find(text string) []Abbreviation {
	text = strings.ReplaceAll(text, "\n", " ")

	var found []Abbreviation
	seen := make(map[string]struct{})
	for _, sentence := range splitSentences(text) {
		a, ok := resolve(strings.TrimSpace(sentence))
		if !ok {
			continue
		}
		if _, dup := seen[a.Acronym]; dup {
			continue
		}
		seen[a.Acronym] = struct{}{}
		found = append(found, a)
	}
	return found
}

// resolve applies the acronym heuristics to a single sentence.
func resolve(sentence string) (Abbreviation, bool) {
	m := parenPattern.FindStringSubmatch(sentence)
	if m == nil {
		return Abbreviation{}, false
	}
	acronym := m[1]

	if strings.Contains(acronym, " ") || !isUpper(acronym) {
		return Abbreviation{}, false
	}
	if len(acronym) > maxAcronymLen {
		return Abbreviation{}, false
	}

	tokens := tokenPattern.FindAllString(sentence, -1)
	index := indexOf(tokens, acronym)
	if index < 0 {
		return Abbreviation{}, false
	}

	// Whitespace fields preserve '-' and '/' inside words; the token
	// index addresses positions in both views.
	fields := strings.Split(sentence, " ")

	// Each hyphen or slash in the preceding tokens absorbed a letter of
	// the acronym; shrink the effective length accordingly.
	length := len(acronym)
	if index >= 1 {
		prefix := strings.Join(fields[:clamp(index-1, len(fields))], " ")
		length -= strings.Count(prefix, "-") + strings.Count(prefix, "/")
	}

	if length > index {
		// not enough preceding tokens to form an expansion
		return Abbreviation{}, false
	}
	if i := strings.Index(acronym, "-"); i >= 0 {
		// hyphenated acronym: only the portion before the hyphen maps
		// to expansion words
		length = i
	}
	if index-length < 0 {
		return Abbreviation{}, false
	}

	expansionFields := fields[clamp(index-length, len(fields)):clamp(index, len(fields))]

	kept := make([]string, 0, len(expansionFields))
	for _, f := range expansionFields {
		if f == "the" {
			continue
		}
		kept = append(kept, f)
	}
	expansion := strings.TrimSpace(strings.Join(kept, " "))
	if expansion == "" {
		return Abbreviation{}, false
	}

	if length > len(spaceHyphenSplit.Split(expansion, -1))+1 {
		return Abbreviation{}, false
	}
	joined := strings.Join(expansionFields, " ")
	if len(acronym) > len(expansionFields)+strings.Count(joined, "-") {
		// each acronym letter must plausibly map to one expansion word
		return Abbreviation{}, false
	}

	return Abbreviation{Acronym: acronym, Expansion: expansion}, true
}

// splitSentences splits on '.' or '?' followed by whitespace, keeping
// initials ("U.S. Navy") and honorifics ("Dr. Smith") inside one
// sentence. RE2 has no lookbehind, so the suppression patterns are
// checked by hand.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' && text[i] != '\t' {
			continue
		}
		if i == 0 || (text[i-1] != '.' && text[i-1] != '?') {
			continue
		}
		if isInitial(text, i-1) || isHonorific(text, i-1) {
			continue
		}
		out = append(out, text[start:i])
		start = i + 1
	}
	return append(out, text[start:])
}

// isInitial reports whether the delimiter at end closes an initialism
// tail like "U.S." (word char, dot, word char, delimiter).
func isInitial(text string, end int) bool {
	return end >= 3 &&
		isWordChar(text[end-3]) && text[end-2] == '.' && isWordChar(text[end-1])
}

// isHonorific reports whether the delimiter at end closes a pattern
// like "Dr." (uppercase, lowercase, dot).
func isHonorific(text string, end int) bool {
	return end >= 2 && text[end] == '.' &&
		text[end-2] >= 'A' && text[end-2] <= 'Z' &&
		text[end-1] >= 'a' && text[end-1] <= 'z'
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// isUpper reports whether s contains at least one letter and no
// lowercase letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func indexOf(tokens []string, want string) int {
	for i, tok := range tokens {
		if tok == want {
			return i
		}
	}
	return -1
}

func clamp(i, max int) int {
	if i > max {
		return max
	}
	if i < 0 {
		return 0
	}
	return i
}
