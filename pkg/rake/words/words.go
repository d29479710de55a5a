package words

import (
	"regexp"
	"strings"
)

// separator matches any character that cannot appear inside a word.
// Underscores, plus signs, hyphens and slashes are word characters here
// so compounds like "x-ray", "c++" and "tcp/ip" survive intact.
var separator = regexp.MustCompile(`[^a-zA-Z0-9_+\-/]`)

// Splitter separates a text span into the "real words" that participate
// in scoring. Tokens at or below the minimum word size and purely
// numeric tokens are kept in phrase text but never counted as words,
// since they tend to distort the degree/frequency balance.
type Splitter struct {
	minWordSize int
}

// NewSplitter creates a splitter with the given minimum word size.
func NewSplitter(minWordSize int) *Splitter {
	if minWordSize < 0 {
		minWordSize = 0
	}
	return &Splitter{minWordSize: minWordSize}
}

// Split returns the lowercase real words of text, in order.
func (s *Splitter) Split(text string) []string {
	var out []string
	for _, tok := range separator.Split(text, -1) {
		word := strings.ToLower(strings.TrimSpace(tok))
		if len(word) > s.minWordSize && word != "" && !IsNumber(word) {
			out = append(out, word)
		}
	}
	return out
}

// IsNumber reports whether a token is purely numeric. A percent sign is
// stripped first, so "50%" counts as a number.
func IsNumber(s string) bool {
	s = strings.ReplaceAll(s, "%", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
