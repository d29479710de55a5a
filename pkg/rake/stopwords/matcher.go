package stopwords

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/rake/pkg/rake/internalerr"
)

// Matcher recognizes whole-word stop-word occurrences and splits
// sentences into the candidate phrases that lie between them.
//
// A stop word immediately followed by a word character or hyphen is not
// treated as a boundary, so "as-needed" is not split at "as". RE2 has no
// lookahead, so that condition is checked against the byte after each
// pattern match instead.
type Matcher struct {
	pattern *regexp.Regexp
	stops   map[string]struct{}
}

// quoteTail matches a run of straight or curly quote characters and
// everything after it.
var quoteTail = regexp.MustCompile(`["'` + "“”" + `]+[\s\S]+`)

// NewMatcher compiles the stop-word set into a single matcher.
func NewMatcher(stopWords []string) (*Matcher, error) {
	stops := make(map[string]struct{}, len(stopWords))
	cleaned := make([]string, 0, len(stopWords))
	for _, w := range stopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := stops[w]; dup {
			continue
		}
		stops[w] = struct{}{}
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("stop word list: %w", internalerr.ErrMissingResource)
	}

	// Longest first, so a short stop word never shadows a longer one
	// sharing its prefix ("can" vs "cannot").
	sort.SliceStable(cleaned, func(i, j int) bool {
		return len(cleaned[i]) > len(cleaned[j])
	})

	parts := make([]string, len(cleaned))
	for i, w := range cleaned {
		parts[i] = regexp.QuoteMeta(w)
	}
	pattern, err := regexp.Compile(`(?i)\b(?:` + strings.Join(parts, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("compile stop word pattern: %w", err)
	}

	return &Matcher{pattern: pattern, stops: stops}, nil
}

// IsStop reports whether word is in the stop-word set.
func (m *Matcher) IsStop(word string) bool {
	_, ok := m.stops[strings.ToLower(word)]
	return ok
}

// Candidates splits a sentence at stop-word occurrences and returns the
// trimmed, lowercased runs in between. Runs that are empty after
// cleaning are discarded.
func (m *Matcher) Candidates(sentence string) []string {
	s := strings.TrimSpace(sentence)
	if s == "" {
		return nil
	}

	var out []string
	last := 0
	for _, loc := range m.pattern.FindAllStringIndex(s, -1) {
		if followedByWordChar(s, loc[1]) {
			// mid-token match like "as" in "as-needed"
			continue
		}
		if c := cleanCandidate(s[last:loc[0]]); c != "" {
			out = append(out, c)
		}
		last = loc[1]
	}
	if c := cleanCandidate(s[last:]); c != "" {
		out = append(out, c)
	}
	return out
}

func followedByWordChar(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	b := s[i]
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// cleanCandidate normalizes a raw run into a candidate phrase. A run
// beginning with quote characters is an artifact of quoted speech; the
// quotes and whatever trails them are removed.
func cleanCandidate(run string) string {
	c := strings.ToLower(strings.TrimSpace(run))
	if c == "" {
		return ""
	}
	c = quoteTail.ReplaceAllString(c, "")
	return strings.TrimSpace(c)
}
