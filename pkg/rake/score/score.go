// Package score implements the RAKE word and phrase scoring laws.
//
// A word's score combines its phrase-local degree (how often it
// co-occurs with other words inside candidate phrases) with a
// corpus-relative rarity weight, so words that are both structurally
// central and linguistically rare rank highest. Common words are
// actively suppressed even when locally frequent.
package score

import (
	"math"
	"strings"

	"github.com/cognicore/rake/pkg/rake/corpus"
	"github.com/cognicore/rake/pkg/rake/words"
)

// rankOffset and rarityExponent define the rank-based rarity weight:
// idf(w) = (rank+rankOffset)^rarityExponent * rarityScale. The weight is
// non-negative and tends toward zero as rank grows, so rare words are
// penalized less.
const (
	rankOffset     = 5000.0
	rarityExponent = -0.8
	rarityScale    = 1000.0
)

// abbreviationDiscount down-weights phrases discovered through
// abbreviation expansion relative to organically discovered ones.
const abbreviationDiscount = 3.3

// WordScorer computes per-word importance scores over a set of
// candidate phrases.
type WordScorer struct {
	splitter *words.Splitter
	table    corpus.Table
}

// NewWordScorer creates a word scorer backed by the given corpus table.
func NewWordScorer(splitter *words.Splitter, table corpus.Table) *WordScorer {
	return &WordScorer{splitter: splitter, table: table}
}

// WordScores computes the score of every real word appearing in the
// candidate phrases.
func (s *WordScorer) WordScores(phrases []string) map[string]float64 {
	freq := make(map[string]int)
	degree := make(map[string]int)

	for _, phrase := range phrases {
		list := s.splitter.Split(phrase)
		d := len(list) - 1
		for _, w := range list {
			freq[w]++
			degree[w] += d
		}
	}
	for w, f := range freq {
		degree[w] += f
	}

	total := len(phrases)
	scores := make(map[string]float64, len(degree))
	for w, d := range degree {
		relFreq := 100 * float64(d) / float64(total)
		idf := s.rarity(w)
		scores[w] = (relFreq - relFreq*idf) / safeLog(phraseOccurrences(w, phrases))
	}
	return scores
}

// rarity returns the corpus-based rarity weight of w, or 0 when w is
// not in the table.
func (s *WordScorer) rarity(w string) float64 {
	e, ok := s.table.Lookup(w)
	if !ok {
		return 0
	}
	return math.Pow(float64(e.Rank)+rankOffset, rarityExponent) * rarityScale
}

// ExpansionScores scores abbreviation expansions through the word
// scoring law, discounted by abbreviationDiscount times the expansion's
// raw token length.
func (s *WordScorer) ExpansionScores(expansions []string) map[string]float64 {
	wordScores := s.WordScores(expansions)

	out := make(map[string]float64, len(expansions))
	for _, phrase := range expansions {
		length := len(strings.Split(phrase, " "))
		var total float64
		for _, w := range s.splitter.Split(phrase) {
			total += wordScores[w] / (abbreviationDiscount * float64(length))
		}
		out[phrase] = total
	}
	return out
}

// phraseOccurrences counts whole-word occurrences of w across the
// candidate phrases other than the single-word phrase equal to w
// itself. Worst case is quadratic-ish in the number of phrases
// containing a given word; a known hotspot on large documents.
func phraseOccurrences(w string, phrases []string) int {
	total := 0
	for _, phrase := range phrases {
		if phrase == w {
			continue
		}
		total += countWholeWord(w, phrase)
	}
	return total
}

// countWholeWord counts occurrences of w in phrase bounded by non-word
// characters on both sides.
func countWholeWord(w, phrase string) int {
	if w == "" {
		return 0
	}
	count, off := 0, 0
	for {
		i := strings.Index(phrase[off:], w)
		if i < 0 {
			return count
		}
		start := off + i
		end := start + len(w)
		if !wordCharAt(phrase, start-1) && !wordCharAt(phrase, end) {
			count++
		}
		off = end
	}
}

func wordCharAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	b := s[i]
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// safeLog substitutes a neutral divisor of 1 when n is zero or its
// natural log is non-positive, rather than propagating an arithmetic
// error.
func safeLog(n int) float64 {
	if n == 0 {
		return 1
	}
	l := math.Log(float64(n))
	if l <= 0 {
		return 1
	}
	return l
}
