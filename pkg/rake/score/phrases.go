package score

import (
	"strings"

	"github.com/cognicore/rake/pkg/rake/words"
)

// PhraseScorer aggregates word scores into candidate phrase scores.
type PhraseScorer struct {
	splitter        *words.Splitter
	maxPhraseLength int
}

// NewPhraseScorer creates a phrase scorer capping phrases at
// maxPhraseLength space-separated tokens.
func NewPhraseScorer(splitter *words.Splitter, maxPhraseLength int) *PhraseScorer {
	if maxPhraseLength < 1 {
		maxPhraseLength = 1
	}
	return &PhraseScorer{splitter: splitter, maxPhraseLength: maxPhraseLength}
}

// PhraseScores assigns a score to every surviving candidate phrase.
// A phrase is rejected when it has no real words, exceeds the maximum
// phrase length, or contains a purely numeric token. Multi-word phrase
// totals are normalized by half their raw length so phrase length alone
// does not inflate score; non-positive totals are dropped.
func (s *PhraseScorer) PhraseScores(phrases []string, wordScores map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for _, phrase := range phrases {
		real := s.splitter.Split(phrase)
		if len(real) == 0 {
			continue
		}

		// raw length counts space-separated tokens, not real words
		tokens := strings.Split(phrase, " ")
		length := len(tokens)
		if length > s.maxPhraseLength {
			continue
		}
		if anyNumeric(tokens) {
			continue
		}

		var total float64
		for _, w := range real {
			total += wordScores[w]
		}
		if total > 0 && length > 1 {
			total /= float64(length) * 0.5
		}
		if total <= 0 {
			continue
		}
		out[phrase] = total
	}
	return out
}

func anyNumeric(tokens []string) bool {
	for _, tok := range tokens {
		if words.IsNumber(tok) {
			return true
		}
	}
	return false
}
