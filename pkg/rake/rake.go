// Package rake extracts ranked candidate keyword phrases from
// unstructured text using the RAKE frequency/degree heuristic, weighted
// by corpus-relative word rarity, with optional resolution of
// parenthetical abbreviations.
package rake

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cognicore/rake/pkg/rake/abbrev"
	"github.com/cognicore/rake/pkg/rake/corpus"
	"github.com/cognicore/rake/pkg/rake/internalerr"
	"github.com/cognicore/rake/pkg/rake/score"
	"github.com/cognicore/rake/pkg/rake/stopwords"
	"github.com/cognicore/rake/pkg/rake/words"
)

// Defaults for Options left at their zero value.
const (
	DefaultPhraseLength = 2
	DefaultMinWordSize  = 3
)

// sentenceDelims bounds sentences at sentence punctuation, quotes,
// tabs, or a spaced hyphen.
var sentenceDelims = regexp.MustCompile(`[.!?,;:\t\\"'` + "’–" + `]|\s-\s`)

// Options configures an Extractor.
type Options struct {
	// StopWords is the stop-word list; required.
	StopWords []string
	// Corpus supplies word rank/frequency statistics. When nil, every
	// word is treated as unknown to the corpus; the scoring formulas
	// are unchanged, only coverage shrinks.
	Corpus corpus.Table
	// PhraseLength is the maximum phrase length in space-separated
	// tokens. 0 means DefaultPhraseLength.
	PhraseLength int
	// MinWordSize is the minimum length a token must exceed to count as
	// a real word. 0 means DefaultMinWordSize.
	MinWordSize int
}

// Extractor extracts keyword phrases. The stop-word matcher and corpus
// table are immutable after construction, so an Extractor is safe for
// concurrent use; all per-call state is local to the call.
type Extractor struct {
	matcher      *stopwords.Matcher
	wordScorer   *score.WordScorer
	phraseScorer *score.PhraseScorer
}

// New creates an Extractor. Construction fails when no stop-word list
// is supplied; there is no partial initialization.
func New(opts Options) (*Extractor, error) {
	if len(opts.StopWords) == 0 {
		return nil, fmt.Errorf("stop word list: %w", internalerr.ErrMissingResource)
	}
	if opts.PhraseLength <= 0 {
		opts.PhraseLength = DefaultPhraseLength
	}
	if opts.MinWordSize <= 0 {
		opts.MinWordSize = DefaultMinWordSize
	}

	matcher, err := stopwords.NewMatcher(opts.StopWords)
	if err != nil {
		return nil, err
	}

	table := opts.Corpus
	if table == nil {
		table = corpus.Map{}
	}

	splitter := words.NewSplitter(opts.MinWordSize)
	return &Extractor{
		matcher:      matcher,
		wordScorer:   score.NewWordScorer(splitter, table),
		phraseScorer: score.NewPhraseScorer(splitter, opts.PhraseLength),
	}, nil
}

// Phrase is a ranked candidate keyword.
type Phrase struct {
	Text  string
	Score float64
}

// PhraseOptions control a single extraction call.
type PhraseOptions struct {
	// Limit truncates the ranked output. A Limit exceeding the
	// candidate count returns every candidate unmodified rather than
	// capping; 0 returns the suggested count of 5 + candidates/10.
	Limit int
	// Abbreviations merges scored abbreviation expansions into the
	// ranking. Organic phrases override abbreviation entries of the
	// same text.
	Abbreviations bool
}

// Phrases returns the candidate keyword phrases of text, ranked by
// score descending. Ties keep discovery order. Empty input yields an
// empty result.
func (e *Extractor) Phrases(text string, opts PhraseOptions) []Phrase {
	phrases := e.candidatePhrases(text)
	wordScores := e.wordScorer.WordScores(phrases)
	phraseScores := e.phraseScorer.PhraseScores(phrases, wordScores)

	// Abbreviation entries come first so that organic scores overlaid
	// afterwards win for phrases found both ways.
	var order []string
	seen := make(map[string]struct{})
	scores := make(map[string]float64, len(phraseScores))

	if opts.Abbreviations {
		found := abbrev.Find(text)
		expansions := make([]string, len(found))
		for i, a := range found {
			expansions[i] = a.Expansion
		}
		for exp, s := range e.wordScorer.ExpansionScores(expansions) {
			scores[exp] = s
		}
		for _, exp := range expansions {
			if _, ok := seen[exp]; ok {
				continue
			}
			seen[exp] = struct{}{}
			order = append(order, exp)
		}
	}

	for _, p := range phrases {
		if _, scored := phraseScores[p]; !scored {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		order = append(order, p)
	}
	for p, s := range phraseScores {
		scores[p] = s
	}

	ranked := make([]Phrase, 0, len(order))
	for _, p := range order {
		ranked = append(ranked, Phrase{Text: p, Score: scores[p]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return truncate(ranked, opts.Limit)
}

// Keywords returns the phrase texts of Phrases, without scores.
func (e *Extractor) Keywords(text string, opts PhraseOptions) []string {
	ranked := e.Phrases(text, opts)
	out := make([]string, len(ranked))
	for i, p := range ranked {
		out[i] = p.Text
	}
	return out
}

// Abbreviations returns the parenthetical acronyms of text mapped to
// their reconstructed expansions. The first occurrence of an acronym
// wins; later duplicates are ignored.
func (e *Extractor) Abbreviations(text string) map[string]string {
	found := abbrev.Find(text)
	out := make(map[string]string, len(found))
	for _, a := range found {
		out[a.Acronym] = a.Expansion
	}
	return out
}

// candidatePhrases segments text into sentences and splits each at
// stop-word boundaries. Phrases carrying an embedded newline are
// re-split, and a phrase ending in a hyphen (a mid-word line-break
// artifact) is discarded.
func (e *Extractor) candidatePhrases(text string) []string {
	var raw []string
	for _, sentence := range sentenceDelims.Split(text, -1) {
		raw = append(raw, e.matcher.Candidates(sentence)...)
	}

	out := make([]string, 0, len(raw))
	for _, p := range raw {
		for _, part := range strings.Split(p, "\n") {
			part = strings.TrimSpace(part)
			if part == "" || strings.HasSuffix(part, "-") {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func truncate(ranked []Phrase, limit int) []Phrase {
	if limit > 0 {
		if limit > len(ranked) {
			// deliberately returns everything instead of capping
			return ranked
		}
		return ranked[:limit]
	}

	suggested := 5 + len(ranked)/10
	if suggested > len(ranked) {
		suggested = len(ranked)
	}
	return ranked[:suggested]
}
