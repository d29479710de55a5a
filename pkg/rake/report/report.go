// Package report packages extraction results for serialization, giving
// each report a sortable unique id.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/rake/pkg/rake"
)

// Builder constructs extraction reports.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Report is the serializable result of one extraction.
type Report struct {
	ID            string            `json:"id"`
	Source        string            `json:"source"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Keywords      []Keyword         `json:"keywords"`
	Abbreviations map[string]string `json:"abbreviations,omitempty"`
}

// Keyword is one ranked phrase.
type Keyword struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Build assembles a report from ranked phrases. Source names where the
// text came from (a path, URL, or "stdin").
func (b *Builder) Build(source string, phrases []rake.Phrase, abbreviations map[string]string) Report {
	keywords := make([]Keyword, len(phrases))
	for i, p := range phrases {
		keywords[i] = Keyword{Phrase: p.Text, Score: p.Score}
	}

	return Report{
		ID:            ulid.MustNew(ulid.Now(), b.entropy).String(),
		Source:        source,
		GeneratedAt:   time.Now().UTC(),
		Keywords:      keywords,
		Abbreviations: abbreviations,
	}
}
