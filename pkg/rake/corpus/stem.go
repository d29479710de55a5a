package corpus

import "github.com/kljensen/snowball/english"

// WithStemFallback wraps t so that a miss on the exact word form is
// retried with the word's Snowball English stem. Inflected forms like
// "networks" then inherit the corpus standing of their base form when
// only that form is present in the table.
func WithStemFallback(t Table) Table {
	return stemTable{inner: t}
}

type stemTable struct {
	inner Table
}

func (s stemTable) Lookup(word string) (Entry, bool) {
	if e, ok := s.inner.Lookup(word); ok {
		return e, true
	}
	stem := english.Stem(word, false)
	if stem == word || stem == "" {
		return Entry{}, false
	}
	return s.inner.Lookup(stem)
}

func (s stemTable) Len() int { return s.inner.Len() }
