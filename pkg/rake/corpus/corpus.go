// Package corpus provides the read-only word-frequency table used to
// weight words by their rarity in a large external English corpus.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry records a word's standing in the reference corpus. Lower rank
// means more common.
type Entry struct {
	Rank int64 `json:"rank"`
	Freq int64 `json:"freq"`
}

// Table is a word → corpus-statistics lookup. Implementations must be
// safe for concurrent readers; a Table is loaded once and never mutated.
type Table interface {
	Lookup(word string) (Entry, bool)
	Len() int
}

// Map is an in-memory Table keyed by lowercase word.
type Map map[string]Entry

// Lookup implements Table.
func (m Map) Lookup(word string) (Entry, bool) {
	e, ok := m[word]
	return e, ok
}

// Len implements Table.
func (m Map) Len() int { return len(m) }

// LoadJSON reads a frequency corpus from a JSON file of the form
//
//	{"word": {"rank": 120, "freq": 991853}, ...}
//
// Keys are lowercased on load.
func LoadJSON(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	m := make(Map, len(raw))
	for word, entry := range raw {
		m[strings.ToLower(word)] = entry
	}
	return m, nil
}
