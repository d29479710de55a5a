package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/corpus"
	"github.com/cognicore/rake/pkg/rake/corpus/sqlitecorpus"
)

// Loader resolves resource paths into a ready Extractor. Path fields
// set on the Loader override those in the settings file. A missing
// stop-word list is fatal; a missing full corpus falls back to the
// sample corpus when one is configured, changing word coverage but
// never the scoring formulas.
type Loader struct {
	SettingsPath string
	StoplistPath string
	CorpusPath   string
}

// Load reads the configured resources and constructs an Extractor.
func (l *Loader) Load(ctx context.Context) (*rake.Extractor, error) {
	settings := &Settings{}
	if l.SettingsPath != "" {
		loaded, err := LoadSettings(l.SettingsPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}
	if l.StoplistPath != "" {
		settings.Stoplist = l.StoplistPath
	}
	if l.CorpusPath != "" {
		settings.Corpus = l.CorpusPath
	}

	stops, err := LoadStopList(settings.Stoplist)
	if err != nil {
		return nil, err
	}

	table, err := l.loadCorpus(ctx, settings)
	if err != nil {
		return nil, err
	}
	if settings.StemFallback && table != nil {
		table = corpus.WithStemFallback(table)
	}

	return rake.New(rake.Options{
		StopWords:    stops,
		Corpus:       table,
		PhraseLength: settings.PhraseLength,
		MinWordSize:  settings.MinWordSize,
	})
}

func (l *Loader) loadCorpus(ctx context.Context, settings *Settings) (corpus.Table, error) {
	path := settings.Corpus
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		if settings.SampleCorpus == "" {
			return nil, fmt.Errorf("corpus %s: %w", path, err)
		}
		path = settings.SampleCorpus
	}

	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		table, err := sqlitecorpus.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("load corpus: %w", err)
		}
		return table, nil
	}

	table, err := corpus.LoadJSON(path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return table, nil
}
