// Package config loads extractor settings and resource files and wires
// them into ready components.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the extractor configuration file.
type Settings struct {
	Stoplist     string `yaml:"stoplist"`
	Corpus       string `yaml:"corpus"`
	SampleCorpus string `yaml:"sample_corpus"`
	PhraseLength int    `yaml:"phrase_length"`
	MinWordSize  int    `yaml:"min_word_size"`
	StemFallback bool   `yaml:"stem_fallback"`
}

// LoadSettings reads a YAML settings file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return &s, nil
}

// LoadStopList reads a stop-word list. YAML files carry a terms: list;
// anything else is treated as newline-separated words, one per line,
// with blank lines and #-comments skipped.
func LoadStopList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stop list: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var sl struct {
			Terms []string `yaml:"terms"`
		}
		if err := yaml.Unmarshal(data, &sl); err != nil {
			return nil, fmt.Errorf("parse stop list %s: %w", path, err)
		}
		return sl.Terms, nil
	}

	var terms []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms, nil
}
