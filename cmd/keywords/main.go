// Command keywords extracts ranked keyword phrases from a text file or
// stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/config"
	"github.com/cognicore/rake/pkg/rake/report"
)

func main() {
	var (
		settingsPath = flag.String("config", "", "path to YAML settings file")
		stoplistPath = flag.String("stoplist", "data/stoplist.txt", "path to stop word list")
		corpusPath   = flag.String("corpus", "", "path to frequency corpus (.json, .db or .sqlite)")
		top          = flag.Int("top", 0, "number of phrases to return (0 = suggested count)")
		abbrevs      = flag.Bool("abbreviations", false, "merge abbreviation expansions into the ranking")
		asJSON       = flag.Bool("json", false, "emit a JSON report")
	)
	flag.Parse()

	loader := &config.Loader{
		SettingsPath: *settingsPath,
		StoplistPath: *stoplistPath,
		CorpusPath:   *corpusPath,
	}
	extractor, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("init extractor: %v", err)
	}

	source, text := readInput(flag.Arg(0))

	phrases := extractor.Phrases(text, rake.PhraseOptions{
		Limit:         *top,
		Abbreviations: *abbrevs,
	})

	if *asJSON {
		var abbreviations map[string]string
		if *abbrevs {
			abbreviations = extractor.Abbreviations(text)
		}
		rep := report.New().Build(source, phrases, abbreviations)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	for _, p := range phrases {
		fmt.Printf("%.4f\t%s\n", p.Score, p.Text)
	}
}

func readInput(path string) (source, text string) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		return "stdin", string(data)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	return path, string(data)
}
