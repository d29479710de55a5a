// Command extract-url fetches a web page, strips its markup, and
// extracts ranked keyword phrases from the visible text.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cognicore/rake/internal/htmltext"
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
		timeout      = flag.Duration("timeout", 30*time.Second, "HTTP fetch timeout")
	)
	flag.Parse()

	url := flag.Arg(0)
	if url == "" {
		log.Fatal("usage: extract-url [flags] <url>")
	}

	loader := &config.Loader{
		SettingsPath: *settingsPath,
		StoplistPath: *stoplistPath,
		CorpusPath:   *corpusPath,
	}
	extractor, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("init extractor: %v", err)
	}

	text, err := fetch(url, *timeout)
	if err != nil {
		log.Fatalf("fetch %s: %v", url, err)
	}

	phrases := extractor.Phrases(text, rake.PhraseOptions{
		Limit:         *top,
		Abbreviations: *abbrevs,
	})

	if *asJSON {
		var abbreviations map[string]string
		if *abbrevs {
			abbreviations = extractor.Abbreviations(text)
		}
		rep := report.New().Build(url, phrases, abbreviations)
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

func fetch(url string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	return htmltext.Extract(resp.Body)
}
