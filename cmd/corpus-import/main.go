// Command corpus-import converts a JSON frequency corpus into the
// SQLite encoding used by the extractor's corpus loader.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/rake/pkg/rake/corpus"
	"github.com/cognicore/rake/pkg/rake/corpus/sqlitecorpus"
)

func main() {
	var (
		in  = flag.String("in", "data/word_freqs_sample.json", "JSON corpus to import")
		out = flag.String("out", "corpus.db", "SQLite database to write")
	)
	flag.Parse()

	table, err := corpus.LoadJSON(*in)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	ctx := context.Background()
	if err := sqlitecorpus.Save(ctx, *out, table); err != nil {
		log.Fatalf("save corpus: %v", err)
	}

	log.Printf("imported %d words into %s", table.Len(), *out)
}
