package htmltext

import (
	"strings"
	"testing"
)

func TestExtractVisibleText(t *testing.T) {
	doc := `<html><head><title>Title</title>
<style>body { color: red }</style>
<script>var hidden = true;</script>
</head><body>
<h1>Keyword extraction</h1>
<p>Ranks candidate phrases.</p>
</body></html>`

	got, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	for _, want := range []string{"Title", "Keyword extraction", "Ranks candidate phrases."} {
		if !strings.Contains(got, want) {
			t.Errorf("Extract() output missing %q:\n%s", want, got)
		}
	}
	for _, hidden := range []string{"color: red", "var hidden"} {
		if strings.Contains(got, hidden) {
			t.Errorf("Extract() output leaks %q:\n%s", hidden, got)
		}
	}
}

func TestExtractCollapsesBlankRuns(t *testing.T) {
	doc := "<p>alpha</p>\n\n\n\n<p>bravo</p>"
	got, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if strings.Contains(got, "\n\n") {
		t.Errorf("Extract() kept a blank run:\n%q", got)
	}
}

func TestExtractPlainText(t *testing.T) {
	// the html parser accepts bare text; extraction is a no-op pass
	got, err := Extract(strings.NewReader("just plain text"))
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if got != "just plain text" {
		t.Errorf("Extract() = %q, want the input text", got)
	}
}
