// Package htmltext reduces an HTML document to its visible text.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract returns the text content of the HTML document read from r,
// skipping script and style elements and collapsing whitespace.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(collapseBlankRuns(buf.String())), nil
}

// collapseBlankRuns squeezes runs of blank lines down to one newline so
// sentence segmentation still sees line boundaries.
func collapseBlankRuns(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
