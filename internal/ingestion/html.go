package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements that end a visual line in a rendered
// resume export.
const blockSelector = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6"

// HTMLToText converts an HTML resume export to plain text, one block
// element per line. Script, style, and head content is dropped.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, head").Remove()

	// Force line breaks after block elements so goquery's text flattening
	// does not glue adjacent lines together.
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	lines := strings.Split(body.Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimRight(line, " \t"))
	}
	return strings.Join(out, "\n"), nil
}
