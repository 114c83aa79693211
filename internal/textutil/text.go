package textutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// StripHTML returns the text of an HTML fragment: every text node trimmed,
// empty ones dropped, the rest joined by single spaces. Script and style
// bodies are not text.
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// html.Parse only fails on reader errors; a strings.Reader has none
		return CleanText(fragment)
	}

	var parts []string
	for _, n := range doc.Nodes {
		parts = appendText(parts, n)
	}
	return CleanText(strings.Join(parts, " "))
}

func appendText(parts []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			parts = append(parts, t)
		}
		return parts
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendText(parts, c)
	}
	return parts
}
