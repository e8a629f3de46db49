// Package source ingests corpus items from rendered exercise HTML. Each
// translatable text node becomes one item; pairing an English document with
// its translated counterpart yields exemplar pairs for the suggestion
// engine.
package source

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/lingoreef/gosugg"
)

// Item is one corpus entry extracted from HTML. It satisfies the engine's
// accessor contract via Item.English and Item.Translated.
type Item struct {
	ID         string // hash of the English text
	English    string
	Translated string
	Context    string // parent tag path, for human review
}

// English and Translated accessors matching gosugg.NewEngine's signature.
var (
	GetEnglish    = func(it Item) string { return it.English }
	GetTranslated = func(it Item) string { return it.Translated }
)

// ignoredTags contains HTML tags whose content is never translatable.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// Extract parses a document and returns one item per translatable text
// node, in document order. Elements with a data-no-translate attribute and
// ignored tags are skipped; duplicate texts are collapsed to their first
// occurrence.
func Extract(content string) ([]Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var items []Item
	seen := make(map[string]bool)

	var walk func(*html.Node, []string)
	walk = func(n *html.Node, path []string) {
		if n.Type == html.ElementNode {
			if ignoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
			path = append(path, n.Data)
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				hash := gosugg.HashText(text)
				if !seen[hash] {
					seen[hash] = true
					items = append(items, Item{
						ID:      hash,
						English: text,
						Context: contextPath(path),
					})
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, path)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n, nil)
		}
	})

	return items, nil
}

// ExtractPair extracts items from an English document and fills in their
// translations from a structurally identical translated document. Documents
// whose translatable node counts differ cannot be paired.
func ExtractPair(englishHTML, translatedHTML string) ([]Item, error) {
	englishItems, err := Extract(englishHTML)
	if err != nil {
		return nil, err
	}
	translatedItems, err := Extract(translatedHTML)
	if err != nil {
		return nil, err
	}
	if len(englishItems) != len(translatedItems) {
		return nil, fmt.Errorf("document structure mismatch: %d english nodes, %d translated nodes",
			len(englishItems), len(translatedItems))
	}

	for i := range englishItems {
		englishItems[i].Translated = translatedItems[i].English
	}
	return englishItems, nil
}

// contextPath renders the ancestor tag path of a node, outermost first,
// skipping the document scaffolding.
func contextPath(path []string) string {
	var parts []string
	for _, tag := range path {
		if tag == "html" || tag == "head" || tag == "body" {
			continue
		}
		parts = append(parts, tag)
	}
	if len(parts) > 3 {
		parts = parts[len(parts)-3:]
	}
	return strings.Join(parts, " > ")
}
