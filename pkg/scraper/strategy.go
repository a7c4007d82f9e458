package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Strategy selects candidate release elements from a parsed artist page.
// Bandcamp markup changes over time, so several known shapes are tried together.
type Strategy struct {
	Name   string
	Select func(doc *goquery.Document) *goquery.Selection
}

// SelectorStrategy makes a strategy from a single CSS selector
func SelectorStrategy(name, selector string) Strategy {
	return Strategy{
		Name:   name,
		Select: func(doc *goquery.Document) *goquery.Selection { return doc.Find(selector) },
	}
}

// DefaultStrategies returns strategies for the known artist page layouts:
// album grid on the music page and track listing on single release pages
func DefaultStrategies() []Strategy {
	return []Strategy{
		SelectorStrategy("music-grid", ".music-grid .music-grid-item"),
		SelectorStrategy("track-list", ".track_list .title"),
	}
}

// candidates runs all strategies and returns the union of their matches in document
// order. A node matched by more than one strategy is returned once.
func candidates(doc *goquery.Document, strategies []Strategy) []*goquery.Selection {
	matched := map[*html.Node]*goquery.Selection{}
	for _, st := range strategies {
		sel := st.Select(doc)
		if sel == nil {
			continue
		}
		sel.Each(func(_ int, s *goquery.Selection) {
			node := s.Get(0)
			if node.Type != html.ElementNode {
				return
			}
			if _, ok := matched[node]; !ok {
				matched[node] = s
			}
		})
	}

	res := make([]*goquery.Selection, 0, len(matched))
	if len(matched) == 0 {
		return res
	}
	for _, root := range doc.Nodes {
		walk(root, func(n *html.Node) {
			if s, ok := matched[n]; ok {
				res = append(res, s)
			}
		})
	}
	return res
}

// walk visits n and its descendants in pre-order, which is document order
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
