package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

func notListed(n *html.Node) bool {
	return n.Type == html.TextNode && strings.Contains(n.Data, model.NotListedMarker)
}

// TraitDescription reads the body of a trait page: the siblings following
// the first line break after the cursor, up to the next h2. Pages marked as
// not listed yield nil.
func TraitDescription(c markup.Cursor) (*string, markup.Cursor) {
	if _, ok := markup.New(c.Bound()).Find(notListed); ok {
		return nil, c
	}
	if c.Done() {
		empty := ""
		return &empty, c
	}

	start, ok := c.Find(markup.Element("br"))
	if !ok {
		start = c
	}
	var sb strings.Builder
	first := start.Node()
	if !ok {
		sb.WriteString(markup.Text(first))
	}
	for n := first.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.Data == "h2" {
			break
		}
		sb.WriteString(markup.Text(n))
	}
	description := markup.Squash(sb.String())

	end, found := start.Find(markup.Element("h2"))
	if !found {
		for end.Next() {
		}
	}
	return &description, end
}
