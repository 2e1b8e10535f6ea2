package extract

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// paizoProducts prefixes the store link trait pages cite their source with.
const paizoProducts = "https://paizo.com/products/"

var externalLink = markup.All(markup.Element("a"), markup.ClassIs("external-link"))

func paizoLink(n *html.Node) bool {
	return externalLink(n) && strings.HasPrefix(markup.Attr(n, "href"), paizoProducts)
}

// Source reads the citation following the bold "Source" label and returns
// a cursor past the citation link.
func Source(c markup.Cursor) (model.Source, markup.Cursor, error) {
	label, ok := c.Find(markup.Bold("Source"))
	if !ok {
		return model.Source{}, c, missing("source")
	}
	link, ok := label.Find(externalLink)
	if !ok {
		return model.Source{}, c, missing("source")
	}
	return citation(c, link)
}

// SourceLink reads the citation from the first external link pointing at
// the publisher's store, which is how trait pages print their source.
func SourceLink(c markup.Cursor) (model.Source, markup.Cursor, error) {
	link, ok := c.Find(paizoLink)
	if !ok {
		return model.Source{}, c, missing("source")
	}
	return citation(c, link)
}

// citation parses link text of the form "Bestiary pg. 180".
func citation(orig, link markup.Cursor) (model.Source, markup.Cursor, error) {
	run := markup.Squash(link.Text())
	book, page, ok := strings.Cut(run, "pg.")
	if !ok {
		return model.Source{}, orig, mismatch("source", run)
	}
	n, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil {
		return model.Source{}, orig, mismatch("source", run)
	}
	src := model.Source{Book: strings.TrimSpace(book), Page: n}
	if err := src.Validate(); err != nil {
		return model.Source{}, orig, &FieldError{
			Field:  "source",
			Reason: fmt.Errorf("%w: %w", ErrPatternMismatch, err),
			Run:    run,
		}
	}
	end := link
	end.Skip()
	return src, end, nil
}
