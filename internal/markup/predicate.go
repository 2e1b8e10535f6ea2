package markup

import (
	"slices"

	"golang.org/x/net/html"
)

// Predicate classifies a node.
type Predicate func(n *html.Node) bool

// Element matches elements with any of the given tags.
func Element(tags ...string) Predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && slices.Contains(tags, n.Data)
	}
}

// ClassIs matches elements carrying class.
func ClassIs(class string) Predicate {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

// AnyBold matches every bold label.
func AnyBold(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "b" || n.Data == "strong")
}

// Bold matches a bold label whose text is exactly label.
func Bold(label string) Predicate {
	return BoldIn(label)
}

// BoldIn matches a bold label whose text is one of labels.
func BoldIn(labels ...string) Predicate {
	return func(n *html.Node) bool {
		return AnyBold(n) && slices.Contains(labels, Squash(Text(n)))
	}
}

// Any matches when at least one of preds matches.
func Any(preds ...Predicate) Predicate {
	return func(n *html.Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}

// All matches when every pred matches.
func All(preds ...Predicate) Predicate {
	return func(n *html.Node) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}
}
