package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ContentSelector matches the main content node of a detail page.
const ContentSelector = "span#ctl00_MainContent_DetailedOutput"

// ErrNoContent is returned when a page has no node matching the content selector.
var ErrNoContent = errors.New("content node not found")

// Cursor is a traversal position inside the subtree of a bound node.
// The zero Cursor is exhausted.
type Cursor struct {
	// node is the current position; nil once the traversal has left bound.
	node *html.Node

	// bound is the subtree root. Traversal never escapes it.
	bound *html.Node
}

// New returns a cursor positioned at n and bounded to its subtree.
func New(n *html.Node) Cursor {
	return Cursor{node: n, bound: n}
}

// Root locates the first node matching selector in doc and returns a cursor
// bounded to it.
func Root(doc *html.Node, selector string) (Cursor, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	n := sel.MatchFirst(doc)
	if n == nil {
		return Cursor{}, fmt.Errorf("%w: %s", ErrNoContent, selector)
	}
	return New(n), nil
}

// Load parses a page and returns a cursor over its content node.
func Load(r io.Reader, selector string) (Cursor, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Cursor{}, fmt.Errorf("failed to parse page: %w", err)
	}
	return Root(doc, selector)
}

// Done reports whether the cursor has run past the end of its subtree.
func (c Cursor) Done() bool { return c.node == nil }

// Node returns the current node, or nil when Done.
func (c Cursor) Node() *html.Node { return c.node }

// Bound returns the subtree root the cursor is confined to.
func (c Cursor) Bound() *html.Node { return c.bound }

// Next advances to the next node in document order, descending into
// children first. It returns false at the end of the subtree.
func (c *Cursor) Next() bool {
	if c.node == nil {
		return false
	}
	if c.node.FirstChild != nil {
		c.node = c.node.FirstChild
		return true
	}
	return c.Skip()
}

// Skip advances to the first node after the current node's subtree.
func (c *Cursor) Skip() bool {
	for n := c.node; n != nil && n != c.bound; n = n.Parent {
		if n.NextSibling != nil {
			c.node = n.NextSibling
			return true
		}
	}
	c.node = nil
	return false
}

// AdvanceUntil moves forward until pred holds for the current node. The
// current node is tested first. It returns false, leaving the cursor Done,
// when no later node satisfies pred.
func (c *Cursor) AdvanceUntil(pred Predicate) bool {
	for c.node != nil {
		if pred(c.node) {
			return true
		}
		c.Next()
	}
	return false
}

// Find is AdvanceUntil on a copy. The receiver is left untouched, so a
// missing optional field keeps the caller's position.
func (c Cursor) Find(pred Predicate) (Cursor, bool) {
	found := c
	if !found.AdvanceUntil(pred) {
		return c, false
	}
	return found, true
}

// IsElement reports whether the current node is an element with the given tag.
func (c Cursor) IsElement(tag string) bool {
	return c.node != nil && c.node.Type == html.ElementNode && c.node.Data == tag
}

// IsText reports whether the current node is a text node.
func (c Cursor) IsText() bool {
	return c.node != nil && c.node.Type == html.TextNode
}

// Tag returns the current element's tag name, or "" for other nodes.
func (c Cursor) Tag() string {
	if c.node == nil || c.node.Type != html.ElementNode {
		return ""
	}
	return c.node.Data
}

// Class returns the current element's class attribute.
func (c Cursor) Class() string { return c.Attr("class") }

// HasClass reports whether the current element carries class.
func (c Cursor) HasClass(class string) bool {
	return c.node != nil && hasClass(c.node, class)
}

// Attr returns the value of the current element's attribute key.
func (c Cursor) Attr(key string) string {
	if c.node == nil {
		return ""
	}
	return Attr(c.node, key)
}

// Text returns the literal text of the current node's subtree.
func (c Cursor) Text() string {
	if c.node == nil {
		return ""
	}
	return Text(c.node)
}

// Attr returns the value of attribute key on n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text returns the concatenated text nodes of n's subtree.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// Squash collapses every run of whitespace, non-breaking spaces included,
// into one space and trims the ends.
func Squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
