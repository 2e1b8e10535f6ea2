package markup

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Stop describes where a run ends: at an element with one of Tags, or at a
// bold label whose text is one of Labels.
type Stop struct {
	Tags   []string
	Labels []string
}

// Line stops at a line break or a section break.
var Line = Stop{Tags: []string{"br", "hr"}}

// Section stops at a section break only.
var Section = Stop{Tags: []string{"hr"}}

// OrBold returns a copy of s that also stops at the given bold labels.
func (s Stop) OrBold(labels ...string) Stop {
	return Stop{
		Tags:   slices.Clone(s.Tags),
		Labels: append(slices.Clone(s.Labels), labels...),
	}
}

// OrTags returns a copy of s that also stops at the given tags.
func (s Stop) OrTags(tags ...string) Stop {
	return Stop{
		Tags:   append(slices.Clone(s.Tags), tags...),
		Labels: slices.Clone(s.Labels),
	}
}

// Matches reports whether n ends a run.
func (s Stop) Matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if slices.Contains(s.Tags, n.Data) {
		return true
	}
	return len(s.Labels) > 0 && BoldIn(s.Labels...)(n)
}

// Collect concatenates the text visited from c up to the first node
// matching stop. The start node never stops the run. Action icons
// contribute their alt text. The returned cursor is positioned at the stop
// node, or Done when the subtree ended first.
func Collect(c Cursor, stop Stop) (string, Cursor) {
	var sb strings.Builder
	for first := true; !c.Done(); first = false {
		n := c.Node()
		if !first && stop.Matches(n) {
			break
		}
		writeRunText(&sb, n)
		c.Next()
	}
	return sb.String(), c
}

// CollectWithin returns the run text of n's whole subtree, icons included.
func CollectWithin(n *html.Node) string {
	run, _ := Collect(New(n), Stop{})
	return run
}

func writeRunText(sb *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		sb.WriteString(n.Data)
	case IsActionIcon(n):
		sb.WriteString(" ")
		sb.WriteString(Attr(n, "alt"))
		sb.WriteString(" ")
	}
}

// IsActionIcon reports whether n is an action glyph image.
func IsActionIcon(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != "img" || Attr(n, "alt") == "" {
		return false
	}
	return hasClass(n, "actiondark") || hasClass(n, "action")
}
