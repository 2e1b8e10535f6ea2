// Package markup provides a forward-only cursor over a parsed HTML tree and
// the run collector built on top of it.
//
// # Architecture
//
// Stat block pages print most fields as unlabeled prose between bold
// labels, line breaks and action icons:
//
//	<b>HP</b> 15; <b>Hardness</b> 5<br>
//
// Load parses a page with golang.org/x/net/html and Root locates the
// content node with a cascadia selector (ContentSelector for detail pages).
// The resulting Cursor walks that subtree in document order and never
// leaves it, so navigation and footer markup cannot leak into a field.
//
// Cursors are values. Copying a cursor forks the traversal position, and
// nothing in this package mutates the underlying document.
//
// # Components
//
//   - Cursor: position in the content subtree with Next, Skip,
//     AdvanceUntil and Find
//   - Predicate: node tests (Element, ClassIs, Bold, BoldIn, AnyBold)
//     combined with Any and All
//   - Stop: where a run ends, at tags such as Line and Section or at bold
//     labels added with OrBold
//   - Collect: joins the text from a cursor to a Stop into one run, with
//     action icons replaced by their alt text
//
// # Usage
//
//	c, err := markup.Load(r, markup.ContentSelector)
//	hp, ok := c.Find(markup.Bold("HP"))
//	run, next := markup.Collect(hp, markup.Line)
package markup
