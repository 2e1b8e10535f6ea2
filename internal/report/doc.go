// Package report writes the summary of a scrape run.
//
// SimpleWriter prints a text summary for the terminal and MarkdownWriter
// writes a shareable report with counts, a page outcome chart and the
// per-page failure table. Both implement Writer and can be combined with
// MultiWriter.
package report
