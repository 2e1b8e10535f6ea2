package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// MarkdownWriter writes the run report as GitHub-flavoured Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(s *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, s)
	w.writeCounts(md, s)
	w.writeChanges(md, s)
	w.writeWarnings(md, s)
	w.writeFailures(md, s)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s *Summary) {
	md.H1("2eTools Scrape Report")
	md.PlainText("")

	cacheOnly := "no"
	if s.CacheOnly {
		cacheOnly = "yes"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + s.RunID + "`"},
			{"Kind", string(s.Kind)},
			{"Collection", s.Collection},
			{"Destination", "`" + s.Destination + "`"},
			{"Cache Only", cacheOnly},
			{"Started", s.StartedAt.Format(timeLayout)},
			{"Duration", s.Duration().Round(1e6).String()},
			{"Status", statusText(s)},
		},
	})
	md.PlainText("")
}

func statusText(s *Summary) string {
	switch s.Status() {
	case "empty":
		return "❌ No records"
	case "partial":
		return "⚠️ Partial"
	default:
		return "✅ Complete"
	}
}

func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, s *Summary) {
	md.H2("Pages")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"Records", strconv.Itoa(s.Records)},
			{"Failures", strconv.Itoa(len(s.Failures))},
			{"Placeholders", strconv.Itoa(s.Placeholders)},
			{"**Total**", "**" + strconv.Itoa(s.Pages) + "**"},
		},
	})
	md.PlainText("")

	if s.HasFailures() || s.Placeholders > 0 {
		w.writePieChart(md, s)
	}
	w.writeAlert(md, s)
}

func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Page Outcomes"),
		piechart.WithShowData(true),
	)

	if s.Records > 0 {
		chart.LabelAndIntValue("Records", uint64(s.Records))
	}
	if n := len(s.Failures); n > 0 {
		chart.LabelAndIntValue("Failures", uint64(n))
	}
	if s.Placeholders > 0 {
		chart.LabelAndIntValue("Placeholders", uint64(s.Placeholders))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s *Summary) {
	switch {
	case s.Records == 0 && s.Pages > 0:
		md.Cautionf("No records were assembled from %d page(s).", s.Pages)
	case s.HasFailures():
		md.Warningf("%d page(s) failed to assemble. See the failure table below.", len(s.Failures))
	case s.Placeholders > 0:
		md.Note(strconv.Itoa(s.Placeholders) + " page(s) could not be fetched and were skipped.")
	default:
		md.Tip("Every page was assembled.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeChanges(md *markdown.Markdown, s *Summary) {
	c := s.Changes
	if c == nil {
		return
	}
	md.H2("Changes")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Documents", "Count"},
		Rows: [][]string{
			{"Added", strconv.Itoa(c.Added)},
			{"Changed", strconv.Itoa(c.Changed)},
			{"Removed", strconv.Itoa(c.Removed)},
			{"Unchanged", strconv.Itoa(c.Unchanged)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, s *Summary) {
	if len(s.Warnings) == 0 {
		return
	}
	md.H2("Warnings")
	md.PlainText("")
	md.BulletList(s.Warnings...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, s *Summary) {
	md.H2("Failures")
	md.PlainText("")

	if !s.HasFailures() {
		md.PlainText("No failed pages.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(s.Failures))
	for i, f := range s.Failures {
		rows[i] = []string{
			strconv.Itoa(f.ID),
			orDash(f.Step),
			orDash(f.Field),
			truncateString(errText(f.Err), 80),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Step", "Field", "Error"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [2eTools scraper](https://github.com/leolwelter/2eTools-scraper)*")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func errText(err error) string {
	if err == nil {
		return "-"
	}
	return err.Error()
}

// truncateString truncates s to maxLen bytes with an ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
