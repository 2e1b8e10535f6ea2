package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const rule = 70

// SimpleWriter writes a plain text summary for the terminal.
type SimpleWriter struct {
	baseWriter

	// verbose lists every failure instead of the first few.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose lists every failure.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// maxListed is how many failures a non-verbose summary prints.
const maxListed = 10

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary as text.
func (w *SimpleWriter) Write(s *Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, s)
	w.writeCounts(&sb, s)
	w.writeWarnings(&sb, s)
	w.writeFailures(&sb, s)
	sb.WriteString(strings.Repeat("=", rule))
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, s *Summary) {
	sb.WriteString(strings.Repeat("=", rule))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "2eTools scrape: %s\n", s.Kind)
	sb.WriteString(strings.Repeat("=", rule))
	sb.WriteString("\n")

	fmt.Fprintf(sb, "Run ID:       %s\n", s.RunID)
	fmt.Fprintf(sb, "Collection:   %s\n", s.Collection)
	fmt.Fprintf(sb, "Destination:  %s\n", s.Destination)
	if s.CacheOnly {
		sb.WriteString("Mode:         cache only\n")
	}
	fmt.Fprintf(sb, "Duration:     %s\n", s.Duration().Round(1e6))
	fmt.Fprintf(sb, "Status:       %s\n\n", s.Status())
}

func (w *SimpleWriter) writeCounts(sb *strings.Builder, s *Summary) {
	fmt.Fprintf(sb, "  pages:        %d\n", s.Pages)
	fmt.Fprintf(sb, "  records:      %d\n", s.Records)
	fmt.Fprintf(sb, "  failures:     %d\n", len(s.Failures))
	fmt.Fprintf(sb, "  placeholders: %d\n\n", s.Placeholders)

	if c := s.Changes; c != nil {
		fmt.Fprintf(sb, "  changes:      +%d ~%d -%d (%d unchanged)\n\n",
			c.Added, c.Changed, c.Removed, c.Unchanged)
	}
}

func (w *SimpleWriter) writeWarnings(sb *strings.Builder, s *Summary) {
	for _, msg := range s.Warnings {
		fmt.Fprintf(sb, "[!] %s\n", msg)
	}
	if len(s.Warnings) > 0 {
		sb.WriteString("\n")
	}
}

func (w *SimpleWriter) writeFailures(sb *strings.Builder, s *Summary) {
	if !s.HasFailures() {
		return
	}

	sb.WriteString(strings.Repeat("-", rule))
	sb.WriteString("\nFAILURES\n")
	sb.WriteString(strings.Repeat("-", rule))
	sb.WriteString("\n")

	failures := s.Failures
	if !w.verbose && len(failures) > maxListed {
		failures = failures[:maxListed]
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Step", "Error"})
	for _, f := range failures {
		t.AppendRow(table.Row{f.ID, location(f.Step, f.Field), errText(f.Err)})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	if rest := len(s.Failures) - len(failures); rest > 0 {
		fmt.Fprintf(sb, "  ... and %d more (use --verbose or --report)\n", rest)
	}
	sb.WriteString("\n")
}

func location(step, field string) string {
	switch {
	case step == "" && field == "":
		return "-"
	case field == "" || field == step:
		return orDash(step)
	case step == "":
		return field
	default:
		return step + "/" + field
	}
}
