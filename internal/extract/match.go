package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
)

// match is one regexp match with named groups. A group that did not take
// part in the match is absent, which is distinct from matching empty text.
type match struct {
	re   *regexp.Regexp
	text string
	loc  []int
}

func find(re *regexp.Regexp, text string) (match, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return match{}, false
	}
	return match{re: re, text: text, loc: loc}, true
}

// group returns the text of the named group and whether it participated.
func (m match) group(name string) (string, bool) {
	if m.re == nil {
		return "", false
	}
	i := m.re.SubexpIndex(name)
	if i < 0 || m.loc[2*i] < 0 {
		return "", false
	}
	return m.text[m.loc[2*i]:m.loc[2*i+1]], true
}

// str returns the trimmed group text, or "" when absent.
func (m match) str(name string) string {
	s, _ := m.group(name)
	return strings.TrimSpace(s)
}

// optional returns the trimmed group text, or nil when the group is absent
// or blank.
func (m match) optional(name string) *string {
	s := m.str(name)
	if s == "" {
		return nil
	}
	return &s
}

func (m match) integer(name string) (int, bool) {
	s, ok := m.group(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m match) intPtr(name string) *int {
	n, ok := m.integer(name)
	if !ok {
		return nil
	}
	return &n
}

// splitOutside splits s on sep wherever sep is not nested inside
// parentheses or brackets. Parts are trimmed and blank parts dropped; the
// result is never nil.
func splitOutside(s string, sep rune) []string {
	parts := []string{}
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = appendTrimmed(parts, s[start:i])
				start = i + len(string(sep))
			}
		}
	}
	return appendTrimmed(parts, s[start:])
}

func appendTrimmed(parts []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		parts = append(parts, s)
	}
	return parts
}

// splitList splits a comma separated list, keeping parenthesized commas.
func splitList(s string) []string {
	return splitOutside(s, ',')
}

// line collects the squashed run from c to the next line or section break.
func line(c markup.Cursor, stop markup.Stop) (string, markup.Cursor) {
	run, end := markup.Collect(c, stop)
	return markup.Squash(run), end
}

// findBefore looks for want from c onwards, giving up at the first node
// matching stop. The original cursor is returned on a miss.
func findBefore(c markup.Cursor, want, stop markup.Predicate) (markup.Cursor, bool) {
	probe := c
	for !probe.Done() {
		n := probe.Node()
		if want(n) {
			return probe, true
		}
		if stop(n) {
			break
		}
		probe.Next()
	}
	return c, false
}

// trimLabel removes a leading label word from a run.
func trimLabel(run, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(run, label))
}
