package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/leolwelter/2eTools-scraper/internal/markup"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

var (
	sensePattern    = regexp.MustCompile(`(?i)vision|scent|sense`)
	leadingInteger  = regexp.MustCompile(`(?P<n>\d+)`)
	lineBlockTags   = []string{"p", "div", "li", "ul", "ol"}
	abilityFlawKeys = []string{"Ability Flaw", "Ability Flaws", "Ability Flaw(s)"}
)

// AncestrySection is one headed section of an ancestry page. Level is the
// heading level, 0 for text printed before any heading.
type AncestrySection struct {
	model.Section
	Level int

	// Lines holds the section text split at line breaks and block elements.
	Lines []string
}

// AncestrySections walks the rest of the page heading by heading. Every h1,
// h2 or h3 opens a section. Text accumulates across line breaks until a
// table is met, which turns the section body into a grid whose first row
// holds the header cells.
func AncestrySections(c markup.Cursor) ([]AncestrySection, markup.Cursor) {
	sections := []AncestrySection{}
	cur := AncestrySection{Lines: []string{}}
	var sb strings.Builder

	flushLine := func() {
		if l := markup.Squash(sb.String()); l != "" {
			cur.Lines = append(cur.Lines, l)
		}
		sb.Reset()
	}
	closeSection := func() {
		flushLine()
		if cur.Header == "" && len(cur.Lines) == 0 && cur.Table == nil {
			return
		}
		if cur.Table == nil {
			cur.Text = strings.Join(cur.Lines, "\n")
		}
		sections = append(sections, cur)
	}

	for !c.Done() {
		n := c.Node()
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3":
				closeSection()
				cur = AncestrySection{
					Section: model.Section{Header: markup.Squash(markup.Text(n))},
					Level:   int(n.Data[1] - '0'),
					Lines:   []string{},
				}
				c.Skip()
				continue
			case "table":
				flushLine()
				cur.Table = readTable(n)
				c.Skip()
				continue
			case "br":
				flushLine()
			default:
				if slices.Contains(lineBlockTags, n.Data) {
					flushLine()
				}
			}
		} else if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		c.Next()
	}
	closeSection()
	return sections, c
}

func readTable(n *html.Node) [][]string {
	grid := [][]string{}
	goquery.NewDocumentFromNode(n).Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, markup.Squash(cell.Text()))
		})
		grid = append(grid, cells)
	})
	return grid
}

// ApplySections distributes ancestry sections over the record. Sections
// before the first h2 form the description. Known statistic headings fill
// their fields, sense headings go to senses and everything else to extras.
// Hit points are mandatory.
func ApplySections(a *model.Ancestry, sections []AncestrySection) error {
	seenStats := false
	foundHP := false
	for _, s := range sections {
		if s.Level == 2 {
			seenStats = true
		}
		if !seenStats {
			a.Description = append(a.Description, s.Section)
			continue
		}

		switch header := s.Header; {
		case header == "Hit Points":
			m, ok := find(leadingInteger, s.Text)
			if !ok {
				return mismatch("hitPoints", s.Text)
			}
			hp, _ := m.integer("n")
			if hp <= 0 {
				return mismatch("hitPoints", s.Text)
			}
			a.HitPoints = hp
			foundHP = true
		case header == "Size":
			a.Size = markup.Squash(s.Text)
		case header == "Speed":
			a.Speed = markup.Squash(s.Text)
		case header == "Ability Boosts":
			a.AbilityBoosts = append(a.AbilityBoosts, s.Lines...)
		case slices.Contains(abilityFlawKeys, header):
			a.AbilityFlaws = append(a.AbilityFlaws, s.Lines...)
		case header == "Languages":
			a.Languages = append(a.Languages, s.Lines...)
		case sensePattern.MatchString(header):
			a.Senses = append(a.Senses, s.Section)
		default:
			a.Extras = append(a.Extras, s.Section)
		}
	}
	if !foundHP {
		return missing("hitPoints")
	}
	return nil
}
