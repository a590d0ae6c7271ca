package jsondiff

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// palette colors report output, all attributes are no-ops when disabled
type palette struct {
	added, removed, changed, neutral, highlight *color.Color
}

func newPalette(colorTTY bool) *palette {
	p := &palette{
		added:     color.New(color.FgGreen),
		removed:   color.New(color.FgRed),
		changed:   color.New(color.FgYellow),
		neutral:   color.New(color.FgWhite),
		highlight: color.New(color.FgBlack, color.BgYellow),
	}
	for _, c := range []*color.Color{p.added, p.removed, p.changed, p.neutral, p.highlight} {
		if colorTTY {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) forType(t ChangeType) *color.Color {
	switch t {
	case Added:
		return p.added
	case Removed:
		return p.removed
	case Changed:
		return p.changed
	}
	return p.neutral
}

func gutter(t ChangeType) string {
	switch t {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "~"
	}
	return " "
}

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(diffs Diffs, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, diffs, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report of diffs to w, one line per entry in path
// order. if colorTTY is true it will add
// green "+" for additions
// red "-" for removals
// yellow "~" for changes, including ancestor markers
func FormatPretty(w io.Writer, diffs Diffs, colorTTY bool) error {
	p := newPalette(colorTTY)
	for _, d := range diffs.Sorted() {
		var line string
		switch {
		case d.IsMarker():
			line = fmt.Sprintf("~ %s", d.Path)
		case d.Type == Added:
			line = fmt.Sprintf("+ %s: %s", d.Path, formatValue(d.NewValue))
		case d.Type == Removed:
			line = fmt.Sprintf("- %s: %s", d.Path, formatValue(d.OldValue))
		default:
			line = fmt.Sprintf("~ %s: %s -> %s", d.Path, formatValue(d.OldValue), formatValue(d.NewValue))
		}
		if _, err := fmt.Fprintln(w, p.forType(d.Type).Sprint(line)); err != nil {
			return err
		}
	}
	return nil
}

// FormatLineDiffs writes both texts to w with line numbers, prefixing each
// line with "+", "-" or "~" when it's listed in the matching diffs. The n-th
// changed line of each side are treated as a pair, with colorTTY set the
// characters that differ within a pair are highlighted
func FormatLineDiffs(w io.Writer, left, right string, leftDiffs, rightDiffs []LineDiff, colorTTY bool) error {
	p := newPalette(colorTTY)
	leftLines, rightLines := SplitLines(left), SplitLines(right)

	// pair changed lines in order of appearance
	var leftChanged, rightChanged []string
	for _, d := range leftDiffs {
		if d.Type == Changed && d.LineNumber <= len(leftLines) {
			leftChanged = append(leftChanged, leftLines[d.LineNumber-1])
		}
	}
	for _, d := range rightDiffs {
		if d.Type == Changed && d.LineNumber <= len(rightLines) {
			rightChanged = append(rightChanged, rightLines[d.LineNumber-1])
		}
	}
	leftSpans := make([][]Span, len(leftChanged))
	rightSpans := make([][]Span, len(rightChanged))
	for i := 0; i < len(leftChanged) && i < len(rightChanged); i++ {
		leftSpans[i], rightSpans[i] = IntraLineSpans(leftChanged[i], rightChanged[i])
	}

	width := len(strconv.Itoa(len(leftLines)))
	if n := len(strconv.Itoa(len(rightLines))); n > width {
		width = n
	}

	if _, err := fmt.Fprintln(w, "--- left"); err != nil {
		return err
	}
	if err := formatSide(w, p, leftLines, leftDiffs, leftSpans, width); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "+++ right"); err != nil {
		return err
	}
	return formatSide(w, p, rightLines, rightDiffs, rightSpans, width)
}

func formatSide(w io.Writer, p *palette, lines []string, diffs []LineDiff, spans [][]Span, width int) error {
	types := make(map[int]ChangeType, len(diffs))
	for _, d := range diffs {
		types[d.LineNumber] = d.Type
	}

	changedIdx := 0
	for i, text := range lines {
		t := types[i+1]
		c := p.forType(t)
		if t == "" {
			c = p.neutral
		}
		if t == Changed {
			if changedIdx < len(spans) && spans[changedIdx] != nil {
				text = highlightSpans(p, c, spans[changedIdx])
			} else {
				text = c.Sprint(text)
			}
			changedIdx++
		} else if t != "" {
			text = c.Sprint(text)
		}

		prefix := fmt.Sprintf("%s %*d ", gutter(t), width, i+1)
		if _, err := fmt.Fprintln(w, c.Sprint(prefix)+text); err != nil {
			return err
		}
	}
	return nil
}

func highlightSpans(p *palette, base *color.Color, spans []Span) string {
	b := &strings.Builder{}
	for _, s := range spans {
		if s.Changed {
			b.WriteString(p.highlight.Sprint(s.Text))
		} else {
			b.WriteString(base.Sprint(s.Text))
		}
	}
	return b.String()
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, colorTTY bool) string {
	if ds == nil {
		return "<nil>"
	}
	p := newPalette(colorTTY)
	buf := &bytes.Buffer{}

	unit := "line"
	if ds.Algorithm == AlgTree {
		unit = "node"
	}

	elsColor := p.added
	change := ds.NodeChange()
	sign := "+"
	if change < 0 {
		elsColor = p.removed
		sign = ""
	} else if change == 0 {
		elsColor = p.neutral
		sign = ""
	}
	if change != 1 && change != -1 {
		unit += "s"
	}

	buf.WriteString(elsColor.Sprintf("%s%d", sign, change))
	buf.WriteString(p.neutral.Sprintf(" %s.", unit))
	buf.WriteString(p.added.Sprintf(" %d added.", ds.Added))
	buf.WriteString(p.removed.Sprintf(" %d removed.", ds.Removed))
	buf.WriteString(p.changed.Sprintf(" %d changed.", ds.Changed))
	if ds.Algorithm != "" {
		buf.WriteString(p.neutral.Sprintf(" (%s)", ds.Algorithm))
	}
	buf.WriteRune('\n')

	return buf.String()
}
