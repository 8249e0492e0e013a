package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/littlelemon/internal/model"
)

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := ansi.StringWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(Out, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(Out, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(Out, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Chips renders one toggle per category, e.g. "☑ Salads  ☐ Beverages".
func Chips(categories []string, sel model.Selection) string {
	t := Current()
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		if sel[c] {
			parts = append(parts, C(t.Accent, t.ChipOn+" "+c))
		} else {
			parts = append(parts, C(t.Muted, t.ChipOff+" "+c))
		}
	}
	return strings.Join(parts, "  ")
}

// ItemLine renders "Title ....... $9.99" in exactly width cells. Long
// titles are truncated.
func ItemLine(it model.MenuItem, width int) string {
	t := Current()
	price := "$" + it.Price
	room := width - ansi.StringWidth(price) - 2
	if room < 4 {
		room = 4
	}
	title := ansi.Truncate(it.Title, room, "…")
	leaders := width - ansi.StringWidth(title) - ansi.StringWidth(price) - 2
	if leaders < 1 {
		leaders = 1
	}
	return title + " " + C(t.Muted, strings.Repeat(t.Leader, leaders)) + " " + price
}

// SectionLines renders sections as a header line followed by item lines.
func SectionLines(sections []model.Section, width int) []string {
	t := Current()
	if len(sections) == 0 {
		return []string{C(t.Muted, "no matching items")}
	}
	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, C(t.Accent, s.Title)+C(t.Muted, fmt.Sprintf(" (%d)", len(s.Items))))
		for _, it := range s.Items {
			lines = append(lines, "  "+ItemLine(it, width-2))
		}
	}
	return lines
}

// FlatLines renders items without grouping, one numbered line each.
func FlatLines(items []model.MenuItem, width int) []string {
	t := Current()
	if len(items) == 0 {
		return []string{C(t.Muted, "no matching items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		line := ItemLine(it, width-len(idx)-1-ansi.StringWidth(it.Category)-3)
		out = append(out, fmt.Sprintf("%s %s %s", C(t.Muted, idx), line, C(t.Muted, "["+it.Category+"]")))
	}
	return out
}
