package termview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vango-dev/tooltip/pkg/tooltip"
)

// pxPerSpace converts pixel spacing to a number of spaces.
const pxPerSpace = 5

var glyphs = map[string]string{
	"circle":   "●",
	"square":   "■",
	"diamond":  "◆",
	"triangle": "▲",
	"cross":    "✚",
	"star":     "★",
	"wye":      "Y",
}

// Styles controls the look of the printed tooltip.
type Styles struct {
	Border  lipgloss.Border
	Frame   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Classes map[string]lipgloss.Style
}

// DefaultStyles returns the styles used by Render. Cells with the key
// class are dimmed and title cells are bold.
func DefaultStyles(cfg tooltip.Config) Styles {
	return Styles{
		Border: lipgloss.RoundedBorder(),
		Frame:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Classes: map[string]lipgloss.Style{
			cfg.Class("key"):   lipgloss.NewStyle().Faint(true),
			cfg.Class("title"): lipgloss.NewStyle().Bold(true),
		},
	}
}

// Render prints n with DefaultStyles.
func Render(n tooltip.Normalized, cfg tooltip.Config) string {
	return RenderWith(n, cfg, DefaultStyles(cfg))
}

// RenderWith prints n with the given styles. Deferred content is printed
// as its markup.
func RenderWith(n tooltip.Normalized, cfg tooltip.Config, styles Styles) string {
	if n.IsDeferred() {
		return n.Deferred() + "\n"
	}
	if len(n.Content) == 0 {
		return ""
	}

	rows := make([][]string, len(n.Content))
	for i, row := range n.Content {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cellText(cell, styles)
		}
	}

	if n.DisplayFormat == tooltip.FormatTable {
		return renderTable(rows, styles) + "\n"
	}
	return renderFlow(rows, cfg)
}

func renderTable(rows [][]string, styles Styles) string {
	t := table.New().
		Border(styles.Border).
		BorderStyle(styles.Frame).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		Rows(rows...)
	return t.String()
}

func renderFlow(rows [][]string, cfg tooltip.Config) string {
	gap := strings.Repeat(" ", max(1, int(math.Round(cfg.Spacing/pxPerSpace))))
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.TrimRight(strings.Join(row, gap), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func cellText(cell tooltip.Cell, styles Styles) string {
	d, ok := tooltip.AsDescriptor(cell)
	if !ok {
		return tooltip.FormatValue(cell)
	}
	if d.Type == tooltip.CellIcon {
		glyph, known := glyphs[d.Shape]
		if !known {
			glyph = "•"
		}
		if d.Color == "" {
			return glyph
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render(glyph)
	}

	text := tooltip.FormatValue(d.Value)
	for _, class := range strings.Fields(d.ClassName) {
		if style, ok := styles.Classes[class]; ok {
			text = style.Render(text)
		}
	}
	return text
}
