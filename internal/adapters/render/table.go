package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/colortools/internal/ui/style"
)

const (
	tableGap = "  "
	// maxCellWidth bounds the match list cells unless truncation is disabled.
	maxCellWidth = 48
	ellipsis     = "…"
	noMatches    = "NO MATCHES"
	noSimilar    = "NO SIMILAR"
)

var columnHeaders = map[domain.Column]string{
	domain.ColumnColor:   "Color",
	domain.ColumnHex:     "HEX",
	domain.ColumnRGB:     "RGB",
	domain.ColumnHSL:     "HSL",
	domain.ColumnMatches: "Matches",
	domain.ColumnSimilar: "Similar",
}

// table renders one row per report. Cells are left aligned, the last
// column is not padded.
func (r *Renderer) table(lr *lipgloss.Renderer, reports []domain.Report, opts domain.RenderOptions) []string {
	cols := opts.Columns
	if len(cols) == 0 {
		cols = domain.AllColumns
	}

	var rows [][]string
	if !opts.NoHeaders {
		bold := lr.NewStyle().Bold(true).Foreground(style.Iris)
		header := make([]string, len(cols))
		for i, c := range cols {
			header[i] = bold.Render(columnHeaders[c])
		}
		rows = append(rows, header)
	}
	for _, rep := range reports {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = cell(lr, rep, c, opts.NoTruncate)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for i, v := range row {
			widths[i] = max(widths[i], lipgloss.Width(v))
		}
	}

	lines := make([]string, len(rows))
	for n, row := range rows {
		var b strings.Builder
		for i, v := range row {
			if i > 0 {
				b.WriteString(tableGap)
			}
			if i < len(row)-1 {
				v = padRight(v, widths[i])
			}
			b.WriteString(v)
		}
		lines[n] = b.String()
	}
	return lines
}

func cell(lr *lipgloss.Renderer, rep domain.Report, col domain.Column, noTruncate bool) string {
	var v string
	switch col {
	case domain.ColumnColor:
		return chip(lr, rep.Hex)
	case domain.ColumnHex:
		return rep.Hex
	case domain.ColumnRGB:
		return rep.RGB
	case domain.ColumnHSL:
		return rep.HSL
	case domain.ColumnMatches:
		v = noMatches
		if len(rep.Matches) > 0 {
			names := make([]string, len(rep.Matches))
			for i, m := range rep.Matches {
				names[i] = m.Name
			}
			v = strings.Join(names, ", ")
		}
	case domain.ColumnSimilar:
		v = noSimilar
		if len(rep.MostSimilar) > 0 {
			names := make([]string, len(rep.MostSimilar))
			for i, m := range rep.MostSimilar {
				names[i] = fmt.Sprintf("%s (%.2f%%)", m.Name, m.Percent)
			}
			v = strings.Join(names, ", ")
		}
	}

	if noTruncate {
		return v
	}
	return runewidth.Truncate(v, maxCellWidth, ellipsis)
}

// padRight fills v with spaces up to width display cells. Styling is zero width.
func padRight(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}
