// Package grid packs fixed-size text blocks into the fewest rows that fit a width.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block is a rectangle of pre-rendered text.
// Width is measured in terminal cells, so styling escape sequences do not count.
type Block struct {
	Lines []string
	Width int
}

// NewBlock creates a Block and measures its display width.
func NewBlock(lines []string) Block {
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return Block{Lines: lines, Width: w}
}

// placeholder fills grid cells left empty by a short last column.
var placeholder = Block{Lines: []string{""}}

// Plan picks the smallest row count whose column-major packing of the given
// block widths fits within maxWidth. Each column is as wide as its widest
// block and columns are separated by marginX cells. The search stops at the
// first fit. When nothing fits, it falls back to one block per row.
// It returns zeros for an empty input or a negative width.
func Plan(widths []int, maxWidth, marginX int) (rows, cols int) {
	n := len(widths)
	if n == 0 || maxWidth < 0 {
		return 0, 0
	}
	marginX = max(marginX, 0)

	for rows = 1; rows <= n; rows++ {
		cols = ceilDiv(n, rows)
		if packedWidth(widths, rows, cols, marginX) <= maxWidth {
			return rows, cols
		}
	}

	return n, 1
}

// packedWidth is the total width of widths laid out column-major in rows rows.
func packedWidth(widths []int, rows, cols, marginX int) int {
	total := marginX * (cols - 1)
	for c := range cols {
		colWidth := 0
		for r := range rows {
			i := c*rows + r
			if i >= len(widths) {
				break
			}
			colWidth = max(colWidth, widths[i])
		}
		total += colWidth
	}
	return total
}

// Columnize lays blocks out in a grid that fits maxWidth and returns the output lines.
// Blocks fill the grid column by column. marginX spaces separate columns and
// marginY blank lines separate grid rows. Empty input or a negative width yields nil.
func Columnize(blocks []Block, maxWidth, marginX, marginY int) []string {
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		widths[i] = b.Width
	}

	rows, cols := Plan(widths, maxWidth, marginX)
	if rows == 0 {
		return nil
	}
	marginX = max(marginX, 0)
	marginY = max(marginY, 0)

	cells := make([][]Block, rows)
	colWidths := make([]int, cols)
	for r := range rows {
		cells[r] = make([]Block, cols)
		for c := range cols {
			i := c*rows + r
			if i < len(blocks) {
				cells[r][c] = blocks[i]
			} else {
				cells[r][c] = placeholder
			}
			colWidths[c] = max(colWidths[c], cells[r][c].Width)
		}
	}

	gap := strings.Repeat(" ", marginX)
	var out []string

	for r, row := range cells {
		if r > 0 {
			for range marginY {
				out = append(out, "")
			}
		}

		height := 0
		for _, cell := range row {
			height = max(height, len(cell.Lines))
		}

		for k := range height {
			out = append(out, zip(row, k, colWidths, gap))
		}
	}

	return out
}

// zip joins line k of every cell in row. The line ends after the last cell
// that has a line k, so padding and gaps never trail but block content is kept as is.
func zip(row []Block, k int, colWidths []int, gap string) string {
	last := -1
	for c, cell := range row {
		if k < len(cell.Lines) && cell.Lines[k] != "" {
			last = c
		}
	}

	var b strings.Builder
	for c := 0; c <= last; c++ {
		line := ""
		if k < len(row[c].Lines) {
			line = row[c].Lines[k]
		}
		if c > 0 {
			b.WriteString(gap)
		}
		if c < last {
			line = pad(line, colWidths[c])
		}
		b.WriteString(line)
	}
	return b.String()
}

// pad right-fills line with spaces up to width display cells.
func pad(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
