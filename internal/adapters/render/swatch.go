package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/colortools/internal/ui/style"
)

const (
	swatchWidth   = 20
	swatchHeight  = 9
	swatchPadding = 2
	// maxListed caps the matches shown next to a swatch.
	maxListed = 3
	chipWidth = 5
)

// swatch draws c as a block of half-block cells framed by a checkerboard.
func swatch(lr *lipgloss.Renderer, c domain.Color) []string {
	checker := [2]lipgloss.Style{
		lr.NewStyle().Background(style.CheckerLight).Foreground(style.CheckerDark),
		lr.NewStyle().Background(style.CheckerDark).Foreground(style.CheckerLight),
	}
	hex := lipgloss.Color(c.Hex())
	fill := lr.NewStyle().Background(hex).Foreground(hex)

	lines := make([]string, swatchHeight)
	for row := range swatchHeight {
		var b strings.Builder
		for col := range swatchWidth {
			if isBorder(row, col) {
				b.WriteString(checker[col%2].Render(style.HalfBlock))
				continue
			}
			b.WriteString(fill.Render(style.HalfBlock))
		}
		lines[row] = b.String()
	}
	return lines
}

func isBorder(row, col int) bool {
	return col < swatchPadding ||
		col >= swatchWidth-swatchPadding ||
		row < swatchPadding-1 ||
		row > swatchHeight-swatchPadding
}

// chip is a small inline sample of the color with the given hex value.
func chip(lr *lipgloss.Renderer, hex string) string {
	return lr.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", chipWidth))
}

// reportLines places the swatch to the left of the color values and matches.
func reportLines(lr *lipgloss.Renderer, rep domain.Report) []string {
	data := []string{
		"HEX: " + rep.Hex,
		"RGB: " + rep.RGB,
		"HSL: " + rep.HSL,
	}

	switch {
	case len(rep.Matches) > 0:
		data = append(data, "", "Exact Matches:")
		for _, m := range rep.Matches[:min(len(rep.Matches), maxListed)] {
			data = append(data, m.Name)
		}
	case len(rep.MostSimilar) > 0:
		data = append(data, "", "Most Similar:")
		for _, m := range rep.MostSimilar[:min(len(rep.MostSimilar), maxListed)] {
			data = append(data, fmt.Sprintf("%s (%.2f%%) %s", chip(lr, m.Value), m.Percent, m.Name))
		}
	}

	sw := swatch(lr, rep.Color)
	lines := make([]string, max(len(sw), len(data)))
	for i := range lines {
		left := strings.Repeat(" ", swatchWidth)
		if i < len(sw) {
			left = sw[i]
		}
		right := ""
		if i < len(data) {
			right = data[i]
		}
		lines[i] = strings.TrimRight(left+"  "+right, " ")
	}
	return lines
}
