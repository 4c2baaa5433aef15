// Package render writes color reports as swatches, tables, JSON or YAML.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/colortools/internal/engine/grid"
	"go.trai.ch/colortools/internal/ui/output"
	"go.trai.ch/zerr"
)

const (
	// gridMarginX is the gap in cells between report columns.
	gridMarginX = 2
	// gridMarginY is the number of blank lines between report rows.
	gridMarginY = 1
)

// Renderer implements ports.Renderer.
type Renderer struct {
	profile func() termenv.Profile
}

// New creates a Renderer that styles output with the given color profile selector.
func New(profile func() termenv.Profile) *Renderer {
	if profile == nil {
		profile = output.ColorProfileTrueColor
	}
	return &Renderer{profile: profile}
}

// Render writes reports to w in opts.Format.
func (r *Renderer) Render(w io.Writer, reports []domain.Report, opts domain.RenderOptions) error {
	switch opts.Format {
	case domain.FormatJSON:
		return writeJSON(w, reports)
	case domain.FormatYAML:
		return writeYAML(w, reports)
	case domain.FormatLong:
		return writeLines(w, r.table(output.NewRenderer(w, r.profile), reports, opts))
	case domain.FormatHex, "":
		return writeLines(w, r.text(output.NewRenderer(w, r.profile), reports, opts))
	default:
		return zerr.With(
			zerr.Wrap(domain.ErrUnsupportedFormat, "unsupported output format"),
			"format", string(opts.Format),
		)
	}
}

// text lays report blocks out in a grid when the terminal width is known,
// otherwise one block per row.
func (r *Renderer) text(lr *lipgloss.Renderer, reports []domain.Report, opts domain.RenderOptions) []string {
	blocks := make([]grid.Block, len(reports))
	for i, rep := range reports {
		blocks[i] = grid.NewBlock(reportLines(lr, rep))
	}

	width := opts.Width
	if opts.SingleColumn {
		width = 0
	}
	return grid.Columnize(blocks, width, gridMarginX, gridMarginY)
}

func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return domain.Fail(domain.ErrRenderFailed, err.Error(), err)
	}
	return nil
}
