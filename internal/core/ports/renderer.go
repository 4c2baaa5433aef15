package ports

import (
	"io"

	"go.trai.ch/colortools/internal/core/domain"
)

// Renderer writes color reports in the requested output format.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes reports to w. Output order follows the reports slice.
	Render(w io.Writer, reports []domain.Report, opts domain.RenderOptions) error
}
