package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document is a single report for one subject and a list otherwise.
func document(reports []domain.Report) any {
	if len(reports) == 1 {
		return reports[0]
	}
	if reports == nil {
		return []domain.Report{}
	}
	return reports
}

func writeJSON(w io.Writer, reports []domain.Report) error {
	if err := json.NewEncoder(w).Encode(document(reports)); err != nil {
		return zerr.With(domain.Fail(domain.ErrRenderFailed, err.Error(), err), "format", string(domain.FormatJSON))
	}
	return nil
}

func writeYAML(w io.Writer, reports []domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document(reports)); err != nil {
		return zerr.With(domain.Fail(domain.ErrRenderFailed, err.Error(), err), "format", string(domain.FormatYAML))
	}
	if err := enc.Close(); err != nil {
		return zerr.With(domain.Fail(domain.ErrRenderFailed, err.Error(), err), "format", string(domain.FormatYAML))
	}
	return nil
}
