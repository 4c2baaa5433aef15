package app

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ShowOptions configures the Show method.
type ShowOptions struct {
	Format       string
	Sort         bool
	SingleColumn bool
	Columns      string
	NoHeaders    bool
	NoTruncate   bool
}

// Show resolves every argument to one or more colors, matches them against
// the palette and renders the reports to w.
//
// An argument is tried as a color first, then as a palette name. Arguments
// containing "*" expand to every palette color whose name matches.
func (a *App) Show(ctx context.Context, w io.Writer, args []string, opts ShowOptions) error {
	renderOpts, err := renderOptions(opts)
	if err != nil {
		return err
	}

	if err := a.store.Read(); err != nil {
		return err
	}

	subjects, err := a.resolveSubjects(args)
	if err != nil {
		return err
	}
	subjects = domain.Dedupe(subjects)
	if opts.Sort {
		slices.SortStableFunc(subjects, domain.CompareHSL)
	}

	palette := a.loadPalette()

	reports, err := matchAll(ctx, subjects, palette)
	if err != nil {
		return err
	}

	if renderOpts.Format == domain.FormatHex && !renderOpts.SingleColumn {
		renderOpts.Width = a.terminal.Width()
	}
	return a.renderer.Render(w, reports, renderOpts)
}

func renderOptions(opts ShowOptions) (domain.RenderOptions, error) {
	format, err := domain.ParseOutputFormat(opts.Format)
	if err != nil {
		return domain.RenderOptions{}, err
	}

	ro := domain.RenderOptions{
		Format:       format,
		SingleColumn: opts.SingleColumn,
		NoHeaders:    opts.NoHeaders,
		NoTruncate:   opts.NoTruncate,
	}

	if format == domain.FormatLong {
		if ro.Columns, err = domain.ParseColumns(opts.Columns); err != nil {
			return domain.RenderOptions{}, err
		}
	}
	return ro, nil
}

func (a *App) resolveSubjects(args []string) ([]domain.Color, error) {
	var subjects []domain.Color
	for _, arg := range args {
		colors, err := a.resolve(arg)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, colors...)
	}
	return subjects, nil
}

func (a *App) resolve(arg string) ([]domain.Color, error) {
	c, parseErr := domain.Parse(arg)
	if parseErr == nil {
		return []domain.Color{c}, nil
	}

	if strings.Contains(arg, "*") {
		return a.expand(arg)
	}

	v, ok := a.store.Get(domain.PaletteKey(arg))
	if !ok {
		return nil, parseErr
	}
	value := scalarText(v)
	c, err := domain.Parse(value)
	if err != nil {
		return nil, domain.InvalidPaletteEntry(arg, value)
	}
	return []domain.Color{c}, nil
}

// expand returns the valid palette colors whose names match pattern.
// Invalid values are skipped here and reported when the palette is loaded.
func (a *App) expand(pattern string) ([]domain.Color, error) {
	entries := a.store.Match(domain.PaletteKey(pattern))
	if len(entries) == 0 {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidColor, fmt.Sprintf("no palette colors match %q", pattern)),
			"pattern", pattern,
		)
	}

	colors := make([]domain.Color, 0, len(entries))
	for _, e := range entries {
		if c, err := domain.Parse(scalarText(e.Value)); err == nil {
			colors = append(colors, c)
		}
	}
	return colors, nil
}

// loadPalette reads the palette namespace and warns once per invalid value.
func (a *App) loadPalette() domain.Palette {
	var raw []domain.RawEntry
	for _, e := range a.store.Entries() {
		name, ok := domain.PaletteName(e.Key)
		if !ok {
			continue
		}
		raw = append(raw, domain.RawEntry{Name: name, Value: scalarText(e.Value)})
	}

	palette, warnings := domain.LoadPalette(raw)
	for _, w := range warnings {
		a.logger.Warn(warningText(w))
	}
	return palette
}

// matchAll matches every subject concurrently. Reports keep subject order.
func matchAll(ctx context.Context, subjects []domain.Color, palette domain.Palette) ([]domain.Report, error) {
	reports := make([]domain.Report, len(subjects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, c := range subjects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = domain.NewReport(c, domain.MatchPalette(c, palette))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
