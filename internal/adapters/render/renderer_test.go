package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/colortools/internal/adapters/render"
	"go.trai.ch/colortools/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func asciiRenderer() *render.Renderer {
	return render.New(func() termenv.Profile { return termenv.Ascii })
}

func black() domain.Report {
	c := domain.NewColor(0, 0, 0)
	return domain.NewReport(c, domain.MatchPalette(c, nil))
}

func bada55() domain.Report {
	c := domain.NewColor(0xba, 0xda, 0x55)
	return domain.NewReport(c, domain.MatchPalette(c, domain.Palette{{Name: "green-500", Color: c}}))
}

func bada44() domain.Report {
	c := domain.NewColor(0xba, 0xda, 0x44)
	rep := domain.NewReport(c, domain.MatchResult{Exact: []domain.Match{}})
	rep.MostSimilar = []domain.Match{
		{Name: "green-500", Value: "#bada55", Distance: 0.012346, Percent: 98.7654},
	}
	return rep
}

func TestRender_Text(t *testing.T) {
	tests := []struct {
		name       string
		reports    []domain.Report
		opts       domain.RenderOptions
		goldenName string
	}{
		{
			name:       "single report",
			reports:    []domain.Report{black()},
			opts:       domain.RenderOptions{Format: domain.FormatHex, Width: 200},
			goldenName: "text_single",
		},
		{
			name:       "similar matches",
			reports:    []domain.Report{bada44()},
			opts:       domain.RenderOptions{Format: domain.FormatHex},
			goldenName: "text_similar",
		},
		{
			name:       "grid when width is known",
			reports:    []domain.Report{black(), bada55()},
			opts:       domain.RenderOptions{Format: domain.FormatHex, Width: 200},
			goldenName: "text_grid",
		},
		{
			name:       "single column flag",
			reports:    []domain.Report{black(), bada55()},
			opts:       domain.RenderOptions{Format: domain.FormatHex, Width: 200, SingleColumn: true},
			goldenName: "text_single_column",
		},
		{
			name:       "single column without width",
			reports:    []domain.Report{black(), bada55()},
			opts:       domain.RenderOptions{},
			goldenName: "text_single_column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, asciiRenderer().Render(buf, tt.reports, tt.opts))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRender_TextListsAtMostThreeMatches(t *testing.T) {
	c := domain.NewColor(1, 2, 3)
	palette := domain.Palette{
		{Name: "a", Color: c}, {Name: "b", Color: c}, {Name: "c", Color: c}, {Name: "d", Color: c},
	}
	rep := domain.NewReport(c, domain.MatchPalette(c, palette))

	buf := &bytes.Buffer{}
	require.NoError(t, asciiRenderer().Render(buf, []domain.Report{rep}, domain.RenderOptions{}))

	out := buf.String()
	assert.Contains(t, out, "Exact Matches:")
	assert.Contains(t, out, "  c\n")
	assert.NotContains(t, out, "  d\n")
}

func TestRender_TrueColorStylesSwatch(t *testing.T) {
	r := render.New(func() termenv.Profile { return termenv.TrueColor })

	buf := &bytes.Buffer{}
	require.NoError(t, r.Render(buf, []domain.Report{bada55()}, domain.RenderOptions{}))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "HEX: #bada55")
}

func TestRender_Long(t *testing.T) {
	buf := &bytes.Buffer{}
	err := asciiRenderer().Render(buf, []domain.Report{black(), bada55(), bada44()}, domain.RenderOptions{
		Format: domain.FormatLong,
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "long", buf.Bytes())
}

func TestRender_LongColumns(t *testing.T) {
	tests := []struct {
		name     string
		columns  []domain.Column
		expected string
	}{
		{name: "color", columns: []domain.Column{domain.ColumnColor}, expected: "     \n"},
		{name: "hex", columns: []domain.Column{domain.ColumnHex}, expected: "#000000\n"},
		{name: "rgb", columns: []domain.Column{domain.ColumnRGB}, expected: "rgb(0, 0, 0)\n"},
		{name: "hsl", columns: []domain.Column{domain.ColumnHSL}, expected: "hsl(0, 0.0%, 0.0%)\n"},
		{name: "matches", columns: []domain.Column{domain.ColumnMatches}, expected: "NO MATCHES\n"},
		{name: "similar", columns: []domain.Column{domain.ColumnSimilar}, expected: "NO SIMILAR\n"},
		{name: "multiple", columns: []domain.Column{domain.ColumnHex, domain.ColumnRGB}, expected: "#000000  rgb(0, 0, 0)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := asciiRenderer().Render(buf, []domain.Report{black()}, domain.RenderOptions{
				Format:    domain.FormatLong,
				Columns:   tt.columns,
				NoHeaders: true,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestRender_LongTruncation(t *testing.T) {
	c := domain.NewColor(9, 9, 9)
	var palette domain.Palette
	for _, name := range []string{"neutral-900", "neutral-950", "gray-900", "gray-950", "zinc-900", "zinc-950"} {
		palette = append(palette, domain.PaletteEntry{Name: name, Color: c})
	}
	rep := domain.NewReport(c, domain.MatchPalette(c, palette))
	opts := domain.RenderOptions{Format: domain.FormatLong, Columns: []domain.Column{domain.ColumnMatches}, NoHeaders: true}

	buf := &bytes.Buffer{}
	require.NoError(t, asciiRenderer().Render(buf, []domain.Report{rep}, opts))
	assert.True(t, strings.HasSuffix(buf.String(), "…\n"))

	opts.NoTruncate = true
	buf.Reset()
	require.NoError(t, asciiRenderer().Render(buf, []domain.Report{rep}, opts))
	assert.Equal(t, "neutral-900, neutral-950, gray-900, gray-950, zinc-900, zinc-950\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	t.Run("single report is an object", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, asciiRenderer().Render(buf, []domain.Report{black()}, domain.RenderOptions{Format: domain.FormatJSON}))

		assert.JSONEq(t, `{
			"color": {"r": 0, "g": 0, "b": 0},
			"hex": "#000000",
			"rgb": "rgb(0, 0, 0)",
			"hsl": "hsl(0, 0.0%, 0.0%)",
			"matches": [],
			"mostSimilar": []
		}`, buf.String())
	})

	t.Run("several reports are an array", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, asciiRenderer().Render(buf, []domain.Report{black(), bada55()}, domain.RenderOptions{Format: domain.FormatJSON}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "#bada55", got[1]["hex"])
		assert.Equal(t, []any{map[string]any{"name": "green-500", "value": "#bada55"}}, got[1]["matches"])
	})
}

func TestRender_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, asciiRenderer().Render(buf, []domain.Report{black(), bada44()}, domain.RenderOptions{Format: domain.FormatYAML}))

	var got []domain.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, domain.NewColor(0, 0, 0), got[0].Color)
	assert.Equal(t, "#000000", got[0].Hex)
	assert.Empty(t, got[0].Matches)
	assert.Equal(t, "green-500", got[1].MostSimilar[0].Name)
	assert.InDelta(t, 98.7654, got[1].MostSimilar[0].Percent, 1e-9)
}

func TestRender_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, asciiRenderer().Render(buf, nil, domain.RenderOptions{}))
	assert.Empty(t, buf.String())
}

func TestRender_UnsupportedFormat(t *testing.T) {
	err := asciiRenderer().Render(&bytes.Buffer{}, []domain.Report{black()}, domain.RenderOptions{Format: "xml"})
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRender_WriteError(t *testing.T) {
	err := asciiRenderer().Render(failingWriter{}, []domain.Report{black()}, domain.RenderOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRenderFailed.Error())
}
