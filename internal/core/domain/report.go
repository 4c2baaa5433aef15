package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Report is everything shown for a single subject color.
type Report struct {
	Color       Color   `json:"color" yaml:"color"`
	Hex         string  `json:"hex" yaml:"hex"`
	RGB         string  `json:"rgb" yaml:"rgb"`
	HSL         string  `json:"hsl" yaml:"hsl"`
	Matches     []Match `json:"matches" yaml:"matches"`
	MostSimilar []Match `json:"mostSimilar" yaml:"mostSimilar"`
}

// NewReport builds the report for c from its palette match result.
func NewReport(c Color, res MatchResult) Report {
	return Report{
		Color:       c,
		Hex:         c.Hex(),
		RGB:         c.RGB(),
		HSL:         c.HSLString(),
		Matches:     res.Exact,
		MostSimilar: res.Similar,
	}
}

// OutputFormat selects how reports are written.
type OutputFormat string

const (
	// FormatHex renders swatches next to the color values.
	FormatHex OutputFormat = "hex"
	// FormatJSON renders reports as JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML renders reports as YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatLong renders one table row per report.
	FormatLong OutputFormat = "long"
)

var outputFormats = []OutputFormat{FormatHex, FormatJSON, FormatYAML, FormatLong}

// ParseOutputFormat validates a format name. An empty name and "default"
// both select FormatHex.
func ParseOutputFormat(name string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(name))
	if f == "" || f == "default" {
		return FormatHex, nil
	}
	if !slices.Contains(outputFormats, f) {
		return "", zerr.With(
			zerr.Wrap(ErrUnsupportedFormat, fmt.Sprintf("unsupported output format %q", name)),
			"format", name,
		)
	}
	return f, nil
}

// Column is a field of the long output table.
type Column string

// Long output columns in display order.
const (
	ColumnColor   Column = "color"
	ColumnHex     Column = "hex"
	ColumnRGB     Column = "rgb"
	ColumnHSL     Column = "hsl"
	ColumnMatches Column = "matches"
	ColumnSimilar Column = "similar"
)

// AllColumns lists every long output column in default order.
var AllColumns = []Column{ColumnColor, ColumnHex, ColumnRGB, ColumnHSL, ColumnMatches, ColumnSimilar}

// ParseColumns parses a comma separated column list. An empty list selects AllColumns.
func ParseColumns(list string) ([]Column, error) {
	if strings.TrimSpace(list) == "" {
		return slices.Clone(AllColumns), nil
	}

	var cols []Column
	for part := range strings.SplitSeq(list, ",") {
		col := Column(strings.ToLower(strings.TrimSpace(part)))
		if !slices.Contains(AllColumns, col) {
			valid := make([]string, len(AllColumns))
			for i, c := range AllColumns {
				valid[i] = string(c)
			}
			return nil, zerr.With(
				zerr.Wrap(ErrInvalidColumnSelector, fmt.Sprintf(
					"invalid column specified: %q, valid columns are: %s", part, strings.Join(valid, ", "),
				)),
				"column", part,
			)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// RenderOptions controls how a set of reports is written.
type RenderOptions struct {
	Format OutputFormat
	// Width is the terminal width in cells, zero when unknown.
	Width int
	// SingleColumn disables the grid layout.
	SingleColumn bool
	Columns      []Column
	NoHeaders    bool
	NoTruncate   bool
}
