package domain

import (
	"cmp"
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// SimilarityThreshold is the distance under which a palette color counts as similar.
const SimilarityThreshold = 0.05

// PaletteEntry is a named color from the user palette.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette is an ordered collection of named colors.
type Palette []PaletteEntry

// Match is a palette entry that matched a subject color.
type Match struct {
	Name     string  `json:"name" yaml:"name"`
	Value    string  `json:"value" yaml:"value"`
	Distance float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Percent  float64 `json:"match,omitempty" yaml:"match,omitempty"`
}

// MatchResult holds the exact and similar palette entries for a subject color.
type MatchResult struct {
	Exact   []Match
	Similar []Match
}

// MatchPalette compares subject against every palette entry.
// Entries at distance zero are exact matches, entries closer than
// SimilarityThreshold are similar and everything else is dropped.
// Similar matches are sorted by descending percentage, ties keep palette order.
func MatchPalette(subject Color, palette Palette) MatchResult {
	res := MatchResult{
		Exact:   []Match{},
		Similar: []Match{},
	}

	for _, entry := range palette {
		d := subject.Distance(entry.Color)
		switch {
		case d == 0:
			res.Exact = append(res.Exact, Match{Name: entry.Name, Value: entry.Color.Hex()})
		case d < SimilarityThreshold:
			res.Similar = append(res.Similar, Match{
				Name:     entry.Name,
				Value:    entry.Color.Hex(),
				Distance: d,
				Percent:  (1 - d) * 100,
			})
		}
	}

	slices.SortStableFunc(res.Similar, func(a, b Match) int {
		return cmp.Compare(b.Percent, a.Percent)
	})

	return res
}

// RawEntry is an unparsed name/value pair read from the palette namespace.
type RawEntry struct {
	Name  string
	Value string
}

// LoadPalette parses raw palette values. Values that fail to parse are
// skipped, and one ErrInvalidPaletteEntry warning is returned per skipped entry.
func LoadPalette(raw []RawEntry) (Palette, []error) {
	palette := make(Palette, 0, len(raw))
	var warnings []error

	for _, entry := range raw {
		c, err := Parse(entry.Value)
		if err != nil {
			warnings = append(warnings, InvalidPaletteEntry(entry.Name, entry.Value))
			continue
		}
		palette = append(palette, PaletteEntry{Name: entry.Name, Color: c})
	}

	return palette, warnings
}

// InvalidPaletteEntry builds the warning for a stored palette value that is not a color.
func InvalidPaletteEntry(name, value string) error {
	return zerr.With(
		zerr.Wrap(ErrInvalidPaletteEntry, fmt.Sprintf("invalid color value specified for config.%s.%s: %s", PaletteNamespace, name, value)),
		"name", name,
	)
}

// Dedupe removes repeated colors, keeping the first occurrence.
func Dedupe(colors []Color) []Color {
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
