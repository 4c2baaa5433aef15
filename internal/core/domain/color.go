package domain

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/zerr"
	"golang.org/x/image/colornames"
)

// ColorSpace names a textual representation of a color.
type ColorSpace string

const (
	// SpaceHex is the lowercase #rrggbb representation.
	SpaceHex ColorSpace = "hex"
	// SpaceRGB is the rgb(r, g, b) representation.
	SpaceRGB ColorSpace = "rgb"
	// SpaceHSL is the hsl(h, s%, l%) representation.
	SpaceHSL ColorSpace = "hsl"
)

// maxRawDistance is the raw distance between black and white, the largest
// value the weighted metric can produce.
var maxRawDistance = rawDistance(Color{}, Color{R: 255, G: 255, B: 255})

// Color is an immutable 24-bit RGB color.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// NewColor creates a Color from its three channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

var (
	bareHexPattern   = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)
	bareRGBPattern   = regexp.MustCompile(`^\d{1,3},\d{1,3},\d{1,3}$`)
	numericPattern   = regexp.MustCompile(`^\d{1,5}$`)
	rgbFuncPattern   = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+%?\s*)?\)$`)
	hslFuncPattern   = regexp.MustCompile(`^hsla?\(\s*([\d.]+)(?:deg)?\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*(?:,\s*[\d.]+%?\s*)?\)$`)
	shortHexPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	prefixHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Parse parses a color from user input.
// It accepts #rrggbb and #rgb hex, bare rrggbb hex, rgb()/rgba(), bare r,g,b
// triples, hsl()/hsla() and CSS color keywords. Purely numeric input shorter
// than six digits is treated as zero-padded hex, so "0" parses as black.
func Parse(input string) (Color, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Color{}, invalidColor(input)
	}

	switch {
	case numericPattern.MatchString(s):
		s = "#" + strings.Repeat("0", 6-len(s)) + s
	case bareHexPattern.MatchString(s):
		s = "#" + s
	case bareRGBPattern.MatchString(s):
		s = "rgb(" + s + ")"
	}

	lower := strings.ToLower(s)

	switch {
	case prefixHexPattern.MatchString(lower), shortHexPattern.MatchString(lower):
		c, err := colorful.Hex(lower)
		if err != nil {
			return Color{}, invalidColor(input)
		}
		return fromColorful(c), nil
	case rgbFuncPattern.MatchString(lower):
		return parseRGBFunc(input, rgbFuncPattern.FindStringSubmatch(lower))
	case hslFuncPattern.MatchString(lower):
		return parseHSLFunc(input, hslFuncPattern.FindStringSubmatch(lower))
	}

	if named, ok := colornames.Map[lower]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	return Color{}, invalidColor(input)
}

func parseRGBFunc(input string, m []string) (Color, error) {
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > math.MaxUint8 {
			return Color{}, invalidColor(input)
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseHSLFunc(input string, m []string) (Color, error) {
	h, errH := strconv.ParseFloat(m[1], 64)
	s, errS := strconv.ParseFloat(m[2], 64)
	l, errL := strconv.ParseFloat(m[3], 64)
	if errH != nil || errS != nil || errL != nil || s > 100 || l > 100 {
		return Color{}, invalidColor(input)
	}
	return fromColorful(colorful.Hsl(math.Mod(h, 360), s/100, l/100)), nil
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func invalidColor(input string) error {
	return zerr.With(
		zerr.Wrap(ErrInvalidColor, fmt.Sprintf("cannot parse color %q", input)),
		"input", input,
	)
}

// Distance returns the perceptual distance to other, normalized to [0, 1].
// It uses the weighted euclidean metric from https://www.compuphase.com/cmetric.htm.
func (c Color) Distance(other Color) float64 {
	return rawDistance(c, other) / maxRawDistance
}

// rawDistance is the integer shift form of the compuphase metric.
// Its maximum, black against white, is roughly 764.8333.
func rawDistance(a, b Color) float64 {
	rmean := (float64(a.R) + float64(b.R)) / 2
	dr := int64(a.R) - int64(b.R)
	dg := int64(a.G) - int64(b.G)
	db := int64(a.B) - int64(b.B)

	red := int64((512+rmean)*float64(dr*dr)) >> 8
	blue := int64((767-rmean)*float64(db*db)) >> 8

	return math.Sqrt(float64(red + 4*dg*dg + blue))
}

// HSL returns hue in degrees [0, 360), saturation and lightness in percent.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return h, s * 100, l * 100
}

// Hex returns the lowercase #rrggbb representation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the rgb(r, g, b) representation.
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSLString returns the hsl(h, s%, l%) representation with an integer hue
// and one decimal place for saturation and lightness.
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%d, %.1f%%, %.1f%%)", int(math.Round(h))%360, s, l)
}

// FormatAs renders the color in the requested color space.
func (c Color) FormatAs(space ColorSpace) (string, error) {
	switch space {
	case SpaceHex:
		return c.Hex(), nil
	case SpaceRGB:
		return c.RGB(), nil
	case SpaceHSL:
		return c.HSLString(), nil
	default:
		return "", zerr.With(
			zerr.Wrap(ErrUnsupportedFormat, fmt.Sprintf("unsupported color format %q", string(space))),
			"format", string(space),
		)
	}
}

// String implements fmt.Stringer using the hex representation.
func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// CompareHSL orders colors by hue, then saturation, then lightness.
// It returns -1, 0 or +1 and can be passed to slices.SortFunc.
func CompareHSL(a, b Color) int {
	ah, as, al := a.HSL()
	bh, bs, bl := b.HSL()

	if r := cmp.Compare(ah, bh); r != 0 {
		return r
	}
	if r := cmp.Compare(as, bs); r != 0 {
		return r
	}
	return cmp.Compare(al, bl)
}
