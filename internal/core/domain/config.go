package domain

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// ConfigEntry is a flattened config leaf.
type ConfigEntry struct {
	Key   string
	Value any
}

var colorNamePattern = regexp.MustCompile(`^[A-Za-z0-9\-_:$]+$`)

// ValidateConfigKey checks that key addresses the palette namespace and that
// every name segment only uses A-Z a-z 0-9 _ : $ -.
func ValidateConfigKey(key string) error {
	if key == "" {
		return ErrMissingConfigKey
	}

	parts := strings.Split(key, ".")
	if parts[0] != PaletteNamespace {
		return zerr.With(
			zerr.Wrap(ErrUnknownTopLevelKey, fmt.Sprintf("top-level key %q is unrecognized. Try '%s.%s'", parts[0], PaletteNamespace, key)),
			"key", key,
		)
	}

	for _, part := range parts[1:] {
		if !colorNamePattern.MatchString(part) {
			return zerr.With(
				zerr.Wrap(ErrInvalidColorName, fmt.Sprintf("invalid color name in key %q", key)),
				"key", key,
			)
		}
	}

	return nil
}

// PaletteKey returns the config key for a palette color name.
func PaletteKey(name string) string {
	return PaletteNamespace + "." + name
}

// PaletteName strips the palette namespace from a flattened config key.
func PaletteName(key string) (string, bool) {
	return strings.CutPrefix(key, PaletteNamespace+".")
}
