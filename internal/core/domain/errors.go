package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidColor is returned when a string cannot be parsed as a color.
	ErrInvalidColor = zerr.New("invalid color")

	// ErrInvalidPaletteEntry is returned when a stored palette value cannot be parsed as a color.
	ErrInvalidPaletteEntry = zerr.New("invalid palette entry")

	// ErrUnsupportedFormat is returned when an unknown color or output format is requested.
	ErrUnsupportedFormat = zerr.New("unsupported format")

	// ErrInvalidColumnSelector is returned when an unknown column is requested for long output.
	ErrInvalidColumnSelector = zerr.New("invalid column specified")

	// ErrMissingConfigKey is returned when a config command is invoked without a key.
	ErrMissingConfigKey = zerr.New("missing config key")

	// ErrMissingConfigValue is returned when config set is invoked without a value.
	ErrMissingConfigValue = zerr.New("missing config value")

	// ErrUnknownTopLevelKey is returned when a config key is outside the known namespaces.
	ErrUnknownTopLevelKey = zerr.New("top-level key is unrecognized")

	// ErrInvalidColorName is returned when a palette name contains unsupported characters.
	ErrInvalidColorName = zerr.New("invalid color name specified, color names should only contain: A-Z a-z 0-9 _ : $ -")

	// ErrConfigKeyNotFound is returned when a config key has no value.
	ErrConfigKeyNotFound = zerr.New("config key not found")

	// ErrUnknownConfigTopic is returned when the config command is invoked with an unknown topic.
	ErrUnknownConfigTopic = zerr.New("unknown config topic")

	// ErrNotAnObject is returned when a config path crosses a node that is not an object.
	ErrNotAnObject = zerr.New("config path crosses a non-object value")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigMarshalFailed is returned when the config document cannot be marshaled.
	ErrConfigMarshalFailed = zerr.New("failed to marshal config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrConfigCreateFailed is returned when the config directory cannot be created.
	ErrConfigCreateFailed = zerr.New("failed to create config directory")

	// ErrRenderFailed is returned when a report cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render output")
)

// Fail returns an error with message whose cause is sentinel, so errors.Is
// still matches the sentinel. A non-nil cause is attached as the "cause" field.
func Fail(sentinel error, message string, cause error) error {
	err := zerr.Wrap(sentinel, message)
	if cause != nil {
		err = zerr.With(err, "cause", cause)
	}
	return err
}
