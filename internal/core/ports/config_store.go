package ports

import "go.trai.ch/colortools/internal/core/domain"

// ConfigStore defines the interface for the persisted key-path configuration document.
// Paths are dot-separated keys into nested objects, for example "colors.blue-500".
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Read loads the document from disk. A missing file reads as an empty document.
	Read() error

	// Write persists the document.
	Write() error

	// Get returns the value at path and whether it exists.
	// Objects are returned as map[string]any and arrays as []any.
	Get(path string) (any, bool)

	// Set stores value at path, creating intermediate objects as needed.
	Set(path string, value any) error

	// Remove deletes the value at path and reports whether it existed.
	Remove(path string) (bool, error)

	// Entries returns every scalar leaf with its flattened dotted key, ordered by key.
	Entries() []domain.ConfigEntry

	// Match returns the leaves whose flattened key matches pattern, where "*" matches any run of characters.
	Match(pattern string) []domain.ConfigEntry
}
