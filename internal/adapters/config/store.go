// Package config implements the JSON key-path store that holds the user palette.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/zerr"
)

// Options configures where the store keeps its document.
type Options struct {
	// ConfigHome is the value of XDG_CONFIG_HOME. It may be empty.
	ConfigHome string
	// Home is the user's home directory, used when ConfigHome is empty.
	Home string
	// Path overrides the computed location when set.
	Path string
	// FS is the filesystem to use. Defaults to the OS filesystem.
	FS FileSystem
}

// ResolvePath returns the config file location described by the options.
func (o Options) ResolvePath() string {
	if o.Path != "" {
		return o.Path
	}
	return domain.DefaultConfigPath(o.ConfigHome, o.Home)
}

// Store implements ports.ConfigStore on top of a single JSON document.
// It is not safe for concurrent use; the last writer wins on disk.
type Store struct {
	path string
	fs   FileSystem
	root *Node

	// digest of the bytes last read from or written to disk, zero when nothing is on disk.
	digest uint64
}

// NewStore creates a Store with an empty document. Call Read to load it from disk.
func NewStore(opts Options) *Store {
	fsys := opts.FS
	if fsys == nil {
		fsys = NewOSFS()
	}
	return &Store{
		path: opts.ResolvePath(),
		fs:   fsys,
		root: NewObject(),
	}
}

// Read loads the document from disk. A missing file leaves an empty document.
func (s *Store) Read() error {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.root = NewObject()
			s.digest = 0
			return nil
		}
		return zerr.With(domain.Fail(domain.ErrConfigReadFailed, err.Error(), err), "path", s.path)
	}

	root := &Node{}
	if err := json.Unmarshal(data, root); err != nil {
		return zerr.With(domain.Fail(domain.ErrConfigParseFailed, fmt.Sprintf("%s: %v", s.path, err), err), "path", s.path)
	}
	if root.Kind != KindObject {
		return zerr.With(
			domain.Fail(domain.ErrConfigParseFailed, fmt.Sprintf("%s: top-level value is not an object", s.path), nil),
			"path", s.path,
		)
	}

	s.root = root
	s.digest = xxhash.Sum64(data)
	return nil
}

// Write persists the document as 2-space indented JSON.
// Nothing is written when the content matches what is already on disk.
func (s *Store) Write() error {
	data, err := json.MarshalIndent(s.root, "", "  ")
	if err != nil {
		return domain.Fail(domain.ErrConfigMarshalFailed, err.Error(), err)
	}

	sum := xxhash.Sum64(data)
	if s.digest != 0 && sum == s.digest {
		return nil
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrConfigCreateFailed, err.Error(), err), "path", s.path)
	}

	if err := s.fs.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrConfigWriteFailed, err.Error(), err), "path", s.path)
	}

	s.digest = sum
	return nil
}

// Get returns the value at path. Numeric segments index into arrays, so every
// key reported by Entries can be read back. Lookups through scalars miss.
func (s *Store) Get(path string) (any, bool) {
	node := s.root
	for _, key := range splitPath(path) {
		next, ok := node.child(key)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node.Value(), true
}

// Set stores value at path, creating intermediate objects as needed.
// It fails with domain.ErrNotAnObject when an intermediate value is not an
// object. Arrays are read-only through key paths.
func (s *Store) Set(path string, value any) error {
	keys := splitPath(path)
	if len(keys) == 0 {
		return domain.ErrMissingConfigKey
	}

	node := s.root
	for i, key := range keys[:len(keys)-1] {
		next, ok := node.Object[key]
		if !ok {
			next = NewObject()
			node.Object[key] = next
		}
		if next.Kind != KindObject {
			return notAnObject(keys[:i+1])
		}
		node = next
	}

	node.Object[keys[len(keys)-1]] = FromValue(value)
	return nil
}

// Remove deletes the value at path and reports whether it existed.
func (s *Store) Remove(path string) (bool, error) {
	keys := splitPath(path)
	if len(keys) == 0 {
		return false, domain.ErrMissingConfigKey
	}

	node := s.root
	for i, key := range keys[:len(keys)-1] {
		next, ok := node.Object[key]
		if !ok {
			return false, nil
		}
		if next.Kind != KindObject {
			return false, notAnObject(keys[:i+1])
		}
		node = next
	}

	last := keys[len(keys)-1]
	if _, ok := node.Object[last]; !ok {
		return false, nil
	}
	delete(node.Object, last)
	return true, nil
}

// Entries returns every scalar leaf ordered by flattened key.
func (s *Store) Entries() []domain.ConfigEntry {
	var entries []domain.ConfigEntry
	s.root.walk(nil, func(key string, value any) {
		entries = append(entries, domain.ConfigEntry{Key: key, Value: value})
	})
	return entries
}

// Match returns the leaves whose whole flattened key matches pattern.
// "*" matches any run of characters, everything else is literal.
func (s *Store) Match(pattern string) []domain.ConfigEntry {
	re := compilePattern(pattern)

	var matched []domain.ConfigEntry
	for _, e := range s.Entries() {
		if re.MatchString(e.Key) {
			matched = append(matched, e)
		}
	}
	return matched
}

func compilePattern(pattern string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.Join(splitPath(pattern), "."))
	return regexp.MustCompile("^" + strings.ReplaceAll(quoted, `\*`, ".*") + "$")
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func notAnObject(keys []string) error {
	key := strings.Join(keys, ".")
	return zerr.With(zerr.Wrap(domain.ErrNotAnObject, fmt.Sprintf("%q is not an object", key)), "key", key)
}
