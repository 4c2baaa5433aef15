package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/zerr"
)

// ConfigGet writes the value stored at key. A missing key returns
// domain.ErrConfigKeyNotFound and writes nothing.
func (a *App) ConfigGet(_ context.Context, w io.Writer, key string) error {
	if err := domain.ValidateConfigKey(key); err != nil {
		return err
	}
	if err := a.store.Read(); err != nil {
		return err
	}

	v, ok := a.store.Get(key)
	if !ok {
		return zerr.With(domain.Fail(domain.ErrConfigKeyNotFound, fmt.Sprintf("config key %q not found", key), nil), "key", key)
	}

	text, ok := v.(string)
	if !ok {
		var err error
		if text, err = encodeValue(v); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, text)
	return err
}

// ConfigSet stores value at key. The value must be a color and is stored as lowercase hex.
func (a *App) ConfigSet(_ context.Context, key, value string) error {
	if err := domain.ValidateConfigKey(key); err != nil {
		return err
	}
	if value == "" {
		return zerr.With(domain.Fail(domain.ErrMissingConfigValue, fmt.Sprintf("missing value for %q", key), nil), "key", key)
	}

	c, err := domain.Parse(value)
	if err != nil {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidColor, fmt.Sprintf("invalid color value specified: %q", value)),
			"value", value,
		)
	}

	if err := a.store.Read(); err != nil {
		return err
	}
	if err := a.store.Set(key, c.Hex()); err != nil {
		return err
	}
	return a.store.Write()
}

// ConfigDelete removes key. The file is only written when the key existed.
func (a *App) ConfigDelete(_ context.Context, key string) error {
	if err := domain.ValidateConfigKey(key); err != nil {
		return err
	}
	if err := a.store.Read(); err != nil {
		return err
	}

	removed, err := a.store.Remove(key)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	return a.store.Write()
}

// ConfigList writes every stored leaf as `key = value` with JSON encoded values.
func (a *App) ConfigList(_ context.Context, w io.Writer) error {
	if err := a.store.Read(); err != nil {
		return err
	}

	for _, e := range a.store.Entries() {
		text, err := encodeValue(e.Value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", e.Key, text); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", domain.Fail(domain.ErrConfigMarshalFailed, err.Error(), err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
