// Package app implements the application layer for colortools.
package app

import (
	"errors"
	"fmt"

	"go.trai.ch/colortools/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	store    ports.ConfigStore
	logger   ports.Logger
	renderer ports.Renderer
	terminal ports.Terminal
}

// New creates a new App instance.
func New(
	store ports.ConfigStore,
	log ports.Logger,
	renderer ports.Renderer,
	terminal ports.Terminal,
) *App {
	return &App{
		store:    store,
		logger:   log,
		renderer: renderer,
		terminal: terminal,
	}
}

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// messager matches errors that carry their own message apart from the cause chain.
type messager interface {
	Message() string
}

// warningText returns the outermost message of err without its causes.
func warningText(err error) string {
	var m messager
	if errors.As(err, &m) {
		return m.Message()
	}
	return err.Error()
}

// scalarText renders a config leaf the way it is matched against colors.
func scalarText(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
