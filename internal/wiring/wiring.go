// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/colortools/internal/adapters/config"
	_ "go.trai.ch/colortools/internal/adapters/detector"
	_ "go.trai.ch/colortools/internal/adapters/logger"
	_ "go.trai.ch/colortools/internal/adapters/render"
	// Register app nodes.
	_ "go.trai.ch/colortools/internal/app"
)
