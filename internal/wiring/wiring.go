// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nbuild/internal/adapters/cache"
	_ "go.trai.ch/nbuild/internal/adapters/config"
	_ "go.trai.ch/nbuild/internal/adapters/fs"
	_ "go.trai.ch/nbuild/internal/adapters/logger"
	_ "go.trai.ch/nbuild/internal/adapters/shell"
	_ "go.trai.ch/nbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/nbuild/internal/app"
	_ "go.trai.ch/nbuild/internal/engine/arguments"
)
