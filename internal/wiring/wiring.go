// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/recent/internal/adapters/config"
	_ "go.trai.ch/recent/internal/adapters/factory"
	_ "go.trai.ch/recent/internal/adapters/logger"
	_ "go.trai.ch/recent/internal/adapters/menu"
	_ "go.trai.ch/recent/internal/adapters/pathfmt"
	_ "go.trai.ch/recent/internal/adapters/prefs"
	_ "go.trai.ch/recent/internal/adapters/telemetry"
	_ "go.trai.ch/recent/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/recent/internal/app"
	_ "go.trai.ch/recent/internal/engine/recent"
)
