// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/breeze/internal/adapters/cas"
	_ "go.trai.ch/breeze/internal/adapters/compiler"
	_ "go.trai.ch/breeze/internal/adapters/config"
	_ "go.trai.ch/breeze/internal/adapters/css"
	_ "go.trai.ch/breeze/internal/adapters/fs"
	_ "go.trai.ch/breeze/internal/adapters/linear"
	_ "go.trai.ch/breeze/internal/adapters/logger"
	_ "go.trai.ch/breeze/internal/adapters/metrics"
	_ "go.trai.ch/breeze/internal/adapters/optimizer"
	_ "go.trai.ch/breeze/internal/adapters/scanner"
	_ "go.trai.ch/breeze/internal/adapters/telemetry"
	_ "go.trai.ch/breeze/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/breeze/internal/app"
	_ "go.trai.ch/breeze/internal/engine/stage"
)
