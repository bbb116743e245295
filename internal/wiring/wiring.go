// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/weave/internal/adapters/catalog"
	_ "go.trai.ch/weave/internal/adapters/config"
	_ "go.trai.ch/weave/internal/adapters/editor"
	_ "go.trai.ch/weave/internal/adapters/fs"
	_ "go.trai.ch/weave/internal/adapters/logger"
	_ "go.trai.ch/weave/internal/adapters/shell"
	_ "go.trai.ch/weave/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/weave/internal/app"
	_ "go.trai.ch/weave/internal/engine/enforcer"
	_ "go.trai.ch/weave/internal/engine/materializer"
	_ "go.trai.ch/weave/internal/engine/resolver"
)
