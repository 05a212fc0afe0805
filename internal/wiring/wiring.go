// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/conspect/conspect/internal/adapters/logger"
	_ "github.com/conspect/conspect/internal/adapters/probe"
	_ "github.com/conspect/conspect/internal/adapters/recipe"
	_ "github.com/conspect/conspect/internal/adapters/telemetry"
	_ "github.com/conspect/conspect/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/conspect/conspect/internal/app"
)
