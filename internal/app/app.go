// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/mapload"
	"github.com/specialistvlad/lightbot/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	session *session.Session
}

// NewApp loads the configuration through loader, builds the world and opens a
// session on it. Reports go to outW and logs to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "programs", len(model.Programs))

	w, err := mapload.Parse(model.World.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build world from %s: %w", model.World.Source, err)
	}
	x, y := w.Position()
	logger.Debug("World built.", "rows", w.Grid().Rows(), "cols", w.Grid().Cols(), "x", x, "y", y, "heading", w.Agent().Heading)

	depth := model.MaxCallDepth()
	if appConfig.MaxDepth > 0 {
		depth = appConfig.MaxDepth
	}
	logger.Debug("Session configured.", "max_depth", depth)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		model:   model,
		session: session.New(w, session.WithMaxDepth(depth)),
	}, nil
}

// Model returns the loaded configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Session returns the session programs run against. This is primarily for
// testing.
func (a *App) Session() *session.Session {
	return a.session
}
