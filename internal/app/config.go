// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // .hcl, .yaml, .yml or .toml files or directories

	LogFormat string
	LogLevel  string

	OutputFormat string
	Color        bool

	// MaxDepth overrides the configured nesting limit when positive.
	MaxDepth int
	// Programs restricts the run to these program names, in config order.
	Programs []string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}
	if cfg.MaxDepth < 0 {
		return nil, errors.New("max depth cannot be negative")
	}
	if cfg.MaxDepth > config.MaxCallDepthLimit {
		return nil, fmt.Errorf("max depth cannot exceed %d", config.MaxCallDepthLimit)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(report.FormatText)
	}
	if _, err := report.ParseFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}
