// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every file of the loader's format found under paths and
	// translates it into a partial model. Files of other formats are ignored.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// MultiLoader runs several loaders over the same paths and merges their
// models in order.
type MultiLoader []Loader

// Load implements Loader.
func (m MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	merged := NewModel()
	for _, l := range m {
		part, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(part); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}
	return merged, nil
}
