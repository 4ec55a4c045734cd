// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic configuration model for lightbot,
// along with the Loader interface that concrete formats implement.
//
// The `config.Model` is the single source of truth for the app package: the
// world to load, the programs to run against it and the interpreter settings.
// Concrete loaders for HCL and YAML live in separate packages.
package config
