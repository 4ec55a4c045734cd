// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package tomlconfig provides a TOML implementation of config.Loader:
//
//	[settings]
//	max_call_depth = 64
//
//	[world]
//	rows = ["R..", "O..", "..."]
//
//	[[programs]]
//	name = "light_one"
//	reset = true
//	instructions = """
//	FORWARD
//	LIGHT
//	"""
//
//	[programs.expect]
//	position = [1, 0]
//	map = [".x.", "O..", "..."]
//
// Keys the loader does not understand are reported as errors.
package tomlconfig
