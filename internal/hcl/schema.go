// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Settings []*settingsBlock `hcl:"settings,block"`
	Worlds   []*worldBlock    `hcl:"world,block"`
	Programs []*programBlock  `hcl:"program,block"`
}

// settingsBlock tunes the interpreter. Values are kept as expressions so they
// can be validated with precise diagnostics.
type settingsBlock struct {
	MaxCallDepth hcl.Expression `hcl:"max_call_depth,optional"`
}

// worldBlock describes the starting map, either inline or in a text file
// relative to the HCL file.
type worldBlock struct {
	Rows []string `hcl:"rows,optional"`
	File string   `hcl:"file,optional"`
}

// programBlock is one named instruction list.
type programBlock struct {
	Name         string       `hcl:"name,label"`
	Reset        bool         `hcl:"reset,optional"`
	Instructions []string     `hcl:"instructions"`
	Expect       *expectBlock `hcl:"expect,block"`
}

// expectBlock is the state a program should leave behind.
type expectBlock struct {
	Position hcl.Expression `hcl:"position,optional"`
	Map      []string       `hcl:"map,optional"`
}
