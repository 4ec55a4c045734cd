// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file contains the logic for translating decoded HCL blocks into the
// format-agnostic configuration model, validating literal values on the way.

package hcl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/mapload"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateSettings validates a settings block.
func (l *Loader) translateSettings(b *settingsBlock, filename string) (*config.Settings, hcl.Diagnostics) {
	depth, diags := l.parseMaxCallDepth(b.MaxCallDepth)
	return &config.Settings{MaxCallDepth: depth, Source: filename}, diags
}

// translateWorld resolves the world rows, reading them from a file if needed.
func (l *Loader) translateWorld(b *worldBlock, filename string) (*config.World, error) {
	switch {
	case len(b.Rows) > 0 && b.File != "":
		return nil, fmt.Errorf("world in %s: set either rows or file, not both", filename)
	case b.File != "":
		path := b.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filename), path)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("world in %s: failed to read map file: %w", filename, err)
		}
		return &config.World{Rows: mapload.SplitLines(string(raw)), Source: path}, nil
	case len(b.Rows) > 0:
		return &config.World{Rows: b.Rows, Source: filename}, nil
	}
	return nil, fmt.Errorf("world in %s: rows or file is required", filename)
}

// translateProgram converts a program block and its optional expectations.
func (l *Loader) translateProgram(b *programBlock, filename string) (*config.Program, hcl.Diagnostics) {
	p := &config.Program{
		Name:         b.Name,
		Instructions: b.Instructions,
		Reset:        b.Reset,
		Source:       filename,
	}
	if b.Expect == nil {
		return p, nil
	}

	pos, diags := l.parsePosition(b.Expect.Position)
	p.Expect = &config.Expectation{Position: pos, Map: b.Expect.Map}
	return p, diags
}

// parseMaxCallDepth evaluates max_call_depth and checks it is a positive
// whole number. An absent attribute yields zero, meaning the default.
func (l *Loader) parseMaxCallDepth(expr hcl.Expression) (int, hcl.Diagnostics) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(l.evalCtx)
	if diags.HasErrors() || val.IsNull() {
		return 0, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid max_call_depth value",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		})
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, invalid(fmt.Sprintf("The 'max_call_depth' attribute must be a number, got %s.", val.Type().FriendlyName()))
	}
	if !num.IsKnown() || !num.AsBigFloat().IsInt() {
		return 0, invalid("The 'max_call_depth' attribute must be a whole number.")
	}
	var depth int
	if err := gocty.FromCtyValue(num, &depth); err != nil {
		return 0, invalid(fmt.Sprintf("The 'max_call_depth' attribute is out of range: %s.", err))
	}
	if depth < 1 {
		return 0, invalid("The 'max_call_depth' attribute must be at least 1.")
	}
	if depth > config.MaxCallDepthLimit {
		return 0, invalid(fmt.Sprintf("The 'max_call_depth' attribute must be at most %d.", config.MaxCallDepthLimit))
	}
	return depth, diags
}

// positionObject is the object form of an expected position.
type positionObject struct {
	X int `cty:"x"`
	Y int `cty:"y"`
}

var positionObjectType = cty.Object(map[string]cty.Type{"x": cty.Number, "y": cty.Number})

// parsePosition accepts either a two-element list [x, y] or an object
// { x = .., y = .. } and converts it to whole numbers.
func (l *Loader) parsePosition(expr hcl.Expression) (*config.Position, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(l.evalCtx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	pos, err := positionFromValue(val)
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid expected position",
			Detail:   fmt.Sprintf("The 'position' attribute must be [x, y] or { x = .., y = .. } with whole numbers: %s.", err),
			Subject:  expr.Range().Ptr(),
		})
	}
	return pos, diags
}

func positionFromValue(val cty.Value) (*config.Position, error) {
	if val.Type().IsObjectType() || val.Type().IsMapType() {
		obj, err := convert.Convert(val, positionObjectType)
		if err != nil {
			return nil, err
		}
		var p positionObject
		if err := gocty.FromCtyValue(obj, &p); err != nil {
			return nil, err
		}
		return &config.Position{X: p.X, Y: p.Y}, nil
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, err
	}
	if !list.IsWhollyKnown() || list.LengthInt() != 2 {
		return nil, errors.New("exactly two coordinates are required")
	}
	var xy []int
	if err := gocty.FromCtyValue(list, &xy); err != nil {
		return nil, err
	}
	return &config.Position{X: xy[0], Y: xy[1]}, nil
}
