// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/fsutil"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL configuration loader. Expressions may use a
// small set of list and string functions, so instruction lists can be built
// with concat or split.
func NewLoader() *Loader {
	return &Loader{
		evalCtx: &hcl.EvalContext{
			Functions: map[string]function.Function{
				"chomp":     stdlib.ChompFunc,
				"concat":    stdlib.ConcatFunc,
				"flatten":   stdlib.FlattenFunc,
				"format":    stdlib.FormatFunc,
				"split":     stdlib.SplitFunc,
				"trimspace": stdlib.TrimSpaceFunc,
				"upper":     stdlib.UpperFunc,
			},
		},
	}
}

// Load finds every .hcl file under paths and translates them into one model.
// Files are processed in sorted order; programs keep their declaration order
// within a file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, model, file, hclFile); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "world", model.World != nil, "programs", len(model.Programs))
	return model, nil
}

// Parse decodes a single in-memory HCL document. Relative world files are
// resolved against the directory of filename.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	model := config.NewModel()
	if err := l.decodeInto(ctx, model, filename, hclFile); err != nil {
		return nil, err
	}
	return model, nil
}

func (l *Loader) decodeInto(ctx context.Context, model *config.Model, filename string, file *hcl.File) error {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, l.evalCtx, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	for _, block := range root.Settings {
		settings, diags := l.translateSettings(block, filename)
		if diags.HasErrors() {
			return fmt.Errorf("invalid settings in %s: %w", filename, diags)
		}
		if err := model.SetSettings(settings); err != nil {
			return err
		}
	}
	for _, block := range root.Worlds {
		w, err := l.translateWorld(block, filename)
		if err != nil {
			return err
		}
		if err := model.SetWorld(w); err != nil {
			return err
		}
	}
	for _, block := range root.Programs {
		p, diags := l.translateProgram(block, filename)
		if diags.HasErrors() {
			return fmt.Errorf("invalid program %q in %s: %w", block.Name, filename, diags)
		}
		if err := model.AddProgram(p); err != nil {
			return err
		}
	}

	logger.Debug("Decoded HCL file.", "file", filename, "settings", len(root.Settings), "worlds", len(root.Worlds), "programs", len(root.Programs))
	return nil
}
