// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .yaml and .yml file under paths and decodes them into one
// model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		if err := l.decodeInto(ctx, model, file, raw); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// Parse decodes an in-memory YAML stream.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	model := config.NewModel()
	if err := l.decodeInto(ctx, model, filename, src); err != nil {
		return nil, err
	}
	return model, nil
}

func (l *Loader) decodeInto(ctx context.Context, model *config.Model, filename string, src []byte) error {
	logger := ctxlog.FromContext(ctx)

	decoder := yaml.NewDecoder(bytes.NewReader(src))
	decoder.KnownFields(true)

	for n := 0; ; n++ {
		var doc document
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			if n == 0 {
				logger.Debug("YAML file is empty.", "file", filename)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
		}
		if err := translate(model, filename, &doc); err != nil {
			return err
		}
		logger.Debug("Decoded YAML document.", "file", filename, "document", n, "programs", len(doc.Programs))
	}
}

func translate(model *config.Model, filename string, doc *document) error {
	if doc.Settings != nil {
		if doc.Settings.MaxCallDepth < 0 {
			return fmt.Errorf("invalid settings in %s: max_call_depth must not be negative", filename)
		}
		if doc.Settings.MaxCallDepth > config.MaxCallDepthLimit {
			return fmt.Errorf("invalid settings in %s: max_call_depth must be at most %d", filename, config.MaxCallDepthLimit)
		}
		err := model.SetSettings(&config.Settings{MaxCallDepth: doc.Settings.MaxCallDepth, Source: filename})
		if err != nil {
			return err
		}
	}
	if doc.World != nil {
		if len(doc.World.Rows) == 0 {
			return fmt.Errorf("world in %s: rows are required", filename)
		}
		if err := model.SetWorld(&config.World{Rows: doc.World.Rows, Source: filename}); err != nil {
			return err
		}
	}
	for i, p := range doc.Programs {
		if p == nil || p.Name == "" {
			return fmt.Errorf("program #%d in %s: name is required", i+1, filename)
		}
		prog := &config.Program{
			Name:         p.Name,
			Instructions: p.Instructions,
			Reset:        p.Reset,
			Source:       filename,
		}
		if p.Expect != nil {
			prog.Expect = &config.Expectation{Map: p.Expect.Map}
			if p.Expect.Position != nil {
				pos := config.Position(*p.Expect.Position)
				prog.Expect.Position = &pos
			}
		}
		if err := model.AddProgram(prog); err != nil {
			return err
		}
	}
	return nil
}
