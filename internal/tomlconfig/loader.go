// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tomlconfig

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/fsutil"
	"github.com/specialistvlad/lightbot/internal/mapload"
)

type document struct {
	Settings *struct {
		MaxCallDepth int `toml:"max_call_depth"`
	} `toml:"settings"`
	World *struct {
		Rows lines `toml:"rows"`
	} `toml:"world"`
	Programs []struct {
		Name         string `toml:"name"`
		Reset        bool   `toml:"reset"`
		Instructions tokens `toml:"instructions"`
		Expect       *struct {
			Position []int `toml:"position"`
			Map      lines `toml:"map"`
		} `toml:"expect"`
	} `toml:"programs"`
}

// lines is an array of strings or one multi-line string.
type lines []string

func (l *lines) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*l = lines(mapload.SplitLines(strings.TrimPrefix(v, "\n")))
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("item %d: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		*l = lines(out)
		return nil
	}
	return fmt.Errorf("expected string or array of strings, got %T", v)
}

// tokens is like lines, but the multi-line string form is trimmed line by
// line and blank lines are dropped.
type tokens []string

func (t *tokens) UnmarshalTOML(v any) error {
	var raw lines
	if err := raw.UnmarshalTOML(v); err != nil {
		return err
	}
	if _, ok := v.(string); !ok {
		*t = tokens(raw)
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	*t = tokens(out)
	return nil
}

// Loader is the TOML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .toml file under paths and decodes them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	files, err := fsutil.FindFiles(paths, ".toml")
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Discovered TOML files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read TOML file %s: %w", file, err)
		}
		if err := l.decodeInto(model, file, raw); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// Parse decodes one in-memory TOML document.
func (l *Loader) Parse(filename string, src []byte) (*config.Model, error) {
	model := config.NewModel()
	if err := l.decodeInto(model, filename, src); err != nil {
		return nil, err
	}
	return model, nil
}

func (l *Loader) decodeInto(model *config.Model, filename string, src []byte) error {
	var doc document
	md, err := toml.NewDecoder(bytes.NewReader(src)).Decode(&doc)
	if err != nil {
		return fmt.Errorf("failed to parse TOML file %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("failed to parse TOML file %s: unknown keys %s", filename, strings.Join(keys, ", "))
	}

	if doc.Settings != nil {
		if doc.Settings.MaxCallDepth < 0 {
			return fmt.Errorf("invalid settings in %s: max_call_depth must not be negative", filename)
		}
		if doc.Settings.MaxCallDepth > config.MaxCallDepthLimit {
			return fmt.Errorf("invalid settings in %s: max_call_depth must be at most %d", filename, config.MaxCallDepthLimit)
		}
		if err := model.SetSettings(&config.Settings{MaxCallDepth: doc.Settings.MaxCallDepth, Source: filename}); err != nil {
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
		if p.Name == "" {
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
				if len(p.Expect.Position) != 2 {
					return fmt.Errorf("program %q in %s: position needs exactly two coordinates", p.Name, filename)
				}
				prog.Expect.Position = &config.Position{X: p.Expect.Position[0], Y: p.Expect.Position[1]}
			}
		}
		if err := model.AddProgram(prog); err != nil {
			return err
		}
	}
	return nil
}
