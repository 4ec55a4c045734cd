// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lightbot/internal/interpreter"
)

// MaxCallDepthLimit is the largest max_call_depth a configuration may set.
const MaxCallDepthLimit = interpreter.MaxDepthLimit

var (
	// ErrMissingWorld is returned when no world is configured.
	ErrMissingWorld = errors.New("no world defined")
	// ErrDuplicateWorld is returned when more than one world is configured.
	ErrDuplicateWorld = errors.New("world defined more than once")
	// ErrDuplicateSettings is returned when more than one settings block is configured.
	ErrDuplicateSettings = errors.New("settings defined more than once")
	// ErrDuplicateProgram is returned when two programs share a name.
	ErrDuplicateProgram = errors.New("program defined more than once")
)

// Model is the unified, format-agnostic representation of a lightbot
// configuration.
type Model struct {
	Settings *Settings
	World    *World
	Programs []*Program
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Settings tune the interpreter.
type Settings struct {
	// MaxCallDepth bounds REPEAT/CALL nesting. Zero means the default; loaders
	// reject values above MaxCallDepthLimit.
	MaxCallDepth int
	Source       string
}

// World is the map the robot starts on.
type World struct {
	Rows   []string
	Source string
}

// Program is one instruction list to run.
type Program struct {
	Name         string
	Instructions []string
	// Reset restores the initial world before this program runs. Without it
	// the program starts where the previous one stopped.
	Reset  bool
	Expect *Expectation
	Source string
}

// Expectation describes the state a program should leave behind. Nil fields
// are not checked.
type Expectation struct {
	Position *Position
	Map      []string
}

// Position is a robot location, column first.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SetWorld records the world, refusing a second one.
func (m *Model) SetWorld(w *World) error {
	if m.World != nil {
		return fmt.Errorf("%w: %s and %s", ErrDuplicateWorld, m.World.Source, w.Source)
	}
	m.World = w
	return nil
}

// SetSettings records the settings, refusing a second block.
func (m *Model) SetSettings(s *Settings) error {
	if m.Settings != nil {
		return fmt.Errorf("%w: %s and %s", ErrDuplicateSettings, m.Settings.Source, s.Source)
	}
	m.Settings = s
	return nil
}

// AddProgram appends a program, refusing duplicate names.
func (m *Model) AddProgram(p *Program) error {
	for _, existing := range m.Programs {
		if existing.Name == p.Name {
			return fmt.Errorf("%w: %q in %s and %s", ErrDuplicateProgram, p.Name, existing.Source, p.Source)
		}
	}
	m.Programs = append(m.Programs, p)
	return nil
}

// Merge folds other into m under the same uniqueness rules.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	if other.World != nil {
		if err := m.SetWorld(other.World); err != nil {
			return err
		}
	}
	if other.Settings != nil {
		if err := m.SetSettings(other.Settings); err != nil {
			return err
		}
	}
	for _, p := range other.Programs {
		if err := m.AddProgram(p); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the model is complete enough to run.
func (m *Model) Validate() error {
	if m.World == nil {
		return ErrMissingWorld
	}
	return nil
}

// MaxCallDepth returns the configured nesting limit, or zero for the default.
func (m *Model) MaxCallDepth() int {
	if m.Settings == nil {
		return 0
	}
	return m.Settings.MaxCallDepth
}
