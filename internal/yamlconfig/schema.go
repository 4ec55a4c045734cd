// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlconfig

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/mapload"
	"gopkg.in/yaml.v3"
)

type document struct {
	Settings *settingsNode  `yaml:"settings"`
	World    *worldNode     `yaml:"world"`
	Programs []*programNode `yaml:"programs"`
}

type settingsNode struct {
	MaxCallDepth int `yaml:"max_call_depth"`
}

type worldNode struct {
	Rows rowList `yaml:"rows"`
}

type programNode struct {
	Name         string          `yaml:"name"`
	Reset        bool            `yaml:"reset"`
	Instructions instructionList `yaml:"instructions"`
	Expect       *expectNode     `yaml:"expect"`
}

type expectNode struct {
	Position *positionNode `yaml:"position"`
	Map      rowList       `yaml:"map"`
}

// rowList is a sequence of map rows, or a block scalar holding the whole map.
// Rows are kept verbatim since spaces are cells too.
type rowList []string

func (l *rowList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = rowList(mapload.SplitLines(value.Value))
		return nil
	case yaml.SequenceNode:
		rows := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var row string
			if err := node.Decode(&row); err != nil {
				return err
			}
			rows = append(rows, row)
		}
		*l = rowList(rows)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("line %d: expected string or sequence for rows but found %s", value.Line, value.ShortTag())
	}
}

// instructionList is a sequence of tokens, or a block scalar with one token
// per line. Blank lines in the scalar form are dropped.
type instructionList []string

func (l *instructionList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		var out []string
		for _, line := range mapload.SplitLines(value.Value) {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
		*l = instructionList(out)
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			items = append(items, str)
		}
		*l = instructionList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("line %d: expected string or sequence for instructions but found %s", value.Line, value.ShortTag())
	}
}

// positionNode accepts [x, y] or {x: .., y: ..}.
type positionNode config.Position

func (p *positionNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []int
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: position needs exactly two coordinates, got %d", value.Line, len(xy))
		}
		*p = positionNode{X: xy[0], Y: xy[1]}
		return nil
	case yaml.MappingNode:
		var obj struct {
			X *int `yaml:"x"`
			Y *int `yaml:"y"`
		}
		if err := value.Decode(&obj); err != nil {
			return err
		}
		if obj.X == nil || obj.Y == nil {
			return fmt.Errorf("line %d: position needs both x and y", value.Line)
		}
		*p = positionNode{X: *obj.X, Y: *obj.Y}
		return nil
	case yaml.AliasNode:
		return p.UnmarshalYAML(value.Alias)
	default:
		return fmt.Errorf("line %d: expected sequence or mapping for position but found %s", value.Line, value.ShortTag())
	}
}
