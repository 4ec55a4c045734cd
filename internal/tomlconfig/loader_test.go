package tomlconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullDocument(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
[settings]
max_call_depth = 32

[world]
rows = """
R..
O..
...
"""

[[programs]]
name = "light_one"
reset = true
instructions = ["FORWARD", "LIGHT"]

[programs.expect]
position = [1, 0]
map = [".x.", "O..", "..."]

[[programs]]
name = "twice"
instructions = """
REPEAT 2

  RIGHT
ENDREPEAT
"""
`
	// --- Act ---
	model, err := NewLoader().Parse("main.toml", []byte(src))

	// --- Assert ---
	require.NoError(t, err)
	want := &config.Model{
		Settings: &config.Settings{MaxCallDepth: 32, Source: "main.toml"},
		World:    &config.World{Rows: []string{"R..", "O..", "..."}, Source: "main.toml"},
		Programs: []*config.Program{
			{
				Name:         "light_one",
				Instructions: []string{"FORWARD", "LIGHT"},
				Reset:        true,
				Expect: &config.Expectation{
					Position: &config.Position{X: 1, Y: 0},
					Map:      []string{".x.", "O..", "..."},
				},
				Source: "main.toml",
			},
			{
				Name:         "twice",
				Instructions: []string{"REPEAT 2", "RIGHT", "ENDREPEAT"},
				Source:       "main.toml",
			},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
		wantIs  error
	}{
		{name: "syntax", src: "[world\n", wantErr: "failed to parse TOML file"},
		{name: "unknown key", src: "[world]\nrows = [\"R\"]\ncolor = \"red\"\n", wantErr: "unknown keys world.color"},
		{name: "non-string row", src: "[world]\nrows = [1, 2]\n", wantErr: "expected string"},
		{name: "empty rows", src: "[world]\nrows = []\n", wantErr: "rows are required"},
		{name: "unnamed program", src: "[[programs]]\ninstructions = []\n", wantErr: "name is required"},
		{name: "bad position", src: "[[programs]]\nname = \"p\"\n[programs.expect]\nposition = [1, 2, 3]\n", wantErr: "exactly two coordinates"},
		{name: "negative depth", src: "[settings]\nmax_call_depth = -2\n", wantErr: "must not be negative"},
		{name: "depth above limit", src: "[settings]\nmax_call_depth = 2500000\n", wantErr: "must be at most 100000"},
		{name: "duplicate program", src: "[[programs]]\nname = \"p\"\n[[programs]]\nname = \"p\"\n", wantIs: config.ErrDuplicateProgram},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().Parse("main.toml", []byte(tc.src))

			require.Error(t, err)
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
			if tc.wantErr != "" {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world.toml"), []byte("[world]\nrows = [\"R\"]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("world: {rows: [L]}\n"), 0o644))

	model, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	require.NotNil(t, model.World)
	assert.Equal(t, []string{"R"}, model.World.Rows)
	assert.Equal(t, filepath.Join(dir, "world.toml"), model.World.Source)
}
