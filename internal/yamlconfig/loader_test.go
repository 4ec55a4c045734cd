package yamlconfig

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
settings:
  max_call_depth: 64
world:
  rows: ["R..", "O..", "..."]
programs:
  - name: light_one
    reset: true
    instructions: [FORWARD, LIGHT]
    expect:
      position: [1, 0]
      map: [".x.", "O..", "..."]
  - name: block
    instructions: |
      FUNCTION hop(n)

        REPEAT n
          FORWARD
        ENDREPEAT
      ENDFUNCTION
      CALL hop(2)
    expect:
      position: {x: 0, y: 0}
`
	// --- Act ---
	model, err := NewLoader().Parse(context.Background(), "main.yaml", []byte(src))

	// --- Assert ---
	require.NoError(t, err)
	want := &config.Model{
		Settings: &config.Settings{MaxCallDepth: 64, Source: "main.yaml"},
		World:    &config.World{Rows: []string{"R..", "O..", "..."}, Source: "main.yaml"},
		Programs: []*config.Program{
			{
				Name:         "light_one",
				Instructions: []string{"FORWARD", "LIGHT"},
				Reset:        true,
				Expect: &config.Expectation{
					Position: &config.Position{X: 1, Y: 0},
					Map:      []string{".x.", "O..", "..."},
				},
				Source: "main.yaml",
			},
			{
				Name:         "block",
				Instructions: []string{"FUNCTION hop(n)", "REPEAT n", "FORWARD", "ENDREPEAT", "ENDFUNCTION", "CALL hop(2)"},
				Expect:       &config.Expectation{Position: &config.Position{X: 0, Y: 0}},
				Source:       "main.yaml",
			},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RowsAsBlockScalar(t *testing.T) {
	t.Parallel()

	src := "world:\n  rows: |\n    R #\n    O..\n"

	model, err := NewLoader().Parse(context.Background(), "main.yaml", []byte(src))

	require.NoError(t, err)
	assert.Equal(t, []string{"R #", "O.."}, model.World.Rows)
}

func TestParse_MultipleDocuments(t *testing.T) {
	t.Parallel()

	src := "world:\n  rows: [R]\n---\nprograms:\n  - name: a\n    instructions: [LEFT]\n"

	model, err := NewLoader().Parse(context.Background(), "main.yaml", []byte(src))

	require.NoError(t, err)
	require.NotNil(t, model.World)
	require.Len(t, model.Programs, 1)
	assert.Equal(t, "a", model.Programs[0].Name)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().Parse(context.Background(), "empty.yaml", nil)

	require.NoError(t, err)
	assert.Nil(t, model.World)
	assert.Empty(t, model.Programs)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
		wantIs  error
	}{
		{name: "unknown key", src: "robot: {}\n", wantErr: "failed to parse YAML file"},
		{name: "unknown program key", src: "programs:\n  - name: a\n    steps: [LEFT]\n", wantErr: "failed to parse YAML file"},
		{name: "bad syntax", src: "world: [\n", wantErr: "failed to parse YAML file"},
		{name: "short position", src: "programs:\n  - name: a\n    expect: {position: [1]}\n", wantErr: "exactly two coordinates"},
		{name: "position missing y", src: "programs:\n  - name: a\n    expect: {position: {x: 1}}\n", wantErr: "both x and y"},
		{name: "position scalar", src: "programs:\n  - name: a\n    expect: {position: 3}\n", wantErr: "expected sequence or mapping"},
		{name: "instructions mapping", src: "programs:\n  - name: a\n    instructions: {a: b}\n", wantErr: "expected string or sequence"},
		{name: "unnamed program", src: "programs:\n  - instructions: [LEFT]\n", wantErr: "name is required"},
		{name: "empty world", src: "world: {rows: []}\n", wantErr: "rows are required"},
		{name: "negative depth", src: "settings: {max_call_depth: -1}\n", wantErr: "must not be negative"},
		{name: "depth above limit", src: "settings: {max_call_depth: 100001}\n", wantErr: "must be at most 100000"},
		{name: "duplicate program", src: "programs:\n  - name: a\n  - name: a\n", wantIs: config.ErrDuplicateProgram},
		{name: "world in two documents", src: "world: {rows: [R]}\n---\nworld: {rows: [L]}\n", wantIs: config.ErrDuplicateWorld},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().Parse(context.Background(), "main.yaml", []byte(tc.src))

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

func TestLoad_BothExtensions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte("world: {rows: [R.]}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.YAML"), []byte("programs: [{name: go, instructions: [FORWARD]}]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.hcl"), []byte("not yaml {"), 0o644))

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, model.World)
	assert.Equal(t, filepath.Join(dir, "a.yml"), model.World.Source)
	require.Len(t, model.Programs, 1)
	assert.Equal(t, "go", model.Programs[0].Name)
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorIs(t, err, os.ErrNotExist)
}
