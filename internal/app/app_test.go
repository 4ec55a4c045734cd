package app_test

import (
	"context"
	"testing"

	"github.com/specialistvlad/lightbot/internal/app"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/interpreter"
	"github.com/specialistvlad/lightbot/internal/mapload"
	"github.com/specialistvlad/lightbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioHCL = `
world {
  rows = ["R..", "O..", "..."]
}

program "light_one" {
  instructions = ["FORWARD", "LIGHT"]

  expect {
    position = [1, 0]
    map      = [".x.", "O..", "..."]
  }
}
`

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	// --- Arrange / Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": scenarioHCL})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertProgramRan(t, result, "light_one")
	testutil.AssertProgramStatus(t, result, "light_one", "passed")
	assert.Contains(t, result.Output, "position: (1, 0) facing right\n")
	assert.Contains(t, result.Output, "summary: 1 programs, 0 done, 1 passed, 0 failed, 0 errors, 0 skipped\n")
}

func TestRun_ProgramsAccumulateUntilReset(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
world {
  rows = ["R..", "O..", "..."]
}

program "first" {
  instructions = ["FORWARD"]
  expect {
    position = [1, 0]
  }
}

program "second" {
  instructions = ["FORWARD"]
  expect {
    position = [2, 0]
  }
}

program "fresh" {
  reset        = true
  instructions = ["FORWARD"]
  expect {
    position = [1, 0]
  }
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertProgramStatus(t, result, "first", "passed")
	testutil.AssertProgramStatus(t, result, "second", "passed")
	testutil.AssertProgramStatus(t, result, "fresh", "passed")
}

func TestRun_ExpectationFailed(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
world {
  rows = ["R..", "O..", "..."]
}

program "off_by_one" {
  instructions = ["FORWARD", "FORWARD"]
  expect {
    position = [1, 0]
    map      = ["x..", "O..", "..."]
  }
}
`,
	}

	result := testutil.RunIntegrationTest(t, files)

	require.ErrorIs(t, result.Err, app.ErrExpectationFailed)
	testutil.AssertProgramStatus(t, result, "off_by_one", "failed")
	assert.Contains(t, result.Output, "mismatch: position: want (1, 0), got (2, 0)\n")
	assert.Contains(t, result.Output, `mismatch: map row 0: want "x..", got "..."`)
}

func TestRun_ErrorSkipsRemainingPrograms(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
world {
  rows = ["R..", "O..", "..."]
}

program "moves" {
  instructions = ["FORWARD", "CALL missing()", "FORWARD"]
}

program "after" {
  instructions = ["LEFT"]
}
`,
	}

	result := testutil.RunIntegrationTest(t, files)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, interpreter.ErrUndefinedFunction)
	assert.Contains(t, result.Err.Error(), `program "moves"`)
	testutil.AssertProgramStatus(t, result, "moves", "error")
	testutil.AssertProgramStatus(t, result, "after", "skipped")
	// The robot moved once before the failing call.
	x, y := result.App.Session().Position()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
}

func TestRun_NoPrograms(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": "world {\n  rows = [\"R\"]\n}\n"})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "No programs configured")
	assert.Contains(t, result.Output, "summary: 0 programs")
}

func TestRun_ProgramFilter(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
world {
  rows = ["R.."]
}

program "a" {
  instructions = ["FORWARD"]
}

program "b" {
  instructions = ["FORWARD", "FORWARD"]
}
`,
	}

	t.Run("selected only", func(t *testing.T) {
		t.Parallel()

		result := testutil.RunIntegrationTest(t, files, func(c *app.Config) { c.Programs = []string{"b"} })

		require.NoError(t, result.Err)
		assert.NotContains(t, result.Output, "== a:")
		testutil.AssertProgramStatus(t, result, "b", "done")
		x, _ := result.App.Session().Position()
		assert.Equal(t, 2, x)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		result := testutil.RunIntegrationTest(t, files, func(c *app.Config) { c.Programs = []string{"zzz"} })

		require.ErrorIs(t, result.Err, app.ErrUnknownProgram)
	})
}

func TestRun_MaxDepth(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
settings {
  max_call_depth = 2
}

world {
  rows = ["R.."]
}

program "deep" {
  instructions = ["REPEAT 1", "REPEAT 1", "REPEAT 1", "FORWARD", "ENDREPEAT", "ENDREPEAT", "ENDREPEAT"]
}
`,
	}

	t.Run("settings limit applies", func(t *testing.T) {
		t.Parallel()

		result := testutil.RunIntegrationTest(t, files)

		require.ErrorIs(t, result.Err, interpreter.ErrCallDepthExceeded)
	})

	t.Run("flag overrides settings", func(t *testing.T) {
		t.Parallel()

		result := testutil.RunIntegrationTest(t, files, func(c *app.Config) { c.MaxDepth = 3 })

		require.NoError(t, result.Err)
		testutil.AssertProgramStatus(t, result, "deep", "done")
	})
}

func TestRun_MixedFormats(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"world.toml": "[world]\nrows = [\"R..\", \"O..\", \"...\"]\n",
		"programs.yaml": `
programs:
  - name: yaml_program
    instructions: [FORWARD, LIGHT]
    expect: {position: [1, 0]}
`,
		"more.hcl": `
program "hcl_program" {
  instructions = ["LIGHT"]
  expect {
    map = ["x..", "O..", "..."]
  }
}
`,
	}

	result := testutil.RunIntegrationTest(t, files)

	require.NoError(t, result.Err)
	// Loaders run HCL first, then YAML, then TOML.
	testutil.AssertProgramStatus(t, result, "hcl_program", "passed")
	testutil.AssertProgramStatus(t, result, "yaml_program", "passed")
}

func TestRun_YAMLOutput(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": scenarioHCL}, func(c *app.Config) {
		c.OutputFormat = "yaml"
	})

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "program: light_one")
	assert.Contains(t, result.Output, "status: passed")
}

func TestRun_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := testutil.RunIntegrationTestWithContext(ctx, t, map[string]string{"main.hcl": scenarioHCL})

	require.ErrorIs(t, result.Err, context.Canceled)
}

func TestNewApp_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		files  map[string]string
		wantIs error
	}{
		{
			name:   "no world",
			files:  map[string]string{"main.hcl": "program \"p\" {\n  instructions = []\n}\n"},
			wantIs: config.ErrMissingWorld,
		},
		{
			name:   "no start marker",
			files:  map[string]string{"main.hcl": "world {\n  rows = [\"...\"]\n}\n"},
			wantIs: mapload.ErrNoStart,
		},
		{
			name:   "ragged map",
			files:  map[string]string{"main.hcl": "world {\n  rows = [\"R..\", \"..\"]\n}\n"},
			wantIs: mapload.ErrRaggedRows,
		},
		{
			name: "world in two formats",
			files: map[string]string{
				"a.hcl":  "world {\n  rows = [\"R\"]\n}\n",
				"b.yaml": "world: {rows: [L]}\n",
			},
			wantIs: config.ErrDuplicateWorld,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunIntegrationTest(t, tc.files)

			require.ErrorIs(t, result.Err, tc.wantIs)
			assert.Nil(t, result.App)
		})
	}
}
