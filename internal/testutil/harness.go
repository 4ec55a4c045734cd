package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/lightbot/internal/app"
	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/hcl"
	"github.com/specialistvlad/lightbot/internal/tomlconfig"
	"github.com/specialistvlad/lightbot/internal/yamlconfig"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Output    string
	Err       error
	App       *app.App
}

// Loader returns the loader set the CLI uses.
func Loader() config.Loader {
	return config.MultiLoader{hcl.NewLoader(), yamlconfig.NewLoader(), tomlconfig.NewLoader()}
}

// WriteFiles creates files under a fresh temporary directory and returns it.
// Names may contain subdirectories.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// RunIntegrationTest writes files to a temporary directory, builds the app
// over it and runs every program with a background context. Options may
// adjust the app configuration before the app is created.
func RunIntegrationTest(t *testing.T, files map[string]string, opts ...func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts ...func(*app.Config)) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	appConfig := &app.Config{
		ConfigPaths:  []string{dir},
		LogLevel:     "debug",
		LogFormat:    "text",
		OutputFormat: "text",
	}
	for _, opt := range opts {
		opt(appConfig)
	}

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}

	testApp, err := app.NewApp(outBuffer, logBuffer, appConfig, Loader())
	if err == nil {
		err = testApp.Run(ctx)
	}

	if os.Getenv("LIGHTBOT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       err,
		App:       testApp,
	}
}
