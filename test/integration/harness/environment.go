package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own FITICK_HOME.
type TestEnvironment struct {
	FitickHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp FITICK_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		FitickHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out FITICK_* variables and sets FITICK_HOME to the temp
// directory with debug logging disabled.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["FITICK_HOME"] = true
	overrideKeys["FITICK_DEBUG"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "FITICK_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"FITICK_HOME="+e.FitickHome,
		"FITICK_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.FitickHome, "history.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.FitickHome, "settings.json")
}

// WriteSettings writes a settings.json into the test home.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
