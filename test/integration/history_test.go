package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fitick/test/integration/harness"
)

func TestHistoryDel_RemovesRecord(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	records := seedHistory(t, env, 2)

	result := harness.RunCommand(t, env, "history", "del", records[0].ID)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "deleted")

	// The other record survives
	export := harness.RunCommand(t, env, "history", "export", "--format=json")
	harness.AssertSuccess(t, export)
	harness.AssertStdoutContains(t, export, records[1].ID)
	harness.AssertStdoutNotContains(t, export, records[0].ID)
}

func TestHistoryDel_UnknownID(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	seedHistory(t, env, 1)

	result := harness.RunCommand(t, env, "history", "del", "no-such-id")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "no workout record")
}

func TestHistoryClear_Force(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	seedHistory(t, env, 3)

	result := harness.RunCommand(t, env, "history", "clear", "--force")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Removed 3 records")

	again := harness.RunCommand(t, env, "history", "clear", "--force")
	harness.AssertSuccess(t, again)
	harness.AssertStdoutContains(t, again, "already empty")
}

func TestHistoryExport_YAML(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	seedHistory(t, env, 2)

	result := harness.RunCommand(t, env, "history", "export")
	harness.AssertSuccess(t, result)

	var exported []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(result.Stdout), &exported))
	require.Len(t, exported, 2)
	assert.Equal(t, "45s/15s × 8", exported[0]["title"])
	assert.Equal(t, 8, exported[0]["sets"])
	assert.NotEmpty(t, exported[0]["completed_at"])
}

func TestHistoryExport_ToFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	seedHistory(t, env, 1)
	outPath := filepath.Join(t.TempDir(), "export.json")

	result := harness.RunCommand(t, env, "history", "export", "--format=json", "-o", outPath)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Exported 1 records")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "work_seconds")
}
