package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "destination": {
    "fields": ["company_id", "date", "clicks"],
    "key_fields": ["company_id", "date"],
    "increment_fields": ["clicks"]
  },
  "table": {
    "name": "stats",
    "columns": [
      {"name": "company_id", "type": "int"},
      {"name": "date", "type": "date"},
      {"name": "clicks", "type": "bigint"}
    ]
  }
}`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCommand(t *testing.T, args ...string) (exitCode int, stdout string, stderr string) {
	t.Helper()
	var in, out, errOut bytes.Buffer
	root := NewRootCommand(&in, &out, &errOut)
	root.cmd.SetArgs(args)
	exitCode = root.Execute()
	return exitCode, out.String(), errOut.String()
}

func TestPlanCommand(t *testing.T) {
	t.Parallel()
	path := writeTestConfig(t, testConfig)
	exitCode, stdout, stderr := runCommand(t, "plan", "--config", path, "--source", "in_stats")
	assert.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "CREATE TEMPORARY TABLE")
	assert.Contains(t, stdout, "UPDATE `stats` AS t")
	assert.Contains(t, stdout, "COALESCE(t.`clicks`, 0) + s.`clicks`")
	assert.Contains(t, stdout, "DROP TEMPORARY TABLE IF EXISTS")
}

func TestPlanCommandInvalidConfig(t *testing.T) {
	t.Parallel()
	path := writeTestConfig(t, `{"destination": {"fields": []}, "table": {"name": "stats", "columns": [{"name": "id", "type": "int"}]}}`)
	exitCode, _, stderr := runCommand(t, "plan", "--config", path, "--source", "in_stats")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "Invalid config")
}

func TestPlanCommandMissingFile(t *testing.T) {
	t.Parallel()
	exitCode, _, stderr := runCommand(t, "plan", "--config", "/missing/config.json", "--source", "in_stats")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "Cannot read config")
}

func TestRootHelp(t *testing.T) {
	t.Parallel()
	exitCode, stdout, _ := runCommand(t)
	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.Contains(stdout, "plan"))
}
