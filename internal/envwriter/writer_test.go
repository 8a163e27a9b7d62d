package envwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistUnixWritesSourceableSnippet(t *testing.T) {
	dir := t.TempDir()
	w := &ScriptWriter{Dir: dir, goos: "linux"}

	require.NoError(t, w.Persist("prod", "ap-southeast-1"))

	content, err := os.ReadFile(filepath.Join(dir, "env.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "export AWS_PROFILE=prod")
	assert.Contains(t, string(content), "export AWS_DEFAULT_REGION=ap-southeast-1")
	assert.Equal(t, filepath.Join(dir, "env.sh"), w.ScriptPath())
}

func TestPersistWindowsWritesBatchHelper(t *testing.T) {
	dir := t.TempDir()
	w := &ScriptWriter{Dir: dir, goos: "windows", NoRun: true}

	require.NoError(t, w.Persist("staging", "eu-central-1"))

	content, err := os.ReadFile(filepath.Join(dir, "set_aws_profile.bat"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "setx AWS_PROFILE staging")
	assert.Contains(t, string(content), "setx AWS_DEFAULT_REGION eu-central-1")
	assert.Equal(t, filepath.Join(dir, "set_aws_profile.bat"), w.ScriptPath())
}

func TestPersistOverwritesPreviousSelection(t *testing.T) {
	dir := t.TempDir()
	w := &ScriptWriter{Dir: dir, goos: "linux"}

	require.NoError(t, w.Persist("prod", "ap-southeast-1"))
	require.NoError(t, w.Persist("staging", "eu-central-1"))

	content, err := os.ReadFile(w.ScriptPath())
	require.NoError(t, err)
	assert.NotContains(t, string(content), "prod")
	assert.Contains(t, string(content), "export AWS_PROFILE=staging")
}

func TestPersistCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "awsctx")
	w := &ScriptWriter{Dir: dir, goos: "linux"}

	require.NoError(t, w.Persist("default", "us-east-1"))
	_, err := os.Stat(w.ScriptPath())
	require.NoError(t, err)
}
