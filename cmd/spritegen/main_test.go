package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testConfig = `version: "1.0"
name: ships
seed: 5
count: 2
sprite:
  dimensions: [7, 9]
  palette: ["#FF3366", "#33CCFF"]
steps:
  - type: edges
  - type: padding
    dimensions: [12, 14]
output:
  scale: 2
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sprites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "--log-format", "xml", "version")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported log format")
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	output, err := executeCommand(newRootCmd(), "version")
	require.NoError(t, err)
	require.Contains(t, output, "spritegen 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}
