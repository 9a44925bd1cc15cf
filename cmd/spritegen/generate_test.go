package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateWritesSVGFiles(t *testing.T) {
	cfgPath := writeConfig(t, testConfig)
	outDir := filepath.Join(t.TempDir(), "out")

	output, err := executeCommand(newRootCmd(), "generate", "--config", cfgPath, "--out", outDir)
	require.NoError(t, err)

	for _, name := range []string{"ships-5-0.svg", "ships-5-1.svg"} {
		path := filepath.Join(outDir, name)
		require.Contains(t, output, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "<svg "))
		require.Contains(t, string(data), `width="24px" height="28px"`)
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	cfgPath := writeConfig(t, testConfig)
	outDir := t.TempDir()

	_, err := executeCommand(newRootCmd(), "generate", "-c", cfgPath, "-o", outDir,
		"--seed", "9", "--count", "1", "--format", "png", "--scale", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "ships-9-0.png"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 36, img.Bounds().Dx())
	require.Equal(t, 42, img.Bounds().Dy())

	_, err = os.Stat(filepath.Join(outDir, "ships-9-1.png"))
	require.True(t, os.IsNotExist(err))
}

func TestGenerateRequiresConfig(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "generate", "--config", "/path/does/not/exist")
	require.ErrorContains(t, err, "does not exist")
}

func TestGenerateReportsInvalidConfig(t *testing.T) {
	cfgPath := writeConfig(t, "version: \"1.0\"\nname: bad\nsprite:\n  border: 2.5\n")

	err := runGenerate(context.Background(), generateOptions{
		ConfigPath: cfgPath,
		OutputDir:  t.TempDir(),
		Out:        &bytes.Buffer{},
		ErrOut:     &bytes.Buffer{},
	})
	require.ErrorContains(t, err, "sprite.border[0]")
}

func TestGenerateUsesRunner(t *testing.T) {
	original := generateCmdRunner
	t.Cleanup(func() { generateCmdRunner = original })

	var got generateOptions
	generateCmdRunner = func(_ context.Context, opts generateOptions) error {
		got = opts
		return nil
	}

	cfgPath := writeConfig(t, testConfig)
	_, err := executeCommand(newRootCmd(), "-v", "--log-format", "json", "generate", "-c", cfgPath, "--workers", "2")
	require.NoError(t, err)
	require.True(t, got.Verbose)
	require.Equal(t, "json", got.LogFormat)
	require.Equal(t, 2, got.Workers)
	require.Nil(t, got.Overrides.seed)
}
