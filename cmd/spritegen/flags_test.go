package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spritegen/internal/config"
)

func TestValidateConfigPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	cases := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "empty", path: "", wantErr: "required"},
		{name: "whitespace", path: "   ", wantErr: "required"},
		{name: "missing", path: filepath.Join(dir, "missing.yaml"), wantErr: "does not exist"},
		{name: "directory", path: dir, wantErr: "is a directory"},
		{name: "file", path: file},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validateConfigPath(tc.path)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	require.NoError(t, validateOutputDir(dir))
	require.NoError(t, validateOutputDir(filepath.Join(dir, "new")))
	require.ErrorContains(t, validateOutputDir(file), "not a directory")
	require.ErrorContains(t, validateOutputDir(" "), "required")
}

func TestOverridesApply(t *testing.T) {
	t.Parallel()

	seed := uint64(99)
	cfg := &config.Config{Count: 1}
	cfg.Output.Format = config.FormatSVG

	require.NoError(t, overrides{seed: &seed, count: 3, format: config.FormatPNG, scale: 6}.apply(cfg))
	require.Equal(t, uint64(99), *cfg.Seed)
	require.Equal(t, 3, cfg.Count)
	require.Equal(t, config.FormatPNG, cfg.Output.Format)
	require.Equal(t, 6, cfg.Output.Scale)

	seed = 1
	require.Equal(t, uint64(99), *cfg.Seed, "override seed is copied")

	require.ErrorContains(t, overrides{format: "gif"}.apply(cfg), "unsupported format")
	require.ErrorContains(t, overrides{count: -1}.apply(cfg), "count must be positive")
	require.ErrorContains(t, overrides{scale: -2}.apply(cfg), "scale must be positive")
}

func TestSpriteFileName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ships-42-3.png", spriteFileName("ships", 42, 3, ".png"))
}
