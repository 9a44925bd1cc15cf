package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/spritegen/internal/config"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

func validateLogFormat(format string) error {
	switch format {
	case logFormatConsole, logFormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported log format %q (expected %s or %s)", format, logFormatConsole, logFormatJSON)
	}
}

func validateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("output directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("inspect output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}
	return nil
}

// overrides carries flag values that replace configuration fields when set.
type overrides struct {
	seed   *uint64
	count  int
	format string
	scale  int
}

func (o overrides) apply(cfg *config.Config) error {
	if o.seed != nil {
		seed := *o.seed
		cfg.Seed = &seed
	}
	if o.count < 0 {
		return fmt.Errorf("count must be positive, got %d", o.count)
	}
	if o.count > 0 {
		cfg.Count = o.count
	}
	if o.format != "" {
		if o.format != config.FormatSVG && o.format != config.FormatPNG {
			return fmt.Errorf("unsupported format %q (expected %s or %s)", o.format, config.FormatSVG, config.FormatPNG)
		}
		cfg.Output.Format = o.format
	}
	if o.scale < 0 {
		return fmt.Errorf("scale must be positive, got %d", o.scale)
	}
	if o.scale > 0 {
		cfg.Output.Scale = o.scale
	}
	return nil
}

// spriteFileName is <name>-<seed>-<index><ext>.
func spriteFileName(name string, seed uint64, index int, ext string) string {
	return fmt.Sprintf("%s-%d-%d%s", name, seed, index, ext)
}
