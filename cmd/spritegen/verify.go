package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spritegen/internal/pipeline"
	"github.com/alexisbeaulieu97/spritegen/internal/render"
	"github.com/alexisbeaulieu97/spritegen/pkg/diff"
)

var (
	errVerifyMismatch = errors.New("rendered sprites differ from golden files")
	errVerifyNoSeed   = errors.New("verify needs a reproducible batch: set seed in the configuration or pass --seed")
)

type verifyOptions struct {
	ConfigPath string
	GoldenDir  string
	Update     bool
	Verbose    bool
	LogFormat  string
	Overrides  overrides

	Out    io.Writer
	ErrOut io.Writer
}

var verifyCmdRunner = runVerify

func newVerifyCmd(root *rootFlags) *cobra.Command {
	opts := verifyOptions{}
	var seed uint64

	cmd := &cobra.Command{
		Use:   "verify <config-file>",
		Short: "Compare rendered sprites against golden SVG files",
		Long: `Verify regenerates a seeded batch, renders every sprite to SVG and compares
the markup with <golden-dir>/<name>-<index>.svg. Differences are printed as
unified diffs and the command fails. --update rewrites the golden files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			opts.Verbose = root.verbose
			opts.LogFormat = root.logFormat
			opts.Out = cmd.OutOrStdout()
			opts.ErrOut = cmd.ErrOrStderr()
			if cmd.Flags().Changed("seed") {
				opts.Overrides.seed = &seed
			}

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			return verifyCmdRunner(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.GoldenDir, "golden", "g", "testdata", "Directory holding the golden SVG files")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "Rewrite golden files instead of comparing")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Override the configured seed")

	return cmd
}

func runVerify(ctx context.Context, opts verifyOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := writerOr(opts.Out, os.Stdout)

	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	if cfg.Seed == nil {
		return errVerifyNoSeed
	}

	log, err := newLogger(opts.Verbose, opts.LogFormat, writerOr(opts.ErrOut, os.Stderr))
	if err != nil {
		return err
	}

	gen, err := pipeline.New(cfg, pipeline.WithLogger(log))
	if err != nil {
		return err
	}

	summary, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	if opts.Update {
		if err := os.MkdirAll(opts.GoldenDir, 0o755); err != nil {
			return fmt.Errorf("create golden directory: %w", err)
		}
	}

	mismatches := 0
	for _, res := range summary.Results {
		path := filepath.Join(opts.GoldenDir, fmt.Sprintf("%s-%d.svg", cfg.Name, res.Index))
		actual := []byte(render.SVG(res.Sprite, cfg.Output.Scale, cfg.Output.Unit))

		if opts.Update {
			if err := os.WriteFile(path, actual, 0o644); err != nil {
				return fmt.Errorf("write golden %s: %w", path, err)
			}
			fmt.Fprintf(out, "updated %s\n", path)
			continue
		}

		expected, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				mismatches++
				fmt.Fprintf(out, "✖ %s: golden file missing\n", path)
				continue
			}
			return fmt.Errorf("read golden %s: %w", path, err)
		}

		unified, stats := diff.Unified(expected, actual, path, fmt.Sprintf("sprite #%d", res.Index))
		if !stats.Changed() {
			fmt.Fprintf(out, "✔ %s\n", path)
			continue
		}

		mismatches++
		fmt.Fprintf(out, "✖ %s (+%d -%d)\n%s", path, stats.Added, stats.Removed, unified)
	}

	log.WithFields(map[string]any{
		"checked":    len(summary.Results),
		"mismatches": mismatches,
	}).Debug("verification finished")

	if mismatches > 0 {
		return fmt.Errorf("%d of %d: %w", mismatches, len(summary.Results), errVerifyMismatch)
	}
	return nil
}
