package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spritegen/internal/config"
	"github.com/alexisbeaulieu97/spritegen/internal/pipeline"
	"github.com/alexisbeaulieu97/spritegen/internal/render"
)

type generateOptions struct {
	ConfigPath string
	OutputDir  string
	Workers    int
	Verbose    bool
	LogFormat  string
	Overrides  overrides

	Out    io.Writer
	ErrOut io.Writer
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of sprites and write them to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if err := validateOutputDir(opts.OutputDir); err != nil {
				return err
			}

			return generateCmdRunner(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", ".", "Directory the sprites are written to")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Override the configured seed")
	cmd.Flags().IntVarP(&opts.Overrides.count, "count", "n", 0, "Override the configured sprite count")
	cmd.Flags().StringVarP(&opts.Overrides.format, "format", "f", "", "Override the output format (svg or png)")
	cmd.Flags().IntVar(&opts.Overrides.scale, "scale", 0, "Override the output scale")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Number of sprites generated concurrently")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runGenerate(ctx context.Context, opts generateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := writerOr(opts.Out, os.Stdout)

	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbose, opts.LogFormat, writerOr(opts.ErrOut, os.Stderr))
	if err != nil {
		return err
	}

	gen, err := pipeline.New(cfg, pipeline.WithLogger(log), pipeline.WithWorkers(opts.Workers))
	if err != nil {
		return err
	}

	summary, genErr := gen.Generate(ctx)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	renderOpts := render.Options{Format: cfg.Output.Format, Scale: cfg.Output.Scale, Unit: cfg.Output.Unit}
	for _, res := range summary.Results {
		if res.Sprite == nil {
			continue
		}
		name := spriteFileName(cfg.Name, summary.Seed, res.Index, render.Extension(cfg.Output.Format))
		path := filepath.Join(opts.OutputDir, name)
		if err := writeSprite(path, res.Sprite, renderOpts); err != nil {
			return err
		}
		fmt.Fprintln(out, path)
	}

	log.WithFields(map[string]any{
		"written": summary.Succeeded,
		"failed":  summary.Failed,
		"seed":    summary.Seed,
	}).Info("generation complete")

	if genErr != nil {
		return fmt.Errorf("%d of %d sprites failed: %w", summary.Failed, summary.Total, genErr)
	}
	return nil
}

func loadConfig(path string, o overrides) (*config.Config, error) {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, err
	}
	if err := o.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writerOr(w io.Writer, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
