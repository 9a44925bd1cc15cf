package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/spritegen/internal/pipeline"
	"github.com/alexisbeaulieu97/spritegen/internal/render"
	"github.com/alexisbeaulieu97/spritegen/internal/tui"
	"github.com/alexisbeaulieu97/spritegen/pkg/sprite"
)

type previewOptions struct {
	ConfigPath     string
	OutputDir      string
	Verbose        bool
	LogFormat      string
	NonInteractive bool
	Overrides      overrides

	Out    io.Writer
	ErrOut io.Writer
}

var previewCmdRunner = runPreview

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}
	var seed uint64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview sprites in the terminal",
		Long: `Preview opens an interactive viewer when stdout is a terminal: r regenerates
with a fresh seed, n/p browse the batch, s saves the displayed sprite as PNG.
Otherwise every sprite of the batch is printed once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.LogFormat = root.logFormat
			opts.NonInteractive = opts.NonInteractive || !term.IsTerminal(int(os.Stdout.Fd()))
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

			return previewCmdRunner(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", ".", "Directory saved sprites are written to")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Override the configured seed")
	cmd.Flags().IntVarP(&opts.Overrides.count, "count", "n", 0, "Override the configured sprite count")
	cmd.Flags().IntVar(&opts.Overrides.scale, "scale", 0, "Pixel scale of saved PNG files")
	cmd.Flags().BoolVar(&opts.NonInteractive, "no-tui", false, "Print the batch instead of opening the viewer")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPreview(ctx context.Context, opts previewOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := writerOr(opts.Out, os.Stdout)

	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	// The viewer owns the terminal, so logs only go out in batch mode.
	logOut := io.Discard
	if opts.NonInteractive {
		logOut = writerOr(opts.ErrOut, os.Stderr)
	}
	log, err := newLogger(opts.Verbose, opts.LogFormat, logOut)
	if err != nil {
		return err
	}

	gen, err := pipeline.New(cfg, pipeline.WithLogger(log))
	if err != nil {
		return err
	}

	if opts.NonInteractive {
		summary, genErr := gen.Generate(ctx)
		for _, res := range summary.Results {
			fmt.Fprintf(out, "#%d\n", res.Index)
			if res.Sprite == nil {
				fmt.Fprintf(out, "failed: %v\n\n", res.Error)
				continue
			}
			fmt.Fprintf(out, "%s\n\n", render.Terminal(res.Sprite, nil))
		}
		return genErr
	}

	scale := cfg.Output.Scale
	saver := func(s *sprite.Sprite, seed uint64, index int) (string, error) {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		path := filepath.Join(opts.OutputDir, spriteFileName(cfg.Name, seed, index, render.Extension(render.FormatPNG)))
		if err := writeSprite(path, s, render.Options{Format: render.FormatPNG, Scale: scale}); err != nil {
			return "", err
		}
		return path, nil
	}

	program := tea.NewProgram(tui.NewModel(ctx, tui.Options{
		Generator: gen,
		Name:      cfg.Name,
		Saver:     saver,
	}), tea.WithContext(ctx), tea.WithOutput(out))

	_, err = program.Run()
	return err
}
