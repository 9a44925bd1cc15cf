package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spritegen/internal/logger"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "spritegen",
		Short:         "spritegen procedurally generates symmetric pixel-art sprites",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateLogFormat(flags.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatConsole, "Log output format (console or json)")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger writing to w.
func newLogger(verbose bool, format string, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: format != logFormatJSON,
		Writer:        w,
		Component:     "spritegen",
	})
}
