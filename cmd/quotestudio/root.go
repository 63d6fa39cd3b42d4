package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

const closeTimeout = 5 * time.Second

type rootFlags struct {
	profile   string
	configDir string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quotestudio",
		Short:         "Generate context-aware quote images, from the shell or over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultProfile := os.Getenv("APP_ENVIRONMENT")
	if defaultProfile == "" {
		defaultProfile = "local"
	}

	cmd.PersistentFlags().StringVarP(&flags.profile, "profile", "p", defaultProfile, "Config profile (configs/<profile>.yaml)")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newFavoritesCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newContextCmd(flags))
	cmd.AddCommand(newStatsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// withStudio opens the studio for one command, logging to stderr, and
// closes it afterwards.
func withStudio(cmd *cobra.Command, flags *rootFlags, fn func(ctx context.Context, s *Studio) error) error {
	return runWithStudio(cmd, flags, cmd.ErrOrStderr(), fn)
}

func runWithStudio(
	cmd *cobra.Command,
	flags *rootFlags,
	logOutput io.Writer,
	fn func(ctx context.Context, s *Studio) error,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openStudio(ctx, studioOptions{
		Profile:   flags.profile,
		ConfigDir: flags.configDir,
		Verbose:   flags.verbose,
		LogOutput: logOutput,
	})
	if err != nil {
		if domain.IsFatalConfiguration(err) {
			return newCommandError(cmd.Name(), "loading the local quote catalog", err,
				"Every theme needs at least one local quote. Fix the catalog overlay and try again.")
		}

		return newCommandError(cmd.Name(), "starting the studio", err,
			"Check configs/base.yaml, the profile file and APP_ environment variables.")
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()

		_ = s.Close(closeCtx)
	}()

	return fn(ctx, s)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("%s failed while %s: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }
