package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ltungv/exprcheck/internal/check"
	"github.com/ltungv/exprcheck/internal/config"
	"github.com/ltungv/exprcheck/internal/grammar"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("usage")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exprcheck [file ...]",
		Short: "Check whether each line of the input is an arithmetic expression",
		Long: `Check whether each line of the input is an arithmetic expression made of
whole numbers, '+', '*' and unary '-'. Lines are read from the given files in
order, or from the standard input when no file or "-" is given.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runCheck,
	}
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("exprcheck version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	rootCmd.Flags().String("format", "", "Output format, text or yaml (default text, env EXPRCHECK_FORMAT)")
	rootCmd.Flags().String("log-level", "", "Log level, debug, info, warn or error (default warn, env EXPRCHECK_LOG_LEVEL)")
	rootCmd.Flags().String("env-file", "", "Path of the .env file to load (default .env, env EXPRCHECK_ENV_PATH)")

	rootCmd.AddCommand(newGrammarCmd())
	return rootCmd
}

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the grammar of the accepted expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := grammar.Load(); err != nil {
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), grammar.Source())
			return err
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	logLevel, _ := cmd.Flags().GetString("log-level")
	if err := cfg.Apply(format, logLevel); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Level())
	if !cfg.EnvFileLoaded {
		logger.Debug().Str("path", cfg.EnvFile).Msg("no .env file, continuing with existing environment variables")
	}
	logger.Debug().Str("format", cfg.Format).Str("log_level", cfg.LogLevel).Msg("config loaded")

	var reporter check.Reporter
	switch cfg.Format {
	case config.FormatYAML:
		reporter = check.NewYAMLReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	default:
		reporter = check.NewTextReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	checker := check.NewChecker(reporter,
		check.WithStdin(cmd.InOrStdin()),
		check.WithLogger(logger),
	)
	return checker.CheckSources(args)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger().
		Level(level)
}
