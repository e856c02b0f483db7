package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sfxgrab/sfx-grabber/internal/app"
	"github.com/sfxgrab/sfx-grabber/internal/config"
	"github.com/sfxgrab/sfx-grabber/internal/logger"
	"github.com/sfxgrab/sfx-grabber/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "sfx-grabber [flags]",
		Short: "Download the audio files linked from a web page.",
		Long: `SFX Grabber is a CLI tool that scans a single web page for audio file links
(.mp3, .wav, .ogg, .flac, .aac, .m4a), downloads the referenced files into an
output directory, and writes a JSON manifest describing what was saved.

Links are collected from markup attributes and bare URLs anywhere on the page,
resolved against the page address, and deduplicated before downloading.`,
		Args:             cobra.NoArgs,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}

			return app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"url",
		"u",
		"",
		"page to scan for audio file links.")

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn’t exist).")

	rootCmdFlags.BoolP(
		"dry-run",
		"n",
		false,
		"list the links that would be downloaded without downloading anything.")

	rootCmdFlags.BoolP(
		"overwrite",
		"w",
		false,
		"replace same-named files instead of renaming with a numeric suffix.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("url"); flag != nil && flag.Changed {
		cfg.URL, _ = flags.GetString("url")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("dry-run"); flag != nil && flag.Changed {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}

	if flag := flags.Lookup("overwrite"); flag != nil && flag.Changed {
		cfg.Overwrite, _ = flags.GetBool("overwrite")
	}

	err := config.ValidateConfig(cfg)
	if err != nil {
		return err
	}

	// ValidateConfig derives the parsed log level.
	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
