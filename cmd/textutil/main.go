// Package main is the entry point for the textutil CLI.
//
// The binary can also be installed under the names tr and basename, in
// which case it behaves as that command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/textutil/domain/pathname"
	"github.com/helixml/textutil/internal/config"
	"github.com/helixml/textutil/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := execute(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName(os.Args), err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, argv []string) error {
	cmd := rootCmd()
	cmd.SetArgs(commandArgs(argv))
	return cmd.ExecuteContext(ctx)
}

// multicall lists the subcommands reachable by argv[0].
var multicall = map[string]bool{
	"tr":       true,
	"basename": true,
}

// commandArgs maps argv onto root command arguments. When the binary runs
// as one of its subcommands, that subcommand name is prepended.
func commandArgs(argv []string) []string {
	if len(argv) == 0 {
		return nil
	}
	if name := pathname.Base(argv[0]); multicall[name] {
		return append([]string{name}, argv[1:]...)
	}
	return argv[1:]
}

func programName(argv []string) string {
	if len(argv) > 0 {
		if name := pathname.Base(argv[0]); multicall[name] {
			return name
		}
	}
	return "textutil"
}

// app carries state shared by subcommands once the root command has
// loaded configuration.
type app struct {
	envFile string
	cfg     config.AppConfig
	logger  *log.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "textutil",
		Short: "Character translation and path name utilities",
		Long: `textutil translates, deletes and filters characters on a byte stream like tr,
and prints the final component of a path like basename.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables

Environment variables:
  TEXTUTIL_LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: WARN)
  TEXTUTIL_LOG_FORMAT    Log format: pretty, json (default: pretty)
  TEXTUTIL_COLOR         Colour in pretty logs: auto, always, never (default: auto)
  TEXTUTIL_BUFFER_SIZE   Stream chunk size in bytes (default: 1024, minimum: 16)`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Path to .env file")
	cmd.SetVersionTemplate("textutil version {{.Version}}\n")

	cmd.AddCommand(trCmd(a))
	cmd.AddCommand(basenameCmd(a))
	cmd.AddCommand(stdioCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log.NewLogger(cfg)
	a.logger.Debug("configuration loaded", attrsToArgs(cfg)...)
	return nil
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func attrsToArgs(cfg config.AppConfig) []any {
	attrs := cfg.LogAttrs()
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}
