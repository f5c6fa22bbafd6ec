package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/chrisedwards/tzconv/internal/config"
	"github.com/chrisedwards/tzconv/internal/convert"
	"github.com/chrisedwards/tzconv/internal/logger"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = "unknown"
)

var (
	configPath   string
	outputFormat string
	verbose      bool
	jsonLogs     bool

	cfg *config.Config
	log hclog.Logger = hclog.NewNullLogger()
)

var rootCmd = &cobra.Command{
	Use:   "tzconv",
	Short: "Convert datetimes between IANA timezones",
	Long: `tzconv converts naive and timezone-aware datetimes between IANA timezones.

Times are given either in RFC 3339 (2024-10-25T15:00:00Z, which carries its
own offset) or as a wall clock in the fixed format "YYYY-MM-DD HH:MM:SS",
which has no zone until one is supplied with --from or a batch file's from_tz.
Configuration is via YAML file and TZCONV_* environment variables.`,
	Version:           fmt.Sprintf("%s (build %s, %s)", Version, Build, BuildTime),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", "", "output format: text, json, yaml or csv")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "write logs as JSON")

	rootCmd.AddCommand(convertCmd, manyCmd, batchCmd, localCmd, zonesCmd, configCmd)
}

// setup loads configuration and the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputFormat != "" {
		loaded.Format = outputFormat
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	cfg = loaded

	log = logger.Setup(cmd.ErrOrStderr(), cfg.LogLevel, jsonLogs)
	log.Debug("config loaded", "file", cfg.ConfigFile(), "timezone", cfg.Timezone, "format", cfg.Format)
	return nil
}

// newConverter builds a Converter from the loaded configuration.
func newConverter(opts ...convert.Option) *convert.Converter {
	base := []convert.Option{
		convert.WithErrorPolicy(cfg.ErrorPolicy()),
		convert.WithNaivePolicy(cfg.NaivePolicy()),
	}
	return convert.New(append(base, opts...)...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
