package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisedwards/tzconv/internal/config"
	"github.com/chrisedwards/tzconv/internal/logger"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after the config file and TZCONV_* environment
variables have been applied, and check that it is valid.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Write the default configuration to --config, or to the default config path.`,
	Args:  cobra.NoArgs,
	// The target file may not exist yet, so skip loading it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log = logger.Setup(cmd.ErrOrStderr(), level, jsonLogs)
		return nil
	},
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	file := cfg.ConfigFile()
	if file == "" {
		file = "(none, using defaults)"
	}
	fmt.Fprintf(out, "Config file:   %s\n", file)
	fmt.Fprintf(out, "Timezone:      %s\n", cfg.Timezone)
	fmt.Fprintf(out, "Targets:       %s\n", formatPatterns(cfg.Targets))
	fmt.Fprintf(out, "Format:        %s\n", cfg.Format)
	fmt.Fprintf(out, "On error:      %s\n", cfg.ErrorPolicy())
	fmt.Fprintf(out, "Strict naive:  %t\n", cfg.StrictNaive)
	fmt.Fprintf(out, "Zoneinfo dir:  %s\n", cfg.ZoneinfoDir)
	fmt.Fprintf(out, "Include:       %s\n", formatPatterns(cfg.Include))
	fmt.Fprintf(out, "Exclude:       %s\n", formatPatterns(cfg.Exclude))
	fmt.Fprintf(out, "Log level:     %s\n", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config is invalid: %w", err)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}
	log.Debug("wrote config", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// formatPatterns renders a list as "[a, b]", or "(none)" when empty.
func formatPatterns(patterns []string) string {
	if len(patterns) == 0 {
		return "(none)"
	}
	return "[" + strings.Join(patterns, ", ") + "]"
}
